package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type AdvancedSecurityModeType string

const (
	AdvancedSecurityModeTypeOff      AdvancedSecurityModeType = "OFF"
	AdvancedSecurityModeTypeAudit    AdvancedSecurityModeType = "AUDIT"
	AdvancedSecurityModeTypeEnforced AdvancedSecurityModeType = "ENFORCED"
)

var advancedSecurityModeTypeCatalog = enum.New[AdvancedSecurityModeType]("AdvancedSecurityModeType",
	enum.Entry[AdvancedSecurityModeType]{Name: "Off", Value: AdvancedSecurityModeTypeOff},
	enum.Entry[AdvancedSecurityModeType]{Name: "Audit", Value: AdvancedSecurityModeTypeAudit},
	enum.Entry[AdvancedSecurityModeType]{Name: "Enforced", Value: AdvancedSecurityModeTypeEnforced},
)

func ParseAdvancedSecurityModeType(s string) (AdvancedSecurityModeType, error) {
	return advancedSecurityModeTypeCatalog.Parse(s)
}

func (AdvancedSecurityModeType) Catalog() *enum.Catalog[AdvancedSecurityModeType] {
	return advancedSecurityModeTypeCatalog
}

func (AdvancedSecurityModeType) Values() []AdvancedSecurityModeType {
	return advancedSecurityModeTypeCatalog.Values()
}

func (v AdvancedSecurityModeType) String() string {
	return advancedSecurityModeTypeCatalog.CanonicalString(v)
}

func (v AdvancedSecurityModeType) MarshalText() ([]byte, error) {
	s, err := advancedSecurityModeTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *AdvancedSecurityModeType) UnmarshalText(text []byte) error {
	parsed, err := advancedSecurityModeTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
