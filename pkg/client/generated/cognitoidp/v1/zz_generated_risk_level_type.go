package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type RiskLevelType string

const (
	RiskLevelTypeLow    RiskLevelType = "Low"
	RiskLevelTypeMedium RiskLevelType = "Medium"
	RiskLevelTypeHigh   RiskLevelType = "High"
)

var riskLevelTypeCatalog = enum.New[RiskLevelType]("RiskLevelType",
	enum.Entry[RiskLevelType]{Name: "Low", Value: RiskLevelTypeLow},
	enum.Entry[RiskLevelType]{Name: "Medium", Value: RiskLevelTypeMedium},
	enum.Entry[RiskLevelType]{Name: "High", Value: RiskLevelTypeHigh},
)

func ParseRiskLevelType(s string) (RiskLevelType, error) {
	return riskLevelTypeCatalog.Parse(s)
}

func (RiskLevelType) Catalog() *enum.Catalog[RiskLevelType] {
	return riskLevelTypeCatalog
}

func (RiskLevelType) Values() []RiskLevelType {
	return riskLevelTypeCatalog.Values()
}

func (v RiskLevelType) String() string {
	return riskLevelTypeCatalog.CanonicalString(v)
}

func (v RiskLevelType) MarshalText() ([]byte, error) {
	s, err := riskLevelTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *RiskLevelType) UnmarshalText(text []byte) error {
	parsed, err := riskLevelTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
