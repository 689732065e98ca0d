package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type StatusType string

const (
	StatusTypeEnabled  StatusType = "Enabled"
	StatusTypeDisabled StatusType = "Disabled"
)

var statusTypeCatalog = enum.New[StatusType]("StatusType",
	enum.Entry[StatusType]{Name: "Enabled", Value: StatusTypeEnabled},
	enum.Entry[StatusType]{Name: "Disabled", Value: StatusTypeDisabled},
)

func ParseStatusType(s string) (StatusType, error) {
	return statusTypeCatalog.Parse(s)
}

func (StatusType) Catalog() *enum.Catalog[StatusType] {
	return statusTypeCatalog
}

func (StatusType) Values() []StatusType {
	return statusTypeCatalog.Values()
}

func (v StatusType) String() string {
	return statusTypeCatalog.CanonicalString(v)
}

func (v StatusType) MarshalText() ([]byte, error) {
	s, err := statusTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *StatusType) UnmarshalText(text []byte) error {
	parsed, err := statusTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
