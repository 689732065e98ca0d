package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type DefaultEmailOptionType string

const (
	DefaultEmailOptionTypeConfirmWithLink DefaultEmailOptionType = "CONFIRM_WITH_LINK"
	DefaultEmailOptionTypeConfirmWithCode DefaultEmailOptionType = "CONFIRM_WITH_CODE"
)

var defaultEmailOptionTypeCatalog = enum.New[DefaultEmailOptionType]("DefaultEmailOptionType",
	enum.Entry[DefaultEmailOptionType]{Name: "ConfirmWithLink", Value: DefaultEmailOptionTypeConfirmWithLink},
	enum.Entry[DefaultEmailOptionType]{Name: "ConfirmWithCode", Value: DefaultEmailOptionTypeConfirmWithCode},
)

func ParseDefaultEmailOptionType(s string) (DefaultEmailOptionType, error) {
	return defaultEmailOptionTypeCatalog.Parse(s)
}

func (DefaultEmailOptionType) Catalog() *enum.Catalog[DefaultEmailOptionType] {
	return defaultEmailOptionTypeCatalog
}

func (DefaultEmailOptionType) Values() []DefaultEmailOptionType {
	return defaultEmailOptionTypeCatalog.Values()
}

func (v DefaultEmailOptionType) String() string {
	return defaultEmailOptionTypeCatalog.CanonicalString(v)
}

func (v DefaultEmailOptionType) MarshalText() ([]byte, error) {
	s, err := defaultEmailOptionTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *DefaultEmailOptionType) UnmarshalText(text []byte) error {
	parsed, err := defaultEmailOptionTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
