package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type AliasAttributeType string

const (
	AliasAttributeTypePhoneNumber       AliasAttributeType = "phone_number"
	AliasAttributeTypeEmail             AliasAttributeType = "email"
	AliasAttributeTypePreferredUsername AliasAttributeType = "preferred_username"
)

var aliasAttributeTypeCatalog = enum.New[AliasAttributeType]("AliasAttributeType",
	enum.Entry[AliasAttributeType]{Name: "PhoneNumber", Value: AliasAttributeTypePhoneNumber},
	enum.Entry[AliasAttributeType]{Name: "Email", Value: AliasAttributeTypeEmail},
	enum.Entry[AliasAttributeType]{Name: "PreferredUsername", Value: AliasAttributeTypePreferredUsername},
)

func ParseAliasAttributeType(s string) (AliasAttributeType, error) {
	return aliasAttributeTypeCatalog.Parse(s)
}

func (AliasAttributeType) Catalog() *enum.Catalog[AliasAttributeType] {
	return aliasAttributeTypeCatalog
}

func (AliasAttributeType) Values() []AliasAttributeType {
	return aliasAttributeTypeCatalog.Values()
}

func (v AliasAttributeType) String() string {
	return aliasAttributeTypeCatalog.CanonicalString(v)
}

func (v AliasAttributeType) MarshalText() ([]byte, error) {
	s, err := aliasAttributeTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *AliasAttributeType) UnmarshalText(text []byte) error {
	parsed, err := aliasAttributeTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
