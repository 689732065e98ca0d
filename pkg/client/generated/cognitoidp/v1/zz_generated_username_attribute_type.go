package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type UsernameAttributeType string

const (
	UsernameAttributeTypePhoneNumber UsernameAttributeType = "phone_number"
	UsernameAttributeTypeEmail       UsernameAttributeType = "email"
)

var usernameAttributeTypeCatalog = enum.New[UsernameAttributeType]("UsernameAttributeType",
	enum.Entry[UsernameAttributeType]{Name: "PhoneNumber", Value: UsernameAttributeTypePhoneNumber},
	enum.Entry[UsernameAttributeType]{Name: "Email", Value: UsernameAttributeTypeEmail},
)

func ParseUsernameAttributeType(s string) (UsernameAttributeType, error) {
	return usernameAttributeTypeCatalog.Parse(s)
}

func (UsernameAttributeType) Catalog() *enum.Catalog[UsernameAttributeType] {
	return usernameAttributeTypeCatalog
}

func (UsernameAttributeType) Values() []UsernameAttributeType {
	return usernameAttributeTypeCatalog.Values()
}

func (v UsernameAttributeType) String() string {
	return usernameAttributeTypeCatalog.CanonicalString(v)
}

func (v UsernameAttributeType) MarshalText() ([]byte, error) {
	s, err := usernameAttributeTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *UsernameAttributeType) UnmarshalText(text []byte) error {
	parsed, err := usernameAttributeTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
