package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type UserPoolMfaType string

const (
	UserPoolMfaTypeOff      UserPoolMfaType = "OFF"
	UserPoolMfaTypeOn       UserPoolMfaType = "ON"
	UserPoolMfaTypeOptional UserPoolMfaType = "OPTIONAL"
)

var userPoolMfaTypeCatalog = enum.New[UserPoolMfaType]("UserPoolMfaType",
	enum.Entry[UserPoolMfaType]{Name: "Off", Value: UserPoolMfaTypeOff},
	enum.Entry[UserPoolMfaType]{Name: "On", Value: UserPoolMfaTypeOn},
	enum.Entry[UserPoolMfaType]{Name: "Optional", Value: UserPoolMfaTypeOptional},
)

func ParseUserPoolMfaType(s string) (UserPoolMfaType, error) {
	return userPoolMfaTypeCatalog.Parse(s)
}

func (UserPoolMfaType) Catalog() *enum.Catalog[UserPoolMfaType] {
	return userPoolMfaTypeCatalog
}

func (UserPoolMfaType) Values() []UserPoolMfaType {
	return userPoolMfaTypeCatalog.Values()
}

func (v UserPoolMfaType) String() string {
	return userPoolMfaTypeCatalog.CanonicalString(v)
}

func (v UserPoolMfaType) MarshalText() ([]byte, error) {
	s, err := userPoolMfaTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *UserPoolMfaType) UnmarshalText(text []byte) error {
	parsed, err := userPoolMfaTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
