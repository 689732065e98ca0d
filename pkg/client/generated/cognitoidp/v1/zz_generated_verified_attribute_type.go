package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type VerifiedAttributeType string

const (
	VerifiedAttributeTypePhoneNumber VerifiedAttributeType = "phone_number"
	VerifiedAttributeTypeEmail       VerifiedAttributeType = "email"
)

var verifiedAttributeTypeCatalog = enum.New[VerifiedAttributeType]("VerifiedAttributeType",
	enum.Entry[VerifiedAttributeType]{Name: "PhoneNumber", Value: VerifiedAttributeTypePhoneNumber},
	enum.Entry[VerifiedAttributeType]{Name: "Email", Value: VerifiedAttributeTypeEmail},
)

func ParseVerifiedAttributeType(s string) (VerifiedAttributeType, error) {
	return verifiedAttributeTypeCatalog.Parse(s)
}

func (VerifiedAttributeType) Catalog() *enum.Catalog[VerifiedAttributeType] {
	return verifiedAttributeTypeCatalog
}

func (VerifiedAttributeType) Values() []VerifiedAttributeType {
	return verifiedAttributeTypeCatalog.Values()
}

func (v VerifiedAttributeType) String() string {
	return verifiedAttributeTypeCatalog.CanonicalString(v)
}

func (v VerifiedAttributeType) MarshalText() ([]byte, error) {
	s, err := verifiedAttributeTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *VerifiedAttributeType) UnmarshalText(text []byte) error {
	parsed, err := verifiedAttributeTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
