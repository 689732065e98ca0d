package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type VerifySoftwareTokenResponseType string

const (
	VerifySoftwareTokenResponseTypeSuccess VerifySoftwareTokenResponseType = "SUCCESS"
	VerifySoftwareTokenResponseTypeError   VerifySoftwareTokenResponseType = "ERROR"
)

var verifySoftwareTokenResponseTypeCatalog = enum.New[VerifySoftwareTokenResponseType]("VerifySoftwareTokenResponseType",
	enum.Entry[VerifySoftwareTokenResponseType]{Name: "Success", Value: VerifySoftwareTokenResponseTypeSuccess},
	enum.Entry[VerifySoftwareTokenResponseType]{Name: "Error", Value: VerifySoftwareTokenResponseTypeError},
)

func ParseVerifySoftwareTokenResponseType(s string) (VerifySoftwareTokenResponseType, error) {
	return verifySoftwareTokenResponseTypeCatalog.Parse(s)
}

func (VerifySoftwareTokenResponseType) Catalog() *enum.Catalog[VerifySoftwareTokenResponseType] {
	return verifySoftwareTokenResponseTypeCatalog
}

func (VerifySoftwareTokenResponseType) Values() []VerifySoftwareTokenResponseType {
	return verifySoftwareTokenResponseTypeCatalog.Values()
}

func (v VerifySoftwareTokenResponseType) String() string {
	return verifySoftwareTokenResponseTypeCatalog.CanonicalString(v)
}

func (v VerifySoftwareTokenResponseType) MarshalText() ([]byte, error) {
	s, err := verifySoftwareTokenResponseTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *VerifySoftwareTokenResponseType) UnmarshalText(text []byte) error {
	parsed, err := verifySoftwareTokenResponseTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
