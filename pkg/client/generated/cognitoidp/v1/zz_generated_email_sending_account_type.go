package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type EmailSendingAccountType string

const (
	EmailSendingAccountTypeCognitoDefault EmailSendingAccountType = "COGNITO_DEFAULT"
	EmailSendingAccountTypeDeveloper      EmailSendingAccountType = "DEVELOPER"
)

var emailSendingAccountTypeCatalog = enum.New[EmailSendingAccountType]("EmailSendingAccountType",
	enum.Entry[EmailSendingAccountType]{Name: "CognitoDefault", Value: EmailSendingAccountTypeCognitoDefault},
	enum.Entry[EmailSendingAccountType]{Name: "Developer", Value: EmailSendingAccountTypeDeveloper},
)

func ParseEmailSendingAccountType(s string) (EmailSendingAccountType, error) {
	return emailSendingAccountTypeCatalog.Parse(s)
}

func (EmailSendingAccountType) Catalog() *enum.Catalog[EmailSendingAccountType] {
	return emailSendingAccountTypeCatalog
}

func (EmailSendingAccountType) Values() []EmailSendingAccountType {
	return emailSendingAccountTypeCatalog.Values()
}

func (v EmailSendingAccountType) String() string {
	return emailSendingAccountTypeCatalog.CanonicalString(v)
}

func (v EmailSendingAccountType) MarshalText() ([]byte, error) {
	s, err := emailSendingAccountTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *EmailSendingAccountType) UnmarshalText(text []byte) error {
	parsed, err := emailSendingAccountTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
