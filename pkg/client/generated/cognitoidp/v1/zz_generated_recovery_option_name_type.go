package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type RecoveryOptionNameType string

const (
	RecoveryOptionNameTypeVerifiedEmail       RecoveryOptionNameType = "verified_email"
	RecoveryOptionNameTypeVerifiedPhoneNumber RecoveryOptionNameType = "verified_phone_number"
	RecoveryOptionNameTypeAdminOnly           RecoveryOptionNameType = "admin_only"
)

var recoveryOptionNameTypeCatalog = enum.New[RecoveryOptionNameType]("RecoveryOptionNameType",
	enum.Entry[RecoveryOptionNameType]{Name: "VerifiedEmail", Value: RecoveryOptionNameTypeVerifiedEmail},
	enum.Entry[RecoveryOptionNameType]{Name: "VerifiedPhoneNumber", Value: RecoveryOptionNameTypeVerifiedPhoneNumber},
	enum.Entry[RecoveryOptionNameType]{Name: "AdminOnly", Value: RecoveryOptionNameTypeAdminOnly},
)

func ParseRecoveryOptionNameType(s string) (RecoveryOptionNameType, error) {
	return recoveryOptionNameTypeCatalog.Parse(s)
}

func (RecoveryOptionNameType) Catalog() *enum.Catalog[RecoveryOptionNameType] {
	return recoveryOptionNameTypeCatalog
}

func (RecoveryOptionNameType) Values() []RecoveryOptionNameType {
	return recoveryOptionNameTypeCatalog.Values()
}

func (v RecoveryOptionNameType) String() string {
	return recoveryOptionNameTypeCatalog.CanonicalString(v)
}

func (v RecoveryOptionNameType) MarshalText() ([]byte, error) {
	s, err := recoveryOptionNameTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *RecoveryOptionNameType) UnmarshalText(text []byte) error {
	parsed, err := recoveryOptionNameTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
