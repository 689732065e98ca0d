package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type UserStatusType string

const (
	UserStatusTypeUnconfirmed         UserStatusType = "UNCONFIRMED"
	UserStatusTypeConfirmed           UserStatusType = "CONFIRMED"
	UserStatusTypeArchived            UserStatusType = "ARCHIVED"
	UserStatusTypeCompromised         UserStatusType = "COMPROMISED"
	UserStatusTypeUnknown             UserStatusType = "UNKNOWN"
	UserStatusTypeResetRequired       UserStatusType = "RESET_REQUIRED"
	UserStatusTypeForceChangePassword UserStatusType = "FORCE_CHANGE_PASSWORD"
)

var userStatusTypeCatalog = enum.New[UserStatusType]("UserStatusType",
	enum.Entry[UserStatusType]{Name: "Unconfirmed", Value: UserStatusTypeUnconfirmed},
	enum.Entry[UserStatusType]{Name: "Confirmed", Value: UserStatusTypeConfirmed},
	enum.Entry[UserStatusType]{Name: "Archived", Value: UserStatusTypeArchived},
	enum.Entry[UserStatusType]{Name: "Compromised", Value: UserStatusTypeCompromised},
	enum.Entry[UserStatusType]{Name: "Unknown", Value: UserStatusTypeUnknown},
	enum.Entry[UserStatusType]{Name: "ResetRequired", Value: UserStatusTypeResetRequired},
	enum.Entry[UserStatusType]{Name: "ForceChangePassword", Value: UserStatusTypeForceChangePassword},
)

func ParseUserStatusType(s string) (UserStatusType, error) {
	return userStatusTypeCatalog.Parse(s)
}

func (UserStatusType) Catalog() *enum.Catalog[UserStatusType] {
	return userStatusTypeCatalog
}

func (UserStatusType) Values() []UserStatusType {
	return userStatusTypeCatalog.Values()
}

func (v UserStatusType) String() string {
	return userStatusTypeCatalog.CanonicalString(v)
}

func (v UserStatusType) MarshalText() ([]byte, error) {
	s, err := userStatusTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *UserStatusType) UnmarshalText(text []byte) error {
	parsed, err := userStatusTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
