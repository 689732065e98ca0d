package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type UserImportJobStatusType string

const (
	UserImportJobStatusTypeCreated    UserImportJobStatusType = "Created"
	UserImportJobStatusTypePending    UserImportJobStatusType = "Pending"
	UserImportJobStatusTypeInProgress UserImportJobStatusType = "InProgress"
	UserImportJobStatusTypeStopping   UserImportJobStatusType = "Stopping"
	UserImportJobStatusTypeExpired    UserImportJobStatusType = "Expired"
	UserImportJobStatusTypeStopped    UserImportJobStatusType = "Stopped"
	UserImportJobStatusTypeFailed     UserImportJobStatusType = "Failed"
	UserImportJobStatusTypeSucceeded  UserImportJobStatusType = "Succeeded"
)

var userImportJobStatusTypeCatalog = enum.New[UserImportJobStatusType]("UserImportJobStatusType",
	enum.Entry[UserImportJobStatusType]{Name: "Created", Value: UserImportJobStatusTypeCreated},
	enum.Entry[UserImportJobStatusType]{Name: "Pending", Value: UserImportJobStatusTypePending},
	enum.Entry[UserImportJobStatusType]{Name: "InProgress", Value: UserImportJobStatusTypeInProgress},
	enum.Entry[UserImportJobStatusType]{Name: "Stopping", Value: UserImportJobStatusTypeStopping},
	enum.Entry[UserImportJobStatusType]{Name: "Expired", Value: UserImportJobStatusTypeExpired},
	enum.Entry[UserImportJobStatusType]{Name: "Stopped", Value: UserImportJobStatusTypeStopped},
	enum.Entry[UserImportJobStatusType]{Name: "Failed", Value: UserImportJobStatusTypeFailed},
	enum.Entry[UserImportJobStatusType]{Name: "Succeeded", Value: UserImportJobStatusTypeSucceeded},
)

func ParseUserImportJobStatusType(s string) (UserImportJobStatusType, error) {
	return userImportJobStatusTypeCatalog.Parse(s)
}

func (UserImportJobStatusType) Catalog() *enum.Catalog[UserImportJobStatusType] {
	return userImportJobStatusTypeCatalog
}

func (UserImportJobStatusType) Values() []UserImportJobStatusType {
	return userImportJobStatusTypeCatalog.Values()
}

func (v UserImportJobStatusType) String() string {
	return userImportJobStatusTypeCatalog.CanonicalString(v)
}

func (v UserImportJobStatusType) MarshalText() ([]byte, error) {
	s, err := userImportJobStatusTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *UserImportJobStatusType) UnmarshalText(text []byte) error {
	parsed, err := userImportJobStatusTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
