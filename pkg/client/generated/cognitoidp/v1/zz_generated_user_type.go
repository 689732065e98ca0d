package client

import (
	"time"

	"github.com/rancher/idp-client/pkg/enum"
)

const (
	UserTypeShape                     = "UserType"
	UserTypeFieldUsername             = "Username"
	UserTypeFieldAttributes           = "Attributes"
	UserTypeFieldUserCreateDate       = "UserCreateDate"
	UserTypeFieldUserLastModifiedDate = "UserLastModifiedDate"
	UserTypeFieldEnabled              = "Enabled"
	UserTypeFieldUserStatus           = "UserStatus"
	UserTypeFieldMFAOptions           = "MFAOptions"
)

type UserType struct {
	Username             string                     `json:"Username,omitempty" yaml:"Username,omitempty"`
	Attributes           []AttributeType            `json:"Attributes,omitempty" yaml:"Attributes,omitempty"`
	UserCreateDate       *time.Time                 `json:"UserCreateDate,omitempty" yaml:"UserCreateDate,omitempty"`
	UserLastModifiedDate *time.Time                 `json:"UserLastModifiedDate,omitempty" yaml:"UserLastModifiedDate,omitempty"`
	Enabled              bool                       `json:"Enabled,omitempty" yaml:"Enabled,omitempty"`
	UserStatus           enum.Value[UserStatusType] `json:"UserStatus,omitempty" yaml:"UserStatus,omitempty"`
	MFAOptions           []MFAOptionType            `json:"MFAOptions,omitempty" yaml:"MFAOptions,omitempty"`
}
