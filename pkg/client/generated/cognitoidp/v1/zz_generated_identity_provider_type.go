package client

import (
	"time"

	"github.com/rancher/idp-client/pkg/enum"
)

const (
	IdentityProviderTypeShape                 = "IdentityProviderType"
	IdentityProviderTypeFieldUserPoolID       = "UserPoolId"
	IdentityProviderTypeFieldProviderName     = "ProviderName"
	IdentityProviderTypeFieldProviderType     = "ProviderType"
	IdentityProviderTypeFieldProviderDetails  = "ProviderDetails"
	IdentityProviderTypeFieldAttributeMapping = "AttributeMapping"
	IdentityProviderTypeFieldIdpIdentifiers   = "IdpIdentifiers"
	IdentityProviderTypeFieldLastModifiedDate = "LastModifiedDate"
	IdentityProviderTypeFieldCreationDate     = "CreationDate"
)

type IdentityProviderType struct {
	UserPoolID       string                               `json:"UserPoolId,omitempty" yaml:"UserPoolId,omitempty"`
	ProviderName     string                               `json:"ProviderName,omitempty" yaml:"ProviderName,omitempty"`
	ProviderType     enum.Value[IdentityProviderTypeType] `json:"ProviderType,omitempty" yaml:"ProviderType,omitempty"`
	ProviderDetails  map[string]string                    `json:"ProviderDetails,omitempty" yaml:"ProviderDetails,omitempty"`
	AttributeMapping map[string]string                    `json:"AttributeMapping,omitempty" yaml:"AttributeMapping,omitempty"`
	IdpIdentifiers   []string                             `json:"IdpIdentifiers,omitempty" yaml:"IdpIdentifiers,omitempty"`
	LastModifiedDate *time.Time                           `json:"LastModifiedDate,omitempty" yaml:"LastModifiedDate,omitempty"`
	CreationDate     *time.Time                           `json:"CreationDate,omitempty" yaml:"CreationDate,omitempty"`
}
