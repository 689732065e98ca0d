package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type IdentityProviderTypeType string

const (
	IdentityProviderTypeTypeSAML            IdentityProviderTypeType = "SAML"
	IdentityProviderTypeTypeFacebook        IdentityProviderTypeType = "Facebook"
	IdentityProviderTypeTypeGoogle          IdentityProviderTypeType = "Google"
	IdentityProviderTypeTypeLoginWithAmazon IdentityProviderTypeType = "LoginWithAmazon"
	IdentityProviderTypeTypeSignInWithApple IdentityProviderTypeType = "SignInWithApple"
	IdentityProviderTypeTypeOIDC            IdentityProviderTypeType = "OIDC"
)

var identityProviderTypeTypeCatalog = enum.New[IdentityProviderTypeType]("IdentityProviderTypeType",
	enum.Entry[IdentityProviderTypeType]{Name: "SAML", Value: IdentityProviderTypeTypeSAML},
	enum.Entry[IdentityProviderTypeType]{Name: "Facebook", Value: IdentityProviderTypeTypeFacebook},
	enum.Entry[IdentityProviderTypeType]{Name: "Google", Value: IdentityProviderTypeTypeGoogle},
	enum.Entry[IdentityProviderTypeType]{Name: "LoginWithAmazon", Value: IdentityProviderTypeTypeLoginWithAmazon},
	enum.Entry[IdentityProviderTypeType]{Name: "SignInWithApple", Value: IdentityProviderTypeTypeSignInWithApple},
	enum.Entry[IdentityProviderTypeType]{Name: "OIDC", Value: IdentityProviderTypeTypeOIDC},
)

func ParseIdentityProviderTypeType(s string) (IdentityProviderTypeType, error) {
	return identityProviderTypeTypeCatalog.Parse(s)
}

func (IdentityProviderTypeType) Catalog() *enum.Catalog[IdentityProviderTypeType] {
	return identityProviderTypeTypeCatalog
}

func (IdentityProviderTypeType) Values() []IdentityProviderTypeType {
	return identityProviderTypeTypeCatalog.Values()
}

func (v IdentityProviderTypeType) String() string {
	return identityProviderTypeTypeCatalog.CanonicalString(v)
}

func (v IdentityProviderTypeType) MarshalText() ([]byte, error) {
	s, err := identityProviderTypeTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *IdentityProviderTypeType) UnmarshalText(text []byte) error {
	parsed, err := identityProviderTypeTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
