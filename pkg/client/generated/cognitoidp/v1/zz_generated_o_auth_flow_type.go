package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type OAuthFlowType string

const (
	OAuthFlowTypeCode              OAuthFlowType = "code"
	OAuthFlowTypeImplicit          OAuthFlowType = "implicit"
	OAuthFlowTypeClientCredentials OAuthFlowType = "client_credentials"
)

var oAuthFlowTypeCatalog = enum.New[OAuthFlowType]("OAuthFlowType",
	enum.Entry[OAuthFlowType]{Name: "Code", Value: OAuthFlowTypeCode},
	enum.Entry[OAuthFlowType]{Name: "Implicit", Value: OAuthFlowTypeImplicit},
	enum.Entry[OAuthFlowType]{Name: "ClientCredentials", Value: OAuthFlowTypeClientCredentials},
)

func ParseOAuthFlowType(s string) (OAuthFlowType, error) {
	return oAuthFlowTypeCatalog.Parse(s)
}

func (OAuthFlowType) Catalog() *enum.Catalog[OAuthFlowType] {
	return oAuthFlowTypeCatalog
}

func (OAuthFlowType) Values() []OAuthFlowType {
	return oAuthFlowTypeCatalog.Values()
}

func (v OAuthFlowType) String() string {
	return oAuthFlowTypeCatalog.CanonicalString(v)
}

func (v OAuthFlowType) MarshalText() ([]byte, error) {
	s, err := oAuthFlowTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *OAuthFlowType) UnmarshalText(text []byte) error {
	parsed, err := oAuthFlowTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
