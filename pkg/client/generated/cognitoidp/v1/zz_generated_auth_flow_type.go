package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type AuthFlowType string

const (
	AuthFlowTypeUserSRPAuth           AuthFlowType = "USER_SRP_AUTH"
	AuthFlowTypeRefreshTokenAuth      AuthFlowType = "REFRESH_TOKEN_AUTH"
	AuthFlowTypeRefreshToken          AuthFlowType = "REFRESH_TOKEN"
	AuthFlowTypeCustomAuth            AuthFlowType = "CUSTOM_AUTH"
	AuthFlowTypeAdminNoSRPAuth        AuthFlowType = "ADMIN_NO_SRP_AUTH"
	AuthFlowTypeUserPasswordAuth      AuthFlowType = "USER_PASSWORD_AUTH"
	AuthFlowTypeAdminUserPasswordAuth AuthFlowType = "ADMIN_USER_PASSWORD_AUTH"
)

var authFlowTypeCatalog = enum.New[AuthFlowType]("AuthFlowType",
	enum.Entry[AuthFlowType]{Name: "UserSRPAuth", Value: AuthFlowTypeUserSRPAuth},
	enum.Entry[AuthFlowType]{Name: "RefreshTokenAuth", Value: AuthFlowTypeRefreshTokenAuth},
	enum.Entry[AuthFlowType]{Name: "RefreshToken", Value: AuthFlowTypeRefreshToken},
	enum.Entry[AuthFlowType]{Name: "CustomAuth", Value: AuthFlowTypeCustomAuth},
	enum.Entry[AuthFlowType]{Name: "AdminNoSRPAuth", Value: AuthFlowTypeAdminNoSRPAuth},
	enum.Entry[AuthFlowType]{Name: "UserPasswordAuth", Value: AuthFlowTypeUserPasswordAuth},
	enum.Entry[AuthFlowType]{Name: "AdminUserPasswordAuth", Value: AuthFlowTypeAdminUserPasswordAuth},
)

func ParseAuthFlowType(s string) (AuthFlowType, error) {
	return authFlowTypeCatalog.Parse(s)
}

func (AuthFlowType) Catalog() *enum.Catalog[AuthFlowType] {
	return authFlowTypeCatalog
}

func (AuthFlowType) Values() []AuthFlowType {
	return authFlowTypeCatalog.Values()
}

func (v AuthFlowType) String() string {
	return authFlowTypeCatalog.CanonicalString(v)
}

func (v AuthFlowType) MarshalText() ([]byte, error) {
	s, err := authFlowTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *AuthFlowType) UnmarshalText(text []byte) error {
	parsed, err := authFlowTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
