package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type ExplicitAuthFlowsType string

const (
	ExplicitAuthFlowsTypeAdminNoSRPAuth             ExplicitAuthFlowsType = "ADMIN_NO_SRP_AUTH"
	ExplicitAuthFlowsTypeCustomAuthFlowOnly         ExplicitAuthFlowsType = "CUSTOM_AUTH_FLOW_ONLY"
	ExplicitAuthFlowsTypeUserPasswordAuth           ExplicitAuthFlowsType = "USER_PASSWORD_AUTH"
	ExplicitAuthFlowsTypeAllowAdminUserPasswordAuth ExplicitAuthFlowsType = "ALLOW_ADMIN_USER_PASSWORD_AUTH"
	ExplicitAuthFlowsTypeAllowCustomAuth            ExplicitAuthFlowsType = "ALLOW_CUSTOM_AUTH"
	ExplicitAuthFlowsTypeAllowUserPasswordAuth      ExplicitAuthFlowsType = "ALLOW_USER_PASSWORD_AUTH"
	ExplicitAuthFlowsTypeAllowUserSRPAuth           ExplicitAuthFlowsType = "ALLOW_USER_SRP_AUTH"
	ExplicitAuthFlowsTypeAllowRefreshTokenAuth      ExplicitAuthFlowsType = "ALLOW_REFRESH_TOKEN_AUTH"
)

var explicitAuthFlowsTypeCatalog = enum.New[ExplicitAuthFlowsType]("ExplicitAuthFlowsType",
	enum.Entry[ExplicitAuthFlowsType]{Name: "AdminNoSRPAuth", Value: ExplicitAuthFlowsTypeAdminNoSRPAuth},
	enum.Entry[ExplicitAuthFlowsType]{Name: "CustomAuthFlowOnly", Value: ExplicitAuthFlowsTypeCustomAuthFlowOnly},
	enum.Entry[ExplicitAuthFlowsType]{Name: "UserPasswordAuth", Value: ExplicitAuthFlowsTypeUserPasswordAuth},
	enum.Entry[ExplicitAuthFlowsType]{Name: "AllowAdminUserPasswordAuth", Value: ExplicitAuthFlowsTypeAllowAdminUserPasswordAuth},
	enum.Entry[ExplicitAuthFlowsType]{Name: "AllowCustomAuth", Value: ExplicitAuthFlowsTypeAllowCustomAuth},
	enum.Entry[ExplicitAuthFlowsType]{Name: "AllowUserPasswordAuth", Value: ExplicitAuthFlowsTypeAllowUserPasswordAuth},
	enum.Entry[ExplicitAuthFlowsType]{Name: "AllowUserSRPAuth", Value: ExplicitAuthFlowsTypeAllowUserSRPAuth},
	enum.Entry[ExplicitAuthFlowsType]{Name: "AllowRefreshTokenAuth", Value: ExplicitAuthFlowsTypeAllowRefreshTokenAuth},
)

func ParseExplicitAuthFlowsType(s string) (ExplicitAuthFlowsType, error) {
	return explicitAuthFlowsTypeCatalog.Parse(s)
}

func (ExplicitAuthFlowsType) Catalog() *enum.Catalog[ExplicitAuthFlowsType] {
	return explicitAuthFlowsTypeCatalog
}

func (ExplicitAuthFlowsType) Values() []ExplicitAuthFlowsType {
	return explicitAuthFlowsTypeCatalog.Values()
}

func (v ExplicitAuthFlowsType) String() string {
	return explicitAuthFlowsTypeCatalog.CanonicalString(v)
}

func (v ExplicitAuthFlowsType) MarshalText() ([]byte, error) {
	s, err := explicitAuthFlowsTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *ExplicitAuthFlowsType) UnmarshalText(text []byte) error {
	parsed, err := explicitAuthFlowsTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
