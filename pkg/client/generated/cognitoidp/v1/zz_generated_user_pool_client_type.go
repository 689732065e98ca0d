package client

const (
	UserPoolClientTypeShape                                = "UserPoolClientType"
	UserPoolClientTypeFieldUserPoolID                      = "UserPoolId"
	UserPoolClientTypeFieldClientName                      = "ClientName"
	UserPoolClientTypeFieldClientID                        = "ClientId"
	UserPoolClientTypeFieldRefreshTokenValidity            = "RefreshTokenValidity"
	UserPoolClientTypeFieldAccessTokenValidity             = "AccessTokenValidity"
	UserPoolClientTypeFieldIDTokenValidity                 = "IdTokenValidity"
	UserPoolClientTypeFieldTokenValidityUnits              = "TokenValidityUnits"
	UserPoolClientTypeFieldExplicitAuthFlows               = "ExplicitAuthFlows"
	UserPoolClientTypeFieldSupportedIdentityProviders      = "SupportedIdentityProviders"
	UserPoolClientTypeFieldCallbackURLs                    = "CallbackURLs"
	UserPoolClientTypeFieldAllowedOAuthFlows               = "AllowedOAuthFlows"
	UserPoolClientTypeFieldAllowedOAuthScopes              = "AllowedOAuthScopes"
	UserPoolClientTypeFieldAllowedOAuthFlowsUserPoolClient = "AllowedOAuthFlowsUserPoolClient"
	UserPoolClientTypeFieldPreventUserExistenceErrors      = "PreventUserExistenceErrors"
)

type UserPoolClientType struct {
	UserPoolID                      string                         `json:"UserPoolId,omitempty" yaml:"UserPoolId,omitempty"`
	ClientName                      string                         `json:"ClientName,omitempty" yaml:"ClientName,omitempty"`
	ClientID                        string                         `json:"ClientId,omitempty" yaml:"ClientId,omitempty"`
	RefreshTokenValidity            int32                          `json:"RefreshTokenValidity,omitempty" yaml:"RefreshTokenValidity,omitempty"`
	AccessTokenValidity             int32                          `json:"AccessTokenValidity,omitempty" yaml:"AccessTokenValidity,omitempty"`
	IDTokenValidity                 int32                          `json:"IdTokenValidity,omitempty" yaml:"IdTokenValidity,omitempty"`
	TokenValidityUnits              *TokenValidityUnitsType        `json:"TokenValidityUnits,omitempty" yaml:"TokenValidityUnits,omitempty"`
	ExplicitAuthFlows               []ExplicitAuthFlowsType        `json:"ExplicitAuthFlows,omitempty" yaml:"ExplicitAuthFlows,omitempty"`
	SupportedIdentityProviders      []string                       `json:"SupportedIdentityProviders,omitempty" yaml:"SupportedIdentityProviders,omitempty"`
	CallbackURLs                    []string                       `json:"CallbackURLs,omitempty" yaml:"CallbackURLs,omitempty"`
	AllowedOAuthFlows               []OAuthFlowType                `json:"AllowedOAuthFlows,omitempty" yaml:"AllowedOAuthFlows,omitempty"`
	AllowedOAuthScopes              []string                       `json:"AllowedOAuthScopes,omitempty" yaml:"AllowedOAuthScopes,omitempty"`
	AllowedOAuthFlowsUserPoolClient bool                           `json:"AllowedOAuthFlowsUserPoolClient,omitempty" yaml:"AllowedOAuthFlowsUserPoolClient,omitempty"`
	PreventUserExistenceErrors      PreventUserExistenceErrorTypes `json:"PreventUserExistenceErrors,omitempty" yaml:"PreventUserExistenceErrors,omitempty"`
}
