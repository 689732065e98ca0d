package client

const (
	TokenValidityUnitsTypeShape             = "TokenValidityUnitsType"
	TokenValidityUnitsTypeFieldAccessToken  = "AccessToken"
	TokenValidityUnitsTypeFieldIDToken      = "IdToken"
	TokenValidityUnitsTypeFieldRefreshToken = "RefreshToken"
)

type TokenValidityUnitsType struct {
	AccessToken  TimeUnitsType `json:"AccessToken,omitempty" yaml:"AccessToken,omitempty"`
	IDToken      TimeUnitsType `json:"IdToken,omitempty" yaml:"IdToken,omitempty"`
	RefreshToken TimeUnitsType `json:"RefreshToken,omitempty" yaml:"RefreshToken,omitempty"`
}
