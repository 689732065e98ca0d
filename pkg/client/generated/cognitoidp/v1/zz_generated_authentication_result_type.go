package client

const (
	AuthenticationResultTypeShape                  = "AuthenticationResultType"
	AuthenticationResultTypeFieldAccessToken       = "AccessToken"
	AuthenticationResultTypeFieldExpiresIn         = "ExpiresIn"
	AuthenticationResultTypeFieldTokenType         = "TokenType"
	AuthenticationResultTypeFieldRefreshToken      = "RefreshToken"
	AuthenticationResultTypeFieldIDToken           = "IdToken"
	AuthenticationResultTypeFieldNewDeviceMetadata = "NewDeviceMetadata"
)

type AuthenticationResultType struct {
	AccessToken       string                 `json:"AccessToken,omitempty" yaml:"AccessToken,omitempty"`
	ExpiresIn         int32                  `json:"ExpiresIn,omitempty" yaml:"ExpiresIn,omitempty"`
	TokenType         string                 `json:"TokenType,omitempty" yaml:"TokenType,omitempty"`
	RefreshToken      string                 `json:"RefreshToken,omitempty" yaml:"RefreshToken,omitempty"`
	IDToken           string                 `json:"IdToken,omitempty" yaml:"IdToken,omitempty"`
	NewDeviceMetadata *NewDeviceMetadataType `json:"NewDeviceMetadata,omitempty" yaml:"NewDeviceMetadata,omitempty"`
}
