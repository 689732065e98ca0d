package client

const (
	VerifySoftwareTokenInputShape                   = "VerifySoftwareTokenInput"
	VerifySoftwareTokenInputFieldAccessToken        = "AccessToken"
	VerifySoftwareTokenInputFieldSession            = "Session"
	VerifySoftwareTokenInputFieldUserCode           = "UserCode"
	VerifySoftwareTokenInputFieldFriendlyDeviceName = "FriendlyDeviceName"
)

type VerifySoftwareTokenInput struct {
	AccessToken        string `json:"AccessToken,omitempty" yaml:"AccessToken,omitempty"`
	Session            string `json:"Session,omitempty" yaml:"Session,omitempty"`
	UserCode           string `json:"UserCode,omitempty" yaml:"UserCode,omitempty"`
	FriendlyDeviceName string `json:"FriendlyDeviceName,omitempty" yaml:"FriendlyDeviceName,omitempty"`
}
