package client

const (
	InitiateAuthInputShape               = "InitiateAuthInput"
	InitiateAuthInputFieldAuthFlow       = "AuthFlow"
	InitiateAuthInputFieldAuthParameters = "AuthParameters"
	InitiateAuthInputFieldClientMetadata = "ClientMetadata"
	InitiateAuthInputFieldClientID       = "ClientId"
)

type InitiateAuthInput struct {
	AuthFlow       AuthFlowType      `json:"AuthFlow,omitempty" yaml:"AuthFlow,omitempty"`
	AuthParameters map[string]string `json:"AuthParameters,omitempty" yaml:"AuthParameters,omitempty"`
	ClientMetadata map[string]string `json:"ClientMetadata,omitempty" yaml:"ClientMetadata,omitempty"`
	ClientID       string            `json:"ClientId,omitempty" yaml:"ClientId,omitempty"`
}
