package client

const (
	RespondToAuthChallengeInputShape                   = "RespondToAuthChallengeInput"
	RespondToAuthChallengeInputFieldClientID           = "ClientId"
	RespondToAuthChallengeInputFieldChallengeName      = "ChallengeName"
	RespondToAuthChallengeInputFieldSession            = "Session"
	RespondToAuthChallengeInputFieldChallengeResponses = "ChallengeResponses"
	RespondToAuthChallengeInputFieldClientMetadata     = "ClientMetadata"
)

type RespondToAuthChallengeInput struct {
	ClientID           string            `json:"ClientId,omitempty" yaml:"ClientId,omitempty"`
	ChallengeName      ChallengeNameType `json:"ChallengeName,omitempty" yaml:"ChallengeName,omitempty"`
	Session            string            `json:"Session,omitempty" yaml:"Session,omitempty"`
	ChallengeResponses map[string]string `json:"ChallengeResponses,omitempty" yaml:"ChallengeResponses,omitempty"`
	ClientMetadata     map[string]string `json:"ClientMetadata,omitempty" yaml:"ClientMetadata,omitempty"`
}
