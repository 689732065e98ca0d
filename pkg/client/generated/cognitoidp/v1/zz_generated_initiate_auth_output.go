package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

const (
	InitiateAuthOutputShape                     = "InitiateAuthOutput"
	InitiateAuthOutputFieldChallengeName        = "ChallengeName"
	InitiateAuthOutputFieldSession              = "Session"
	InitiateAuthOutputFieldChallengeParameters  = "ChallengeParameters"
	InitiateAuthOutputFieldAuthenticationResult = "AuthenticationResult"
)

type InitiateAuthOutput struct {
	ChallengeName        enum.Value[ChallengeNameType] `json:"ChallengeName,omitempty" yaml:"ChallengeName,omitempty"`
	Session              string                        `json:"Session,omitempty" yaml:"Session,omitempty"`
	ChallengeParameters  map[string]string             `json:"ChallengeParameters,omitempty" yaml:"ChallengeParameters,omitempty"`
	AuthenticationResult *AuthenticationResultType     `json:"AuthenticationResult,omitempty" yaml:"AuthenticationResult,omitempty"`
}
