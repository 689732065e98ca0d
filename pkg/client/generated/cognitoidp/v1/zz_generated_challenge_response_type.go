package client

const (
	ChallengeResponseTypeShape                  = "ChallengeResponseType"
	ChallengeResponseTypeFieldChallengeName     = "ChallengeName"
	ChallengeResponseTypeFieldChallengeResponse = "ChallengeResponse"
)

type ChallengeResponseType struct {
	ChallengeName     ChallengeName     `json:"ChallengeName,omitempty" yaml:"ChallengeName,omitempty"`
	ChallengeResponse ChallengeResponse `json:"ChallengeResponse,omitempty" yaml:"ChallengeResponse,omitempty"`
}
