package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type ChallengeName string

const (
	ChallengeNamePassword ChallengeName = "Password"
	ChallengeNameMFA      ChallengeName = "Mfa"
)

var challengeNameCatalog = enum.New[ChallengeName]("ChallengeName",
	enum.Entry[ChallengeName]{Name: "Password", Value: ChallengeNamePassword},
	enum.Entry[ChallengeName]{Name: "MFA", Value: ChallengeNameMFA},
)

func ParseChallengeName(s string) (ChallengeName, error) {
	return challengeNameCatalog.Parse(s)
}

func (ChallengeName) Catalog() *enum.Catalog[ChallengeName] {
	return challengeNameCatalog
}

func (ChallengeName) Values() []ChallengeName {
	return challengeNameCatalog.Values()
}

func (v ChallengeName) String() string {
	return challengeNameCatalog.CanonicalString(v)
}

func (v ChallengeName) MarshalText() ([]byte, error) {
	s, err := challengeNameCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *ChallengeName) UnmarshalText(text []byte) error {
	parsed, err := challengeNameCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
