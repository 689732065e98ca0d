package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type ChallengeResponse string

const (
	ChallengeResponseSuccess ChallengeResponse = "Success"
	ChallengeResponseFailure ChallengeResponse = "Failure"
)

var challengeResponseCatalog = enum.New[ChallengeResponse]("ChallengeResponse",
	enum.Entry[ChallengeResponse]{Name: "Success", Value: ChallengeResponseSuccess},
	enum.Entry[ChallengeResponse]{Name: "Failure", Value: ChallengeResponseFailure},
)

func ParseChallengeResponse(s string) (ChallengeResponse, error) {
	return challengeResponseCatalog.Parse(s)
}

func (ChallengeResponse) Catalog() *enum.Catalog[ChallengeResponse] {
	return challengeResponseCatalog
}

func (ChallengeResponse) Values() []ChallengeResponse {
	return challengeResponseCatalog.Values()
}

func (v ChallengeResponse) String() string {
	return challengeResponseCatalog.CanonicalString(v)
}

func (v ChallengeResponse) MarshalText() ([]byte, error) {
	s, err := challengeResponseCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *ChallengeResponse) UnmarshalText(text []byte) error {
	parsed, err := challengeResponseCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
