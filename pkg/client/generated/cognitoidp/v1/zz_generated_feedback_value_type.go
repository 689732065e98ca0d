package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type FeedbackValueType string

const (
	FeedbackValueTypeValid   FeedbackValueType = "Valid"
	FeedbackValueTypeInvalid FeedbackValueType = "Invalid"
)

var feedbackValueTypeCatalog = enum.New[FeedbackValueType]("FeedbackValueType",
	enum.Entry[FeedbackValueType]{Name: "Valid", Value: FeedbackValueTypeValid},
	enum.Entry[FeedbackValueType]{Name: "Invalid", Value: FeedbackValueTypeInvalid},
)

func ParseFeedbackValueType(s string) (FeedbackValueType, error) {
	return feedbackValueTypeCatalog.Parse(s)
}

func (FeedbackValueType) Catalog() *enum.Catalog[FeedbackValueType] {
	return feedbackValueTypeCatalog
}

func (FeedbackValueType) Values() []FeedbackValueType {
	return feedbackValueTypeCatalog.Values()
}

func (v FeedbackValueType) String() string {
	return feedbackValueTypeCatalog.CanonicalString(v)
}

func (v FeedbackValueType) MarshalText() ([]byte, error) {
	s, err := feedbackValueTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *FeedbackValueType) UnmarshalText(text []byte) error {
	parsed, err := feedbackValueTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
