package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type EventFilterType string

const (
	EventFilterTypeSignIn         EventFilterType = "SIGN_IN"
	EventFilterTypePasswordChange EventFilterType = "PASSWORD_CHANGE"
	EventFilterTypeSignUp         EventFilterType = "SIGN_UP"
)

var eventFilterTypeCatalog = enum.New[EventFilterType]("EventFilterType",
	enum.Entry[EventFilterType]{Name: "SignIn", Value: EventFilterTypeSignIn},
	enum.Entry[EventFilterType]{Name: "PasswordChange", Value: EventFilterTypePasswordChange},
	enum.Entry[EventFilterType]{Name: "SignUp", Value: EventFilterTypeSignUp},
)

func ParseEventFilterType(s string) (EventFilterType, error) {
	return eventFilterTypeCatalog.Parse(s)
}

func (EventFilterType) Catalog() *enum.Catalog[EventFilterType] {
	return eventFilterTypeCatalog
}

func (EventFilterType) Values() []EventFilterType {
	return eventFilterTypeCatalog.Values()
}

func (v EventFilterType) String() string {
	return eventFilterTypeCatalog.CanonicalString(v)
}

func (v EventFilterType) MarshalText() ([]byte, error) {
	s, err := eventFilterTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *EventFilterType) UnmarshalText(text []byte) error {
	parsed, err := eventFilterTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
