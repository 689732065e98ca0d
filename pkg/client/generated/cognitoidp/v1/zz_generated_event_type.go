package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type EventType string

const (
	EventTypeSignIn         EventType = "SignIn"
	EventTypeSignUp         EventType = "SignUp"
	EventTypeForgotPassword EventType = "ForgotPassword"
	EventTypePasswordChange EventType = "PasswordChange"
	EventTypeResendCode     EventType = "ResendCode"
)

var eventTypeCatalog = enum.New[EventType]("EventType",
	enum.Entry[EventType]{Name: "SignIn", Value: EventTypeSignIn},
	enum.Entry[EventType]{Name: "SignUp", Value: EventTypeSignUp},
	enum.Entry[EventType]{Name: "ForgotPassword", Value: EventTypeForgotPassword},
	enum.Entry[EventType]{Name: "PasswordChange", Value: EventTypePasswordChange},
	enum.Entry[EventType]{Name: "ResendCode", Value: EventTypeResendCode},
)

func ParseEventType(s string) (EventType, error) {
	return eventTypeCatalog.Parse(s)
}

func (EventType) Catalog() *enum.Catalog[EventType] {
	return eventTypeCatalog
}

func (EventType) Values() []EventType {
	return eventTypeCatalog.Values()
}

func (v EventType) String() string {
	return eventTypeCatalog.CanonicalString(v)
}

func (v EventType) MarshalText() ([]byte, error) {
	s, err := eventTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *EventType) UnmarshalText(text []byte) error {
	parsed, err := eventTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
