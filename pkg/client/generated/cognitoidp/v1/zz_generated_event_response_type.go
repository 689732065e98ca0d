package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type EventResponseType string

const (
	EventResponseTypePass       EventResponseType = "Pass"
	EventResponseTypeFail       EventResponseType = "Fail"
	EventResponseTypeInProgress EventResponseType = "InProgress"
)

var eventResponseTypeCatalog = enum.New[EventResponseType]("EventResponseType",
	enum.Entry[EventResponseType]{Name: "Pass", Value: EventResponseTypePass},
	enum.Entry[EventResponseType]{Name: "Fail", Value: EventResponseTypeFail},
	enum.Entry[EventResponseType]{Name: "InProgress", Value: EventResponseTypeInProgress},
)

func ParseEventResponseType(s string) (EventResponseType, error) {
	return eventResponseTypeCatalog.Parse(s)
}

func (EventResponseType) Catalog() *enum.Catalog[EventResponseType] {
	return eventResponseTypeCatalog
}

func (EventResponseType) Values() []EventResponseType {
	return eventResponseTypeCatalog.Values()
}

func (v EventResponseType) String() string {
	return eventResponseTypeCatalog.CanonicalString(v)
}

func (v EventResponseType) MarshalText() ([]byte, error) {
	s, err := eventResponseTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *EventResponseType) UnmarshalText(text []byte) error {
	parsed, err := eventResponseTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
