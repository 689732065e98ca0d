package client

import (
	"time"

	"github.com/rancher/idp-client/pkg/enum"
)

const (
	AuthEventTypeShape                   = "AuthEventType"
	AuthEventTypeFieldEventID            = "EventId"
	AuthEventTypeFieldEventType          = "EventType"
	AuthEventTypeFieldCreationDate       = "CreationDate"
	AuthEventTypeFieldEventResponse      = "EventResponse"
	AuthEventTypeFieldEventRisk          = "EventRisk"
	AuthEventTypeFieldChallengeResponses = "ChallengeResponses"
	AuthEventTypeFieldEventContextData   = "EventContextData"
	AuthEventTypeFieldEventFeedback      = "EventFeedback"
)

type AuthEventType struct {
	EventID            string                  `json:"EventId,omitempty" yaml:"EventId,omitempty"`
	EventType          enum.Value[EventType]   `json:"EventType,omitempty" yaml:"EventType,omitempty"`
	CreationDate       *time.Time              `json:"CreationDate,omitempty" yaml:"CreationDate,omitempty"`
	EventResponse      EventResponseType       `json:"EventResponse,omitempty" yaml:"EventResponse,omitempty"`
	EventRisk          *EventRiskType          `json:"EventRisk,omitempty" yaml:"EventRisk,omitempty"`
	ChallengeResponses []ChallengeResponseType `json:"ChallengeResponses,omitempty" yaml:"ChallengeResponses,omitempty"`
	EventContextData   *EventContextDataType   `json:"EventContextData,omitempty" yaml:"EventContextData,omitempty"`
	EventFeedback      *EventFeedbackType      `json:"EventFeedback,omitempty" yaml:"EventFeedback,omitempty"`
}
