package client

import (
	"time"
)

const (
	EventFeedbackTypeShape              = "EventFeedbackType"
	EventFeedbackTypeFieldFeedbackValue = "FeedbackValue"
	EventFeedbackTypeFieldProvider      = "Provider"
	EventFeedbackTypeFieldFeedbackDate  = "FeedbackDate"
)

type EventFeedbackType struct {
	FeedbackValue FeedbackValueType `json:"FeedbackValue,omitempty" yaml:"FeedbackValue,omitempty"`
	Provider      string            `json:"Provider,omitempty" yaml:"Provider,omitempty"`
	FeedbackDate  *time.Time        `json:"FeedbackDate,omitempty" yaml:"FeedbackDate,omitempty"`
}
