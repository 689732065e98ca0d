package client

const (
	AccountTakeoverActionTypeShape            = "AccountTakeoverActionType"
	AccountTakeoverActionTypeFieldNotify      = "Notify"
	AccountTakeoverActionTypeFieldEventAction = "EventAction"
)

type AccountTakeoverActionType struct {
	Notify      bool                           `json:"Notify" yaml:"Notify"`
	EventAction AccountTakeoverEventActionType `json:"EventAction,omitempty" yaml:"EventAction,omitempty"`
}
