package client

const (
	AccountTakeoverActionsTypeShape             = "AccountTakeoverActionsType"
	AccountTakeoverActionsTypeFieldLowAction    = "LowAction"
	AccountTakeoverActionsTypeFieldMediumAction = "MediumAction"
	AccountTakeoverActionsTypeFieldHighAction   = "HighAction"
)

type AccountTakeoverActionsType struct {
	LowAction    *AccountTakeoverActionType `json:"LowAction,omitempty" yaml:"LowAction,omitempty"`
	MediumAction *AccountTakeoverActionType `json:"MediumAction,omitempty" yaml:"MediumAction,omitempty"`
	HighAction   *AccountTakeoverActionType `json:"HighAction,omitempty" yaml:"HighAction,omitempty"`
}
