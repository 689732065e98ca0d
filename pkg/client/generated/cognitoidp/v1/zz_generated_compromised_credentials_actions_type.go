package client

const (
	CompromisedCredentialsActionsTypeShape            = "CompromisedCredentialsActionsType"
	CompromisedCredentialsActionsTypeFieldEventAction = "EventAction"
)

type CompromisedCredentialsActionsType struct {
	EventAction CompromisedCredentialsEventActionType `json:"EventAction,omitempty" yaml:"EventAction,omitempty"`
}
