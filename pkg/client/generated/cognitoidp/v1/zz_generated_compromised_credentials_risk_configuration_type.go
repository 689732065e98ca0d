package client

const (
	CompromisedCredentialsRiskConfigurationTypeShape            = "CompromisedCredentialsRiskConfigurationType"
	CompromisedCredentialsRiskConfigurationTypeFieldEventFilter = "EventFilter"
	CompromisedCredentialsRiskConfigurationTypeFieldActions     = "Actions"
)

type CompromisedCredentialsRiskConfigurationType struct {
	EventFilter []EventFilterType                  `json:"EventFilter,omitempty" yaml:"EventFilter,omitempty"`
	Actions     *CompromisedCredentialsActionsType `json:"Actions,omitempty" yaml:"Actions,omitempty"`
}
