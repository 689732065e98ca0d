package client

const (
	AccountTakeoverRiskConfigurationTypeShape                    = "AccountTakeoverRiskConfigurationType"
	AccountTakeoverRiskConfigurationTypeFieldNotifyConfiguration = "NotifyConfiguration"
	AccountTakeoverRiskConfigurationTypeFieldActions             = "Actions"
)

type AccountTakeoverRiskConfigurationType struct {
	NotifyConfiguration *NotifyConfigurationType    `json:"NotifyConfiguration,omitempty" yaml:"NotifyConfiguration,omitempty"`
	Actions             *AccountTakeoverActionsType `json:"Actions,omitempty" yaml:"Actions,omitempty"`
}
