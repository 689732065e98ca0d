package client

const (
	SetRiskConfigurationInputShape                                        = "SetRiskConfigurationInput"
	SetRiskConfigurationInputFieldUserPoolID                              = "UserPoolId"
	SetRiskConfigurationInputFieldClientID                                = "ClientId"
	SetRiskConfigurationInputFieldCompromisedCredentialsRiskConfiguration = "CompromisedCredentialsRiskConfiguration"
	SetRiskConfigurationInputFieldAccountTakeoverRiskConfiguration        = "AccountTakeoverRiskConfiguration"
	SetRiskConfigurationInputFieldRiskExceptionConfiguration              = "RiskExceptionConfiguration"
)

type SetRiskConfigurationInput struct {
	UserPoolID                              string                                       `json:"UserPoolId,omitempty" yaml:"UserPoolId,omitempty"`
	ClientID                                string                                       `json:"ClientId,omitempty" yaml:"ClientId,omitempty"`
	CompromisedCredentialsRiskConfiguration *CompromisedCredentialsRiskConfigurationType `json:"CompromisedCredentialsRiskConfiguration,omitempty" yaml:"CompromisedCredentialsRiskConfiguration,omitempty"`
	AccountTakeoverRiskConfiguration        *AccountTakeoverRiskConfigurationType        `json:"AccountTakeoverRiskConfiguration,omitempty" yaml:"AccountTakeoverRiskConfiguration,omitempty"`
	RiskExceptionConfiguration              *RiskExceptionConfigurationType              `json:"RiskExceptionConfiguration,omitempty" yaml:"RiskExceptionConfiguration,omitempty"`
}
