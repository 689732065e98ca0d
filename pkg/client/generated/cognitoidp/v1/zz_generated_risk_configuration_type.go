package client

import (
	"time"
)

const (
	RiskConfigurationTypeShape                                        = "RiskConfigurationType"
	RiskConfigurationTypeFieldUserPoolID                              = "UserPoolId"
	RiskConfigurationTypeFieldClientID                                = "ClientId"
	RiskConfigurationTypeFieldCompromisedCredentialsRiskConfiguration = "CompromisedCredentialsRiskConfiguration"
	RiskConfigurationTypeFieldAccountTakeoverRiskConfiguration        = "AccountTakeoverRiskConfiguration"
	RiskConfigurationTypeFieldRiskExceptionConfiguration              = "RiskExceptionConfiguration"
	RiskConfigurationTypeFieldLastModifiedDate                        = "LastModifiedDate"
)

type RiskConfigurationType struct {
	UserPoolID                              string                                       `json:"UserPoolId,omitempty" yaml:"UserPoolId,omitempty"`
	ClientID                                string                                       `json:"ClientId,omitempty" yaml:"ClientId,omitempty"`
	CompromisedCredentialsRiskConfiguration *CompromisedCredentialsRiskConfigurationType `json:"CompromisedCredentialsRiskConfiguration,omitempty" yaml:"CompromisedCredentialsRiskConfiguration,omitempty"`
	AccountTakeoverRiskConfiguration        *AccountTakeoverRiskConfigurationType        `json:"AccountTakeoverRiskConfiguration,omitempty" yaml:"AccountTakeoverRiskConfiguration,omitempty"`
	RiskExceptionConfiguration              *RiskExceptionConfigurationType              `json:"RiskExceptionConfiguration,omitempty" yaml:"RiskExceptionConfiguration,omitempty"`
	LastModifiedDate                        *time.Time                                   `json:"LastModifiedDate,omitempty" yaml:"LastModifiedDate,omitempty"`
}
