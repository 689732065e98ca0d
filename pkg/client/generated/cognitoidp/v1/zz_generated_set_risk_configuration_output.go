package client

const (
	SetRiskConfigurationOutputShape                  = "SetRiskConfigurationOutput"
	SetRiskConfigurationOutputFieldRiskConfiguration = "RiskConfiguration"
)

type SetRiskConfigurationOutput struct {
	RiskConfiguration *RiskConfigurationType `json:"RiskConfiguration,omitempty" yaml:"RiskConfiguration,omitempty"`
}
