package client

const (
	EventRiskTypeShape                               = "EventRiskType"
	EventRiskTypeFieldRiskDecision                   = "RiskDecision"
	EventRiskTypeFieldRiskLevel                      = "RiskLevel"
	EventRiskTypeFieldCompromisedCredentialsDetected = "CompromisedCredentialsDetected"
)

type EventRiskType struct {
	RiskDecision                   RiskDecisionType `json:"RiskDecision,omitempty" yaml:"RiskDecision,omitempty"`
	RiskLevel                      RiskLevelType    `json:"RiskLevel,omitempty" yaml:"RiskLevel,omitempty"`
	CompromisedCredentialsDetected bool             `json:"CompromisedCredentialsDetected,omitempty" yaml:"CompromisedCredentialsDetected,omitempty"`
}
