package client

const (
	RiskExceptionConfigurationTypeShape                   = "RiskExceptionConfigurationType"
	RiskExceptionConfigurationTypeFieldBlockedIPRangeList = "BlockedIPRangeList"
	RiskExceptionConfigurationTypeFieldSkippedIPRangeList = "SkippedIPRangeList"
)

type RiskExceptionConfigurationType struct {
	BlockedIPRangeList []string `json:"BlockedIPRangeList,omitempty" yaml:"BlockedIPRangeList,omitempty"`
	SkippedIPRangeList []string `json:"SkippedIPRangeList,omitempty" yaml:"SkippedIPRangeList,omitempty"`
}
