package client

const (
	NotifyConfigurationTypeShape              = "NotifyConfigurationType"
	NotifyConfigurationTypeFieldFrom          = "From"
	NotifyConfigurationTypeFieldReplyTo       = "ReplyTo"
	NotifyConfigurationTypeFieldSourceARN     = "SourceArn"
	NotifyConfigurationTypeFieldBlockEmail    = "BlockEmail"
	NotifyConfigurationTypeFieldNoActionEmail = "NoActionEmail"
	NotifyConfigurationTypeFieldMFAEmail      = "MfaEmail"
)

type NotifyConfigurationType struct {
	From          string           `json:"From,omitempty" yaml:"From,omitempty"`
	ReplyTo       string           `json:"ReplyTo,omitempty" yaml:"ReplyTo,omitempty"`
	SourceARN     string           `json:"SourceArn,omitempty" yaml:"SourceArn,omitempty"`
	BlockEmail    *NotifyEmailType `json:"BlockEmail,omitempty" yaml:"BlockEmail,omitempty"`
	NoActionEmail *NotifyEmailType `json:"NoActionEmail,omitempty" yaml:"NoActionEmail,omitempty"`
	MFAEmail      *NotifyEmailType `json:"MfaEmail,omitempty" yaml:"MfaEmail,omitempty"`
}
