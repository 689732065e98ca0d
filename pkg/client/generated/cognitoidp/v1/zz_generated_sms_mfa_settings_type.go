package client

const (
	SMSMfaSettingsTypeShape             = "SMSMfaSettingsType"
	SMSMfaSettingsTypeFieldEnabled      = "Enabled"
	SMSMfaSettingsTypeFieldPreferredMfa = "PreferredMfa"
)

type SMSMfaSettingsType struct {
	Enabled      bool `json:"Enabled,omitempty" yaml:"Enabled,omitempty"`
	PreferredMfa bool `json:"PreferredMfa,omitempty" yaml:"PreferredMfa,omitempty"`
}
