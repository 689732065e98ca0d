package client

const (
	SoftwareTokenMfaSettingsTypeShape             = "SoftwareTokenMfaSettingsType"
	SoftwareTokenMfaSettingsTypeFieldEnabled      = "Enabled"
	SoftwareTokenMfaSettingsTypeFieldPreferredMfa = "PreferredMfa"
)

type SoftwareTokenMfaSettingsType struct {
	Enabled      bool `json:"Enabled,omitempty" yaml:"Enabled,omitempty"`
	PreferredMfa bool `json:"PreferredMfa,omitempty" yaml:"PreferredMfa,omitempty"`
}
