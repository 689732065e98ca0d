package client

const (
	AdminSetUserMFAPreferenceInputShape                         = "AdminSetUserMFAPreferenceInput"
	AdminSetUserMFAPreferenceInputFieldSMSMfaSettings           = "SMSMfaSettings"
	AdminSetUserMFAPreferenceInputFieldSoftwareTokenMfaSettings = "SoftwareTokenMfaSettings"
	AdminSetUserMFAPreferenceInputFieldUsername                 = "Username"
	AdminSetUserMFAPreferenceInputFieldUserPoolID               = "UserPoolId"
)

type AdminSetUserMFAPreferenceInput struct {
	SMSMfaSettings           *SMSMfaSettingsType           `json:"SMSMfaSettings,omitempty" yaml:"SMSMfaSettings,omitempty"`
	SoftwareTokenMfaSettings *SoftwareTokenMfaSettingsType `json:"SoftwareTokenMfaSettings,omitempty" yaml:"SoftwareTokenMfaSettings,omitempty"`
	Username                 string                        `json:"Username,omitempty" yaml:"Username,omitempty"`
	UserPoolID               string                        `json:"UserPoolId,omitempty" yaml:"UserPoolId,omitempty"`
}
