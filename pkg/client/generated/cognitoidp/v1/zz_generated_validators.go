package client

import (
	"fmt"

	"github.com/aws/smithy-go"
)

func (v *AccountTakeoverActionType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "AccountTakeoverActionType"}
	if len(v.EventAction) == 0 {
		invalidParams.Add(smithy.NewErrParamRequired("EventAction"))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *AccountTakeoverActionsType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "AccountTakeoverActionsType"}
	if err := v.LowAction.Validate(); err != nil {
		invalidParams.AddNested("LowAction", err.(smithy.InvalidParamsError))
	}
	if err := v.MediumAction.Validate(); err != nil {
		invalidParams.AddNested("MediumAction", err.(smithy.InvalidParamsError))
	}
	if err := v.HighAction.Validate(); err != nil {
		invalidParams.AddNested("HighAction", err.(smithy.InvalidParamsError))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *AccountTakeoverRiskConfigurationType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "AccountTakeoverRiskConfigurationType"}
	if err := v.NotifyConfiguration.Validate(); err != nil {
		invalidParams.AddNested("NotifyConfiguration", err.(smithy.InvalidParamsError))
	}
	if v.Actions == nil {
		invalidParams.Add(smithy.NewErrParamRequired("Actions"))
	}
	if err := v.Actions.Validate(); err != nil {
		invalidParams.AddNested("Actions", err.(smithy.InvalidParamsError))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *AdminCreateUserInput) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "AdminCreateUserInput"}
	if v.UserPoolID == "" {
		invalidParams.Add(smithy.NewErrParamRequired("UserPoolId"))
	}
	if v.Username == "" {
		invalidParams.Add(smithy.NewErrParamRequired("Username"))
	}
	for i := range v.UserAttributes {
		if err := v.UserAttributes[i].Validate(); err != nil {
			invalidParams.AddNested(fmt.Sprintf("UserAttributes[%d]", i), err.(smithy.InvalidParamsError))
		}
	}
	for i := range v.ValidationData {
		if err := v.ValidationData[i].Validate(); err != nil {
			invalidParams.AddNested(fmt.Sprintf("ValidationData[%d]", i), err.(smithy.InvalidParamsError))
		}
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *AdminCreateUserOutput) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "AdminCreateUserOutput"}
	if err := v.User.Validate(); err != nil {
		invalidParams.AddNested("User", err.(smithy.InvalidParamsError))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *AdminSetUserMFAPreferenceInput) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "AdminSetUserMFAPreferenceInput"}
	if v.Username == "" {
		invalidParams.Add(smithy.NewErrParamRequired("Username"))
	}
	if v.UserPoolID == "" {
		invalidParams.Add(smithy.NewErrParamRequired("UserPoolId"))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *AttributeType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "AttributeType"}
	if v.Name == "" {
		invalidParams.Add(smithy.NewErrParamRequired("Name"))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *AuthEventType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "AuthEventType"}
	if err := v.EventFeedback.Validate(); err != nil {
		invalidParams.AddNested("EventFeedback", err.(smithy.InvalidParamsError))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *CompromisedCredentialsActionsType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "CompromisedCredentialsActionsType"}
	if len(v.EventAction) == 0 {
		invalidParams.Add(smithy.NewErrParamRequired("EventAction"))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *CompromisedCredentialsRiskConfigurationType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "CompromisedCredentialsRiskConfigurationType"}
	if v.Actions == nil {
		invalidParams.Add(smithy.NewErrParamRequired("Actions"))
	}
	if err := v.Actions.Validate(); err != nil {
		invalidParams.AddNested("Actions", err.(smithy.InvalidParamsError))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *CustomDomainConfigType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "CustomDomainConfigType"}
	if v.CertificateARN == "" {
		invalidParams.Add(smithy.NewErrParamRequired("CertificateArn"))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *DescribeUserPoolDomainOutput) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "DescribeUserPoolDomainOutput"}
	if err := v.DomainDescription.Validate(); err != nil {
		invalidParams.AddNested("DomainDescription", err.(smithy.InvalidParamsError))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *DeviceType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "DeviceType"}
	for i := range v.DeviceAttributes {
		if err := v.DeviceAttributes[i].Validate(); err != nil {
			invalidParams.AddNested(fmt.Sprintf("DeviceAttributes[%d]", i), err.(smithy.InvalidParamsError))
		}
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *DomainDescriptionType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "DomainDescriptionType"}
	if err := v.CustomDomainConfig.Validate(); err != nil {
		invalidParams.AddNested("CustomDomainConfig", err.(smithy.InvalidParamsError))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *EventFeedbackType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "EventFeedbackType"}
	if len(v.FeedbackValue) == 0 {
		invalidParams.Add(smithy.NewErrParamRequired("FeedbackValue"))
	}
	if v.Provider == "" {
		invalidParams.Add(smithy.NewErrParamRequired("Provider"))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *InitiateAuthInput) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "InitiateAuthInput"}
	if len(v.AuthFlow) == 0 {
		invalidParams.Add(smithy.NewErrParamRequired("AuthFlow"))
	}
	if v.ClientID == "" {
		invalidParams.Add(smithy.NewErrParamRequired("ClientId"))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *NotifyConfigurationType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "NotifyConfigurationType"}
	if v.SourceARN == "" {
		invalidParams.Add(smithy.NewErrParamRequired("SourceArn"))
	}
	if err := v.BlockEmail.Validate(); err != nil {
		invalidParams.AddNested("BlockEmail", err.(smithy.InvalidParamsError))
	}
	if err := v.NoActionEmail.Validate(); err != nil {
		invalidParams.AddNested("NoActionEmail", err.(smithy.InvalidParamsError))
	}
	if err := v.MFAEmail.Validate(); err != nil {
		invalidParams.AddNested("MfaEmail", err.(smithy.InvalidParamsError))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *NotifyEmailType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "NotifyEmailType"}
	if v.Subject == "" {
		invalidParams.Add(smithy.NewErrParamRequired("Subject"))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *RecoveryOptionType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "RecoveryOptionType"}
	if len(v.Name) == 0 {
		invalidParams.Add(smithy.NewErrParamRequired("Name"))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *RespondToAuthChallengeInput) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "RespondToAuthChallengeInput"}
	if v.ClientID == "" {
		invalidParams.Add(smithy.NewErrParamRequired("ClientId"))
	}
	if len(v.ChallengeName) == 0 {
		invalidParams.Add(smithy.NewErrParamRequired("ChallengeName"))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *RiskConfigurationType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "RiskConfigurationType"}
	if err := v.CompromisedCredentialsRiskConfiguration.Validate(); err != nil {
		invalidParams.AddNested("CompromisedCredentialsRiskConfiguration", err.(smithy.InvalidParamsError))
	}
	if err := v.AccountTakeoverRiskConfiguration.Validate(); err != nil {
		invalidParams.AddNested("AccountTakeoverRiskConfiguration", err.(smithy.InvalidParamsError))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *SetRiskConfigurationInput) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "SetRiskConfigurationInput"}
	if v.UserPoolID == "" {
		invalidParams.Add(smithy.NewErrParamRequired("UserPoolId"))
	}
	if err := v.CompromisedCredentialsRiskConfiguration.Validate(); err != nil {
		invalidParams.AddNested("CompromisedCredentialsRiskConfiguration", err.(smithy.InvalidParamsError))
	}
	if err := v.AccountTakeoverRiskConfiguration.Validate(); err != nil {
		invalidParams.AddNested("AccountTakeoverRiskConfiguration", err.(smithy.InvalidParamsError))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *SetRiskConfigurationOutput) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "SetRiskConfigurationOutput"}
	if err := v.RiskConfiguration.Validate(); err != nil {
		invalidParams.AddNested("RiskConfiguration", err.(smithy.InvalidParamsError))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *UpdateDeviceStatusInput) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "UpdateDeviceStatusInput"}
	if v.AccessToken == "" {
		invalidParams.Add(smithy.NewErrParamRequired("AccessToken"))
	}
	if v.DeviceKey == "" {
		invalidParams.Add(smithy.NewErrParamRequired("DeviceKey"))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *UserType) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "UserType"}
	for i := range v.Attributes {
		if err := v.Attributes[i].Validate(); err != nil {
			invalidParams.AddNested(fmt.Sprintf("Attributes[%d]", i), err.(smithy.InvalidParamsError))
		}
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func (v *VerifySoftwareTokenInput) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "VerifySoftwareTokenInput"}
	if v.UserCode == "" {
		invalidParams.Add(smithy.NewErrParamRequired("UserCode"))
	}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}
