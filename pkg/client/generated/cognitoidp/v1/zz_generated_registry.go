package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

var Enums = map[string]enum.Vocabulary{
	"AccountTakeoverEventActionType":        accountTakeoverEventActionTypeCatalog,
	"AdvancedSecurityModeType":              advancedSecurityModeTypeCatalog,
	"AliasAttributeType":                    aliasAttributeTypeCatalog,
	"AttributeDataType":                     attributeDataTypeCatalog,
	"AuthFlowType":                          authFlowTypeCatalog,
	"ChallengeName":                         challengeNameCatalog,
	"ChallengeNameType":                     challengeNameTypeCatalog,
	"ChallengeResponse":                     challengeResponseCatalog,
	"CompromisedCredentialsEventActionType": compromisedCredentialsEventActionTypeCatalog,
	"DefaultEmailOptionType":                defaultEmailOptionTypeCatalog,
	"DeliveryMediumType":                    deliveryMediumTypeCatalog,
	"DeviceRememberedStatusType":            deviceRememberedStatusTypeCatalog,
	"DomainStatusType":                      domainStatusTypeCatalog,
	"EmailSendingAccountType":               emailSendingAccountTypeCatalog,
	"EventFilterType":                       eventFilterTypeCatalog,
	"EventResponseType":                     eventResponseTypeCatalog,
	"EventType":                             eventTypeCatalog,
	"ExplicitAuthFlowsType":                 explicitAuthFlowsTypeCatalog,
	"FeedbackValueType":                     feedbackValueTypeCatalog,
	"IdentityProviderTypeType":              identityProviderTypeTypeCatalog,
	"MessageActionType":                     messageActionTypeCatalog,
	"OAuthFlowType":                         oAuthFlowTypeCatalog,
	"PreventUserExistenceErrorTypes":        preventUserExistenceErrorTypesCatalog,
	"RecoveryOptionNameType":                recoveryOptionNameTypeCatalog,
	"RiskDecisionType":                      riskDecisionTypeCatalog,
	"RiskLevelType":                         riskLevelTypeCatalog,
	"StatusType":                            statusTypeCatalog,
	"TimeUnitsType":                         timeUnitsTypeCatalog,
	"UserImportJobStatusType":               userImportJobStatusTypeCatalog,
	"UserPoolMfaType":                       userPoolMfaTypeCatalog,
	"UserStatusType":                        userStatusTypeCatalog,
	"UsernameAttributeType":                 usernameAttributeTypeCatalog,
	"VerifiedAttributeType":                 verifiedAttributeTypeCatalog,
	"VerifySoftwareTokenResponseType":       verifySoftwareTokenResponseTypeCatalog,
}

var Shapes = map[string]func() interface{}{
	"AccountTakeoverActionType":                   func() interface{} { return &AccountTakeoverActionType{} },
	"AccountTakeoverActionsType":                  func() interface{} { return &AccountTakeoverActionsType{} },
	"AccountTakeoverRiskConfigurationType":        func() interface{} { return &AccountTakeoverRiskConfigurationType{} },
	"AdminCreateUserInput":                        func() interface{} { return &AdminCreateUserInput{} },
	"AdminCreateUserOutput":                       func() interface{} { return &AdminCreateUserOutput{} },
	"AdminSetUserMFAPreferenceInput":              func() interface{} { return &AdminSetUserMFAPreferenceInput{} },
	"AttributeType":                               func() interface{} { return &AttributeType{} },
	"AuthEventType":                               func() interface{} { return &AuthEventType{} },
	"AuthenticationResultType":                    func() interface{} { return &AuthenticationResultType{} },
	"ChallengeResponseType":                       func() interface{} { return &ChallengeResponseType{} },
	"CodeDeliveryDetailsType":                     func() interface{} { return &CodeDeliveryDetailsType{} },
	"CompromisedCredentialsActionsType":           func() interface{} { return &CompromisedCredentialsActionsType{} },
	"CompromisedCredentialsRiskConfigurationType": func() interface{} { return &CompromisedCredentialsRiskConfigurationType{} },
	"CustomDomainConfigType":                      func() interface{} { return &CustomDomainConfigType{} },
	"DescribeUserPoolDomainOutput":                func() interface{} { return &DescribeUserPoolDomainOutput{} },
	"DeviceType":                                  func() interface{} { return &DeviceType{} },
	"DomainDescriptionType":                       func() interface{} { return &DomainDescriptionType{} },
	"EventContextDataType":                        func() interface{} { return &EventContextDataType{} },
	"EventFeedbackType":                           func() interface{} { return &EventFeedbackType{} },
	"EventRiskType":                               func() interface{} { return &EventRiskType{} },
	"IdentityProviderType":                        func() interface{} { return &IdentityProviderType{} },
	"InitiateAuthInput":                           func() interface{} { return &InitiateAuthInput{} },
	"InitiateAuthOutput":                          func() interface{} { return &InitiateAuthOutput{} },
	"MFAOptionType":                               func() interface{} { return &MFAOptionType{} },
	"NewDeviceMetadataType":                       func() interface{} { return &NewDeviceMetadataType{} },
	"NotifyConfigurationType":                     func() interface{} { return &NotifyConfigurationType{} },
	"NotifyEmailType":                             func() interface{} { return &NotifyEmailType{} },
	"RecoveryOptionType":                          func() interface{} { return &RecoveryOptionType{} },
	"RespondToAuthChallengeInput":                 func() interface{} { return &RespondToAuthChallengeInput{} },
	"RiskConfigurationType":                       func() interface{} { return &RiskConfigurationType{} },
	"RiskExceptionConfigurationType":              func() interface{} { return &RiskExceptionConfigurationType{} },
	"SMSMfaSettingsType":                          func() interface{} { return &SMSMfaSettingsType{} },
	"SchemaAttributeType":                         func() interface{} { return &SchemaAttributeType{} },
	"SetRiskConfigurationInput":                   func() interface{} { return &SetRiskConfigurationInput{} },
	"SetRiskConfigurationOutput":                  func() interface{} { return &SetRiskConfigurationOutput{} },
	"SoftwareTokenMfaSettingsType":                func() interface{} { return &SoftwareTokenMfaSettingsType{} },
	"TokenValidityUnitsType":                      func() interface{} { return &TokenValidityUnitsType{} },
	"UpdateDeviceStatusInput":                     func() interface{} { return &UpdateDeviceStatusInput{} },
	"UserImportJobType":                           func() interface{} { return &UserImportJobType{} },
	"UserPoolClientType":                          func() interface{} { return &UserPoolClientType{} },
	"UserType":                                    func() interface{} { return &UserType{} },
	"VerifySoftwareTokenInput":                    func() interface{} { return &VerifySoftwareTokenInput{} },
	"VerifySoftwareTokenOutput":                   func() interface{} { return &VerifySoftwareTokenOutput{} },
}
