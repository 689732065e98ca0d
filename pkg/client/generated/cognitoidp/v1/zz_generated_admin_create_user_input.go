package client

const (
	AdminCreateUserInputShape                       = "AdminCreateUserInput"
	AdminCreateUserInputFieldUserPoolID             = "UserPoolId"
	AdminCreateUserInputFieldUsername               = "Username"
	AdminCreateUserInputFieldUserAttributes         = "UserAttributes"
	AdminCreateUserInputFieldValidationData         = "ValidationData"
	AdminCreateUserInputFieldTemporaryPassword      = "TemporaryPassword"
	AdminCreateUserInputFieldForceAliasCreation     = "ForceAliasCreation"
	AdminCreateUserInputFieldMessageAction          = "MessageAction"
	AdminCreateUserInputFieldDesiredDeliveryMediums = "DesiredDeliveryMediums"
	AdminCreateUserInputFieldClientMetadata         = "ClientMetadata"
)

type AdminCreateUserInput struct {
	UserPoolID             string               `json:"UserPoolId,omitempty" yaml:"UserPoolId,omitempty"`
	Username               string               `json:"Username,omitempty" yaml:"Username,omitempty"`
	UserAttributes         []AttributeType      `json:"UserAttributes,omitempty" yaml:"UserAttributes,omitempty"`
	ValidationData         []AttributeType      `json:"ValidationData,omitempty" yaml:"ValidationData,omitempty"`
	TemporaryPassword      string               `json:"TemporaryPassword,omitempty" yaml:"TemporaryPassword,omitempty"`
	ForceAliasCreation     bool                 `json:"ForceAliasCreation,omitempty" yaml:"ForceAliasCreation,omitempty"`
	MessageAction          MessageActionType    `json:"MessageAction,omitempty" yaml:"MessageAction,omitempty"`
	DesiredDeliveryMediums []DeliveryMediumType `json:"DesiredDeliveryMediums,omitempty" yaml:"DesiredDeliveryMediums,omitempty"`
	ClientMetadata         map[string]string    `json:"ClientMetadata,omitempty" yaml:"ClientMetadata,omitempty"`
}
