package client

const (
	MFAOptionTypeShape               = "MFAOptionType"
	MFAOptionTypeFieldDeliveryMedium = "DeliveryMedium"
	MFAOptionTypeFieldAttributeName  = "AttributeName"
)

type MFAOptionType struct {
	DeliveryMedium DeliveryMediumType `json:"DeliveryMedium,omitempty" yaml:"DeliveryMedium,omitempty"`
	AttributeName  string             `json:"AttributeName,omitempty" yaml:"AttributeName,omitempty"`
}
