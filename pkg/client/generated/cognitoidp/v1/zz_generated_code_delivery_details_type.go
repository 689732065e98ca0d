package client

const (
	CodeDeliveryDetailsTypeShape               = "CodeDeliveryDetailsType"
	CodeDeliveryDetailsTypeFieldDestination    = "Destination"
	CodeDeliveryDetailsTypeFieldDeliveryMedium = "DeliveryMedium"
	CodeDeliveryDetailsTypeFieldAttributeName  = "AttributeName"
)

type CodeDeliveryDetailsType struct {
	Destination    string             `json:"Destination,omitempty" yaml:"Destination,omitempty"`
	DeliveryMedium DeliveryMediumType `json:"DeliveryMedium,omitempty" yaml:"DeliveryMedium,omitempty"`
	AttributeName  string             `json:"AttributeName,omitempty" yaml:"AttributeName,omitempty"`
}
