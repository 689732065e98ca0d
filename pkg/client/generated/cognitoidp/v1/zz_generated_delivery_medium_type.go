package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type DeliveryMediumType string

const (
	DeliveryMediumTypeSMS   DeliveryMediumType = "SMS"
	DeliveryMediumTypeEmail DeliveryMediumType = "EMAIL"
)

var deliveryMediumTypeCatalog = enum.New[DeliveryMediumType]("DeliveryMediumType",
	enum.Entry[DeliveryMediumType]{Name: "SMS", Value: DeliveryMediumTypeSMS},
	enum.Entry[DeliveryMediumType]{Name: "Email", Value: DeliveryMediumTypeEmail},
)

func ParseDeliveryMediumType(s string) (DeliveryMediumType, error) {
	return deliveryMediumTypeCatalog.Parse(s)
}

func (DeliveryMediumType) Catalog() *enum.Catalog[DeliveryMediumType] {
	return deliveryMediumTypeCatalog
}

func (DeliveryMediumType) Values() []DeliveryMediumType {
	return deliveryMediumTypeCatalog.Values()
}

func (v DeliveryMediumType) String() string {
	return deliveryMediumTypeCatalog.CanonicalString(v)
}

func (v DeliveryMediumType) MarshalText() ([]byte, error) {
	s, err := deliveryMediumTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *DeliveryMediumType) UnmarshalText(text []byte) error {
	parsed, err := deliveryMediumTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
