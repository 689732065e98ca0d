package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type DeviceRememberedStatusType string

const (
	DeviceRememberedStatusTypeRemembered    DeviceRememberedStatusType = "remembered"
	DeviceRememberedStatusTypeNotRemembered DeviceRememberedStatusType = "not_remembered"
)

var deviceRememberedStatusTypeCatalog = enum.New[DeviceRememberedStatusType]("DeviceRememberedStatusType",
	enum.Entry[DeviceRememberedStatusType]{Name: "Remembered", Value: DeviceRememberedStatusTypeRemembered},
	enum.Entry[DeviceRememberedStatusType]{Name: "NotRemembered", Value: DeviceRememberedStatusTypeNotRemembered},
)

func ParseDeviceRememberedStatusType(s string) (DeviceRememberedStatusType, error) {
	return deviceRememberedStatusTypeCatalog.Parse(s)
}

func (DeviceRememberedStatusType) Catalog() *enum.Catalog[DeviceRememberedStatusType] {
	return deviceRememberedStatusTypeCatalog
}

func (DeviceRememberedStatusType) Values() []DeviceRememberedStatusType {
	return deviceRememberedStatusTypeCatalog.Values()
}

func (v DeviceRememberedStatusType) String() string {
	return deviceRememberedStatusTypeCatalog.CanonicalString(v)
}

func (v DeviceRememberedStatusType) MarshalText() ([]byte, error) {
	s, err := deviceRememberedStatusTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *DeviceRememberedStatusType) UnmarshalText(text []byte) error {
	parsed, err := deviceRememberedStatusTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
