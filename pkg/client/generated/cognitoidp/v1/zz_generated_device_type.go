package client

import (
	"time"
)

const (
	DeviceTypeShape                            = "DeviceType"
	DeviceTypeFieldDeviceKey                   = "DeviceKey"
	DeviceTypeFieldDeviceAttributes            = "DeviceAttributes"
	DeviceTypeFieldDeviceCreateDate            = "DeviceCreateDate"
	DeviceTypeFieldDeviceLastModifiedDate      = "DeviceLastModifiedDate"
	DeviceTypeFieldDeviceLastAuthenticatedDate = "DeviceLastAuthenticatedDate"
)

type DeviceType struct {
	DeviceKey                   string          `json:"DeviceKey,omitempty" yaml:"DeviceKey,omitempty"`
	DeviceAttributes            []AttributeType `json:"DeviceAttributes,omitempty" yaml:"DeviceAttributes,omitempty"`
	DeviceCreateDate            *time.Time      `json:"DeviceCreateDate,omitempty" yaml:"DeviceCreateDate,omitempty"`
	DeviceLastModifiedDate      *time.Time      `json:"DeviceLastModifiedDate,omitempty" yaml:"DeviceLastModifiedDate,omitempty"`
	DeviceLastAuthenticatedDate *time.Time      `json:"DeviceLastAuthenticatedDate,omitempty" yaml:"DeviceLastAuthenticatedDate,omitempty"`
}
