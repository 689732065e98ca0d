package client

const (
	NewDeviceMetadataTypeShape               = "NewDeviceMetadataType"
	NewDeviceMetadataTypeFieldDeviceKey      = "DeviceKey"
	NewDeviceMetadataTypeFieldDeviceGroupKey = "DeviceGroupKey"
)

type NewDeviceMetadataType struct {
	DeviceKey      string `json:"DeviceKey,omitempty" yaml:"DeviceKey,omitempty"`
	DeviceGroupKey string `json:"DeviceGroupKey,omitempty" yaml:"DeviceGroupKey,omitempty"`
}
