package client

const (
	UpdateDeviceStatusInputShape                       = "UpdateDeviceStatusInput"
	UpdateDeviceStatusInputFieldAccessToken            = "AccessToken"
	UpdateDeviceStatusInputFieldDeviceKey              = "DeviceKey"
	UpdateDeviceStatusInputFieldDeviceRememberedStatus = "DeviceRememberedStatus"
)

type UpdateDeviceStatusInput struct {
	AccessToken            string                     `json:"AccessToken,omitempty" yaml:"AccessToken,omitempty"`
	DeviceKey              string                     `json:"DeviceKey,omitempty" yaml:"DeviceKey,omitempty"`
	DeviceRememberedStatus DeviceRememberedStatusType `json:"DeviceRememberedStatus,omitempty" yaml:"DeviceRememberedStatus,omitempty"`
}
