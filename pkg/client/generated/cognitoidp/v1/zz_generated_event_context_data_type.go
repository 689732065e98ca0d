package client

const (
	EventContextDataTypeShape           = "EventContextDataType"
	EventContextDataTypeFieldIPAddress  = "IpAddress"
	EventContextDataTypeFieldDeviceName = "DeviceName"
	EventContextDataTypeFieldTimezone   = "Timezone"
	EventContextDataTypeFieldCity       = "City"
	EventContextDataTypeFieldCountry    = "Country"
)

type EventContextDataType struct {
	IPAddress  string `json:"IpAddress,omitempty" yaml:"IpAddress,omitempty"`
	DeviceName string `json:"DeviceName,omitempty" yaml:"DeviceName,omitempty"`
	Timezone   string `json:"Timezone,omitempty" yaml:"Timezone,omitempty"`
	City       string `json:"City,omitempty" yaml:"City,omitempty"`
	Country    string `json:"Country,omitempty" yaml:"Country,omitempty"`
}
