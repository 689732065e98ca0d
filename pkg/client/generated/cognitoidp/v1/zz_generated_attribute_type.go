package client

const (
	AttributeTypeShape      = "AttributeType"
	AttributeTypeFieldName  = "Name"
	AttributeTypeFieldValue = "Value"
)

type AttributeType struct {
	Name  string `json:"Name,omitempty" yaml:"Name,omitempty"`
	Value string `json:"Value,omitempty" yaml:"Value,omitempty"`
}
