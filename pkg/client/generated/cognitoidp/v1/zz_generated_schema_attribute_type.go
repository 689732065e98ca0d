package client

const (
	SchemaAttributeTypeShape                       = "SchemaAttributeType"
	SchemaAttributeTypeFieldName                   = "Name"
	SchemaAttributeTypeFieldAttributeDataType      = "AttributeDataType"
	SchemaAttributeTypeFieldDeveloperOnlyAttribute = "DeveloperOnlyAttribute"
	SchemaAttributeTypeFieldMutable                = "Mutable"
	SchemaAttributeTypeFieldRequired               = "Required"
)

type SchemaAttributeType struct {
	Name                   string            `json:"Name,omitempty" yaml:"Name,omitempty"`
	AttributeDataType      AttributeDataType `json:"AttributeDataType,omitempty" yaml:"AttributeDataType,omitempty"`
	DeveloperOnlyAttribute bool              `json:"DeveloperOnlyAttribute,omitempty" yaml:"DeveloperOnlyAttribute,omitempty"`
	Mutable                bool              `json:"Mutable,omitempty" yaml:"Mutable,omitempty"`
	Required               bool              `json:"Required,omitempty" yaml:"Required,omitempty"`
}
