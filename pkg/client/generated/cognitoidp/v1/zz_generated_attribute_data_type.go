package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type AttributeDataType string

const (
	AttributeDataTypeString   AttributeDataType = "String"
	AttributeDataTypeNumber   AttributeDataType = "Number"
	AttributeDataTypeDateTime AttributeDataType = "DateTime"
	AttributeDataTypeBoolean  AttributeDataType = "Boolean"
)

var attributeDataTypeCatalog = enum.New[AttributeDataType]("AttributeDataType",
	enum.Entry[AttributeDataType]{Name: "String", Value: AttributeDataTypeString},
	enum.Entry[AttributeDataType]{Name: "Number", Value: AttributeDataTypeNumber},
	enum.Entry[AttributeDataType]{Name: "DateTime", Value: AttributeDataTypeDateTime},
	enum.Entry[AttributeDataType]{Name: "Boolean", Value: AttributeDataTypeBoolean},
)

func ParseAttributeDataType(s string) (AttributeDataType, error) {
	return attributeDataTypeCatalog.Parse(s)
}

func (AttributeDataType) Catalog() *enum.Catalog[AttributeDataType] {
	return attributeDataTypeCatalog
}

func (AttributeDataType) Values() []AttributeDataType {
	return attributeDataTypeCatalog.Values()
}

func (v AttributeDataType) String() string {
	return attributeDataTypeCatalog.CanonicalString(v)
}

func (v AttributeDataType) MarshalText() ([]byte, error) {
	s, err := attributeDataTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *AttributeDataType) UnmarshalText(text []byte) error {
	parsed, err := attributeDataTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
