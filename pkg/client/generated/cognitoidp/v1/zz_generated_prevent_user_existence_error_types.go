package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type PreventUserExistenceErrorTypes string

const (
	PreventUserExistenceErrorTypesLegacy  PreventUserExistenceErrorTypes = "LEGACY"
	PreventUserExistenceErrorTypesEnabled PreventUserExistenceErrorTypes = "ENABLED"
)

var preventUserExistenceErrorTypesCatalog = enum.New[PreventUserExistenceErrorTypes]("PreventUserExistenceErrorTypes",
	enum.Entry[PreventUserExistenceErrorTypes]{Name: "Legacy", Value: PreventUserExistenceErrorTypesLegacy},
	enum.Entry[PreventUserExistenceErrorTypes]{Name: "Enabled", Value: PreventUserExistenceErrorTypesEnabled},
)

func ParsePreventUserExistenceErrorTypes(s string) (PreventUserExistenceErrorTypes, error) {
	return preventUserExistenceErrorTypesCatalog.Parse(s)
}

func (PreventUserExistenceErrorTypes) Catalog() *enum.Catalog[PreventUserExistenceErrorTypes] {
	return preventUserExistenceErrorTypesCatalog
}

func (PreventUserExistenceErrorTypes) Values() []PreventUserExistenceErrorTypes {
	return preventUserExistenceErrorTypesCatalog.Values()
}

func (v PreventUserExistenceErrorTypes) String() string {
	return preventUserExistenceErrorTypesCatalog.CanonicalString(v)
}

func (v PreventUserExistenceErrorTypes) MarshalText() ([]byte, error) {
	s, err := preventUserExistenceErrorTypesCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *PreventUserExistenceErrorTypes) UnmarshalText(text []byte) error {
	parsed, err := preventUserExistenceErrorTypesCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
