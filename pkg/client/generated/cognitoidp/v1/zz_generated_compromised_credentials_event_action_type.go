package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type CompromisedCredentialsEventActionType string

const (
	CompromisedCredentialsEventActionTypeBlock    CompromisedCredentialsEventActionType = "BLOCK"
	CompromisedCredentialsEventActionTypeNoAction CompromisedCredentialsEventActionType = "NO_ACTION"
)

var compromisedCredentialsEventActionTypeCatalog = enum.New[CompromisedCredentialsEventActionType]("CompromisedCredentialsEventActionType",
	enum.Entry[CompromisedCredentialsEventActionType]{Name: "Block", Value: CompromisedCredentialsEventActionTypeBlock},
	enum.Entry[CompromisedCredentialsEventActionType]{Name: "NoAction", Value: CompromisedCredentialsEventActionTypeNoAction},
)

func ParseCompromisedCredentialsEventActionType(s string) (CompromisedCredentialsEventActionType, error) {
	return compromisedCredentialsEventActionTypeCatalog.Parse(s)
}

func (CompromisedCredentialsEventActionType) Catalog() *enum.Catalog[CompromisedCredentialsEventActionType] {
	return compromisedCredentialsEventActionTypeCatalog
}

func (CompromisedCredentialsEventActionType) Values() []CompromisedCredentialsEventActionType {
	return compromisedCredentialsEventActionTypeCatalog.Values()
}

func (v CompromisedCredentialsEventActionType) String() string {
	return compromisedCredentialsEventActionTypeCatalog.CanonicalString(v)
}

func (v CompromisedCredentialsEventActionType) MarshalText() ([]byte, error) {
	s, err := compromisedCredentialsEventActionTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *CompromisedCredentialsEventActionType) UnmarshalText(text []byte) error {
	parsed, err := compromisedCredentialsEventActionTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
