package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type AccountTakeoverEventActionType string

const (
	AccountTakeoverEventActionTypeBlock           AccountTakeoverEventActionType = "BLOCK"
	AccountTakeoverEventActionTypeMFAIfConfigured AccountTakeoverEventActionType = "MFA_IF_CONFIGURED"
	AccountTakeoverEventActionTypeMFARequired     AccountTakeoverEventActionType = "MFA_REQUIRED"
	AccountTakeoverEventActionTypeNoAction        AccountTakeoverEventActionType = "NO_ACTION"
)

var accountTakeoverEventActionTypeCatalog = enum.New[AccountTakeoverEventActionType]("AccountTakeoverEventActionType",
	enum.Entry[AccountTakeoverEventActionType]{Name: "Block", Value: AccountTakeoverEventActionTypeBlock},
	enum.Entry[AccountTakeoverEventActionType]{Name: "MFAIfConfigured", Value: AccountTakeoverEventActionTypeMFAIfConfigured},
	enum.Entry[AccountTakeoverEventActionType]{Name: "MFARequired", Value: AccountTakeoverEventActionTypeMFARequired},
	enum.Entry[AccountTakeoverEventActionType]{Name: "NoAction", Value: AccountTakeoverEventActionTypeNoAction},
)

func ParseAccountTakeoverEventActionType(s string) (AccountTakeoverEventActionType, error) {
	return accountTakeoverEventActionTypeCatalog.Parse(s)
}

func (AccountTakeoverEventActionType) Catalog() *enum.Catalog[AccountTakeoverEventActionType] {
	return accountTakeoverEventActionTypeCatalog
}

func (AccountTakeoverEventActionType) Values() []AccountTakeoverEventActionType {
	return accountTakeoverEventActionTypeCatalog.Values()
}

func (v AccountTakeoverEventActionType) String() string {
	return accountTakeoverEventActionTypeCatalog.CanonicalString(v)
}

func (v AccountTakeoverEventActionType) MarshalText() ([]byte, error) {
	s, err := accountTakeoverEventActionTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *AccountTakeoverEventActionType) UnmarshalText(text []byte) error {
	parsed, err := accountTakeoverEventActionTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
