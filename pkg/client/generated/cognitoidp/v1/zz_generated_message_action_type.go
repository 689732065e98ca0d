package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type MessageActionType string

const (
	MessageActionTypeResend   MessageActionType = "RESEND"
	MessageActionTypeSuppress MessageActionType = "SUPPRESS"
)

var messageActionTypeCatalog = enum.New[MessageActionType]("MessageActionType",
	enum.Entry[MessageActionType]{Name: "Resend", Value: MessageActionTypeResend},
	enum.Entry[MessageActionType]{Name: "Suppress", Value: MessageActionTypeSuppress},
)

func ParseMessageActionType(s string) (MessageActionType, error) {
	return messageActionTypeCatalog.Parse(s)
}

func (MessageActionType) Catalog() *enum.Catalog[MessageActionType] {
	return messageActionTypeCatalog
}

func (MessageActionType) Values() []MessageActionType {
	return messageActionTypeCatalog.Values()
}

func (v MessageActionType) String() string {
	return messageActionTypeCatalog.CanonicalString(v)
}

func (v MessageActionType) MarshalText() ([]byte, error) {
	s, err := messageActionTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *MessageActionType) UnmarshalText(text []byte) error {
	parsed, err := messageActionTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
