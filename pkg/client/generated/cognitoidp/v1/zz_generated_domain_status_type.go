package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type DomainStatusType string

const (
	DomainStatusTypeCreating DomainStatusType = "CREATING"
	DomainStatusTypeDeleting DomainStatusType = "DELETING"
	DomainStatusTypeUpdating DomainStatusType = "UPDATING"
	DomainStatusTypeActive   DomainStatusType = "ACTIVE"
	DomainStatusTypeFailed   DomainStatusType = "FAILED"
)

var domainStatusTypeCatalog = enum.New[DomainStatusType]("DomainStatusType",
	enum.Entry[DomainStatusType]{Name: "Creating", Value: DomainStatusTypeCreating},
	enum.Entry[DomainStatusType]{Name: "Deleting", Value: DomainStatusTypeDeleting},
	enum.Entry[DomainStatusType]{Name: "Updating", Value: DomainStatusTypeUpdating},
	enum.Entry[DomainStatusType]{Name: "Active", Value: DomainStatusTypeActive},
	enum.Entry[DomainStatusType]{Name: "Failed", Value: DomainStatusTypeFailed},
)

func ParseDomainStatusType(s string) (DomainStatusType, error) {
	return domainStatusTypeCatalog.Parse(s)
}

func (DomainStatusType) Catalog() *enum.Catalog[DomainStatusType] {
	return domainStatusTypeCatalog
}

func (DomainStatusType) Values() []DomainStatusType {
	return domainStatusTypeCatalog.Values()
}

func (v DomainStatusType) String() string {
	return domainStatusTypeCatalog.CanonicalString(v)
}

func (v DomainStatusType) MarshalText() ([]byte, error) {
	s, err := domainStatusTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *DomainStatusType) UnmarshalText(text []byte) error {
	parsed, err := domainStatusTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
