package client

const (
	DescribeUserPoolDomainOutputShape                  = "DescribeUserPoolDomainOutput"
	DescribeUserPoolDomainOutputFieldDomainDescription = "DomainDescription"
)

type DescribeUserPoolDomainOutput struct {
	DomainDescription *DomainDescriptionType `json:"DomainDescription,omitempty" yaml:"DomainDescription,omitempty"`
}
