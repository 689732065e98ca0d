package client

const (
	CustomDomainConfigTypeShape               = "CustomDomainConfigType"
	CustomDomainConfigTypeFieldCertificateARN = "CertificateArn"
)

type CustomDomainConfigType struct {
	CertificateARN string `json:"CertificateArn,omitempty" yaml:"CertificateArn,omitempty"`
}
