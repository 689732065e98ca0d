package client

const (
	DomainDescriptionTypeShape                       = "DomainDescriptionType"
	DomainDescriptionTypeFieldUserPoolID             = "UserPoolId"
	DomainDescriptionTypeFieldAWSAccountID           = "AWSAccountId"
	DomainDescriptionTypeFieldDomain                 = "Domain"
	DomainDescriptionTypeFieldS3Bucket               = "S3Bucket"
	DomainDescriptionTypeFieldCloudFrontDistribution = "CloudFrontDistribution"
	DomainDescriptionTypeFieldVersion                = "Version"
	DomainDescriptionTypeFieldStatus                 = "Status"
	DomainDescriptionTypeFieldCustomDomainConfig     = "CustomDomainConfig"
)

type DomainDescriptionType struct {
	UserPoolID             string                  `json:"UserPoolId,omitempty" yaml:"UserPoolId,omitempty"`
	AWSAccountID           string                  `json:"AWSAccountId,omitempty" yaml:"AWSAccountId,omitempty"`
	Domain                 string                  `json:"Domain,omitempty" yaml:"Domain,omitempty"`
	S3Bucket               string                  `json:"S3Bucket,omitempty" yaml:"S3Bucket,omitempty"`
	CloudFrontDistribution string                  `json:"CloudFrontDistribution,omitempty" yaml:"CloudFrontDistribution,omitempty"`
	Version                string                  `json:"Version,omitempty" yaml:"Version,omitempty"`
	Status                 DomainStatusType        `json:"Status,omitempty" yaml:"Status,omitempty"`
	CustomDomainConfig     *CustomDomainConfigType `json:"CustomDomainConfig,omitempty" yaml:"CustomDomainConfig,omitempty"`
}
