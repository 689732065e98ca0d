package client

const (
	RecoveryOptionTypeShape         = "RecoveryOptionType"
	RecoveryOptionTypeFieldPriority = "Priority"
	RecoveryOptionTypeFieldName     = "Name"
)

type RecoveryOptionType struct {
	Priority int32                  `json:"Priority" yaml:"Priority"`
	Name     RecoveryOptionNameType `json:"Name,omitempty" yaml:"Name,omitempty"`
}
