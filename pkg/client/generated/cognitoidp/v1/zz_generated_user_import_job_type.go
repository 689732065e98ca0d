package client

import (
	"time"
)

const (
	UserImportJobTypeShape                      = "UserImportJobType"
	UserImportJobTypeFieldJobName               = "JobName"
	UserImportJobTypeFieldJobID                 = "JobId"
	UserImportJobTypeFieldUserPoolID            = "UserPoolId"
	UserImportJobTypeFieldPreSignedURL          = "PreSignedUrl"
	UserImportJobTypeFieldCreationDate          = "CreationDate"
	UserImportJobTypeFieldStartDate             = "StartDate"
	UserImportJobTypeFieldCompletionDate        = "CompletionDate"
	UserImportJobTypeFieldStatus                = "Status"
	UserImportJobTypeFieldCloudWatchLogsRoleARN = "CloudWatchLogsRoleArn"
	UserImportJobTypeFieldImportedUsers         = "ImportedUsers"
	UserImportJobTypeFieldSkippedUsers          = "SkippedUsers"
	UserImportJobTypeFieldFailedUsers           = "FailedUsers"
	UserImportJobTypeFieldCompletionMessage     = "CompletionMessage"
)

type UserImportJobType struct {
	JobName               string                  `json:"JobName,omitempty" yaml:"JobName,omitempty"`
	JobID                 string                  `json:"JobId,omitempty" yaml:"JobId,omitempty"`
	UserPoolID            string                  `json:"UserPoolId,omitempty" yaml:"UserPoolId,omitempty"`
	PreSignedURL          string                  `json:"PreSignedUrl,omitempty" yaml:"PreSignedUrl,omitempty"`
	CreationDate          *time.Time              `json:"CreationDate,omitempty" yaml:"CreationDate,omitempty"`
	StartDate             *time.Time              `json:"StartDate,omitempty" yaml:"StartDate,omitempty"`
	CompletionDate        *time.Time              `json:"CompletionDate,omitempty" yaml:"CompletionDate,omitempty"`
	Status                UserImportJobStatusType `json:"Status,omitempty" yaml:"Status,omitempty"`
	CloudWatchLogsRoleARN string                  `json:"CloudWatchLogsRoleArn,omitempty" yaml:"CloudWatchLogsRoleArn,omitempty"`
	ImportedUsers         int64                   `json:"ImportedUsers,omitempty" yaml:"ImportedUsers,omitempty"`
	SkippedUsers          int64                   `json:"SkippedUsers,omitempty" yaml:"SkippedUsers,omitempty"`
	FailedUsers           int64                   `json:"FailedUsers,omitempty" yaml:"FailedUsers,omitempty"`
	CompletionMessage     string                  `json:"CompletionMessage,omitempty" yaml:"CompletionMessage,omitempty"`
}
