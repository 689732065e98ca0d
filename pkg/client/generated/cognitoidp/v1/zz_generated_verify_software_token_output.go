package client

const (
	VerifySoftwareTokenOutputShape        = "VerifySoftwareTokenOutput"
	VerifySoftwareTokenOutputFieldStatus  = "Status"
	VerifySoftwareTokenOutputFieldSession = "Session"
)

type VerifySoftwareTokenOutput struct {
	Status  VerifySoftwareTokenResponseType `json:"Status,omitempty" yaml:"Status,omitempty"`
	Session string                          `json:"Session,omitempty" yaml:"Session,omitempty"`
}
