package client

const (
	NotifyEmailTypeShape         = "NotifyEmailType"
	NotifyEmailTypeFieldSubject  = "Subject"
	NotifyEmailTypeFieldHTMLBody = "HtmlBody"
	NotifyEmailTypeFieldTextBody = "TextBody"
)

type NotifyEmailType struct {
	Subject  string `json:"Subject,omitempty" yaml:"Subject,omitempty"`
	HTMLBody string `json:"HtmlBody,omitempty" yaml:"HtmlBody,omitempty"`
	TextBody string `json:"TextBody,omitempty" yaml:"TextBody,omitempty"`
}
