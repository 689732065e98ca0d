package convert

import (
	"strings"

	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

// ErrorFactory builds the typed exception for a service error code.
type ErrorFactory func(code, message string) smithy.APIError

type errorBody struct {
	Type         string `json:"__type"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	MessageUpper string `json:"Message"`
}

// DecodeError turns an error response body into the exception named by its
// __type member. The type may be namespaced ("ns#Code") or carry a trailing
// ":url" suffix.
func DecodeError(body []byte, factory ErrorFactory) error {
	var e errorBody
	if err := wire.Unmarshal(body, &e); err != nil {
		return errors.Wrap(err, "decoding error response")
	}

	code := sanitizeErrorCode(e.Type)
	if code == "" {
		code = sanitizeErrorCode(e.Code)
	}
	if code == "" {
		return errors.New("error response has no error code")
	}

	message := e.Message
	if message == "" {
		message = e.MessageUpper
	}
	return factory(code, message)
}

func sanitizeErrorCode(code string) string {
	if i := strings.Index(code, ":"); i >= 0 {
		code = code[:i]
	}
	if i := strings.LastIndex(code, "#"); i >= 0 {
		code = code[i+1:]
	}
	return code
}
