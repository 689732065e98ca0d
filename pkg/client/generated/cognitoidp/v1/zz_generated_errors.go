package client

import (
	"fmt"

	"github.com/aws/smithy-go"
)

const ErrorNamespace = "com.amazonaws.cognito.identity.idp"

type CodeMismatchException struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (e *CodeMismatchException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *CodeMismatchException) ErrorMessage() string {
	return e.Message
}

func (e *CodeMismatchException) ErrorCode() string {
	return "CodeMismatchException"
}

func (e *CodeMismatchException) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

type EnableSoftwareTokenMFAException struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (e *EnableSoftwareTokenMFAException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *EnableSoftwareTokenMFAException) ErrorMessage() string {
	return e.Message
}

func (e *EnableSoftwareTokenMFAException) ErrorCode() string {
	return "EnableSoftwareTokenMFAException"
}

func (e *EnableSoftwareTokenMFAException) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

type InternalErrorException struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (e *InternalErrorException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *InternalErrorException) ErrorMessage() string {
	return e.Message
}

func (e *InternalErrorException) ErrorCode() string {
	return "InternalErrorException"
}

func (e *InternalErrorException) ErrorFault() smithy.ErrorFault {
	return smithy.FaultServer
}

type InvalidParameterException struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (e *InvalidParameterException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *InvalidParameterException) ErrorMessage() string {
	return e.Message
}

func (e *InvalidParameterException) ErrorCode() string {
	return "InvalidParameterException"
}

func (e *InvalidParameterException) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

type NotAuthorizedException struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (e *NotAuthorizedException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *NotAuthorizedException) ErrorMessage() string {
	return e.Message
}

func (e *NotAuthorizedException) ErrorCode() string {
	return "NotAuthorizedException"
}

func (e *NotAuthorizedException) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

type ResourceNotFoundException struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (e *ResourceNotFoundException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *ResourceNotFoundException) ErrorMessage() string {
	return e.Message
}

func (e *ResourceNotFoundException) ErrorCode() string {
	return "ResourceNotFoundException"
}

func (e *ResourceNotFoundException) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

type TooManyRequestsException struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (e *TooManyRequestsException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *TooManyRequestsException) ErrorMessage() string {
	return e.Message
}

func (e *TooManyRequestsException) ErrorCode() string {
	return "TooManyRequestsException"
}

func (e *TooManyRequestsException) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

type UnsupportedIdentityProviderException struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (e *UnsupportedIdentityProviderException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *UnsupportedIdentityProviderException) ErrorMessage() string {
	return e.Message
}

func (e *UnsupportedIdentityProviderException) ErrorCode() string {
	return "UnsupportedIdentityProviderException"
}

func (e *UnsupportedIdentityProviderException) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

type UserNotFoundException struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (e *UserNotFoundException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *UserNotFoundException) ErrorMessage() string {
	return e.Message
}

func (e *UserNotFoundException) ErrorCode() string {
	return "UserNotFoundException"
}

func (e *UserNotFoundException) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

type UsernameExistsException struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (e *UsernameExistsException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *UsernameExistsException) ErrorMessage() string {
	return e.Message
}

func (e *UsernameExistsException) ErrorCode() string {
	return "UsernameExistsException"
}

func (e *UsernameExistsException) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

// NewAPIError returns the exception type registered for code, or a generic API
// error for codes outside this vocabulary.
func NewAPIError(code, message string) smithy.APIError {
	switch code {
	case "CodeMismatchException":
		return &CodeMismatchException{Message: message}
	case "EnableSoftwareTokenMFAException":
		return &EnableSoftwareTokenMFAException{Message: message}
	case "InternalErrorException":
		return &InternalErrorException{Message: message}
	case "InvalidParameterException":
		return &InvalidParameterException{Message: message}
	case "NotAuthorizedException":
		return &NotAuthorizedException{Message: message}
	case "ResourceNotFoundException":
		return &ResourceNotFoundException{Message: message}
	case "TooManyRequestsException":
		return &TooManyRequestsException{Message: message}
	case "UnsupportedIdentityProviderException":
		return &UnsupportedIdentityProviderException{Message: message}
	case "UserNotFoundException":
		return &UserNotFoundException{Message: message}
	case "UsernameExistsException":
		return &UsernameExistsException{Message: message}
	}
	return &smithy.GenericAPIError{Code: code, Message: message, Fault: smithy.FaultUnknown}
}
