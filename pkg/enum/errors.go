package enum

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptyInput        = errors.New("empty input")
	ErrUnrecognizedValue = errors.New("unrecognized value")
)

// EmptyInputError is returned when a required enumeration value is empty or absent.
type EmptyInputError struct {
	Type string
}

func (e *EmptyInputError) Error() string {
	return ErrEmptyInput.Error()
}

func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// UnrecognizedValueError carries the offending input so client/server vocabulary
// skew can be diagnosed from the error alone.
type UnrecognizedValueError struct {
	Type  string
	Value string
}

func (e *UnrecognizedValueError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnrecognizedValue, e.Value)
}

func (e *UnrecognizedValueError) Is(target error) bool {
	return target == ErrUnrecognizedValue
}

func IsEmptyInput(err error) bool {
	var e *EmptyInputError
	return errors.As(err, &e)
}

func IsUnrecognizedValue(err error) bool {
	var e *UnrecognizedValueError
	return errors.As(err, &e)
}

// UnrecognizedValue returns the offending input of an unrecognized value error
// anywhere in err's chain.
func UnrecognizedValue(err error) (string, bool) {
	var e *UnrecognizedValueError
	if errors.As(err, &e) {
		return e.Value, true
	}
	return "", false
}
