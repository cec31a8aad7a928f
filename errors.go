package forms

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEnumArgument is matched by every *InvalidEnumArgumentError.
	ErrInvalidEnumArgument = errors.New("forms: invalid enum argument")

	// ErrInvalidTopology reports a parent assignment that would break the
	// single-owner tree: a control parented to itself or to one of its own
	// descendants, or a top-level control placed inside another control.
	ErrInvalidTopology = errors.New("forms: invalid control topology")
)

// InvalidEnumArgumentError rejects a value outside a discrete enum.
type InvalidEnumArgumentError struct {
	ParamName string
	Value     int
	EnumName  string
}

func (e *InvalidEnumArgumentError) Error() string {
	return fmt.Sprintf("forms: the value of argument '%s' (%d) is invalid for enum type '%s'",
		e.ParamName, e.Value, e.EnumName)
}

// Is makes errors.Is(err, ErrInvalidEnumArgument) succeed.
func (e *InvalidEnumArgumentError) Is(target error) bool {
	return target == ErrInvalidEnumArgument
}

func invalidEnum(value int, enumName string) error {
	return &InvalidEnumArgumentError{ParamName: "value", Value: value, EnumName: enumName}
}

// ArgumentError is a generic rejection of an argument.
type ArgumentError struct {
	ParamName string
	Reason    string
	Err       error
}

func (e *ArgumentError) Error() string {
	if e.ParamName == "" {
		return "forms: " + e.Reason
	}
	return fmt.Sprintf("forms: invalid argument '%s': %s", e.ParamName, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func topologyError(reason string) error {
	return &ArgumentError{ParamName: "value", Reason: reason, Err: ErrInvalidTopology}
}
