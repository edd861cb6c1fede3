package gears

import (
	"errors"
	"fmt"
)

// ErrParameter is matched by errors.Is for every ParameterError.
var ErrParameter = errors.New("invalid gear parameter")

// ParameterError reports a parameter outside its legal range. It names the
// offending field, the value supplied and the rule it violated.
type ParameterError struct {
	Field string
	Value float64
	Rule  string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("gear parameter %s = %v: must be %s", e.Field, e.Value, e.Rule)
}

func (e *ParameterError) Is(target error) bool { return target == ErrParameter }

func errParam(field string, value float64, rule string) error {
	return &ParameterError{Field: field, Value: value, Rule: rule}
}
