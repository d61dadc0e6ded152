package field

import (
	"fmt"
	"strconv"
)

// SpecError reports a field spec that cannot be constructed.
type SpecError struct {
	Name   string
	Reason string
}

func (e *SpecError) Error() string {
	if e.Name == "" {
		return "invalid field spec: " + e.Reason
	}
	return fmt.Sprintf("invalid field spec %q: %s", e.Name, e.Reason)
}

// InvalidValueError is returned by SetValue for values outside a field's domain.
type InvalidValueError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("field %q: invalid value %v (%T): %s", e.Field, e.Value, e.Value, e.Reason)
}

// ValidationError reports an unmet field constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func quote(s string) string { return strconv.Quote(s) }
