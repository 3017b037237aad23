package chatwire

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned by Field and SetField when the key does not
// name a declared field of the type.
var ErrUnknownField = errors.New("unknown field")

// ErrFieldValue is returned by SetField when the value cannot be assigned
// to the named field.
var ErrFieldValue = errors.New("incompatible field value")

// SchemaError reports a payload that does not conform to the declared
// shape: a missing required field, an unknown enum member, or a
// discriminant that matches no variant. It is raised at construction time
// and never recovered internally.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation: %s: %s", e.Field, e.Reason)
}

func schemaErr(field, reason string) error {
	return &SchemaError{Field: field, Reason: reason}
}

func schemaErrf(field, format string, args ...any) error {
	return &SchemaError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
