// internal/domain/homework/errors.go
package homework

import "fmt"

// SchemaErrorKind distinguishes the two ways a response can break the expected shape.
type SchemaErrorKind string

const (
	SchemaMissingKey SchemaErrorKind = "MISSING_KEY"
	SchemaWrongType  SchemaErrorKind = "WRONG_TYPE"
)

// SchemaError reports API data that does not match the expected shape.
type SchemaError struct {
	Kind  SchemaErrorKind
	Field string // the offending field, empty when the whole document is malformed
	Msg   string
}

func (e *SchemaError) Error() string { return e.Msg }

// UnknownStatusError reports a status code outside the closed catalog.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status %q", e.Status)
}
