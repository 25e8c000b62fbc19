// internal/domain/homework/record.go
package homework

import "fmt"

// Record is a single homework entry after validation. The remote service owns
// the entity; the bot only reads it.
type Record struct {
	Name   string
	Status string
}

// RecordFrom converts one element of the homeworks list into a typed Record.
// It is the untrusted-input boundary: past this point the fields are known to
// be present and to be strings.
func RecordFrom(v any) (Record, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Record{}, &SchemaError{
			Kind: SchemaWrongType,
			Msg:  fmt.Sprintf("homework entry is not an object: got %T", v),
		}
	}

	name, err := stringField(obj, "homework_name")
	if err != nil {
		return Record{}, err
	}
	status, err := stringField(obj, "status")
	if err != nil {
		return Record{}, err
	}

	return Record{Name: name, Status: status}, nil
}

func stringField(obj map[string]any, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", &SchemaError{
			Kind:  SchemaMissingKey,
			Field: key,
			Msg:   fmt.Sprintf("homework entry has no %q key", key),
		}
	}
	value, ok := raw.(string)
	if !ok {
		return "", &SchemaError{
			Kind:  SchemaWrongType,
			Field: key,
			Msg:   fmt.Sprintf("homework entry field %q is not a string: got %T", key, raw),
		}
	}
	return value, nil
}
