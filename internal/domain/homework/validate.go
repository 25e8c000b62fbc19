// internal/domain/homework/validate.go
package homework

import "fmt"

// ExtractHomeworks checks the shape of an API response document and returns its
// homeworks list in the original order. An empty list is valid and means the
// status was not updated. Elements stay untyped; RecordFrom converts them.
func ExtractHomeworks(document any) ([]any, error) {
	obj, ok := document.(map[string]any)
	if !ok {
		return nil, &SchemaError{
			Kind: SchemaWrongType,
			Msg:  fmt.Sprintf("API response is not an object: got %T", document),
		}
	}

	raw, ok := obj["homeworks"]
	if !ok {
		return nil, &SchemaError{
			Kind:  SchemaMissingKey,
			Field: "homeworks",
			Msg:   "API response has no \"homeworks\" key",
		}
	}

	homeworks, ok := raw.([]any)
	if !ok {
		return nil, &SchemaError{
			Kind:  SchemaWrongType,
			Field: "homeworks",
			Msg:   fmt.Sprintf("\"homeworks\" is not a list: got %T", raw),
		}
	}

	return homeworks, nil
}
