package model

import "fmt"

// DecodeError reports a document field that could not be read as the
// expected type. Absent fields are not errors; they decode to zero
// values. A wrong-typed field is surfaced instead of silently dropped.
type DecodeError struct {
	Collection string
	ID         string
	Field      string
	Want       string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s/%s: field %q is not a %s", e.Collection, e.ID, e.Field, e.Want)
}

func stringField(collection, id string, data map[string]interface{}, key string) (string, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &DecodeError{Collection: collection, ID: id, Field: key, Want: "string"}
	}
	return s, nil
}

func intField(collection, id string, data map[string]interface{}, key string) (int64, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return int64(n), nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, &DecodeError{Collection: collection, ID: id, Field: key, Want: "number"}
	}
}

func boolField(collection, id string, data map[string]interface{}, key string) (bool, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, &DecodeError{Collection: collection, ID: id, Field: key, Want: "bool"}
	}
	return b, nil
}

func stringSliceField(collection, id string, data map[string]interface{}, key string) ([]string, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return nil, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, &DecodeError{Collection: collection, ID: id, Field: key, Want: "array of strings"}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &DecodeError{Collection: collection, ID: id, Field: key, Want: "array of strings"}
		}
		out = append(out, s)
	}
	return out, nil
}
