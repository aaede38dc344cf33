package greeting

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Fields holds the values extracted from a request body with defaults applied.
type Fields struct {
	values map[string]any
}

// Text returns the named text field, or "" when it is absent.
func (f Fields) Text(name string) string {
	s, _ := f.values[name].(string)
	return s
}

// Int returns the named integer field and whether it is present.
func (f Fields) Int(name string) (int, bool) {
	n, ok := f.values[name].(int)
	return n, ok
}

// Has reports whether the named field resolved to a value.
func (f Fields) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Extract decodes body once and overlays every declared field it sets on the
// template defaults. The boolean is false when body was absent or could not be
// decoded; the returned fields are then exactly the defaults.
func (t Template) Extract(body *string) (Fields, bool) {
	f := t.Defaults()
	if body == nil {
		return f, false
	}
	decoded, err := decodeFields(t.Fields, *body)
	if err != nil {
		return f, false
	}
	for k, v := range decoded {
		f.values[k] = v
	}
	return f, true
}

var jsonNull = []byte("null")

func decodeFields(specs []FieldSpec, text string) (map[string]any, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("body is not an object")
	}

	out := make(map[string]any, len(specs))
	for _, s := range specs {
		v, ok := raw[s.Name]
		if !ok || bytes.Equal(v, jsonNull) {
			continue
		}
		switch s.Kind {
		case Text:
			var str string
			if err := json.Unmarshal(v, &str); err != nil {
				return nil, fmt.Errorf("field %s: %w", s.Name, err)
			}
			out[s.Name] = str
		case Integer:
			var n int
			if err := json.Unmarshal(v, &n); err != nil {
				return nil, fmt.Errorf("field %s: %w", s.Name, err)
			}
			out[s.Name] = n
		default:
			return nil, fmt.Errorf("field %s: unknown kind %d", s.Name, s.Kind)
		}
	}
	return out, nil
}
