package cast

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/dmitrymomot/envkit/pkg/kind"
)

// Object is the default wrapper for JSON object values.
// Nested JSON objects are wrapped as Object as well, including those inside
// arrays.
type Object map[string]any

// NewObject is the default ObjectFactory. The payload must be a JSON object.
func NewObject(payload any) (any, error) {
	m, ok := payload.(map[string]any)
	if !ok {
		if o, isObj := payload.(Object); isObj {
			return o, nil
		}
		return nil, fmt.Errorf("expected a JSON object, got %s", jsonType(payload))
	}
	return wrap(m).(Object), nil
}

func wrap(v any) any {
	switch t := v.(type) {
	case map[string]any:
		o := make(Object, len(t))
		for k, item := range t {
			o[k] = wrap(item)
		}
		return o
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = wrap(item)
		}
		return out
	default:
		return v
	}
}

// Has reports whether key is present.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Get returns the value stored under a dot separated path, e.g. "db.port".
func (o Object) Get(path string) (any, bool) {
	var cur any = o
	for _, key := range strings.Split(path, ".") {
		obj, ok := cur.(Object)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// GetString returns the string value under path, or "" when it is missing or
// not a string.
func (o Object) GetString(path string) string {
	v, _ := o.Get(path)
	s, _ := v.(string)
	return s
}

// Object returns the nested object under path.
func (o Object) Object(path string) (Object, bool) {
	v, ok := o.Get(path)
	if !ok {
		return nil, false
	}
	nested, ok := v.(Object)
	return nested, ok
}

// DecodeInto returns an ObjectFactory that decodes the payload into a T
// using its json tags.
//
// Example:
//
//	type DB struct {
//	    Host string `json:"host"`
//	    Port int    `json:"port"`
//	}
//	db, err := cast.To[DB](raw, kind.Object, cast.WithObjectFactory(cast.DecodeInto[DB]()))
func DecodeInto[T any]() ObjectFactory {
	return func(payload any) (any, error) {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func convertObject(value any, o *Options) (any, error) {
	data, err := objectBytes(value)
	if err != nil {
		return nil, err
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, formatError(kind.Object, jsonError(err))
	}

	if len(o.Schema) > 0 {
		if err := validateSchema(o.Schema, data); err != nil {
			return nil, err
		}
	}

	factory := o.ObjectFactory
	if factory == nil {
		factory = NewObject
	}
	v, err := factory(payload)
	if err != nil {
		return nil, formatError(kind.Object, err)
	}
	return v, nil
}

// objectBytes returns the JSON document for a raw value. Strings are taken
// as JSON text; any other Go value is encoded first.
func objectBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(strings.TrimSpace(v)), nil
	case []byte:
		return bytes.TrimSpace(v), nil
	case json.RawMessage:
		return v, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: object value cannot be encoded: %w", ErrInvalidArgument, err)
	}
	return data, nil
}

func validateSchema(schema, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%w: json schema: %w", ErrInvalidArgument, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatError(kind.Object, numberedErrors("schema validation failed", msgs))
}

// numberedErrors formats messages as a single error with a numbered list.
func numberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}

// jsonError keeps the offset of a syntax error and drops the rest, which
// quotes the offending input.
func jsonError(err error) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return fmt.Errorf("invalid JSON at offset %d", se.Offset)
	}
	return errors.New("invalid JSON")
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
