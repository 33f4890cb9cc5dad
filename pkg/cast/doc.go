// Package cast converts raw environment values into typed Go values.
//
// Every data kind from package kind has exactly one Converter registered in a
// table that is built at start-up and never changes. Cast looks the converter
// up and applies it, forwarding kind-specific options:
//
//	n, err := cast.Cast("42", kind.Integer)                              // int64(42)
//	ok, err := cast.Cast("TRUE", kind.Boolean)                           // true
//	xs, err := cast.Cast("1, 2, 3", kind.List, cast.WithItemKind(kind.Integer)) // []any{int64(1), int64(2), int64(3)}
//
// # Kinds and Go types
//
//	string        string
//	integer       int64
//	float         float64
//	boolean       bool ("true"/"false", "1"/"0", any case)
//	date          time.Time at midnight UTC
//	timestamp     time.Time (RFC 3339)
//	duration      time.Duration
//	list          []any of the item kind
//	enumeration   the member value of the supplied Enumeration
//	object        Object, or whatever the ObjectFactory returns
//	uuid          uuid.UUID
//	uri           *url.URL (scheme required)
//	ipv4          netip.Addr
//	email_address string
//	hexadecimal   []byte
//
// # Enumerations and objects
//
// Enumeration values are resolved against a caller-supplied Enumeration.
// NewEnumeration builds one from a map, EnumerationOf from values that
// implement fmt.Stringer:
//
//	colors := cast.EnumerationOf("Color", Red, Green, Blue)
//	c, err := cast.Cast("Red", kind.Enumeration, cast.WithEnumeration(colors))
//
// Object values are JSON documents. The decoded payload is optionally checked
// against a JSON schema (WithSchema) and handed to an ObjectFactory. Without a
// factory the payload is wrapped in Object; DecodeInto decodes into a struct.
//
// # Errors
//
//   - ErrInvalidArgument: the kind is not a data kind, or a required option
//     (item kind, enumeration) is missing.
//   - ErrFormat: the value does not parse as the requested kind.
//   - ErrUnregisteredKind: a data kind without a converter.
//
// Error messages never include the raw value.
//
// # Formatting
//
// Format is the inverse of Cast: it writes typed values back in a form Cast
// accepts, so Cast(Format(v), k) == v for scalar kinds.
package cast
