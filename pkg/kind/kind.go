package kind

import (
	"fmt"
	"strings"
)

// Kind identifies the target type of a coercion.
type Kind uint8

const (
	Invalid Kind = iota
	String
	Integer
	Float
	Boolean
	Date
	Timestamp
	Duration
	List
	Enumeration
	Object
	UUID
	URI
	IPv4
	EmailAddress
	Hexadecimal

	sentinel
)

var names = [...]string{
	Invalid:      "invalid",
	String:       "string",
	Integer:      "integer",
	Float:        "float",
	Boolean:      "boolean",
	Date:         "date",
	Timestamp:    "timestamp",
	Duration:     "duration",
	List:         "list",
	Enumeration:  "enumeration",
	Object:       "object",
	UUID:         "uuid",
	URI:          "uri",
	IPv4:         "ipv4",
	EmailAddress: "email_address",
	Hexadecimal:  "hexadecimal",
}

// aliases maps alternative spellings accepted by Parse.
var aliases = map[string]Kind{
	"str":     String,
	"int":     Integer,
	"decimal": Float,
	"bool":    Boolean,
	"enum":    Enumeration,
	"email":   EmailAddress,
	"hex":     Hexadecimal,
	"url":     URI,
}

// IsValid reports whether k is a member of the data kind set.
func (k Kind) IsValid() bool {
	return k > Invalid && k < sentinel
}

// String returns the canonical lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It is also picked up by yaml.v3 and caarlos0/env.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Parse resolves a kind by name. Matching is case-insensitive and ignores
// surrounding whitespace; a few common aliases ("int", "bool", "enum") are
// accepted as well.
func Parse(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k := String; k < sentinel; k++ {
		if names[k] == n {
			return k, nil
		}
	}
	if k, ok := aliases[n]; ok {
		return k, nil
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// All returns every valid kind in declaration order.
func All() []Kind {
	all := make([]Kind, 0, int(sentinel)-1)
	for k := String; k < sentinel; k++ {
		all = append(all, k)
	}
	return all
}

// IsScalar reports whether values of kind k have a single-token string form.
// List and Object are the only composite kinds.
func (k Kind) IsScalar() bool {
	return k.IsValid() && k != List && k != Object
}
