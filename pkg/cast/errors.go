package cast

import "errors"

var (
	// ErrInvalidArgument is returned when the requested kind is not a data kind
	// or a kind-specific option (item kind, enumeration) is missing.
	ErrInvalidArgument = errors.New("invalid cast argument")

	// ErrFormat is returned when a raw value is not a valid representation of
	// the requested kind.
	ErrFormat = errors.New("invalid value format")

	// ErrUnregisteredKind indicates a data kind without a converter.
	// It points to a bug in the converter table and is not expected at runtime.
	ErrUnregisteredKind = errors.New("no converter registered for data kind")
)
