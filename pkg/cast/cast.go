package cast

import (
	"fmt"

	"github.com/dmitrymomot/envkit/pkg/kind"
)

// Converter turns a raw value into a typed value of one data kind.
// Converters are pure: they never touch the environment or any shared state.
type Converter func(value any, o *Options) (any, error)

// Cast converts value to the data kind k.
//
// The value is usually the raw string read from the environment, but any Go
// value is accepted so that caller-supplied defaults go through the same
// pipeline. Kind-specific options are forwarded to the converter as is.
//
// Errors wrap ErrInvalidArgument when k is not a data kind or a required option
// is missing, and ErrFormat when the value cannot be parsed.
func Cast(value any, k kind.Kind, opts ...Option) (any, error) {
	return cast(value, k, newOptions(opts...))
}

// To is a typed variant of Cast. It fails with ErrInvalidArgument when the
// converted value is not a T.
//
// Example:
//
//	port, err := cast.To[int64]("8080", kind.Integer)
func To[T any](value any, k kind.Kind, opts ...Option) (T, error) {
	var zero T

	v, err := Cast(value, k, opts...)
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s value has type %T, not %T", ErrInvalidArgument, k, v, zero)
	}
	return typed, nil
}

func cast(value any, k kind.Kind, o *Options) (any, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %s is not a data kind", ErrInvalidArgument, k)
	}
	if value == nil {
		return nil, fmt.Errorf("%w: nil %s value", ErrInvalidArgument, k)
	}

	convert, ok := converters[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnregisteredKind, k)
	}

	return convert(value, o)
}
