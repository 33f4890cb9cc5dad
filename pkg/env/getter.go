package env

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/envkit/pkg/cast"
	"github.com/dmitrymomot/envkit/pkg/kind"
	"github.com/dmitrymomot/envkit/pkg/logger"
)

type getOptions struct {
	def      any
	required bool
	cast     []cast.Option
}

// GetOption configures a single read.
type GetOption func(*getOptions)

// WithDefault sets the value used when the variable is absent or empty.
// The default is cast like a real value, so "8080" works for kind.Integer.
func WithDefault(v any) GetOption {
	return func(o *getOptions) {
		o.def = v
	}
}

// Optional makes an absent variable without default yield nil instead of
// ErrMissingVariable.
func Optional() GetOption {
	return Required(false)
}

// Required sets whether an absent variable without default is an error.
// Variables are required unless stated otherwise.
func Required(required bool) GetOption {
	return func(o *getOptions) {
		o.required = required
	}
}

// WithCast forwards kind-specific options (item kind, enumeration, object
// factory, ...) to the caster.
func WithCast(opts ...cast.Option) GetOption {
	return func(o *getOptions) {
		o.cast = append(o.cast, opts...)
	}
}

// Get reads name and casts it to kind k.
//
// A variable set to the empty string counts as absent. For an absent variable
// Get casts the default if one was given, fails with ErrMissingVariable if the
// variable is required, and returns nil otherwise. Cast failures are wrapped in
// a *VariableError.
func (e *Env) Get(name string, k kind.Kind, opts ...GetOption) (any, error) {
	o := getOptions{required: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	castOpts := append([]cast.Option{cast.WithSeparator(e.settings.ListSeparator)}, o.cast...)

	if raw, _ := e.source.Lookup(name); raw != "" {
		v, err := cast.Cast(raw, k, castOpts...)
		if err != nil {
			return nil, &VariableError{Name: name, Err: err}
		}
		return v, nil
	}

	if o.def != nil {
		e.logger.Debug("environment variable not set, using default", logger.Variable(name), logger.Kind(k))
		v, err := cast.Cast(o.def, k, castOpts...)
		if err != nil {
			return nil, &VariableError{Name: name, Err: err}
		}
		return v, nil
	}

	if o.required {
		return nil, &VariableError{Name: name, Err: ErrMissingVariable}
	}
	return nil, nil
}

// GetString reads name as a string.
func (e *Env) GetString(name string, opts ...GetOption) (string, error) {
	return As[string](e.Get(name, kind.String, opts...))
}

// GetInt reads name as an integer.
func (e *Env) GetInt(name string, opts ...GetOption) (int64, error) {
	return As[int64](e.Get(name, kind.Integer, opts...))
}

// GetFloat reads name as a float.
func (e *Env) GetFloat(name string, opts ...GetOption) (float64, error) {
	return As[float64](e.Get(name, kind.Float, opts...))
}

// GetBool reads name as a boolean.
func (e *Env) GetBool(name string, opts ...GetOption) (bool, error) {
	return As[bool](e.Get(name, kind.Boolean, opts...))
}

// GetDuration reads name as a duration such as "1m30s".
func (e *Env) GetDuration(name string, opts ...GetOption) (time.Duration, error) {
	return As[time.Duration](e.Get(name, kind.Duration, opts...))
}

// GetList reads name as a list whose items have kind item.
func (e *Env) GetList(name string, item kind.Kind, opts ...GetOption) ([]any, error) {
	opts = append(opts, WithCast(cast.WithItemKind(item)))
	return As[[]any](e.Get(name, kind.List, opts...))
}

// As adapts the result of Get to a concrete type:
//
//	port, err := env.As[int64](env.Get("PORT", kind.Integer, env.WithDefault(8080)))
//
// An absent optional variable yields the zero value of T. A value of another
// type fails with cast.ErrInvalidArgument.
func As[T any](v any, err error) (T, error) {
	var zero T
	if err != nil || v == nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: value has type %T, not %T", cast.ErrInvalidArgument, v, zero)
	}
	return typed, nil
}

// Must panics if err is non-nil and returns v otherwise.
//
//	port := env.Must(env.GetInt("PORT"))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Get reads name from the process environment. See Env.Get.
func Get(name string, k kind.Kind, opts ...GetOption) (any, error) {
	return Default().Get(name, k, opts...)
}

// GetString reads name from the process environment as a string.
func GetString(name string, opts ...GetOption) (string, error) {
	return Default().GetString(name, opts...)
}

// GetInt reads name from the process environment as an integer.
func GetInt(name string, opts ...GetOption) (int64, error) {
	return Default().GetInt(name, opts...)
}

// GetFloat reads name from the process environment as a float.
func GetFloat(name string, opts ...GetOption) (float64, error) {
	return Default().GetFloat(name, opts...)
}

// GetBool reads name from the process environment as a boolean.
func GetBool(name string, opts ...GetOption) (bool, error) {
	return Default().GetBool(name, opts...)
}

// GetDuration reads name from the process environment as a duration.
func GetDuration(name string, opts ...GetOption) (time.Duration, error) {
	return Default().GetDuration(name, opts...)
}

// GetList reads name from the process environment as a list.
func GetList(name string, item kind.Kind, opts ...GetOption) ([]any, error) {
	return Default().GetList(name, item, opts...)
}
