package cast

import "github.com/dmitrymomot/envkit/pkg/kind"

const (
	// DefaultSeparator splits list values.
	DefaultSeparator = ","

	// DateLayout is the default layout of kind.Date values.
	DateLayout = "2006-01-02"
)

// ObjectFactory constructs a typed instance from a decoded JSON payload.
// The payload is what encoding/json produces when decoding into an any:
// map[string]any, []any, string, float64, bool or nil.
type ObjectFactory func(payload any) (any, error)

// Options carries kind-specific conversion parameters.
// Converters ignore the fields that do not apply to their kind.
type Options struct {
	ItemKind      kind.Kind
	Enumeration   Enumeration
	ObjectFactory ObjectFactory
	Schema        []byte
	Separator     string
	Layout        string
}

// Option configures a single cast call.
type Option func(*Options)

// WithItemKind sets the kind of every element of a list value.
func WithItemKind(k kind.Kind) Option {
	return func(o *Options) {
		o.ItemKind = k
	}
}

// WithEnumeration sets the enumeration an enumeration value must belong to.
func WithEnumeration(e Enumeration) Option {
	return func(o *Options) {
		o.Enumeration = e
	}
}

// WithObjectFactory sets the hook used to build object values.
// Nil factories are ignored and the default Object wrapper is used.
func WithObjectFactory(f ObjectFactory) Option {
	return func(o *Options) {
		if f != nil {
			o.ObjectFactory = f
		}
	}
}

// WithSchema validates object payloads against a JSON schema document
// before they reach the object factory.
func WithSchema(schema []byte) Option {
	return func(o *Options) {
		o.Schema = schema
	}
}

// WithSeparator overrides the list separator. Empty separators are ignored.
func WithSeparator(sep string) Option {
	return func(o *Options) {
		if sep != "" {
			o.Separator = sep
		}
	}
}

// WithLayout overrides the time layout of date and timestamp values.
func WithLayout(layout string) Option {
	return func(o *Options) {
		o.Layout = layout
	}
}

func newOptions(opts ...Option) *Options {
	o := &Options{
		Separator:     DefaultSeparator,
		ObjectFactory: NewObject,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
