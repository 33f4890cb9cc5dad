package cast

import (
	"fmt"
	"reflect"
	"slices"
)

// Enumeration is a closed set of named members.
// Member names are matched case-sensitively. A value that already is a member
// is accepted as is; implementations may add a Contains(any) bool method to
// decide membership themselves.
type Enumeration interface {
	// Name identifies the enumeration in error messages.
	Name() string
	// Lookup returns the member registered under name.
	Lookup(name string) (any, bool)
	// Names lists member names in a stable order.
	Names() []string
}

type enumeration[T any] struct {
	name    string
	members map[string]T
	names   []string
}

// NewEnumeration builds an enumeration from a name to member mapping.
//
// Example:
//
//	levels := cast.NewEnumeration("LogLevel", map[string]slog.Level{
//	    "DEBUG": slog.LevelDebug,
//	    "INFO":  slog.LevelInfo,
//	})
func NewEnumeration[T any](name string, members map[string]T) Enumeration {
	e := &enumeration[T]{
		name:    name,
		members: make(map[string]T, len(members)),
		names:   make([]string, 0, len(members)),
	}
	for n, m := range members {
		e.members[n] = m
		e.names = append(e.names, n)
	}
	slices.Sort(e.names)
	return e
}

// EnumerationOf builds an enumeration keyed by each value's String method,
// which fits constant types with generated stringers.
// Names keep the order of values.
func EnumerationOf[T fmt.Stringer](name string, values ...T) Enumeration {
	e := &enumeration[T]{
		name:    name,
		members: make(map[string]T, len(values)),
		names:   make([]string, 0, len(values)),
	}
	for _, v := range values {
		n := v.String()
		if _, dup := e.members[n]; dup {
			continue
		}
		e.members[n] = v
		e.names = append(e.names, n)
	}
	return e
}

func (e *enumeration[T]) Name() string {
	return e.name
}

func (e *enumeration[T]) Lookup(name string) (any, bool) {
	m, ok := e.members[name]
	if !ok {
		return nil, false
	}
	return m, true
}

func (e *enumeration[T]) Names() []string {
	return slices.Clone(e.names)
}

// Contains reports whether v is one of the members.
func (e *enumeration[T]) Contains(v any) bool {
	m, ok := v.(T)
	if !ok {
		return false
	}
	for _, member := range e.members {
		if reflect.DeepEqual(member, m) {
			return true
		}
	}
	return false
}
