package manifest

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/envkit/pkg/env"
)

// ResolveError collects every variable that failed to resolve.
type ResolveError struct {
	Errors []error
}

func (e *ResolveError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s: %v", ErrUnresolved, e.Errors[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:", ErrUnresolved, len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "\n  %d. %v", i+1, err)
	}
	return b.String()
}

// Unwrap exposes ErrUnresolved and every variable error to errors.Is/As.
func (e *ResolveError) Unwrap() []error {
	return append([]error{ErrUnresolved}, e.Errors...)
}

// Resolve reads every declared variable through e (the process environment
// when e is nil). Absent optional variables without default are left out of
// the result. All failures are reported together in a *ResolveError.
func (m *Manifest) Resolve(e *env.Env) (map[string]any, error) {
	if e == nil {
		e = env.Default()
	}

	values := make(map[string]any, len(m.Variables))
	var errs []error
	for _, v := range m.Variables {
		val, err := e.Get(v.Name, v.Kind, v.options()...)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if val != nil {
			values[v.Name] = val
		}
	}

	if len(errs) > 0 {
		return values, &ResolveError{Errors: errs}
	}
	return values, nil
}
