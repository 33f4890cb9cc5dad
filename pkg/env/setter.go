package env

import (
	"github.com/dmitrymomot/envkit/pkg/cast"
	"github.com/dmitrymomot/envkit/pkg/logger"
)

// Set stores the string form of value (see cast.Format) under name,
// overwriting any previous value. Lists are joined with the configured list
// separator. The name is not validated and no kind is recorded: the next Get
// decides how to read it.
func (e *Env) Set(name string, value any) error {
	if err := e.source.Set(name, cast.FormatList(value, e.settings.ListSeparator)); err != nil {
		return &VariableError{Name: name, Err: err}
	}
	e.logger.Debug("environment variable set", logger.Variable(name))
	return nil
}

// Unset removes name.
func (e *Env) Unset(name string) error {
	if err := e.source.Unset(name); err != nil {
		return &VariableError{Name: name, Err: err}
	}
	return nil
}

// Set stores value in the process environment. See Env.Set.
func Set(name string, value any) error {
	return Default().Set(name, value)
}

// Unset removes name from the process environment.
func Unset(name string) error {
	return Default().Unset(name)
}
