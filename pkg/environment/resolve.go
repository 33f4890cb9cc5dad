package environment

import (
	"log/slog"

	"github.com/dmitrymomot/envkit/pkg/cast"
	"github.com/dmitrymomot/envkit/pkg/env"
	"github.com/dmitrymomot/envkit/pkg/kind"
	"github.com/dmitrymomot/envkit/pkg/logger"
)

// Variable names the environment variable FromEnv reads.
const Variable = "APP_ENV"

// Enumeration accepts the canonical names and their short forms
// (dev, stage, prod).
var Enumeration = cast.NewEnumeration("Environment", map[string]Environment{
	"development": Development,
	"dev":         Development,
	"staging":     Staging,
	"stage":       Staging,
	"production":  Production,
	"prod":        Production,
})

// FromEnv reads APP_ENV through e, defaulting to Development when it is unset
// or empty. Unknown names fail with cast.ErrFormat.
func FromEnv(e *env.Env) (Environment, error) {
	if e == nil {
		e = env.Default()
	}
	return env.As[Environment](e.Get(Variable, kind.Enumeration,
		env.WithDefault(Development),
		env.WithCast(cast.WithEnumeration(Enumeration)),
	))
}

// Logger builds a logger with the defaults of environment en.
func Logger(en Environment, service string, opts ...logger.Option) *slog.Logger {
	return logger.New(append([]logger.Option{logger.WithEnvironment(en.String(), service)}, opts...)...)
}
