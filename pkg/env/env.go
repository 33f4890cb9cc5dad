package env

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/envkit/pkg/cast"
	"github.com/dmitrymomot/envkit/pkg/config"
	"github.com/dmitrymomot/envkit/pkg/logger"
)

// Settings are envkit's own knobs, read from the source when an Env is built.
type Settings struct {
	// ListSeparator splits list values unless a call overrides it.
	ListSeparator string `env:"ENVKIT_LIST_SEPARATOR" envDefault:","`
	// DotenvPath is the file LoadFile reads when given an empty path.
	DotenvPath string `env:"ENVKIT_DOTENV_PATH" envDefault:".env"`
}

// Env reads and writes typed variables against a Source.
type Env struct {
	source   Source
	logger   *slog.Logger
	settings Settings
}

// Option configures an Env.
type Option func(*Env)

// WithSource sets the variable store. Nil sources are ignored.
func WithSource(s Source) Option {
	return func(e *Env) {
		if s != nil {
			e.source = s
		}
	}
}

// WithLogger sets the logger used for debug records. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Env) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an Env bound to the process environment unless WithSource says
// otherwise. Settings are read once, here.
func New(opts ...Option) *Env {
	e := &Env{
		source: OS(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := config.Parse(&e.settings, e.source.Environ()); err != nil {
		e.logger.Debug("envkit settings ignored", logger.Error(err))
		e.settings = Settings{ListSeparator: cast.DefaultSeparator, DotenvPath: ".env"}
	}
	if e.settings.ListSeparator == "" {
		e.settings.ListSeparator = cast.DefaultSeparator
	}
	if e.settings.DotenvPath == "" {
		e.settings.DotenvPath = ".env"
	}
	return e
}

// Source returns the store e is bound to.
func (e *Env) Source() Source {
	return e.source
}

// Settings returns the settings e was built with.
func (e *Env) Settings() Settings {
	return e.settings
}

var defaultEnv = sync.OnceValue(func() *Env { return New() })

// Default returns the process-wide Env used by the package-level functions.
func Default() *Env {
	return defaultEnv()
}
