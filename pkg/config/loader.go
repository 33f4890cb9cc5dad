package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/envkit/pkg/cast"
	"github.com/dmitrymomot/envkit/pkg/kind"
)

// configCache provides a type-safe way to store and retrieve configuration
// instances using generics
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	// globalCache is the singleton instance for caching configurations
	globalCache = newConfigCache()

	defaultEnvLoaded sync.Once
)

func newConfigCache() *configCache {
	return &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// parsers routes struct fields whose types have envkit semantics through the
// caster, so config structs and env.Get agree on what a value means.
var parsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(true): func(v string) (any, error) {
		return cast.Cast(v, kind.Boolean)
	},
	reflect.TypeOf(cast.Object{}): func(v string) (any, error) {
		return cast.Cast(v, kind.Object)
	},
}

// Load loads environment variables into the provided configuration struct.
// It ensures that each unique configuration type is only loaded once
// throughout the application lifecycle.
//
// The function first attempts to load the default .env file if it hasn't been loaded yet,
// then parses environment variables into a struct based on field tags.
// Once a configuration type is successfully loaded, subsequent calls for the same
// type will return the cached version.
//
// Example:
//
//	type DatabaseConfig struct {
//		Host     string      `env:"DB_HOST" envDefault:"localhost"`
//		Port     int         `env:"DB_PORT" envDefault:"5432"`
//		Options  cast.Object `env:"DB_OPTIONS" envDefault:"{}"`
//		Username string      `env:"DB_USER,required"`
//	}
//
//	var dbConfig DatabaseConfig
//	err := config.Load(&dbConfig)
//	if err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	globalCache.mu.RLock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		globalCache.mu.RUnlock()
		return nil
	}
	globalCache.mu.RUnlock()

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error

	// Use sync.Once to ensure the config is parsed only once per type
	once.Do(func() {
		if parseErr := parse(v, nil); parseErr != nil {
			err = parseErr
			return
		}

		globalCache.mu.Lock()
		globalCache.values[typeName] = *v // Store a copy to avoid external modifications
		globalCache.mu.Unlock()
	})

	if err != nil {
		// A failed parse must not poison the type forever.
		globalCache.mu.Lock()
		delete(globalCache.onces, typeName)
		globalCache.mu.Unlock()
		return err
	}

	// Ensure the value is loaded from cache for concurrent requests
	globalCache.mu.RLock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		globalCache.mu.RUnlock()
		return nil
	}
	globalCache.mu.RUnlock()

	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// Parse fills v from the given variables without touching the cache or any
// .env file. A nil map means the process environment.
func Parse[T any](v *T, vars map[string]string) error {
	if v == nil {
		return ErrNilPointer
	}
	return parse(v, vars)
}

// ForceReloadConfig parses v again and replaces the cached copy.
// It is meant for tests that change the environment between loads.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := parse(v, nil); err != nil {
		return err
	}

	typeName := getTypeName[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	globalCache.values[typeName] = *v
	once := new(sync.Once)
	once.Do(func() {})
	globalCache.onces[typeName] = once
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

// LoadEnv loads the given .env files into the process environment, or the
// default .env when no path is given. Variables already present in the
// process environment are kept; between files, the later file wins.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}

	// godotenv never overrides, so walk backwards to let later files win.
	for i := len(paths) - 1; i >= 0; i-- {
		if err := godotenv.Load(paths[i]); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

func parse[T any](v *T, vars map[string]string) error {
	opts := env.Options{FuncMap: parsers}
	if vars != nil {
		opts.Environment = vars
	}
	if err := env.ParseWithOptions(v, opts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// Handle interface types
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
