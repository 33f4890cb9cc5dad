// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv loads one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Load parses the environment into any Go struct using field tags and
//     caches each successfully loaded configuration type.
//   - Parse fills a struct from an explicit variable map without caching,
//     which is how envkit reads its own settings from an env.Source.
//   - MustLoadEnv and MustLoad panic on failure.
//   - ResetCache and ForceReloadConfig help in tests.
//
// Fields of type bool and cast.Object are parsed through package cast, so a
// struct field and env.Get accept exactly the same text. kind.Kind fields
// work through encoding.TextUnmarshaler.
//
// # Usage
//
//	type DatabaseConfig struct {
//	    Host    string      `env:"DB_HOST,required"`
//	    Port    int         `env:"DB_PORT" envDefault:"5432"`
//	    Options cast.Object `env:"DB_OPTIONS" envDefault:"{}"`
//	}
//
//	func main() {
//	    if err := config.LoadEnv("./config/.env"); err != nil {
//	        log.Fatalf("loading env: %v", err)
//	    }
//
//	    var db DatabaseConfig
//	    if err := config.Load(&db); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	}
//
// Subsequent calls to `config.Load(&db)` are served from the in-memory cache.
// A failed load is not cached.
//
// # Error Handling
//
//   - `ErrParsingConfig`   – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile`  – a .env file could not be read.
//   - `ErrConfigNotLoaded` – requested config type has not been loaded yet.
//   - `ErrNilPointer`      – nil pointer passed to `Load`/`Parse`.
package config
