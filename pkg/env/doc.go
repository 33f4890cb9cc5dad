// Package env reads and writes typed environment variables.
//
// Get reads a variable and casts it to a data kind through package cast:
//
//	port, err := env.GetInt("PORT", env.WithDefault(8080))
//	debug, err := env.GetBool("DEBUG", env.Optional())
//	hosts, err := env.GetList("HOSTS", kind.String)
//	mode, err := env.Get("MODE", kind.Enumeration,
//	    env.WithCast(cast.WithEnumeration(modes)))
//
// The read follows a fixed order:
//
//  1. a non-empty value is cast and returned;
//  2. otherwise a default, if given, is cast through the same pipeline;
//  3. otherwise a required variable (the default) fails with
//     ErrMissingVariable;
//  4. otherwise the result is nil.
//
// A variable set to the empty string is treated as absent, so an empty value
// is never read back from the source itself. WithDefault("") makes an unset or
// empty string variable read as "".
//
// Set writes the string form of any value (cast.Format), so values written by
// Set read back unchanged with the matching kind.
//
// # Files
//
// LoadFile, LoadFiles and OverloadFiles read .env files with
// github.com/joho/godotenv and copy the variables into the source.
// LoadUserFile looks the file up in the XDG config directories.
//
// # Sources
//
// The package-level functions use Default, bound to the process environment.
// New builds an Env over any Source; MapSource keeps variables in memory:
//
//	e := env.New(env.WithSource(env.NewMapSource(map[string]string{"PORT": "9000"})))
//
// The process environment is shared global state with no locking of its own;
// callers that read and write it from several goroutines must serialise access.
//
// # Settings
//
// ENVKIT_LIST_SEPARATOR and ENVKIT_DOTENV_PATH are read from the source once,
// when the Env is built.
package env
