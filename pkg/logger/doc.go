// Package logger is a thin factory around log/slog with functional options
// and attribute helpers used across envkit.
//
// New builds a *slog.Logger writing text or JSON to any io.Writer:
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "billing"),
//	    logger.WithOutput(os.Stderr),
//	)
//	e := env.New(env.WithLogger(log))
//
// Helper constructors such as Variable, Kind, Path and Error return
// commonly-used slog.Attr values so attribute keys stay consistent. Variable
// only ever records a name: envkit never logs environment values.
//
// Error produces an attribute only for a non-nil error, so
//
//	log.Debug("loaded", logger.Error(err))
//
// needs no nil check. Discard returns a logger that drops everything and is
// the default for library code.
package logger
