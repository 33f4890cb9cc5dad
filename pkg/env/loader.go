package env

import (
	"errors"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/envkit/pkg/logger"
)

// LoadFile loads path into the source, or the configured dotenv path (.env by
// default) when path is empty. Variables already set are kept. It reports
// whether the file was loaded.
func (e *Env) LoadFile(path string) bool {
	if path == "" {
		path = e.settings.DotenvPath
	}
	return e.LoadFiles(path) == nil
}

// LoadFiles loads every file into the source without overriding variables
// that are already set. Between files, the later file wins.
// Parsing is done by godotenv.
func (e *Env) LoadFiles(paths ...string) error {
	return e.load(false, paths)
}

// OverloadFiles is LoadFiles with file values replacing existing variables.
func (e *Env) OverloadFiles(paths ...string) error {
	return e.load(true, paths)
}

// LoadUserFile loads <app>/.env from the XDG config directories
// ($XDG_CONFIG_HOME first, then $XDG_CONFIG_DIRS). It reports whether a file
// was found and loaded.
func (e *Env) LoadUserFile(app string) bool {
	path, err := xdg.SearchConfigFile(filepath.Join(app, ".env"))
	if err != nil {
		e.logger.Debug("no user env file", logger.Component(app))
		return false
	}
	e.logger.Debug("user env file found", logger.Component(app), logger.Path(path))
	return e.LoadFile(path)
}

func (e *Env) load(override bool, paths []string) error {
	if len(paths) == 0 {
		paths = []string{e.settings.DotenvPath}
	}

	vars, err := godotenv.Read(paths...)
	if err != nil {
		e.logger.Debug("env file not loaded", logger.Paths(paths...), logger.Error(err))
		return errors.Join(ErrLoadingFile, err)
	}

	set := 0
	for name, value := range vars {
		if !override {
			if _, exists := e.source.Lookup(name); exists {
				continue
			}
		}
		if err := e.source.Set(name, value); err != nil {
			return &VariableError{Name: name, Err: err}
		}
		set++
	}

	e.logger.Debug("env file loaded", logger.Paths(paths...), logger.Count(set))
	return nil
}

// ReadFile parses a .env file without touching any environment.
func ReadFile(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Join(ErrLoadingFile, err)
	}
	return vars, nil
}

// LoadFile loads path into the process environment. See Env.LoadFile.
func LoadFile(path string) bool {
	return Default().LoadFile(path)
}

// LoadFiles loads paths into the process environment. See Env.LoadFiles.
func LoadFiles(paths ...string) error {
	return Default().LoadFiles(paths...)
}

// OverloadFiles loads paths into the process environment, replacing existing
// variables.
func OverloadFiles(paths ...string) error {
	return Default().OverloadFiles(paths...)
}

// LoadUserFile loads the user's <app>/.env into the process environment.
func LoadUserFile(app string) bool {
	return Default().LoadUserFile(app)
}
