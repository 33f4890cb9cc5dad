package env

import (
	"maps"
	"os"
	"strings"
	"sync"
)

// Source is the variable store an Env reads from and writes to.
type Source interface {
	// Lookup returns the value of name and whether it is set.
	Lookup(name string) (string, bool)
	// Set stores value under name, replacing any previous value.
	Set(name, value string) error
	// Unset removes name.
	Unset(name string) error
	// Environ returns a snapshot of all variables.
	Environ() map[string]string
}

// OS returns the Source backed by the process environment.
// The process environment has no locking beyond what package os provides.
func OS() Source {
	return osSource{}
}

type osSource struct{}

func (osSource) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (osSource) Set(name, value string) error {
	return os.Setenv(name, value)
}

func (osSource) Unset(name string) error {
	return os.Unsetenv(name)
}

func (osSource) Environ() map[string]string {
	environ := os.Environ()
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}

// MapSource is an in-memory Source, safe for concurrent use.
// It is useful in tests and for resolving variables read from files without
// touching the process environment.
type MapSource struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMapSource returns a MapSource holding a copy of vars.
func NewMapSource(vars map[string]string) *MapSource {
	m := &MapSource{vars: make(map[string]string, len(vars))}
	maps.Copy(m.vars, vars)
	return m
}

func (m *MapSource) Lookup(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vars[name]
	return v, ok
}

func (m *MapSource) Set(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vars[name] = value
	return nil
}

func (m *MapSource) Unset(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vars, name)
	return nil
}

func (m *MapSource) Environ() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.vars)
}
