package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/envkit/pkg/cast"
	"github.com/dmitrymomot/envkit/pkg/env"
	"github.com/dmitrymomot/envkit/pkg/kind"
)

// Variable declares one expected environment variable.
type Variable struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Kind        kind.Kind `yaml:"kind,omitempty"`
	Default     any       `yaml:"default,omitempty"`
	// Required defaults to true, like env.Get.
	Required *bool `yaml:"required,omitempty"`

	ItemKind  kind.Kind `yaml:"item_kind,omitempty"`
	Separator string    `yaml:"separator,omitempty"`
	Values    []string  `yaml:"values,omitempty"`
	Layout    string    `yaml:"layout,omitempty"`
	Schema    string    `yaml:"schema,omitempty"`
}

// IsRequired reports whether an absent variable is an error.
func (v Variable) IsRequired() bool {
	return v.Required == nil || *v.Required
}

// Manifest is the list of variables an application expects.
type Manifest struct {
	Variables []Variable `yaml:"variables"`
}

// Parse decodes and validates a YAML manifest. Variables without a kind are
// strings.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Join(ErrInvalidManifest, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ReadFile reads and parses the manifest at path.
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

func (m *Manifest) validate() error {
	seen := make(map[string]bool, len(m.Variables))
	for i := range m.Variables {
		v := &m.Variables[i]
		if v.Name == "" {
			return fmt.Errorf("%w: variable %d has no name", ErrInvalidManifest, i)
		}
		if seen[v.Name] {
			return fmt.Errorf("%w: variable %s declared twice", ErrInvalidManifest, v.Name)
		}
		seen[v.Name] = true

		if v.Kind == kind.Invalid {
			v.Kind = kind.String
		}
		switch {
		case v.Kind == kind.List && !v.ItemKind.IsValid():
			return fmt.Errorf("%w: %s: list needs item_kind", ErrInvalidManifest, v.Name)
		case v.ItemKind == kind.List:
			return fmt.Errorf("%w: %s: item_kind cannot be list", ErrInvalidManifest, v.Name)
		case (v.Kind == kind.Enumeration || v.ItemKind == kind.Enumeration) && len(v.Values) == 0:
			return fmt.Errorf("%w: %s: enumeration needs values", ErrInvalidManifest, v.Name)
		case v.Schema != "" && v.Kind != kind.Object && v.ItemKind != kind.Object:
			return fmt.Errorf("%w: %s: schema only applies to objects", ErrInvalidManifest, v.Name)
		}
	}
	return nil
}

// Names returns the declared variable names in manifest order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Variables))
	for i, v := range m.Variables {
		names[i] = v.Name
	}
	return names
}

// Lookup returns the declaration of name.
func (m *Manifest) Lookup(name string) (Variable, bool) {
	i := slices.IndexFunc(m.Variables, func(v Variable) bool { return v.Name == name })
	if i < 0 {
		return Variable{}, false
	}
	return m.Variables[i], true
}

// options turns a declaration into env.Get options.
func (v Variable) options() []env.GetOption {
	opts := []env.GetOption{env.Required(v.IsRequired())}
	if v.Default != nil {
		opts = append(opts, env.WithDefault(v.Default))
	}

	var castOpts []cast.Option
	if v.ItemKind.IsValid() {
		castOpts = append(castOpts, cast.WithItemKind(v.ItemKind))
	}
	if v.Separator != "" {
		castOpts = append(castOpts, cast.WithSeparator(v.Separator))
	}
	if len(v.Values) > 0 {
		members := make(map[string]string, len(v.Values))
		for _, val := range v.Values {
			members[val] = val
		}
		castOpts = append(castOpts, cast.WithEnumeration(cast.NewEnumeration(v.Name, members)))
	}
	if v.Layout != "" {
		castOpts = append(castOpts, cast.WithLayout(v.Layout))
	}
	if v.Schema != "" {
		castOpts = append(castOpts, cast.WithSchema([]byte(v.Schema)))
	}
	if len(castOpts) > 0 {
		opts = append(opts, env.WithCast(castOpts...))
	}
	return opts
}
