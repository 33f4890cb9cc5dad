package manifest

import (
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"

	"github.com/dmitrymomot/envkit/pkg/cast"
)

// WriteTemplate writes a .env skeleton for the manifest: one KEY=default line
// per variable, preceded by its description, kind and allowed values.
// Required variables without default are left empty.
func (m *Manifest) WriteTemplate(w io.Writer) error {
	for i, v := range m.Variables {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if v.Description != "" {
			if _, err := fmt.Fprintf(w, "# %s\n", v.Description); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# %s\n", describe(v)); err != nil {
			return err
		}

		line, err := templateLine(v)
		if err != nil {
			return err
		}
		if !v.IsRequired() && v.Default == nil {
			line = "# " + line
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func describe(v Variable) string {
	var b strings.Builder
	b.WriteString(v.Kind.String())
	if v.ItemKind.IsValid() {
		fmt.Fprintf(&b, " of %s", v.ItemKind)
	}
	if len(v.Values) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(v.Values, ", "))
	}
	if v.IsRequired() {
		b.WriteString(", required")
	} else {
		b.WriteString(", optional")
	}
	return b.String()
}

// templateLine renders NAME=default. Defaults are quoted and escaped by
// godotenv so the template loads back unchanged.
func templateLine(v Variable) (string, error) {
	if v.Default == nil {
		return v.Name + "=", nil
	}
	return godotenv.Marshal(map[string]string{v.Name: cast.Format(v.Default)})
}
