// Package catalog describes the languages, package managers, runtimes and
// licenses ulpm can scaffold. The built-in catalog is embedded; a YAML file
// with the same schema can replace it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/toni500git/ulpm/pkg/model"
)

//go:embed catalog.yaml
var builtin []byte

// EnvPath names the environment variable that points at a replacement
// catalog file.
const EnvPath = "ULPM_CATALOG"

var (
	ErrUnknownLanguage = errors.New("unknown language")
	ErrInvalidValue    = errors.New("invalid value")
)

// Language is one ecosystem entry.
type Language struct {
	Name            string   `yaml:"name"`
	PackageManagers []string `yaml:"package_managers"`
	Runtimes        []string `yaml:"runtimes,omitempty"`
}

// Catalog is the set of choices offered by the menus.
type Catalog struct {
	Languages []Language `yaml:"languages"`
	Licenses  []string   `yaml:"licenses"`
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Parse decodes and checks a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Languages) == 0 {
		return nil, errors.New("catalog lists no languages")
	}
	seen := make(map[string]bool, len(c.Languages))
	for _, l := range c.Languages {
		if l.Name == "" {
			return nil, errors.New("catalog has a language without a name")
		}
		if seen[l.Name] {
			return nil, fmt.Errorf("catalog lists language %q twice", l.Name)
		}
		seen[l.Name] = true
	}
	return &c, nil
}

// Load reads the catalog at path. An empty path falls back to $ULPM_CATALOG
// and then to the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LanguageNames returns the language names in catalog order.
func (c *Catalog) LanguageNames() []string {
	names := make([]string, len(c.Languages))
	for i, l := range c.Languages {
		names[i] = l.Name
	}
	return names
}

// Language looks up a language by name.
func (c *Catalog) Language(name string) (Language, error) {
	for _, l := range c.Languages {
		if l.Name == name {
			return l, nil
		}
	}
	return Language{}, &ValidationError{
		Field: "language",
		Value: name,
		Valid: c.LanguageNames(),
		err:   ErrUnknownLanguage,
	}
}

// Check verifies that the settings only name values from the catalog.
// Empty fields are not checked.
func (c *Catalog) Check(s model.Settings) error {
	if s.Language != "" {
		lang, err := c.Language(s.Language)
		if err != nil {
			return err
		}
		if s.PackageManager != "" {
			if err := check("package_manager", s.PackageManager, lang.PackageManagers); err != nil {
				return fmt.Errorf("language %q: %w", lang.Name, err)
			}
		}
		if s.JSRuntime != "" && len(lang.Runtimes) > 0 {
			if err := check("runtime", s.JSRuntime, lang.Runtimes); err != nil {
				return fmt.Errorf("language %q: %w", lang.Name, err)
			}
		}
	}
	if s.License != "" {
		if err := check("license", s.License, c.Licenses); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a stored manifest against the catalog.
func (c *Catalog) Validate(m model.Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}
	return c.Check(m.Settings())
}

func check(field, value string, valid []string) error {
	for _, v := range valid {
		if v == value {
			return nil
		}
	}
	return &ValidationError{Field: field, Value: value, Valid: valid, err: ErrInvalidValue}
}

// ValidationError reports a value that is not in the catalog.
type ValidationError struct {
	Field string
	Value string
	Valid []string

	err error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid %s %q", strings.ReplaceAll(e.Field, "_", " "), e.Value)
	if len(e.Valid) == 0 {
		b.WriteString(". None available")
		return b.String()
	}
	fmt.Fprintf(&b, ". Valid: %s", strings.Join(e.Valid, ", "))
	if s := e.Suggestion(); s != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", s)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.err }

// Suggestion returns the closest valid value, or "" when nothing is close.
func (e *ValidationError) Suggestion() string {
	if e.Value == "" {
		return ""
	}
	matches := fuzzy.Find(e.Value, e.Valid)
	if len(matches) == 0 {
		matches = fuzzy.Find(strings.ToLower(e.Value), lower(e.Valid))
	}
	if len(matches) == 0 {
		return ""
	}
	return e.Valid[matches[0].Index]
}

func lower(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
