package ecosystem

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/toni500git/ulpm/pkg/manifest"
	"github.com/toni500git/ulpm/pkg/model"
)

const cargoToml = "Cargo.toml"

// Rust generates Cargo.toml and src/main.rs.
type Rust struct{}

func (Rust) Language() model.Language { return model.LangRust }
func (Rust) Descriptor() string       { return cargoToml }

type cargoManifest struct {
	Package      cargoPackage   `toml:"package"`
	Dependencies map[string]any `toml:"dependencies"`
}

type cargoPackage struct {
	Name        string   `toml:"name"`
	Version     string   `toml:"version"`
	Edition     string   `toml:"edition"`
	Description string   `toml:"description,omitempty"`
	Authors     []string `toml:"authors,omitempty"`
	License     string   `toml:"license,omitempty"`
}

// Create implements Generator.
func (r Rust) Create(dir string, s model.Settings, force bool) ([]string, error) {
	doc := cargoManifest{
		Package: cargoPackage{
			Name:        crateName(s.ProjectName),
			Version:     cargoVersion(s.ProjectVersion),
			Edition:     model.DefaultRustEdition,
			Description: s.ProjectDescription,
			License:     cargoLicense(s.License),
		},
		Dependencies: map[string]any{},
	}
	if s.Author != "" {
		doc.Package.Authors = []string{s.Author}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", cargoToml, err)
	}
	if err := manifest.WriteFile(filepath.Join(dir, cargoToml), buf.Bytes()); err != nil {
		return nil, err
	}
	written := []string{cargoToml}

	main := "fn main() {\n    println!(\"Hello, world!\");\n}\n"
	ok, err := writeSource(dir, filepath.Join("src", "main.rs"), []byte(main), force)
	if err != nil {
		return written, fmt.Errorf("failed to create main entry: %w", err)
	}
	if ok {
		written = append(written, "src/main.rs")
	}
	return written, nil
}

// Update implements Generator. Tables other than [package] are carried
// over untouched; comments are not preserved.
func (Rust) Update(dir string, changes model.Settings) (bool, error) {
	path := filepath.Join(dir, cargoToml)
	doc := map[string]any{}
	if data, err := os.ReadFile(path); err == nil {
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return false, fmt.Errorf("failed to parse %s: %w", cargoToml, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to read %s: %w", cargoToml, err)
	}

	pkg, _ := doc["package"].(map[string]any)
	if pkg == nil {
		pkg = map[string]any{}
		doc["package"] = pkg
	}

	changed := false
	set := func(key string, value any) {
		if fmt.Sprint(pkg[key]) == fmt.Sprint(value) {
			return
		}
		pkg[key] = value
		changed = true
	}
	if changes.ProjectName != "" {
		set("name", crateName(changes.ProjectName))
	}
	if changes.ProjectVersion != "" {
		set("version", cargoVersion(changes.ProjectVersion))
	}
	if changes.ProjectDescription != "" {
		set("description", changes.ProjectDescription)
	}
	if changes.Author != "" {
		set("authors", []any{changes.Author})
	}
	if changes.License != "" {
		if l := cargoLicense(changes.License); l != "" {
			set("license", l)
		} else if _, ok := pkg["license"]; ok {
			delete(pkg, "license")
			changed = true
		}
	}
	if !changed {
		return false, nil
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return false, fmt.Errorf("failed to encode %s: %w", cargoToml, err)
	}
	return true, manifest.WriteFile(path, buf.Bytes())
}

// crateName turns a project name into something cargo accepts.
func crateName(name string) string {
	return strings.Join(strings.Fields(name), "-")
}

// cargoVersion drops the leading "v" cargo rejects.
func cargoVersion(v string) string {
	return strings.TrimPrefix(v, "v")
}

func cargoLicense(l string) string {
	if l == model.LicenseNone || l == model.LicenseCustom {
		return ""
	}
	return l
}
