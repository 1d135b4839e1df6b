package ecosystem

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/toni500git/ulpm/pkg/manifest"
	"github.com/toni500git/ulpm/pkg/model"
)

const packageJSON = "package.json"

// JavaScript generates package.json and the main entry script.
type JavaScript struct{}

func (JavaScript) Language() model.Language { return model.LangJavaScript }
func (JavaScript) Descriptor() string       { return packageJSON }

// Create implements Generator. Existing package.json content is replaced
// by a fresh document.
func (j JavaScript) Create(dir string, s model.Settings, force bool) ([]string, error) {
	main := s.JSMain
	if main == "" {
		main = model.DefaultJSMain
	}

	pkg := []byte("{}")
	fields := []struct {
		path  string
		value any
	}{
		{"name", s.ProjectName},
		{"version", s.ProjectVersion},
		{"description", s.ProjectDescription},
		{"main", main},
		{"scripts.start", s.JSRuntime + " " + main},
		{"keywords", []string{}},
		{"author", s.Author},
		{"license", s.License},
		{"type", "commonjs"},
	}
	var err error
	for _, f := range fields {
		if pkg, err = setJSON(pkg, f.path, f.value); err != nil {
			return nil, err
		}
	}
	if err := writeJSON(filepath.Join(dir, packageJSON), pkg); err != nil {
		return nil, err
	}
	written := []string{packageJSON}

	ok, err := writeSource(dir, main, []byte("console.log('Hello World!');\n"), force)
	if err != nil {
		return written, fmt.Errorf("failed to create main entry: %w", err)
	}
	if ok {
		written = append(written, filepath.ToSlash(filepath.Clean(main)))
	}
	return written, nil
}

// Update implements Generator. Unknown package.json fields are kept in
// place.
func (JavaScript) Update(dir string, changes model.Settings) (bool, error) {
	path := filepath.Join(dir, packageJSON)
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to read %s: %w", packageJSON, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}
	if !gjson.ValidBytes(data) {
		return false, fmt.Errorf("failed to parse %s: invalid JSON", packageJSON)
	}
	if doc := gjson.ParseBytes(data); !doc.IsObject() {
		return false, fmt.Errorf("failed to parse %s: expected a JSON object, found %s", packageJSON, doc.Type)
	}

	updates := []struct{ key, value string }{
		{"name", changes.ProjectName},
		{"version", changes.ProjectVersion},
		{"description", changes.ProjectDescription},
		{"author", changes.Author},
		{"license", changes.License},
	}
	changed := false
	for _, u := range updates {
		if u.value == "" {
			continue
		}
		if cur := gjson.GetBytes(data, u.key); cur.Type == gjson.String && cur.Str == u.value {
			continue
		}
		if data, err = setJSON(data, u.key, u.value); err != nil {
			return false, err
		}
		changed = true
	}
	if !changed {
		return false, nil
	}
	return true, writeJSON(path, data)
}

// setJSON stores v at path, keeping the order of existing keys and
// appending new ones at the end. Values are encoded without HTML escaping.
func setJSON(doc []byte, path string, v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode %q: %w", path, err)
	}
	out, err := sjson.SetRawBytes(doc, path, bytes.TrimSpace(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("set %q: %w", path, err)
	}
	return out, nil
}

// writeJSON reindents doc with four spaces and writes it atomically.
func writeJSON(path string, doc []byte) error {
	out := pretty.PrettyOptions(doc, &pretty.Options{Width: 80, Indent: "    "})
	out = append(bytes.TrimRight(out, "\n"), '\n')
	return manifest.WriteFile(path, out)
}
