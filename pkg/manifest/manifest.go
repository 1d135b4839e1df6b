// Package manifest reads and writes the ulpm.json project manifest.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/toni500git/ulpm/pkg/model"
)

// ErrNotFound is returned by Require when the directory has no manifest.
var ErrNotFound = errors.New("no " + model.ManifestName + " found")

// Path returns the manifest location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, model.ManifestName)
}

// Load reads the manifest from dir. A missing or empty file yields an empty
// manifest; a file that is not valid JSON is an error.
func Load(dir string) (model.Manifest, error) {
	var m model.Manifest

	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return m, fmt.Errorf("failed to read %s: %w", model.ManifestName, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return m, nil
	}

	if err := json.Unmarshal(data, &m); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			return m, fmt.Errorf("failed to parse %s: %v at offset %d", model.ManifestName, syn, syn.Offset)
		}
		return m, fmt.Errorf("failed to parse %s: %w", model.ManifestName, err)
	}
	return m, nil
}

// Require is Load for commands that need an initialised project.
func Require(dir string) (model.Manifest, error) {
	if _, err := os.Stat(Path(dir)); errors.Is(err, fs.ErrNotExist) {
		return model.Manifest{}, fmt.Errorf("%w in %s, run 'ulpm init' first", ErrNotFound, dir)
	}
	m, err := Load(dir)
	if err != nil {
		return m, err
	}
	if m.IsEmpty() {
		return m, fmt.Errorf("%s is empty, run 'ulpm init' first", model.ManifestName)
	}
	return m, nil
}

// Save writes m to dir, replacing any previous manifest.
func Save(dir string, m model.Manifest) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	return WriteFile(Path(dir), data)
}

// Marshal renders the manifest as it is stored on disk: four space indent,
// no HTML escaping and a trailing newline.
func Marshal(m model.Manifest) ([]byte, error) {
	return MarshalJSON(m)
}

// MarshalJSON encodes any document the way ulpm writes JSON files.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile replaces path with data through a temporary file in the same
// directory, so readers never see a half-written file.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
