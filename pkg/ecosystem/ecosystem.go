// Package ecosystem writes the language-native files of a project:
// package.json and a main script for javascript, Cargo.toml and
// src/main.rs for rust.
package ecosystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toni500git/ulpm/pkg/manifest"
	"github.com/toni500git/ulpm/pkg/model"
)

// ErrUnsupported is returned for languages without a generator.
var ErrUnsupported = errors.New("is WIP")

// Generator creates and updates the files of one ecosystem.
type Generator interface {
	Language() model.Language
	// Create writes the project files into dir and returns the paths
	// written, relative to dir. Existing source files are kept unless
	// force is set; the package descriptor is always rewritten.
	Create(dir string, s model.Settings, force bool) ([]string, error)
	// Update applies the non-empty fields of changes to the package
	// descriptor. It reports whether anything was written.
	Update(dir string, changes model.Settings) (bool, error)
	// Descriptor is the package descriptor file name.
	Descriptor() string
}

// For returns the generator for lang.
func For(lang string) (Generator, error) {
	switch model.Language(lang) {
	case model.LangJavaScript:
		return JavaScript{}, nil
	case model.LangRust:
		return Rust{}, nil
	default:
		return nil, fmt.Errorf("language %q %w", lang, ErrUnsupported)
	}
}

// Detect guesses the language of an existing project from its package
// descriptor. It returns "" when nothing is recognised.
func Detect(dir string) model.Language {
	for _, g := range []Generator{JavaScript{}, Rust{}} {
		if exists(filepath.Join(dir, g.Descriptor())) {
			return g.Language()
		}
	}
	return ""
}

// writeSource writes a starter file unless it already exists.
func writeSource(dir, rel string, content []byte, force bool) (bool, error) {
	path := filepath.Join(dir, rel)
	if !force && exists(path) {
		return false, nil
	}
	if err := manifest.WriteFile(path, content); err != nil {
		return false, err
	}
	return true, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
