package model

import "fmt"

// ManifestName is the project manifest file ulpm reads and writes.
const ManifestName = "ulpm.json"

// Defaults applied when neither the manifest nor the command line sets a
// value.
const (
	DefaultProjectVersion = "v0.0.1"
	DefaultAuthor         = "Name <email@example.com>"
	DefaultJSMain         = "src/main.js"
	DefaultRustEdition    = "2021"
)

// Licenses that have no SPDX text to download.
const (
	LicenseNone   = "None"
	LicenseCustom = "Custom"
)

// Language names an ecosystem ulpm knows how to scaffold
type Language string

const (
	LangJavaScript Language = "javascript"
	LangRust       Language = "rust"
	LangCpp        Language = "c++"
)

// Manifest is the document stored in ulpm.json. Field order is the order
// fields are written in.
type Manifest struct {
	ProjectName        string      `json:"project_name"`
	ProjectDescription string      `json:"project_description"`
	ProjectVersion     string      `json:"project_version"`
	Author             string      `json:"author"`
	License            string      `json:"license"`
	Language           Language    `json:"language"`
	PackageManager     string      `json:"package_manager"`
	JavaScript         *JavaScript `json:"javascript,omitempty"`
	Rust               *Rust       `json:"rust,omitempty"`
}

// JavaScript holds the javascript specific manifest section
type JavaScript struct {
	Runtime string `json:"runtime"`
	Main    string `json:"main,omitempty"`
}

// Rust holds the rust specific manifest section
type Rust struct {
	Edition string `json:"edition,omitempty"`
}

// IsEmpty reports whether nothing has been written to the manifest yet.
func (m Manifest) IsEmpty() bool {
	return m == Manifest{}
}

// Clone creates a deep copy of the manifest
func (m Manifest) Clone() Manifest {
	clone := m
	if m.JavaScript != nil {
		v := *m.JavaScript
		clone.JavaScript = &v
	}
	if m.Rust != nil {
		v := *m.Rust
		clone.Rust = &v
	}
	return clone
}

// Validate checks that every required field is present. Catalog membership
// is checked by the catalog package.
func (m *Manifest) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"language", string(m.Language)},
		{"package_manager", m.PackageManager},
		{"license", m.License},
		{"project_name", m.ProjectName},
		{"project_version", m.ProjectVersion},
		{"author", m.Author},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("missing field %q in %s", r.field, ManifestName)
		}
	}
	if m.Language == LangJavaScript && (m.JavaScript == nil || m.JavaScript.Runtime == "") {
		return fmt.Errorf("missing field %q in %s", "javascript.runtime", ManifestName)
	}
	return nil
}

// Settings are the values a project is initialised from: manifest
// contents, command line overrides and menu answers all flow through it.
type Settings struct {
	Language           string
	PackageManager     string
	License            string
	ProjectName        string
	ProjectDescription string
	ProjectVersion     string
	Author             string
	JSRuntime          string
	JSMain             string
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		ProjectVersion: DefaultProjectVersion,
		Author:         DefaultAuthor,
		JSMain:         DefaultJSMain,
	}
}

// Merge returns s with every non-empty field of over applied on top.
func (s Settings) Merge(over Settings) Settings {
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&s.Language, over.Language)
	pick(&s.PackageManager, over.PackageManager)
	pick(&s.License, over.License)
	pick(&s.ProjectName, over.ProjectName)
	pick(&s.ProjectDescription, over.ProjectDescription)
	pick(&s.ProjectVersion, over.ProjectVersion)
	pick(&s.Author, over.Author)
	pick(&s.JSRuntime, over.JSRuntime)
	pick(&s.JSMain, over.JSMain)
	return s
}

// IsZero reports whether no field is set.
func (s Settings) IsZero() bool {
	return s == Settings{}
}

// Settings extracts the values stored in the manifest.
func (m Manifest) Settings() Settings {
	s := Settings{
		Language:           string(m.Language),
		PackageManager:     m.PackageManager,
		License:            m.License,
		ProjectName:        m.ProjectName,
		ProjectDescription: m.ProjectDescription,
		ProjectVersion:     m.ProjectVersion,
		Author:             m.Author,
	}
	if m.JavaScript != nil {
		s.JSRuntime = m.JavaScript.Runtime
		s.JSMain = m.JavaScript.Main
	}
	return s
}

// ManifestFromSettings builds the document written by init. Only the
// section of the chosen language is present.
func ManifestFromSettings(s Settings) Manifest {
	m := Manifest{
		ProjectName:        s.ProjectName,
		ProjectDescription: s.ProjectDescription,
		ProjectVersion:     s.ProjectVersion,
		Author:             s.Author,
		License:            s.License,
		Language:           Language(s.Language),
		PackageManager:     s.PackageManager,
	}
	switch m.Language {
	case LangJavaScript:
		m.JavaScript = &JavaScript{Runtime: s.JSRuntime, Main: s.JSMain}
	case LangRust:
		m.Rust = &Rust{Edition: DefaultRustEdition}
	}
	return m
}
