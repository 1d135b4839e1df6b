package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/toni500git/ulpm/pkg/model"
)

func sample() model.Manifest {
	return model.ManifestFromSettings(model.Settings{
		Language:           "javascript",
		PackageManager:     "npm",
		License:            "MIT",
		ProjectName:        "demo",
		ProjectDescription: "A demo & more",
		ProjectVersion:     "v0.0.1",
		Author:             model.DefaultAuthor,
		JSRuntime:          "node",
		JSMain:             "src/main.js",
	})
}

func TestLoad_MissingOrEmpty(t *testing.T) {
	dir := t.TempDir()

	m, err := Load(dir)
	if err != nil || !m.IsEmpty() {
		t.Fatalf("missing file: expected empty manifest, got (%+v, %v)", m, err)
	}

	for _, content := range []string{"", "  \n", "{}"} {
		if err := os.WriteFile(Path(dir), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		m, err := Load(dir)
		if err != nil || !m.IsEmpty() {
			t.Errorf("content %q: expected empty manifest, got (%+v, %v)", content, m, err)
		}
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir), []byte(`{"project_name": `), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "failed to parse ulpm.json") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	want := sample()

	if err := Save(dir, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("manifest changed on disk (-want +got):\n%s", diff)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only %s in dir, found %d entries", model.ManifestName, len(entries))
	}
}

func TestMarshal_Format(t *testing.T) {
	data, err := Marshal(sample())
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	wantOrder := []string{`"project_name"`, `"project_description"`, `"project_version"`, `"author"`,
		`"license"`, `"language"`, `"package_manager"`, `"javascript": {`}
	last := -1
	for _, key := range wantOrder {
		i := strings.Index(text, key)
		if i <= last {
			t.Errorf("key %s out of order in\n%s", key, text)
		}
		last = i
	}

	if !strings.Contains(text, "\n    \"project_name\": \"demo\"") {
		t.Errorf("expected four space indent:\n%s", text)
	}
	if !strings.Contains(text, `"Name <email@example.com>"`) || !strings.Contains(text, "A demo & more") {
		t.Errorf("expected unescaped text:\n%s", text)
	}
	if strings.Contains(text, `"rust"`) {
		t.Errorf("unexpected rust section:\n%s", text)
	}
	if !strings.HasSuffix(text, "}\n") {
		t.Error("expected trailing newline")
	}
}

func TestRequire(t *testing.T) {
	dir := t.TempDir()

	if _, err := Require(dir); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := os.WriteFile(Path(dir), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Require(dir); err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected empty manifest error, got %v", err)
	}

	if err := Save(dir, sample()); err != nil {
		t.Fatal(err)
	}
	if m, err := Require(dir); err != nil || m.ProjectName != "demo" {
		t.Errorf("expected loaded manifest, got (%+v, %v)", m, err)
	}
}

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "nested", "main.js")
	if err := WriteFile(path, []byte("x")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "x" {
		t.Errorf("unexpected content (%q, %v)", data, err)
	}
}
