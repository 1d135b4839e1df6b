package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/toni500git/ulpm/pkg/manifest"
	"github.com/toni500git/ulpm/pkg/version"
)

func ulpm(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(""), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersion(t *testing.T) {
	for _, flag := range []string{"-V", "--version"} {
		code, out, _ := ulpm(t, flag)
		if code != 0 || out != "ulpm "+version.String()+"\n" {
			t.Errorf("%s: got (%d, %q)", flag, code, out)
		}
	}
}

func TestInitSetRun(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	code, out, errOut := ulpm(t, "init", "-y", "--language", "rust", "--project_name", "demo", "--license", "None")
	if code != 0 {
		t.Fatalf("init failed (%d):\n%s", code, errOut)
	}
	if !strings.Contains(errOut, "ulpm: INFO: Done!") {
		t.Errorf("expected Done!, stderr:\n%s", errOut)
	}
	if !strings.Contains(out, "demo") {
		t.Errorf("expected summary on stdout:\n%s", out)
	}
	if _, err := os.Stat("Cargo.toml"); err != nil {
		t.Error(err)
	}

	code, _, errOut = ulpm(t, "set", "--project_description", "changed")
	if code != 0 {
		t.Fatalf("set failed (%d):\n%s", code, errOut)
	}
	m, err := manifest.Require(".")
	if err != nil {
		t.Fatal(err)
	}
	if m.ProjectDescription != "changed" || m.ProjectName != "demo" {
		t.Errorf("unexpected manifest %+v", m)
	}
}

func TestErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unsupported language", []string{"init", "-y", "--language", "c++"}, `ulpm: ERROR: language "c++" is WIP`},
		{"unknown language", []string{"init", "-y", "--language", "rst"}, `did you mean "rust"?`},
		{"run without manifest", []string{"run", "start"}, "run 'ulpm init' first"},
		{"set without manifest", []string{"set", "--author", "me"}, "no ulpm.json found"},
		{"run without script", []string{"run"}, "requires at least 1 arg"},
		{"install without packages", []string{"install"}, "requires at least 1 arg"},
		{"remove without manifest", []string{"remove", "lodash"}, "run 'ulpm init' first"},
		{"update without manifest", []string{"update"}, "run 'ulpm init' first"},
		{"unknown flag", []string{"init", "--nope"}, "unknown flag: --nope"},
		{"missing catalog", []string{"--catalog", "nope.yaml", "init", "-y"}, "failed to read catalog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := ulpm(t, tt.args...)
			if code != 1 {
				t.Errorf("expected exit code 1, got %d", code)
			}
			if !strings.Contains(errOut, tt.want) {
				t.Errorf("stderr does not contain %q:\n%s", tt.want, errOut)
			}
		})
	}
}
