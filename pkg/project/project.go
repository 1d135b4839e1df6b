// Package project implements the ulpm workflows. Init scaffolds a project and
// Set edits its manifest; Run and Packages hand scripts and dependency
// changes to the package manager.
package project

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/toni500git/ulpm/pkg/catalog"
	"github.com/toni500git/ulpm/pkg/license"
	"github.com/toni500git/ulpm/pkg/model"
	"github.com/toni500git/ulpm/pkg/pm"
)

// Prompter asks the user for values. ui.Runner is the terminal
// implementation.
type Prompter interface {
	Entry(prompt string, options []string, def string) (string, error)
	Input(prompt, def string) (string, error)
	Confirm(title string, def bool) (bool, error)
	Interactive() bool
}

// LicenseInstaller writes a license text into a project.
type LicenseInstaller interface {
	Install(ctx context.Context, dir, id string, force bool) (bool, error)
}

// Commander runs package manager commands. pm.Runner is the process
// implementation.
type Commander interface {
	RunScript(ctx context.Context, pmName, script string, args ...string) error
	Do(ctx context.Context, pmName string, action pm.Action, args ...string) error
}

// Options configures a Project.
type Options struct {
	Dir     string
	Force   bool
	Yes     bool
	Verbose bool

	Logger  *slog.Logger
	Catalog *catalog.Catalog
	// Overrides come from the command line and win over manifest values.
	Overrides model.Settings

	Prompter Prompter
	License  LicenseInstaller
	Commands Commander

	// Out receives the init summary.
	Out io.Writer
	// SummaryStyle is a glamour style name; empty picks one from the
	// terminal.
	SummaryStyle string
}

// Project runs workflows against one directory.
type Project struct {
	opts Options
	log  *slog.Logger
}

// New fills in defaults for everything opts leaves unset.
func New(opts Options) *Project {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.License == nil {
		opts.License = license.NewClient(opts.Logger)
	}
	if opts.Commands == nil {
		opts.Commands = pm.NewRunner(opts.Logger, opts.Dir, opts.Verbose)
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Project{opts: opts, log: opts.Logger}
}

func (p *Project) interactive() bool {
	return !p.opts.Yes && p.opts.Prompter != nil && p.opts.Prompter.Interactive()
}
