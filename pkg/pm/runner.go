package pm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Runner executes package manager commands in a project directory.
type Runner struct {
	Dir     string
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger

	// Command creates the process; tests replace it.
	Command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewRunner returns a runner attached to the process output.
func NewRunner(logger *slog.Logger, dir string, verbose bool) *Runner {
	return &Runner{
		Dir:     dir,
		Verbose: verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  logger,
		Command: exec.CommandContext,
	}
}

// Exec runs action with the given package manager. In verbose mode the
// child shares our output; otherwise its combined output is only shown
// when it fails.
func (r *Runner) Exec(ctx context.Context, c Commands, action Action, args ...string) error {
	argv, err := c.Args(action, args...)
	if err != nil {
		return err
	}

	command := r.Command
	if command == nil {
		command = exec.CommandContext
	}
	cmd := command(ctx, c.Name, argv...)
	cmd.Dir = r.Dir

	if r.Logger != nil {
		r.Logger.Debug("Running", "cmd", c.Name+" "+strings.Join(argv, " "), "dir", r.Dir)
	}

	if r.Verbose {
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
		return cmd.Run()
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		if out := strings.TrimSpace(string(output)); out != "" && r.Stderr != nil {
			fmt.Fprintln(r.Stderr, out)
		}
		return err
	}
	return nil
}

// Do runs a package operation such as install or remove through the named
// package manager.
func (r *Runner) Do(ctx context.Context, pmName string, action Action, args ...string) error {
	c, err := Lookup(pmName)
	if err != nil {
		return err
	}
	if err := r.Exec(ctx, c, action, args...); err != nil {
		return fmt.Errorf("failed to %s packages with %s: %w", action, pmName, err)
	}
	return nil
}

// RunScript runs a project script through the package manager.
func (r *Runner) RunScript(ctx context.Context, pmName, script string, args ...string) error {
	c, err := Lookup(pmName)
	if err != nil {
		return err
	}
	if err := r.Exec(ctx, c, Run, append([]string{script}, args...)...); err != nil {
		return fmt.Errorf("failed to run cmd %q: %w", script, err)
	}
	return nil
}
