// Package pm knows the command lines of the supported package managers and
// runs them in a project directory.
package pm

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// ErrNoPackageManager is returned for package managers without a command
// table.
var ErrNoPackageManager = errors.New("unsupported package manager")

// Action is a package manager operation.
type Action string

const (
	Install Action = "install"
	Remove  Action = "remove"
	Update  Action = "update"
	Run     Action = "run"
)

// Commands is the command table of one package manager. Each entry holds
// the subcommand words placed after the executable.
type Commands struct {
	Name    string
	Install []string
	Remove  []string
	Update  []string
	Run     []string
	// ScriptArgs separates the script name from its arguments; cargo needs
	// "--" there.
	ScriptArgs []string
}

var tables = map[string]Commands{
	"npm": {
		Name:    "npm",
		Install: []string{"install"},
		Remove:  []string{"remove"},
		Update:  []string{"update"},
		Run:     []string{"run"},
	},
	"yarn": {
		Name:    "yarn",
		Install: []string{"add"},
		Remove:  []string{"remove"},
		Update:  []string{"upgrade"},
		Run:     []string{"run"},
	},
	"pnpm": {
		Name:    "pnpm",
		Install: []string{"add"},
		Remove:  []string{"remove"},
		Update:  []string{"update"},
		Run:     []string{"run"},
	},
	"cargo": {
		Name:       "cargo",
		Install:    []string{"add"},
		Remove:     []string{"remove"},
		Update:     []string{"update"},
		Run:        []string{"run", "--bin"},
		ScriptArgs: []string{"--"},
	},
}

// Lookup returns the command table of a package manager.
func Lookup(name string) (Commands, error) {
	c, ok := tables[name]
	if !ok {
		return Commands{}, fmt.Errorf("%q: %w (supported: %s)", name, ErrNoPackageManager, strings.Join(Names(), ", "))
	}
	return c, nil
}

// Names lists the package managers with a command table.
func Names() []string {
	names := make([]string, 0, len(tables))
	for n := range tables {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Args builds the argument list for action, without the executable.
func (c Commands) Args(action Action, args ...string) ([]string, error) {
	var sub []string
	switch action {
	case Install, Remove:
		if len(args) == 0 {
			return nil, fmt.Errorf("no packages to %s", action)
		}
		sub = c.Install
		if action == Remove {
			sub = c.Remove
		}
	case Update:
		sub = c.Update
	case Run:
		if len(args) == 0 {
			return nil, errors.New("no script given")
		}
		out := append(slices.Clone(c.Run), args[0])
		if len(args) > 1 {
			out = append(out, c.ScriptArgs...)
			out = append(out, args[1:]...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s does not support %q", c.Name, action)
	}
	return append(slices.Clone(sub), args...), nil
}
