package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/toni500git/ulpm/pkg/catalog"
	"github.com/toni500git/ulpm/pkg/console"
	"github.com/toni500git/ulpm/pkg/license"
	"github.com/toni500git/ulpm/pkg/model"
	"github.com/toni500git/ulpm/pkg/pm"
	"github.com/toni500git/ulpm/pkg/project"
	"github.com/toni500git/ulpm/pkg/ui"
	"github.com/toni500git/ulpm/pkg/version"
)

// app carries the process streams and the parsed flags.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	dir    string

	verbose     bool
	debug       bool
	catalogPath string

	force     bool
	yes       bool
	overrides model.Settings

	logger *slog.Logger
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ulpm",
		Short:         "Universal lightweight package manager",
		Long:          "ulpm scaffolds projects and runs their scripts through the package manager of their ecosystem.",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.debug {
				level = slog.LevelDebug
			}
			a.logger = console.New(a.stderr, level)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetVersionTemplate("ulpm {{.Version}}\n")

	root.Flags().BoolP("version", "V", false, "Print version and exit")
	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Show package manager output")
	pf.BoolVar(&a.debug, "debug", false, "Print debug messages")
	pf.StringVar(&a.catalogPath, "catalog", "", "Read languages and licenses from this YAML file (env "+catalog.EnvPath+")")

	root.AddCommand(
		a.initCmd(),
		a.setCmd(),
		a.runCmd(),
		a.packagesCmd(pm.Install, "install PACKAGE...", "Add dependencies to the project", cobra.MinimumNArgs(1)),
		a.packagesCmd(pm.Remove, "remove PACKAGE...", "Remove dependencies from the project", cobra.MinimumNArgs(1)),
		a.packagesCmd(pm.Update, "update [PACKAGE...]", "Update dependencies of the project", cobra.ArbitraryArgs),
	)
	return root
}

func (a *app) manifestFlags(fs *pflag.FlagSet) {
	fs.StringVar(&a.overrides.Language, "language", "", "Language of the project")
	fs.StringVar(&a.overrides.PackageManager, "package_manager", "", "Package manager to use")
	fs.StringVar(&a.overrides.ProjectName, "project_name", "", "Name of the project")
	fs.StringVar(&a.overrides.ProjectDescription, "project_description", "", "Description of the project")
	fs.StringVar(&a.overrides.ProjectVersion, "project_version", "", "Version of the project")
	fs.StringVar(&a.overrides.Author, "author", "", "Author of the project")
	fs.StringVar(&a.overrides.License, "license", "", "SPDX license identifier, None or Custom")
	fs.StringVar(&a.overrides.JSRuntime, "runtime", "", "Javascript runtime")
	fs.StringVar(&a.overrides.JSMain, "main", "", "Path to the main javascript entry")
}

func (a *app) initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a project in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.project()
			if err != nil {
				return err
			}
			return p.Init(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&a.force, "force", "f", false, "Overwrite the manifest and project files without asking")
	cmd.Flags().BoolVarP(&a.yes, "yes", "y", false, "Skip the menus and use defaults")
	a.manifestFlags(cmd.Flags())
	return cmd
}

func (a *app) setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change values in " + model.ManifestName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.project()
			if err != nil {
				return err
			}
			return p.Set(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&a.force, "force", "f", false, "Download the license text even if "+license.FileName+" exists")
	a.manifestFlags(cmd.Flags())
	return cmd
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run SCRIPT [ARGS...]",
		Short: "Run a script with the project's package manager",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.project()
			if err != nil {
				return err
			}
			return p.Run(cmd.Context(), args[0], args[1:]...)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// packagesCmd passes the package names to the project's package manager.
// Flags after the names are handed over untouched.
func (a *app) packagesCmd(action pm.Action, use, short string, args cobra.PositionalArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.project()
			if err != nil {
				return err
			}
			return p.Packages(cmd.Context(), action, args...)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) project() (*project.Project, error) {
	cat, err := catalog.Load(a.catalogPath)
	if err != nil {
		return nil, err
	}

	prompter := ui.NewRunner(a.logger)
	prompter.In = a.stdin
	prompter.Out = a.stdout

	commands := pm.NewRunner(a.logger, a.dir, a.verbose)
	commands.Stdout = a.stdout
	commands.Stderr = a.stderr

	return project.New(project.Options{
		Dir:       a.dir,
		Force:     a.force,
		Yes:       a.yes,
		Verbose:   a.verbose,
		Logger:    a.logger,
		Catalog:   cat,
		Overrides: a.overrides,
		Prompter:  prompter,
		License:   license.NewClient(a.logger),
		Commands:  commands,
		Out:       a.stdout,
	}), nil
}
