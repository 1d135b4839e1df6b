package project

import (
	"context"

	"github.com/toni500git/ulpm/pkg/manifest"
	"github.com/toni500git/ulpm/pkg/pm"
)

// Run executes script with the package manager recorded in the manifest.
func (p *Project) Run(ctx context.Context, script string, args ...string) error {
	m, err := manifest.Require(p.opts.Dir)
	if err != nil {
		return err
	}
	return p.opts.Commands.RunScript(ctx, m.PackageManager, script, args...)
}

// Packages hands a dependency change to the package manager recorded in the
// manifest.
func (p *Project) Packages(ctx context.Context, action pm.Action, names ...string) error {
	m, err := manifest.Require(p.opts.Dir)
	if err != nil {
		return err
	}
	if err := p.opts.Commands.Do(ctx, m.PackageManager, action, names...); err != nil {
		return err
	}
	p.log.Info("Done!")
	return nil
}
