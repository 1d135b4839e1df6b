package project

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toni500git/ulpm/pkg/ecosystem"
	"github.com/toni500git/ulpm/pkg/manifest"
	"github.com/toni500git/ulpm/pkg/model"
)

// Set applies the overrides to an existing manifest and carries the
// changes into the package descriptor and license file.
func (p *Project) Set(ctx context.Context) error {
	o := p.opts
	m, err := manifest.Require(o.Dir)
	if err != nil {
		return err
	}
	cur := m.Settings()

	changes := diff(cur, o.Overrides)
	if changes.IsZero() {
		p.log.Info("Nothing to update")
		return nil
	}
	if changes.Language != "" {
		return fmt.Errorf("cannot change the language of an existing project, run 'ulpm init --force'")
	}
	if err := o.Catalog.Check(cur.Merge(changes)); err != nil {
		return err
	}

	next := model.ManifestFromSettings(cur.Merge(changes))
	if m.Rust != nil && next.Rust != nil {
		next.Rust.Edition = m.Rust.Edition
	}
	if err := manifest.Save(o.Dir, next); err != nil {
		return err
	}

	if gen, err := ecosystem.For(string(m.Language)); err == nil {
		if _, err := os.Stat(filepath.Join(o.Dir, gen.Descriptor())); err != nil {
			p.log.Warn("Package descriptor not found, not updating it", "file", gen.Descriptor())
		} else if ok, err := gen.Update(o.Dir, changes); err != nil {
			return err
		} else if ok {
			p.log.Debug("Updated package descriptor", "file", gen.Descriptor())
		}
	} else if !errors.Is(err, ecosystem.ErrUnsupported) {
		return err
	}

	if changes.License != "" {
		if _, err := o.License.Install(ctx, o.Dir, changes.License, o.Force); err != nil {
			p.log.Warn("Could not fetch the license text", "license", changes.License, "err", err)
		}
	}

	p.log.Info("Updated " + model.ManifestName)
	return nil
}

// diff returns the fields of over that are set and differ from cur.
func diff(cur, over model.Settings) model.Settings {
	pick := func(c, o string) string {
		if o != "" && o != c {
			return o
		}
		return ""
	}
	return model.Settings{
		Language:           pick(cur.Language, over.Language),
		PackageManager:     pick(cur.PackageManager, over.PackageManager),
		License:            pick(cur.License, over.License),
		ProjectName:        pick(cur.ProjectName, over.ProjectName),
		ProjectDescription: pick(cur.ProjectDescription, over.ProjectDescription),
		ProjectVersion:     pick(cur.ProjectVersion, over.ProjectVersion),
		Author:             pick(cur.Author, over.Author),
		JSRuntime:          pick(cur.JSRuntime, over.JSRuntime),
		JSMain:             pick(cur.JSMain, over.JSMain),
	}
}
