package project

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/toni500git/ulpm/pkg/ecosystem"
	"github.com/toni500git/ulpm/pkg/license"
	"github.com/toni500git/ulpm/pkg/manifest"
	"github.com/toni500git/ulpm/pkg/model"
)

// Menu prompts, in the order init asks them.
const (
	PromptLanguage       = "Which language do you want to use?"
	PromptRuntime        = "Choose a Javascript runtime"
	PromptPackageManager = "Choose a preferred package manager to use"
	PromptName           = "Name of the project"
	PromptDescription    = "Description of the project"
	PromptVersion        = "Initial Version of the project"
	PromptAuthor         = "Author of the project"
	PromptMain           = "Path to main javascript entry"
	PromptLicense        = "Choose a license for the project"
)

// Init scaffolds a project: it settles every setting (menus, manifest,
// flags, detection), writes ulpm.json, the ecosystem files and the license
// text, and prints a summary.
func (p *Project) Init(ctx context.Context) error {
	o := p.opts
	if err := o.Catalog.Check(o.Overrides); err != nil {
		return err
	}

	current, err := manifest.Load(o.Dir)
	if err != nil {
		return err
	}

	reset := o.Force
	if !current.IsEmpty() && !reset && p.interactive() {
		title := fmt.Sprintf("%s is not empty. Overwrite it and the package files?", model.ManifestName)
		if reset, err = o.Prompter.Confirm(title, false); err != nil {
			return err
		}
	}

	s := model.DefaultSettings()
	if !reset {
		s = s.Merge(current.Settings())
	}
	s = s.Merge(o.Overrides)
	if s.Language == "" {
		s.Language = string(ecosystem.Detect(o.Dir))
	}
	if s.ProjectName == "" {
		if abs, err := filepath.Abs(o.Dir); err == nil {
			s.ProjectName = filepath.Base(abs)
		}
	}

	var gen ecosystem.Generator
	if p.interactive() {
		s, gen, err = p.ask(s)
	} else {
		if !o.Yes {
			p.log.Warn("Not running in a terminal, using defaults")
		}
		s, gen, err = p.fill(s)
	}
	if err != nil {
		return err
	}

	m := model.ManifestFromSettings(s)
	if err := o.Catalog.Validate(m); err != nil {
		return err
	}
	if err := manifest.Save(o.Dir, m); err != nil {
		return err
	}
	p.log.Debug("Wrote manifest", "file", model.ManifestName)

	files, err := p.writeFiles(ctx, gen, s, reset)
	if err != nil {
		return err
	}

	if err := p.printSummary(s, append([]string{model.ManifestName}, files...)); err != nil {
		p.log.Debug("Failed to render summary", "err", err)
	}
	p.log.Info("Done!")
	return nil
}

// ask walks the menus; the current settings are the preselected answers.
func (p *Project) ask(s model.Settings) (model.Settings, ecosystem.Generator, error) {
	pr, cat := p.opts.Prompter, p.opts.Catalog
	var err error

	if s.Language, err = pr.Entry(PromptLanguage, cat.LanguageNames(), preselect(cat.LanguageNames(), s.Language)); err != nil {
		return s, nil, err
	}
	gen, err := ecosystem.For(s.Language)
	if err != nil {
		return s, nil, err
	}
	lang, err := cat.Language(s.Language)
	if err != nil {
		return s, nil, err
	}

	if gen.Language() == model.LangJavaScript {
		if s.JSRuntime, err = pr.Entry(PromptRuntime, lang.Runtimes, preselect(lang.Runtimes, s.JSRuntime)); err != nil {
			return s, nil, err
		}
	} else {
		s.JSRuntime, s.JSMain = "", ""
	}
	if s.PackageManager, err = pr.Entry(PromptPackageManager, lang.PackageManagers, preselect(lang.PackageManagers, s.PackageManager)); err != nil {
		return s, nil, err
	}

	inputs := []struct {
		prompt string
		field  *string
	}{
		{PromptName, &s.ProjectName},
		{PromptDescription, &s.ProjectDescription},
		{PromptVersion, &s.ProjectVersion},
		{PromptAuthor, &s.Author},
	}
	if gen.Language() == model.LangJavaScript {
		inputs = append(inputs, struct {
			prompt string
			field  *string
		}{PromptMain, &s.JSMain})
	}
	for _, in := range inputs {
		if *in.field, err = pr.Input(in.prompt, *in.field); err != nil {
			return s, nil, err
		}
	}

	if s.License, err = pr.Entry(PromptLicense, cat.Licenses, preselect(cat.Licenses, s.License)); err != nil {
		return s, nil, err
	}
	return s, gen, nil
}

// preselect drops defaults the menu would not offer, so the query field
// starts empty instead of filtering everything out.
func preselect(options []string, def string) string {
	if slices.Contains(options, def) {
		return def
	}
	return ""
}

// fill completes the settings without asking: the first catalog entry is
// taken for every choice that is open or not offered for the language.
func (p *Project) fill(s model.Settings) (model.Settings, ecosystem.Generator, error) {
	if s.Language == "" {
		return s, nil, errors.New("no language given and none detected, pass --language")
	}
	gen, err := ecosystem.For(s.Language)
	if err != nil {
		return s, nil, err
	}
	lang, err := p.opts.Catalog.Language(s.Language)
	if err != nil {
		return s, nil, err
	}

	first := func(dst *string, options []string) {
		if !slices.Contains(options, *dst) && len(options) > 0 {
			*dst = options[0]
		}
	}
	first(&s.PackageManager, lang.PackageManagers)
	if gen.Language() == model.LangJavaScript {
		first(&s.JSRuntime, lang.Runtimes)
	} else {
		s.JSRuntime, s.JSMain = "", ""
	}
	if s.License == "" {
		s.License = model.LicenseNone
	}
	return s, gen, nil
}

// writeFiles writes the ecosystem files and downloads the license text
// concurrently. A failed download is reported but does not fail init.
func (p *Project) writeFiles(ctx context.Context, gen ecosystem.Generator, s model.Settings, force bool) ([]string, error) {
	var (
		mu    sync.Mutex
		files []string
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		written, err := gen.Create(p.opts.Dir, s, force)
		mu.Lock()
		files = append(written, files...)
		mu.Unlock()
		return err
	})
	g.Go(func() error {
		ok, err := p.opts.License.Install(gctx, p.opts.Dir, s.License, force)
		if err != nil {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			p.log.Warn("Could not fetch the license text", "license", s.License, "err", err)
			return nil
		}
		if ok {
			mu.Lock()
			files = append(files, license.FileName)
			mu.Unlock()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return files, err
	}
	return files, nil
}
