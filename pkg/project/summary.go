package project

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/toni500git/ulpm/pkg/model"
)

func summaryMarkdown(s model.Settings, files []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", s.ProjectName)
	b.WriteString("| Setting | Value |\n|---|---|\n")
	rows := [][2]string{
		{"Language", s.Language},
		{"Package manager", s.PackageManager},
		{"Runtime", s.JSRuntime},
		{"Main", s.JSMain},
		{"Version", s.ProjectVersion},
		{"Author", s.Author},
		{"License", s.License},
		{"Description", s.ProjectDescription},
	}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s |\n", r[0], strings.ReplaceAll(r[1], "|", `\|`))
	}
	if len(files) > 0 {
		b.WriteString("\nFiles written:\n\n")
		for _, f := range files {
			fmt.Fprintf(&b, "- `%s`\n", f)
		}
	}
	return b.String()
}

func (p *Project) printSummary(s model.Settings, files []string) error {
	style := glamour.WithAutoStyle()
	if p.opts.SummaryStyle != "" {
		style = glamour.WithStandardStyle(p.opts.SummaryStyle)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return err
	}
	out, err := r.Render(summaryMarkdown(s, files))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(p.opts.Out, out)
	return err
}
