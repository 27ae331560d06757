package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/questlog/internal/files"
	"github.com/faizmokh/questlog/internal/page"
	"github.com/faizmokh/questlog/internal/render"
)

// generateOptions are the flags shared by every command that produces HTML.
type generateOptions struct {
	quest    string
	template string
	escape   bool
}

func (o *generateOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.quest, "quest", "", "Quest file")
	cmd.Flags().StringVar(&o.template, "template-file", "", "Handlebars page template with a {{content}} placeholder")
	cmd.Flags().BoolVar(&o.escape, "escape", false, "HTML-escape actions and custom tags")
}

// renderOptions lets an explicit --escape win over the config file.
func (a *app) renderOptions(cmd *cobra.Command, opts generateOptions) render.Options {
	escape := a.cfg.Render.Escape
	if cmd.Flags().Changed("escape") {
		escape = opts.escape
	}
	return render.Options{Escape: escape}
}

func (a *app) templatePath(opts generateOptions) (string, error) {
	path := opts.template
	if path == "" {
		path = a.cfg.Render.Template
	}
	if path == "" {
		return "", nil
	}
	return files.ExpandPath(path)
}

// generate reads, converts and optionally wraps the quest in its template.
func (a *app) generate(cmd *cobra.Command, opts generateOptions) (string, error) {
	if opts.quest == "" {
		return "", fmt.Errorf("--quest is required")
	}
	text, err := files.ReadQuest(opts.quest)
	if err != nil {
		return "", err
	}

	fragment, err := render.NewGenerator(a.logger, a.renderOptions(cmd, opts)).Generate(text)
	if err != nil {
		return "", err
	}

	tpl, err := a.templatePath(opts)
	if err != nil {
		return "", err
	}
	if tpl == "" {
		return fragment, nil
	}
	return page.MergeFile(tpl, fragment)
}
