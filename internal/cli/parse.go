package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/faizmokh/questlog/internal/files"
	"github.com/faizmokh/questlog/internal/quest"
)

type lineView struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Action string   `json:"action,omitempty" yaml:"action,omitempty"`
	Tags   []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

type documentView struct {
	Lines []lineView `json:"lines" yaml:"lines"`
}

func viewDocument(doc quest.Document) documentView {
	view := documentView{Lines: make([]lineView, 0, len(doc.Lines))}
	for _, line := range doc.Lines {
		if line.IsMarker() {
			view.Lines = append(view.Lines, lineView{Kind: "marker"})
			continue
		}
		lv := lineView{Kind: "stage", Action: line.Stage.Action}
		for _, tag := range line.Stage.Tags {
			lv.Tags = append(lv.Tags, tag.String())
		}
		view.Lines = append(view.Lines, lv)
	}
	return view
}

func newParseCommand(a *app) *cobra.Command {
	var (
		questFlag  string
		formatFlag string
	)

	cmd := &cobra.Command{
		Use:   "parse --quest FILE",
		Short: "Print the parsed structure of a quest file.",
		Long:  "parse checks a quest file against the grammar and prints its lines as JSON or YAML.",
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			text, err := files.ReadQuest(questFlag)
			if err != nil {
				return err
			}
			doc, err := quest.Parse(text)
			if err != nil {
				return fmt.Errorf("parse quest: %w", err)
			}
			a.logger.Debug("parsed quest", "lines", len(doc.Lines))

			view := viewDocument(doc)
			out := cmd.OutOrStdout()
			switch strings.ToLower(formatFlag) {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(view); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("invalid format %q (expected json|yaml)", formatFlag)
			}
		}),
	}

	cmd.Flags().StringVar(&questFlag, "quest", "", "Quest file")
	cmd.Flags().StringVar(&formatFlag, "format", "json", "Output format: json|yaml")
	_ = cmd.MarkFlagRequired("quest")

	return cmd
}
