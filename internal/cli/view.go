package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/questlog/internal/ui"
)

func newViewCommand(ctx context.Context, a *app) *cobra.Command {
	var questFlag string

	cmd := &cobra.Command{
		Use:   "view --quest FILE",
		Short: "Browse a quest in the terminal.",
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, questFlag)
			program := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&questFlag, "quest", "", "Quest file")
	_ = cmd.MarkFlagRequired("quest")

	return cmd
}
