package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/questlog/internal/files"
	"github.com/faizmokh/questlog/internal/watch"
)

func newWatchCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		opts         generateOptions
		outFlag      string
		debounceFlag time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch --quest FILE",
		Short: "Regenerate the HTML every time the quest file changes.",
		Long:  "watch converts the quest once, then again after each change. Parse errors are logged and the previous output is kept.",
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			debounce := a.cfg.Watch.Debounce.Duration
			if cmd.Flags().Changed("debounce") {
				debounce = debounceFlag
			}

			w, err := watch.New(watch.Config{
				Path:     opts.quest,
				Debounce: debounce,
				Logger:   a.logger,
				OnChange: func(context.Context) error {
					out, err := a.generate(cmd, opts)
					if err != nil {
						return err
					}
					if outFlag == "" {
						_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
						return err
					}
					if err := files.WriteOutput(outFlag, out+"\n"); err != nil {
						return err
					}
					a.logger.Info("wrote", "path", outFlag)
					return nil
				},
			})
			if err != nil {
				return err
			}
			return w.Run(ctx)
		}),
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&outFlag, "out", "", "Write the HTML to this file instead of stdout")
	cmd.Flags().DurationVar(&debounceFlag, "debounce", 0, "Wait this long for writes to settle (default: 300ms)")
	_ = cmd.MarkFlagRequired("quest")

	return cmd
}
