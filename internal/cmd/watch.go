package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/taskdeck/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open the interactive task view",
	Long: `Watch opens the terminal UI. The task list refreshes on a fixed
interval, selected tasks can be tailed for logs, and tasks can be
submitted, cancelled, or retried without leaving the view.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	e, err := newEnv(true)
	if err != nil {
		return err
	}
	defer e.close()

	app := tui.NewApp(context.Background(), e.cfg, e.bus, e.store, e.sync, e.tails, e.coord, e.logger)
	return app.Run()
}
