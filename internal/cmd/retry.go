package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/taskdeck/internal/lifecycle"
)

var retryYes bool

var retryCmd = &cobra.Command{
	Use:   "retry <task-id>",
	Short: "Retry a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runRetry,
}

func init() {
	retryCmd.Flags().BoolVarP(&retryYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(retryCmd)
}

func runRetry(cmd *cobra.Command, args []string) error {
	taskID, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	e, err := newEnv(false)
	if err != nil {
		return err
	}
	defer e.close()

	intent := lifecycle.RetryIntent{TaskID: taskID}
	if !confirm(intent.Prompt(), retryYes) {
		fmt.Println("aborted")
		return nil
	}

	if err := e.coord.Execute(cmd.Context(), intent); err != nil {
		return err
	}
	fmt.Printf("task %d retried\n", taskID)
	return nil
}
