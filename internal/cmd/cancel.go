package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/taskdeck/internal/lifecycle"
)

var cancelYes bool

var cancelCmd = &cobra.Command{
	Use:   "cancel <task-id>",
	Short: "Cancel a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runCancel,
}

func init() {
	cancelCmd.Flags().BoolVarP(&cancelYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(cancelCmd)
}

func runCancel(cmd *cobra.Command, args []string) error {
	taskID, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	e, err := newEnv(false)
	if err != nil {
		return err
	}
	defer e.close()

	intent := lifecycle.CancelIntent{TaskID: taskID}
	if !confirm(intent.Prompt(), cancelYes) {
		fmt.Println("aborted")
		return nil
	}

	if err := e.coord.Execute(cmd.Context(), intent); err != nil {
		return err
	}
	fmt.Printf("task %d cancelled\n", taskID)
	return nil
}
