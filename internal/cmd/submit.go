package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/taskdeck/internal/lifecycle"
)

var submitYes bool

var submitCmd = &cobra.Command{
	Use:   "submit <description>...",
	Short: "Submit a new task to the service",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSubmit,
}

func init() {
	submitCmd.Flags().BoolVarP(&submitYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	e, err := newEnv(false)
	if err != nil {
		return err
	}
	defer e.close()

	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		return lifecycle.ErrInvalidSubmission
	}

	intent := lifecycle.SubmitIntent{Description: description}
	if !confirm(intent.Prompt(), submitYes) {
		fmt.Println("aborted")
		return nil
	}

	if err := e.coord.Execute(cmd.Context(), intent); err != nil {
		return err
	}
	fmt.Println("task submitted")
	return nil
}
