package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var outputsCmd = &cobra.Command{
	Use:   "outputs <task-id>",
	Short: "Print a task's recorded outputs",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutputs,
}

func init() {
	rootCmd.AddCommand(outputsCmd)
}

func runOutputs(cmd *cobra.Command, args []string) error {
	taskID, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	e, err := newEnv(false)
	if err != nil {
		return err
	}
	defer e.close()

	lines, err := e.coord.Outputs(cmd.Context(), taskID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		fmt.Println("(No outputs yet)")
		return nil
	}
	fmt.Println(strings.Join(lines, "\n"))
	return nil
}
