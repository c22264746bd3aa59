package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/taskdeck/internal/tui/styles"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the service's tasks",
	RunE:  runTasks,
}

func init() {
	rootCmd.AddCommand(tasksCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	e, err := newEnv(false)
	if err != nil {
		return err
	}
	defer e.close()

	tasks, err := e.client.ListTasks(cmd.Context())
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("no tasks")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tDESCRIPTION")
	for _, task := range tasks {
		status := lipgloss.NewStyle().Foreground(styles.StatusColor(task.Status)).Render(task.Status)
		fmt.Fprintf(w, "%d\t%s\t%s\n", task.ID, status, task.Description)
	}
	return w.Flush()
}
