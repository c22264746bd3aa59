package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/taskdeck/internal/poll"
)

var logsFollow bool

var logsCmd = &cobra.Command{
	Use:   "logs <task-id>",
	Short: "Print a task's logs",
	Long: `Logs prints the log lines recorded for a task. With --follow it
keeps polling and prints new lines as they appear, until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "keep polling and print new lines")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	taskID, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	e, err := newEnv(false)
	if err != nil {
		return err
	}
	defer e.close()

	if !logsFollow {
		lines, err := e.client.FetchLogs(cmd.Context(), taskID)
		if err != nil {
			return err
		}
		fmt.Println(poll.RenderLogs(lines))
		return nil
	}

	return followLogs(e, taskID)
}

// followLogs tails the task until interrupted, printing only lines not
// seen on a previous tick.
func followLogs(e *env, taskID int) error {
	printed := 0
	e.tails.StartTail(context.Background(), taskID, func(text string) {
		if text == poll.NoLogsSentinel {
			return
		}
		lines := strings.Split(text, "\n")
		for ; printed < len(lines); printed++ {
			fmt.Println(lines[printed])
		}
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	<-sigCh

	e.tails.StopTail(taskID)
	return nil
}
