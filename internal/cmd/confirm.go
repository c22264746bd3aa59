package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// confirm prints a y/N prompt and reads a single line from stdin.
// Anything other than y/yes declines.
func confirm(prompt string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// parseTaskID parses a positional task id argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}
