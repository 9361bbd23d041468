package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gtodo/internal/exitcode"
)

// ErrTaskIDRequired indicates no task ID was provided.
var ErrTaskIDRequired = errors.New("task id required")

// ParseTaskID parses the task ID argument of show, edit, toggle and rm.
// Parsing rules:
// 1. No args, or a blank first arg → ErrTaskIDRequired
// 2. More than one arg → error: unexpected argument: <arg>
// 3. An ID containing "/" → error: invalid task id: <id>
// 4. Otherwise the trimmed arg is the ID
func ParseTaskID(args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrTaskIDRequired
	}

	id := strings.TrimSpace(args[0])
	if id == "" {
		return "", ErrTaskIDRequired
	}
	if len(args) > 1 {
		return "", fmt.Errorf("unexpected argument: %s", args[1])
	}

	// Store keys and document paths are slash-separated.
	if strings.Contains(id, "/") {
		return "", fmt.Errorf("invalid task id: %s", id)
	}
	return id, nil
}

// taskIDArg parses the task ID argument and prints any error.
func taskIDArg(args []string, errOut io.Writer) (string, int) {
	id, err := ParseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return "", exitcode.UserError
	}
	return id, exitcode.Success
}
