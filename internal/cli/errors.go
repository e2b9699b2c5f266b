package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

// usageError marks bad invocations; they exit with code 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usageErrorf(msg string) error { return usageError{errors.New(msg)} }

// ExitCode maps an Execute error to the process exit code: 0 ok, 1 error,
// 2 usage.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		return 2
	}
	return 1
}

// usageArgs wraps an argument check so its failures count as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}
