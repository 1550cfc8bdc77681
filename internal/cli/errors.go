package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tasks/internal/ui"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// failureError marks errors that are not the user's invocation mistake
// (config, store), which exit 1 without usage text.
type failureError struct{ err error }

func (e *failureError) Error() string { return e.err.Error() }
func (e *failureError) Unwrap() error { return e.err }

func failure(err error) error {
	if err == nil {
		return nil
	}
	var fe *failureError
	if errors.As(err, &fe) {
		return err
	}
	return &failureError{err: err}
}

// report prints err to w and returns the exit code for it. Usage errors
// are followed by the failing command's usage text.
func report(w io.Writer, cmd *cobra.Command, err error) int {
	if err == nil {
		return exitOK
	}
	ui.Fail(w, err.Error())
	var fe *failureError
	if errors.As(err, &fe) {
		return exitFailure
	}
	if cmd != nil {
		fmt.Fprintln(w)
		fmt.Fprint(w, cmd.UsageString())
	}
	return exitUsage
}
