// Package ui renders tracker results and the supplementary views.
//
// Result text from Render is never styled: it is the tool's stable output
// format. Styling applies only to the board, errors and the TUIs.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/idilsaglam/tasks/internal/tracker"
)

// Render writes the user-facing text for res.
func Render(w io.Writer, res tracker.Result) error {
	var b strings.Builder
	switch res.Outcome {
	case tracker.TaskAdded:
		fmt.Fprintf(&b, "📌 Task '%s' added to %s.\n", res.Title, res.User)
	case tracker.TaskCompleted:
		fmt.Fprintf(&b, "✅ Task '%s' completed.\n", res.Title)
	case tracker.AlreadyCompleted:
		fmt.Fprintf(&b, "ℹ️  Task '%s' is already completed.\n", res.Title)
	case tracker.UserNotFound:
		fmt.Fprintf(&b, "❌ User '%s' not found.\n", res.User)
	case tracker.TaskNotFound:
		fmt.Fprintf(&b, "❌ Task '%s' not found for %s.\n", res.Title, res.User)
	case tracker.TasksListed:
		tasks := res.Owner.Tasks()
		if len(tasks) == 0 {
			fmt.Fprintf(&b, "%s has no tasks.\n", res.Owner.Name())
			break
		}
		fmt.Fprintf(&b, "\n%s's tasks:\n", res.Owner.Name())
		for i, t := range tasks {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, t)
		}
	case tracker.UsersListed:
		if len(res.Users) == 0 {
			b.WriteString("No users found.\n")
			break
		}
		b.WriteString("\nAll users:\n")
		for _, u := range res.Users {
			fmt.Fprintf(&b, "  • %s\n", u)
		}
	default:
		return fmt.Errorf("render: unknown outcome %v", res.Outcome)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderString is Render into a string.
func RenderString(res tracker.Result) (string, error) {
	var b strings.Builder
	err := Render(&b, res)
	return b.String(), err
}

// Fail writes a short error line.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render("✖ "+msg))
}
