package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tasks/internal/tracker"
	"github.com/idilsaglam/tasks/internal/tui"
	"github.com/idilsaglam/tasks/internal/ui"
)

func newAddTaskCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-task <user> <title>",
		Short: "Add a new task for a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, tracker.AddTask{User: args[0], Title: args[1]})
		},
	}
}

func newCompleteTaskCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete-task <user> <title>",
		Short: "Mark a task as complete",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, tracker.CompleteTask{User: args[0], Title: args[1]})
		},
	}
}

func newListTasksCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list-tasks <user>",
		Short: "List all tasks for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, tracker.ListTasks{User: args[0]})
		},
	}
}

func newListUsersCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, tracker.ListUsers{})
		},
	}
}

func newBoardCommand(a *app) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:   "board <user>",
		Short: "Show a progress panel for a user's tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Execute(tracker.ListTasks{User: args[0]})
			if err != nil {
				return err
			}
			if res.Outcome != tracker.TasksListed {
				return renderOrFail(cmd, res)
			}
			if err := ui.Board(cmd.OutOrStdout(), res.Owner, group); err != nil {
				return failure(err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&group, "group", "g", false, "group tasks by pending/done")
	return cmd
}

func newBrowseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse <user>",
		Short: "Browse a user's tasks interactively (space completes, a adds)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			if err := tui.RunBrowse(a, args[0]); err != nil {
				return failure(fmt.Errorf("browse: %w", err))
			}
			return nil
		},
	}
}

func newShellCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive shell that keeps one registry across commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			if err := tui.RunShell(a.shellRunner()); err != nil {
				return failure(fmt.Errorf("shell: %w", err))
			}
			return nil
		},
	}
}

// shellRunner runs each shell line through a fresh command tree bound to
// the same app, so every line sees the same registry.
func (a *app) shellRunner() tui.Runner {
	return func(args []string) string {
		var buf bytes.Buffer
		if len(args) > 0 && (args[0] == "shell" || args[0] == "browse") {
			ui.Fail(&buf, args[0]+" is not available inside the shell")
			return buf.String()
		}
		if args == nil {
			args = []string{}
		}
		root := newRootCommand(a)
		root.SetArgs(args)
		root.SetOut(&buf)
		root.SetErr(&buf)
		cmd, err := root.ExecuteC()
		report(&buf, cmd, err)
		return buf.String()
	}
}

func renderOrFail(cmd *cobra.Command, res tracker.Result) error {
	if err := ui.Render(cmd.OutOrStdout(), res); err != nil {
		return failure(err)
	}
	return nil
}
