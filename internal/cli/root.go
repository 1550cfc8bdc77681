// Package cli wires the tasks command tree.
package cli

import (
	"io"

	"github.com/spf13/cobra"
)

const rootLong = `Manage tasks for users.

Each user owns an ordered list of tasks. Users are created the first time a
task is added for them. State is kept in the configured store between runs;
use --store memory to keep it only for the current process.`

const rootExample = `  tasks add-task Alice "Write unit tests"
  tasks complete-task Alice "Write unit tests"
  tasks list-tasks Alice
  tasks list-users`

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "tasks",
		Short:         "Task Manager CLI - Manage tasks for users",
		Long:          rootLong,
		Example:       rootExample,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: .tasks/config.yaml or ~/.config/tasks/config.yaml)")
	pf.String("store", "json", "storage backend: json, yaml, sqlite or memory")
	pf.String("data", "", "snapshot path (default: tasks.json, tasks.yaml or tasks.db by store)")
	pf.String("theme", "classic", "color theme: classic, neon or mono")
	pf.Bool("no-color", false, "disable colored output")
	pf.Bool("debug", false, "write debug logs (also TASKS_DEBUG)")

	root.AddCommand(
		newAddTaskCommand(a),
		newCompleteTaskCommand(a),
		newListTasksCommand(a),
		newListUsersCommand(a),
		newBoardCommand(a),
		newBrowseCommand(a),
		newShellCommand(a),
	)
	return root
}

// Execute runs the command line in args and returns the process exit code:
// 0 for every command outcome (including not-found), 2 for usage errors and
// 1 for configuration or storage failures.
func Execute(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	defer a.close()

	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	cmd, err := root.ExecuteC()
	return report(stderr, cmd, err)
}
