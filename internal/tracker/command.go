package tracker

// Command is one parsed tracker operation. The set of variants is closed:
// AddTask, CompleteTask, ListTasks and ListUsers.
type Command interface {
	Name() string
	command()
}

// AddTask appends a new task to the user, registering the user if needed.
type AddTask struct {
	User  string
	Title string
}

// CompleteTask marks the user's first task with the given title as done.
type CompleteTask struct {
	User  string
	Title string
}

// ListTasks lists one user's tasks.
type ListTasks struct {
	User string
}

// ListUsers lists every registered user.
type ListUsers struct{}

func (AddTask) Name() string      { return "add-task" }
func (CompleteTask) Name() string { return "complete-task" }
func (ListTasks) Name() string    { return "list-tasks" }
func (ListUsers) Name() string    { return "list-users" }

func (AddTask) command()      {}
func (CompleteTask) command() {}
func (ListTasks) command()    {}
func (ListUsers) command()    {}
