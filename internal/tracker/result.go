package tracker

import (
	"errors"

	"github.com/idilsaglam/tasks/internal/model"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrAlreadyCompleted = errors.New("task already completed")
)

// Outcome classifies what a command did.
type Outcome int

const (
	TaskAdded Outcome = iota
	TaskCompleted
	AlreadyCompleted
	UserNotFound
	TaskNotFound
	TasksListed
	UsersListed
)

func (o Outcome) String() string {
	switch o {
	case TaskAdded:
		return "task_added"
	case TaskCompleted:
		return "task_completed"
	case AlreadyCompleted:
		return "already_completed"
	case UserNotFound:
		return "user_not_found"
	case TaskNotFound:
		return "task_not_found"
	case TasksListed:
		return "tasks_listed"
	case UsersListed:
		return "users_listed"
	default:
		return "unknown"
	}
}

// Result is the observable effect of executing a command.
type Result struct {
	Outcome Outcome
	User    string
	Title   string

	// Owner is set for TasksListed.
	Owner *model.User
	// Users is set for UsersListed.
	Users []*model.User

	// Changed reports whether the registry was mutated.
	Changed bool
}

// Err maps not-found and already-completed outcomes to their sentinel errors.
// It returns nil for every other outcome.
func (r Result) Err() error {
	switch r.Outcome {
	case UserNotFound:
		return ErrUserNotFound
	case TaskNotFound:
		return ErrTaskNotFound
	case AlreadyCompleted:
		return ErrAlreadyCompleted
	default:
		return nil
	}
}
