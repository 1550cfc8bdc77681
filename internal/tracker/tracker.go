// Package tracker dispatches commands against a user registry.
//
// The Tracker is the only component that touches the registry. It performs
// the state change and reports a Result; rendering that result is left to
// the caller.
package tracker

import (
	"fmt"

	"github.com/idilsaglam/tasks/internal/log"
	"github.com/idilsaglam/tasks/internal/model"
)

type Tracker struct {
	reg *model.Registry
}

// New returns a Tracker over reg. A nil registry starts empty.
func New(reg *model.Registry) *Tracker {
	if reg == nil {
		reg = model.NewRegistry()
	}
	return &Tracker{reg: reg}
}

// Registry exposes the underlying registry for persistence.
func (t *Tracker) Registry() *model.Registry { return t.reg }

// Execute runs cmd. Not-found conditions are reported through the Result,
// not as errors; an error means the command itself was invalid.
func (t *Tracker) Execute(cmd Command) (Result, error) {
	var (
		res Result
		err error
	)
	switch c := cmd.(type) {
	case AddTask:
		res, err = t.addTask(c)
	case CompleteTask:
		res = t.completeTask(c)
	case ListTasks:
		res = t.listTasks(c)
	case ListUsers:
		res = Result{Outcome: UsersListed, Users: t.reg.Users()}
	default:
		err = fmt.Errorf("unknown command %T", cmd)
	}
	if err != nil {
		log.ErrorErr(log.CatCommand, "Command rejected", err)
		return Result{}, err
	}
	log.Debug(log.CatCommand, "Command executed",
		"command", cmd.Name(), "outcome", res.Outcome, "changed", res.Changed)
	return res, nil
}

func (t *Tracker) addTask(c AddTask) (Result, error) {
	task, err := model.NewTask(c.Title)
	if err != nil {
		return Result{}, fmt.Errorf("add-task: %w", err)
	}
	t.reg.GetOrCreate(c.User).AddTask(task)
	return Result{Outcome: TaskAdded, User: c.User, Title: c.Title, Changed: true}, nil
}

func (t *Tracker) completeTask(c CompleteTask) Result {
	res := Result{User: c.User, Title: c.Title}
	u, ok := t.reg.Lookup(c.User)
	if !ok {
		res.Outcome = UserNotFound
		return res
	}
	task, ok := u.FindTask(c.Title)
	if !ok {
		res.Outcome = TaskNotFound
		return res
	}
	if task.Completed() {
		res.Outcome = AlreadyCompleted
		return res
	}
	task.Complete()
	res.Outcome = TaskCompleted
	res.Changed = true
	return res
}

func (t *Tracker) listTasks(c ListTasks) Result {
	u, ok := t.reg.Lookup(c.User)
	if !ok {
		return Result{Outcome: UserNotFound, User: c.User}
	}
	return Result{Outcome: TasksListed, User: c.User, Owner: u}
}
