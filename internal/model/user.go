package model

import "fmt"

// User is a named owner of an ordered list of tasks.
// Titles are not unique; lookups return the first match.
type User struct {
	name  string
	tasks []*Task
}

func NewUser(name string) *User {
	return &User{name: name}
}

func (u *User) Name() string { return u.name }
func (u *User) Len() int     { return len(u.tasks) }

// Tasks returns the user's tasks in the order they were added.
func (u *User) Tasks() []*Task {
	out := make([]*Task, len(u.tasks))
	copy(out, u.tasks)
	return out
}

func (u *User) AddTask(t *Task) {
	u.tasks = append(u.tasks, t)
}

// FindTask returns the first task whose title matches exactly.
func (u *User) FindTask(title string) (*Task, bool) {
	for _, t := range u.tasks {
		if t.title == title {
			return t, true
		}
	}
	return nil, false
}

// Stats counts completed and pending tasks.
func (u *User) Stats() (done, pending int) {
	for _, t := range u.tasks {
		if t.completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (u *User) String() string {
	return fmt.Sprintf("User: %s (%d tasks)", u.name, len(u.tasks))
}
