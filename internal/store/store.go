// Package store persists the user registry between invocations as a
// snapshot. Backends live in sub-packages; Memory keeps the snapshot in
// process only.
package store

import (
	"fmt"

	"github.com/idilsaglam/tasks/internal/model"
)

// Store loads and saves registry snapshots.
type Store interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
	Close() error
}

// Snapshot is the serialized form of a registry.
type Snapshot struct {
	Users []UserRecord `json:"users" yaml:"users"`
}

type UserRecord struct {
	Name  string       `json:"name" yaml:"name"`
	Tasks []TaskRecord `json:"tasks" yaml:"tasks"`
}

type TaskRecord struct {
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// FromRegistry captures the registry's users and tasks in order.
func FromRegistry(reg *model.Registry) Snapshot {
	users := make([]UserRecord, 0, reg.Len())
	for _, u := range reg.Users() {
		rec := UserRecord{Name: u.Name(), Tasks: make([]TaskRecord, 0, u.Len())}
		for _, t := range u.Tasks() {
			rec.Tasks = append(rec.Tasks, TaskRecord{Title: t.Title(), Completed: t.Completed()})
		}
		users = append(users, rec)
	}
	return Snapshot{Users: users}
}

// Registry rebuilds a registry, preserving user and task order.
func (s Snapshot) Registry() (*model.Registry, error) {
	reg := model.NewRegistry()
	for i, rec := range s.Users {
		if _, dup := reg.Lookup(rec.Name); dup {
			return nil, fmt.Errorf("user %d: duplicate name %q", i, rec.Name)
		}
		u := reg.GetOrCreate(rec.Name)
		for j, tr := range rec.Tasks {
			t, err := model.NewTask(tr.Title)
			if err != nil {
				return nil, fmt.Errorf("user %q task %d: %w", rec.Name, j, err)
			}
			if tr.Completed {
				t.Complete()
			}
			u.AddTask(t)
		}
	}
	return reg, nil
}

// Memory holds the last saved snapshot for the life of the process.
type Memory struct {
	snap Snapshot
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Load() (Snapshot, error) { return m.snap, nil }

func (m *Memory) Save(s Snapshot) error {
	m.snap = s
	return nil
}

func (m *Memory) Close() error { return nil }
