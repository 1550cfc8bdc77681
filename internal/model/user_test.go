package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustTask(t testing.TB, title string) *Task {
	t.Helper()
	task, err := NewTask(title)
	require.NoError(t, err)
	return task
}

func TestUser_New(t *testing.T) {
	u := NewUser("Alice")
	require.Equal(t, "Alice", u.Name())
	require.Zero(t, u.Len())
	require.Empty(t, u.Tasks())
	require.Equal(t, "User: Alice (0 tasks)", u.String())
}

func TestUser_AddAndFind(t *testing.T) {
	u := NewUser("Charlie")
	t1 := mustTask(t, "Task 1")
	t2 := mustTask(t, "Task 2")
	u.AddTask(t1)
	u.AddTask(t2)

	found, ok := u.FindTask("Task 2")
	require.True(t, ok)
	require.Same(t, t2, found)
	require.Equal(t, "User: Charlie (2 tasks)", u.String())
}

func TestUser_FindMissing(t *testing.T) {
	u := NewUser("David")
	u.AddTask(mustTask(t, "Existing task"))

	found, ok := u.FindTask("Non-existent task")
	require.False(t, ok)
	require.Nil(t, found)

	_, ok = u.FindTask("existing task")
	require.False(t, ok, "lookup is case-sensitive")
}

func TestUser_DuplicateTitlesReturnFirst(t *testing.T) {
	u := NewUser("Bob")
	first := mustTask(t, "Deploy")
	second := mustTask(t, "Deploy")
	u.AddTask(first)
	u.AddTask(second)

	found, ok := u.FindTask("Deploy")
	require.True(t, ok)
	require.Same(t, first, found)
	require.Equal(t, 2, u.Len())
}

func TestUser_TasksReturnsCopy(t *testing.T) {
	u := NewUser("Eve")
	u.AddTask(mustTask(t, "a"))

	tasks := u.Tasks()
	tasks[0] = nil
	require.NotNil(t, u.Tasks()[0])
}

func TestUser_Stats(t *testing.T) {
	u := NewUser("Frank")
	a := mustTask(t, "a")
	a.Complete()
	u.AddTask(a)
	u.AddTask(mustTask(t, "b"))
	u.AddTask(mustTask(t, "c"))

	done, pending := u.Stats()
	require.Equal(t, 1, done)
	require.Equal(t, 2, pending)
}

func TestUser_OrderProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		u := NewUser("prop")
		for i := 0; i < n; i++ {
			task, err := NewTask(fmt.Sprintf("task-%d", i))
			require.NoError(rt, err)
			u.AddTask(task)
		}

		tasks := u.Tasks()
		require.Len(rt, tasks, n)
		for i, task := range tasks {
			require.Equal(rt, fmt.Sprintf("task-%d", i), task.Title())
		}
	})
}
