package sqlitestore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tasks/internal/store"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestLoad_EmptyDatabase(t *testing.T) {
	s, _ := openTemp(t)
	snap, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, snap.Users)
}

func TestSaveLoad_PreservesOrder(t *testing.T) {
	s, path := openTemp(t)
	want := store.Snapshot{Users: []store.UserRecord{
		{Name: "Zed", Tasks: []store.TaskRecord{
			{Title: "b"},
			{Title: "a", Completed: true},
			{Title: "b"},
		}},
		{Name: "Alice", Tasks: []store.TaskRecord{}},
	}}
	require.NoError(t, s.Save(want))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	got, err := reopened.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSave_ReplacesPreviousSnapshot(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Save(store.Snapshot{Users: []store.UserRecord{
		{Name: "Old", Tasks: []store.TaskRecord{{Title: "gone"}}},
	}}))
	want := store.Snapshot{Users: []store.UserRecord{
		{Name: "New", Tasks: []store.TaskRecord{{Title: "kept"}}},
	}}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSave_DuplicateUserRollsBack(t *testing.T) {
	s, _ := openTemp(t)
	first := store.Snapshot{Users: []store.UserRecord{{Name: "A", Tasks: []store.TaskRecord{}}}}
	require.NoError(t, s.Save(first))

	err := s.Save(store.Snapshot{Users: []store.UserRecord{{Name: "B"}, {Name: "B"}}})
	require.Error(t, err)

	got, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, first, got)
}

// fakeRows yields names and then fails the iteration with err.
type fakeRows struct {
	names []string
	err   error
}

func (r *fakeRows) Next() bool { return len(r.names) > 0 }

func (r *fakeRows) Scan(dest ...any) error {
	*dest[0].(*string) = r.names[0]
	r.names = r.names[1:]
	return nil
}

func (r *fakeRows) Err() error { return r.err }

func TestScanUsers_IterationErrorIsReported(t *testing.T) {
	broken := errors.New("disk I/O error")
	_, _, err := scanUsers(&fakeRows{names: []string{"Alice"}, err: broken})
	require.ErrorIs(t, err, broken)
}

func TestScanUsers_IndexesInOrder(t *testing.T) {
	snap, index, err := scanUsers(&fakeRows{names: []string{"Zed", "Alice"}})
	require.NoError(t, err)
	require.Equal(t, map[string]int{"Zed": 0, "Alice": 1}, index)
	require.Equal(t, "Alice", snap.Users[1].Name)
	require.NotNil(t, snap.Users[0].Tasks)
}

func TestScanTasks_IterationErrorIsReported(t *testing.T) {
	broken := errors.New("interrupted")
	snap := store.Snapshot{}
	err := scanTasks(&fakeRows{err: broken}, &snap, map[string]int{})
	require.ErrorIs(t, err, broken)
}
