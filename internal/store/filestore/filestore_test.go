package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tasks/internal/store"
)

var sample = store.Snapshot{Users: []store.UserRecord{
	{Name: "Alice", Tasks: []store.TaskRecord{
		{Title: "Write unit tests"},
		{Title: "Review code", Completed: true},
	}},
	{Name: "Bob", Tasks: []store.TaskRecord{}},
}}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	_, err := New("x", Format("toml"))
	require.Error(t, err)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "tasks.json"), JSON)
	require.NoError(t, err)
	snap, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, snap.Users)
}

func TestSaveLoad(t *testing.T) {
	for _, tc := range []struct {
		format Format
		file   string
		marker string
	}{
		{JSON, "tasks.json", `"completed": true`},
		{YAML, "tasks.yaml", "completed: true"},
	} {
		t.Run(string(tc.format), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", tc.file)
			s, err := New(path, tc.format)
			require.NoError(t, err)
			require.NoError(t, s.Save(sample))

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Contains(t, string(raw), tc.marker)

			got, err := s.Load()
			require.NoError(t, err)
			require.Equal(t, sample, got)
			require.NoError(t, s.Close())
		})
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := New(filepath.Join(dir, "tasks.json"), JSON)
	require.NoError(t, err)
	require.NoError(t, s.Save(sample))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "tasks.json", entries[0].Name())
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s, err := New(path, JSON)
	require.NoError(t, err)
	_, err = s.Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "json unmarshal")
}
