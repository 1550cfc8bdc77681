package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tasks/internal/model"
)

func boardUser(t *testing.T) *model.User {
	t.Helper()
	u := model.NewUser("Alice")
	for _, title := range []string{"Write unit tests", "Review code", strings.Repeat("x", 100)} {
		task, err := model.NewTask(title)
		require.NoError(t, err)
		u.AddTask(task)
	}
	u.Tasks()[1].Complete()
	return u
}

func TestProgressBar(t *testing.T) {
	require.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	require.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1), "width and total are clamped")
	require.Equal(t, "██████████ 100%", ProgressBar(3, 3, 10))
}

func TestBoard_Flat(t *testing.T) {
	DisableColor()
	SetTheme("classic")
	var buf bytes.Buffer
	require.NoError(t, Board(&buf, boardUser(t), false))

	out := buf.String()
	require.Contains(t, out, "Alice's tasks  ✔ 1  • 2  Total 3")
	require.Contains(t, out, " 1. ☐ Write unit tests")
	require.Contains(t, out, " 2. ☑ Review code")
	require.Contains(t, out, strings.Repeat("x", 57)+"...")
	require.NotContains(t, out, strings.Repeat("x", 61))
	require.Contains(t, out, "┌")
}

func TestBoard_Grouped(t *testing.T) {
	DisableColor()
	SetTheme("mono")
	defer SetTheme("classic")
	var buf bytes.Buffer
	require.NoError(t, Board(&buf, boardUser(t), true))

	out := buf.String()
	pending := strings.Index(out, "Pending")
	done := strings.Index(out, "Done")
	require.Greater(t, pending, -1)
	require.Greater(t, done, pending)
	require.Contains(t, out, "[x] Review code")
	require.Contains(t, out, "+")
}

func TestBoard_Empty(t *testing.T) {
	DisableColor()
	SetTheme("classic")
	var buf bytes.Buffer
	require.NoError(t, Board(&buf, model.NewUser("Bob"), true))
	require.Contains(t, buf.String(), "(none)")
}

func TestSetTheme_UnknownFallsBack(t *testing.T) {
	SetTheme("solarized")
	require.Equal(t, "classic", Current().Name)
}
