package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/tasks/internal/model"
)

const maxTitleWidth = 60

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws a framed box using the current theme.
func Panel(lines []string) string {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Board writes a framed summary of the user's tasks: counts, progress and
// the task list, optionally grouped into pending and done.
func Board(w io.Writer, u *model.User, group bool) error {
	t := Current()
	tasks := u.Tasks()
	d, p := u.Stats()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render(u.Name()+"'s tasks"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(tasks),
	)

	lines := []string{header, t.Muted.Render(ProgressBar(d, d+p, 28)), ""}
	if group {
		lines = append(lines, groupLines(tasks)...)
	} else {
		lines = append(lines, flatLines(tasks)...)
	}
	lines = append(lines, "", t.Muted.Render(fmt.Sprintf("Tip: complete with `tasks complete-task %s \"<title>\"`", u.Name())))

	_, err := fmt.Fprintln(w, Panel(lines))
	return err
}

func flatLines(tasks []*model.Task) []string {
	t := Current()
	if len(tasks) == 0 {
		return []string{t.Muted.Render("no tasks")}
	}
	out := make([]string, 0, len(tasks))
	for i, task := range tasks {
		idx := fmt.Sprintf("%2d.", i+1)
		box, style := t.BoxUnchecked, t.Muted
		if task.Completed() {
			box, style = t.BoxChecked, t.Success
		}
		title := runewidth.Truncate(task.Title(), maxTitleWidth, "...")
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), style.Render(box), title))
	}
	return out
}

func groupLines(tasks []*model.Task) []string {
	t := Current()
	var pend, done []*model.Task
	for _, task := range tasks {
		if task.Completed() {
			done = append(done, task)
		} else {
			pend = append(pend, task)
		}
	}
	section := func(name string, items []*model.Task) []string {
		lines := []string{t.Accent.Render(name)}
		if len(items) == 0 {
			return append(lines, t.Muted.Render("(none)"))
		}
		return append(lines, flatLines(items)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
