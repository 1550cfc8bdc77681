// Package tui holds the interactive Bubble Tea front ends: a task browser
// for one user and a command shell that keeps one registry alive across
// many commands.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tasks/internal/log"
	"github.com/idilsaglam/tasks/internal/tracker"
	"github.com/idilsaglam/tasks/internal/ui"
)

// Executor runs a tracker command and persists any change it makes.
type Executor interface {
	Execute(cmd tracker.Command) (tracker.Result, error)
}

// listItem adapts a task to bubbles/list.Item
type listItem struct {
	Text string
	Done bool
	Pos  int
}

func (i listItem) TitleText() string {
	t := ui.Current()
	box := t.BoxUnchecked
	if i.Done {
		box = t.BoxChecked
	}
	return fmt.Sprintf("%s %s", box, i.Text)
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.TitleText() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	t := ui.Current()
	it, _ := item.(listItem)
	box, text := t.Muted.Render(t.BoxUnchecked), it.Text
	if it.Done {
		box = t.Success.Render(t.BoxChecked)
		text = t.DoneText.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

type browseModel struct {
	list   list.Model
	exec   Executor
	user   string
	width  int
	height int

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	status string
	err    error
}

var (
	addKey      = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	completeKey = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "complete"))
)

func newBrowseModel(exec Executor, user string) (browseModel, error) {
	t := ui.Current()
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addKey, completeKey} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addKey, completeKey} }

	m := browseModel{list: l, exec: exec, user: user, width: 80, height: 24}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New task title..."
	m.ti.CharLimit = 200

	if err := m.refresh(); err != nil {
		return browseModel{}, err
	}
	return m, nil
}

// refresh reloads the list from the registry so it always mirrors the
// stored order and state.
func (m *browseModel) refresh() error {
	res, err := m.exec.Execute(tracker.ListTasks{User: m.user})
	if err != nil {
		return err
	}
	var items []list.Item
	done, pending := 0, 0
	if res.Outcome == tracker.TasksListed {
		for i, task := range res.Owner.Tasks() {
			items = append(items, listItem{Text: task.Title(), Done: task.Completed(), Pos: i})
		}
		done, pending = res.Owner.Stats()
	}
	t := ui.Current()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render(m.user+"'s tasks"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), len(items),
	)
	m.list.SetItems(items)
	return nil
}

// run executes cmd, shows its rendered result as the status line and
// reloads the list.
func (m *browseModel) run(cmd tracker.Command) {
	res, err := m.exec.Execute(cmd)
	if err != nil {
		log.ErrorErr(log.CatUI, "Browse command failed", err, "command", cmd.Name())
		m.err = err
		m.status = err.Error()
		return
	}
	out, err := ui.RenderString(res)
	if err != nil {
		m.err = err
		return
	}
	m.status = strings.TrimSpace(out)
	if err := m.refresh(); err != nil {
		m.err = err
	}
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		return m, nil
	}

	if m.adding {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				title := strings.TrimSpace(m.ti.Value())
				if title == "" {
					m.addErr = "Title cannot be empty"
					return m, nil
				}
				m.run(tracker.AddTask{User: m.user, Title: title})
				m.list.Select(len(m.list.Items()) - 1)
				m.stopAdding()
				return m, nil
			case "esc":
				m.stopAdding()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	if x, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch x.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			if li, ok := m.list.SelectedItem().(listItem); ok {
				m.run(tracker.CompleteTask{User: m.user, Title: li.Text})
				if m.err == nil && m.shadowed(li) {
					m.status += " (applied to the first task with this title)"
				}
			}
			return m, nil
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Focus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// shadowed reports whether an earlier task shares li's title. Completion
// matches by title, so such a selection acts on the earlier task.
func (m *browseModel) shadowed(li listItem) bool {
	for _, it := range m.list.Items() {
		if other, ok := it.(listItem); ok && other.Pos < li.Pos && other.Text == li.Text {
			return true
		}
	}
	return false
}

func (m *browseModel) stopAdding() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m browseModel) View() string {
	t := ui.Current()
	listHeight := m.height - 5
	if m.adding {
		listHeight -= 4
	}
	m.list.SetSize(m.width-4, max(listHeight, 1))

	content := m.list.View()
	if m.adding {
		title := "Add new task"
		if m.addErr != "" {
			title += ": " + t.Error.Render(m.addErr)
		}
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	if m.status != "" {
		content += "\n" + t.Muted.Render(m.status)
	}
	return ui.Panel([]string{content})
}

// RunBrowse starts the interactive task list for user. Every change goes
// through exec, so it is persisted as it happens.
func RunBrowse(exec Executor, user string) error {
	m, err := newBrowseModel(exec, user)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(browseModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
