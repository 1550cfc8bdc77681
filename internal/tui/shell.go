package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-shellwords"
	"github.com/muesli/reflow/wordwrap"

	"github.com/idilsaglam/tasks/internal/log"
	"github.com/idilsaglam/tasks/internal/ui"
)

// Runner executes one command line, already split into words, and returns
// everything it printed.
type Runner func(args []string) string

var errBadLine = errors.New("cannot split command line")

const shellBanner = "tasks shell: run commands without the `tasks` prefix. Type `help` for commands, `exit` to leave."

type shellModel struct {
	run      Runner
	input    textinput.Model
	viewport viewport.Model
	output   []string
	width    int
	ready    bool
}

func newShellModel(run Runner) shellModel {
	ti := textinput.New()
	ti.Prompt = "tasks> "
	ti.Placeholder = `add-task Alice "Write unit tests"`
	ti.CharLimit = 500
	ti.Focus()

	m := shellModel{
		run:      run,
		input:    ti,
		viewport: viewport.New(80, 20),
		output:   []string{shellBanner},
		width:    80,
	}
	m.syncViewport()
	return m
}

func (m shellModel) Init() tea.Cmd { return textinput.Blink }

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 1)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		m.ready = true
		m.syncViewport()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "exit" || line == "quit" {
				return m, tea.Quit
			}
			m.exec(line)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *shellModel) exec(line string) {
	m.output = append(m.output, m.input.Prompt+line)
	if line == "clear" {
		m.output = nil
		m.syncViewport()
		return
	}
	args, err := splitArgs(line)
	if err != nil {
		m.output = append(m.output, ui.Current().Error.Render("✖ "+err.Error()))
		m.syncViewport()
		return
	}
	log.Debug(log.CatUI, "Shell command", "args", strings.Join(args, " "))
	if out := strings.TrimRight(m.run(args), "\n"); out != "" {
		m.output = append(m.output, out)
	}
	m.syncViewport()
}

func (m *shellModel) syncViewport() {
	m.viewport.SetContent(wordwrap.String(strings.Join(m.output, "\n"), max(m.width, 1)))
	m.viewport.GotoBottom()
}

func (m shellModel) View() string {
	return m.viewport.View() + "\n" + m.input.View()
}

// RunShell starts the interactive shell. All commands share one registry
// for the lifetime of the shell.
func RunShell(run Runner) error {
	_, err := tea.NewProgram(newShellModel(run), tea.WithAltScreen()).Run()
	return err
}

// splitArgs splits a command line into words with POSIX shell quoting.
// Pipes, redirections and command separators are rejected rather than
// silently truncating the line.
func splitArgs(line string) ([]string, error) {
	line = preserveQuotedBackslashes(line)
	p := shellwords.NewParser()
	args, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadLine, err)
	}
	if p.Position != -1 {
		return nil, fmt.Errorf("%w: unsupported operator %q", errBadLine, string([]rune(line)[p.Position]))
	}
	return args, nil
}

// preserveQuotedBackslashes doubles a backslash inside double quotes unless
// it escapes one of " \ $ or `. shellwords drops every backslash, while a
// POSIX shell keeps the others literally ("C:\tmp" stays C:\tmp).
func preserveQuotedBackslashes(line string) string {
	var b strings.Builder
	var single, double, escaped bool
	runes := []rune(line)
	for i, r := range runes {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && !single:
			if double && (i+1 == len(runes) || !strings.ContainsRune("\"\\$`", runes[i+1])) {
				b.WriteRune('\\')
			} else {
				escaped = true
			}
		case r == '\'' && !double:
			single = !single
		case r == '"' && !single:
			double = !double
		}
		b.WriteRune(r)
	}
	return b.String()
}
