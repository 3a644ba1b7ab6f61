// File: model.go
// Title: Classification Explorer
// Description: Bubbletea model that classifies a command line while it is
//              typed and shows the resulting records.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package explorer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/shlex"

	mdwargs "github.com/msto63/argv/foundation/args"
	"github.com/msto63/argv/foundation/args/profile"
	mdwlog "github.com/msto63/argv/foundation/core/log"
	mdwstringx "github.com/msto63/argv/foundation/utils/stringx"
	"github.com/msto63/argv/internal/tui"
)

// MaxHistory is the number of remembered command lines
const MaxHistory = 50

// Config holds explorer configuration
type Config struct {
	Profile *profile.Profile
	Logger  *mdwlog.Logger
	Line    string
}

// Model is the explorer state
type Model struct {
	width  int
	height int

	input      textinput.Model
	name       string
	captures   *mdwargs.CaptureList
	rules      mdwargs.PrefixRules
	classifier *mdwargs.Classifier
	logger     *mdwlog.Logger

	tokens    []string
	container *mdwargs.Container
	err       error

	history []string
	cursor  int
}

// New creates the explorer for a profile. A nil profile uses the defaults.
func New(cfg Config) (Model, error) {
	p := cfg.Profile
	if p == nil {
		p = profile.Default()
	}
	rules, err := p.Rules()
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Prompt = "argv> "
	ti.Placeholder = "build --output bin/app -vj4"
	ti.CharLimit = 1024
	ti.Focus()
	ti.SetValue(cfg.Line)

	m := Model{
		input:    ti,
		name:     p.Name,
		captures: rules.CaptureList(p.Captures...),
		rules:    rules,
		logger:   cfg.Logger,
	}
	m.rebuild()
	m.reclassify()
	return m, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(m.input.Prompt)-4, 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.remember(m.input.Value())
			return m, nil
		case "up":
			m.recall(-1)
			return m, nil
		case "down":
			m.recall(1)
			return m, nil
		case "ctrl+n":
			m.rules = m.rules.WithNegativeNumbers(!m.rules.NegativeNumbers)
			m.rebuild()
			m.reclassify()
			return m, nil
		case "ctrl+l":
			m.input.SetValue("")
			m.reclassify()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.reclassify()
	}
	return m, cmd
}

// View renders the explorer
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(tui.RenderTitle("argv explorer"))
	b.WriteString("\n")
	b.WriteString(tui.SubtitleStyle.Render(m.describe()))
	b.WriteString("\n\n")
	b.WriteString(tui.BoxStyle.Render(m.input.View()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(tui.RenderError(m.err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(tui.RecordTable(m.container))
		b.WriteString("\n")
		b.WriteString(tui.StatusBarStyle.Render(tui.Summary(m.container)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("tokens: " + m.rendered()))
		b.WriteString("\n")
	}

	b.WriteString(tui.RenderHelp("enter remember · ↑/↓ history · ctrl+n negative numbers · ctrl+l clear · esc quit"))
	return b.String()
}

// Container returns the records of the current line
func (m Model) Container() *mdwargs.Container {
	return m.container
}

// Tokens returns the tokens of the current line
func (m Model) Tokens() []string {
	return m.tokens
}

// Err returns the error of the last split, if any
func (m Model) Err() error {
	return m.err
}

// History returns the remembered command lines, oldest first
func (m Model) History() []string {
	return append([]string(nil), m.history...)
}

// Rules returns the prefix rules in use
func (m Model) Rules() mdwargs.PrefixRules {
	return m.rules
}

func (m *Model) rebuild() {
	m.classifier = mdwargs.NewClassifier(m.rules, m.captures).WithLogger(m.logger)
}

// reclassify splits the input shell-style. On a split error the previous
// records stay visible in the model but the view shows the error.
func (m *Model) reclassify() {
	tokens, err := shlex.Split(m.input.Value())
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.tokens = tokens
	m.container = m.classifier.Classify(tokens)
}

func (m *Model) remember(line string) {
	if mdwstringx.IsBlank(line) {
		return
	}
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
		if len(m.history) > MaxHistory {
			m.history = m.history[len(m.history)-MaxHistory:]
		}
	}
	m.cursor = len(m.history)
}

// recall moves through the history; moving past the newest entry clears
// the input
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.history))
	if m.cursor == len(m.history) {
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.history[m.cursor])
	}
	m.input.CursorEnd()
	m.reclassify()
}

func (m Model) describe() string {
	negatives := "off"
	if m.rules.NegativeNumbers {
		negatives = "on"
	}
	captures := "none"
	if m.captures.Len() > 0 {
		captures = strings.Join(m.captures.Names(), ", ")
	}
	return fmt.Sprintf("profile %s · delimiters %q · negative numbers %s · captures %s",
		m.name, string(m.rules.Delimiters), negatives, captures)
}

func (m Model) rendered() string {
	tokens := m.container.Tokens(m.rules)
	for i, t := range tokens {
		tokens[i] = mdwstringx.QuoteIfNeeded(t)
	}
	return strings.Join(tokens, " ")
}

// Run starts the explorer in the alternate screen
func Run(cfg Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
