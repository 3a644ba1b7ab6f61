// File: model_test.go
// Title: Explorer Model Tests
// Description: Drives the explorer model with key messages and checks the
//              classification, history and view.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package explorer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	mdwargs "github.com/msto63/argv/foundation/args"
	"github.com/msto63/argv/foundation/args/profile"
	mdwerror "github.com/msto63/argv/foundation/core/error"
)

func newModel(t *testing.T, captures ...string) Model {
	t.Helper()
	p := profile.Default()
	p.Captures = captures
	m, err := New(Config{Profile: p})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func key(t *testing.T, m Model, k tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: k})
}

func TestTypingClassifies(t *testing.T) {
	m := newModel(t, "o")
	m = typeText(t, m, `build -vo "my file" -5`)

	want := []mdwargs.Argument{
		mdwargs.Parameter{Text: "build"},
		mdwargs.Flag{Char: 'v'},
		mdwargs.Flag{Char: 'o', Value: "my file", HasValue: true},
		mdwargs.Parameter{Text: "-5"},
	}
	if diff := cmp.Diff(want, m.Container().All()); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"build", "-vo", "my file", "-5"}, m.Tokens()); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleNegativeNumbers(t *testing.T) {
	m := newModel(t)
	m = typeText(t, m, "-5")
	if !mdwargs.Has[mdwargs.Parameter](m.Container(), "-5") {
		t.Fatalf("records = %v, want parameter -5", m.Container().All())
	}

	m, _ = key(t, m, tea.KeyCtrlN)
	if m.Rules().NegativeNumbers {
		t.Fatal("ctrl+n must disable negative numbers")
	}
	if !mdwargs.Has[mdwargs.Flag](m.Container(), "5") {
		t.Errorf("records = %v, want flag 5", m.Container().All())
	}
}

func TestUnterminatedQuote(t *testing.T) {
	m := newModel(t)
	m = typeText(t, m, "a")
	m = typeText(t, m, ` "b`)

	if m.Err() == nil {
		t.Fatal("unterminated quote must report an error")
	}
	if m.Container().Len() != 1 {
		t.Errorf("previous records must be kept, got %v", m.Container().All())
	}
	if !strings.Contains(m.View(), "Error:") {
		t.Error("view must show the split error")
	}

	m = typeText(t, m, `"`)
	if m.Err() != nil {
		t.Errorf("closed quote still reports %v", m.Err())
	}
}

func TestHistory(t *testing.T) {
	m := newModel(t)
	m = typeText(t, m, "first")
	m, _ = key(t, m, tea.KeyEnter)
	m, _ = key(t, m, tea.KeyCtrlL)
	m = typeText(t, m, "second")
	m, _ = key(t, m, tea.KeyEnter)
	m, _ = key(t, m, tea.KeyEnter)

	if diff := cmp.Diff([]string{"first", "second"}, m.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}

	m, _ = key(t, m, tea.KeyUp)
	m, _ = key(t, m, tea.KeyUp)
	if got := m.Container().Parameters(); !cmp.Equal(got, []string{"first"}) {
		t.Errorf("after two ups parameters = %v", got)
	}

	m, _ = key(t, m, tea.KeyDown)
	m, _ = key(t, m, tea.KeyDown)
	if m.Container().Len() != 0 {
		t.Errorf("moving past the newest entry must clear the line, got %v", m.Container().All())
	}
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := key(t, m, k)
		if cmd == nil {
			t.Fatalf("%v: want quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: command does not quit", k)
		}
	}
}

func TestView(t *testing.T) {
	p := profile.Default()
	p.Name = "build"
	p.Captures = []string{"output"}
	m, err := New(Config{Profile: p, Line: "--output bin/app main.go"})
	if err != nil {
		t.Fatal(err)
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	for _, want := range []string{"argv explorer", "profile build", "captures output", "bin/app", "tokens: --output=bin/app main.go"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestNewRejectsInvalidProfile(t *testing.T) {
	p := profile.Default()
	p.Delimiters = []string{"="}
	if _, err := New(Config{Profile: p}); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("New() error = %v, want invalid config", err)
	}
}
