// Package welcome asks for the learner's name on first launch.
package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shapewise/internal/screen"
	"github.com/abhisek/shapewise/internal/ui/components"
	"github.com/abhisek/shapewise/internal/ui/theme"
)

// DoneMsg carries the chosen username up to the app model, which swaps
// this screen for the home screen.
type DoneMsg struct {
	Username string
}

// WelcomeScreen prompts for a username.
type WelcomeScreen struct {
	input components.TextInput
	err   string
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the welcome screen.
func New() *WelcomeScreen {
	return &WelcomeScreen{
		input: components.NewTextInput("your name", 32),
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := strings.TrimSpace(w.input.Value())
		if name == "" {
			w.err = "Please type a name to continue."
			return w, nil
		}
		return w, func() tea.Msg { return DoneMsg{Username: name} }
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	title := theme.Title.Render("Welcome to Shapewise")
	sub := theme.Subtitle.Render("Ten stages of areas, from naming shapes to mixed review.")

	var b strings.Builder
	b.WriteString(title + "\n\n")
	b.WriteString(sub + "\n\n\n")
	b.WriteString(theme.Body.Render("What should we call you?") + "\n\n")
	b.WriteString(w.input.View() + "\n")
	if w.err != "" {
		b.WriteString("\n" + theme.Incorrect.Render(w.err) + "\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}
