// Package stagegrid lists the ten stages with their lock and pass state
// and launches stage runs.
package stagegrid

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shapewise/internal/hints"
	"github.com/abhisek/shapewise/internal/problemgen"
	"github.com/abhisek/shapewise/internal/router"
	"github.com/abhisek/shapewise/internal/screen"
	sessionscreen "github.com/abhisek/shapewise/internal/screens/session"
	"github.com/abhisek/shapewise/internal/stages"
	"github.com/abhisek/shapewise/internal/ui/layout"
	"github.com/abhisek/shapewise/internal/ui/theme"
)

var difficulties = []problemgen.Difficulty{
	problemgen.Beginner,
	problemgen.Intermediate,
	problemgen.Advanced,
}

type statesMsg struct {
	states []stages.StageState
	err    error
}

type startedMsg struct {
	run *stages.Run
	err error
}

// StageGridScreen is the progression overview.
type StageGridScreen struct {
	svc       *stages.Service
	learnerID int
	hintProv  hints.Provider
	tailored  *hints.TailoredService

	states []stages.StageState
	cursor int

	// picking is set while the difficulty picker for the selected stage
	// is open.
	picking bool
	pick    int

	err error
}

var _ screen.Screen = (*StageGridScreen)(nil)

// New creates the stage grid for a learner.
func New(svc *stages.Service, learnerID int, hintProv hints.Provider, tailored *hints.TailoredService) *StageGridScreen {
	return &StageGridScreen{
		svc:       svc,
		learnerID: learnerID,
		hintProv:  hintProv,
		tailored:  tailored,
	}
}

func (g *StageGridScreen) Init() tea.Cmd {
	return func() tea.Msg {
		states, err := g.svc.Overview(context.Background(), g.learnerID)
		return statesMsg{states: states, err: err}
	}
}

func (g *StageGridScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statesMsg:
		g.states, g.err = msg.states, msg.err
		g.picking = false
		return g, nil

	case startedMsg:
		if msg.err != nil {
			g.err = msg.err
			return g, nil
		}
		g.picking = false
		s := sessionscreen.New(
			&sessionscreen.StageRunner{Svc: g.svc, Run: msg.run},
			g.hintProv, g.tailored,
		)
		return g, func() tea.Msg { return router.PushScreenMsg{Screen: s} }

	case tea.KeyMsg:
		if g.picking {
			return g.updatePicker(msg)
		}
		switch msg.String() {
		case "up", "k":
			if g.cursor > 0 {
				g.cursor--
			}
		case "down", "j":
			if g.cursor < len(g.states)-1 {
				g.cursor++
			}
		case "enter":
			return g.openSelected()
		}
	}
	return g, nil
}

func (g *StageGridScreen) openSelected() (screen.Screen, tea.Cmd) {
	if g.cursor >= len(g.states) {
		return g, nil
	}
	st := g.states[g.cursor]
	if !st.Status.Playable() {
		return g, nil
	}
	if st.Status == stages.StatusInProgress {
		// Questions and difficulty are pinned to the attempt; resume as-is.
		return g, g.start(st.Def.Number, st.Attempt.Difficulty)
	}
	g.picking = true
	g.pick = indexOf(st.Def.DefaultDifficulty)
	return g, nil
}

func (g *StageGridScreen) updatePicker(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "up", "k":
		if g.pick > 0 {
			g.pick--
		}
	case "right", "l", "down", "j":
		if g.pick < len(difficulties)-1 {
			g.pick++
		}
	case "esc":
		g.picking = false
	case "enter":
		st := g.states[g.cursor]
		return g, g.start(st.Def.Number, difficulties[g.pick])
	}
	return g, nil
}

func (g *StageGridScreen) start(stage int, d problemgen.Difficulty) tea.Cmd {
	return func() tea.Msg {
		run, err := g.svc.Start(context.Background(), g.learnerID, stage, d)
		return startedMsg{run: run, err: err}
	}
}

func indexOf(d problemgen.Difficulty) int {
	for i, v := range difficulties {
		if v == d {
			return i
		}
	}
	return 0
}

func (g *StageGridScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Stages") + "\n")
	b.WriteString(theme.Subtitle.Render("Pass a stage with 60 or more to unlock the next. One attempt each.") + "\n\n")

	if g.err != nil {
		b.WriteString(theme.Incorrect.Render("Error: "+g.err.Error()) + "\n")
	}

	for i, st := range g.states {
		line := fmt.Sprintf("%s  %2d. %-16s %s", statusMark(st), st.Def.Number, st.Def.Title, statusNote(st))
		switch {
		case st.Status == stages.StatusLocked:
			line = theme.LockedStyle.Render("   " + line)
		case i == g.cursor:
			line = theme.Selected.Render(" ▸ " + line)
		default:
			line = "   " + line
		}
		b.WriteString(line + "\n")
	}

	if g.picking && g.cursor < len(g.states) {
		st := g.states[g.cursor]
		b.WriteString("\n" + theme.Body.Render(st.Def.Blurb) + "\n")
		b.WriteString(theme.Body.Render("Difficulty: ") + pickerView(g.pick) + "\n")
		b.WriteString(theme.Hint.Render("←→ choose   Enter start   Esc cancel") + "\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func pickerView(pick int) string {
	parts := make([]string, len(difficulties))
	for i, d := range difficulties {
		if i == pick {
			parts[i] = theme.Selected.Render("[" + string(d) + "]")
		} else {
			parts[i] = theme.Hint.Render(" " + string(d) + " ")
		}
	}
	return strings.Join(parts, " ")
}

func statusMark(st stages.StageState) string {
	switch st.Status {
	case stages.StatusPassed:
		return theme.Correct.Render("✓")
	case stages.StatusFailed:
		return theme.Incorrect.Render("✗")
	case stages.StatusInProgress:
		return theme.Hint.Render("…")
	case stages.StatusLocked:
		return "🔒"
	default:
		return "·"
	}
}

func statusNote(st stages.StageState) string {
	switch st.Status {
	case stages.StatusPassed, stages.StatusFailed:
		return fmt.Sprintf("scored %d/100", st.Attempt.Score)
	case stages.StatusInProgress:
		return fmt.Sprintf("in progress, question %d of %d", len(st.Attempt.Answers)+1, len(st.Attempt.Questions))
	case stages.StatusLocked:
		return "locked"
	default:
		return string(st.Def.DefaultDifficulty)
	}
}

func (g *StageGridScreen) Title() string {
	return "Stages"
}

// KeyHints implements screen.KeyHintProvider.
func (g *StageGridScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
