// Package study is a static formula reference the learner can read
// between runs.
package study

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shapewise/internal/hints"
	"github.com/abhisek/shapewise/internal/screen"
	"github.com/abhisek/shapewise/internal/ui/layout"
	"github.com/abhisek/shapewise/internal/ui/theme"
)

// entries fixes the reading order; maps don't.
var entries = []struct {
	heading string
	name    string
}{
	{"Naming shapes", hints.HintIdentify},
	{"Rectangle", hints.HintRectangle},
	{"Square", hints.HintSquare},
	{"Triangle", hints.HintTriangle},
	{"Circle", hints.HintCircle},
	{"Ellipse", hints.HintEllipse},
	{"Parallelogram", hints.HintParallelogram},
	{"Rhombus", hints.HintRhombus},
	{"Trapezium", hints.HintTrapezium},
	{"Units", hints.HintUnits},
}

// StudyScreen renders the formula reference. Text comes through the hint
// provider so ontology overrides show up here too.
type StudyScreen struct {
	provider hints.Provider
}

var _ screen.Screen = (*StudyScreen)(nil)

// New creates the study guide.
func New(provider hints.Provider) *StudyScreen {
	return &StudyScreen{provider: provider}
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StudyScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Study guide") + "\n")
	b.WriteString(theme.Subtitle.Render("Every area formula used in the stages.") + "\n\n")

	for _, e := range entries {
		text := s.provider.HintText(e.name, hints.Default(e.name))
		b.WriteString(theme.Body.Bold(true).Render(e.heading) + "\n")
		b.WriteString("  " + theme.Body.Render(text) + "\n\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (s *StudyScreen) Title() string {
	return "Study guide"
}

// KeyHints implements screen.KeyHintProvider.
func (s *StudyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
