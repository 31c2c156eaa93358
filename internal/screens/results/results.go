// Package results shows the per-question breakdown after a finished run.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shapewise/internal/assessment"
	"github.com/abhisek/shapewise/internal/grader"
	"github.com/abhisek/shapewise/internal/problemgen"
	"github.com/abhisek/shapewise/internal/router"
	"github.com/abhisek/shapewise/internal/screen"
	"github.com/abhisek/shapewise/internal/stages"
	"github.com/abhisek/shapewise/internal/ui/layout"
	"github.com/abhisek/shapewise/internal/ui/theme"
)

// Row is one line of the breakdown table.
type Row struct {
	Prompt   string
	Given    string
	Expected string
	Correct  bool
}

// BuildRows regrades the recorded answers into display rows.
func BuildRows(qs []problemgen.Question, answers map[int]string) []Row {
	rows := make([]Row, len(qs))
	for i, q := range qs {
		raw := answers[i+1]
		res := grader.Grade(q, raw)
		expected := q.Correct
		if q.Format == problemgen.FormatNumeric {
			expected = fmt.Sprintf("%g cm²", q.Answer)
		}
		rows[i] = Row{
			Prompt:   q.Prompt,
			Given:    raw,
			Expected: expected,
			Correct:  res.Correct,
		}
	}
	return rows
}

// ResultsScreen shows a finished run.
type ResultsScreen struct {
	label   string
	rows    []Row
	score   int
	passed  bool
	hasBar  bool
	scrollY int
}

var _ screen.Screen = (*ResultsScreen)(nil)

// New creates a results screen. hasBar is false for the pre-assessment,
// which has no pass bar.
func New(label string, rows []Row, score int, passed, hasBar bool) *ResultsScreen {
	return &ResultsScreen{
		label:  label,
		rows:   rows,
		score:  score,
		passed: passed,
		hasBar: hasBar,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if r.scrollY > 0 {
			r.scrollY--
		}
	case "down", "j":
		if r.scrollY < len(r.rows)-1 {
			r.scrollY++
		}
	case "enter":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	var headline string
	switch {
	case !r.hasBar:
		placement := assessment.Placement(r.score)
		headline = fmt.Sprintf("You scored %d/100. Suggested starting level: %s.", r.score, placement)
		b.WriteString(theme.Title.Render("Pre-assessment complete") + "\n\n")
	case r.passed:
		headline = fmt.Sprintf("You scored %d/100 — stage passed! The next stage is unlocked.", r.score)
		b.WriteString(theme.Correct.Render("★ "+r.label+" passed") + "\n\n")
	default:
		headline = fmt.Sprintf("You scored %d/100. A stage needs %d to pass.", r.score, stages.PassScore)
		b.WriteString(theme.Incorrect.Render(r.label+" not passed") + "\n\n")
	}
	b.WriteString(theme.Body.Render(headline) + "\n\n")

	for i := r.scrollY; i < len(r.rows); i++ {
		row := r.rows[i]
		mark := theme.Correct.Render("✓")
		if !row.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		b.WriteString(fmt.Sprintf(" %s  %2d. %s\n", mark, i+1, row.Prompt))
		detail := fmt.Sprintf("        you answered %q", row.Given)
		if !row.Correct {
			detail += fmt.Sprintf(", correct was %s", row.Expected)
		}
		b.WriteString(theme.Hint.Render(detail) + "\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (r *ResultsScreen) Title() string {
	return r.label + " results"
}

// KeyHints implements screen.KeyHintProvider.
func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Back to stages"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
