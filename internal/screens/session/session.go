// Package session renders the question-by-question flow of a stage run or
// the pre-assessment.
package session

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shapewise/internal/grader"
	"github.com/abhisek/shapewise/internal/hints"
	"github.com/abhisek/shapewise/internal/problemgen"
	"github.com/abhisek/shapewise/internal/router"
	"github.com/abhisek/shapewise/internal/screen"
	"github.com/abhisek/shapewise/internal/screens/results"
	"github.com/abhisek/shapewise/internal/ui/components"
	"github.com/abhisek/shapewise/internal/ui/layout"
	"github.com/abhisek/shapewise/internal/ui/theme"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseFeedback
)

// SessionScreen drives one run to completion, then replaces itself with
// the results screen.
type SessionScreen struct {
	runner   Runner
	hintProv hints.Provider
	tailored *hints.TailoredService

	phase    phase
	input    components.TextInput
	choice   components.MultiChoice
	feedback string
	good     bool
	notice   string

	hintText    string
	hintWaiting bool
	// wrongTries collects graded-wrong answers across the whole run so a
	// tailored hint can speak to the learner's actual mistakes.
	wrongTries []string

	err error
}

var _ screen.Screen = (*SessionScreen)(nil)

// New creates a session screen for the given runner.
func New(runner Runner, hintProv hints.Provider, tailored *hints.TailoredService) *SessionScreen {
	s := &SessionScreen{
		runner:   runner,
		hintProv: hintProv,
		tailored: tailored,
	}
	s.prepareQuestion()
	return s
}

// prepareQuestion resets per-question state for the question at the cursor.
func (s *SessionScreen) prepareQuestion() {
	s.phase = phaseAnswering
	s.feedback = ""
	s.notice = ""
	s.hintText = ""
	s.hintWaiting = false
	if s.runner.Done() {
		return
	}
	q := s.runner.Current()
	if q.Format == problemgen.FormatMultipleChoice {
		s.choice = components.NewMultiChoice(q.Prompt, q.Choices, correctIndex(q))
	} else {
		s.input = components.NewTextInput("e.g. 24 cm²", 32)
	}
}

func correctIndex(q problemgen.Question) int {
	for i, c := range q.Choices {
		if c == q.Correct {
			return i
		}
	}
	return -1
}

func (s *SessionScreen) Init() tea.Cmd {
	if !s.runner.Done() && s.runner.Current().Format == problemgen.FormatNumeric {
		return s.input.Init()
	}
	return nil
}

func (s *SessionScreen) submit(raw string) tea.Cmd {
	return func() tea.Msg {
		res, err := s.runner.Submit(context.Background(), raw)
		return submitResultMsg{raw: raw, result: res, err: err}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		return s.handleResult(msg)

	case hintPollMsg:
		if !s.hintWaiting {
			return s, nil
		}
		if hint, ok := s.tailored.Consume(); ok {
			s.hintText = hint.Text
			s.hintWaiting = false
			return s, nil
		}
		return s, pollHint()

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if s.phase == phaseFeedback {
				return s.advance()
			}
			if s.runner.Done() {
				return s, nil
			}
			q := s.runner.Current()
			if q.Format == problemgen.FormatMultipleChoice {
				var cmd tea.Cmd
				s.choice, cmd = s.choice.Update(msg)
				if s.choice.Submitted {
					return s, tea.Batch(cmd, s.submit(s.choice.Chosen()))
				}
				return s, cmd
			}
			raw := strings.TrimSpace(s.input.Value())
			if raw == "" {
				return s, nil
			}
			return s, s.submit(raw)

		case "ctrl+h":
			return s.requestHint()
		}
	}

	if s.phase == phaseAnswering && !s.runner.Done() {
		q := s.runner.Current()
		var cmd tea.Cmd
		if q.Format == problemgen.FormatMultipleChoice {
			s.choice, cmd = s.choice.Update(msg)
		} else {
			s.input, cmd = s.input.Update(msg)
		}
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleResult(msg submitResultMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		s.err = msg.err
		return s, nil
	}
	res := msg.result

	switch res.Reason {
	case grader.ReasonMissingUnit, grader.ReasonBadUnit, grader.ReasonNotANumber:
		// Input rejected: same question, fresh try.
		s.notice = res.Message
		s.input.Reset()
		return s, nil
	}

	s.phase = phaseFeedback
	s.good = res.Correct
	if res.Correct {
		s.feedback = fmt.Sprintf("Correct! +%d points", res.Points)
	} else {
		s.feedback = "Not quite."
		s.wrongTries = append(s.wrongTries, msg.raw)
	}
	return s, nil
}

func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	if !s.runner.Done() {
		s.prepareQuestion()
		return s, s.Init()
	}

	// Run complete: swap in the results screen.
	score := s.runner.Score()
	passed, hasBar := s.runner.Passed()
	rows := results.BuildRows(s.runner.Questions(), s.runner.Answers())
	rs := results.New(s.runner.Label(), rows, score, passed, hasBar)
	return s, tea.Batch(
		func() tea.Msg { return ProgressChangedMsg{} },
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: rs} },
	)
}

func (s *SessionScreen) requestHint() (screen.Screen, tea.Cmd) {
	if s.phase != phaseAnswering || s.runner.Done() {
		return s, nil
	}
	q := s.runner.Current()
	s.hintText = hints.ForQuestion(s.hintProv, q)

	// Tailor the hint when an LLM is configured and the learner has
	// already graded wrong on this run.
	if s.tailored.Available() && len(s.wrongTries) > 0 {
		s.hintWaiting = true
		s.tailored.Request(context.Background(), hints.TailoredInput{
			Question:     q,
			WrongAnswers: s.wrongTries,
		})
		return s, pollHint()
	}
	return s, nil
}

func (s *SessionScreen) View(width, height int) string {
	if s.err != nil {
		return theme.Incorrect.Render("Something went wrong: " + s.err.Error())
	}
	if s.runner.Done() && s.phase != phaseFeedback {
		return theme.Body.Render("Finishing up...")
	}

	var b strings.Builder

	// After the final answer the cursor sits past the last slot; clamp so
	// feedback on question N still reads "Question N of N".
	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", min(s.runner.Cursor()+1, s.runner.Total()), s.runner.Total()),
		float64(s.runner.Cursor())/float64(s.runner.Total()),
		false,
		min(width-8, 60),
	)
	b.WriteString(progress.View() + "\n\n")

	q := s.currentForView()
	if q.Format == problemgen.FormatMultipleChoice {
		b.WriteString(s.choice.View() + "\n")
	} else {
		b.WriteString(theme.Body.Bold(true).Render(q.Prompt) + "\n\n")
		b.WriteString(s.input.View() + "\n")
	}

	if s.notice != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.notice) + "\n")
	}

	if s.hintWaiting {
		b.WriteString("\n" + theme.Hint.Render("Thinking of a hint for you...") + "\n")
	} else if s.hintText != "" {
		b.WriteString("\n" + theme.Hint.Render("Hint: "+s.hintText) + "\n")
	}

	if s.phase == phaseFeedback {
		style := theme.Correct
		if !s.good {
			style = theme.Incorrect
		}
		b.WriteString("\n" + style.Render(s.feedback) + "\n")
		b.WriteString(theme.Hint.Render("Press Enter to continue") + "\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

// currentForView returns the question being shown. During feedback the
// cursor has already advanced, so show the one just answered.
func (s *SessionScreen) currentForView() problemgen.Question {
	qs := s.runner.Questions()
	i := s.runner.Cursor()
	if s.phase == phaseFeedback {
		i--
	}
	if i < 0 {
		i = 0
	}
	if i >= len(qs) {
		i = len(qs) - 1
	}
	return qs[i]
}

func (s *SessionScreen) Title() string {
	return s.runner.Label()
}

// KeyHints implements screen.KeyHintProvider.
func (s *SessionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+H", Description: "Hint"},
		{Key: "Esc", Description: "Pause"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
