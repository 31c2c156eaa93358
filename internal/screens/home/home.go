// Package home is the learner's dashboard after signing in.
package home

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shapewise/internal/assessment"
	"github.com/abhisek/shapewise/internal/hints"
	"github.com/abhisek/shapewise/internal/router"
	"github.com/abhisek/shapewise/internal/screen"
	"github.com/abhisek/shapewise/internal/screens/results"
	sessionscreen "github.com/abhisek/shapewise/internal/screens/session"
	"github.com/abhisek/shapewise/internal/screens/stagegrid"
	"github.com/abhisek/shapewise/internal/screens/study"
	"github.com/abhisek/shapewise/internal/stages"
	"github.com/abhisek/shapewise/internal/store"
	"github.com/abhisek/shapewise/internal/ui/components"
	"github.com/abhisek/shapewise/internal/ui/theme"
)

// summaryMsg carries the refreshed progress numbers into the dashboard.
type summaryMsg struct {
	passedStages int
	inProgress   int
	assessment   *store.Assessment
	err          error
}

type assessmentStartedMsg struct {
	run *assessment.Run
	err error
}

// HomeScreen is the dashboard: stage progress, pre-assessment state and
// the main menu.
type HomeScreen struct {
	learner   *store.Learner
	stageSvc  *stages.Service
	assessSvc *assessment.Service
	hintProv  hints.Provider
	tailored  *hints.TailoredService

	menu         components.Menu
	passedStages int
	inProgress   int
	assessment   *store.Assessment
	err          error
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the dashboard for a learner.
func New(learner *store.Learner, stageSvc *stages.Service, assessSvc *assessment.Service, hintProv hints.Provider, tailored *hints.TailoredService) *HomeScreen {
	h := &HomeScreen{
		learner:   learner,
		stageSvc:  stageSvc,
		assessSvc: assessSvc,
		hintProv:  hintProv,
		tailored:  tailored,
	}

	items := []components.MenuItem{
		{Label: "STAGES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: stagegrid.New(stageSvc, learner.ID, hintProv, tailored),
				}
			}
		}},
		{Label: "PRE-ASSESSMENT", Action: h.openAssessment},
		{Label: "STUDY GUIDE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: study.New(hintProv)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

// openAssessment starts or resumes the placement run; when it was already
// taken, its breakdown is shown instead.
func (h *HomeScreen) openAssessment() tea.Cmd {
	return func() tea.Msg {
		run, err := h.assessSvc.Start(context.Background(), h.learner.ID)
		return assessmentStartedMsg{run: run, err: err}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		msg := summaryMsg{}

		states, err := h.stageSvc.Overview(ctx, h.learner.ID)
		if err != nil {
			msg.err = err
			return msg
		}
		for _, st := range states {
			switch st.Status {
			case stages.StatusPassed:
				msg.passedStages++
			case stages.StatusInProgress:
				msg.inProgress++
			}
		}

		a, err := h.assessSvc.Result(ctx, h.learner.ID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			msg.err = err
			return msg
		}
		msg.assessment = a
		return msg
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryMsg:
		h.passedStages = msg.passedStages
		h.inProgress = msg.inProgress
		h.assessment = msg.assessment
		h.err = msg.err
		return h, func() tea.Msg {
			return sessionscreen.ProgressChangedMsg{}
		}

	case assessmentStartedMsg:
		if errors.Is(msg.err, assessment.ErrAlreadyTaken) {
			a := h.assessment
			if a == nil {
				return h, nil
			}
			rows := results.BuildRows(a.Questions, a.Answers)
			rs := results.New("Pre-assessment", rows, a.Score, false, false)
			return h, func() tea.Msg { return router.PushScreenMsg{Screen: rs} }
		}
		if msg.err != nil {
			h.err = msg.err
			return h, nil
		}
		s := sessionscreen.New(
			&sessionscreen.AssessmentRunner{Svc: h.assessSvc, Run: msg.run},
			h.hintProv, h.tailored,
		)
		return h, func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Shapewise") + "\n")
	b.WriteString(theme.Subtitle.Render("Hello, "+h.learner.Username+"! Let's work on areas.") + "\n\n")

	if h.err != nil {
		b.WriteString(theme.Incorrect.Render("Error: "+h.err.Error()) + "\n\n")
	}

	progress := components.NewProgressBar(
		fmt.Sprintf("Stages passed: %d of %d", h.passedStages, stages.Count),
		float64(h.passedStages)/float64(stages.Count),
		true,
		min(width-12, 48),
	)
	b.WriteString(progress.View() + "\n")
	if h.inProgress > 0 {
		b.WriteString(theme.Hint.Render("You have a stage in progress — pick it up under Stages.") + "\n")
	}
	b.WriteString("\n" + h.assessmentLine() + "\n\n")

	b.WriteString(h.menu.View())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (h *HomeScreen) assessmentLine() string {
	a := h.assessment
	switch {
	case a == nil:
		return theme.Hint.Render("Pre-assessment: not taken yet. Take it once to find your level.")
	case !a.Finished():
		return theme.Hint.Render("Pre-assessment: in progress.")
	default:
		return theme.Body.Render(fmt.Sprintf(
			"Pre-assessment: %d/100, suggested level %s.",
			a.Score, assessment.Placement(a.Score),
		))
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}
