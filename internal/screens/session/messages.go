package session

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shapewise/internal/grader"
)

// submitResultMsg carries the grading outcome back into Update.
type submitResultMsg struct {
	raw    string
	result grader.Result
	err    error
}

// hintPollMsg drives polling for an in-flight tailored hint.
type hintPollMsg struct{}

// ProgressChangedMsg tells the app model that stage progress may have
// changed and the header count should be refreshed.
type ProgressChangedMsg struct{}

func pollHint() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return hintPollMsg{}
	})
}
