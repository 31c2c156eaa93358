package hints

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/shapewise/internal/grader"
	"github.com/abhisek/shapewise/internal/llm"
	"github.com/abhisek/shapewise/internal/problemgen"
)

// TailoredHint is an LLM-written hint for one specific question and the
// learner's specific mistake, as opposed to the static formula hints.
type TailoredHint struct {
	Text string
}

// TailoredInput describes what the learner is stuck on.
type TailoredInput struct {
	Question problemgen.Question
	// WrongAnswers are the learner's graded-wrong submissions so far,
	// most recent last.
	WrongAnswers []string
}

// HintSchema is the JSON Schema for tailored hint responses.
var HintSchema = &llm.Schema{
	Name:        "tailored-hint",
	Description: "A short hint helping a learner find the area themselves",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"minLength":   1,
				"maxLength":   300,
				"description": "One or two sentences. Must not state the numeric answer.",
			},
		},
		"required":             []any{"hint"},
		"additionalProperties": false,
	},
}

const hintSystemPrompt = `You are a patient geometry tutor for school students
learning to compute areas. Given a question and the student's wrong answers,
write one short hint that points at the mistake or the right formula. Never
reveal the numeric answer. Keep it to two sentences at most.`

// TailoredConfig tunes tailored hint generation.
type TailoredConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultTailoredConfig returns the defaults used by the TUI.
func DefaultTailoredConfig() TailoredConfig {
	return TailoredConfig{MaxTokens: 256, Temperature: 0.3}
}

// TailoredService generates tailored hints asynchronously so the TUI never
// blocks on the network. Only one hint is in-flight at a time; new
// requests replace pending ones.
type TailoredService struct {
	provider llm.Provider
	cfg      TailoredConfig

	mu      sync.Mutex
	pending *TailoredHint
	err     error
	ready   bool
}

// NewTailoredService creates a tailored hint service. provider may be nil
// when no LLM is configured; Request then completes immediately with no
// hint and callers fall back to the static texts.
func NewTailoredService(provider llm.Provider, cfg TailoredConfig) *TailoredService {
	return &TailoredService{provider: provider, cfg: cfg}
}

// Available reports whether an LLM provider is configured.
func (s *TailoredService) Available() bool {
	return s != nil && s.provider != nil
}

// Request starts async hint generation.
func (s *TailoredService) Request(ctx context.Context, input TailoredInput) {
	if !s.Available() {
		return
	}
	go func() {
		hint, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = hint
		s.err = err
		s.ready = true
	}()
}

// Consume returns the pending hint if one is ready.
// Returns (nil, false) if no hint is ready yet.
// After consumption, the pending slot is cleared.
func (s *TailoredService) Consume() (*TailoredHint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	hint := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return hint, hint != nil
}

type hintOutput struct {
	Hint string `json:"hint"`
}

func (s *TailoredService) generate(ctx context.Context, input TailoredInput) (*TailoredHint, error) {
	ctx = llm.WithPurpose(ctx, "hint")

	req := llm.Request{
		System: hintSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildHintUserMessage(input)},
		},
		Schema:      HintSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("hint generation: %w", err)
	}

	var out hintOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse hint response: %w", err)
	}
	return &TailoredHint{Text: out.Hint}, nil
}

func buildHintUserMessage(input TailoredInput) string {
	msg := fmt.Sprintf("Question: %s\nExpected answer format: a value in cm² (graded with %d points).\n",
		input.Question.Prompt, grader.PointsPerQuestion)
	if input.Question.Format == problemgen.FormatMultipleChoice {
		msg = fmt.Sprintf("Question: %s\nThis is a multiple choice question with options: %v\n",
			input.Question.Prompt, input.Question.Choices)
	}
	for i, w := range input.WrongAnswers {
		msg += fmt.Sprintf("Student's wrong answer %d: %s\n", i+1, w)
	}
	msg += "Write one short hint."
	return msg
}
