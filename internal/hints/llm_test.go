package hints

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/shapewise/internal/llm"
	"github.com/abhisek/shapewise/internal/problemgen"
)

func waitForHint(t *testing.T, s *TailoredService) (*TailoredHint, bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			return nil, false
		default:
		}
		if hint, ok := s.Consume(); ok {
			return hint, true
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestTailoredHintRoundTrip(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: []byte(`{"hint":"Remember that the height must be perpendicular to the base."}`),
	})
	s := NewTailoredService(mock, DefaultTailoredConfig())

	s.Request(context.Background(), TailoredInput{
		Question: problemgen.Question{
			Prompt: "A triangle has a base of 6 cm and a height of 4 cm. What is its area?",
			Kind:   problemgen.KindTriangle,
			Format: problemgen.FormatNumeric,
		},
		WrongAnswers: []string{"24 cm²"},
	})

	hint, ok := waitForHint(t, s)
	if !ok {
		t.Fatal("no hint produced")
	}
	if hint.Text == "" {
		t.Error("empty hint text")
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
	if len(mock.Calls) == 1 && mock.Calls[0].Schema != HintSchema {
		t.Error("request did not carry the hint schema")
	}
}

func TestTailoredHintProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> ErrProviderUnavailable
	s := NewTailoredService(mock, DefaultTailoredConfig())

	s.Request(context.Background(), TailoredInput{
		Question: problemgen.Question{Kind: problemgen.KindCircle},
	})

	deadline := time.After(2 * time.Second)
	for {
		s.mu.Lock()
		ready := s.ready
		s.mu.Unlock()
		if ready {
			break
		}
		select {
		case <-deadline:
			t.Fatal("request never completed")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}

	if hint, ok := s.Consume(); ok {
		t.Errorf("error produced a hint: %+v", hint)
	}
}

func TestTailoredServiceNilProvider(t *testing.T) {
	s := NewTailoredService(nil, DefaultTailoredConfig())
	if s.Available() {
		t.Error("nil provider reports available")
	}
	// Request is a no-op; Consume never reports ready.
	s.Request(context.Background(), TailoredInput{})
	if _, ok := s.Consume(); ok {
		t.Error("nil provider produced a hint")
	}
}
