package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/abhisek/shapewise/internal/problemgen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testQuestions() []problemgen.Question {
	return []problemgen.Question{
		{
			Prompt:     "A rectangle is 6 cm long and 4 cm wide. What is its area?",
			Answer:     24,
			Kind:       problemgen.KindRectangle,
			Difficulty: problemgen.Beginner,
			Format:     problemgen.FormatNumeric,
		},
		{
			Prompt:     "A square has sides of 5 cm. What is its area?",
			Answer:     25,
			Kind:       problemgen.KindSquare,
			Difficulty: problemgen.Beginner,
			Format:     problemgen.FormatNumeric,
		},
	}
}

func createLearner(t *testing.T, s *Store) *Learner {
	t.Helper()
	l, err := s.Learners().GetOrCreate(context.Background(), "ada")
	if err != nil {
		t.Fatalf("get or create learner: %v", err)
	}
	return l
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLearnerGetOrCreateIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.Learners().GetOrCreate(ctx, "Ada")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	again, err := s.Learners().GetOrCreate(ctx, "  ada ")
	if err != nil {
		t.Fatalf("again: %v", err)
	}
	if first.ID != again.ID {
		t.Errorf("same username created two learners: %d and %d", first.ID, again.ID)
	}
	if first.Username != "ada" {
		t.Errorf("username not normalized: %q", first.Username)
	}
	if first.PreferredLevel != problemgen.Beginner {
		t.Errorf("default preferred level = %q", first.PreferredLevel)
	}
}

func TestAttemptCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := createLearner(t, s)

	created, err := s.Attempts().Create(ctx, CreateAttemptInput{
		LearnerID:  l.ID,
		Stage:      2,
		SessionID:  uuid.NewString(),
		Difficulty: problemgen.Beginner,
		Questions:  testQuestions(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Finished() {
		t.Fatal("fresh attempt reports finished")
	}

	got, err := s.Attempts().Get(ctx, l.ID, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("got attempt %d, want %d", got.ID, created.ID)
	}
	if len(got.Questions) != 2 {
		t.Fatalf("questions round-trip lost data: %d", len(got.Questions))
	}
	if got.Questions[0].Answer != 24 || got.Questions[0].Kind != problemgen.KindRectangle {
		t.Errorf("question fields mangled: %+v", got.Questions[0])
	}
}

func TestAttemptUniquePerStage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := createLearner(t, s)

	in := CreateAttemptInput{
		LearnerID:  l.ID,
		Stage:      3,
		SessionID:  uuid.NewString(),
		Difficulty: problemgen.Beginner,
		Questions:  testQuestions(),
	}
	if _, err := s.Attempts().Create(ctx, in); err != nil {
		t.Fatalf("first create: %v", err)
	}

	in.SessionID = uuid.NewString()
	_, err := s.Attempts().Create(ctx, in)
	if !errors.Is(err, ErrDuplicateAttempt) {
		t.Fatalf("second create = %v, want ErrDuplicateAttempt", err)
	}

	// A different stage is fine.
	in.Stage = 4
	if _, err := s.Attempts().Create(ctx, in); err != nil {
		t.Errorf("different stage rejected: %v", err)
	}
}

func TestAttemptCreateConcurrentOneWinner(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := createLearner(t, s)

	const racers = 8
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Attempts().Create(ctx, CreateAttemptInput{
				LearnerID:  l.ID,
				Stage:      5,
				SessionID:  uuid.NewString(),
				Difficulty: problemgen.Beginner,
				Questions:  testQuestions(),
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, ErrDuplicateAttempt):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("%d concurrent creates succeeded, want exactly 1", winners)
	}
}

func TestAttemptSaveAnswer(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := createLearner(t, s)

	a, err := s.Attempts().Create(ctx, CreateAttemptInput{
		LearnerID:  l.ID,
		Stage:      1,
		SessionID:  uuid.NewString(),
		Difficulty: problemgen.Beginner,
		Questions:  testQuestions(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Attempts().SaveAnswer(ctx, a.ID, 1, "24 cm²"); err != nil {
		t.Fatalf("save answer: %v", err)
	}
	// Slots are write-once.
	if err := s.Attempts().SaveAnswer(ctx, a.ID, 1, "25 cm²"); err == nil {
		t.Fatal("slot overwritten")
	}

	got, err := s.Attempts().Get(ctx, l.ID, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Answers[1] != "24 cm²" {
		t.Errorf("answers = %v", got.Answers)
	}
}

func TestAttemptFinalizeOnce(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := createLearner(t, s)

	a, err := s.Attempts().Create(ctx, CreateAttemptInput{
		LearnerID:  l.ID,
		Stage:      1,
		SessionID:  uuid.NewString(),
		Difficulty: problemgen.Beginner,
		Questions:  testQuestions(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Attempts().Finalize(ctx, a.ID, 70, true); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	err = s.Attempts().Finalize(ctx, a.ID, 100, true)
	if !errors.Is(err, ErrAlreadyFinished) {
		t.Fatalf("second finalize = %v, want ErrAlreadyFinished", err)
	}

	got, _ := s.Attempts().Get(ctx, l.ID, 1)
	if got.Score != 70 || !got.Passed || !got.Finished() {
		t.Errorf("finalized attempt = score %d passed %v finished %v", got.Score, got.Passed, got.Finished())
	}

	// Answers are frozen after finalize.
	if err := s.Attempts().SaveAnswer(ctx, a.ID, 2, "25 cm²"); !errors.Is(err, ErrAlreadyFinished) {
		t.Errorf("save after finalize = %v, want ErrAlreadyFinished", err)
	}
}

func TestAttemptFinalizeMissing(t *testing.T) {
	s := openTestStore(t)
	err := s.Attempts().Finalize(context.Background(), 9999, 50, false)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("finalize missing = %v, want ErrNotFound", err)
	}
}

func TestPreAssessmentLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := createLearner(t, s)

	a, err := s.PreAssessments().Create(ctx, CreateAssessmentInput{
		LearnerID: l.ID,
		SessionID: uuid.NewString(),
		Questions: testQuestions(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = s.PreAssessments().Create(ctx, CreateAssessmentInput{
		LearnerID: l.ID,
		SessionID: uuid.NewString(),
		Questions: testQuestions(),
	})
	if !errors.Is(err, ErrDuplicateAssessment) {
		t.Fatalf("second create = %v, want ErrDuplicateAssessment", err)
	}

	if err := s.PreAssessments().SaveAnswer(ctx, a.ID, 1, "24 cm²"); err != nil {
		t.Fatalf("save answer: %v", err)
	}
	if err := s.PreAssessments().Finalize(ctx, a.ID, 80); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if err := s.PreAssessments().Finalize(ctx, a.ID, 90); !errors.Is(err, ErrAlreadyFinished) {
		t.Fatalf("second finalize = %v, want ErrAlreadyFinished", err)
	}

	got, err := s.PreAssessments().Get(ctx, l.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Score != 80 || !got.Finished() {
		t.Errorf("assessment = score %d finished %v", got.Score, got.Finished())
	}
}

func TestResetDeletesProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := createLearner(t, s)

	for stage := 1; stage <= 3; stage++ {
		_, err := s.Attempts().Create(ctx, CreateAttemptInput{
			LearnerID:  l.ID,
			Stage:      stage,
			SessionID:  uuid.NewString(),
			Difficulty: problemgen.Beginner,
			Questions:  testQuestions(),
		})
		if err != nil {
			t.Fatalf("create stage %d: %v", stage, err)
		}
	}

	n, err := s.Attempts().DeleteByLearner(ctx, l.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted %d attempts, want 3", n)
	}
	if _, err := s.Attempts().Get(ctx, l.ID, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("attempt survived reset: %v", err)
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "hint",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    900,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("event count = %d, want 1", count)
	}
}

func TestListLLMRequests(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:    "mock",
			Model:       "mock-model",
			Purpose:     "hint",
			InputTokens: 10 * (i + 1),
			LatencyMs:   int64(i),
			Success:     true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := s.Events().ListLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("limit ignored: got %d events", len(events))
	}

	all, err := s.Events().ListLLMRequests(ctx, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d events, want 3", len(all))
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "mock", Model: "m", Purpose: "hint", InputTokens: 100, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Provider: "mock", Model: "m", Purpose: "hint", InputTokens: 50, OutputTokens: 10, LatencyMs: 300, Success: true},
		{Provider: "mock", Model: "m", Purpose: "other", InputTokens: 5, OutputTokens: 1, LatencyMs: 40, Success: false},
	}
	for i, data := range appends {
		if err := s.Events().AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := s.Events().LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byPurpose := make(map[string]LLMUsageStat, len(stats))
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}

	hint := byPurpose["hint"]
	if hint.Calls != 2 || hint.InputTokens != 150 || hint.OutputTokens != 30 {
		t.Errorf("hint usage = %+v", hint)
	}
	if hint.AvgLatencyMs != 200 {
		t.Errorf("hint avg latency = %d, want 200", hint.AvgLatencyMs)
	}
	if byPurpose["other"].Calls != 1 {
		t.Errorf("other usage = %+v", byPurpose["other"])
	}
}
