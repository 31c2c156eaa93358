package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StoredQuestion is the serialized form of a generated question, pinned to
// the attempt so that resuming an in-progress run replays the same sequence.
type StoredQuestion struct {
	Prompt     string   `json:"prompt"`
	Answer     float64  `json:"answer"`
	Kind       string   `json:"kind"`
	Difficulty string   `json:"difficulty"`
	Format     string   `json:"format"`
	Choices    []string `json:"choices,omitempty"`
	Correct    string   `json:"correct,omitempty"`
}

// StageAttempt is the single permitted attempt at one of the ten stages.
// A missing finished_at means the run is still in progress; the score and
// passed fields are only meaningful once finished_at is set.
type StageAttempt struct {
	ent.Schema
}

func (StageAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("learner_id").
			Comment("Owning learner"),
		field.Int("stage").
			Range(1, 10).
			Comment("Stage number"),
		field.String("session_id").
			NotEmpty().
			Comment("UUID for this run"),
		field.String("difficulty").
			NotEmpty().
			Comment("Tier selected at start, fixed for the whole run"),
		field.JSON("questions", []StoredQuestion{}).
			Comment("The ten questions generated at start"),
		field.JSON("answers", map[string]string{}).
			Optional().
			Comment("Raw accepted answers keyed by 1-based slot index"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable().
			Comment("Unset while the run is in progress"),
		field.Int("score").
			Default(0).
			Comment("0-100, written once at finalize"),
		field.Bool("passed").
			Default(false).
			Comment("score >= 60, written once at finalize"),
	}
}

func (StageAttempt) Indexes() []ent.Index {
	return []ent.Index{
		// One attempt per learner per stage. The database constraint, not
		// application logic, is what keeps concurrent starts from both
		// succeeding.
		index.Fields("learner_id", "stage").Unique(),
	}
}
