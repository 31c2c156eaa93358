package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PreAssessment is the one-shot placement run taken before the stages.
// It gates nothing; the score informs initial placement and reporting.
type PreAssessment struct {
	ent.Schema
}

func (PreAssessment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("learner_id").
			Comment("Owning learner"),
		field.String("session_id").
			NotEmpty(),
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
			Nillable(),
		field.Int("score").
			Default(0),
	}
}

func (PreAssessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id").Unique(),
	}
}
