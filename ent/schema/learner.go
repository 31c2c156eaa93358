package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Learner is a student profile. Shapewise is multi-profile on one machine,
// so the username carries identity; there is no authentication.
type Learner struct {
	ent.Schema
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			NotEmpty().
			Unique().
			Comment("Lower-cased unique handle"),
		field.String("full_name").
			Default("").
			Comment("Display name"),
		field.String("student_id").
			Default("").
			Comment("Optional external student identifier"),
		field.String("preferred_level").
			Default("Beginner").
			Comment("Default difficulty offered at stage start"),
	}
}
