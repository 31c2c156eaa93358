// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Learner is the predicate function for learner builders.
type Learner func(*sql.Selector)

// PreAssessment is the predicate function for preassessment builders.
type PreAssessment func(*sql.Selector)

// StageAttempt is the predicate function for stageattempt builders.
type StageAttempt func(*sql.Selector)
