// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/shapewise/ent/learner"
	"github.com/abhisek/shapewise/ent/llmrequestevent"
	"github.com/abhisek/shapewise/ent/preassessment"
	"github.com/abhisek/shapewise/ent/schema"
	"github.com/abhisek/shapewise/ent/stageattempt"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	learnerFields := schema.Learner{}.Fields()
	_ = learnerFields
	// learnerDescUsername is the schema descriptor for username field.
	learnerDescUsername := learnerFields[0].Descriptor()
	// learner.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	learner.UsernameValidator = learnerDescUsername.Validators[0].(func(string) error)
	// learnerDescFullName is the schema descriptor for full_name field.
	learnerDescFullName := learnerFields[1].Descriptor()
	// learner.DefaultFullName holds the default value on creation for the full_name field.
	learner.DefaultFullName = learnerDescFullName.Default.(string)
	// learnerDescStudentID is the schema descriptor for student_id field.
	learnerDescStudentID := learnerFields[2].Descriptor()
	// learner.DefaultStudentID holds the default value on creation for the student_id field.
	learner.DefaultStudentID = learnerDescStudentID.Default.(string)
	// learnerDescPreferredLevel is the schema descriptor for preferred_level field.
	learnerDescPreferredLevel := learnerFields[3].Descriptor()
	// learner.DefaultPreferredLevel holds the default value on creation for the preferred_level field.
	learner.DefaultPreferredLevel = learnerDescPreferredLevel.Default.(string)
	preassessmentFields := schema.PreAssessment{}.Fields()
	_ = preassessmentFields
	// preassessmentDescSessionID is the schema descriptor for session_id field.
	preassessmentDescSessionID := preassessmentFields[1].Descriptor()
	// preassessment.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	preassessment.SessionIDValidator = preassessmentDescSessionID.Validators[0].(func(string) error)
	// preassessmentDescStartedAt is the schema descriptor for started_at field.
	preassessmentDescStartedAt := preassessmentFields[4].Descriptor()
	// preassessment.DefaultStartedAt holds the default value on creation for the started_at field.
	preassessment.DefaultStartedAt = preassessmentDescStartedAt.Default.(func() time.Time)
	// preassessmentDescScore is the schema descriptor for score field.
	preassessmentDescScore := preassessmentFields[6].Descriptor()
	// preassessment.DefaultScore holds the default value on creation for the score field.
	preassessment.DefaultScore = preassessmentDescScore.Default.(int)
	stageattemptFields := schema.StageAttempt{}.Fields()
	_ = stageattemptFields
	// stageattemptDescStage is the schema descriptor for stage field.
	stageattemptDescStage := stageattemptFields[1].Descriptor()
	// stageattempt.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	stageattempt.StageValidator = stageattemptDescStage.Validators[0].(func(int) error)
	// stageattemptDescSessionID is the schema descriptor for session_id field.
	stageattemptDescSessionID := stageattemptFields[2].Descriptor()
	// stageattempt.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	stageattempt.SessionIDValidator = stageattemptDescSessionID.Validators[0].(func(string) error)
	// stageattemptDescDifficulty is the schema descriptor for difficulty field.
	stageattemptDescDifficulty := stageattemptFields[3].Descriptor()
	// stageattempt.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	stageattempt.DifficultyValidator = stageattemptDescDifficulty.Validators[0].(func(string) error)
	// stageattemptDescStartedAt is the schema descriptor for started_at field.
	stageattemptDescStartedAt := stageattemptFields[6].Descriptor()
	// stageattempt.DefaultStartedAt holds the default value on creation for the started_at field.
	stageattempt.DefaultStartedAt = stageattemptDescStartedAt.Default.(func() time.Time)
	// stageattemptDescScore is the schema descriptor for score field.
	stageattemptDescScore := stageattemptFields[8].Descriptor()
	// stageattempt.DefaultScore holds the default value on creation for the score field.
	stageattempt.DefaultScore = stageattemptDescScore.Default.(int)
	// stageattemptDescPassed is the schema descriptor for passed field.
	stageattemptDescPassed := stageattemptFields[9].Descriptor()
	// stageattempt.DefaultPassed holds the default value on creation for the passed field.
	stageattempt.DefaultPassed = stageattemptDescPassed.Default.(bool)
}
