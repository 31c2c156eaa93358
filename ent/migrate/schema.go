// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// LearnersColumns holds the columns for the "learners" table.
	LearnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "full_name", Type: field.TypeString, Default: ""},
		{Name: "student_id", Type: field.TypeString, Default: ""},
		{Name: "preferred_level", Type: field.TypeString, Default: "Beginner"},
	}
	// LearnersTable holds the schema information for the "learners" table.
	LearnersTable = &schema.Table{
		Name:       "learners",
		Columns:    LearnersColumns,
		PrimaryKey: []*schema.Column{LearnersColumns[0]},
	}
	// PreAssessmentsColumns holds the columns for the "pre_assessments" table.
	PreAssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeString},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "score", Type: field.TypeInt, Default: 0},
	}
	// PreAssessmentsTable holds the schema information for the "pre_assessments" table.
	PreAssessmentsTable = &schema.Table{
		Name:       "pre_assessments",
		Columns:    PreAssessmentsColumns,
		PrimaryKey: []*schema.Column{PreAssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "preassessment_learner_id",
				Unique:  true,
				Columns: []*schema.Column{PreAssessmentsColumns[1]},
			},
		},
	}
	// StageAttemptsColumns holds the columns for the "stage_attempts" table.
	StageAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeInt},
		{Name: "stage", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "passed", Type: field.TypeBool, Default: false},
	}
	// StageAttemptsTable holds the schema information for the "stage_attempts" table.
	StageAttemptsTable = &schema.Table{
		Name:       "stage_attempts",
		Columns:    StageAttemptsColumns,
		PrimaryKey: []*schema.Column{StageAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stageattempt_learner_id_stage",
				Unique:  true,
				Columns: []*schema.Column{StageAttemptsColumns[1], StageAttemptsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		LearnersTable,
		PreAssessmentsTable,
		StageAttemptsTable,
	}
)

func init() {
}
