// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssistEventsColumns holds the columns for the "assist_events" table.
	AssistEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "track", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeString, Default: ""},
		{Name: "fallback", Type: field.TypeBool, Default: false},
	}
	// AssistEventsTable holds the schema information for the "assist_events" table.
	AssistEventsTable = &schema.Table{
		Name:       "assist_events",
		Columns:    AssistEventsColumns,
		PrimaryKey: []*schema.Column{AssistEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assistevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssistEventsColumns[2]},
			},
			{
				Name:    "assistevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AssistEventsColumns[3]},
			},
			{
				Name:    "assistevent_track",
				Unique:  false,
				Columns: []*schema.Column{AssistEventsColumns[4]},
			},
		},
	}
	// ChargeEventsColumns holds the columns for the "charge_events" table.
	ChargeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "amount", Type: field.TypeInt},
		{Name: "outcome", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "balance_after", Type: field.TypeInt, Default: 0},
	}
	// ChargeEventsTable holds the schema information for the "charge_events" table.
	ChargeEventsTable = &schema.Table{
		Name:       "charge_events",
		Columns:    ChargeEventsColumns,
		PrimaryKey: []*schema.Column{ChargeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chargeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChargeEventsColumns[2]},
			},
			{
				Name:    "chargeevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ChargeEventsColumns[3]},
			},
			{
				Name:    "chargeevent_action",
				Unique:  false,
				Columns: []*schema.Column{ChargeEventsColumns[4]},
			},
			{
				Name:    "chargeevent_outcome",
				Unique:  false,
				Columns: []*schema.Column{ChargeEventsColumns[7]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString, Default: ""},
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
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[6]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// QuotaColumns holds the columns for the "quota" table.
	QuotaColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "free_used", Type: field.TypeInt, Default: 0},
	}
	// QuotaTable holds the schema information for the "quota" table.
	QuotaTable = &schema.Table{
		Name:       "quota",
		Columns:    QuotaColumns,
		PrimaryKey: []*schema.Column{QuotaColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quota_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuotaColumns[1]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "exam_name", Type: field.TypeString, Default: ""},
		{Name: "subject_name", Type: field.TypeString, Default: ""},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SubmissionEventsColumns holds the columns for the "submission_events" table.
	SubmissionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "score_saved", Type: field.TypeBool},
		{Name: "submissions_sent", Type: field.TypeInt, Default: 0},
		{Name: "submissions_total", Type: field.TypeInt, Default: 0},
	}
	// SubmissionEventsTable holds the schema information for the "submission_events" table.
	SubmissionEventsTable = &schema.Table{
		Name:       "submission_events",
		Columns:    SubmissionEventsColumns,
		PrimaryKey: []*schema.Column{SubmissionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submissionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[2]},
			},
			{
				Name:    "submissionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssistEventsTable,
		ChargeEventsTable,
		LlmRequestEventsTable,
		QuotaTable,
		SessionEventsTable,
		SubmissionEventsTable,
	}
)

func init() {
}
