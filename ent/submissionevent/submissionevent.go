// Code generated by ent, DO NOT EDIT.

package submissionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the submissionevent type in the database.
	Label = "submission_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldScoreSaved holds the string denoting the score_saved field in the database.
	FieldScoreSaved = "score_saved"
	// FieldSubmissionsSent holds the string denoting the submissions_sent field in the database.
	FieldSubmissionsSent = "submissions_sent"
	// FieldSubmissionsTotal holds the string denoting the submissions_total field in the database.
	FieldSubmissionsTotal = "submissions_total"
	// Table holds the table name of the submissionevent in the database.
	Table = "submission_events"
)

// Columns holds all SQL columns for submissionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldScoreSaved,
	FieldSubmissionsSent,
	FieldSubmissionsTotal,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultSubmissionsSent holds the default value on creation for the "submissions_sent" field.
	DefaultSubmissionsSent int
	// DefaultSubmissionsTotal holds the default value on creation for the "submissions_total" field.
	DefaultSubmissionsTotal int
)

// OrderOption defines the ordering options for the SubmissionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByScoreSaved orders the results by the score_saved field.
func ByScoreSaved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreSaved, opts...).ToFunc()
}

// BySubmissionsSent orders the results by the submissions_sent field.
func BySubmissionsSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmissionsSent, opts...).ToFunc()
}

// BySubmissionsTotal orders the results by the submissions_total field.
func BySubmissionsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmissionsTotal, opts...).ToFunc()
}
