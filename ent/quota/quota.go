// Code generated by ent, DO NOT EDIT.

package quota

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quota type in the database.
	Label = "quota"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldFreeUsed holds the string denoting the free_used field in the database.
	FieldFreeUsed = "free_used"
	// Table holds the table name of the quota in the database.
	Table = "quota"
)

// Columns holds all SQL columns for quota fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldFreeUsed,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultFreeUsed holds the default value on creation for the "free_used" field.
	DefaultFreeUsed int
	// FreeUsedValidator is a validator for the "free_used" field. It is called by the builders before save.
	FreeUsedValidator func(int) error
)

// OrderOption defines the ordering options for the Quota queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByFreeUsed orders the results by the free_used field.
func ByFreeUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreeUsed, opts...).ToFunc()
}
