// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/obinna/prepcli/ent/quota"
)

// Quota is the model entity for the Quota schema.
type Quota struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// FreeUsed holds the value of the "free_used" field.
	FreeUsed     int `json:"free_used,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Quota) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quota.FieldID, quota.FieldFreeUsed:
			values[i] = new(sql.NullInt64)
		case quota.FieldUserID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Quota fields.
func (_m *Quota) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quota.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quota.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case quota.FieldFreeUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field free_used", values[i])
			} else if value.Valid {
				_m.FreeUsed = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Quota.
// This includes values selected through modifiers, order, etc.
func (_m *Quota) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Quota.
// Note that you need to call Quota.Unwrap() before calling this method if this Quota
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Quota) Update() *QuotaUpdateOne {
	return NewQuotaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Quota entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Quota) Unwrap() *Quota {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Quota is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Quota) String() string {
	var builder strings.Builder
	builder.WriteString("Quota(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("free_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.FreeUsed))
	builder.WriteByte(')')
	return builder.String()
}

// QuotaSlice is a parsable slice of Quota.
type QuotaSlice []*Quota
