// Code generated by ent, DO NOT EDIT.

package readingsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the readingsnapshot type in the database.
	Label = "reading_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUnreadCount holds the string denoting the unread_count field in the database.
	FieldUnreadCount = "unread_count"
	// FieldHighPriorityCount holds the string denoting the high_priority_count field in the database.
	FieldHighPriorityCount = "high_priority_count"
	// Table holds the table name of the readingsnapshot in the database.
	Table = "reading_snapshots"
)

// Columns holds all SQL columns for readingsnapshot fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUnreadCount,
	FieldHighPriorityCount,
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
	// DefaultUnreadCount holds the default value on creation for the "unread_count" field.
	DefaultUnreadCount int
	// DefaultHighPriorityCount holds the default value on creation for the "high_priority_count" field.
	DefaultHighPriorityCount int
)

// OrderOption defines the ordering options for the ReadingSnapshot queries.
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

// ByUnreadCount orders the results by the unread_count field.
func ByUnreadCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnreadCount, opts...).ToFunc()
}

// ByHighPriorityCount orders the results by the high_priority_count field.
func ByHighPriorityCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHighPriorityCount, opts...).ToFunc()
}
