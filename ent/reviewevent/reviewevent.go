// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewevent type in the database.
	Label = "review_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldReviewID holds the string denoting the review_id field in the database.
	FieldReviewID = "review_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldReinforced holds the string denoting the reinforced field in the database.
	FieldReinforced = "reinforced"
	// FieldReviewedCount holds the string denoting the reviewed_count field in the database.
	FieldReviewedCount = "reviewed_count"
	// FieldReinforcedCount holds the string denoting the reinforced_count field in the database.
	FieldReinforcedCount = "reinforced_count"
	// Table holds the table name of the reviewevent in the database.
	Table = "review_events"
)

// Columns holds all SQL columns for reviewevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldReviewID,
	FieldAction,
	FieldCorrect,
	FieldReinforced,
	FieldReviewedCount,
	FieldReinforcedCount,
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
	// DefaultReviewID holds the default value on creation for the "review_id" field.
	DefaultReviewID string
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect bool
	// DefaultReinforced holds the default value on creation for the "reinforced" field.
	DefaultReinforced bool
	// DefaultReviewedCount holds the default value on creation for the "reviewed_count" field.
	DefaultReviewedCount int
	// DefaultReinforcedCount holds the default value on creation for the "reinforced_count" field.
	DefaultReinforcedCount int
)

// OrderOption defines the ordering options for the ReviewEvent queries.
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

// ByReviewID orders the results by the review_id field.
func ByReviewID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByReinforced orders the results by the reinforced field.
func ByReinforced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReinforced, opts...).ToFunc()
}

// ByReviewedCount orders the results by the reviewed_count field.
func ByReviewedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedCount, opts...).ToFunc()
}

// ByReinforcedCount orders the results by the reinforced_count field.
func ByReinforcedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReinforcedCount, opts...).ToFunc()
}
