// Code generated by ent, DO NOT EDIT.

package scoreevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scoreevent type in the database.
	Label = "score_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAxisID holds the string denoting the axis_id field in the database.
	FieldAxisID = "axis_id"
	// FieldAreaID holds the string denoting the area_id field in the database.
	FieldAreaID = "area_id"
	// FieldRank holds the string denoting the rank field in the database.
	FieldRank = "rank"
	// FieldSelected holds the string denoting the selected field in the database.
	FieldSelected = "selected"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldAxisPercent holds the string denoting the axis_percent field in the database.
	FieldAxisPercent = "axis_percent"
	// Table holds the table name of the scoreevent in the database.
	Table = "score_events"
)

// Columns holds all SQL columns for scoreevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAxisID,
	FieldAreaID,
	FieldRank,
	FieldSelected,
	FieldSource,
	FieldAxisPercent,
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
	// AxisIDValidator is a validator for the "axis_id" field. It is called by the builders before save.
	AxisIDValidator func(string) error
	// AreaIDValidator is a validator for the "area_id" field. It is called by the builders before save.
	AreaIDValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultAxisPercent holds the default value on creation for the "axis_percent" field.
	DefaultAxisPercent int
)

// OrderOption defines the ordering options for the ScoreEvent queries.
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

// ByAxisID orders the results by the axis_id field.
func ByAxisID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAxisID, opts...).ToFunc()
}

// ByAreaID orders the results by the area_id field.
func ByAreaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAreaID, opts...).ToFunc()
}

// ByRank orders the results by the rank field.
func ByRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRank, opts...).ToFunc()
}

// BySelected orders the results by the selected field.
func BySelected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelected, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByAxisPercent orders the results by the axis_percent field.
func ByAxisPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAxisPercent, opts...).ToFunc()
}
