// Code generated by ent, DO NOT EDIT.

package participantgroup

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the participantgroup type in the database.
	Label = "participant_group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldParticipantID holds the string denoting the participant_id field in the database.
	FieldParticipantID = "participant_id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// EdgeParticipant holds the string denoting the participant edge name in mutations.
	EdgeParticipant = "participant"
	// EdgeGroup holds the string denoting the group edge name in mutations.
	EdgeGroup = "group"
	// Table holds the table name of the participantgroup in the database.
	Table = "moodle_participant_groups"
	// ParticipantTable is the table that holds the participant relation/edge.
	ParticipantTable = "moodle_participant_groups"
	// ParticipantInverseTable is the table name for the Participant entity.
	// It exists in this package in order to avoid circular dependency with the "participant" package.
	ParticipantInverseTable = "moodle_participants"
	// ParticipantColumn is the table column denoting the participant relation/edge.
	ParticipantColumn = "participant_id"
	// GroupTable is the table that holds the group relation/edge.
	GroupTable = "moodle_participant_groups"
	// GroupInverseTable is the table name for the Group entity.
	// It exists in this package in order to avoid circular dependency with the "group" package.
	GroupInverseTable = "moodle_groups"
	// GroupColumn is the table column denoting the group relation/edge.
	GroupColumn = "group_id"
)

// Columns holds all SQL columns for participantgroup fields.
var Columns = []string{
	FieldID,
	FieldParticipantID,
	FieldGroupID,
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

// OrderOption defines the ordering options for the ParticipantGroup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParticipantID orders the results by the participant_id field.
func ByParticipantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByParticipantField orders the results by participant field.
func ByParticipantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParticipantStep(), sql.OrderByField(field, opts...))
	}
}

// ByGroupField orders the results by group field.
func ByGroupField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGroupStep(), sql.OrderByField(field, opts...))
	}
}
func newParticipantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParticipantInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParticipantTable, ParticipantColumn),
	)
}
func newGroupStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GroupInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
	)
}
