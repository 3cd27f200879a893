// Code generated by ent, DO NOT EDIT.

package role

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the role type in the database.
	Label = "role"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// EdgeParticipantRoles holds the string denoting the participant_roles edge name in mutations.
	EdgeParticipantRoles = "participant_roles"
	// Table holds the table name of the role in the database.
	Table = "moodle_roles"
	// ParticipantRolesTable is the table that holds the participant_roles relation/edge.
	ParticipantRolesTable = "moodle_participant_roles"
	// ParticipantRolesInverseTable is the table name for the ParticipantRole entity.
	// It exists in this package in order to avoid circular dependency with the "participantrole" package.
	ParticipantRolesInverseTable = "moodle_participant_roles"
	// ParticipantRolesColumn is the table column denoting the participant_roles relation/edge.
	ParticipantRolesColumn = "role_id"
)

// Columns holds all SQL columns for role fields.
var Columns = []string{
	FieldID,
	FieldName,
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

// OrderOption defines the ordering options for the Role queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByParticipantRolesCount orders the results by participant_roles count.
func ByParticipantRolesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newParticipantRolesStep(), opts...)
	}
}

// ByParticipantRoles orders the results by participant_roles terms.
func ByParticipantRoles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParticipantRolesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newParticipantRolesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParticipantRolesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ParticipantRolesTable, ParticipantRolesColumn),
	)
}
