// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/moodle-tools/simwatch/ent/participant"
	"github.com/moodle-tools/simwatch/ent/participantrole"
	"github.com/moodle-tools/simwatch/ent/role"
)

// ParticipantRole is the model entity for the ParticipantRole schema.
type ParticipantRole struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ParticipantID holds the value of the "participant_id" field.
	ParticipantID int `json:"participant_id,omitempty"`
	// RoleID holds the value of the "role_id" field.
	RoleID int64 `json:"role_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ParticipantRoleQuery when eager-loading is set.
	Edges        ParticipantRoleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ParticipantRoleEdges holds the relations/edges for other nodes in the graph.
type ParticipantRoleEdges struct {
	// Participant holds the value of the participant edge.
	Participant *Participant `json:"participant,omitempty"`
	// Role holds the value of the role edge.
	Role *Role `json:"role,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ParticipantOrErr returns the Participant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParticipantRoleEdges) ParticipantOrErr() (*Participant, error) {
	if e.Participant != nil {
		return e.Participant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: participant.Label}
	}
	return nil, &NotLoadedError{edge: "participant"}
}

// RoleOrErr returns the Role value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParticipantRoleEdges) RoleOrErr() (*Role, error) {
	if e.Role != nil {
		return e.Role, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: role.Label}
	}
	return nil, &NotLoadedError{edge: "role"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParticipantRole) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case participantrole.FieldID, participantrole.FieldParticipantID, participantrole.FieldRoleID:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParticipantRole fields.
func (_m *ParticipantRole) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case participantrole.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case participantrole.FieldParticipantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = int(value.Int64)
			}
		case participantrole.FieldRoleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field role_id", values[i])
			} else if value.Valid {
				_m.RoleID = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParticipantRole.
// This includes values selected through modifiers, order, etc.
func (_m *ParticipantRole) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParticipant queries the "participant" edge of the ParticipantRole entity.
func (_m *ParticipantRole) QueryParticipant() *ParticipantQuery {
	return NewParticipantRoleClient(_m.config).QueryParticipant(_m)
}

// QueryRole queries the "role" edge of the ParticipantRole entity.
func (_m *ParticipantRole) QueryRole() *RoleQuery {
	return NewParticipantRoleClient(_m.config).QueryRole(_m)
}

// Update returns a builder for updating this ParticipantRole.
// Note that you need to call ParticipantRole.Unwrap() before calling this method if this ParticipantRole
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParticipantRole) Update() *ParticipantRoleUpdateOne {
	return NewParticipantRoleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParticipantRole entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParticipantRole) Unwrap() *ParticipantRole {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParticipantRole is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParticipantRole) String() string {
	var builder strings.Builder
	builder.WriteString("ParticipantRole(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("participant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParticipantID))
	builder.WriteString(", ")
	builder.WriteString("role_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoleID))
	builder.WriteByte(')')
	return builder.String()
}

// ParticipantRoles is a parsable slice of ParticipantRole.
type ParticipantRoles []*ParticipantRole
