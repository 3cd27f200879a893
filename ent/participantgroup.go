// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/moodle-tools/simwatch/ent/group"
	"github.com/moodle-tools/simwatch/ent/participant"
	"github.com/moodle-tools/simwatch/ent/participantgroup"
)

// ParticipantGroup is the model entity for the ParticipantGroup schema.
type ParticipantGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ParticipantID holds the value of the "participant_id" field.
	ParticipantID int `json:"participant_id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID int64 `json:"group_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ParticipantGroupQuery when eager-loading is set.
	Edges        ParticipantGroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ParticipantGroupEdges holds the relations/edges for other nodes in the graph.
type ParticipantGroupEdges struct {
	// Participant holds the value of the participant edge.
	Participant *Participant `json:"participant,omitempty"`
	// Group holds the value of the group edge.
	Group *Group `json:"group,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ParticipantOrErr returns the Participant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParticipantGroupEdges) ParticipantOrErr() (*Participant, error) {
	if e.Participant != nil {
		return e.Participant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: participant.Label}
	}
	return nil, &NotLoadedError{edge: "participant"}
}

// GroupOrErr returns the Group value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParticipantGroupEdges) GroupOrErr() (*Group, error) {
	if e.Group != nil {
		return e.Group, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: group.Label}
	}
	return nil, &NotLoadedError{edge: "group"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParticipantGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case participantgroup.FieldID, participantgroup.FieldParticipantID, participantgroup.FieldGroupID:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParticipantGroup fields.
func (_m *ParticipantGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case participantgroup.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case participantgroup.FieldParticipantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = int(value.Int64)
			}
		case participantgroup.FieldGroupID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParticipantGroup.
// This includes values selected through modifiers, order, etc.
func (_m *ParticipantGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParticipant queries the "participant" edge of the ParticipantGroup entity.
func (_m *ParticipantGroup) QueryParticipant() *ParticipantQuery {
	return NewParticipantGroupClient(_m.config).QueryParticipant(_m)
}

// QueryGroup queries the "group" edge of the ParticipantGroup entity.
func (_m *ParticipantGroup) QueryGroup() *GroupQuery {
	return NewParticipantGroupClient(_m.config).QueryGroup(_m)
}

// Update returns a builder for updating this ParticipantGroup.
// Note that you need to call ParticipantGroup.Unwrap() before calling this method if this ParticipantGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParticipantGroup) Update() *ParticipantGroupUpdateOne {
	return NewParticipantGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParticipantGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParticipantGroup) Unwrap() *ParticipantGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParticipantGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParticipantGroup) String() string {
	var builder strings.Builder
	builder.WriteString("ParticipantGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("participant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParticipantID))
	builder.WriteString(", ")
	builder.WriteString("group_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.GroupID))
	builder.WriteByte(')')
	return builder.String()
}

// ParticipantGroups is a parsable slice of ParticipantGroup.
type ParticipantGroups []*ParticipantGroup
