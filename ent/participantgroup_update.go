// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moodle-tools/simwatch/ent/group"
	"github.com/moodle-tools/simwatch/ent/participant"
	"github.com/moodle-tools/simwatch/ent/participantgroup"
	"github.com/moodle-tools/simwatch/ent/predicate"
)

// ParticipantGroupUpdate is the builder for updating ParticipantGroup entities.
type ParticipantGroupUpdate struct {
	config
	hooks    []Hook
	mutation *ParticipantGroupMutation
}

// Where appends a list predicates to the ParticipantGroupUpdate builder.
func (_u *ParticipantGroupUpdate) Where(ps ...predicate.ParticipantGroup) *ParticipantGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParticipantID sets the "participant_id" field.
func (_u *ParticipantGroupUpdate) SetParticipantID(v int) *ParticipantGroupUpdate {
	_u.mutation.SetParticipantID(v)
	return _u
}

// SetNillableParticipantID sets the "participant_id" field if the given value is not nil.
func (_u *ParticipantGroupUpdate) SetNillableParticipantID(v *int) *ParticipantGroupUpdate {
	if v != nil {
		_u.SetParticipantID(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *ParticipantGroupUpdate) SetGroupID(v int64) *ParticipantGroupUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ParticipantGroupUpdate) SetNillableGroupID(v *int64) *ParticipantGroupUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_u *ParticipantGroupUpdate) SetParticipant(v *Participant) *ParticipantGroupUpdate {
	return _u.SetParticipantID(v.ID)
}

// SetGroup sets the "group" edge to the Group entity.
func (_u *ParticipantGroupUpdate) SetGroup(v *Group) *ParticipantGroupUpdate {
	return _u.SetGroupID(v.ID)
}

// Mutation returns the ParticipantGroupMutation object of the builder.
func (_u *ParticipantGroupUpdate) Mutation() *ParticipantGroupMutation {
	return _u.mutation
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (_u *ParticipantGroupUpdate) ClearParticipant() *ParticipantGroupUpdate {
	_u.mutation.ClearParticipant()
	return _u
}

// ClearGroup clears the "group" edge to the Group entity.
func (_u *ParticipantGroupUpdate) ClearGroup() *ParticipantGroupUpdate {
	_u.mutation.ClearGroup()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParticipantGroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParticipantGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantGroupUpdate) check() error {
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParticipantGroup.participant"`)
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParticipantGroup.group"`)
	}
	return nil
}

func (_u *ParticipantGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participantgroup.Table, participantgroup.Columns, sqlgraph.NewFieldSpec(participantgroup.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParticipantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participantgroup.ParticipantTable,
			Columns: []string{participantgroup.ParticipantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participantgroup.ParticipantTable,
			Columns: []string{participantgroup.ParticipantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participantgroup.GroupTable,
			Columns: []string{participantgroup.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participantgroup.GroupTable,
			Columns: []string{participantgroup.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participantgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParticipantGroupUpdateOne is the builder for updating a single ParticipantGroup entity.
type ParticipantGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParticipantGroupMutation
}

// SetParticipantID sets the "participant_id" field.
func (_u *ParticipantGroupUpdateOne) SetParticipantID(v int) *ParticipantGroupUpdateOne {
	_u.mutation.SetParticipantID(v)
	return _u
}

// SetNillableParticipantID sets the "participant_id" field if the given value is not nil.
func (_u *ParticipantGroupUpdateOne) SetNillableParticipantID(v *int) *ParticipantGroupUpdateOne {
	if v != nil {
		_u.SetParticipantID(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *ParticipantGroupUpdateOne) SetGroupID(v int64) *ParticipantGroupUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ParticipantGroupUpdateOne) SetNillableGroupID(v *int64) *ParticipantGroupUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_u *ParticipantGroupUpdateOne) SetParticipant(v *Participant) *ParticipantGroupUpdateOne {
	return _u.SetParticipantID(v.ID)
}

// SetGroup sets the "group" edge to the Group entity.
func (_u *ParticipantGroupUpdateOne) SetGroup(v *Group) *ParticipantGroupUpdateOne {
	return _u.SetGroupID(v.ID)
}

// Mutation returns the ParticipantGroupMutation object of the builder.
func (_u *ParticipantGroupUpdateOne) Mutation() *ParticipantGroupMutation {
	return _u.mutation
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (_u *ParticipantGroupUpdateOne) ClearParticipant() *ParticipantGroupUpdateOne {
	_u.mutation.ClearParticipant()
	return _u
}

// ClearGroup clears the "group" edge to the Group entity.
func (_u *ParticipantGroupUpdateOne) ClearGroup() *ParticipantGroupUpdateOne {
	_u.mutation.ClearGroup()
	return _u
}

// Where appends a list predicates to the ParticipantGroupUpdate builder.
func (_u *ParticipantGroupUpdateOne) Where(ps ...predicate.ParticipantGroup) *ParticipantGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParticipantGroupUpdateOne) Select(field string, fields ...string) *ParticipantGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParticipantGroup entity.
func (_u *ParticipantGroupUpdateOne) Save(ctx context.Context) (*ParticipantGroup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantGroupUpdateOne) SaveX(ctx context.Context) *ParticipantGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParticipantGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantGroupUpdateOne) check() error {
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParticipantGroup.participant"`)
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParticipantGroup.group"`)
	}
	return nil
}

func (_u *ParticipantGroupUpdateOne) sqlSave(ctx context.Context) (_node *ParticipantGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participantgroup.Table, participantgroup.Columns, sqlgraph.NewFieldSpec(participantgroup.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParticipantGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, participantgroup.FieldID)
		for _, f := range fields {
			if !participantgroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != participantgroup.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParticipantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participantgroup.ParticipantTable,
			Columns: []string{participantgroup.ParticipantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participantgroup.ParticipantTable,
			Columns: []string{participantgroup.ParticipantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participantgroup.GroupTable,
			Columns: []string{participantgroup.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participantgroup.GroupTable,
			Columns: []string{participantgroup.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ParticipantGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participantgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
