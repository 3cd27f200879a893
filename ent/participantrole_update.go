// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moodle-tools/simwatch/ent/participant"
	"github.com/moodle-tools/simwatch/ent/participantrole"
	"github.com/moodle-tools/simwatch/ent/predicate"
	"github.com/moodle-tools/simwatch/ent/role"
)

// ParticipantRoleUpdate is the builder for updating ParticipantRole entities.
type ParticipantRoleUpdate struct {
	config
	hooks    []Hook
	mutation *ParticipantRoleMutation
}

// Where appends a list predicates to the ParticipantRoleUpdate builder.
func (_u *ParticipantRoleUpdate) Where(ps ...predicate.ParticipantRole) *ParticipantRoleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParticipantID sets the "participant_id" field.
func (_u *ParticipantRoleUpdate) SetParticipantID(v int) *ParticipantRoleUpdate {
	_u.mutation.SetParticipantID(v)
	return _u
}

// SetNillableParticipantID sets the "participant_id" field if the given value is not nil.
func (_u *ParticipantRoleUpdate) SetNillableParticipantID(v *int) *ParticipantRoleUpdate {
	if v != nil {
		_u.SetParticipantID(*v)
	}
	return _u
}

// SetRoleID sets the "role_id" field.
func (_u *ParticipantRoleUpdate) SetRoleID(v int64) *ParticipantRoleUpdate {
	_u.mutation.SetRoleID(v)
	return _u
}

// SetNillableRoleID sets the "role_id" field if the given value is not nil.
func (_u *ParticipantRoleUpdate) SetNillableRoleID(v *int64) *ParticipantRoleUpdate {
	if v != nil {
		_u.SetRoleID(*v)
	}
	return _u
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_u *ParticipantRoleUpdate) SetParticipant(v *Participant) *ParticipantRoleUpdate {
	return _u.SetParticipantID(v.ID)
}

// SetRole sets the "role" edge to the Role entity.
func (_u *ParticipantRoleUpdate) SetRole(v *Role) *ParticipantRoleUpdate {
	return _u.SetRoleID(v.ID)
}

// Mutation returns the ParticipantRoleMutation object of the builder.
func (_u *ParticipantRoleUpdate) Mutation() *ParticipantRoleMutation {
	return _u.mutation
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (_u *ParticipantRoleUpdate) ClearParticipant() *ParticipantRoleUpdate {
	_u.mutation.ClearParticipant()
	return _u
}

// ClearRole clears the "role" edge to the Role entity.
func (_u *ParticipantRoleUpdate) ClearRole() *ParticipantRoleUpdate {
	_u.mutation.ClearRole()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParticipantRoleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantRoleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParticipantRoleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantRoleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantRoleUpdate) check() error {
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParticipantRole.participant"`)
	}
	if _u.mutation.RoleCleared() && len(_u.mutation.RoleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParticipantRole.role"`)
	}
	return nil
}

func (_u *ParticipantRoleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participantrole.Table, participantrole.Columns, sqlgraph.NewFieldSpec(participantrole.FieldID, field.TypeInt))
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
			Table:   participantrole.ParticipantTable,
			Columns: []string{participantrole.ParticipantColumn},
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
			Table:   participantrole.ParticipantTable,
			Columns: []string{participantrole.ParticipantColumn},
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
	if _u.mutation.RoleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participantrole.RoleTable,
			Columns: []string{participantrole.RoleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(role.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participantrole.RoleTable,
			Columns: []string{participantrole.RoleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(role.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participantrole.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParticipantRoleUpdateOne is the builder for updating a single ParticipantRole entity.
type ParticipantRoleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParticipantRoleMutation
}

// SetParticipantID sets the "participant_id" field.
func (_u *ParticipantRoleUpdateOne) SetParticipantID(v int) *ParticipantRoleUpdateOne {
	_u.mutation.SetParticipantID(v)
	return _u
}

// SetNillableParticipantID sets the "participant_id" field if the given value is not nil.
func (_u *ParticipantRoleUpdateOne) SetNillableParticipantID(v *int) *ParticipantRoleUpdateOne {
	if v != nil {
		_u.SetParticipantID(*v)
	}
	return _u
}

// SetRoleID sets the "role_id" field.
func (_u *ParticipantRoleUpdateOne) SetRoleID(v int64) *ParticipantRoleUpdateOne {
	_u.mutation.SetRoleID(v)
	return _u
}

// SetNillableRoleID sets the "role_id" field if the given value is not nil.
func (_u *ParticipantRoleUpdateOne) SetNillableRoleID(v *int64) *ParticipantRoleUpdateOne {
	if v != nil {
		_u.SetRoleID(*v)
	}
	return _u
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_u *ParticipantRoleUpdateOne) SetParticipant(v *Participant) *ParticipantRoleUpdateOne {
	return _u.SetParticipantID(v.ID)
}

// SetRole sets the "role" edge to the Role entity.
func (_u *ParticipantRoleUpdateOne) SetRole(v *Role) *ParticipantRoleUpdateOne {
	return _u.SetRoleID(v.ID)
}

// Mutation returns the ParticipantRoleMutation object of the builder.
func (_u *ParticipantRoleUpdateOne) Mutation() *ParticipantRoleMutation {
	return _u.mutation
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (_u *ParticipantRoleUpdateOne) ClearParticipant() *ParticipantRoleUpdateOne {
	_u.mutation.ClearParticipant()
	return _u
}

// ClearRole clears the "role" edge to the Role entity.
func (_u *ParticipantRoleUpdateOne) ClearRole() *ParticipantRoleUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// Where appends a list predicates to the ParticipantRoleUpdate builder.
func (_u *ParticipantRoleUpdateOne) Where(ps ...predicate.ParticipantRole) *ParticipantRoleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParticipantRoleUpdateOne) Select(field string, fields ...string) *ParticipantRoleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParticipantRole entity.
func (_u *ParticipantRoleUpdateOne) Save(ctx context.Context) (*ParticipantRole, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantRoleUpdateOne) SaveX(ctx context.Context) *ParticipantRole {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParticipantRoleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantRoleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantRoleUpdateOne) check() error {
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParticipantRole.participant"`)
	}
	if _u.mutation.RoleCleared() && len(_u.mutation.RoleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParticipantRole.role"`)
	}
	return nil
}

func (_u *ParticipantRoleUpdateOne) sqlSave(ctx context.Context) (_node *ParticipantRole, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participantrole.Table, participantrole.Columns, sqlgraph.NewFieldSpec(participantrole.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParticipantRole.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, participantrole.FieldID)
		for _, f := range fields {
			if !participantrole.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != participantrole.FieldID {
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
			Table:   participantrole.ParticipantTable,
			Columns: []string{participantrole.ParticipantColumn},
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
			Table:   participantrole.ParticipantTable,
			Columns: []string{participantrole.ParticipantColumn},
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
	if _u.mutation.RoleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participantrole.RoleTable,
			Columns: []string{participantrole.RoleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(role.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participantrole.RoleTable,
			Columns: []string{participantrole.RoleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(role.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ParticipantRole{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participantrole.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
