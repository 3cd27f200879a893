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
)

// ParticipantGroupCreate is the builder for creating a ParticipantGroup entity.
type ParticipantGroupCreate struct {
	config
	mutation *ParticipantGroupMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetParticipantID sets the "participant_id" field.
func (_c *ParticipantGroupCreate) SetParticipantID(v int) *ParticipantGroupCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *ParticipantGroupCreate) SetGroupID(v int64) *ParticipantGroupCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_c *ParticipantGroupCreate) SetParticipant(v *Participant) *ParticipantGroupCreate {
	return _c.SetParticipantID(v.ID)
}

// SetGroup sets the "group" edge to the Group entity.
func (_c *ParticipantGroupCreate) SetGroup(v *Group) *ParticipantGroupCreate {
	return _c.SetGroupID(v.ID)
}

// Mutation returns the ParticipantGroupMutation object of the builder.
func (_c *ParticipantGroupCreate) Mutation() *ParticipantGroupMutation {
	return _c.mutation
}

// Save creates the ParticipantGroup in the database.
func (_c *ParticipantGroupCreate) Save(ctx context.Context) (*ParticipantGroup, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParticipantGroupCreate) SaveX(ctx context.Context) *ParticipantGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParticipantGroupCreate) check() error {
	if _, ok := _c.mutation.ParticipantID(); !ok {
		return &ValidationError{Name: "participant_id", err: errors.New(`ent: missing required field "ParticipantGroup.participant_id"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "ParticipantGroup.group_id"`)}
	}
	if len(_c.mutation.ParticipantIDs()) == 0 {
		return &ValidationError{Name: "participant", err: errors.New(`ent: missing required edge "ParticipantGroup.participant"`)}
	}
	if len(_c.mutation.GroupIDs()) == 0 {
		return &ValidationError{Name: "group", err: errors.New(`ent: missing required edge "ParticipantGroup.group"`)}
	}
	return nil
}

func (_c *ParticipantGroupCreate) sqlSave(ctx context.Context) (*ParticipantGroup, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ParticipantGroupCreate) createSpec() (*ParticipantGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &ParticipantGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(participantgroup.Table, sqlgraph.NewFieldSpec(participantgroup.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if nodes := _c.mutation.ParticipantIDs(); len(nodes) > 0 {
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
		_node.ParticipantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GroupIDs(); len(nodes) > 0 {
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
		_node.GroupID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ParticipantGroup.Create().
//		SetParticipantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ParticipantGroupUpsert) {
//			SetParticipantID(v+v).
//		}).
//		Exec(ctx)
func (_c *ParticipantGroupCreate) OnConflict(opts ...sql.ConflictOption) *ParticipantGroupUpsertOne {
	_c.conflict = opts
	return &ParticipantGroupUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ParticipantGroup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ParticipantGroupCreate) OnConflictColumns(columns ...string) *ParticipantGroupUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ParticipantGroupUpsertOne{
		create: _c,
	}
}

type (
	// ParticipantGroupUpsertOne is the builder for "upsert"-ing
	//  one ParticipantGroup node.
	ParticipantGroupUpsertOne struct {
		create *ParticipantGroupCreate
	}

	// ParticipantGroupUpsert is the "OnConflict" setter.
	ParticipantGroupUpsert struct {
		*sql.UpdateSet
	}
)

// SetParticipantID sets the "participant_id" field.
func (u *ParticipantGroupUpsert) SetParticipantID(v int) *ParticipantGroupUpsert {
	u.Set(participantgroup.FieldParticipantID, v)
	return u
}

// UpdateParticipantID sets the "participant_id" field to the value that was provided on create.
func (u *ParticipantGroupUpsert) UpdateParticipantID() *ParticipantGroupUpsert {
	u.SetExcluded(participantgroup.FieldParticipantID)
	return u
}

// SetGroupID sets the "group_id" field.
func (u *ParticipantGroupUpsert) SetGroupID(v int64) *ParticipantGroupUpsert {
	u.Set(participantgroup.FieldGroupID, v)
	return u
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ParticipantGroupUpsert) UpdateGroupID() *ParticipantGroupUpsert {
	u.SetExcluded(participantgroup.FieldGroupID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ParticipantGroup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ParticipantGroupUpsertOne) UpdateNewValues() *ParticipantGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ParticipantGroup.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ParticipantGroupUpsertOne) Ignore() *ParticipantGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ParticipantGroupUpsertOne) DoNothing() *ParticipantGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ParticipantGroupCreate.OnConflict
// documentation for more info.
func (u *ParticipantGroupUpsertOne) Update(set func(*ParticipantGroupUpsert)) *ParticipantGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ParticipantGroupUpsert{UpdateSet: update})
	}))
	return u
}

// SetParticipantID sets the "participant_id" field.
func (u *ParticipantGroupUpsertOne) SetParticipantID(v int) *ParticipantGroupUpsertOne {
	return u.Update(func(s *ParticipantGroupUpsert) {
		s.SetParticipantID(v)
	})
}

// UpdateParticipantID sets the "participant_id" field to the value that was provided on create.
func (u *ParticipantGroupUpsertOne) UpdateParticipantID() *ParticipantGroupUpsertOne {
	return u.Update(func(s *ParticipantGroupUpsert) {
		s.UpdateParticipantID()
	})
}

// SetGroupID sets the "group_id" field.
func (u *ParticipantGroupUpsertOne) SetGroupID(v int64) *ParticipantGroupUpsertOne {
	return u.Update(func(s *ParticipantGroupUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ParticipantGroupUpsertOne) UpdateGroupID() *ParticipantGroupUpsertOne {
	return u.Update(func(s *ParticipantGroupUpsert) {
		s.UpdateGroupID()
	})
}

// Exec executes the query.
func (u *ParticipantGroupUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ParticipantGroupCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ParticipantGroupUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ParticipantGroupUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ParticipantGroupUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ParticipantGroupCreateBulk is the builder for creating many ParticipantGroup entities in bulk.
type ParticipantGroupCreateBulk struct {
	config
	err      error
	builders []*ParticipantGroupCreate
	conflict []sql.ConflictOption
}

// Save creates the ParticipantGroup entities in the database.
func (_c *ParticipantGroupCreateBulk) Save(ctx context.Context) ([]*ParticipantGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParticipantGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParticipantGroupMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ParticipantGroupCreateBulk) SaveX(ctx context.Context) []*ParticipantGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ParticipantGroup.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ParticipantGroupUpsert) {
//			SetParticipantID(v+v).
//		}).
//		Exec(ctx)
func (_c *ParticipantGroupCreateBulk) OnConflict(opts ...sql.ConflictOption) *ParticipantGroupUpsertBulk {
	_c.conflict = opts
	return &ParticipantGroupUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ParticipantGroup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ParticipantGroupCreateBulk) OnConflictColumns(columns ...string) *ParticipantGroupUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ParticipantGroupUpsertBulk{
		create: _c,
	}
}

// ParticipantGroupUpsertBulk is the builder for "upsert"-ing
// a bulk of ParticipantGroup nodes.
type ParticipantGroupUpsertBulk struct {
	create *ParticipantGroupCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ParticipantGroup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ParticipantGroupUpsertBulk) UpdateNewValues() *ParticipantGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ParticipantGroup.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ParticipantGroupUpsertBulk) Ignore() *ParticipantGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ParticipantGroupUpsertBulk) DoNothing() *ParticipantGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ParticipantGroupCreateBulk.OnConflict
// documentation for more info.
func (u *ParticipantGroupUpsertBulk) Update(set func(*ParticipantGroupUpsert)) *ParticipantGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ParticipantGroupUpsert{UpdateSet: update})
	}))
	return u
}

// SetParticipantID sets the "participant_id" field.
func (u *ParticipantGroupUpsertBulk) SetParticipantID(v int) *ParticipantGroupUpsertBulk {
	return u.Update(func(s *ParticipantGroupUpsert) {
		s.SetParticipantID(v)
	})
}

// UpdateParticipantID sets the "participant_id" field to the value that was provided on create.
func (u *ParticipantGroupUpsertBulk) UpdateParticipantID() *ParticipantGroupUpsertBulk {
	return u.Update(func(s *ParticipantGroupUpsert) {
		s.UpdateParticipantID()
	})
}

// SetGroupID sets the "group_id" field.
func (u *ParticipantGroupUpsertBulk) SetGroupID(v int64) *ParticipantGroupUpsertBulk {
	return u.Update(func(s *ParticipantGroupUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ParticipantGroupUpsertBulk) UpdateGroupID() *ParticipantGroupUpsertBulk {
	return u.Update(func(s *ParticipantGroupUpsert) {
		s.UpdateGroupID()
	})
}

// Exec executes the query.
func (u *ParticipantGroupUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ParticipantGroupCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ParticipantGroupCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ParticipantGroupUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
