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
	"github.com/moodle-tools/simwatch/ent/role"
)

// ParticipantRoleCreate is the builder for creating a ParticipantRole entity.
type ParticipantRoleCreate struct {
	config
	mutation *ParticipantRoleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetParticipantID sets the "participant_id" field.
func (_c *ParticipantRoleCreate) SetParticipantID(v int) *ParticipantRoleCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetRoleID sets the "role_id" field.
func (_c *ParticipantRoleCreate) SetRoleID(v int64) *ParticipantRoleCreate {
	_c.mutation.SetRoleID(v)
	return _c
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_c *ParticipantRoleCreate) SetParticipant(v *Participant) *ParticipantRoleCreate {
	return _c.SetParticipantID(v.ID)
}

// SetRole sets the "role" edge to the Role entity.
func (_c *ParticipantRoleCreate) SetRole(v *Role) *ParticipantRoleCreate {
	return _c.SetRoleID(v.ID)
}

// Mutation returns the ParticipantRoleMutation object of the builder.
func (_c *ParticipantRoleCreate) Mutation() *ParticipantRoleMutation {
	return _c.mutation
}

// Save creates the ParticipantRole in the database.
func (_c *ParticipantRoleCreate) Save(ctx context.Context) (*ParticipantRole, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParticipantRoleCreate) SaveX(ctx context.Context) *ParticipantRole {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantRoleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantRoleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParticipantRoleCreate) check() error {
	if _, ok := _c.mutation.ParticipantID(); !ok {
		return &ValidationError{Name: "participant_id", err: errors.New(`ent: missing required field "ParticipantRole.participant_id"`)}
	}
	if _, ok := _c.mutation.RoleID(); !ok {
		return &ValidationError{Name: "role_id", err: errors.New(`ent: missing required field "ParticipantRole.role_id"`)}
	}
	if len(_c.mutation.ParticipantIDs()) == 0 {
		return &ValidationError{Name: "participant", err: errors.New(`ent: missing required edge "ParticipantRole.participant"`)}
	}
	if len(_c.mutation.RoleIDs()) == 0 {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required edge "ParticipantRole.role"`)}
	}
	return nil
}

func (_c *ParticipantRoleCreate) sqlSave(ctx context.Context) (*ParticipantRole, error) {
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

func (_c *ParticipantRoleCreate) createSpec() (*ParticipantRole, *sqlgraph.CreateSpec) {
	var (
		_node = &ParticipantRole{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(participantrole.Table, sqlgraph.NewFieldSpec(participantrole.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if nodes := _c.mutation.ParticipantIDs(); len(nodes) > 0 {
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
		_node.ParticipantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RoleIDs(); len(nodes) > 0 {
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
		_node.RoleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ParticipantRole.Create().
//		SetParticipantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ParticipantRoleUpsert) {
//			SetParticipantID(v+v).
//		}).
//		Exec(ctx)
func (_c *ParticipantRoleCreate) OnConflict(opts ...sql.ConflictOption) *ParticipantRoleUpsertOne {
	_c.conflict = opts
	return &ParticipantRoleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ParticipantRole.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ParticipantRoleCreate) OnConflictColumns(columns ...string) *ParticipantRoleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ParticipantRoleUpsertOne{
		create: _c,
	}
}

type (
	// ParticipantRoleUpsertOne is the builder for "upsert"-ing
	//  one ParticipantRole node.
	ParticipantRoleUpsertOne struct {
		create *ParticipantRoleCreate
	}

	// ParticipantRoleUpsert is the "OnConflict" setter.
	ParticipantRoleUpsert struct {
		*sql.UpdateSet
	}
)

// SetParticipantID sets the "participant_id" field.
func (u *ParticipantRoleUpsert) SetParticipantID(v int) *ParticipantRoleUpsert {
	u.Set(participantrole.FieldParticipantID, v)
	return u
}

// UpdateParticipantID sets the "participant_id" field to the value that was provided on create.
func (u *ParticipantRoleUpsert) UpdateParticipantID() *ParticipantRoleUpsert {
	u.SetExcluded(participantrole.FieldParticipantID)
	return u
}

// SetRoleID sets the "role_id" field.
func (u *ParticipantRoleUpsert) SetRoleID(v int64) *ParticipantRoleUpsert {
	u.Set(participantrole.FieldRoleID, v)
	return u
}

// UpdateRoleID sets the "role_id" field to the value that was provided on create.
func (u *ParticipantRoleUpsert) UpdateRoleID() *ParticipantRoleUpsert {
	u.SetExcluded(participantrole.FieldRoleID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ParticipantRole.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ParticipantRoleUpsertOne) UpdateNewValues() *ParticipantRoleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ParticipantRole.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ParticipantRoleUpsertOne) Ignore() *ParticipantRoleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ParticipantRoleUpsertOne) DoNothing() *ParticipantRoleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ParticipantRoleCreate.OnConflict
// documentation for more info.
func (u *ParticipantRoleUpsertOne) Update(set func(*ParticipantRoleUpsert)) *ParticipantRoleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ParticipantRoleUpsert{UpdateSet: update})
	}))
	return u
}

// SetParticipantID sets the "participant_id" field.
func (u *ParticipantRoleUpsertOne) SetParticipantID(v int) *ParticipantRoleUpsertOne {
	return u.Update(func(s *ParticipantRoleUpsert) {
		s.SetParticipantID(v)
	})
}

// UpdateParticipantID sets the "participant_id" field to the value that was provided on create.
func (u *ParticipantRoleUpsertOne) UpdateParticipantID() *ParticipantRoleUpsertOne {
	return u.Update(func(s *ParticipantRoleUpsert) {
		s.UpdateParticipantID()
	})
}

// SetRoleID sets the "role_id" field.
func (u *ParticipantRoleUpsertOne) SetRoleID(v int64) *ParticipantRoleUpsertOne {
	return u.Update(func(s *ParticipantRoleUpsert) {
		s.SetRoleID(v)
	})
}

// UpdateRoleID sets the "role_id" field to the value that was provided on create.
func (u *ParticipantRoleUpsertOne) UpdateRoleID() *ParticipantRoleUpsertOne {
	return u.Update(func(s *ParticipantRoleUpsert) {
		s.UpdateRoleID()
	})
}

// Exec executes the query.
func (u *ParticipantRoleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ParticipantRoleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ParticipantRoleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ParticipantRoleUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ParticipantRoleUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ParticipantRoleCreateBulk is the builder for creating many ParticipantRole entities in bulk.
type ParticipantRoleCreateBulk struct {
	config
	err      error
	builders []*ParticipantRoleCreate
	conflict []sql.ConflictOption
}

// Save creates the ParticipantRole entities in the database.
func (_c *ParticipantRoleCreateBulk) Save(ctx context.Context) ([]*ParticipantRole, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParticipantRole, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParticipantRoleMutation)
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
func (_c *ParticipantRoleCreateBulk) SaveX(ctx context.Context) []*ParticipantRole {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantRoleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantRoleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ParticipantRole.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ParticipantRoleUpsert) {
//			SetParticipantID(v+v).
//		}).
//		Exec(ctx)
func (_c *ParticipantRoleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ParticipantRoleUpsertBulk {
	_c.conflict = opts
	return &ParticipantRoleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ParticipantRole.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ParticipantRoleCreateBulk) OnConflictColumns(columns ...string) *ParticipantRoleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ParticipantRoleUpsertBulk{
		create: _c,
	}
}

// ParticipantRoleUpsertBulk is the builder for "upsert"-ing
// a bulk of ParticipantRole nodes.
type ParticipantRoleUpsertBulk struct {
	create *ParticipantRoleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ParticipantRole.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ParticipantRoleUpsertBulk) UpdateNewValues() *ParticipantRoleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ParticipantRole.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ParticipantRoleUpsertBulk) Ignore() *ParticipantRoleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ParticipantRoleUpsertBulk) DoNothing() *ParticipantRoleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ParticipantRoleCreateBulk.OnConflict
// documentation for more info.
func (u *ParticipantRoleUpsertBulk) Update(set func(*ParticipantRoleUpsert)) *ParticipantRoleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ParticipantRoleUpsert{UpdateSet: update})
	}))
	return u
}

// SetParticipantID sets the "participant_id" field.
func (u *ParticipantRoleUpsertBulk) SetParticipantID(v int) *ParticipantRoleUpsertBulk {
	return u.Update(func(s *ParticipantRoleUpsert) {
		s.SetParticipantID(v)
	})
}

// UpdateParticipantID sets the "participant_id" field to the value that was provided on create.
func (u *ParticipantRoleUpsertBulk) UpdateParticipantID() *ParticipantRoleUpsertBulk {
	return u.Update(func(s *ParticipantRoleUpsert) {
		s.UpdateParticipantID()
	})
}

// SetRoleID sets the "role_id" field.
func (u *ParticipantRoleUpsertBulk) SetRoleID(v int64) *ParticipantRoleUpsertBulk {
	return u.Update(func(s *ParticipantRoleUpsert) {
		s.SetRoleID(v)
	})
}

// UpdateRoleID sets the "role_id" field to the value that was provided on create.
func (u *ParticipantRoleUpsertBulk) UpdateRoleID() *ParticipantRoleUpsertBulk {
	return u.Update(func(s *ParticipantRoleUpsert) {
		s.UpdateRoleID()
	})
}

// Exec executes the query.
func (u *ParticipantRoleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ParticipantRoleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ParticipantRoleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ParticipantRoleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
