// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moodle-tools/simwatch/ent/course"
	"github.com/moodle-tools/simwatch/ent/participant"
	"github.com/moodle-tools/simwatch/ent/participantgroup"
	"github.com/moodle-tools/simwatch/ent/participantrole"
	"github.com/moodle-tools/simwatch/ent/user"
)

// ParticipantCreate is the builder for creating a Participant entity.
type ParticipantCreate struct {
	config
	mutation *ParticipantMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCourseID sets the "course_id" field.
func (_c *ParticipantCreate) SetCourseID(v int64) *ParticipantCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ParticipantCreate) SetUserID(v int64) *ParticipantCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCourse sets the "course" edge to the Course entity.
func (_c *ParticipantCreate) SetCourse(v *Course) *ParticipantCreate {
	return _c.SetCourseID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *ParticipantCreate) SetUser(v *User) *ParticipantCreate {
	return _c.SetUserID(v.ID)
}

// AddRoleIDs adds the "roles" edge to the ParticipantRole entity by IDs.
func (_c *ParticipantCreate) AddRoleIDs(ids ...int) *ParticipantCreate {
	_c.mutation.AddRoleIDs(ids...)
	return _c
}

// AddRoles adds the "roles" edges to the ParticipantRole entity.
func (_c *ParticipantCreate) AddRoles(v ...*ParticipantRole) *ParticipantCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRoleIDs(ids...)
}

// AddGroupMembershipIDs adds the "group_memberships" edge to the ParticipantGroup entity by IDs.
func (_c *ParticipantCreate) AddGroupMembershipIDs(ids ...int) *ParticipantCreate {
	_c.mutation.AddGroupMembershipIDs(ids...)
	return _c
}

// AddGroupMemberships adds the "group_memberships" edges to the ParticipantGroup entity.
func (_c *ParticipantCreate) AddGroupMemberships(v ...*ParticipantGroup) *ParticipantCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGroupMembershipIDs(ids...)
}

// Mutation returns the ParticipantMutation object of the builder.
func (_c *ParticipantCreate) Mutation() *ParticipantMutation {
	return _c.mutation
}

// Save creates the Participant in the database.
func (_c *ParticipantCreate) Save(ctx context.Context) (*Participant, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParticipantCreate) SaveX(ctx context.Context) *Participant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParticipantCreate) check() error {
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "Participant.course_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Participant.user_id"`)}
	}
	if len(_c.mutation.CourseIDs()) == 0 {
		return &ValidationError{Name: "course", err: errors.New(`ent: missing required edge "Participant.course"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Participant.user"`)}
	}
	return nil
}

func (_c *ParticipantCreate) sqlSave(ctx context.Context) (*Participant, error) {
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

func (_c *ParticipantCreate) createSpec() (*Participant, *sqlgraph.CreateSpec) {
	var (
		_node = &Participant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(participant.Table, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if nodes := _c.mutation.CourseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participant.CourseTable,
			Columns: []string{participant.CourseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CourseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participant.UserTable,
			Columns: []string{participant.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RolesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.RolesTable,
			Columns: []string{participant.RolesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participantrole.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GroupMembershipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.GroupMembershipsTable,
			Columns: []string{participant.GroupMembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participantgroup.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Participant.Create().
//		SetCourseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ParticipantUpsert) {
//			SetCourseID(v+v).
//		}).
//		Exec(ctx)
func (_c *ParticipantCreate) OnConflict(opts ...sql.ConflictOption) *ParticipantUpsertOne {
	_c.conflict = opts
	return &ParticipantUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ParticipantCreate) OnConflictColumns(columns ...string) *ParticipantUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ParticipantUpsertOne{
		create: _c,
	}
}

type (
	// ParticipantUpsertOne is the builder for "upsert"-ing
	//  one Participant node.
	ParticipantUpsertOne struct {
		create *ParticipantCreate
	}

	// ParticipantUpsert is the "OnConflict" setter.
	ParticipantUpsert struct {
		*sql.UpdateSet
	}
)

// SetCourseID sets the "course_id" field.
func (u *ParticipantUpsert) SetCourseID(v int64) *ParticipantUpsert {
	u.Set(participant.FieldCourseID, v)
	return u
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateCourseID() *ParticipantUpsert {
	u.SetExcluded(participant.FieldCourseID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ParticipantUpsert) SetUserID(v int64) *ParticipantUpsert {
	u.Set(participant.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateUserID() *ParticipantUpsert {
	u.SetExcluded(participant.FieldUserID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ParticipantUpsertOne) UpdateNewValues() *ParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Participant.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ParticipantUpsertOne) Ignore() *ParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ParticipantUpsertOne) DoNothing() *ParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ParticipantCreate.OnConflict
// documentation for more info.
func (u *ParticipantUpsertOne) Update(set func(*ParticipantUpsert)) *ParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseID sets the "course_id" field.
func (u *ParticipantUpsertOne) SetCourseID(v int64) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateCourseID() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateCourseID()
	})
}

// SetUserID sets the "user_id" field.
func (u *ParticipantUpsertOne) SetUserID(v int64) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateUserID() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateUserID()
	})
}

// Exec executes the query.
func (u *ParticipantUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ParticipantCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ParticipantUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ParticipantUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ParticipantUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ParticipantCreateBulk is the builder for creating many Participant entities in bulk.
type ParticipantCreateBulk struct {
	config
	err      error
	builders []*ParticipantCreate
	conflict []sql.ConflictOption
}

// Save creates the Participant entities in the database.
func (_c *ParticipantCreateBulk) Save(ctx context.Context) ([]*Participant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Participant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParticipantMutation)
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
func (_c *ParticipantCreateBulk) SaveX(ctx context.Context) []*Participant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Participant.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ParticipantUpsert) {
//			SetCourseID(v+v).
//		}).
//		Exec(ctx)
func (_c *ParticipantCreateBulk) OnConflict(opts ...sql.ConflictOption) *ParticipantUpsertBulk {
	_c.conflict = opts
	return &ParticipantUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ParticipantCreateBulk) OnConflictColumns(columns ...string) *ParticipantUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ParticipantUpsertBulk{
		create: _c,
	}
}

// ParticipantUpsertBulk is the builder for "upsert"-ing
// a bulk of Participant nodes.
type ParticipantUpsertBulk struct {
	create *ParticipantCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ParticipantUpsertBulk) UpdateNewValues() *ParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ParticipantUpsertBulk) Ignore() *ParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ParticipantUpsertBulk) DoNothing() *ParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ParticipantCreateBulk.OnConflict
// documentation for more info.
func (u *ParticipantUpsertBulk) Update(set func(*ParticipantUpsert)) *ParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseID sets the "course_id" field.
func (u *ParticipantUpsertBulk) SetCourseID(v int64) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateCourseID() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateCourseID()
	})
}

// SetUserID sets the "user_id" field.
func (u *ParticipantUpsertBulk) SetUserID(v int64) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateUserID() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateUserID()
	})
}

// Exec executes the query.
func (u *ParticipantUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ParticipantCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ParticipantCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ParticipantUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
