// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moodle-tools/simwatch/ent/assignment"
	"github.com/moodle-tools/simwatch/ent/course"
	"github.com/moodle-tools/simwatch/ent/group"
	"github.com/moodle-tools/simwatch/ent/participant"
)

// CourseCreate is the builder for creating a Course entity.
type CourseCreate struct {
	config
	mutation *CourseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetShortname sets the "shortname" field.
func (_c *CourseCreate) SetShortname(v string) *CourseCreate {
	_c.mutation.SetShortname(v)
	return _c
}

// SetFullname sets the "fullname" field.
func (_c *CourseCreate) SetFullname(v string) *CourseCreate {
	_c.mutation.SetFullname(v)
	return _c
}

// SetStarts sets the "starts" field.
func (_c *CourseCreate) SetStarts(v time.Time) *CourseCreate {
	_c.mutation.SetStarts(v)
	return _c
}

// SetNillableStarts sets the "starts" field if the given value is not nil.
func (_c *CourseCreate) SetNillableStarts(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetStarts(*v)
	}
	return _c
}

// SetEnds sets the "ends" field.
func (_c *CourseCreate) SetEnds(v time.Time) *CourseCreate {
	_c.mutation.SetEnds(v)
	return _c
}

// SetNillableEnds sets the "ends" field if the given value is not nil.
func (_c *CourseCreate) SetNillableEnds(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetEnds(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *CourseCreate) SetLastSeen(v time.Time) *CourseCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CourseCreate) SetID(v int64) *CourseCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddGroupIDs adds the "groups" edge to the Group entity by IDs.
func (_c *CourseCreate) AddGroupIDs(ids ...int64) *CourseCreate {
	_c.mutation.AddGroupIDs(ids...)
	return _c
}

// AddGroups adds the "groups" edges to the Group entity.
func (_c *CourseCreate) AddGroups(v ...*Group) *CourseCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGroupIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_c *CourseCreate) AddParticipantIDs(ids ...int) *CourseCreate {
	_c.mutation.AddParticipantIDs(ids...)
	return _c
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_c *CourseCreate) AddParticipants(v ...*Participant) *CourseCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParticipantIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the Assignment entity by IDs.
func (_c *CourseCreate) AddAssignmentIDs(ids ...int64) *CourseCreate {
	_c.mutation.AddAssignmentIDs(ids...)
	return _c
}

// AddAssignments adds the "assignments" edges to the Assignment entity.
func (_c *CourseCreate) AddAssignments(v ...*Assignment) *CourseCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssignmentIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_c *CourseCreate) Mutation() *CourseMutation {
	return _c.mutation
}

// Save creates the Course in the database.
func (_c *CourseCreate) Save(ctx context.Context) (*Course, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseCreate) SaveX(ctx context.Context) *Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseCreate) check() error {
	if _, ok := _c.mutation.Shortname(); !ok {
		return &ValidationError{Name: "shortname", err: errors.New(`ent: missing required field "Course.shortname"`)}
	}
	if _, ok := _c.mutation.Fullname(); !ok {
		return &ValidationError{Name: "fullname", err: errors.New(`ent: missing required field "Course.fullname"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "Course.last_seen"`)}
	}
	return nil
}

func (_c *CourseCreate) sqlSave(ctx context.Context) (*Course, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CourseCreate) createSpec() (*Course, *sqlgraph.CreateSpec) {
	var (
		_node = &Course{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(course.Table, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Shortname(); ok {
		_spec.SetField(course.FieldShortname, field.TypeString, value)
		_node.Shortname = value
	}
	if value, ok := _c.mutation.Fullname(); ok {
		_spec.SetField(course.FieldFullname, field.TypeString, value)
		_node.Fullname = value
	}
	if value, ok := _c.mutation.Starts(); ok {
		_spec.SetField(course.FieldStarts, field.TypeTime, value)
		_node.Starts = &value
	}
	if value, ok := _c.mutation.Ends(); ok {
		_spec.SetField(course.FieldEnds, field.TypeTime, value)
		_node.Ends = &value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(course.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if nodes := _c.mutation.GroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.GroupsTable,
			Columns: []string{course.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.ParticipantsTable,
			Columns: []string{course.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.AssignmentsTable,
			Columns: []string{course.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt64),
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
//	client.Course.Create().
//		SetShortname(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CourseUpsert) {
//			SetShortname(v+v).
//		}).
//		Exec(ctx)
func (_c *CourseCreate) OnConflict(opts ...sql.ConflictOption) *CourseUpsertOne {
	_c.conflict = opts
	return &CourseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CourseCreate) OnConflictColumns(columns ...string) *CourseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CourseUpsertOne{
		create: _c,
	}
}

type (
	// CourseUpsertOne is the builder for "upsert"-ing
	//  one Course node.
	CourseUpsertOne struct {
		create *CourseCreate
	}

	// CourseUpsert is the "OnConflict" setter.
	CourseUpsert struct {
		*sql.UpdateSet
	}
)

// SetShortname sets the "shortname" field.
func (u *CourseUpsert) SetShortname(v string) *CourseUpsert {
	u.Set(course.FieldShortname, v)
	return u
}

// UpdateShortname sets the "shortname" field to the value that was provided on create.
func (u *CourseUpsert) UpdateShortname() *CourseUpsert {
	u.SetExcluded(course.FieldShortname)
	return u
}

// SetFullname sets the "fullname" field.
func (u *CourseUpsert) SetFullname(v string) *CourseUpsert {
	u.Set(course.FieldFullname, v)
	return u
}

// UpdateFullname sets the "fullname" field to the value that was provided on create.
func (u *CourseUpsert) UpdateFullname() *CourseUpsert {
	u.SetExcluded(course.FieldFullname)
	return u
}

// SetStarts sets the "starts" field.
func (u *CourseUpsert) SetStarts(v time.Time) *CourseUpsert {
	u.Set(course.FieldStarts, v)
	return u
}

// UpdateStarts sets the "starts" field to the value that was provided on create.
func (u *CourseUpsert) UpdateStarts() *CourseUpsert {
	u.SetExcluded(course.FieldStarts)
	return u
}

// ClearStarts clears the value of the "starts" field.
func (u *CourseUpsert) ClearStarts() *CourseUpsert {
	u.SetNull(course.FieldStarts)
	return u
}

// SetEnds sets the "ends" field.
func (u *CourseUpsert) SetEnds(v time.Time) *CourseUpsert {
	u.Set(course.FieldEnds, v)
	return u
}

// UpdateEnds sets the "ends" field to the value that was provided on create.
func (u *CourseUpsert) UpdateEnds() *CourseUpsert {
	u.SetExcluded(course.FieldEnds)
	return u
}

// ClearEnds clears the value of the "ends" field.
func (u *CourseUpsert) ClearEnds() *CourseUpsert {
	u.SetNull(course.FieldEnds)
	return u
}

// SetLastSeen sets the "last_seen" field.
func (u *CourseUpsert) SetLastSeen(v time.Time) *CourseUpsert {
	u.Set(course.FieldLastSeen, v)
	return u
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *CourseUpsert) UpdateLastSeen() *CourseUpsert {
	u.SetExcluded(course.FieldLastSeen)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(course.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CourseUpsertOne) UpdateNewValues() *CourseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(course.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Course.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CourseUpsertOne) Ignore() *CourseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CourseUpsertOne) DoNothing() *CourseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CourseCreate.OnConflict
// documentation for more info.
func (u *CourseUpsertOne) Update(set func(*CourseUpsert)) *CourseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CourseUpsert{UpdateSet: update})
	}))
	return u
}

// SetShortname sets the "shortname" field.
func (u *CourseUpsertOne) SetShortname(v string) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetShortname(v)
	})
}

// UpdateShortname sets the "shortname" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateShortname() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateShortname()
	})
}

// SetFullname sets the "fullname" field.
func (u *CourseUpsertOne) SetFullname(v string) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetFullname(v)
	})
}

// UpdateFullname sets the "fullname" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateFullname() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateFullname()
	})
}

// SetStarts sets the "starts" field.
func (u *CourseUpsertOne) SetStarts(v time.Time) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetStarts(v)
	})
}

// UpdateStarts sets the "starts" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateStarts() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateStarts()
	})
}

// ClearStarts clears the value of the "starts" field.
func (u *CourseUpsertOne) ClearStarts() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.ClearStarts()
	})
}

// SetEnds sets the "ends" field.
func (u *CourseUpsertOne) SetEnds(v time.Time) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetEnds(v)
	})
}

// UpdateEnds sets the "ends" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateEnds() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateEnds()
	})
}

// ClearEnds clears the value of the "ends" field.
func (u *CourseUpsertOne) ClearEnds() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.ClearEnds()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *CourseUpsertOne) SetLastSeen(v time.Time) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateLastSeen() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *CourseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CourseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CourseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CourseUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CourseUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CourseCreateBulk is the builder for creating many Course entities in bulk.
type CourseCreateBulk struct {
	config
	err      error
	builders []*CourseCreate
	conflict []sql.ConflictOption
}

// Save creates the Course entities in the database.
func (_c *CourseCreateBulk) Save(ctx context.Context) ([]*Course, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Course, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
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
func (_c *CourseCreateBulk) SaveX(ctx context.Context) []*Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Course.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CourseUpsert) {
//			SetShortname(v+v).
//		}).
//		Exec(ctx)
func (_c *CourseCreateBulk) OnConflict(opts ...sql.ConflictOption) *CourseUpsertBulk {
	_c.conflict = opts
	return &CourseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CourseCreateBulk) OnConflictColumns(columns ...string) *CourseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CourseUpsertBulk{
		create: _c,
	}
}

// CourseUpsertBulk is the builder for "upsert"-ing
// a bulk of Course nodes.
type CourseUpsertBulk struct {
	create *CourseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(course.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CourseUpsertBulk) UpdateNewValues() *CourseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(course.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CourseUpsertBulk) Ignore() *CourseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CourseUpsertBulk) DoNothing() *CourseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CourseCreateBulk.OnConflict
// documentation for more info.
func (u *CourseUpsertBulk) Update(set func(*CourseUpsert)) *CourseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CourseUpsert{UpdateSet: update})
	}))
	return u
}

// SetShortname sets the "shortname" field.
func (u *CourseUpsertBulk) SetShortname(v string) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetShortname(v)
	})
}

// UpdateShortname sets the "shortname" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateShortname() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateShortname()
	})
}

// SetFullname sets the "fullname" field.
func (u *CourseUpsertBulk) SetFullname(v string) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetFullname(v)
	})
}

// UpdateFullname sets the "fullname" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateFullname() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateFullname()
	})
}

// SetStarts sets the "starts" field.
func (u *CourseUpsertBulk) SetStarts(v time.Time) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetStarts(v)
	})
}

// UpdateStarts sets the "starts" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateStarts() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateStarts()
	})
}

// ClearStarts clears the value of the "starts" field.
func (u *CourseUpsertBulk) ClearStarts() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.ClearStarts()
	})
}

// SetEnds sets the "ends" field.
func (u *CourseUpsertBulk) SetEnds(v time.Time) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetEnds(v)
	})
}

// UpdateEnds sets the "ends" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateEnds() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateEnds()
	})
}

// ClearEnds clears the value of the "ends" field.
func (u *CourseUpsertBulk) ClearEnds() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.ClearEnds()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *CourseUpsertBulk) SetLastSeen(v time.Time) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateLastSeen() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *CourseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CourseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CourseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CourseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
