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
	"github.com/moodle-tools/simwatch/ent/submission"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
	"github.com/moodle-tools/simwatch/ent/user"
)

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *SubmissionCreate) SetAssignmentID(v int64) *SubmissionCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SubmissionCreate) SetUserID(v int64) *SubmissionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubmissionCreate) SetStatus(v string) *SubmissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableStatus(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUpdated sets the "updated" field.
func (_c *SubmissionCreate) SetUpdated(v time.Time) *SubmissionCreate {
	_c.mutation.SetUpdated(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SubmissionCreate) SetID(v int64) *SubmissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAssignment sets the "assignment" edge to the Assignment entity.
func (_c *SubmissionCreate) SetAssignment(v *Assignment) *SubmissionCreate {
	return _c.SetAssignmentID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *SubmissionCreate) SetUser(v *User) *SubmissionCreate {
	return _c.SetUserID(v.ID)
}

// AddFileIDs adds the "files" edge to the SubmittedFile entity by IDs.
func (_c *SubmissionCreate) AddFileIDs(ids ...int) *SubmissionCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the SubmittedFile entity.
func (_c *SubmissionCreate) AddFiles(v ...*SubmittedFile) *SubmissionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_c *SubmissionCreate) Mutation() *SubmissionMutation {
	return _c.mutation
}

// Save creates the Submission in the database.
func (_c *SubmissionCreate) Save(ctx context.Context) (*Submission, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionCreate) SaveX(ctx context.Context) *Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.AssignmentID(); !ok {
		return &ValidationError{Name: "assignment_id", err: errors.New(`ent: missing required field "Submission.assignment_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Submission.user_id"`)}
	}
	if _, ok := _c.mutation.Updated(); !ok {
		return &ValidationError{Name: "updated", err: errors.New(`ent: missing required field "Submission.updated"`)}
	}
	if len(_c.mutation.AssignmentIDs()) == 0 {
		return &ValidationError{Name: "assignment", err: errors.New(`ent: missing required edge "Submission.assignment"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Submission.user"`)}
	}
	return nil
}

func (_c *SubmissionCreate) sqlSave(ctx context.Context) (*Submission, error) {
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

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeString, value)
		_node.Status = &value
	}
	if value, ok := _c.mutation.Updated(); ok {
		_spec.SetField(submission.FieldUpdated, field.TypeTime, value)
		_node.Updated = value
	}
	if nodes := _c.mutation.AssignmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.AssignmentTable,
			Columns: []string{submission.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AssignmentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.UserTable,
			Columns: []string{submission.UserColumn},
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
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.FilesTable,
			Columns: []string{submission.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submittedfile.FieldID, field.TypeInt),
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
//	client.Submission.Create().
//		SetAssignmentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubmissionUpsert) {
//			SetAssignmentID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubmissionCreate) OnConflict(opts ...sql.ConflictOption) *SubmissionUpsertOne {
	_c.conflict = opts
	return &SubmissionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubmissionCreate) OnConflictColumns(columns ...string) *SubmissionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubmissionUpsertOne{
		create: _c,
	}
}

type (
	// SubmissionUpsertOne is the builder for "upsert"-ing
	//  one Submission node.
	SubmissionUpsertOne struct {
		create *SubmissionCreate
	}

	// SubmissionUpsert is the "OnConflict" setter.
	SubmissionUpsert struct {
		*sql.UpdateSet
	}
)

// SetAssignmentID sets the "assignment_id" field.
func (u *SubmissionUpsert) SetAssignmentID(v int64) *SubmissionUpsert {
	u.Set(submission.FieldAssignmentID, v)
	return u
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateAssignmentID() *SubmissionUpsert {
	u.SetExcluded(submission.FieldAssignmentID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *SubmissionUpsert) SetUserID(v int64) *SubmissionUpsert {
	u.Set(submission.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateUserID() *SubmissionUpsert {
	u.SetExcluded(submission.FieldUserID)
	return u
}

// SetStatus sets the "status" field.
func (u *SubmissionUpsert) SetStatus(v string) *SubmissionUpsert {
	u.Set(submission.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateStatus() *SubmissionUpsert {
	u.SetExcluded(submission.FieldStatus)
	return u
}

// ClearStatus clears the value of the "status" field.
func (u *SubmissionUpsert) ClearStatus() *SubmissionUpsert {
	u.SetNull(submission.FieldStatus)
	return u
}

// SetUpdated sets the "updated" field.
func (u *SubmissionUpsert) SetUpdated(v time.Time) *SubmissionUpsert {
	u.Set(submission.FieldUpdated, v)
	return u
}

// UpdateUpdated sets the "updated" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateUpdated() *SubmissionUpsert {
	u.SetExcluded(submission.FieldUpdated)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(submission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SubmissionUpsertOne) UpdateNewValues() *SubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(submission.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Submission.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SubmissionUpsertOne) Ignore() *SubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubmissionUpsertOne) DoNothing() *SubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubmissionCreate.OnConflict
// documentation for more info.
func (u *SubmissionUpsertOne) Update(set func(*SubmissionUpsert)) *SubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubmissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetAssignmentID sets the "assignment_id" field.
func (u *SubmissionUpsertOne) SetAssignmentID(v int64) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetAssignmentID(v)
	})
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateAssignmentID() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateAssignmentID()
	})
}

// SetUserID sets the "user_id" field.
func (u *SubmissionUpsertOne) SetUserID(v int64) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateUserID() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateUserID()
	})
}

// SetStatus sets the "status" field.
func (u *SubmissionUpsertOne) SetStatus(v string) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateStatus() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *SubmissionUpsertOne) ClearStatus() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearStatus()
	})
}

// SetUpdated sets the "updated" field.
func (u *SubmissionUpsertOne) SetUpdated(v time.Time) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetUpdated(v)
	})
}

// UpdateUpdated sets the "updated" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateUpdated() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateUpdated()
	})
}

// Exec executes the query.
func (u *SubmissionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubmissionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubmissionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SubmissionUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SubmissionUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SubmissionCreateBulk is the builder for creating many Submission entities in bulk.
type SubmissionCreateBulk struct {
	config
	err      error
	builders []*SubmissionCreate
	conflict []sql.ConflictOption
}

// Save creates the Submission entities in the database.
func (_c *SubmissionCreateBulk) Save(ctx context.Context) ([]*Submission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionMutation)
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
func (_c *SubmissionCreateBulk) SaveX(ctx context.Context) []*Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Submission.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubmissionUpsert) {
//			SetAssignmentID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubmissionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SubmissionUpsertBulk {
	_c.conflict = opts
	return &SubmissionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubmissionCreateBulk) OnConflictColumns(columns ...string) *SubmissionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubmissionUpsertBulk{
		create: _c,
	}
}

// SubmissionUpsertBulk is the builder for "upsert"-ing
// a bulk of Submission nodes.
type SubmissionUpsertBulk struct {
	create *SubmissionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(submission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SubmissionUpsertBulk) UpdateNewValues() *SubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(submission.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SubmissionUpsertBulk) Ignore() *SubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubmissionUpsertBulk) DoNothing() *SubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubmissionCreateBulk.OnConflict
// documentation for more info.
func (u *SubmissionUpsertBulk) Update(set func(*SubmissionUpsert)) *SubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubmissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetAssignmentID sets the "assignment_id" field.
func (u *SubmissionUpsertBulk) SetAssignmentID(v int64) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetAssignmentID(v)
	})
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateAssignmentID() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateAssignmentID()
	})
}

// SetUserID sets the "user_id" field.
func (u *SubmissionUpsertBulk) SetUserID(v int64) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateUserID() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateUserID()
	})
}

// SetStatus sets the "status" field.
func (u *SubmissionUpsertBulk) SetStatus(v string) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateStatus() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *SubmissionUpsertBulk) ClearStatus() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearStatus()
	})
}

// SetUpdated sets the "updated" field.
func (u *SubmissionUpsertBulk) SetUpdated(v time.Time) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetUpdated(v)
	})
}

// UpdateUpdated sets the "updated" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateUpdated() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateUpdated()
	})
}

// Exec executes the query.
func (u *SubmissionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SubmissionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubmissionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubmissionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
