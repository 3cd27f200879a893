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
	"github.com/moodle-tools/simwatch/ent/submission"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
)

// AssignmentCreate is the builder for creating a Assignment entity.
type AssignmentCreate struct {
	config
	mutation *AssignmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCourseID sets the "course_id" field.
func (_c *AssignmentCreate) SetCourseID(v int64) *AssignmentCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AssignmentCreate) SetName(v string) *AssignmentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetOpening sets the "opening" field.
func (_c *AssignmentCreate) SetOpening(v time.Time) *AssignmentCreate {
	_c.mutation.SetOpening(v)
	return _c
}

// SetNillableOpening sets the "opening" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableOpening(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetOpening(*v)
	}
	return _c
}

// SetClosing sets the "closing" field.
func (_c *AssignmentCreate) SetClosing(v time.Time) *AssignmentCreate {
	_c.mutation.SetClosing(v)
	return _c
}

// SetNillableClosing sets the "closing" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableClosing(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetClosing(*v)
	}
	return _c
}

// SetCutoff sets the "cutoff" field.
func (_c *AssignmentCreate) SetCutoff(v time.Time) *AssignmentCreate {
	_c.mutation.SetCutoff(v)
	return _c
}

// SetNillableCutoff sets the "cutoff" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableCutoff(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetCutoff(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssignmentCreate) SetID(v int64) *AssignmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCourse sets the "course" edge to the Course entity.
func (_c *AssignmentCreate) SetCourse(v *Course) *AssignmentCreate {
	return _c.SetCourseID(v.ID)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_c *AssignmentCreate) AddSubmissionIDs(ids ...int64) *AssignmentCreate {
	_c.mutation.AddSubmissionIDs(ids...)
	return _c
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_c *AssignmentCreate) AddSubmissions(v ...*Submission) *AssignmentCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmissionIDs(ids...)
}

// AddSubmittedFileIDs adds the "submitted_files" edge to the SubmittedFile entity by IDs.
func (_c *AssignmentCreate) AddSubmittedFileIDs(ids ...int) *AssignmentCreate {
	_c.mutation.AddSubmittedFileIDs(ids...)
	return _c
}

// AddSubmittedFiles adds the "submitted_files" edges to the SubmittedFile entity.
func (_c *AssignmentCreate) AddSubmittedFiles(v ...*SubmittedFile) *AssignmentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmittedFileIDs(ids...)
}

// Mutation returns the AssignmentMutation object of the builder.
func (_c *AssignmentCreate) Mutation() *AssignmentMutation {
	return _c.mutation
}

// Save creates the Assignment in the database.
func (_c *AssignmentCreate) Save(ctx context.Context) (*Assignment, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssignmentCreate) SaveX(ctx context.Context) *Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssignmentCreate) check() error {
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "Assignment.course_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Assignment.name"`)}
	}
	if len(_c.mutation.CourseIDs()) == 0 {
		return &ValidationError{Name: "course", err: errors.New(`ent: missing required edge "Assignment.course"`)}
	}
	return nil
}

func (_c *AssignmentCreate) sqlSave(ctx context.Context) (*Assignment, error) {
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

func (_c *AssignmentCreate) createSpec() (*Assignment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assignment.Table, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(assignment.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Opening(); ok {
		_spec.SetField(assignment.FieldOpening, field.TypeTime, value)
		_node.Opening = &value
	}
	if value, ok := _c.mutation.Closing(); ok {
		_spec.SetField(assignment.FieldClosing, field.TypeTime, value)
		_node.Closing = &value
	}
	if value, ok := _c.mutation.Cutoff(); ok {
		_spec.SetField(assignment.FieldCutoff, field.TypeTime, value)
		_node.Cutoff = &value
	}
	if nodes := _c.mutation.CourseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.CourseTable,
			Columns: []string{assignment.CourseColumn},
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
	if nodes := _c.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assignment.SubmissionsTable,
			Columns: []string{assignment.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubmittedFilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assignment.SubmittedFilesTable,
			Columns: []string{assignment.SubmittedFilesColumn},
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
//	client.Assignment.Create().
//		SetCourseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssignmentUpsert) {
//			SetCourseID(v+v).
//		}).
//		Exec(ctx)
func (_c *AssignmentCreate) OnConflict(opts ...sql.ConflictOption) *AssignmentUpsertOne {
	_c.conflict = opts
	return &AssignmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Assignment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AssignmentCreate) OnConflictColumns(columns ...string) *AssignmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AssignmentUpsertOne{
		create: _c,
	}
}

type (
	// AssignmentUpsertOne is the builder for "upsert"-ing
	//  one Assignment node.
	AssignmentUpsertOne struct {
		create *AssignmentCreate
	}

	// AssignmentUpsert is the "OnConflict" setter.
	AssignmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetCourseID sets the "course_id" field.
func (u *AssignmentUpsert) SetCourseID(v int64) *AssignmentUpsert {
	u.Set(assignment.FieldCourseID, v)
	return u
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *AssignmentUpsert) UpdateCourseID() *AssignmentUpsert {
	u.SetExcluded(assignment.FieldCourseID)
	return u
}

// SetName sets the "name" field.
func (u *AssignmentUpsert) SetName(v string) *AssignmentUpsert {
	u.Set(assignment.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AssignmentUpsert) UpdateName() *AssignmentUpsert {
	u.SetExcluded(assignment.FieldName)
	return u
}

// SetOpening sets the "opening" field.
func (u *AssignmentUpsert) SetOpening(v time.Time) *AssignmentUpsert {
	u.Set(assignment.FieldOpening, v)
	return u
}

// UpdateOpening sets the "opening" field to the value that was provided on create.
func (u *AssignmentUpsert) UpdateOpening() *AssignmentUpsert {
	u.SetExcluded(assignment.FieldOpening)
	return u
}

// ClearOpening clears the value of the "opening" field.
func (u *AssignmentUpsert) ClearOpening() *AssignmentUpsert {
	u.SetNull(assignment.FieldOpening)
	return u
}

// SetClosing sets the "closing" field.
func (u *AssignmentUpsert) SetClosing(v time.Time) *AssignmentUpsert {
	u.Set(assignment.FieldClosing, v)
	return u
}

// UpdateClosing sets the "closing" field to the value that was provided on create.
func (u *AssignmentUpsert) UpdateClosing() *AssignmentUpsert {
	u.SetExcluded(assignment.FieldClosing)
	return u
}

// ClearClosing clears the value of the "closing" field.
func (u *AssignmentUpsert) ClearClosing() *AssignmentUpsert {
	u.SetNull(assignment.FieldClosing)
	return u
}

// SetCutoff sets the "cutoff" field.
func (u *AssignmentUpsert) SetCutoff(v time.Time) *AssignmentUpsert {
	u.Set(assignment.FieldCutoff, v)
	return u
}

// UpdateCutoff sets the "cutoff" field to the value that was provided on create.
func (u *AssignmentUpsert) UpdateCutoff() *AssignmentUpsert {
	u.SetExcluded(assignment.FieldCutoff)
	return u
}

// ClearCutoff clears the value of the "cutoff" field.
func (u *AssignmentUpsert) ClearCutoff() *AssignmentUpsert {
	u.SetNull(assignment.FieldCutoff)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Assignment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(assignment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AssignmentUpsertOne) UpdateNewValues() *AssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(assignment.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Assignment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AssignmentUpsertOne) Ignore() *AssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssignmentUpsertOne) DoNothing() *AssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssignmentCreate.OnConflict
// documentation for more info.
func (u *AssignmentUpsertOne) Update(set func(*AssignmentUpsert)) *AssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssignmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseID sets the "course_id" field.
func (u *AssignmentUpsertOne) SetCourseID(v int64) *AssignmentUpsertOne {
	return u.Update(func(s *AssignmentUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *AssignmentUpsertOne) UpdateCourseID() *AssignmentUpsertOne {
	return u.Update(func(s *AssignmentUpsert) {
		s.UpdateCourseID()
	})
}

// SetName sets the "name" field.
func (u *AssignmentUpsertOne) SetName(v string) *AssignmentUpsertOne {
	return u.Update(func(s *AssignmentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AssignmentUpsertOne) UpdateName() *AssignmentUpsertOne {
	return u.Update(func(s *AssignmentUpsert) {
		s.UpdateName()
	})
}

// SetOpening sets the "opening" field.
func (u *AssignmentUpsertOne) SetOpening(v time.Time) *AssignmentUpsertOne {
	return u.Update(func(s *AssignmentUpsert) {
		s.SetOpening(v)
	})
}

// UpdateOpening sets the "opening" field to the value that was provided on create.
func (u *AssignmentUpsertOne) UpdateOpening() *AssignmentUpsertOne {
	return u.Update(func(s *AssignmentUpsert) {
		s.UpdateOpening()
	})
}

// ClearOpening clears the value of the "opening" field.
func (u *AssignmentUpsertOne) ClearOpening() *AssignmentUpsertOne {
	return u.Update(func(s *AssignmentUpsert) {
		s.ClearOpening()
	})
}

// SetClosing sets the "closing" field.
func (u *AssignmentUpsertOne) SetClosing(v time.Time) *AssignmentUpsertOne {
	return u.Update(func(s *AssignmentUpsert) {
		s.SetClosing(v)
	})
}

// UpdateClosing sets the "closing" field to the value that was provided on create.
func (u *AssignmentUpsertOne) UpdateClosing() *AssignmentUpsertOne {
	return u.Update(func(s *AssignmentUpsert) {
		s.UpdateClosing()
	})
}

// ClearClosing clears the value of the "closing" field.
func (u *AssignmentUpsertOne) ClearClosing() *AssignmentUpsertOne {
	return u.Update(func(s *AssignmentUpsert) {
		s.ClearClosing()
	})
}

// SetCutoff sets the "cutoff" field.
func (u *AssignmentUpsertOne) SetCutoff(v time.Time) *AssignmentUpsertOne {
	return u.Update(func(s *AssignmentUpsert) {
		s.SetCutoff(v)
	})
}

// UpdateCutoff sets the "cutoff" field to the value that was provided on create.
func (u *AssignmentUpsertOne) UpdateCutoff() *AssignmentUpsertOne {
	return u.Update(func(s *AssignmentUpsert) {
		s.UpdateCutoff()
	})
}

// ClearCutoff clears the value of the "cutoff" field.
func (u *AssignmentUpsertOne) ClearCutoff() *AssignmentUpsertOne {
	return u.Update(func(s *AssignmentUpsert) {
		s.ClearCutoff()
	})
}

// Exec executes the query.
func (u *AssignmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AssignmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssignmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AssignmentUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AssignmentUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AssignmentCreateBulk is the builder for creating many Assignment entities in bulk.
type AssignmentCreateBulk struct {
	config
	err      error
	builders []*AssignmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Assignment entities in the database.
func (_c *AssignmentCreateBulk) Save(ctx context.Context) ([]*Assignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssignmentMutation)
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
func (_c *AssignmentCreateBulk) SaveX(ctx context.Context) []*Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Assignment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssignmentUpsert) {
//			SetCourseID(v+v).
//		}).
//		Exec(ctx)
func (_c *AssignmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AssignmentUpsertBulk {
	_c.conflict = opts
	return &AssignmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Assignment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AssignmentCreateBulk) OnConflictColumns(columns ...string) *AssignmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AssignmentUpsertBulk{
		create: _c,
	}
}

// AssignmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Assignment nodes.
type AssignmentUpsertBulk struct {
	create *AssignmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Assignment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(assignment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AssignmentUpsertBulk) UpdateNewValues() *AssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(assignment.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Assignment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AssignmentUpsertBulk) Ignore() *AssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssignmentUpsertBulk) DoNothing() *AssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssignmentCreateBulk.OnConflict
// documentation for more info.
func (u *AssignmentUpsertBulk) Update(set func(*AssignmentUpsert)) *AssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssignmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseID sets the "course_id" field.
func (u *AssignmentUpsertBulk) SetCourseID(v int64) *AssignmentUpsertBulk {
	return u.Update(func(s *AssignmentUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *AssignmentUpsertBulk) UpdateCourseID() *AssignmentUpsertBulk {
	return u.Update(func(s *AssignmentUpsert) {
		s.UpdateCourseID()
	})
}

// SetName sets the "name" field.
func (u *AssignmentUpsertBulk) SetName(v string) *AssignmentUpsertBulk {
	return u.Update(func(s *AssignmentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AssignmentUpsertBulk) UpdateName() *AssignmentUpsertBulk {
	return u.Update(func(s *AssignmentUpsert) {
		s.UpdateName()
	})
}

// SetOpening sets the "opening" field.
func (u *AssignmentUpsertBulk) SetOpening(v time.Time) *AssignmentUpsertBulk {
	return u.Update(func(s *AssignmentUpsert) {
		s.SetOpening(v)
	})
}

// UpdateOpening sets the "opening" field to the value that was provided on create.
func (u *AssignmentUpsertBulk) UpdateOpening() *AssignmentUpsertBulk {
	return u.Update(func(s *AssignmentUpsert) {
		s.UpdateOpening()
	})
}

// ClearOpening clears the value of the "opening" field.
func (u *AssignmentUpsertBulk) ClearOpening() *AssignmentUpsertBulk {
	return u.Update(func(s *AssignmentUpsert) {
		s.ClearOpening()
	})
}

// SetClosing sets the "closing" field.
func (u *AssignmentUpsertBulk) SetClosing(v time.Time) *AssignmentUpsertBulk {
	return u.Update(func(s *AssignmentUpsert) {
		s.SetClosing(v)
	})
}

// UpdateClosing sets the "closing" field to the value that was provided on create.
func (u *AssignmentUpsertBulk) UpdateClosing() *AssignmentUpsertBulk {
	return u.Update(func(s *AssignmentUpsert) {
		s.UpdateClosing()
	})
}

// ClearClosing clears the value of the "closing" field.
func (u *AssignmentUpsertBulk) ClearClosing() *AssignmentUpsertBulk {
	return u.Update(func(s *AssignmentUpsert) {
		s.ClearClosing()
	})
}

// SetCutoff sets the "cutoff" field.
func (u *AssignmentUpsertBulk) SetCutoff(v time.Time) *AssignmentUpsertBulk {
	return u.Update(func(s *AssignmentUpsert) {
		s.SetCutoff(v)
	})
}

// UpdateCutoff sets the "cutoff" field to the value that was provided on create.
func (u *AssignmentUpsertBulk) UpdateCutoff() *AssignmentUpsertBulk {
	return u.Update(func(s *AssignmentUpsert) {
		s.UpdateCutoff()
	})
}

// ClearCutoff clears the value of the "cutoff" field.
func (u *AssignmentUpsertBulk) ClearCutoff() *AssignmentUpsertBulk {
	return u.Update(func(s *AssignmentUpsert) {
		s.ClearCutoff()
	})
}

// Exec executes the query.
func (u *AssignmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AssignmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AssignmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssignmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
