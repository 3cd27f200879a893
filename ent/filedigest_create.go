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
	"github.com/moodle-tools/simwatch/ent/filedigest"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
)

// FileDigestCreate is the builder for creating a FileDigest entity.
type FileDigestCreate struct {
	config
	mutation *FileDigestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFileID sets the "file_id" field.
func (_c *FileDigestCreate) SetFileID(v int) *FileDigestCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetDigestType sets the "digest_type" field.
func (_c *FileDigestCreate) SetDigestType(v string) *FileDigestCreate {
	_c.mutation.SetDigestType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *FileDigestCreate) SetContent(v []byte) *FileDigestCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreated sets the "created" field.
func (_c *FileDigestCreate) SetCreated(v time.Time) *FileDigestCreate {
	_c.mutation.SetCreated(v)
	return _c
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *FileDigestCreate) SetAssignmentID(v int64) *FileDigestCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetSubmissionID sets the "submission_id" field.
func (_c *FileDigestCreate) SetSubmissionID(v int64) *FileDigestCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *FileDigestCreate) SetUserID(v int64) *FileDigestCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetUploaded sets the "uploaded" field.
func (_c *FileDigestCreate) SetUploaded(v time.Time) *FileDigestCreate {
	_c.mutation.SetUploaded(v)
	return _c
}

// SetFile sets the "file" edge to the SubmittedFile entity.
func (_c *FileDigestCreate) SetFile(v *SubmittedFile) *FileDigestCreate {
	return _c.SetFileID(v.ID)
}

// Mutation returns the FileDigestMutation object of the builder.
func (_c *FileDigestCreate) Mutation() *FileDigestMutation {
	return _c.mutation
}

// Save creates the FileDigest in the database.
func (_c *FileDigestCreate) Save(ctx context.Context) (*FileDigest, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FileDigestCreate) SaveX(ctx context.Context) *FileDigest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileDigestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileDigestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FileDigestCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "FileDigest.file_id"`)}
	}
	if _, ok := _c.mutation.DigestType(); !ok {
		return &ValidationError{Name: "digest_type", err: errors.New(`ent: missing required field "FileDigest.digest_type"`)}
	}
	if _, ok := _c.mutation.Created(); !ok {
		return &ValidationError{Name: "created", err: errors.New(`ent: missing required field "FileDigest.created"`)}
	}
	if _, ok := _c.mutation.AssignmentID(); !ok {
		return &ValidationError{Name: "assignment_id", err: errors.New(`ent: missing required field "FileDigest.assignment_id"`)}
	}
	if _, ok := _c.mutation.SubmissionID(); !ok {
		return &ValidationError{Name: "submission_id", err: errors.New(`ent: missing required field "FileDigest.submission_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "FileDigest.user_id"`)}
	}
	if _, ok := _c.mutation.Uploaded(); !ok {
		return &ValidationError{Name: "uploaded", err: errors.New(`ent: missing required field "FileDigest.uploaded"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "FileDigest.file"`)}
	}
	return nil
}

func (_c *FileDigestCreate) sqlSave(ctx context.Context) (*FileDigest, error) {
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

func (_c *FileDigestCreate) createSpec() (*FileDigest, *sqlgraph.CreateSpec) {
	var (
		_node = &FileDigest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(filedigest.Table, sqlgraph.NewFieldSpec(filedigest.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.DigestType(); ok {
		_spec.SetField(filedigest.FieldDigestType, field.TypeString, value)
		_node.DigestType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(filedigest.FieldContent, field.TypeBytes, value)
		_node.Content = &value
	}
	if value, ok := _c.mutation.Created(); ok {
		_spec.SetField(filedigest.FieldCreated, field.TypeTime, value)
		_node.Created = value
	}
	if value, ok := _c.mutation.AssignmentID(); ok {
		_spec.SetField(filedigest.FieldAssignmentID, field.TypeInt64, value)
		_node.AssignmentID = value
	}
	if value, ok := _c.mutation.SubmissionID(); ok {
		_spec.SetField(filedigest.FieldSubmissionID, field.TypeInt64, value)
		_node.SubmissionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(filedigest.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Uploaded(); ok {
		_spec.SetField(filedigest.FieldUploaded, field.TypeTime, value)
		_node.Uploaded = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   filedigest.FileTable,
			Columns: []string{filedigest.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submittedfile.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FileDigest.Create().
//		SetFileID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FileDigestUpsert) {
//			SetFileID(v+v).
//		}).
//		Exec(ctx)
func (_c *FileDigestCreate) OnConflict(opts ...sql.ConflictOption) *FileDigestUpsertOne {
	_c.conflict = opts
	return &FileDigestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FileDigest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FileDigestCreate) OnConflictColumns(columns ...string) *FileDigestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FileDigestUpsertOne{
		create: _c,
	}
}

type (
	// FileDigestUpsertOne is the builder for "upsert"-ing
	//  one FileDigest node.
	FileDigestUpsertOne struct {
		create *FileDigestCreate
	}

	// FileDigestUpsert is the "OnConflict" setter.
	FileDigestUpsert struct {
		*sql.UpdateSet
	}
)

// SetFileID sets the "file_id" field.
func (u *FileDigestUpsert) SetFileID(v int) *FileDigestUpsert {
	u.Set(filedigest.FieldFileID, v)
	return u
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *FileDigestUpsert) UpdateFileID() *FileDigestUpsert {
	u.SetExcluded(filedigest.FieldFileID)
	return u
}

// SetDigestType sets the "digest_type" field.
func (u *FileDigestUpsert) SetDigestType(v string) *FileDigestUpsert {
	u.Set(filedigest.FieldDigestType, v)
	return u
}

// UpdateDigestType sets the "digest_type" field to the value that was provided on create.
func (u *FileDigestUpsert) UpdateDigestType() *FileDigestUpsert {
	u.SetExcluded(filedigest.FieldDigestType)
	return u
}

// SetContent sets the "content" field.
func (u *FileDigestUpsert) SetContent(v []byte) *FileDigestUpsert {
	u.Set(filedigest.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *FileDigestUpsert) UpdateContent() *FileDigestUpsert {
	u.SetExcluded(filedigest.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *FileDigestUpsert) ClearContent() *FileDigestUpsert {
	u.SetNull(filedigest.FieldContent)
	return u
}

// SetCreated sets the "created" field.
func (u *FileDigestUpsert) SetCreated(v time.Time) *FileDigestUpsert {
	u.Set(filedigest.FieldCreated, v)
	return u
}

// UpdateCreated sets the "created" field to the value that was provided on create.
func (u *FileDigestUpsert) UpdateCreated() *FileDigestUpsert {
	u.SetExcluded(filedigest.FieldCreated)
	return u
}

// SetAssignmentID sets the "assignment_id" field.
func (u *FileDigestUpsert) SetAssignmentID(v int64) *FileDigestUpsert {
	u.Set(filedigest.FieldAssignmentID, v)
	return u
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *FileDigestUpsert) UpdateAssignmentID() *FileDigestUpsert {
	u.SetExcluded(filedigest.FieldAssignmentID)
	return u
}

// AddAssignmentID adds v to the "assignment_id" field.
func (u *FileDigestUpsert) AddAssignmentID(v int64) *FileDigestUpsert {
	u.Add(filedigest.FieldAssignmentID, v)
	return u
}

// SetSubmissionID sets the "submission_id" field.
func (u *FileDigestUpsert) SetSubmissionID(v int64) *FileDigestUpsert {
	u.Set(filedigest.FieldSubmissionID, v)
	return u
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *FileDigestUpsert) UpdateSubmissionID() *FileDigestUpsert {
	u.SetExcluded(filedigest.FieldSubmissionID)
	return u
}

// AddSubmissionID adds v to the "submission_id" field.
func (u *FileDigestUpsert) AddSubmissionID(v int64) *FileDigestUpsert {
	u.Add(filedigest.FieldSubmissionID, v)
	return u
}

// SetUserID sets the "user_id" field.
func (u *FileDigestUpsert) SetUserID(v int64) *FileDigestUpsert {
	u.Set(filedigest.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FileDigestUpsert) UpdateUserID() *FileDigestUpsert {
	u.SetExcluded(filedigest.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *FileDigestUpsert) AddUserID(v int64) *FileDigestUpsert {
	u.Add(filedigest.FieldUserID, v)
	return u
}

// SetUploaded sets the "uploaded" field.
func (u *FileDigestUpsert) SetUploaded(v time.Time) *FileDigestUpsert {
	u.Set(filedigest.FieldUploaded, v)
	return u
}

// UpdateUploaded sets the "uploaded" field to the value that was provided on create.
func (u *FileDigestUpsert) UpdateUploaded() *FileDigestUpsert {
	u.SetExcluded(filedigest.FieldUploaded)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.FileDigest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FileDigestUpsertOne) UpdateNewValues() *FileDigestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FileDigest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FileDigestUpsertOne) Ignore() *FileDigestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FileDigestUpsertOne) DoNothing() *FileDigestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FileDigestCreate.OnConflict
// documentation for more info.
func (u *FileDigestUpsertOne) Update(set func(*FileDigestUpsert)) *FileDigestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FileDigestUpsert{UpdateSet: update})
	}))
	return u
}

// SetFileID sets the "file_id" field.
func (u *FileDigestUpsertOne) SetFileID(v int) *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetFileID(v)
	})
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *FileDigestUpsertOne) UpdateFileID() *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateFileID()
	})
}

// SetDigestType sets the "digest_type" field.
func (u *FileDigestUpsertOne) SetDigestType(v string) *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetDigestType(v)
	})
}

// UpdateDigestType sets the "digest_type" field to the value that was provided on create.
func (u *FileDigestUpsertOne) UpdateDigestType() *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateDigestType()
	})
}

// SetContent sets the "content" field.
func (u *FileDigestUpsertOne) SetContent(v []byte) *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *FileDigestUpsertOne) UpdateContent() *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *FileDigestUpsertOne) ClearContent() *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.ClearContent()
	})
}

// SetCreated sets the "created" field.
func (u *FileDigestUpsertOne) SetCreated(v time.Time) *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetCreated(v)
	})
}

// UpdateCreated sets the "created" field to the value that was provided on create.
func (u *FileDigestUpsertOne) UpdateCreated() *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateCreated()
	})
}

// SetAssignmentID sets the "assignment_id" field.
func (u *FileDigestUpsertOne) SetAssignmentID(v int64) *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetAssignmentID(v)
	})
}

// AddAssignmentID adds v to the "assignment_id" field.
func (u *FileDigestUpsertOne) AddAssignmentID(v int64) *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.AddAssignmentID(v)
	})
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *FileDigestUpsertOne) UpdateAssignmentID() *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateAssignmentID()
	})
}

// SetSubmissionID sets the "submission_id" field.
func (u *FileDigestUpsertOne) SetSubmissionID(v int64) *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetSubmissionID(v)
	})
}

// AddSubmissionID adds v to the "submission_id" field.
func (u *FileDigestUpsertOne) AddSubmissionID(v int64) *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.AddSubmissionID(v)
	})
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *FileDigestUpsertOne) UpdateSubmissionID() *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateSubmissionID()
	})
}

// SetUserID sets the "user_id" field.
func (u *FileDigestUpsertOne) SetUserID(v int64) *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *FileDigestUpsertOne) AddUserID(v int64) *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FileDigestUpsertOne) UpdateUserID() *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateUserID()
	})
}

// SetUploaded sets the "uploaded" field.
func (u *FileDigestUpsertOne) SetUploaded(v time.Time) *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetUploaded(v)
	})
}

// UpdateUploaded sets the "uploaded" field to the value that was provided on create.
func (u *FileDigestUpsertOne) UpdateUploaded() *FileDigestUpsertOne {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateUploaded()
	})
}

// Exec executes the query.
func (u *FileDigestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FileDigestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FileDigestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FileDigestUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FileDigestUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FileDigestCreateBulk is the builder for creating many FileDigest entities in bulk.
type FileDigestCreateBulk struct {
	config
	err      error
	builders []*FileDigestCreate
	conflict []sql.ConflictOption
}

// Save creates the FileDigest entities in the database.
func (_c *FileDigestCreateBulk) Save(ctx context.Context) ([]*FileDigest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FileDigest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FileDigestMutation)
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
func (_c *FileDigestCreateBulk) SaveX(ctx context.Context) []*FileDigest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileDigestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileDigestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FileDigest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FileDigestUpsert) {
//			SetFileID(v+v).
//		}).
//		Exec(ctx)
func (_c *FileDigestCreateBulk) OnConflict(opts ...sql.ConflictOption) *FileDigestUpsertBulk {
	_c.conflict = opts
	return &FileDigestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FileDigest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FileDigestCreateBulk) OnConflictColumns(columns ...string) *FileDigestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FileDigestUpsertBulk{
		create: _c,
	}
}

// FileDigestUpsertBulk is the builder for "upsert"-ing
// a bulk of FileDigest nodes.
type FileDigestUpsertBulk struct {
	create *FileDigestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FileDigest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FileDigestUpsertBulk) UpdateNewValues() *FileDigestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FileDigest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FileDigestUpsertBulk) Ignore() *FileDigestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FileDigestUpsertBulk) DoNothing() *FileDigestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FileDigestCreateBulk.OnConflict
// documentation for more info.
func (u *FileDigestUpsertBulk) Update(set func(*FileDigestUpsert)) *FileDigestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FileDigestUpsert{UpdateSet: update})
	}))
	return u
}

// SetFileID sets the "file_id" field.
func (u *FileDigestUpsertBulk) SetFileID(v int) *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetFileID(v)
	})
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *FileDigestUpsertBulk) UpdateFileID() *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateFileID()
	})
}

// SetDigestType sets the "digest_type" field.
func (u *FileDigestUpsertBulk) SetDigestType(v string) *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetDigestType(v)
	})
}

// UpdateDigestType sets the "digest_type" field to the value that was provided on create.
func (u *FileDigestUpsertBulk) UpdateDigestType() *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateDigestType()
	})
}

// SetContent sets the "content" field.
func (u *FileDigestUpsertBulk) SetContent(v []byte) *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *FileDigestUpsertBulk) UpdateContent() *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *FileDigestUpsertBulk) ClearContent() *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.ClearContent()
	})
}

// SetCreated sets the "created" field.
func (u *FileDigestUpsertBulk) SetCreated(v time.Time) *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetCreated(v)
	})
}

// UpdateCreated sets the "created" field to the value that was provided on create.
func (u *FileDigestUpsertBulk) UpdateCreated() *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateCreated()
	})
}

// SetAssignmentID sets the "assignment_id" field.
func (u *FileDigestUpsertBulk) SetAssignmentID(v int64) *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetAssignmentID(v)
	})
}

// AddAssignmentID adds v to the "assignment_id" field.
func (u *FileDigestUpsertBulk) AddAssignmentID(v int64) *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.AddAssignmentID(v)
	})
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *FileDigestUpsertBulk) UpdateAssignmentID() *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateAssignmentID()
	})
}

// SetSubmissionID sets the "submission_id" field.
func (u *FileDigestUpsertBulk) SetSubmissionID(v int64) *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetSubmissionID(v)
	})
}

// AddSubmissionID adds v to the "submission_id" field.
func (u *FileDigestUpsertBulk) AddSubmissionID(v int64) *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.AddSubmissionID(v)
	})
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *FileDigestUpsertBulk) UpdateSubmissionID() *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateSubmissionID()
	})
}

// SetUserID sets the "user_id" field.
func (u *FileDigestUpsertBulk) SetUserID(v int64) *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *FileDigestUpsertBulk) AddUserID(v int64) *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FileDigestUpsertBulk) UpdateUserID() *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateUserID()
	})
}

// SetUploaded sets the "uploaded" field.
func (u *FileDigestUpsertBulk) SetUploaded(v time.Time) *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.SetUploaded(v)
	})
}

// UpdateUploaded sets the "uploaded" field to the value that was provided on create.
func (u *FileDigestUpsertBulk) UpdateUploaded() *FileDigestUpsertBulk {
	return u.Update(func(s *FileDigestUpsert) {
		s.UpdateUploaded()
	})
}

// Exec executes the query.
func (u *FileDigestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FileDigestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FileDigestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FileDigestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
