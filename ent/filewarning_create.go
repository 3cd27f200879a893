// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moodle-tools/simwatch/ent/filewarning"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
)

// FileWarningCreate is the builder for creating a FileWarning entity.
type FileWarningCreate struct {
	config
	mutation *FileWarningMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFileID sets the "file_id" field.
func (_c *FileWarningCreate) SetFileID(v int) *FileWarningCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetWarningType sets the "warning_type" field.
func (_c *FileWarningCreate) SetWarningType(v string) *FileWarningCreate {
	_c.mutation.SetWarningType(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *FileWarningCreate) SetMessage(v string) *FileWarningCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetFile sets the "file" edge to the SubmittedFile entity.
func (_c *FileWarningCreate) SetFile(v *SubmittedFile) *FileWarningCreate {
	return _c.SetFileID(v.ID)
}

// Mutation returns the FileWarningMutation object of the builder.
func (_c *FileWarningCreate) Mutation() *FileWarningMutation {
	return _c.mutation
}

// Save creates the FileWarning in the database.
func (_c *FileWarningCreate) Save(ctx context.Context) (*FileWarning, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FileWarningCreate) SaveX(ctx context.Context) *FileWarning {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileWarningCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileWarningCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FileWarningCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "FileWarning.file_id"`)}
	}
	if _, ok := _c.mutation.WarningType(); !ok {
		return &ValidationError{Name: "warning_type", err: errors.New(`ent: missing required field "FileWarning.warning_type"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "FileWarning.message"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "FileWarning.file"`)}
	}
	return nil
}

func (_c *FileWarningCreate) sqlSave(ctx context.Context) (*FileWarning, error) {
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

func (_c *FileWarningCreate) createSpec() (*FileWarning, *sqlgraph.CreateSpec) {
	var (
		_node = &FileWarning{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(filewarning.Table, sqlgraph.NewFieldSpec(filewarning.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.WarningType(); ok {
		_spec.SetField(filewarning.FieldWarningType, field.TypeString, value)
		_node.WarningType = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(filewarning.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   filewarning.FileTable,
			Columns: []string{filewarning.FileColumn},
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
//	client.FileWarning.Create().
//		SetFileID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FileWarningUpsert) {
//			SetFileID(v+v).
//		}).
//		Exec(ctx)
func (_c *FileWarningCreate) OnConflict(opts ...sql.ConflictOption) *FileWarningUpsertOne {
	_c.conflict = opts
	return &FileWarningUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FileWarning.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FileWarningCreate) OnConflictColumns(columns ...string) *FileWarningUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FileWarningUpsertOne{
		create: _c,
	}
}

type (
	// FileWarningUpsertOne is the builder for "upsert"-ing
	//  one FileWarning node.
	FileWarningUpsertOne struct {
		create *FileWarningCreate
	}

	// FileWarningUpsert is the "OnConflict" setter.
	FileWarningUpsert struct {
		*sql.UpdateSet
	}
)

// SetFileID sets the "file_id" field.
func (u *FileWarningUpsert) SetFileID(v int) *FileWarningUpsert {
	u.Set(filewarning.FieldFileID, v)
	return u
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *FileWarningUpsert) UpdateFileID() *FileWarningUpsert {
	u.SetExcluded(filewarning.FieldFileID)
	return u
}

// SetWarningType sets the "warning_type" field.
func (u *FileWarningUpsert) SetWarningType(v string) *FileWarningUpsert {
	u.Set(filewarning.FieldWarningType, v)
	return u
}

// UpdateWarningType sets the "warning_type" field to the value that was provided on create.
func (u *FileWarningUpsert) UpdateWarningType() *FileWarningUpsert {
	u.SetExcluded(filewarning.FieldWarningType)
	return u
}

// SetMessage sets the "message" field.
func (u *FileWarningUpsert) SetMessage(v string) *FileWarningUpsert {
	u.Set(filewarning.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *FileWarningUpsert) UpdateMessage() *FileWarningUpsert {
	u.SetExcluded(filewarning.FieldMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.FileWarning.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FileWarningUpsertOne) UpdateNewValues() *FileWarningUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FileWarning.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FileWarningUpsertOne) Ignore() *FileWarningUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FileWarningUpsertOne) DoNothing() *FileWarningUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FileWarningCreate.OnConflict
// documentation for more info.
func (u *FileWarningUpsertOne) Update(set func(*FileWarningUpsert)) *FileWarningUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FileWarningUpsert{UpdateSet: update})
	}))
	return u
}

// SetFileID sets the "file_id" field.
func (u *FileWarningUpsertOne) SetFileID(v int) *FileWarningUpsertOne {
	return u.Update(func(s *FileWarningUpsert) {
		s.SetFileID(v)
	})
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *FileWarningUpsertOne) UpdateFileID() *FileWarningUpsertOne {
	return u.Update(func(s *FileWarningUpsert) {
		s.UpdateFileID()
	})
}

// SetWarningType sets the "warning_type" field.
func (u *FileWarningUpsertOne) SetWarningType(v string) *FileWarningUpsertOne {
	return u.Update(func(s *FileWarningUpsert) {
		s.SetWarningType(v)
	})
}

// UpdateWarningType sets the "warning_type" field to the value that was provided on create.
func (u *FileWarningUpsertOne) UpdateWarningType() *FileWarningUpsertOne {
	return u.Update(func(s *FileWarningUpsert) {
		s.UpdateWarningType()
	})
}

// SetMessage sets the "message" field.
func (u *FileWarningUpsertOne) SetMessage(v string) *FileWarningUpsertOne {
	return u.Update(func(s *FileWarningUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *FileWarningUpsertOne) UpdateMessage() *FileWarningUpsertOne {
	return u.Update(func(s *FileWarningUpsert) {
		s.UpdateMessage()
	})
}

// Exec executes the query.
func (u *FileWarningUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FileWarningCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FileWarningUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FileWarningUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FileWarningUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FileWarningCreateBulk is the builder for creating many FileWarning entities in bulk.
type FileWarningCreateBulk struct {
	config
	err      error
	builders []*FileWarningCreate
	conflict []sql.ConflictOption
}

// Save creates the FileWarning entities in the database.
func (_c *FileWarningCreateBulk) Save(ctx context.Context) ([]*FileWarning, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FileWarning, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FileWarningMutation)
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
func (_c *FileWarningCreateBulk) SaveX(ctx context.Context) []*FileWarning {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileWarningCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileWarningCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FileWarning.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FileWarningUpsert) {
//			SetFileID(v+v).
//		}).
//		Exec(ctx)
func (_c *FileWarningCreateBulk) OnConflict(opts ...sql.ConflictOption) *FileWarningUpsertBulk {
	_c.conflict = opts
	return &FileWarningUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FileWarning.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FileWarningCreateBulk) OnConflictColumns(columns ...string) *FileWarningUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FileWarningUpsertBulk{
		create: _c,
	}
}

// FileWarningUpsertBulk is the builder for "upsert"-ing
// a bulk of FileWarning nodes.
type FileWarningUpsertBulk struct {
	create *FileWarningCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FileWarning.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FileWarningUpsertBulk) UpdateNewValues() *FileWarningUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FileWarning.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FileWarningUpsertBulk) Ignore() *FileWarningUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FileWarningUpsertBulk) DoNothing() *FileWarningUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FileWarningCreateBulk.OnConflict
// documentation for more info.
func (u *FileWarningUpsertBulk) Update(set func(*FileWarningUpsert)) *FileWarningUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FileWarningUpsert{UpdateSet: update})
	}))
	return u
}

// SetFileID sets the "file_id" field.
func (u *FileWarningUpsertBulk) SetFileID(v int) *FileWarningUpsertBulk {
	return u.Update(func(s *FileWarningUpsert) {
		s.SetFileID(v)
	})
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *FileWarningUpsertBulk) UpdateFileID() *FileWarningUpsertBulk {
	return u.Update(func(s *FileWarningUpsert) {
		s.UpdateFileID()
	})
}

// SetWarningType sets the "warning_type" field.
func (u *FileWarningUpsertBulk) SetWarningType(v string) *FileWarningUpsertBulk {
	return u.Update(func(s *FileWarningUpsert) {
		s.SetWarningType(v)
	})
}

// UpdateWarningType sets the "warning_type" field to the value that was provided on create.
func (u *FileWarningUpsertBulk) UpdateWarningType() *FileWarningUpsertBulk {
	return u.Update(func(s *FileWarningUpsert) {
		s.UpdateWarningType()
	})
}

// SetMessage sets the "message" field.
func (u *FileWarningUpsertBulk) SetMessage(v string) *FileWarningUpsertBulk {
	return u.Update(func(s *FileWarningUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *FileWarningUpsertBulk) UpdateMessage() *FileWarningUpsertBulk {
	return u.Update(func(s *FileWarningUpsert) {
		s.UpdateMessage()
	})
}

// Exec executes the query.
func (u *FileWarningUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FileWarningCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FileWarningCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FileWarningUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
