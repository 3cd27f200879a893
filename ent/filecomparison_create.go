// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moodle-tools/simwatch/ent/filecomparison"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
)

// FileComparisonCreate is the builder for creating a FileComparison entity.
type FileComparisonCreate struct {
	config
	mutation *FileComparisonMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOlderFileID sets the "older_file_id" field.
func (_c *FileComparisonCreate) SetOlderFileID(v int) *FileComparisonCreate {
	_c.mutation.SetOlderFileID(v)
	return _c
}

// SetOlderDigestType sets the "older_digest_type" field.
func (_c *FileComparisonCreate) SetOlderDigestType(v string) *FileComparisonCreate {
	_c.mutation.SetOlderDigestType(v)
	return _c
}

// SetNewerFileID sets the "newer_file_id" field.
func (_c *FileComparisonCreate) SetNewerFileID(v int) *FileComparisonCreate {
	_c.mutation.SetNewerFileID(v)
	return _c
}

// SetNewerDigestType sets the "newer_digest_type" field.
func (_c *FileComparisonCreate) SetNewerDigestType(v string) *FileComparisonCreate {
	_c.mutation.SetNewerDigestType(v)
	return _c
}

// SetSimilarityScore sets the "similarity_score" field.
func (_c *FileComparisonCreate) SetSimilarityScore(v float64) *FileComparisonCreate {
	_c.mutation.SetSimilarityScore(v)
	return _c
}

// SetOlderFile sets the "older_file" edge to the SubmittedFile entity.
func (_c *FileComparisonCreate) SetOlderFile(v *SubmittedFile) *FileComparisonCreate {
	return _c.SetOlderFileID(v.ID)
}

// SetNewerFile sets the "newer_file" edge to the SubmittedFile entity.
func (_c *FileComparisonCreate) SetNewerFile(v *SubmittedFile) *FileComparisonCreate {
	return _c.SetNewerFileID(v.ID)
}

// Mutation returns the FileComparisonMutation object of the builder.
func (_c *FileComparisonCreate) Mutation() *FileComparisonMutation {
	return _c.mutation
}

// Save creates the FileComparison in the database.
func (_c *FileComparisonCreate) Save(ctx context.Context) (*FileComparison, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FileComparisonCreate) SaveX(ctx context.Context) *FileComparison {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileComparisonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileComparisonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FileComparisonCreate) check() error {
	if _, ok := _c.mutation.OlderFileID(); !ok {
		return &ValidationError{Name: "older_file_id", err: errors.New(`ent: missing required field "FileComparison.older_file_id"`)}
	}
	if _, ok := _c.mutation.OlderDigestType(); !ok {
		return &ValidationError{Name: "older_digest_type", err: errors.New(`ent: missing required field "FileComparison.older_digest_type"`)}
	}
	if _, ok := _c.mutation.NewerFileID(); !ok {
		return &ValidationError{Name: "newer_file_id", err: errors.New(`ent: missing required field "FileComparison.newer_file_id"`)}
	}
	if _, ok := _c.mutation.NewerDigestType(); !ok {
		return &ValidationError{Name: "newer_digest_type", err: errors.New(`ent: missing required field "FileComparison.newer_digest_type"`)}
	}
	if _, ok := _c.mutation.SimilarityScore(); !ok {
		return &ValidationError{Name: "similarity_score", err: errors.New(`ent: missing required field "FileComparison.similarity_score"`)}
	}
	if v, ok := _c.mutation.SimilarityScore(); ok {
		if err := filecomparison.SimilarityScoreValidator(v); err != nil {
			return &ValidationError{Name: "similarity_score", err: fmt.Errorf(`ent: validator failed for field "FileComparison.similarity_score": %w`, err)}
		}
	}
	if len(_c.mutation.OlderFileIDs()) == 0 {
		return &ValidationError{Name: "older_file", err: errors.New(`ent: missing required edge "FileComparison.older_file"`)}
	}
	if len(_c.mutation.NewerFileIDs()) == 0 {
		return &ValidationError{Name: "newer_file", err: errors.New(`ent: missing required edge "FileComparison.newer_file"`)}
	}
	return nil
}

func (_c *FileComparisonCreate) sqlSave(ctx context.Context) (*FileComparison, error) {
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

func (_c *FileComparisonCreate) createSpec() (*FileComparison, *sqlgraph.CreateSpec) {
	var (
		_node = &FileComparison{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(filecomparison.Table, sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.OlderDigestType(); ok {
		_spec.SetField(filecomparison.FieldOlderDigestType, field.TypeString, value)
		_node.OlderDigestType = value
	}
	if value, ok := _c.mutation.NewerDigestType(); ok {
		_spec.SetField(filecomparison.FieldNewerDigestType, field.TypeString, value)
		_node.NewerDigestType = value
	}
	if value, ok := _c.mutation.SimilarityScore(); ok {
		_spec.SetField(filecomparison.FieldSimilarityScore, field.TypeFloat64, value)
		_node.SimilarityScore = value
	}
	if nodes := _c.mutation.OlderFileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   filecomparison.OlderFileTable,
			Columns: []string{filecomparison.OlderFileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submittedfile.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OlderFileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NewerFileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   filecomparison.NewerFileTable,
			Columns: []string{filecomparison.NewerFileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submittedfile.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.NewerFileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FileComparison.Create().
//		SetOlderFileID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FileComparisonUpsert) {
//			SetOlderFileID(v+v).
//		}).
//		Exec(ctx)
func (_c *FileComparisonCreate) OnConflict(opts ...sql.ConflictOption) *FileComparisonUpsertOne {
	_c.conflict = opts
	return &FileComparisonUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FileComparison.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FileComparisonCreate) OnConflictColumns(columns ...string) *FileComparisonUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FileComparisonUpsertOne{
		create: _c,
	}
}

type (
	// FileComparisonUpsertOne is the builder for "upsert"-ing
	//  one FileComparison node.
	FileComparisonUpsertOne struct {
		create *FileComparisonCreate
	}

	// FileComparisonUpsert is the "OnConflict" setter.
	FileComparisonUpsert struct {
		*sql.UpdateSet
	}
)

// SetOlderFileID sets the "older_file_id" field.
func (u *FileComparisonUpsert) SetOlderFileID(v int) *FileComparisonUpsert {
	u.Set(filecomparison.FieldOlderFileID, v)
	return u
}

// UpdateOlderFileID sets the "older_file_id" field to the value that was provided on create.
func (u *FileComparisonUpsert) UpdateOlderFileID() *FileComparisonUpsert {
	u.SetExcluded(filecomparison.FieldOlderFileID)
	return u
}

// SetOlderDigestType sets the "older_digest_type" field.
func (u *FileComparisonUpsert) SetOlderDigestType(v string) *FileComparisonUpsert {
	u.Set(filecomparison.FieldOlderDigestType, v)
	return u
}

// UpdateOlderDigestType sets the "older_digest_type" field to the value that was provided on create.
func (u *FileComparisonUpsert) UpdateOlderDigestType() *FileComparisonUpsert {
	u.SetExcluded(filecomparison.FieldOlderDigestType)
	return u
}

// SetNewerFileID sets the "newer_file_id" field.
func (u *FileComparisonUpsert) SetNewerFileID(v int) *FileComparisonUpsert {
	u.Set(filecomparison.FieldNewerFileID, v)
	return u
}

// UpdateNewerFileID sets the "newer_file_id" field to the value that was provided on create.
func (u *FileComparisonUpsert) UpdateNewerFileID() *FileComparisonUpsert {
	u.SetExcluded(filecomparison.FieldNewerFileID)
	return u
}

// SetNewerDigestType sets the "newer_digest_type" field.
func (u *FileComparisonUpsert) SetNewerDigestType(v string) *FileComparisonUpsert {
	u.Set(filecomparison.FieldNewerDigestType, v)
	return u
}

// UpdateNewerDigestType sets the "newer_digest_type" field to the value that was provided on create.
func (u *FileComparisonUpsert) UpdateNewerDigestType() *FileComparisonUpsert {
	u.SetExcluded(filecomparison.FieldNewerDigestType)
	return u
}

// SetSimilarityScore sets the "similarity_score" field.
func (u *FileComparisonUpsert) SetSimilarityScore(v float64) *FileComparisonUpsert {
	u.Set(filecomparison.FieldSimilarityScore, v)
	return u
}

// UpdateSimilarityScore sets the "similarity_score" field to the value that was provided on create.
func (u *FileComparisonUpsert) UpdateSimilarityScore() *FileComparisonUpsert {
	u.SetExcluded(filecomparison.FieldSimilarityScore)
	return u
}

// AddSimilarityScore adds v to the "similarity_score" field.
func (u *FileComparisonUpsert) AddSimilarityScore(v float64) *FileComparisonUpsert {
	u.Add(filecomparison.FieldSimilarityScore, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.FileComparison.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FileComparisonUpsertOne) UpdateNewValues() *FileComparisonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FileComparison.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FileComparisonUpsertOne) Ignore() *FileComparisonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FileComparisonUpsertOne) DoNothing() *FileComparisonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FileComparisonCreate.OnConflict
// documentation for more info.
func (u *FileComparisonUpsertOne) Update(set func(*FileComparisonUpsert)) *FileComparisonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FileComparisonUpsert{UpdateSet: update})
	}))
	return u
}

// SetOlderFileID sets the "older_file_id" field.
func (u *FileComparisonUpsertOne) SetOlderFileID(v int) *FileComparisonUpsertOne {
	return u.Update(func(s *FileComparisonUpsert) {
		s.SetOlderFileID(v)
	})
}

// UpdateOlderFileID sets the "older_file_id" field to the value that was provided on create.
func (u *FileComparisonUpsertOne) UpdateOlderFileID() *FileComparisonUpsertOne {
	return u.Update(func(s *FileComparisonUpsert) {
		s.UpdateOlderFileID()
	})
}

// SetOlderDigestType sets the "older_digest_type" field.
func (u *FileComparisonUpsertOne) SetOlderDigestType(v string) *FileComparisonUpsertOne {
	return u.Update(func(s *FileComparisonUpsert) {
		s.SetOlderDigestType(v)
	})
}

// UpdateOlderDigestType sets the "older_digest_type" field to the value that was provided on create.
func (u *FileComparisonUpsertOne) UpdateOlderDigestType() *FileComparisonUpsertOne {
	return u.Update(func(s *FileComparisonUpsert) {
		s.UpdateOlderDigestType()
	})
}

// SetNewerFileID sets the "newer_file_id" field.
func (u *FileComparisonUpsertOne) SetNewerFileID(v int) *FileComparisonUpsertOne {
	return u.Update(func(s *FileComparisonUpsert) {
		s.SetNewerFileID(v)
	})
}

// UpdateNewerFileID sets the "newer_file_id" field to the value that was provided on create.
func (u *FileComparisonUpsertOne) UpdateNewerFileID() *FileComparisonUpsertOne {
	return u.Update(func(s *FileComparisonUpsert) {
		s.UpdateNewerFileID()
	})
}

// SetNewerDigestType sets the "newer_digest_type" field.
func (u *FileComparisonUpsertOne) SetNewerDigestType(v string) *FileComparisonUpsertOne {
	return u.Update(func(s *FileComparisonUpsert) {
		s.SetNewerDigestType(v)
	})
}

// UpdateNewerDigestType sets the "newer_digest_type" field to the value that was provided on create.
func (u *FileComparisonUpsertOne) UpdateNewerDigestType() *FileComparisonUpsertOne {
	return u.Update(func(s *FileComparisonUpsert) {
		s.UpdateNewerDigestType()
	})
}

// SetSimilarityScore sets the "similarity_score" field.
func (u *FileComparisonUpsertOne) SetSimilarityScore(v float64) *FileComparisonUpsertOne {
	return u.Update(func(s *FileComparisonUpsert) {
		s.SetSimilarityScore(v)
	})
}

// AddSimilarityScore adds v to the "similarity_score" field.
func (u *FileComparisonUpsertOne) AddSimilarityScore(v float64) *FileComparisonUpsertOne {
	return u.Update(func(s *FileComparisonUpsert) {
		s.AddSimilarityScore(v)
	})
}

// UpdateSimilarityScore sets the "similarity_score" field to the value that was provided on create.
func (u *FileComparisonUpsertOne) UpdateSimilarityScore() *FileComparisonUpsertOne {
	return u.Update(func(s *FileComparisonUpsert) {
		s.UpdateSimilarityScore()
	})
}

// Exec executes the query.
func (u *FileComparisonUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FileComparisonCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FileComparisonUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FileComparisonUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FileComparisonUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FileComparisonCreateBulk is the builder for creating many FileComparison entities in bulk.
type FileComparisonCreateBulk struct {
	config
	err      error
	builders []*FileComparisonCreate
	conflict []sql.ConflictOption
}

// Save creates the FileComparison entities in the database.
func (_c *FileComparisonCreateBulk) Save(ctx context.Context) ([]*FileComparison, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FileComparison, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FileComparisonMutation)
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
func (_c *FileComparisonCreateBulk) SaveX(ctx context.Context) []*FileComparison {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileComparisonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileComparisonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FileComparison.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FileComparisonUpsert) {
//			SetOlderFileID(v+v).
//		}).
//		Exec(ctx)
func (_c *FileComparisonCreateBulk) OnConflict(opts ...sql.ConflictOption) *FileComparisonUpsertBulk {
	_c.conflict = opts
	return &FileComparisonUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FileComparison.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FileComparisonCreateBulk) OnConflictColumns(columns ...string) *FileComparisonUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FileComparisonUpsertBulk{
		create: _c,
	}
}

// FileComparisonUpsertBulk is the builder for "upsert"-ing
// a bulk of FileComparison nodes.
type FileComparisonUpsertBulk struct {
	create *FileComparisonCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FileComparison.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FileComparisonUpsertBulk) UpdateNewValues() *FileComparisonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FileComparison.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FileComparisonUpsertBulk) Ignore() *FileComparisonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FileComparisonUpsertBulk) DoNothing() *FileComparisonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FileComparisonCreateBulk.OnConflict
// documentation for more info.
func (u *FileComparisonUpsertBulk) Update(set func(*FileComparisonUpsert)) *FileComparisonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FileComparisonUpsert{UpdateSet: update})
	}))
	return u
}

// SetOlderFileID sets the "older_file_id" field.
func (u *FileComparisonUpsertBulk) SetOlderFileID(v int) *FileComparisonUpsertBulk {
	return u.Update(func(s *FileComparisonUpsert) {
		s.SetOlderFileID(v)
	})
}

// UpdateOlderFileID sets the "older_file_id" field to the value that was provided on create.
func (u *FileComparisonUpsertBulk) UpdateOlderFileID() *FileComparisonUpsertBulk {
	return u.Update(func(s *FileComparisonUpsert) {
		s.UpdateOlderFileID()
	})
}

// SetOlderDigestType sets the "older_digest_type" field.
func (u *FileComparisonUpsertBulk) SetOlderDigestType(v string) *FileComparisonUpsertBulk {
	return u.Update(func(s *FileComparisonUpsert) {
		s.SetOlderDigestType(v)
	})
}

// UpdateOlderDigestType sets the "older_digest_type" field to the value that was provided on create.
func (u *FileComparisonUpsertBulk) UpdateOlderDigestType() *FileComparisonUpsertBulk {
	return u.Update(func(s *FileComparisonUpsert) {
		s.UpdateOlderDigestType()
	})
}

// SetNewerFileID sets the "newer_file_id" field.
func (u *FileComparisonUpsertBulk) SetNewerFileID(v int) *FileComparisonUpsertBulk {
	return u.Update(func(s *FileComparisonUpsert) {
		s.SetNewerFileID(v)
	})
}

// UpdateNewerFileID sets the "newer_file_id" field to the value that was provided on create.
func (u *FileComparisonUpsertBulk) UpdateNewerFileID() *FileComparisonUpsertBulk {
	return u.Update(func(s *FileComparisonUpsert) {
		s.UpdateNewerFileID()
	})
}

// SetNewerDigestType sets the "newer_digest_type" field.
func (u *FileComparisonUpsertBulk) SetNewerDigestType(v string) *FileComparisonUpsertBulk {
	return u.Update(func(s *FileComparisonUpsert) {
		s.SetNewerDigestType(v)
	})
}

// UpdateNewerDigestType sets the "newer_digest_type" field to the value that was provided on create.
func (u *FileComparisonUpsertBulk) UpdateNewerDigestType() *FileComparisonUpsertBulk {
	return u.Update(func(s *FileComparisonUpsert) {
		s.UpdateNewerDigestType()
	})
}

// SetSimilarityScore sets the "similarity_score" field.
func (u *FileComparisonUpsertBulk) SetSimilarityScore(v float64) *FileComparisonUpsertBulk {
	return u.Update(func(s *FileComparisonUpsert) {
		s.SetSimilarityScore(v)
	})
}

// AddSimilarityScore adds v to the "similarity_score" field.
func (u *FileComparisonUpsertBulk) AddSimilarityScore(v float64) *FileComparisonUpsertBulk {
	return u.Update(func(s *FileComparisonUpsert) {
		s.AddSimilarityScore(v)
	})
}

// UpdateSimilarityScore sets the "similarity_score" field to the value that was provided on create.
func (u *FileComparisonUpsertBulk) UpdateSimilarityScore() *FileComparisonUpsertBulk {
	return u.Update(func(s *FileComparisonUpsert) {
		s.UpdateSimilarityScore()
	})
}

// Exec executes the query.
func (u *FileComparisonUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FileComparisonCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FileComparisonCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FileComparisonUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
