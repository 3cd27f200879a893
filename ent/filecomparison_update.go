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
	"github.com/moodle-tools/simwatch/ent/predicate"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
)

// FileComparisonUpdate is the builder for updating FileComparison entities.
type FileComparisonUpdate struct {
	config
	hooks    []Hook
	mutation *FileComparisonMutation
}

// Where appends a list predicates to the FileComparisonUpdate builder.
func (_u *FileComparisonUpdate) Where(ps ...predicate.FileComparison) *FileComparisonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOlderFileID sets the "older_file_id" field.
func (_u *FileComparisonUpdate) SetOlderFileID(v int) *FileComparisonUpdate {
	_u.mutation.SetOlderFileID(v)
	return _u
}

// SetNillableOlderFileID sets the "older_file_id" field if the given value is not nil.
func (_u *FileComparisonUpdate) SetNillableOlderFileID(v *int) *FileComparisonUpdate {
	if v != nil {
		_u.SetOlderFileID(*v)
	}
	return _u
}

// SetOlderDigestType sets the "older_digest_type" field.
func (_u *FileComparisonUpdate) SetOlderDigestType(v string) *FileComparisonUpdate {
	_u.mutation.SetOlderDigestType(v)
	return _u
}

// SetNillableOlderDigestType sets the "older_digest_type" field if the given value is not nil.
func (_u *FileComparisonUpdate) SetNillableOlderDigestType(v *string) *FileComparisonUpdate {
	if v != nil {
		_u.SetOlderDigestType(*v)
	}
	return _u
}

// SetNewerFileID sets the "newer_file_id" field.
func (_u *FileComparisonUpdate) SetNewerFileID(v int) *FileComparisonUpdate {
	_u.mutation.SetNewerFileID(v)
	return _u
}

// SetNillableNewerFileID sets the "newer_file_id" field if the given value is not nil.
func (_u *FileComparisonUpdate) SetNillableNewerFileID(v *int) *FileComparisonUpdate {
	if v != nil {
		_u.SetNewerFileID(*v)
	}
	return _u
}

// SetNewerDigestType sets the "newer_digest_type" field.
func (_u *FileComparisonUpdate) SetNewerDigestType(v string) *FileComparisonUpdate {
	_u.mutation.SetNewerDigestType(v)
	return _u
}

// SetNillableNewerDigestType sets the "newer_digest_type" field if the given value is not nil.
func (_u *FileComparisonUpdate) SetNillableNewerDigestType(v *string) *FileComparisonUpdate {
	if v != nil {
		_u.SetNewerDigestType(*v)
	}
	return _u
}

// SetSimilarityScore sets the "similarity_score" field.
func (_u *FileComparisonUpdate) SetSimilarityScore(v float64) *FileComparisonUpdate {
	_u.mutation.ResetSimilarityScore()
	_u.mutation.SetSimilarityScore(v)
	return _u
}

// SetNillableSimilarityScore sets the "similarity_score" field if the given value is not nil.
func (_u *FileComparisonUpdate) SetNillableSimilarityScore(v *float64) *FileComparisonUpdate {
	if v != nil {
		_u.SetSimilarityScore(*v)
	}
	return _u
}

// AddSimilarityScore adds value to the "similarity_score" field.
func (_u *FileComparisonUpdate) AddSimilarityScore(v float64) *FileComparisonUpdate {
	_u.mutation.AddSimilarityScore(v)
	return _u
}

// SetOlderFile sets the "older_file" edge to the SubmittedFile entity.
func (_u *FileComparisonUpdate) SetOlderFile(v *SubmittedFile) *FileComparisonUpdate {
	return _u.SetOlderFileID(v.ID)
}

// SetNewerFile sets the "newer_file" edge to the SubmittedFile entity.
func (_u *FileComparisonUpdate) SetNewerFile(v *SubmittedFile) *FileComparisonUpdate {
	return _u.SetNewerFileID(v.ID)
}

// Mutation returns the FileComparisonMutation object of the builder.
func (_u *FileComparisonUpdate) Mutation() *FileComparisonMutation {
	return _u.mutation
}

// ClearOlderFile clears the "older_file" edge to the SubmittedFile entity.
func (_u *FileComparisonUpdate) ClearOlderFile() *FileComparisonUpdate {
	_u.mutation.ClearOlderFile()
	return _u
}

// ClearNewerFile clears the "newer_file" edge to the SubmittedFile entity.
func (_u *FileComparisonUpdate) ClearNewerFile() *FileComparisonUpdate {
	_u.mutation.ClearNewerFile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FileComparisonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileComparisonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FileComparisonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileComparisonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileComparisonUpdate) check() error {
	if v, ok := _u.mutation.SimilarityScore(); ok {
		if err := filecomparison.SimilarityScoreValidator(v); err != nil {
			return &ValidationError{Name: "similarity_score", err: fmt.Errorf(`ent: validator failed for field "FileComparison.similarity_score": %w`, err)}
		}
	}
	if _u.mutation.OlderFileCleared() && len(_u.mutation.OlderFileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileComparison.older_file"`)
	}
	if _u.mutation.NewerFileCleared() && len(_u.mutation.NewerFileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileComparison.newer_file"`)
	}
	return nil
}

func (_u *FileComparisonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filecomparison.Table, filecomparison.Columns, sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OlderDigestType(); ok {
		_spec.SetField(filecomparison.FieldOlderDigestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewerDigestType(); ok {
		_spec.SetField(filecomparison.FieldNewerDigestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SimilarityScore(); ok {
		_spec.SetField(filecomparison.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarityScore(); ok {
		_spec.AddField(filecomparison.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if _u.mutation.OlderFileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OlderFileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NewerFileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NewerFileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filecomparison.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FileComparisonUpdateOne is the builder for updating a single FileComparison entity.
type FileComparisonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileComparisonMutation
}

// SetOlderFileID sets the "older_file_id" field.
func (_u *FileComparisonUpdateOne) SetOlderFileID(v int) *FileComparisonUpdateOne {
	_u.mutation.SetOlderFileID(v)
	return _u
}

// SetNillableOlderFileID sets the "older_file_id" field if the given value is not nil.
func (_u *FileComparisonUpdateOne) SetNillableOlderFileID(v *int) *FileComparisonUpdateOne {
	if v != nil {
		_u.SetOlderFileID(*v)
	}
	return _u
}

// SetOlderDigestType sets the "older_digest_type" field.
func (_u *FileComparisonUpdateOne) SetOlderDigestType(v string) *FileComparisonUpdateOne {
	_u.mutation.SetOlderDigestType(v)
	return _u
}

// SetNillableOlderDigestType sets the "older_digest_type" field if the given value is not nil.
func (_u *FileComparisonUpdateOne) SetNillableOlderDigestType(v *string) *FileComparisonUpdateOne {
	if v != nil {
		_u.SetOlderDigestType(*v)
	}
	return _u
}

// SetNewerFileID sets the "newer_file_id" field.
func (_u *FileComparisonUpdateOne) SetNewerFileID(v int) *FileComparisonUpdateOne {
	_u.mutation.SetNewerFileID(v)
	return _u
}

// SetNillableNewerFileID sets the "newer_file_id" field if the given value is not nil.
func (_u *FileComparisonUpdateOne) SetNillableNewerFileID(v *int) *FileComparisonUpdateOne {
	if v != nil {
		_u.SetNewerFileID(*v)
	}
	return _u
}

// SetNewerDigestType sets the "newer_digest_type" field.
func (_u *FileComparisonUpdateOne) SetNewerDigestType(v string) *FileComparisonUpdateOne {
	_u.mutation.SetNewerDigestType(v)
	return _u
}

// SetNillableNewerDigestType sets the "newer_digest_type" field if the given value is not nil.
func (_u *FileComparisonUpdateOne) SetNillableNewerDigestType(v *string) *FileComparisonUpdateOne {
	if v != nil {
		_u.SetNewerDigestType(*v)
	}
	return _u
}

// SetSimilarityScore sets the "similarity_score" field.
func (_u *FileComparisonUpdateOne) SetSimilarityScore(v float64) *FileComparisonUpdateOne {
	_u.mutation.ResetSimilarityScore()
	_u.mutation.SetSimilarityScore(v)
	return _u
}

// SetNillableSimilarityScore sets the "similarity_score" field if the given value is not nil.
func (_u *FileComparisonUpdateOne) SetNillableSimilarityScore(v *float64) *FileComparisonUpdateOne {
	if v != nil {
		_u.SetSimilarityScore(*v)
	}
	return _u
}

// AddSimilarityScore adds value to the "similarity_score" field.
func (_u *FileComparisonUpdateOne) AddSimilarityScore(v float64) *FileComparisonUpdateOne {
	_u.mutation.AddSimilarityScore(v)
	return _u
}

// SetOlderFile sets the "older_file" edge to the SubmittedFile entity.
func (_u *FileComparisonUpdateOne) SetOlderFile(v *SubmittedFile) *FileComparisonUpdateOne {
	return _u.SetOlderFileID(v.ID)
}

// SetNewerFile sets the "newer_file" edge to the SubmittedFile entity.
func (_u *FileComparisonUpdateOne) SetNewerFile(v *SubmittedFile) *FileComparisonUpdateOne {
	return _u.SetNewerFileID(v.ID)
}

// Mutation returns the FileComparisonMutation object of the builder.
func (_u *FileComparisonUpdateOne) Mutation() *FileComparisonMutation {
	return _u.mutation
}

// ClearOlderFile clears the "older_file" edge to the SubmittedFile entity.
func (_u *FileComparisonUpdateOne) ClearOlderFile() *FileComparisonUpdateOne {
	_u.mutation.ClearOlderFile()
	return _u
}

// ClearNewerFile clears the "newer_file" edge to the SubmittedFile entity.
func (_u *FileComparisonUpdateOne) ClearNewerFile() *FileComparisonUpdateOne {
	_u.mutation.ClearNewerFile()
	return _u
}

// Where appends a list predicates to the FileComparisonUpdate builder.
func (_u *FileComparisonUpdateOne) Where(ps ...predicate.FileComparison) *FileComparisonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FileComparisonUpdateOne) Select(field string, fields ...string) *FileComparisonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FileComparison entity.
func (_u *FileComparisonUpdateOne) Save(ctx context.Context) (*FileComparison, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileComparisonUpdateOne) SaveX(ctx context.Context) *FileComparison {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FileComparisonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileComparisonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileComparisonUpdateOne) check() error {
	if v, ok := _u.mutation.SimilarityScore(); ok {
		if err := filecomparison.SimilarityScoreValidator(v); err != nil {
			return &ValidationError{Name: "similarity_score", err: fmt.Errorf(`ent: validator failed for field "FileComparison.similarity_score": %w`, err)}
		}
	}
	if _u.mutation.OlderFileCleared() && len(_u.mutation.OlderFileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileComparison.older_file"`)
	}
	if _u.mutation.NewerFileCleared() && len(_u.mutation.NewerFileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileComparison.newer_file"`)
	}
	return nil
}

func (_u *FileComparisonUpdateOne) sqlSave(ctx context.Context) (_node *FileComparison, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filecomparison.Table, filecomparison.Columns, sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FileComparison.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, filecomparison.FieldID)
		for _, f := range fields {
			if !filecomparison.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != filecomparison.FieldID {
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
	if value, ok := _u.mutation.OlderDigestType(); ok {
		_spec.SetField(filecomparison.FieldOlderDigestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewerDigestType(); ok {
		_spec.SetField(filecomparison.FieldNewerDigestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SimilarityScore(); ok {
		_spec.SetField(filecomparison.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarityScore(); ok {
		_spec.AddField(filecomparison.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if _u.mutation.OlderFileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OlderFileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NewerFileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NewerFileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FileComparison{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filecomparison.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
