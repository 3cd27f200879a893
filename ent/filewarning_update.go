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
	"github.com/moodle-tools/simwatch/ent/predicate"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
)

// FileWarningUpdate is the builder for updating FileWarning entities.
type FileWarningUpdate struct {
	config
	hooks    []Hook
	mutation *FileWarningMutation
}

// Where appends a list predicates to the FileWarningUpdate builder.
func (_u *FileWarningUpdate) Where(ps ...predicate.FileWarning) *FileWarningUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *FileWarningUpdate) SetFileID(v int) *FileWarningUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *FileWarningUpdate) SetNillableFileID(v *int) *FileWarningUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetWarningType sets the "warning_type" field.
func (_u *FileWarningUpdate) SetWarningType(v string) *FileWarningUpdate {
	_u.mutation.SetWarningType(v)
	return _u
}

// SetNillableWarningType sets the "warning_type" field if the given value is not nil.
func (_u *FileWarningUpdate) SetNillableWarningType(v *string) *FileWarningUpdate {
	if v != nil {
		_u.SetWarningType(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *FileWarningUpdate) SetMessage(v string) *FileWarningUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *FileWarningUpdate) SetNillableMessage(v *string) *FileWarningUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the SubmittedFile entity.
func (_u *FileWarningUpdate) SetFile(v *SubmittedFile) *FileWarningUpdate {
	return _u.SetFileID(v.ID)
}

// Mutation returns the FileWarningMutation object of the builder.
func (_u *FileWarningUpdate) Mutation() *FileWarningMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the SubmittedFile entity.
func (_u *FileWarningUpdate) ClearFile() *FileWarningUpdate {
	_u.mutation.ClearFile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FileWarningUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileWarningUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FileWarningUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileWarningUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileWarningUpdate) check() error {
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileWarning.file"`)
	}
	return nil
}

func (_u *FileWarningUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filewarning.Table, filewarning.Columns, sqlgraph.NewFieldSpec(filewarning.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WarningType(); ok {
		_spec.SetField(filewarning.FieldWarningType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(filewarning.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filewarning.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FileWarningUpdateOne is the builder for updating a single FileWarning entity.
type FileWarningUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileWarningMutation
}

// SetFileID sets the "file_id" field.
func (_u *FileWarningUpdateOne) SetFileID(v int) *FileWarningUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *FileWarningUpdateOne) SetNillableFileID(v *int) *FileWarningUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetWarningType sets the "warning_type" field.
func (_u *FileWarningUpdateOne) SetWarningType(v string) *FileWarningUpdateOne {
	_u.mutation.SetWarningType(v)
	return _u
}

// SetNillableWarningType sets the "warning_type" field if the given value is not nil.
func (_u *FileWarningUpdateOne) SetNillableWarningType(v *string) *FileWarningUpdateOne {
	if v != nil {
		_u.SetWarningType(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *FileWarningUpdateOne) SetMessage(v string) *FileWarningUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *FileWarningUpdateOne) SetNillableMessage(v *string) *FileWarningUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the SubmittedFile entity.
func (_u *FileWarningUpdateOne) SetFile(v *SubmittedFile) *FileWarningUpdateOne {
	return _u.SetFileID(v.ID)
}

// Mutation returns the FileWarningMutation object of the builder.
func (_u *FileWarningUpdateOne) Mutation() *FileWarningMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the SubmittedFile entity.
func (_u *FileWarningUpdateOne) ClearFile() *FileWarningUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// Where appends a list predicates to the FileWarningUpdate builder.
func (_u *FileWarningUpdateOne) Where(ps ...predicate.FileWarning) *FileWarningUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FileWarningUpdateOne) Select(field string, fields ...string) *FileWarningUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FileWarning entity.
func (_u *FileWarningUpdateOne) Save(ctx context.Context) (*FileWarning, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileWarningUpdateOne) SaveX(ctx context.Context) *FileWarning {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FileWarningUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileWarningUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileWarningUpdateOne) check() error {
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileWarning.file"`)
	}
	return nil
}

func (_u *FileWarningUpdateOne) sqlSave(ctx context.Context) (_node *FileWarning, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filewarning.Table, filewarning.Columns, sqlgraph.NewFieldSpec(filewarning.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FileWarning.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, filewarning.FieldID)
		for _, f := range fields {
			if !filewarning.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != filewarning.FieldID {
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
	if value, ok := _u.mutation.WarningType(); ok {
		_spec.SetField(filewarning.FieldWarningType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(filewarning.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FileWarning{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filewarning.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
