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
	"github.com/moodle-tools/simwatch/ent/predicate"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
)

// FileDigestUpdate is the builder for updating FileDigest entities.
type FileDigestUpdate struct {
	config
	hooks    []Hook
	mutation *FileDigestMutation
}

// Where appends a list predicates to the FileDigestUpdate builder.
func (_u *FileDigestUpdate) Where(ps ...predicate.FileDigest) *FileDigestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *FileDigestUpdate) SetFileID(v int) *FileDigestUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *FileDigestUpdate) SetNillableFileID(v *int) *FileDigestUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetDigestType sets the "digest_type" field.
func (_u *FileDigestUpdate) SetDigestType(v string) *FileDigestUpdate {
	_u.mutation.SetDigestType(v)
	return _u
}

// SetNillableDigestType sets the "digest_type" field if the given value is not nil.
func (_u *FileDigestUpdate) SetNillableDigestType(v *string) *FileDigestUpdate {
	if v != nil {
		_u.SetDigestType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *FileDigestUpdate) SetContent(v []byte) *FileDigestUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *FileDigestUpdate) ClearContent() *FileDigestUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetCreated sets the "created" field.
func (_u *FileDigestUpdate) SetCreated(v time.Time) *FileDigestUpdate {
	_u.mutation.SetCreated(v)
	return _u
}

// SetNillableCreated sets the "created" field if the given value is not nil.
func (_u *FileDigestUpdate) SetNillableCreated(v *time.Time) *FileDigestUpdate {
	if v != nil {
		_u.SetCreated(*v)
	}
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *FileDigestUpdate) SetAssignmentID(v int64) *FileDigestUpdate {
	_u.mutation.ResetAssignmentID()
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *FileDigestUpdate) SetNillableAssignmentID(v *int64) *FileDigestUpdate {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// AddAssignmentID adds value to the "assignment_id" field.
func (_u *FileDigestUpdate) AddAssignmentID(v int64) *FileDigestUpdate {
	_u.mutation.AddAssignmentID(v)
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *FileDigestUpdate) SetSubmissionID(v int64) *FileDigestUpdate {
	_u.mutation.ResetSubmissionID()
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *FileDigestUpdate) SetNillableSubmissionID(v *int64) *FileDigestUpdate {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// AddSubmissionID adds value to the "submission_id" field.
func (_u *FileDigestUpdate) AddSubmissionID(v int64) *FileDigestUpdate {
	_u.mutation.AddSubmissionID(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FileDigestUpdate) SetUserID(v int64) *FileDigestUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FileDigestUpdate) SetNillableUserID(v *int64) *FileDigestUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *FileDigestUpdate) AddUserID(v int64) *FileDigestUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetUploaded sets the "uploaded" field.
func (_u *FileDigestUpdate) SetUploaded(v time.Time) *FileDigestUpdate {
	_u.mutation.SetUploaded(v)
	return _u
}

// SetNillableUploaded sets the "uploaded" field if the given value is not nil.
func (_u *FileDigestUpdate) SetNillableUploaded(v *time.Time) *FileDigestUpdate {
	if v != nil {
		_u.SetUploaded(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the SubmittedFile entity.
func (_u *FileDigestUpdate) SetFile(v *SubmittedFile) *FileDigestUpdate {
	return _u.SetFileID(v.ID)
}

// Mutation returns the FileDigestMutation object of the builder.
func (_u *FileDigestUpdate) Mutation() *FileDigestMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the SubmittedFile entity.
func (_u *FileDigestUpdate) ClearFile() *FileDigestUpdate {
	_u.mutation.ClearFile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FileDigestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileDigestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FileDigestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileDigestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileDigestUpdate) check() error {
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileDigest.file"`)
	}
	return nil
}

func (_u *FileDigestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filedigest.Table, filedigest.Columns, sqlgraph.NewFieldSpec(filedigest.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DigestType(); ok {
		_spec.SetField(filedigest.FieldDigestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(filedigest.FieldContent, field.TypeBytes, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(filedigest.FieldContent, field.TypeBytes)
	}
	if value, ok := _u.mutation.Created(); ok {
		_spec.SetField(filedigest.FieldCreated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssignmentID(); ok {
		_spec.SetField(filedigest.FieldAssignmentID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAssignmentID(); ok {
		_spec.AddField(filedigest.FieldAssignmentID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SubmissionID(); ok {
		_spec.SetField(filedigest.FieldSubmissionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubmissionID(); ok {
		_spec.AddField(filedigest.FieldSubmissionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(filedigest.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(filedigest.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Uploaded(); ok {
		_spec.SetField(filedigest.FieldUploaded, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filedigest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FileDigestUpdateOne is the builder for updating a single FileDigest entity.
type FileDigestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileDigestMutation
}

// SetFileID sets the "file_id" field.
func (_u *FileDigestUpdateOne) SetFileID(v int) *FileDigestUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *FileDigestUpdateOne) SetNillableFileID(v *int) *FileDigestUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetDigestType sets the "digest_type" field.
func (_u *FileDigestUpdateOne) SetDigestType(v string) *FileDigestUpdateOne {
	_u.mutation.SetDigestType(v)
	return _u
}

// SetNillableDigestType sets the "digest_type" field if the given value is not nil.
func (_u *FileDigestUpdateOne) SetNillableDigestType(v *string) *FileDigestUpdateOne {
	if v != nil {
		_u.SetDigestType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *FileDigestUpdateOne) SetContent(v []byte) *FileDigestUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *FileDigestUpdateOne) ClearContent() *FileDigestUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetCreated sets the "created" field.
func (_u *FileDigestUpdateOne) SetCreated(v time.Time) *FileDigestUpdateOne {
	_u.mutation.SetCreated(v)
	return _u
}

// SetNillableCreated sets the "created" field if the given value is not nil.
func (_u *FileDigestUpdateOne) SetNillableCreated(v *time.Time) *FileDigestUpdateOne {
	if v != nil {
		_u.SetCreated(*v)
	}
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *FileDigestUpdateOne) SetAssignmentID(v int64) *FileDigestUpdateOne {
	_u.mutation.ResetAssignmentID()
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *FileDigestUpdateOne) SetNillableAssignmentID(v *int64) *FileDigestUpdateOne {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// AddAssignmentID adds value to the "assignment_id" field.
func (_u *FileDigestUpdateOne) AddAssignmentID(v int64) *FileDigestUpdateOne {
	_u.mutation.AddAssignmentID(v)
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *FileDigestUpdateOne) SetSubmissionID(v int64) *FileDigestUpdateOne {
	_u.mutation.ResetSubmissionID()
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *FileDigestUpdateOne) SetNillableSubmissionID(v *int64) *FileDigestUpdateOne {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// AddSubmissionID adds value to the "submission_id" field.
func (_u *FileDigestUpdateOne) AddSubmissionID(v int64) *FileDigestUpdateOne {
	_u.mutation.AddSubmissionID(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FileDigestUpdateOne) SetUserID(v int64) *FileDigestUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FileDigestUpdateOne) SetNillableUserID(v *int64) *FileDigestUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *FileDigestUpdateOne) AddUserID(v int64) *FileDigestUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetUploaded sets the "uploaded" field.
func (_u *FileDigestUpdateOne) SetUploaded(v time.Time) *FileDigestUpdateOne {
	_u.mutation.SetUploaded(v)
	return _u
}

// SetNillableUploaded sets the "uploaded" field if the given value is not nil.
func (_u *FileDigestUpdateOne) SetNillableUploaded(v *time.Time) *FileDigestUpdateOne {
	if v != nil {
		_u.SetUploaded(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the SubmittedFile entity.
func (_u *FileDigestUpdateOne) SetFile(v *SubmittedFile) *FileDigestUpdateOne {
	return _u.SetFileID(v.ID)
}

// Mutation returns the FileDigestMutation object of the builder.
func (_u *FileDigestUpdateOne) Mutation() *FileDigestMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the SubmittedFile entity.
func (_u *FileDigestUpdateOne) ClearFile() *FileDigestUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// Where appends a list predicates to the FileDigestUpdate builder.
func (_u *FileDigestUpdateOne) Where(ps ...predicate.FileDigest) *FileDigestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FileDigestUpdateOne) Select(field string, fields ...string) *FileDigestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FileDigest entity.
func (_u *FileDigestUpdateOne) Save(ctx context.Context) (*FileDigest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileDigestUpdateOne) SaveX(ctx context.Context) *FileDigest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FileDigestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileDigestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileDigestUpdateOne) check() error {
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileDigest.file"`)
	}
	return nil
}

func (_u *FileDigestUpdateOne) sqlSave(ctx context.Context) (_node *FileDigest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filedigest.Table, filedigest.Columns, sqlgraph.NewFieldSpec(filedigest.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FileDigest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, filedigest.FieldID)
		for _, f := range fields {
			if !filedigest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != filedigest.FieldID {
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
	if value, ok := _u.mutation.DigestType(); ok {
		_spec.SetField(filedigest.FieldDigestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(filedigest.FieldContent, field.TypeBytes, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(filedigest.FieldContent, field.TypeBytes)
	}
	if value, ok := _u.mutation.Created(); ok {
		_spec.SetField(filedigest.FieldCreated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssignmentID(); ok {
		_spec.SetField(filedigest.FieldAssignmentID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAssignmentID(); ok {
		_spec.AddField(filedigest.FieldAssignmentID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SubmissionID(); ok {
		_spec.SetField(filedigest.FieldSubmissionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubmissionID(); ok {
		_spec.AddField(filedigest.FieldSubmissionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(filedigest.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(filedigest.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Uploaded(); ok {
		_spec.SetField(filedigest.FieldUploaded, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FileDigest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filedigest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
