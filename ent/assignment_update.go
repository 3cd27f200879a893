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
	"github.com/moodle-tools/simwatch/ent/predicate"
	"github.com/moodle-tools/simwatch/ent/submission"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
)

// AssignmentUpdate is the builder for updating Assignment entities.
type AssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssignmentMutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdate) Where(ps ...predicate.Assignment) *AssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *AssignmentUpdate) SetCourseID(v int64) *AssignmentUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableCourseID(v *int64) *AssignmentUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AssignmentUpdate) SetName(v string) *AssignmentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableName(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOpening sets the "opening" field.
func (_u *AssignmentUpdate) SetOpening(v time.Time) *AssignmentUpdate {
	_u.mutation.SetOpening(v)
	return _u
}

// SetNillableOpening sets the "opening" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableOpening(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetOpening(*v)
	}
	return _u
}

// ClearOpening clears the value of the "opening" field.
func (_u *AssignmentUpdate) ClearOpening() *AssignmentUpdate {
	_u.mutation.ClearOpening()
	return _u
}

// SetClosing sets the "closing" field.
func (_u *AssignmentUpdate) SetClosing(v time.Time) *AssignmentUpdate {
	_u.mutation.SetClosing(v)
	return _u
}

// SetNillableClosing sets the "closing" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableClosing(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetClosing(*v)
	}
	return _u
}

// ClearClosing clears the value of the "closing" field.
func (_u *AssignmentUpdate) ClearClosing() *AssignmentUpdate {
	_u.mutation.ClearClosing()
	return _u
}

// SetCutoff sets the "cutoff" field.
func (_u *AssignmentUpdate) SetCutoff(v time.Time) *AssignmentUpdate {
	_u.mutation.SetCutoff(v)
	return _u
}

// SetNillableCutoff sets the "cutoff" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableCutoff(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetCutoff(*v)
	}
	return _u
}

// ClearCutoff clears the value of the "cutoff" field.
func (_u *AssignmentUpdate) ClearCutoff() *AssignmentUpdate {
	_u.mutation.ClearCutoff()
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *AssignmentUpdate) SetCourse(v *Course) *AssignmentUpdate {
	return _u.SetCourseID(v.ID)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *AssignmentUpdate) AddSubmissionIDs(ids ...int64) *AssignmentUpdate {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *AssignmentUpdate) AddSubmissions(v ...*Submission) *AssignmentUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// AddSubmittedFileIDs adds the "submitted_files" edge to the SubmittedFile entity by IDs.
func (_u *AssignmentUpdate) AddSubmittedFileIDs(ids ...int) *AssignmentUpdate {
	_u.mutation.AddSubmittedFileIDs(ids...)
	return _u
}

// AddSubmittedFiles adds the "submitted_files" edges to the SubmittedFile entity.
func (_u *AssignmentUpdate) AddSubmittedFiles(v ...*SubmittedFile) *AssignmentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmittedFileIDs(ids...)
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdate) Mutation() *AssignmentMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *AssignmentUpdate) ClearCourse() *AssignmentUpdate {
	_u.mutation.ClearCourse()
	return _u
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *AssignmentUpdate) ClearSubmissions() *AssignmentUpdate {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *AssignmentUpdate) RemoveSubmissionIDs(ids ...int64) *AssignmentUpdate {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *AssignmentUpdate) RemoveSubmissions(v ...*Submission) *AssignmentUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// ClearSubmittedFiles clears all "submitted_files" edges to the SubmittedFile entity.
func (_u *AssignmentUpdate) ClearSubmittedFiles() *AssignmentUpdate {
	_u.mutation.ClearSubmittedFiles()
	return _u
}

// RemoveSubmittedFileIDs removes the "submitted_files" edge to SubmittedFile entities by IDs.
func (_u *AssignmentUpdate) RemoveSubmittedFileIDs(ids ...int) *AssignmentUpdate {
	_u.mutation.RemoveSubmittedFileIDs(ids...)
	return _u
}

// RemoveSubmittedFiles removes "submitted_files" edges to SubmittedFile entities.
func (_u *AssignmentUpdate) RemoveSubmittedFiles(v ...*SubmittedFile) *AssignmentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmittedFileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssignmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdate) check() error {
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Assignment.course"`)
	}
	return nil
}

func (_u *AssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(assignment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Opening(); ok {
		_spec.SetField(assignment.FieldOpening, field.TypeTime, value)
	}
	if _u.mutation.OpeningCleared() {
		_spec.ClearField(assignment.FieldOpening, field.TypeTime)
	}
	if value, ok := _u.mutation.Closing(); ok {
		_spec.SetField(assignment.FieldClosing, field.TypeTime, value)
	}
	if _u.mutation.ClosingCleared() {
		_spec.ClearField(assignment.FieldClosing, field.TypeTime)
	}
	if value, ok := _u.mutation.Cutoff(); ok {
		_spec.SetField(assignment.FieldCutoff, field.TypeTime, value)
	}
	if _u.mutation.CutoffCleared() {
		_spec.ClearField(assignment.FieldCutoff, field.TypeTime)
	}
	if _u.mutation.CourseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmittedFilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmittedFilesIDs(); len(nodes) > 0 && !_u.mutation.SubmittedFilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmittedFilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssignmentUpdateOne is the builder for updating a single Assignment entity.
type AssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignmentMutation
}

// SetCourseID sets the "course_id" field.
func (_u *AssignmentUpdateOne) SetCourseID(v int64) *AssignmentUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableCourseID(v *int64) *AssignmentUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AssignmentUpdateOne) SetName(v string) *AssignmentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableName(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOpening sets the "opening" field.
func (_u *AssignmentUpdateOne) SetOpening(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetOpening(v)
	return _u
}

// SetNillableOpening sets the "opening" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableOpening(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetOpening(*v)
	}
	return _u
}

// ClearOpening clears the value of the "opening" field.
func (_u *AssignmentUpdateOne) ClearOpening() *AssignmentUpdateOne {
	_u.mutation.ClearOpening()
	return _u
}

// SetClosing sets the "closing" field.
func (_u *AssignmentUpdateOne) SetClosing(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetClosing(v)
	return _u
}

// SetNillableClosing sets the "closing" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableClosing(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetClosing(*v)
	}
	return _u
}

// ClearClosing clears the value of the "closing" field.
func (_u *AssignmentUpdateOne) ClearClosing() *AssignmentUpdateOne {
	_u.mutation.ClearClosing()
	return _u
}

// SetCutoff sets the "cutoff" field.
func (_u *AssignmentUpdateOne) SetCutoff(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetCutoff(v)
	return _u
}

// SetNillableCutoff sets the "cutoff" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableCutoff(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetCutoff(*v)
	}
	return _u
}

// ClearCutoff clears the value of the "cutoff" field.
func (_u *AssignmentUpdateOne) ClearCutoff() *AssignmentUpdateOne {
	_u.mutation.ClearCutoff()
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *AssignmentUpdateOne) SetCourse(v *Course) *AssignmentUpdateOne {
	return _u.SetCourseID(v.ID)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *AssignmentUpdateOne) AddSubmissionIDs(ids ...int64) *AssignmentUpdateOne {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *AssignmentUpdateOne) AddSubmissions(v ...*Submission) *AssignmentUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// AddSubmittedFileIDs adds the "submitted_files" edge to the SubmittedFile entity by IDs.
func (_u *AssignmentUpdateOne) AddSubmittedFileIDs(ids ...int) *AssignmentUpdateOne {
	_u.mutation.AddSubmittedFileIDs(ids...)
	return _u
}

// AddSubmittedFiles adds the "submitted_files" edges to the SubmittedFile entity.
func (_u *AssignmentUpdateOne) AddSubmittedFiles(v ...*SubmittedFile) *AssignmentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmittedFileIDs(ids...)
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdateOne) Mutation() *AssignmentMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *AssignmentUpdateOne) ClearCourse() *AssignmentUpdateOne {
	_u.mutation.ClearCourse()
	return _u
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *AssignmentUpdateOne) ClearSubmissions() *AssignmentUpdateOne {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *AssignmentUpdateOne) RemoveSubmissionIDs(ids ...int64) *AssignmentUpdateOne {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *AssignmentUpdateOne) RemoveSubmissions(v ...*Submission) *AssignmentUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// ClearSubmittedFiles clears all "submitted_files" edges to the SubmittedFile entity.
func (_u *AssignmentUpdateOne) ClearSubmittedFiles() *AssignmentUpdateOne {
	_u.mutation.ClearSubmittedFiles()
	return _u
}

// RemoveSubmittedFileIDs removes the "submitted_files" edge to SubmittedFile entities by IDs.
func (_u *AssignmentUpdateOne) RemoveSubmittedFileIDs(ids ...int) *AssignmentUpdateOne {
	_u.mutation.RemoveSubmittedFileIDs(ids...)
	return _u
}

// RemoveSubmittedFiles removes "submitted_files" edges to SubmittedFile entities.
func (_u *AssignmentUpdateOne) RemoveSubmittedFiles(v ...*SubmittedFile) *AssignmentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmittedFileIDs(ids...)
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdateOne) Where(ps ...predicate.Assignment) *AssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssignmentUpdateOne) Select(field string, fields ...string) *AssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assignment entity.
func (_u *AssignmentUpdateOne) Save(ctx context.Context) (*Assignment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdateOne) SaveX(ctx context.Context) *Assignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdateOne) check() error {
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Assignment.course"`)
	}
	return nil
}

func (_u *AssignmentUpdateOne) sqlSave(ctx context.Context) (_node *Assignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assignment.FieldID)
		for _, f := range fields {
			if !assignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assignment.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(assignment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Opening(); ok {
		_spec.SetField(assignment.FieldOpening, field.TypeTime, value)
	}
	if _u.mutation.OpeningCleared() {
		_spec.ClearField(assignment.FieldOpening, field.TypeTime)
	}
	if value, ok := _u.mutation.Closing(); ok {
		_spec.SetField(assignment.FieldClosing, field.TypeTime, value)
	}
	if _u.mutation.ClosingCleared() {
		_spec.ClearField(assignment.FieldClosing, field.TypeTime)
	}
	if value, ok := _u.mutation.Cutoff(); ok {
		_spec.SetField(assignment.FieldCutoff, field.TypeTime, value)
	}
	if _u.mutation.CutoffCleared() {
		_spec.ClearField(assignment.FieldCutoff, field.TypeTime)
	}
	if _u.mutation.CourseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmittedFilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmittedFilesIDs(); len(nodes) > 0 && !_u.mutation.SubmittedFilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmittedFilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Assignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
