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
	"github.com/moodle-tools/simwatch/ent/filecomparison"
	"github.com/moodle-tools/simwatch/ent/filedigest"
	"github.com/moodle-tools/simwatch/ent/filewarning"
	"github.com/moodle-tools/simwatch/ent/predicate"
	"github.com/moodle-tools/simwatch/ent/submission"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
	"github.com/moodle-tools/simwatch/ent/user"
)

// SubmittedFileUpdate is the builder for updating SubmittedFile entities.
type SubmittedFileUpdate struct {
	config
	hooks    []Hook
	mutation *SubmittedFileMutation
}

// Where appends a list predicates to the SubmittedFileUpdate builder.
func (_u *SubmittedFileUpdate) Where(ps ...predicate.SubmittedFile) *SubmittedFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *SubmittedFileUpdate) SetSubmissionID(v int64) *SubmittedFileUpdate {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *SubmittedFileUpdate) SetNillableSubmissionID(v *int64) *SubmittedFileUpdate {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *SubmittedFileUpdate) SetAssignmentID(v int64) *SubmittedFileUpdate {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *SubmittedFileUpdate) SetNillableAssignmentID(v *int64) *SubmittedFileUpdate {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SubmittedFileUpdate) SetUserID(v int64) *SubmittedFileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubmittedFileUpdate) SetNillableUserID(v *int64) *SubmittedFileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *SubmittedFileUpdate) SetFilename(v string) *SubmittedFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *SubmittedFileUpdate) SetNillableFilename(v *string) *SubmittedFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFilesize sets the "filesize" field.
func (_u *SubmittedFileUpdate) SetFilesize(v int64) *SubmittedFileUpdate {
	_u.mutation.ResetFilesize()
	_u.mutation.SetFilesize(v)
	return _u
}

// SetNillableFilesize sets the "filesize" field if the given value is not nil.
func (_u *SubmittedFileUpdate) SetNillableFilesize(v *int64) *SubmittedFileUpdate {
	if v != nil {
		_u.SetFilesize(*v)
	}
	return _u
}

// AddFilesize adds value to the "filesize" field.
func (_u *SubmittedFileUpdate) AddFilesize(v int64) *SubmittedFileUpdate {
	_u.mutation.AddFilesize(v)
	return _u
}

// SetMimetype sets the "mimetype" field.
func (_u *SubmittedFileUpdate) SetMimetype(v string) *SubmittedFileUpdate {
	_u.mutation.SetMimetype(v)
	return _u
}

// SetNillableMimetype sets the "mimetype" field if the given value is not nil.
func (_u *SubmittedFileUpdate) SetNillableMimetype(v *string) *SubmittedFileUpdate {
	if v != nil {
		_u.SetMimetype(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *SubmittedFileUpdate) SetURL(v string) *SubmittedFileUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SubmittedFileUpdate) SetNillableURL(v *string) *SubmittedFileUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetUploaded sets the "uploaded" field.
func (_u *SubmittedFileUpdate) SetUploaded(v time.Time) *SubmittedFileUpdate {
	_u.mutation.SetUploaded(v)
	return _u
}

// SetNillableUploaded sets the "uploaded" field if the given value is not nil.
func (_u *SubmittedFileUpdate) SetNillableUploaded(v *time.Time) *SubmittedFileUpdate {
	if v != nil {
		_u.SetUploaded(*v)
	}
	return _u
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *SubmittedFileUpdate) SetSubmission(v *Submission) *SubmittedFileUpdate {
	return _u.SetSubmissionID(v.ID)
}

// SetAssignment sets the "assignment" edge to the Assignment entity.
func (_u *SubmittedFileUpdate) SetAssignment(v *Assignment) *SubmittedFileUpdate {
	return _u.SetAssignmentID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *SubmittedFileUpdate) SetUser(v *User) *SubmittedFileUpdate {
	return _u.SetUserID(v.ID)
}

// AddDigestIDs adds the "digests" edge to the FileDigest entity by IDs.
func (_u *SubmittedFileUpdate) AddDigestIDs(ids ...int) *SubmittedFileUpdate {
	_u.mutation.AddDigestIDs(ids...)
	return _u
}

// AddDigests adds the "digests" edges to the FileDigest entity.
func (_u *SubmittedFileUpdate) AddDigests(v ...*FileDigest) *SubmittedFileUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDigestIDs(ids...)
}

// AddWarningIDs adds the "warnings" edge to the FileWarning entity by IDs.
func (_u *SubmittedFileUpdate) AddWarningIDs(ids ...int) *SubmittedFileUpdate {
	_u.mutation.AddWarningIDs(ids...)
	return _u
}

// AddWarnings adds the "warnings" edges to the FileWarning entity.
func (_u *SubmittedFileUpdate) AddWarnings(v ...*FileWarning) *SubmittedFileUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWarningIDs(ids...)
}

// AddOlderComparisonIDs adds the "older_comparisons" edge to the FileComparison entity by IDs.
func (_u *SubmittedFileUpdate) AddOlderComparisonIDs(ids ...int) *SubmittedFileUpdate {
	_u.mutation.AddOlderComparisonIDs(ids...)
	return _u
}

// AddOlderComparisons adds the "older_comparisons" edges to the FileComparison entity.
func (_u *SubmittedFileUpdate) AddOlderComparisons(v ...*FileComparison) *SubmittedFileUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOlderComparisonIDs(ids...)
}

// AddNewerComparisonIDs adds the "newer_comparisons" edge to the FileComparison entity by IDs.
func (_u *SubmittedFileUpdate) AddNewerComparisonIDs(ids ...int) *SubmittedFileUpdate {
	_u.mutation.AddNewerComparisonIDs(ids...)
	return _u
}

// AddNewerComparisons adds the "newer_comparisons" edges to the FileComparison entity.
func (_u *SubmittedFileUpdate) AddNewerComparisons(v ...*FileComparison) *SubmittedFileUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNewerComparisonIDs(ids...)
}

// Mutation returns the SubmittedFileMutation object of the builder.
func (_u *SubmittedFileUpdate) Mutation() *SubmittedFileMutation {
	return _u.mutation
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *SubmittedFileUpdate) ClearSubmission() *SubmittedFileUpdate {
	_u.mutation.ClearSubmission()
	return _u
}

// ClearAssignment clears the "assignment" edge to the Assignment entity.
func (_u *SubmittedFileUpdate) ClearAssignment() *SubmittedFileUpdate {
	_u.mutation.ClearAssignment()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *SubmittedFileUpdate) ClearUser() *SubmittedFileUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearDigests clears all "digests" edges to the FileDigest entity.
func (_u *SubmittedFileUpdate) ClearDigests() *SubmittedFileUpdate {
	_u.mutation.ClearDigests()
	return _u
}

// RemoveDigestIDs removes the "digests" edge to FileDigest entities by IDs.
func (_u *SubmittedFileUpdate) RemoveDigestIDs(ids ...int) *SubmittedFileUpdate {
	_u.mutation.RemoveDigestIDs(ids...)
	return _u
}

// RemoveDigests removes "digests" edges to FileDigest entities.
func (_u *SubmittedFileUpdate) RemoveDigests(v ...*FileDigest) *SubmittedFileUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDigestIDs(ids...)
}

// ClearWarnings clears all "warnings" edges to the FileWarning entity.
func (_u *SubmittedFileUpdate) ClearWarnings() *SubmittedFileUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// RemoveWarningIDs removes the "warnings" edge to FileWarning entities by IDs.
func (_u *SubmittedFileUpdate) RemoveWarningIDs(ids ...int) *SubmittedFileUpdate {
	_u.mutation.RemoveWarningIDs(ids...)
	return _u
}

// RemoveWarnings removes "warnings" edges to FileWarning entities.
func (_u *SubmittedFileUpdate) RemoveWarnings(v ...*FileWarning) *SubmittedFileUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWarningIDs(ids...)
}

// ClearOlderComparisons clears all "older_comparisons" edges to the FileComparison entity.
func (_u *SubmittedFileUpdate) ClearOlderComparisons() *SubmittedFileUpdate {
	_u.mutation.ClearOlderComparisons()
	return _u
}

// RemoveOlderComparisonIDs removes the "older_comparisons" edge to FileComparison entities by IDs.
func (_u *SubmittedFileUpdate) RemoveOlderComparisonIDs(ids ...int) *SubmittedFileUpdate {
	_u.mutation.RemoveOlderComparisonIDs(ids...)
	return _u
}

// RemoveOlderComparisons removes "older_comparisons" edges to FileComparison entities.
func (_u *SubmittedFileUpdate) RemoveOlderComparisons(v ...*FileComparison) *SubmittedFileUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOlderComparisonIDs(ids...)
}

// ClearNewerComparisons clears all "newer_comparisons" edges to the FileComparison entity.
func (_u *SubmittedFileUpdate) ClearNewerComparisons() *SubmittedFileUpdate {
	_u.mutation.ClearNewerComparisons()
	return _u
}

// RemoveNewerComparisonIDs removes the "newer_comparisons" edge to FileComparison entities by IDs.
func (_u *SubmittedFileUpdate) RemoveNewerComparisonIDs(ids ...int) *SubmittedFileUpdate {
	_u.mutation.RemoveNewerComparisonIDs(ids...)
	return _u
}

// RemoveNewerComparisons removes "newer_comparisons" edges to FileComparison entities.
func (_u *SubmittedFileUpdate) RemoveNewerComparisons(v ...*FileComparison) *SubmittedFileUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNewerComparisonIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmittedFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmittedFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmittedFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmittedFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmittedFileUpdate) check() error {
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubmittedFile.submission"`)
	}
	if _u.mutation.AssignmentCleared() && len(_u.mutation.AssignmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubmittedFile.assignment"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubmittedFile.user"`)
	}
	return nil
}

func (_u *SubmittedFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submittedfile.Table, submittedfile.Columns, sqlgraph.NewFieldSpec(submittedfile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(submittedfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filesize(); ok {
		_spec.SetField(submittedfile.FieldFilesize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFilesize(); ok {
		_spec.AddField(submittedfile.FieldFilesize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Mimetype(); ok {
		_spec.SetField(submittedfile.FieldMimetype, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(submittedfile.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Uploaded(); ok {
		_spec.SetField(submittedfile.FieldUploaded, field.TypeTime, value)
	}
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submittedfile.SubmissionTable,
			Columns: []string{submittedfile.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submittedfile.SubmissionTable,
			Columns: []string{submittedfile.SubmissionColumn},
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
	if _u.mutation.AssignmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submittedfile.AssignmentTable,
			Columns: []string{submittedfile.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submittedfile.AssignmentTable,
			Columns: []string{submittedfile.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submittedfile.UserTable,
			Columns: []string{submittedfile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submittedfile.UserTable,
			Columns: []string{submittedfile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DigestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.DigestsTable,
			Columns: []string{submittedfile.DigestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filedigest.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDigestsIDs(); len(nodes) > 0 && !_u.mutation.DigestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.DigestsTable,
			Columns: []string{submittedfile.DigestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filedigest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DigestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.DigestsTable,
			Columns: []string{submittedfile.DigestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filedigest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WarningsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.WarningsTable,
			Columns: []string{submittedfile.WarningsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filewarning.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWarningsIDs(); len(nodes) > 0 && !_u.mutation.WarningsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.WarningsTable,
			Columns: []string{submittedfile.WarningsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filewarning.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WarningsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.WarningsTable,
			Columns: []string{submittedfile.WarningsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filewarning.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OlderComparisonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.OlderComparisonsTable,
			Columns: []string{submittedfile.OlderComparisonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOlderComparisonsIDs(); len(nodes) > 0 && !_u.mutation.OlderComparisonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.OlderComparisonsTable,
			Columns: []string{submittedfile.OlderComparisonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OlderComparisonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.OlderComparisonsTable,
			Columns: []string{submittedfile.OlderComparisonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NewerComparisonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.NewerComparisonsTable,
			Columns: []string{submittedfile.NewerComparisonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNewerComparisonsIDs(); len(nodes) > 0 && !_u.mutation.NewerComparisonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.NewerComparisonsTable,
			Columns: []string{submittedfile.NewerComparisonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NewerComparisonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.NewerComparisonsTable,
			Columns: []string{submittedfile.NewerComparisonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submittedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmittedFileUpdateOne is the builder for updating a single SubmittedFile entity.
type SubmittedFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmittedFileMutation
}

// SetSubmissionID sets the "submission_id" field.
func (_u *SubmittedFileUpdateOne) SetSubmissionID(v int64) *SubmittedFileUpdateOne {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *SubmittedFileUpdateOne) SetNillableSubmissionID(v *int64) *SubmittedFileUpdateOne {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *SubmittedFileUpdateOne) SetAssignmentID(v int64) *SubmittedFileUpdateOne {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *SubmittedFileUpdateOne) SetNillableAssignmentID(v *int64) *SubmittedFileUpdateOne {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SubmittedFileUpdateOne) SetUserID(v int64) *SubmittedFileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubmittedFileUpdateOne) SetNillableUserID(v *int64) *SubmittedFileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *SubmittedFileUpdateOne) SetFilename(v string) *SubmittedFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *SubmittedFileUpdateOne) SetNillableFilename(v *string) *SubmittedFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFilesize sets the "filesize" field.
func (_u *SubmittedFileUpdateOne) SetFilesize(v int64) *SubmittedFileUpdateOne {
	_u.mutation.ResetFilesize()
	_u.mutation.SetFilesize(v)
	return _u
}

// SetNillableFilesize sets the "filesize" field if the given value is not nil.
func (_u *SubmittedFileUpdateOne) SetNillableFilesize(v *int64) *SubmittedFileUpdateOne {
	if v != nil {
		_u.SetFilesize(*v)
	}
	return _u
}

// AddFilesize adds value to the "filesize" field.
func (_u *SubmittedFileUpdateOne) AddFilesize(v int64) *SubmittedFileUpdateOne {
	_u.mutation.AddFilesize(v)
	return _u
}

// SetMimetype sets the "mimetype" field.
func (_u *SubmittedFileUpdateOne) SetMimetype(v string) *SubmittedFileUpdateOne {
	_u.mutation.SetMimetype(v)
	return _u
}

// SetNillableMimetype sets the "mimetype" field if the given value is not nil.
func (_u *SubmittedFileUpdateOne) SetNillableMimetype(v *string) *SubmittedFileUpdateOne {
	if v != nil {
		_u.SetMimetype(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *SubmittedFileUpdateOne) SetURL(v string) *SubmittedFileUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SubmittedFileUpdateOne) SetNillableURL(v *string) *SubmittedFileUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetUploaded sets the "uploaded" field.
func (_u *SubmittedFileUpdateOne) SetUploaded(v time.Time) *SubmittedFileUpdateOne {
	_u.mutation.SetUploaded(v)
	return _u
}

// SetNillableUploaded sets the "uploaded" field if the given value is not nil.
func (_u *SubmittedFileUpdateOne) SetNillableUploaded(v *time.Time) *SubmittedFileUpdateOne {
	if v != nil {
		_u.SetUploaded(*v)
	}
	return _u
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *SubmittedFileUpdateOne) SetSubmission(v *Submission) *SubmittedFileUpdateOne {
	return _u.SetSubmissionID(v.ID)
}

// SetAssignment sets the "assignment" edge to the Assignment entity.
func (_u *SubmittedFileUpdateOne) SetAssignment(v *Assignment) *SubmittedFileUpdateOne {
	return _u.SetAssignmentID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *SubmittedFileUpdateOne) SetUser(v *User) *SubmittedFileUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddDigestIDs adds the "digests" edge to the FileDigest entity by IDs.
func (_u *SubmittedFileUpdateOne) AddDigestIDs(ids ...int) *SubmittedFileUpdateOne {
	_u.mutation.AddDigestIDs(ids...)
	return _u
}

// AddDigests adds the "digests" edges to the FileDigest entity.
func (_u *SubmittedFileUpdateOne) AddDigests(v ...*FileDigest) *SubmittedFileUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDigestIDs(ids...)
}

// AddWarningIDs adds the "warnings" edge to the FileWarning entity by IDs.
func (_u *SubmittedFileUpdateOne) AddWarningIDs(ids ...int) *SubmittedFileUpdateOne {
	_u.mutation.AddWarningIDs(ids...)
	return _u
}

// AddWarnings adds the "warnings" edges to the FileWarning entity.
func (_u *SubmittedFileUpdateOne) AddWarnings(v ...*FileWarning) *SubmittedFileUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWarningIDs(ids...)
}

// AddOlderComparisonIDs adds the "older_comparisons" edge to the FileComparison entity by IDs.
func (_u *SubmittedFileUpdateOne) AddOlderComparisonIDs(ids ...int) *SubmittedFileUpdateOne {
	_u.mutation.AddOlderComparisonIDs(ids...)
	return _u
}

// AddOlderComparisons adds the "older_comparisons" edges to the FileComparison entity.
func (_u *SubmittedFileUpdateOne) AddOlderComparisons(v ...*FileComparison) *SubmittedFileUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOlderComparisonIDs(ids...)
}

// AddNewerComparisonIDs adds the "newer_comparisons" edge to the FileComparison entity by IDs.
func (_u *SubmittedFileUpdateOne) AddNewerComparisonIDs(ids ...int) *SubmittedFileUpdateOne {
	_u.mutation.AddNewerComparisonIDs(ids...)
	return _u
}

// AddNewerComparisons adds the "newer_comparisons" edges to the FileComparison entity.
func (_u *SubmittedFileUpdateOne) AddNewerComparisons(v ...*FileComparison) *SubmittedFileUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNewerComparisonIDs(ids...)
}

// Mutation returns the SubmittedFileMutation object of the builder.
func (_u *SubmittedFileUpdateOne) Mutation() *SubmittedFileMutation {
	return _u.mutation
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *SubmittedFileUpdateOne) ClearSubmission() *SubmittedFileUpdateOne {
	_u.mutation.ClearSubmission()
	return _u
}

// ClearAssignment clears the "assignment" edge to the Assignment entity.
func (_u *SubmittedFileUpdateOne) ClearAssignment() *SubmittedFileUpdateOne {
	_u.mutation.ClearAssignment()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *SubmittedFileUpdateOne) ClearUser() *SubmittedFileUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearDigests clears all "digests" edges to the FileDigest entity.
func (_u *SubmittedFileUpdateOne) ClearDigests() *SubmittedFileUpdateOne {
	_u.mutation.ClearDigests()
	return _u
}

// RemoveDigestIDs removes the "digests" edge to FileDigest entities by IDs.
func (_u *SubmittedFileUpdateOne) RemoveDigestIDs(ids ...int) *SubmittedFileUpdateOne {
	_u.mutation.RemoveDigestIDs(ids...)
	return _u
}

// RemoveDigests removes "digests" edges to FileDigest entities.
func (_u *SubmittedFileUpdateOne) RemoveDigests(v ...*FileDigest) *SubmittedFileUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDigestIDs(ids...)
}

// ClearWarnings clears all "warnings" edges to the FileWarning entity.
func (_u *SubmittedFileUpdateOne) ClearWarnings() *SubmittedFileUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// RemoveWarningIDs removes the "warnings" edge to FileWarning entities by IDs.
func (_u *SubmittedFileUpdateOne) RemoveWarningIDs(ids ...int) *SubmittedFileUpdateOne {
	_u.mutation.RemoveWarningIDs(ids...)
	return _u
}

// RemoveWarnings removes "warnings" edges to FileWarning entities.
func (_u *SubmittedFileUpdateOne) RemoveWarnings(v ...*FileWarning) *SubmittedFileUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWarningIDs(ids...)
}

// ClearOlderComparisons clears all "older_comparisons" edges to the FileComparison entity.
func (_u *SubmittedFileUpdateOne) ClearOlderComparisons() *SubmittedFileUpdateOne {
	_u.mutation.ClearOlderComparisons()
	return _u
}

// RemoveOlderComparisonIDs removes the "older_comparisons" edge to FileComparison entities by IDs.
func (_u *SubmittedFileUpdateOne) RemoveOlderComparisonIDs(ids ...int) *SubmittedFileUpdateOne {
	_u.mutation.RemoveOlderComparisonIDs(ids...)
	return _u
}

// RemoveOlderComparisons removes "older_comparisons" edges to FileComparison entities.
func (_u *SubmittedFileUpdateOne) RemoveOlderComparisons(v ...*FileComparison) *SubmittedFileUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOlderComparisonIDs(ids...)
}

// ClearNewerComparisons clears all "newer_comparisons" edges to the FileComparison entity.
func (_u *SubmittedFileUpdateOne) ClearNewerComparisons() *SubmittedFileUpdateOne {
	_u.mutation.ClearNewerComparisons()
	return _u
}

// RemoveNewerComparisonIDs removes the "newer_comparisons" edge to FileComparison entities by IDs.
func (_u *SubmittedFileUpdateOne) RemoveNewerComparisonIDs(ids ...int) *SubmittedFileUpdateOne {
	_u.mutation.RemoveNewerComparisonIDs(ids...)
	return _u
}

// RemoveNewerComparisons removes "newer_comparisons" edges to FileComparison entities.
func (_u *SubmittedFileUpdateOne) RemoveNewerComparisons(v ...*FileComparison) *SubmittedFileUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNewerComparisonIDs(ids...)
}

// Where appends a list predicates to the SubmittedFileUpdate builder.
func (_u *SubmittedFileUpdateOne) Where(ps ...predicate.SubmittedFile) *SubmittedFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmittedFileUpdateOne) Select(field string, fields ...string) *SubmittedFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubmittedFile entity.
func (_u *SubmittedFileUpdateOne) Save(ctx context.Context) (*SubmittedFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmittedFileUpdateOne) SaveX(ctx context.Context) *SubmittedFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmittedFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmittedFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmittedFileUpdateOne) check() error {
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubmittedFile.submission"`)
	}
	if _u.mutation.AssignmentCleared() && len(_u.mutation.AssignmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubmittedFile.assignment"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubmittedFile.user"`)
	}
	return nil
}

func (_u *SubmittedFileUpdateOne) sqlSave(ctx context.Context) (_node *SubmittedFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submittedfile.Table, submittedfile.Columns, sqlgraph.NewFieldSpec(submittedfile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubmittedFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submittedfile.FieldID)
		for _, f := range fields {
			if !submittedfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submittedfile.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(submittedfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filesize(); ok {
		_spec.SetField(submittedfile.FieldFilesize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFilesize(); ok {
		_spec.AddField(submittedfile.FieldFilesize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Mimetype(); ok {
		_spec.SetField(submittedfile.FieldMimetype, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(submittedfile.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Uploaded(); ok {
		_spec.SetField(submittedfile.FieldUploaded, field.TypeTime, value)
	}
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submittedfile.SubmissionTable,
			Columns: []string{submittedfile.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submittedfile.SubmissionTable,
			Columns: []string{submittedfile.SubmissionColumn},
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
	if _u.mutation.AssignmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submittedfile.AssignmentTable,
			Columns: []string{submittedfile.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submittedfile.AssignmentTable,
			Columns: []string{submittedfile.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submittedfile.UserTable,
			Columns: []string{submittedfile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submittedfile.UserTable,
			Columns: []string{submittedfile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DigestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.DigestsTable,
			Columns: []string{submittedfile.DigestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filedigest.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDigestsIDs(); len(nodes) > 0 && !_u.mutation.DigestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.DigestsTable,
			Columns: []string{submittedfile.DigestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filedigest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DigestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.DigestsTable,
			Columns: []string{submittedfile.DigestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filedigest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WarningsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.WarningsTable,
			Columns: []string{submittedfile.WarningsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filewarning.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWarningsIDs(); len(nodes) > 0 && !_u.mutation.WarningsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.WarningsTable,
			Columns: []string{submittedfile.WarningsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filewarning.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WarningsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.WarningsTable,
			Columns: []string{submittedfile.WarningsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filewarning.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OlderComparisonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.OlderComparisonsTable,
			Columns: []string{submittedfile.OlderComparisonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOlderComparisonsIDs(); len(nodes) > 0 && !_u.mutation.OlderComparisonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.OlderComparisonsTable,
			Columns: []string{submittedfile.OlderComparisonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OlderComparisonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.OlderComparisonsTable,
			Columns: []string{submittedfile.OlderComparisonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NewerComparisonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.NewerComparisonsTable,
			Columns: []string{submittedfile.NewerComparisonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNewerComparisonsIDs(); len(nodes) > 0 && !_u.mutation.NewerComparisonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.NewerComparisonsTable,
			Columns: []string{submittedfile.NewerComparisonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NewerComparisonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submittedfile.NewerComparisonsTable,
			Columns: []string{submittedfile.NewerComparisonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filecomparison.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SubmittedFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submittedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
