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
	"github.com/moodle-tools/simwatch/ent/submission"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
	"github.com/moodle-tools/simwatch/ent/user"
)

// SubmittedFileCreate is the builder for creating a SubmittedFile entity.
type SubmittedFileCreate struct {
	config
	mutation *SubmittedFileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSubmissionID sets the "submission_id" field.
func (_c *SubmittedFileCreate) SetSubmissionID(v int64) *SubmittedFileCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *SubmittedFileCreate) SetAssignmentID(v int64) *SubmittedFileCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SubmittedFileCreate) SetUserID(v int64) *SubmittedFileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *SubmittedFileCreate) SetFilename(v string) *SubmittedFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFilesize sets the "filesize" field.
func (_c *SubmittedFileCreate) SetFilesize(v int64) *SubmittedFileCreate {
	_c.mutation.SetFilesize(v)
	return _c
}

// SetMimetype sets the "mimetype" field.
func (_c *SubmittedFileCreate) SetMimetype(v string) *SubmittedFileCreate {
	_c.mutation.SetMimetype(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *SubmittedFileCreate) SetURL(v string) *SubmittedFileCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetUploaded sets the "uploaded" field.
func (_c *SubmittedFileCreate) SetUploaded(v time.Time) *SubmittedFileCreate {
	_c.mutation.SetUploaded(v)
	return _c
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_c *SubmittedFileCreate) SetSubmission(v *Submission) *SubmittedFileCreate {
	return _c.SetSubmissionID(v.ID)
}

// SetAssignment sets the "assignment" edge to the Assignment entity.
func (_c *SubmittedFileCreate) SetAssignment(v *Assignment) *SubmittedFileCreate {
	return _c.SetAssignmentID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *SubmittedFileCreate) SetUser(v *User) *SubmittedFileCreate {
	return _c.SetUserID(v.ID)
}

// AddDigestIDs adds the "digests" edge to the FileDigest entity by IDs.
func (_c *SubmittedFileCreate) AddDigestIDs(ids ...int) *SubmittedFileCreate {
	_c.mutation.AddDigestIDs(ids...)
	return _c
}

// AddDigests adds the "digests" edges to the FileDigest entity.
func (_c *SubmittedFileCreate) AddDigests(v ...*FileDigest) *SubmittedFileCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDigestIDs(ids...)
}

// AddWarningIDs adds the "warnings" edge to the FileWarning entity by IDs.
func (_c *SubmittedFileCreate) AddWarningIDs(ids ...int) *SubmittedFileCreate {
	_c.mutation.AddWarningIDs(ids...)
	return _c
}

// AddWarnings adds the "warnings" edges to the FileWarning entity.
func (_c *SubmittedFileCreate) AddWarnings(v ...*FileWarning) *SubmittedFileCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWarningIDs(ids...)
}

// AddOlderComparisonIDs adds the "older_comparisons" edge to the FileComparison entity by IDs.
func (_c *SubmittedFileCreate) AddOlderComparisonIDs(ids ...int) *SubmittedFileCreate {
	_c.mutation.AddOlderComparisonIDs(ids...)
	return _c
}

// AddOlderComparisons adds the "older_comparisons" edges to the FileComparison entity.
func (_c *SubmittedFileCreate) AddOlderComparisons(v ...*FileComparison) *SubmittedFileCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOlderComparisonIDs(ids...)
}

// AddNewerComparisonIDs adds the "newer_comparisons" edge to the FileComparison entity by IDs.
func (_c *SubmittedFileCreate) AddNewerComparisonIDs(ids ...int) *SubmittedFileCreate {
	_c.mutation.AddNewerComparisonIDs(ids...)
	return _c
}

// AddNewerComparisons adds the "newer_comparisons" edges to the FileComparison entity.
func (_c *SubmittedFileCreate) AddNewerComparisons(v ...*FileComparison) *SubmittedFileCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNewerComparisonIDs(ids...)
}

// Mutation returns the SubmittedFileMutation object of the builder.
func (_c *SubmittedFileCreate) Mutation() *SubmittedFileMutation {
	return _c.mutation
}

// Save creates the SubmittedFile in the database.
func (_c *SubmittedFileCreate) Save(ctx context.Context) (*SubmittedFile, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmittedFileCreate) SaveX(ctx context.Context) *SubmittedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmittedFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmittedFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmittedFileCreate) check() error {
	if _, ok := _c.mutation.SubmissionID(); !ok {
		return &ValidationError{Name: "submission_id", err: errors.New(`ent: missing required field "SubmittedFile.submission_id"`)}
	}
	if _, ok := _c.mutation.AssignmentID(); !ok {
		return &ValidationError{Name: "assignment_id", err: errors.New(`ent: missing required field "SubmittedFile.assignment_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SubmittedFile.user_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "SubmittedFile.filename"`)}
	}
	if _, ok := _c.mutation.Filesize(); !ok {
		return &ValidationError{Name: "filesize", err: errors.New(`ent: missing required field "SubmittedFile.filesize"`)}
	}
	if _, ok := _c.mutation.Mimetype(); !ok {
		return &ValidationError{Name: "mimetype", err: errors.New(`ent: missing required field "SubmittedFile.mimetype"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "SubmittedFile.url"`)}
	}
	if _, ok := _c.mutation.Uploaded(); !ok {
		return &ValidationError{Name: "uploaded", err: errors.New(`ent: missing required field "SubmittedFile.uploaded"`)}
	}
	if len(_c.mutation.SubmissionIDs()) == 0 {
		return &ValidationError{Name: "submission", err: errors.New(`ent: missing required edge "SubmittedFile.submission"`)}
	}
	if len(_c.mutation.AssignmentIDs()) == 0 {
		return &ValidationError{Name: "assignment", err: errors.New(`ent: missing required edge "SubmittedFile.assignment"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "SubmittedFile.user"`)}
	}
	return nil
}

func (_c *SubmittedFileCreate) sqlSave(ctx context.Context) (*SubmittedFile, error) {
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

func (_c *SubmittedFileCreate) createSpec() (*SubmittedFile, *sqlgraph.CreateSpec) {
	var (
		_node = &SubmittedFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submittedfile.Table, sqlgraph.NewFieldSpec(submittedfile.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(submittedfile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.Filesize(); ok {
		_spec.SetField(submittedfile.FieldFilesize, field.TypeInt64, value)
		_node.Filesize = value
	}
	if value, ok := _c.mutation.Mimetype(); ok {
		_spec.SetField(submittedfile.FieldMimetype, field.TypeString, value)
		_node.Mimetype = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(submittedfile.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Uploaded(); ok {
		_spec.SetField(submittedfile.FieldUploaded, field.TypeTime, value)
		_node.Uploaded = value
	}
	if nodes := _c.mutation.SubmissionIDs(); len(nodes) > 0 {
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
		_node.SubmissionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignmentIDs(); len(nodes) > 0 {
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
		_node.AssignmentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DigestsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WarningsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OlderComparisonsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NewerComparisonsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SubmittedFile.Create().
//		SetSubmissionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubmittedFileUpsert) {
//			SetSubmissionID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubmittedFileCreate) OnConflict(opts ...sql.ConflictOption) *SubmittedFileUpsertOne {
	_c.conflict = opts
	return &SubmittedFileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SubmittedFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubmittedFileCreate) OnConflictColumns(columns ...string) *SubmittedFileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubmittedFileUpsertOne{
		create: _c,
	}
}

type (
	// SubmittedFileUpsertOne is the builder for "upsert"-ing
	//  one SubmittedFile node.
	SubmittedFileUpsertOne struct {
		create *SubmittedFileCreate
	}

	// SubmittedFileUpsert is the "OnConflict" setter.
	SubmittedFileUpsert struct {
		*sql.UpdateSet
	}
)

// SetSubmissionID sets the "submission_id" field.
func (u *SubmittedFileUpsert) SetSubmissionID(v int64) *SubmittedFileUpsert {
	u.Set(submittedfile.FieldSubmissionID, v)
	return u
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *SubmittedFileUpsert) UpdateSubmissionID() *SubmittedFileUpsert {
	u.SetExcluded(submittedfile.FieldSubmissionID)
	return u
}

// SetAssignmentID sets the "assignment_id" field.
func (u *SubmittedFileUpsert) SetAssignmentID(v int64) *SubmittedFileUpsert {
	u.Set(submittedfile.FieldAssignmentID, v)
	return u
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *SubmittedFileUpsert) UpdateAssignmentID() *SubmittedFileUpsert {
	u.SetExcluded(submittedfile.FieldAssignmentID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *SubmittedFileUpsert) SetUserID(v int64) *SubmittedFileUpsert {
	u.Set(submittedfile.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SubmittedFileUpsert) UpdateUserID() *SubmittedFileUpsert {
	u.SetExcluded(submittedfile.FieldUserID)
	return u
}

// SetFilename sets the "filename" field.
func (u *SubmittedFileUpsert) SetFilename(v string) *SubmittedFileUpsert {
	u.Set(submittedfile.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *SubmittedFileUpsert) UpdateFilename() *SubmittedFileUpsert {
	u.SetExcluded(submittedfile.FieldFilename)
	return u
}

// SetFilesize sets the "filesize" field.
func (u *SubmittedFileUpsert) SetFilesize(v int64) *SubmittedFileUpsert {
	u.Set(submittedfile.FieldFilesize, v)
	return u
}

// UpdateFilesize sets the "filesize" field to the value that was provided on create.
func (u *SubmittedFileUpsert) UpdateFilesize() *SubmittedFileUpsert {
	u.SetExcluded(submittedfile.FieldFilesize)
	return u
}

// AddFilesize adds v to the "filesize" field.
func (u *SubmittedFileUpsert) AddFilesize(v int64) *SubmittedFileUpsert {
	u.Add(submittedfile.FieldFilesize, v)
	return u
}

// SetMimetype sets the "mimetype" field.
func (u *SubmittedFileUpsert) SetMimetype(v string) *SubmittedFileUpsert {
	u.Set(submittedfile.FieldMimetype, v)
	return u
}

// UpdateMimetype sets the "mimetype" field to the value that was provided on create.
func (u *SubmittedFileUpsert) UpdateMimetype() *SubmittedFileUpsert {
	u.SetExcluded(submittedfile.FieldMimetype)
	return u
}

// SetURL sets the "url" field.
func (u *SubmittedFileUpsert) SetURL(v string) *SubmittedFileUpsert {
	u.Set(submittedfile.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *SubmittedFileUpsert) UpdateURL() *SubmittedFileUpsert {
	u.SetExcluded(submittedfile.FieldURL)
	return u
}

// SetUploaded sets the "uploaded" field.
func (u *SubmittedFileUpsert) SetUploaded(v time.Time) *SubmittedFileUpsert {
	u.Set(submittedfile.FieldUploaded, v)
	return u
}

// UpdateUploaded sets the "uploaded" field to the value that was provided on create.
func (u *SubmittedFileUpsert) UpdateUploaded() *SubmittedFileUpsert {
	u.SetExcluded(submittedfile.FieldUploaded)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SubmittedFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SubmittedFileUpsertOne) UpdateNewValues() *SubmittedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SubmittedFile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SubmittedFileUpsertOne) Ignore() *SubmittedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubmittedFileUpsertOne) DoNothing() *SubmittedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubmittedFileCreate.OnConflict
// documentation for more info.
func (u *SubmittedFileUpsertOne) Update(set func(*SubmittedFileUpsert)) *SubmittedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubmittedFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubmissionID sets the "submission_id" field.
func (u *SubmittedFileUpsertOne) SetSubmissionID(v int64) *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetSubmissionID(v)
	})
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *SubmittedFileUpsertOne) UpdateSubmissionID() *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateSubmissionID()
	})
}

// SetAssignmentID sets the "assignment_id" field.
func (u *SubmittedFileUpsertOne) SetAssignmentID(v int64) *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetAssignmentID(v)
	})
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *SubmittedFileUpsertOne) UpdateAssignmentID() *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateAssignmentID()
	})
}

// SetUserID sets the "user_id" field.
func (u *SubmittedFileUpsertOne) SetUserID(v int64) *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SubmittedFileUpsertOne) UpdateUserID() *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateUserID()
	})
}

// SetFilename sets the "filename" field.
func (u *SubmittedFileUpsertOne) SetFilename(v string) *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *SubmittedFileUpsertOne) UpdateFilename() *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateFilename()
	})
}

// SetFilesize sets the "filesize" field.
func (u *SubmittedFileUpsertOne) SetFilesize(v int64) *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetFilesize(v)
	})
}

// AddFilesize adds v to the "filesize" field.
func (u *SubmittedFileUpsertOne) AddFilesize(v int64) *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.AddFilesize(v)
	})
}

// UpdateFilesize sets the "filesize" field to the value that was provided on create.
func (u *SubmittedFileUpsertOne) UpdateFilesize() *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateFilesize()
	})
}

// SetMimetype sets the "mimetype" field.
func (u *SubmittedFileUpsertOne) SetMimetype(v string) *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetMimetype(v)
	})
}

// UpdateMimetype sets the "mimetype" field to the value that was provided on create.
func (u *SubmittedFileUpsertOne) UpdateMimetype() *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateMimetype()
	})
}

// SetURL sets the "url" field.
func (u *SubmittedFileUpsertOne) SetURL(v string) *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *SubmittedFileUpsertOne) UpdateURL() *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateURL()
	})
}

// SetUploaded sets the "uploaded" field.
func (u *SubmittedFileUpsertOne) SetUploaded(v time.Time) *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetUploaded(v)
	})
}

// UpdateUploaded sets the "uploaded" field to the value that was provided on create.
func (u *SubmittedFileUpsertOne) UpdateUploaded() *SubmittedFileUpsertOne {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateUploaded()
	})
}

// Exec executes the query.
func (u *SubmittedFileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubmittedFileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubmittedFileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SubmittedFileUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SubmittedFileUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SubmittedFileCreateBulk is the builder for creating many SubmittedFile entities in bulk.
type SubmittedFileCreateBulk struct {
	config
	err      error
	builders []*SubmittedFileCreate
	conflict []sql.ConflictOption
}

// Save creates the SubmittedFile entities in the database.
func (_c *SubmittedFileCreateBulk) Save(ctx context.Context) ([]*SubmittedFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubmittedFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmittedFileMutation)
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
func (_c *SubmittedFileCreateBulk) SaveX(ctx context.Context) []*SubmittedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmittedFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmittedFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SubmittedFile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubmittedFileUpsert) {
//			SetSubmissionID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubmittedFileCreateBulk) OnConflict(opts ...sql.ConflictOption) *SubmittedFileUpsertBulk {
	_c.conflict = opts
	return &SubmittedFileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SubmittedFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubmittedFileCreateBulk) OnConflictColumns(columns ...string) *SubmittedFileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubmittedFileUpsertBulk{
		create: _c,
	}
}

// SubmittedFileUpsertBulk is the builder for "upsert"-ing
// a bulk of SubmittedFile nodes.
type SubmittedFileUpsertBulk struct {
	create *SubmittedFileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SubmittedFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SubmittedFileUpsertBulk) UpdateNewValues() *SubmittedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SubmittedFile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SubmittedFileUpsertBulk) Ignore() *SubmittedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubmittedFileUpsertBulk) DoNothing() *SubmittedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubmittedFileCreateBulk.OnConflict
// documentation for more info.
func (u *SubmittedFileUpsertBulk) Update(set func(*SubmittedFileUpsert)) *SubmittedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubmittedFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubmissionID sets the "submission_id" field.
func (u *SubmittedFileUpsertBulk) SetSubmissionID(v int64) *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetSubmissionID(v)
	})
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *SubmittedFileUpsertBulk) UpdateSubmissionID() *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateSubmissionID()
	})
}

// SetAssignmentID sets the "assignment_id" field.
func (u *SubmittedFileUpsertBulk) SetAssignmentID(v int64) *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetAssignmentID(v)
	})
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *SubmittedFileUpsertBulk) UpdateAssignmentID() *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateAssignmentID()
	})
}

// SetUserID sets the "user_id" field.
func (u *SubmittedFileUpsertBulk) SetUserID(v int64) *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SubmittedFileUpsertBulk) UpdateUserID() *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateUserID()
	})
}

// SetFilename sets the "filename" field.
func (u *SubmittedFileUpsertBulk) SetFilename(v string) *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *SubmittedFileUpsertBulk) UpdateFilename() *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateFilename()
	})
}

// SetFilesize sets the "filesize" field.
func (u *SubmittedFileUpsertBulk) SetFilesize(v int64) *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetFilesize(v)
	})
}

// AddFilesize adds v to the "filesize" field.
func (u *SubmittedFileUpsertBulk) AddFilesize(v int64) *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.AddFilesize(v)
	})
}

// UpdateFilesize sets the "filesize" field to the value that was provided on create.
func (u *SubmittedFileUpsertBulk) UpdateFilesize() *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateFilesize()
	})
}

// SetMimetype sets the "mimetype" field.
func (u *SubmittedFileUpsertBulk) SetMimetype(v string) *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetMimetype(v)
	})
}

// UpdateMimetype sets the "mimetype" field to the value that was provided on create.
func (u *SubmittedFileUpsertBulk) UpdateMimetype() *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateMimetype()
	})
}

// SetURL sets the "url" field.
func (u *SubmittedFileUpsertBulk) SetURL(v string) *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *SubmittedFileUpsertBulk) UpdateURL() *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateURL()
	})
}

// SetUploaded sets the "uploaded" field.
func (u *SubmittedFileUpsertBulk) SetUploaded(v time.Time) *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.SetUploaded(v)
	})
}

// UpdateUploaded sets the "uploaded" field to the value that was provided on create.
func (u *SubmittedFileUpsertBulk) UpdateUploaded() *SubmittedFileUpsertBulk {
	return u.Update(func(s *SubmittedFileUpsert) {
		s.UpdateUploaded()
	})
}

// Exec executes the query.
func (u *SubmittedFileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SubmittedFileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubmittedFileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubmittedFileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
