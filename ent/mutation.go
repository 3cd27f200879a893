// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/moodle-tools/simwatch/ent/assignment"
	"github.com/moodle-tools/simwatch/ent/course"
	"github.com/moodle-tools/simwatch/ent/filecomparison"
	"github.com/moodle-tools/simwatch/ent/filedigest"
	"github.com/moodle-tools/simwatch/ent/filewarning"
	"github.com/moodle-tools/simwatch/ent/group"
	"github.com/moodle-tools/simwatch/ent/participant"
	"github.com/moodle-tools/simwatch/ent/participantgroup"
	"github.com/moodle-tools/simwatch/ent/participantrole"
	"github.com/moodle-tools/simwatch/ent/predicate"
	"github.com/moodle-tools/simwatch/ent/role"
	"github.com/moodle-tools/simwatch/ent/submission"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
	"github.com/moodle-tools/simwatch/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssignment       = "Assignment"
	TypeCourse           = "Course"
	TypeFileComparison   = "FileComparison"
	TypeFileDigest       = "FileDigest"
	TypeFileWarning      = "FileWarning"
	TypeGroup            = "Group"
	TypeParticipant      = "Participant"
	TypeParticipantGroup = "ParticipantGroup"
	TypeParticipantRole  = "ParticipantRole"
	TypeRole             = "Role"
	TypeSubmission       = "Submission"
	TypeSubmittedFile    = "SubmittedFile"
	TypeUser             = "User"
)

// AssignmentMutation represents an operation that mutates the Assignment nodes in the graph.
type AssignmentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int64
	name                   *string
	opening                *time.Time
	closing                *time.Time
	cutoff                 *time.Time
	clearedFields          map[string]struct{}
	course                 *int64
	clearedcourse          bool
	submissions            map[int64]struct{}
	removedsubmissions     map[int64]struct{}
	clearedsubmissions     bool
	submitted_files        map[int]struct{}
	removedsubmitted_files map[int]struct{}
	clearedsubmitted_files bool
	done                   bool
	oldValue               func(context.Context) (*Assignment, error)
	predicates             []predicate.Assignment
}

var _ ent.Mutation = (*AssignmentMutation)(nil)

// assignmentOption allows management of the mutation configuration using functional options.
type assignmentOption func(*AssignmentMutation)

// newAssignmentMutation creates new mutation for the Assignment entity.
func newAssignmentMutation(c config, op Op, opts ...assignmentOption) *AssignmentMutation {
	m := &AssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssignmentID sets the ID field of the mutation.
func withAssignmentID(id int64) assignmentOption {
	return func(m *AssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Assignment
		)
		m.oldValue = func(ctx context.Context) (*Assignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Assignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssignment sets the old Assignment of the mutation.
func withAssignment(node *Assignment) assignmentOption {
	return func(m *AssignmentMutation) {
		m.oldValue = func(context.Context) (*Assignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Assignment entities.
func (m *AssignmentMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssignmentMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssignmentMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Assignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCourseID sets the "course_id" field.
func (m *AssignmentMutation) SetCourseID(i int64) {
	m.course = &i
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *AssignmentMutation) CourseID() (r int64, exists bool) {
	v := m.course
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldCourseID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *AssignmentMutation) ResetCourseID() {
	m.course = nil
}

// SetName sets the "name" field.
func (m *AssignmentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AssignmentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AssignmentMutation) ResetName() {
	m.name = nil
}

// SetOpening sets the "opening" field.
func (m *AssignmentMutation) SetOpening(t time.Time) {
	m.opening = &t
}

// Opening returns the value of the "opening" field in the mutation.
func (m *AssignmentMutation) Opening() (r time.Time, exists bool) {
	v := m.opening
	if v == nil {
		return
	}
	return *v, true
}

// OldOpening returns the old "opening" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldOpening(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpening is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpening requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpening: %w", err)
	}
	return oldValue.Opening, nil
}

// ClearOpening clears the value of the "opening" field.
func (m *AssignmentMutation) ClearOpening() {
	m.opening = nil
	m.clearedFields[assignment.FieldOpening] = struct{}{}
}

// OpeningCleared returns if the "opening" field was cleared in this mutation.
func (m *AssignmentMutation) OpeningCleared() bool {
	_, ok := m.clearedFields[assignment.FieldOpening]
	return ok
}

// ResetOpening resets all changes to the "opening" field.
func (m *AssignmentMutation) ResetOpening() {
	m.opening = nil
	delete(m.clearedFields, assignment.FieldOpening)
}

// SetClosing sets the "closing" field.
func (m *AssignmentMutation) SetClosing(t time.Time) {
	m.closing = &t
}

// Closing returns the value of the "closing" field in the mutation.
func (m *AssignmentMutation) Closing() (r time.Time, exists bool) {
	v := m.closing
	if v == nil {
		return
	}
	return *v, true
}

// OldClosing returns the old "closing" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldClosing(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosing: %w", err)
	}
	return oldValue.Closing, nil
}

// ClearClosing clears the value of the "closing" field.
func (m *AssignmentMutation) ClearClosing() {
	m.closing = nil
	m.clearedFields[assignment.FieldClosing] = struct{}{}
}

// ClosingCleared returns if the "closing" field was cleared in this mutation.
func (m *AssignmentMutation) ClosingCleared() bool {
	_, ok := m.clearedFields[assignment.FieldClosing]
	return ok
}

// ResetClosing resets all changes to the "closing" field.
func (m *AssignmentMutation) ResetClosing() {
	m.closing = nil
	delete(m.clearedFields, assignment.FieldClosing)
}

// SetCutoff sets the "cutoff" field.
func (m *AssignmentMutation) SetCutoff(t time.Time) {
	m.cutoff = &t
}

// Cutoff returns the value of the "cutoff" field in the mutation.
func (m *AssignmentMutation) Cutoff() (r time.Time, exists bool) {
	v := m.cutoff
	if v == nil {
		return
	}
	return *v, true
}

// OldCutoff returns the old "cutoff" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldCutoff(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCutoff is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCutoff requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCutoff: %w", err)
	}
	return oldValue.Cutoff, nil
}

// ClearCutoff clears the value of the "cutoff" field.
func (m *AssignmentMutation) ClearCutoff() {
	m.cutoff = nil
	m.clearedFields[assignment.FieldCutoff] = struct{}{}
}

// CutoffCleared returns if the "cutoff" field was cleared in this mutation.
func (m *AssignmentMutation) CutoffCleared() bool {
	_, ok := m.clearedFields[assignment.FieldCutoff]
	return ok
}

// ResetCutoff resets all changes to the "cutoff" field.
func (m *AssignmentMutation) ResetCutoff() {
	m.cutoff = nil
	delete(m.clearedFields, assignment.FieldCutoff)
}

// ClearCourse clears the "course" edge to the Course entity.
func (m *AssignmentMutation) ClearCourse() {
	m.clearedcourse = true
	m.clearedFields[assignment.FieldCourseID] = struct{}{}
}

// CourseCleared reports if the "course" edge to the Course entity was cleared.
func (m *AssignmentMutation) CourseCleared() bool {
	return m.clearedcourse
}

// CourseIDs returns the "course" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourseID instead. It exists only for internal usage by the builders.
func (m *AssignmentMutation) CourseIDs() (ids []int64) {
	if id := m.course; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourse resets all changes to the "course" edge.
func (m *AssignmentMutation) ResetCourse() {
	m.course = nil
	m.clearedcourse = false
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by ids.
func (m *AssignmentMutation) AddSubmissionIDs(ids ...int64) {
	if m.submissions == nil {
		m.submissions = make(map[int64]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the Submission entity.
func (m *AssignmentMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the Submission entity was cleared.
func (m *AssignmentMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the Submission entity by IDs.
func (m *AssignmentMutation) RemoveSubmissionIDs(ids ...int64) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the Submission entity.
func (m *AssignmentMutation) RemovedSubmissionsIDs() (ids []int64) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *AssignmentMutation) SubmissionsIDs() (ids []int64) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *AssignmentMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// AddSubmittedFileIDs adds the "submitted_files" edge to the SubmittedFile entity by ids.
func (m *AssignmentMutation) AddSubmittedFileIDs(ids ...int) {
	if m.submitted_files == nil {
		m.submitted_files = make(map[int]struct{})
	}
	for i := range ids {
		m.submitted_files[ids[i]] = struct{}{}
	}
}

// ClearSubmittedFiles clears the "submitted_files" edge to the SubmittedFile entity.
func (m *AssignmentMutation) ClearSubmittedFiles() {
	m.clearedsubmitted_files = true
}

// SubmittedFilesCleared reports if the "submitted_files" edge to the SubmittedFile entity was cleared.
func (m *AssignmentMutation) SubmittedFilesCleared() bool {
	return m.clearedsubmitted_files
}

// RemoveSubmittedFileIDs removes the "submitted_files" edge to the SubmittedFile entity by IDs.
func (m *AssignmentMutation) RemoveSubmittedFileIDs(ids ...int) {
	if m.removedsubmitted_files == nil {
		m.removedsubmitted_files = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.submitted_files, ids[i])
		m.removedsubmitted_files[ids[i]] = struct{}{}
	}
}

// RemovedSubmittedFiles returns the removed IDs of the "submitted_files" edge to the SubmittedFile entity.
func (m *AssignmentMutation) RemovedSubmittedFilesIDs() (ids []int) {
	for id := range m.removedsubmitted_files {
		ids = append(ids, id)
	}
	return
}

// SubmittedFilesIDs returns the "submitted_files" edge IDs in the mutation.
func (m *AssignmentMutation) SubmittedFilesIDs() (ids []int) {
	for id := range m.submitted_files {
		ids = append(ids, id)
	}
	return
}

// ResetSubmittedFiles resets all changes to the "submitted_files" edge.
func (m *AssignmentMutation) ResetSubmittedFiles() {
	m.submitted_files = nil
	m.clearedsubmitted_files = false
	m.removedsubmitted_files = nil
}

// Where appends a list predicates to the AssignmentMutation builder.
func (m *AssignmentMutation) Where(ps ...predicate.Assignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Assignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Assignment).
func (m *AssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssignmentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.course != nil {
		fields = append(fields, assignment.FieldCourseID)
	}
	if m.name != nil {
		fields = append(fields, assignment.FieldName)
	}
	if m.opening != nil {
		fields = append(fields, assignment.FieldOpening)
	}
	if m.closing != nil {
		fields = append(fields, assignment.FieldClosing)
	}
	if m.cutoff != nil {
		fields = append(fields, assignment.FieldCutoff)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assignment.FieldCourseID:
		return m.CourseID()
	case assignment.FieldName:
		return m.Name()
	case assignment.FieldOpening:
		return m.Opening()
	case assignment.FieldClosing:
		return m.Closing()
	case assignment.FieldCutoff:
		return m.Cutoff()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assignment.FieldCourseID:
		return m.OldCourseID(ctx)
	case assignment.FieldName:
		return m.OldName(ctx)
	case assignment.FieldOpening:
		return m.OldOpening(ctx)
	case assignment.FieldClosing:
		return m.OldClosing(ctx)
	case assignment.FieldCutoff:
		return m.OldCutoff(ctx)
	}
	return nil, fmt.Errorf("unknown Assignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assignment.FieldCourseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case assignment.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case assignment.FieldOpening:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpening(v)
		return nil
	case assignment.FieldClosing:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosing(v)
		return nil
	case assignment.FieldCutoff:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCutoff(v)
		return nil
	}
	return fmt.Errorf("unknown Assignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssignmentMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssignmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Assignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssignmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assignment.FieldOpening) {
		fields = append(fields, assignment.FieldOpening)
	}
	if m.FieldCleared(assignment.FieldClosing) {
		fields = append(fields, assignment.FieldClosing)
	}
	if m.FieldCleared(assignment.FieldCutoff) {
		fields = append(fields, assignment.FieldCutoff)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssignmentMutation) ClearField(name string) error {
	switch name {
	case assignment.FieldOpening:
		m.ClearOpening()
		return nil
	case assignment.FieldClosing:
		m.ClearClosing()
		return nil
	case assignment.FieldCutoff:
		m.ClearCutoff()
		return nil
	}
	return fmt.Errorf("unknown Assignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssignmentMutation) ResetField(name string) error {
	switch name {
	case assignment.FieldCourseID:
		m.ResetCourseID()
		return nil
	case assignment.FieldName:
		m.ResetName()
		return nil
	case assignment.FieldOpening:
		m.ResetOpening()
		return nil
	case assignment.FieldClosing:
		m.ResetClosing()
		return nil
	case assignment.FieldCutoff:
		m.ResetCutoff()
		return nil
	}
	return fmt.Errorf("unknown Assignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.course != nil {
		edges = append(edges, assignment.EdgeCourse)
	}
	if m.submissions != nil {
		edges = append(edges, assignment.EdgeSubmissions)
	}
	if m.submitted_files != nil {
		edges = append(edges, assignment.EdgeSubmittedFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssignmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assignment.EdgeCourse:
		if id := m.course; id != nil {
			return []ent.Value{*id}
		}
	case assignment.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	case assignment.EdgeSubmittedFiles:
		ids := make([]ent.Value, 0, len(m.submitted_files))
		for id := range m.submitted_files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsubmissions != nil {
		edges = append(edges, assignment.EdgeSubmissions)
	}
	if m.removedsubmitted_files != nil {
		edges = append(edges, assignment.EdgeSubmittedFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssignmentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case assignment.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	case assignment.EdgeSubmittedFiles:
		ids := make([]ent.Value, 0, len(m.removedsubmitted_files))
		for id := range m.removedsubmitted_files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcourse {
		edges = append(edges, assignment.EdgeCourse)
	}
	if m.clearedsubmissions {
		edges = append(edges, assignment.EdgeSubmissions)
	}
	if m.clearedsubmitted_files {
		edges = append(edges, assignment.EdgeSubmittedFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssignmentMutation) EdgeCleared(name string) bool {
	switch name {
	case assignment.EdgeCourse:
		return m.clearedcourse
	case assignment.EdgeSubmissions:
		return m.clearedsubmissions
	case assignment.EdgeSubmittedFiles:
		return m.clearedsubmitted_files
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssignmentMutation) ClearEdge(name string) error {
	switch name {
	case assignment.EdgeCourse:
		m.ClearCourse()
		return nil
	}
	return fmt.Errorf("unknown Assignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssignmentMutation) ResetEdge(name string) error {
	switch name {
	case assignment.EdgeCourse:
		m.ResetCourse()
		return nil
	case assignment.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	case assignment.EdgeSubmittedFiles:
		m.ResetSubmittedFiles()
		return nil
	}
	return fmt.Errorf("unknown Assignment edge %s", name)
}

// CourseMutation represents an operation that mutates the Course nodes in the graph.
type CourseMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int64
	shortname           *string
	fullname            *string
	starts              *time.Time
	ends                *time.Time
	last_seen           *time.Time
	clearedFields       map[string]struct{}
	groups              map[int64]struct{}
	removedgroups       map[int64]struct{}
	clearedgroups       bool
	participants        map[int]struct{}
	removedparticipants map[int]struct{}
	clearedparticipants bool
	assignments         map[int64]struct{}
	removedassignments  map[int64]struct{}
	clearedassignments  bool
	done                bool
	oldValue            func(context.Context) (*Course, error)
	predicates          []predicate.Course
}

var _ ent.Mutation = (*CourseMutation)(nil)

// courseOption allows management of the mutation configuration using functional options.
type courseOption func(*CourseMutation)

// newCourseMutation creates new mutation for the Course entity.
func newCourseMutation(c config, op Op, opts ...courseOption) *CourseMutation {
	m := &CourseMutation{
		config:        c,
		op:            op,
		typ:           TypeCourse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourseID sets the ID field of the mutation.
func withCourseID(id int64) courseOption {
	return func(m *CourseMutation) {
		var (
			err   error
			once  sync.Once
			value *Course
		)
		m.oldValue = func(ctx context.Context) (*Course, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Course.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourse sets the old Course of the mutation.
func withCourse(node *Course) courseOption {
	return func(m *CourseMutation) {
		m.oldValue = func(context.Context) (*Course, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Course entities.
func (m *CourseMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourseMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourseMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Course.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetShortname sets the "shortname" field.
func (m *CourseMutation) SetShortname(s string) {
	m.shortname = &s
}

// Shortname returns the value of the "shortname" field in the mutation.
func (m *CourseMutation) Shortname() (r string, exists bool) {
	v := m.shortname
	if v == nil {
		return
	}
	return *v, true
}

// OldShortname returns the old "shortname" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldShortname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShortname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShortname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShortname: %w", err)
	}
	return oldValue.Shortname, nil
}

// ResetShortname resets all changes to the "shortname" field.
func (m *CourseMutation) ResetShortname() {
	m.shortname = nil
}

// SetFullname sets the "fullname" field.
func (m *CourseMutation) SetFullname(s string) {
	m.fullname = &s
}

// Fullname returns the value of the "fullname" field in the mutation.
func (m *CourseMutation) Fullname() (r string, exists bool) {
	v := m.fullname
	if v == nil {
		return
	}
	return *v, true
}

// OldFullname returns the old "fullname" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldFullname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullname: %w", err)
	}
	return oldValue.Fullname, nil
}

// ResetFullname resets all changes to the "fullname" field.
func (m *CourseMutation) ResetFullname() {
	m.fullname = nil
}

// SetStarts sets the "starts" field.
func (m *CourseMutation) SetStarts(t time.Time) {
	m.starts = &t
}

// Starts returns the value of the "starts" field in the mutation.
func (m *CourseMutation) Starts() (r time.Time, exists bool) {
	v := m.starts
	if v == nil {
		return
	}
	return *v, true
}

// OldStarts returns the old "starts" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldStarts(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStarts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStarts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStarts: %w", err)
	}
	return oldValue.Starts, nil
}

// ClearStarts clears the value of the "starts" field.
func (m *CourseMutation) ClearStarts() {
	m.starts = nil
	m.clearedFields[course.FieldStarts] = struct{}{}
}

// StartsCleared returns if the "starts" field was cleared in this mutation.
func (m *CourseMutation) StartsCleared() bool {
	_, ok := m.clearedFields[course.FieldStarts]
	return ok
}

// ResetStarts resets all changes to the "starts" field.
func (m *CourseMutation) ResetStarts() {
	m.starts = nil
	delete(m.clearedFields, course.FieldStarts)
}

// SetEnds sets the "ends" field.
func (m *CourseMutation) SetEnds(t time.Time) {
	m.ends = &t
}

// Ends returns the value of the "ends" field in the mutation.
func (m *CourseMutation) Ends() (r time.Time, exists bool) {
	v := m.ends
	if v == nil {
		return
	}
	return *v, true
}

// OldEnds returns the old "ends" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldEnds(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnds: %w", err)
	}
	return oldValue.Ends, nil
}

// ClearEnds clears the value of the "ends" field.
func (m *CourseMutation) ClearEnds() {
	m.ends = nil
	m.clearedFields[course.FieldEnds] = struct{}{}
}

// EndsCleared returns if the "ends" field was cleared in this mutation.
func (m *CourseMutation) EndsCleared() bool {
	_, ok := m.clearedFields[course.FieldEnds]
	return ok
}

// ResetEnds resets all changes to the "ends" field.
func (m *CourseMutation) ResetEnds() {
	m.ends = nil
	delete(m.clearedFields, course.FieldEnds)
}

// SetLastSeen sets the "last_seen" field.
func (m *CourseMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *CourseMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *CourseMutation) ResetLastSeen() {
	m.last_seen = nil
}

// AddGroupIDs adds the "groups" edge to the Group entity by ids.
func (m *CourseMutation) AddGroupIDs(ids ...int64) {
	if m.groups == nil {
		m.groups = make(map[int64]struct{})
	}
	for i := range ids {
		m.groups[ids[i]] = struct{}{}
	}
}

// ClearGroups clears the "groups" edge to the Group entity.
func (m *CourseMutation) ClearGroups() {
	m.clearedgroups = true
}

// GroupsCleared reports if the "groups" edge to the Group entity was cleared.
func (m *CourseMutation) GroupsCleared() bool {
	return m.clearedgroups
}

// RemoveGroupIDs removes the "groups" edge to the Group entity by IDs.
func (m *CourseMutation) RemoveGroupIDs(ids ...int64) {
	if m.removedgroups == nil {
		m.removedgroups = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.groups, ids[i])
		m.removedgroups[ids[i]] = struct{}{}
	}
}

// RemovedGroups returns the removed IDs of the "groups" edge to the Group entity.
func (m *CourseMutation) RemovedGroupsIDs() (ids []int64) {
	for id := range m.removedgroups {
		ids = append(ids, id)
	}
	return
}

// GroupsIDs returns the "groups" edge IDs in the mutation.
func (m *CourseMutation) GroupsIDs() (ids []int64) {
	for id := range m.groups {
		ids = append(ids, id)
	}
	return
}

// ResetGroups resets all changes to the "groups" edge.
func (m *CourseMutation) ResetGroups() {
	m.groups = nil
	m.clearedgroups = false
	m.removedgroups = nil
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by ids.
func (m *CourseMutation) AddParticipantIDs(ids ...int) {
	if m.participants == nil {
		m.participants = make(map[int]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the Participant entity.
func (m *CourseMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the Participant entity was cleared.
func (m *CourseMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the Participant entity by IDs.
func (m *CourseMutation) RemoveParticipantIDs(ids ...int) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the Participant entity.
func (m *CourseMutation) RemovedParticipantsIDs() (ids []int) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *CourseMutation) ParticipantsIDs() (ids []int) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *CourseMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// AddAssignmentIDs adds the "assignments" edge to the Assignment entity by ids.
func (m *CourseMutation) AddAssignmentIDs(ids ...int64) {
	if m.assignments == nil {
		m.assignments = make(map[int64]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the Assignment entity.
func (m *CourseMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the Assignment entity was cleared.
func (m *CourseMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the Assignment entity by IDs.
func (m *CourseMutation) RemoveAssignmentIDs(ids ...int64) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the Assignment entity.
func (m *CourseMutation) RemovedAssignmentsIDs() (ids []int64) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *CourseMutation) AssignmentsIDs() (ids []int64) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *CourseMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// Where appends a list predicates to the CourseMutation builder.
func (m *CourseMutation) Where(ps ...predicate.Course) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Course, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Course).
func (m *CourseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourseMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.shortname != nil {
		fields = append(fields, course.FieldShortname)
	}
	if m.fullname != nil {
		fields = append(fields, course.FieldFullname)
	}
	if m.starts != nil {
		fields = append(fields, course.FieldStarts)
	}
	if m.ends != nil {
		fields = append(fields, course.FieldEnds)
	}
	if m.last_seen != nil {
		fields = append(fields, course.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case course.FieldShortname:
		return m.Shortname()
	case course.FieldFullname:
		return m.Fullname()
	case course.FieldStarts:
		return m.Starts()
	case course.FieldEnds:
		return m.Ends()
	case course.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case course.FieldShortname:
		return m.OldShortname(ctx)
	case course.FieldFullname:
		return m.OldFullname(ctx)
	case course.FieldStarts:
		return m.OldStarts(ctx)
	case course.FieldEnds:
		return m.OldEnds(ctx)
	case course.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown Course field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case course.FieldShortname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShortname(v)
		return nil
	case course.FieldFullname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullname(v)
		return nil
	case course.FieldStarts:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStarts(v)
		return nil
	case course.FieldEnds:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnds(v)
		return nil
	case course.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown Course field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Course numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(course.FieldStarts) {
		fields = append(fields, course.FieldStarts)
	}
	if m.FieldCleared(course.FieldEnds) {
		fields = append(fields, course.FieldEnds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourseMutation) ClearField(name string) error {
	switch name {
	case course.FieldStarts:
		m.ClearStarts()
		return nil
	case course.FieldEnds:
		m.ClearEnds()
		return nil
	}
	return fmt.Errorf("unknown Course nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourseMutation) ResetField(name string) error {
	switch name {
	case course.FieldShortname:
		m.ResetShortname()
		return nil
	case course.FieldFullname:
		m.ResetFullname()
		return nil
	case course.FieldStarts:
		m.ResetStarts()
		return nil
	case course.FieldEnds:
		m.ResetEnds()
		return nil
	case course.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown Course field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourseMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.groups != nil {
		edges = append(edges, course.EdgeGroups)
	}
	if m.participants != nil {
		edges = append(edges, course.EdgeParticipants)
	}
	if m.assignments != nil {
		edges = append(edges, course.EdgeAssignments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case course.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.groups))
		for id := range m.groups {
			ids = append(ids, id)
		}
		return ids
	case course.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	case course.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedgroups != nil {
		edges = append(edges, course.EdgeGroups)
	}
	if m.removedparticipants != nil {
		edges = append(edges, course.EdgeParticipants)
	}
	if m.removedassignments != nil {
		edges = append(edges, course.EdgeAssignments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case course.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.removedgroups))
		for id := range m.removedgroups {
			ids = append(ids, id)
		}
		return ids
	case course.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	case course.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedgroups {
		edges = append(edges, course.EdgeGroups)
	}
	if m.clearedparticipants {
		edges = append(edges, course.EdgeParticipants)
	}
	if m.clearedassignments {
		edges = append(edges, course.EdgeAssignments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourseMutation) EdgeCleared(name string) bool {
	switch name {
	case course.EdgeGroups:
		return m.clearedgroups
	case course.EdgeParticipants:
		return m.clearedparticipants
	case course.EdgeAssignments:
		return m.clearedassignments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourseMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Course unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourseMutation) ResetEdge(name string) error {
	switch name {
	case course.EdgeGroups:
		m.ResetGroups()
		return nil
	case course.EdgeParticipants:
		m.ResetParticipants()
		return nil
	case course.EdgeAssignments:
		m.ResetAssignments()
		return nil
	}
	return fmt.Errorf("unknown Course edge %s", name)
}

// FileComparisonMutation represents an operation that mutates the FileComparison nodes in the graph.
type FileComparisonMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	older_digest_type   *string
	newer_digest_type   *string
	similarity_score    *float64
	addsimilarity_score *float64
	clearedFields       map[string]struct{}
	older_file          *int
	clearedolder_file   bool
	newer_file          *int
	clearednewer_file   bool
	done                bool
	oldValue            func(context.Context) (*FileComparison, error)
	predicates          []predicate.FileComparison
}

var _ ent.Mutation = (*FileComparisonMutation)(nil)

// filecomparisonOption allows management of the mutation configuration using functional options.
type filecomparisonOption func(*FileComparisonMutation)

// newFileComparisonMutation creates new mutation for the FileComparison entity.
func newFileComparisonMutation(c config, op Op, opts ...filecomparisonOption) *FileComparisonMutation {
	m := &FileComparisonMutation{
		config:        c,
		op:            op,
		typ:           TypeFileComparison,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileComparisonID sets the ID field of the mutation.
func withFileComparisonID(id int) filecomparisonOption {
	return func(m *FileComparisonMutation) {
		var (
			err   error
			once  sync.Once
			value *FileComparison
		)
		m.oldValue = func(ctx context.Context) (*FileComparison, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FileComparison.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFileComparison sets the old FileComparison of the mutation.
func withFileComparison(node *FileComparison) filecomparisonOption {
	return func(m *FileComparisonMutation) {
		m.oldValue = func(context.Context) (*FileComparison, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileComparisonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileComparisonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileComparisonMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileComparisonMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FileComparison.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOlderFileID sets the "older_file_id" field.
func (m *FileComparisonMutation) SetOlderFileID(i int) {
	m.older_file = &i
}

// OlderFileID returns the value of the "older_file_id" field in the mutation.
func (m *FileComparisonMutation) OlderFileID() (r int, exists bool) {
	v := m.older_file
	if v == nil {
		return
	}
	return *v, true
}

// OldOlderFileID returns the old "older_file_id" field's value of the FileComparison entity.
// If the FileComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileComparisonMutation) OldOlderFileID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOlderFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOlderFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOlderFileID: %w", err)
	}
	return oldValue.OlderFileID, nil
}

// ResetOlderFileID resets all changes to the "older_file_id" field.
func (m *FileComparisonMutation) ResetOlderFileID() {
	m.older_file = nil
}

// SetOlderDigestType sets the "older_digest_type" field.
func (m *FileComparisonMutation) SetOlderDigestType(s string) {
	m.older_digest_type = &s
}

// OlderDigestType returns the value of the "older_digest_type" field in the mutation.
func (m *FileComparisonMutation) OlderDigestType() (r string, exists bool) {
	v := m.older_digest_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOlderDigestType returns the old "older_digest_type" field's value of the FileComparison entity.
// If the FileComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileComparisonMutation) OldOlderDigestType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOlderDigestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOlderDigestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOlderDigestType: %w", err)
	}
	return oldValue.OlderDigestType, nil
}

// ResetOlderDigestType resets all changes to the "older_digest_type" field.
func (m *FileComparisonMutation) ResetOlderDigestType() {
	m.older_digest_type = nil
}

// SetNewerFileID sets the "newer_file_id" field.
func (m *FileComparisonMutation) SetNewerFileID(i int) {
	m.newer_file = &i
}

// NewerFileID returns the value of the "newer_file_id" field in the mutation.
func (m *FileComparisonMutation) NewerFileID() (r int, exists bool) {
	v := m.newer_file
	if v == nil {
		return
	}
	return *v, true
}

// OldNewerFileID returns the old "newer_file_id" field's value of the FileComparison entity.
// If the FileComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileComparisonMutation) OldNewerFileID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewerFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewerFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewerFileID: %w", err)
	}
	return oldValue.NewerFileID, nil
}

// ResetNewerFileID resets all changes to the "newer_file_id" field.
func (m *FileComparisonMutation) ResetNewerFileID() {
	m.newer_file = nil
}

// SetNewerDigestType sets the "newer_digest_type" field.
func (m *FileComparisonMutation) SetNewerDigestType(s string) {
	m.newer_digest_type = &s
}

// NewerDigestType returns the value of the "newer_digest_type" field in the mutation.
func (m *FileComparisonMutation) NewerDigestType() (r string, exists bool) {
	v := m.newer_digest_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNewerDigestType returns the old "newer_digest_type" field's value of the FileComparison entity.
// If the FileComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileComparisonMutation) OldNewerDigestType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewerDigestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewerDigestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewerDigestType: %w", err)
	}
	return oldValue.NewerDigestType, nil
}

// ResetNewerDigestType resets all changes to the "newer_digest_type" field.
func (m *FileComparisonMutation) ResetNewerDigestType() {
	m.newer_digest_type = nil
}

// SetSimilarityScore sets the "similarity_score" field.
func (m *FileComparisonMutation) SetSimilarityScore(f float64) {
	m.similarity_score = &f
	m.addsimilarity_score = nil
}

// SimilarityScore returns the value of the "similarity_score" field in the mutation.
func (m *FileComparisonMutation) SimilarityScore() (r float64, exists bool) {
	v := m.similarity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarityScore returns the old "similarity_score" field's value of the FileComparison entity.
// If the FileComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileComparisonMutation) OldSimilarityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarityScore: %w", err)
	}
	return oldValue.SimilarityScore, nil
}

// AddSimilarityScore adds f to the "similarity_score" field.
func (m *FileComparisonMutation) AddSimilarityScore(f float64) {
	if m.addsimilarity_score != nil {
		*m.addsimilarity_score += f
	} else {
		m.addsimilarity_score = &f
	}
}

// AddedSimilarityScore returns the value that was added to the "similarity_score" field in this mutation.
func (m *FileComparisonMutation) AddedSimilarityScore() (r float64, exists bool) {
	v := m.addsimilarity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSimilarityScore resets all changes to the "similarity_score" field.
func (m *FileComparisonMutation) ResetSimilarityScore() {
	m.similarity_score = nil
	m.addsimilarity_score = nil
}

// ClearOlderFile clears the "older_file" edge to the SubmittedFile entity.
func (m *FileComparisonMutation) ClearOlderFile() {
	m.clearedolder_file = true
	m.clearedFields[filecomparison.FieldOlderFileID] = struct{}{}
}

// OlderFileCleared reports if the "older_file" edge to the SubmittedFile entity was cleared.
func (m *FileComparisonMutation) OlderFileCleared() bool {
	return m.clearedolder_file
}

// OlderFileIDs returns the "older_file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OlderFileID instead. It exists only for internal usage by the builders.
func (m *FileComparisonMutation) OlderFileIDs() (ids []int) {
	if id := m.older_file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOlderFile resets all changes to the "older_file" edge.
func (m *FileComparisonMutation) ResetOlderFile() {
	m.older_file = nil
	m.clearedolder_file = false
}

// ClearNewerFile clears the "newer_file" edge to the SubmittedFile entity.
func (m *FileComparisonMutation) ClearNewerFile() {
	m.clearednewer_file = true
	m.clearedFields[filecomparison.FieldNewerFileID] = struct{}{}
}

// NewerFileCleared reports if the "newer_file" edge to the SubmittedFile entity was cleared.
func (m *FileComparisonMutation) NewerFileCleared() bool {
	return m.clearednewer_file
}

// NewerFileIDs returns the "newer_file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NewerFileID instead. It exists only for internal usage by the builders.
func (m *FileComparisonMutation) NewerFileIDs() (ids []int) {
	if id := m.newer_file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNewerFile resets all changes to the "newer_file" edge.
func (m *FileComparisonMutation) ResetNewerFile() {
	m.newer_file = nil
	m.clearednewer_file = false
}

// Where appends a list predicates to the FileComparisonMutation builder.
func (m *FileComparisonMutation) Where(ps ...predicate.FileComparison) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileComparisonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileComparisonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FileComparison, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileComparisonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileComparisonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FileComparison).
func (m *FileComparisonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileComparisonMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.older_file != nil {
		fields = append(fields, filecomparison.FieldOlderFileID)
	}
	if m.older_digest_type != nil {
		fields = append(fields, filecomparison.FieldOlderDigestType)
	}
	if m.newer_file != nil {
		fields = append(fields, filecomparison.FieldNewerFileID)
	}
	if m.newer_digest_type != nil {
		fields = append(fields, filecomparison.FieldNewerDigestType)
	}
	if m.similarity_score != nil {
		fields = append(fields, filecomparison.FieldSimilarityScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileComparisonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case filecomparison.FieldOlderFileID:
		return m.OlderFileID()
	case filecomparison.FieldOlderDigestType:
		return m.OlderDigestType()
	case filecomparison.FieldNewerFileID:
		return m.NewerFileID()
	case filecomparison.FieldNewerDigestType:
		return m.NewerDigestType()
	case filecomparison.FieldSimilarityScore:
		return m.SimilarityScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileComparisonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case filecomparison.FieldOlderFileID:
		return m.OldOlderFileID(ctx)
	case filecomparison.FieldOlderDigestType:
		return m.OldOlderDigestType(ctx)
	case filecomparison.FieldNewerFileID:
		return m.OldNewerFileID(ctx)
	case filecomparison.FieldNewerDigestType:
		return m.OldNewerDigestType(ctx)
	case filecomparison.FieldSimilarityScore:
		return m.OldSimilarityScore(ctx)
	}
	return nil, fmt.Errorf("unknown FileComparison field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileComparisonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case filecomparison.FieldOlderFileID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOlderFileID(v)
		return nil
	case filecomparison.FieldOlderDigestType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOlderDigestType(v)
		return nil
	case filecomparison.FieldNewerFileID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewerFileID(v)
		return nil
	case filecomparison.FieldNewerDigestType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewerDigestType(v)
		return nil
	case filecomparison.FieldSimilarityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarityScore(v)
		return nil
	}
	return fmt.Errorf("unknown FileComparison field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileComparisonMutation) AddedFields() []string {
	var fields []string
	if m.addsimilarity_score != nil {
		fields = append(fields, filecomparison.FieldSimilarityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileComparisonMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case filecomparison.FieldSimilarityScore:
		return m.AddedSimilarityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileComparisonMutation) AddField(name string, value ent.Value) error {
	switch name {
	case filecomparison.FieldSimilarityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSimilarityScore(v)
		return nil
	}
	return fmt.Errorf("unknown FileComparison numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileComparisonMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileComparisonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileComparisonMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FileComparison nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileComparisonMutation) ResetField(name string) error {
	switch name {
	case filecomparison.FieldOlderFileID:
		m.ResetOlderFileID()
		return nil
	case filecomparison.FieldOlderDigestType:
		m.ResetOlderDigestType()
		return nil
	case filecomparison.FieldNewerFileID:
		m.ResetNewerFileID()
		return nil
	case filecomparison.FieldNewerDigestType:
		m.ResetNewerDigestType()
		return nil
	case filecomparison.FieldSimilarityScore:
		m.ResetSimilarityScore()
		return nil
	}
	return fmt.Errorf("unknown FileComparison field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileComparisonMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.older_file != nil {
		edges = append(edges, filecomparison.EdgeOlderFile)
	}
	if m.newer_file != nil {
		edges = append(edges, filecomparison.EdgeNewerFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileComparisonMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case filecomparison.EdgeOlderFile:
		if id := m.older_file; id != nil {
			return []ent.Value{*id}
		}
	case filecomparison.EdgeNewerFile:
		if id := m.newer_file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileComparisonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileComparisonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileComparisonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedolder_file {
		edges = append(edges, filecomparison.EdgeOlderFile)
	}
	if m.clearednewer_file {
		edges = append(edges, filecomparison.EdgeNewerFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileComparisonMutation) EdgeCleared(name string) bool {
	switch name {
	case filecomparison.EdgeOlderFile:
		return m.clearedolder_file
	case filecomparison.EdgeNewerFile:
		return m.clearednewer_file
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileComparisonMutation) ClearEdge(name string) error {
	switch name {
	case filecomparison.EdgeOlderFile:
		m.ClearOlderFile()
		return nil
	case filecomparison.EdgeNewerFile:
		m.ClearNewerFile()
		return nil
	}
	return fmt.Errorf("unknown FileComparison unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileComparisonMutation) ResetEdge(name string) error {
	switch name {
	case filecomparison.EdgeOlderFile:
		m.ResetOlderFile()
		return nil
	case filecomparison.EdgeNewerFile:
		m.ResetNewerFile()
		return nil
	}
	return fmt.Errorf("unknown FileComparison edge %s", name)
}

// FileDigestMutation represents an operation that mutates the FileDigest nodes in the graph.
type FileDigestMutation struct {
	config
	op               Op
	typ              string
	id               *int
	digest_type      *string
	content          *[]byte
	created          *time.Time
	assignment_id    *int64
	addassignment_id *int64
	submission_id    *int64
	addsubmission_id *int64
	user_id          *int64
	adduser_id       *int64
	uploaded         *time.Time
	clearedFields    map[string]struct{}
	file             *int
	clearedfile      bool
	done             bool
	oldValue         func(context.Context) (*FileDigest, error)
	predicates       []predicate.FileDigest
}

var _ ent.Mutation = (*FileDigestMutation)(nil)

// filedigestOption allows management of the mutation configuration using functional options.
type filedigestOption func(*FileDigestMutation)

// newFileDigestMutation creates new mutation for the FileDigest entity.
func newFileDigestMutation(c config, op Op, opts ...filedigestOption) *FileDigestMutation {
	m := &FileDigestMutation{
		config:        c,
		op:            op,
		typ:           TypeFileDigest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileDigestID sets the ID field of the mutation.
func withFileDigestID(id int) filedigestOption {
	return func(m *FileDigestMutation) {
		var (
			err   error
			once  sync.Once
			value *FileDigest
		)
		m.oldValue = func(ctx context.Context) (*FileDigest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FileDigest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFileDigest sets the old FileDigest of the mutation.
func withFileDigest(node *FileDigest) filedigestOption {
	return func(m *FileDigestMutation) {
		m.oldValue = func(context.Context) (*FileDigest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileDigestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileDigestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileDigestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileDigestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FileDigest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *FileDigestMutation) SetFileID(i int) {
	m.file = &i
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *FileDigestMutation) FileID() (r int, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the FileDigest entity.
// If the FileDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileDigestMutation) OldFileID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *FileDigestMutation) ResetFileID() {
	m.file = nil
}

// SetDigestType sets the "digest_type" field.
func (m *FileDigestMutation) SetDigestType(s string) {
	m.digest_type = &s
}

// DigestType returns the value of the "digest_type" field in the mutation.
func (m *FileDigestMutation) DigestType() (r string, exists bool) {
	v := m.digest_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDigestType returns the old "digest_type" field's value of the FileDigest entity.
// If the FileDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileDigestMutation) OldDigestType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDigestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDigestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDigestType: %w", err)
	}
	return oldValue.DigestType, nil
}

// ResetDigestType resets all changes to the "digest_type" field.
func (m *FileDigestMutation) ResetDigestType() {
	m.digest_type = nil
}

// SetContent sets the "content" field.
func (m *FileDigestMutation) SetContent(b []byte) {
	m.content = &b
}

// Content returns the value of the "content" field in the mutation.
func (m *FileDigestMutation) Content() (r []byte, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the FileDigest entity.
// If the FileDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileDigestMutation) OldContent(ctx context.Context) (v *[]byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *FileDigestMutation) ClearContent() {
	m.content = nil
	m.clearedFields[filedigest.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *FileDigestMutation) ContentCleared() bool {
	_, ok := m.clearedFields[filedigest.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *FileDigestMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, filedigest.FieldContent)
}

// SetCreated sets the "created" field.
func (m *FileDigestMutation) SetCreated(t time.Time) {
	m.created = &t
}

// Created returns the value of the "created" field in the mutation.
func (m *FileDigestMutation) Created() (r time.Time, exists bool) {
	v := m.created
	if v == nil {
		return
	}
	return *v, true
}

// OldCreated returns the old "created" field's value of the FileDigest entity.
// If the FileDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileDigestMutation) OldCreated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreated: %w", err)
	}
	return oldValue.Created, nil
}

// ResetCreated resets all changes to the "created" field.
func (m *FileDigestMutation) ResetCreated() {
	m.created = nil
}

// SetAssignmentID sets the "assignment_id" field.
func (m *FileDigestMutation) SetAssignmentID(i int64) {
	m.assignment_id = &i
	m.addassignment_id = nil
}

// AssignmentID returns the value of the "assignment_id" field in the mutation.
func (m *FileDigestMutation) AssignmentID() (r int64, exists bool) {
	v := m.assignment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentID returns the old "assignment_id" field's value of the FileDigest entity.
// If the FileDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileDigestMutation) OldAssignmentID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentID: %w", err)
	}
	return oldValue.AssignmentID, nil
}

// AddAssignmentID adds i to the "assignment_id" field.
func (m *FileDigestMutation) AddAssignmentID(i int64) {
	if m.addassignment_id != nil {
		*m.addassignment_id += i
	} else {
		m.addassignment_id = &i
	}
}

// AddedAssignmentID returns the value that was added to the "assignment_id" field in this mutation.
func (m *FileDigestMutation) AddedAssignmentID() (r int64, exists bool) {
	v := m.addassignment_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetAssignmentID resets all changes to the "assignment_id" field.
func (m *FileDigestMutation) ResetAssignmentID() {
	m.assignment_id = nil
	m.addassignment_id = nil
}

// SetSubmissionID sets the "submission_id" field.
func (m *FileDigestMutation) SetSubmissionID(i int64) {
	m.submission_id = &i
	m.addsubmission_id = nil
}

// SubmissionID returns the value of the "submission_id" field in the mutation.
func (m *FileDigestMutation) SubmissionID() (r int64, exists bool) {
	v := m.submission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionID returns the old "submission_id" field's value of the FileDigest entity.
// If the FileDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileDigestMutation) OldSubmissionID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionID: %w", err)
	}
	return oldValue.SubmissionID, nil
}

// AddSubmissionID adds i to the "submission_id" field.
func (m *FileDigestMutation) AddSubmissionID(i int64) {
	if m.addsubmission_id != nil {
		*m.addsubmission_id += i
	} else {
		m.addsubmission_id = &i
	}
}

// AddedSubmissionID returns the value that was added to the "submission_id" field in this mutation.
func (m *FileDigestMutation) AddedSubmissionID() (r int64, exists bool) {
	v := m.addsubmission_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubmissionID resets all changes to the "submission_id" field.
func (m *FileDigestMutation) ResetSubmissionID() {
	m.submission_id = nil
	m.addsubmission_id = nil
}

// SetUserID sets the "user_id" field.
func (m *FileDigestMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *FileDigestMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the FileDigest entity.
// If the FileDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileDigestMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *FileDigestMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *FileDigestMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *FileDigestMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetUploaded sets the "uploaded" field.
func (m *FileDigestMutation) SetUploaded(t time.Time) {
	m.uploaded = &t
}

// Uploaded returns the value of the "uploaded" field in the mutation.
func (m *FileDigestMutation) Uploaded() (r time.Time, exists bool) {
	v := m.uploaded
	if v == nil {
		return
	}
	return *v, true
}

// OldUploaded returns the old "uploaded" field's value of the FileDigest entity.
// If the FileDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileDigestMutation) OldUploaded(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploaded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploaded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploaded: %w", err)
	}
	return oldValue.Uploaded, nil
}

// ResetUploaded resets all changes to the "uploaded" field.
func (m *FileDigestMutation) ResetUploaded() {
	m.uploaded = nil
}

// ClearFile clears the "file" edge to the SubmittedFile entity.
func (m *FileDigestMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[filedigest.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the SubmittedFile entity was cleared.
func (m *FileDigestMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *FileDigestMutation) FileIDs() (ids []int) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *FileDigestMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the FileDigestMutation builder.
func (m *FileDigestMutation) Where(ps ...predicate.FileDigest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileDigestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileDigestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FileDigest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileDigestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileDigestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FileDigest).
func (m *FileDigestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileDigestMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.file != nil {
		fields = append(fields, filedigest.FieldFileID)
	}
	if m.digest_type != nil {
		fields = append(fields, filedigest.FieldDigestType)
	}
	if m.content != nil {
		fields = append(fields, filedigest.FieldContent)
	}
	if m.created != nil {
		fields = append(fields, filedigest.FieldCreated)
	}
	if m.assignment_id != nil {
		fields = append(fields, filedigest.FieldAssignmentID)
	}
	if m.submission_id != nil {
		fields = append(fields, filedigest.FieldSubmissionID)
	}
	if m.user_id != nil {
		fields = append(fields, filedigest.FieldUserID)
	}
	if m.uploaded != nil {
		fields = append(fields, filedigest.FieldUploaded)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileDigestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case filedigest.FieldFileID:
		return m.FileID()
	case filedigest.FieldDigestType:
		return m.DigestType()
	case filedigest.FieldContent:
		return m.Content()
	case filedigest.FieldCreated:
		return m.Created()
	case filedigest.FieldAssignmentID:
		return m.AssignmentID()
	case filedigest.FieldSubmissionID:
		return m.SubmissionID()
	case filedigest.FieldUserID:
		return m.UserID()
	case filedigest.FieldUploaded:
		return m.Uploaded()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileDigestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case filedigest.FieldFileID:
		return m.OldFileID(ctx)
	case filedigest.FieldDigestType:
		return m.OldDigestType(ctx)
	case filedigest.FieldContent:
		return m.OldContent(ctx)
	case filedigest.FieldCreated:
		return m.OldCreated(ctx)
	case filedigest.FieldAssignmentID:
		return m.OldAssignmentID(ctx)
	case filedigest.FieldSubmissionID:
		return m.OldSubmissionID(ctx)
	case filedigest.FieldUserID:
		return m.OldUserID(ctx)
	case filedigest.FieldUploaded:
		return m.OldUploaded(ctx)
	}
	return nil, fmt.Errorf("unknown FileDigest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileDigestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case filedigest.FieldFileID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case filedigest.FieldDigestType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDigestType(v)
		return nil
	case filedigest.FieldContent:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case filedigest.FieldCreated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreated(v)
		return nil
	case filedigest.FieldAssignmentID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentID(v)
		return nil
	case filedigest.FieldSubmissionID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionID(v)
		return nil
	case filedigest.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case filedigest.FieldUploaded:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploaded(v)
		return nil
	}
	return fmt.Errorf("unknown FileDigest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileDigestMutation) AddedFields() []string {
	var fields []string
	if m.addassignment_id != nil {
		fields = append(fields, filedigest.FieldAssignmentID)
	}
	if m.addsubmission_id != nil {
		fields = append(fields, filedigest.FieldSubmissionID)
	}
	if m.adduser_id != nil {
		fields = append(fields, filedigest.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileDigestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case filedigest.FieldAssignmentID:
		return m.AddedAssignmentID()
	case filedigest.FieldSubmissionID:
		return m.AddedSubmissionID()
	case filedigest.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileDigestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case filedigest.FieldAssignmentID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssignmentID(v)
		return nil
	case filedigest.FieldSubmissionID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubmissionID(v)
		return nil
	case filedigest.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown FileDigest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileDigestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(filedigest.FieldContent) {
		fields = append(fields, filedigest.FieldContent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileDigestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileDigestMutation) ClearField(name string) error {
	switch name {
	case filedigest.FieldContent:
		m.ClearContent()
		return nil
	}
	return fmt.Errorf("unknown FileDigest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileDigestMutation) ResetField(name string) error {
	switch name {
	case filedigest.FieldFileID:
		m.ResetFileID()
		return nil
	case filedigest.FieldDigestType:
		m.ResetDigestType()
		return nil
	case filedigest.FieldContent:
		m.ResetContent()
		return nil
	case filedigest.FieldCreated:
		m.ResetCreated()
		return nil
	case filedigest.FieldAssignmentID:
		m.ResetAssignmentID()
		return nil
	case filedigest.FieldSubmissionID:
		m.ResetSubmissionID()
		return nil
	case filedigest.FieldUserID:
		m.ResetUserID()
		return nil
	case filedigest.FieldUploaded:
		m.ResetUploaded()
		return nil
	}
	return fmt.Errorf("unknown FileDigest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileDigestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file != nil {
		edges = append(edges, filedigest.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileDigestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case filedigest.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileDigestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileDigestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileDigestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile {
		edges = append(edges, filedigest.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileDigestMutation) EdgeCleared(name string) bool {
	switch name {
	case filedigest.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileDigestMutation) ClearEdge(name string) error {
	switch name {
	case filedigest.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown FileDigest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileDigestMutation) ResetEdge(name string) error {
	switch name {
	case filedigest.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown FileDigest edge %s", name)
}

// FileWarningMutation represents an operation that mutates the FileWarning nodes in the graph.
type FileWarningMutation struct {
	config
	op            Op
	typ           string
	id            *int
	warning_type  *string
	message       *string
	clearedFields map[string]struct{}
	file          *int
	clearedfile   bool
	done          bool
	oldValue      func(context.Context) (*FileWarning, error)
	predicates    []predicate.FileWarning
}

var _ ent.Mutation = (*FileWarningMutation)(nil)

// filewarningOption allows management of the mutation configuration using functional options.
type filewarningOption func(*FileWarningMutation)

// newFileWarningMutation creates new mutation for the FileWarning entity.
func newFileWarningMutation(c config, op Op, opts ...filewarningOption) *FileWarningMutation {
	m := &FileWarningMutation{
		config:        c,
		op:            op,
		typ:           TypeFileWarning,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileWarningID sets the ID field of the mutation.
func withFileWarningID(id int) filewarningOption {
	return func(m *FileWarningMutation) {
		var (
			err   error
			once  sync.Once
			value *FileWarning
		)
		m.oldValue = func(ctx context.Context) (*FileWarning, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FileWarning.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFileWarning sets the old FileWarning of the mutation.
func withFileWarning(node *FileWarning) filewarningOption {
	return func(m *FileWarningMutation) {
		m.oldValue = func(context.Context) (*FileWarning, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileWarningMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileWarningMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileWarningMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileWarningMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FileWarning.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *FileWarningMutation) SetFileID(i int) {
	m.file = &i
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *FileWarningMutation) FileID() (r int, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the FileWarning entity.
// If the FileWarning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileWarningMutation) OldFileID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *FileWarningMutation) ResetFileID() {
	m.file = nil
}

// SetWarningType sets the "warning_type" field.
func (m *FileWarningMutation) SetWarningType(s string) {
	m.warning_type = &s
}

// WarningType returns the value of the "warning_type" field in the mutation.
func (m *FileWarningMutation) WarningType() (r string, exists bool) {
	v := m.warning_type
	if v == nil {
		return
	}
	return *v, true
}

// OldWarningType returns the old "warning_type" field's value of the FileWarning entity.
// If the FileWarning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileWarningMutation) OldWarningType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarningType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarningType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarningType: %w", err)
	}
	return oldValue.WarningType, nil
}

// ResetWarningType resets all changes to the "warning_type" field.
func (m *FileWarningMutation) ResetWarningType() {
	m.warning_type = nil
}

// SetMessage sets the "message" field.
func (m *FileWarningMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *FileWarningMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the FileWarning entity.
// If the FileWarning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileWarningMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *FileWarningMutation) ResetMessage() {
	m.message = nil
}

// ClearFile clears the "file" edge to the SubmittedFile entity.
func (m *FileWarningMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[filewarning.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the SubmittedFile entity was cleared.
func (m *FileWarningMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *FileWarningMutation) FileIDs() (ids []int) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *FileWarningMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the FileWarningMutation builder.
func (m *FileWarningMutation) Where(ps ...predicate.FileWarning) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileWarningMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileWarningMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FileWarning, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileWarningMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileWarningMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FileWarning).
func (m *FileWarningMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileWarningMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.file != nil {
		fields = append(fields, filewarning.FieldFileID)
	}
	if m.warning_type != nil {
		fields = append(fields, filewarning.FieldWarningType)
	}
	if m.message != nil {
		fields = append(fields, filewarning.FieldMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileWarningMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case filewarning.FieldFileID:
		return m.FileID()
	case filewarning.FieldWarningType:
		return m.WarningType()
	case filewarning.FieldMessage:
		return m.Message()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileWarningMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case filewarning.FieldFileID:
		return m.OldFileID(ctx)
	case filewarning.FieldWarningType:
		return m.OldWarningType(ctx)
	case filewarning.FieldMessage:
		return m.OldMessage(ctx)
	}
	return nil, fmt.Errorf("unknown FileWarning field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileWarningMutation) SetField(name string, value ent.Value) error {
	switch name {
	case filewarning.FieldFileID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case filewarning.FieldWarningType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarningType(v)
		return nil
	case filewarning.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	}
	return fmt.Errorf("unknown FileWarning field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileWarningMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileWarningMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileWarningMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FileWarning numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileWarningMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileWarningMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileWarningMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FileWarning nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileWarningMutation) ResetField(name string) error {
	switch name {
	case filewarning.FieldFileID:
		m.ResetFileID()
		return nil
	case filewarning.FieldWarningType:
		m.ResetWarningType()
		return nil
	case filewarning.FieldMessage:
		m.ResetMessage()
		return nil
	}
	return fmt.Errorf("unknown FileWarning field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileWarningMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file != nil {
		edges = append(edges, filewarning.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileWarningMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case filewarning.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileWarningMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileWarningMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileWarningMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile {
		edges = append(edges, filewarning.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileWarningMutation) EdgeCleared(name string) bool {
	switch name {
	case filewarning.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileWarningMutation) ClearEdge(name string) error {
	switch name {
	case filewarning.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown FileWarning unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileWarningMutation) ResetEdge(name string) error {
	switch name {
	case filewarning.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown FileWarning edge %s", name)
}

// GroupMutation represents an operation that mutates the Group nodes in the graph.
type GroupMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int64
	name                      *string
	clearedFields             map[string]struct{}
	course                    *int64
	clearedcourse             bool
	participant_groups        map[int]struct{}
	removedparticipant_groups map[int]struct{}
	clearedparticipant_groups bool
	done                      bool
	oldValue                  func(context.Context) (*Group, error)
	predicates                []predicate.Group
}

var _ ent.Mutation = (*GroupMutation)(nil)

// groupOption allows management of the mutation configuration using functional options.
type groupOption func(*GroupMutation)

// newGroupMutation creates new mutation for the Group entity.
func newGroupMutation(c config, op Op, opts ...groupOption) *GroupMutation {
	m := &GroupMutation{
		config:        c,
		op:            op,
		typ:           TypeGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupID sets the ID field of the mutation.
func withGroupID(id int64) groupOption {
	return func(m *GroupMutation) {
		var (
			err   error
			once  sync.Once
			value *Group
		)
		m.oldValue = func(ctx context.Context) (*Group, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Group.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroup sets the old Group of the mutation.
func withGroup(node *Group) groupOption {
	return func(m *GroupMutation) {
		m.oldValue = func(context.Context) (*Group, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Group entities.
func (m *GroupMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Group.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCourseID sets the "course_id" field.
func (m *GroupMutation) SetCourseID(i int64) {
	m.course = &i
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *GroupMutation) CourseID() (r int64, exists bool) {
	v := m.course
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldCourseID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *GroupMutation) ResetCourseID() {
	m.course = nil
}

// SetName sets the "name" field.
func (m *GroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *GroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *GroupMutation) ResetName() {
	m.name = nil
}

// ClearCourse clears the "course" edge to the Course entity.
func (m *GroupMutation) ClearCourse() {
	m.clearedcourse = true
	m.clearedFields[group.FieldCourseID] = struct{}{}
}

// CourseCleared reports if the "course" edge to the Course entity was cleared.
func (m *GroupMutation) CourseCleared() bool {
	return m.clearedcourse
}

// CourseIDs returns the "course" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourseID instead. It exists only for internal usage by the builders.
func (m *GroupMutation) CourseIDs() (ids []int64) {
	if id := m.course; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourse resets all changes to the "course" edge.
func (m *GroupMutation) ResetCourse() {
	m.course = nil
	m.clearedcourse = false
}

// AddParticipantGroupIDs adds the "participant_groups" edge to the ParticipantGroup entity by ids.
func (m *GroupMutation) AddParticipantGroupIDs(ids ...int) {
	if m.participant_groups == nil {
		m.participant_groups = make(map[int]struct{})
	}
	for i := range ids {
		m.participant_groups[ids[i]] = struct{}{}
	}
}

// ClearParticipantGroups clears the "participant_groups" edge to the ParticipantGroup entity.
func (m *GroupMutation) ClearParticipantGroups() {
	m.clearedparticipant_groups = true
}

// ParticipantGroupsCleared reports if the "participant_groups" edge to the ParticipantGroup entity was cleared.
func (m *GroupMutation) ParticipantGroupsCleared() bool {
	return m.clearedparticipant_groups
}

// RemoveParticipantGroupIDs removes the "participant_groups" edge to the ParticipantGroup entity by IDs.
func (m *GroupMutation) RemoveParticipantGroupIDs(ids ...int) {
	if m.removedparticipant_groups == nil {
		m.removedparticipant_groups = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.participant_groups, ids[i])
		m.removedparticipant_groups[ids[i]] = struct{}{}
	}
}

// RemovedParticipantGroups returns the removed IDs of the "participant_groups" edge to the ParticipantGroup entity.
func (m *GroupMutation) RemovedParticipantGroupsIDs() (ids []int) {
	for id := range m.removedparticipant_groups {
		ids = append(ids, id)
	}
	return
}

// ParticipantGroupsIDs returns the "participant_groups" edge IDs in the mutation.
func (m *GroupMutation) ParticipantGroupsIDs() (ids []int) {
	for id := range m.participant_groups {
		ids = append(ids, id)
	}
	return
}

// ResetParticipantGroups resets all changes to the "participant_groups" edge.
func (m *GroupMutation) ResetParticipantGroups() {
	m.participant_groups = nil
	m.clearedparticipant_groups = false
	m.removedparticipant_groups = nil
}

// Where appends a list predicates to the GroupMutation builder.
func (m *GroupMutation) Where(ps ...predicate.Group) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Group, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Group).
func (m *GroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.course != nil {
		fields = append(fields, group.FieldCourseID)
	}
	if m.name != nil {
		fields = append(fields, group.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case group.FieldCourseID:
		return m.CourseID()
	case group.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case group.FieldCourseID:
		return m.OldCourseID(ctx)
	case group.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Group field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case group.FieldCourseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case group.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Group numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Group nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupMutation) ResetField(name string) error {
	switch name {
	case group.FieldCourseID:
		m.ResetCourseID()
		return nil
	case group.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.course != nil {
		edges = append(edges, group.EdgeCourse)
	}
	if m.participant_groups != nil {
		edges = append(edges, group.EdgeParticipantGroups)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeCourse:
		if id := m.course; id != nil {
			return []ent.Value{*id}
		}
	case group.EdgeParticipantGroups:
		ids := make([]ent.Value, 0, len(m.participant_groups))
		for id := range m.participant_groups {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedparticipant_groups != nil {
		edges = append(edges, group.EdgeParticipantGroups)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeParticipantGroups:
		ids := make([]ent.Value, 0, len(m.removedparticipant_groups))
		for id := range m.removedparticipant_groups {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcourse {
		edges = append(edges, group.EdgeCourse)
	}
	if m.clearedparticipant_groups {
		edges = append(edges, group.EdgeParticipantGroups)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupMutation) EdgeCleared(name string) bool {
	switch name {
	case group.EdgeCourse:
		return m.clearedcourse
	case group.EdgeParticipantGroups:
		return m.clearedparticipant_groups
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupMutation) ClearEdge(name string) error {
	switch name {
	case group.EdgeCourse:
		m.ClearCourse()
		return nil
	}
	return fmt.Errorf("unknown Group unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupMutation) ResetEdge(name string) error {
	switch name {
	case group.EdgeCourse:
		m.ResetCourse()
		return nil
	case group.EdgeParticipantGroups:
		m.ResetParticipantGroups()
		return nil
	}
	return fmt.Errorf("unknown Group edge %s", name)
}

// ParticipantMutation represents an operation that mutates the Participant nodes in the graph.
type ParticipantMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	clearedFields            map[string]struct{}
	course                   *int64
	clearedcourse            bool
	user                     *int64
	cleareduser              bool
	roles                    map[int]struct{}
	removedroles             map[int]struct{}
	clearedroles             bool
	group_memberships        map[int]struct{}
	removedgroup_memberships map[int]struct{}
	clearedgroup_memberships bool
	done                     bool
	oldValue                 func(context.Context) (*Participant, error)
	predicates               []predicate.Participant
}

var _ ent.Mutation = (*ParticipantMutation)(nil)

// participantOption allows management of the mutation configuration using functional options.
type participantOption func(*ParticipantMutation)

// newParticipantMutation creates new mutation for the Participant entity.
func newParticipantMutation(c config, op Op, opts ...participantOption) *ParticipantMutation {
	m := &ParticipantMutation{
		config:        c,
		op:            op,
		typ:           TypeParticipant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParticipantID sets the ID field of the mutation.
func withParticipantID(id int) participantOption {
	return func(m *ParticipantMutation) {
		var (
			err   error
			once  sync.Once
			value *Participant
		)
		m.oldValue = func(ctx context.Context) (*Participant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Participant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParticipant sets the old Participant of the mutation.
func withParticipant(node *Participant) participantOption {
	return func(m *ParticipantMutation) {
		m.oldValue = func(context.Context) (*Participant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParticipantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParticipantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParticipantMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParticipantMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Participant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCourseID sets the "course_id" field.
func (m *ParticipantMutation) SetCourseID(i int64) {
	m.course = &i
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *ParticipantMutation) CourseID() (r int64, exists bool) {
	v := m.course
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldCourseID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *ParticipantMutation) ResetCourseID() {
	m.course = nil
}

// SetUserID sets the "user_id" field.
func (m *ParticipantMutation) SetUserID(i int64) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ParticipantMutation) UserID() (r int64, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ParticipantMutation) ResetUserID() {
	m.user = nil
}

// ClearCourse clears the "course" edge to the Course entity.
func (m *ParticipantMutation) ClearCourse() {
	m.clearedcourse = true
	m.clearedFields[participant.FieldCourseID] = struct{}{}
}

// CourseCleared reports if the "course" edge to the Course entity was cleared.
func (m *ParticipantMutation) CourseCleared() bool {
	return m.clearedcourse
}

// CourseIDs returns the "course" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourseID instead. It exists only for internal usage by the builders.
func (m *ParticipantMutation) CourseIDs() (ids []int64) {
	if id := m.course; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourse resets all changes to the "course" edge.
func (m *ParticipantMutation) ResetCourse() {
	m.course = nil
	m.clearedcourse = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *ParticipantMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[participant.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ParticipantMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ParticipantMutation) UserIDs() (ids []int64) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ParticipantMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddRoleIDs adds the "roles" edge to the ParticipantRole entity by ids.
func (m *ParticipantMutation) AddRoleIDs(ids ...int) {
	if m.roles == nil {
		m.roles = make(map[int]struct{})
	}
	for i := range ids {
		m.roles[ids[i]] = struct{}{}
	}
}

// ClearRoles clears the "roles" edge to the ParticipantRole entity.
func (m *ParticipantMutation) ClearRoles() {
	m.clearedroles = true
}

// RolesCleared reports if the "roles" edge to the ParticipantRole entity was cleared.
func (m *ParticipantMutation) RolesCleared() bool {
	return m.clearedroles
}

// RemoveRoleIDs removes the "roles" edge to the ParticipantRole entity by IDs.
func (m *ParticipantMutation) RemoveRoleIDs(ids ...int) {
	if m.removedroles == nil {
		m.removedroles = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.roles, ids[i])
		m.removedroles[ids[i]] = struct{}{}
	}
}

// RemovedRoles returns the removed IDs of the "roles" edge to the ParticipantRole entity.
func (m *ParticipantMutation) RemovedRolesIDs() (ids []int) {
	for id := range m.removedroles {
		ids = append(ids, id)
	}
	return
}

// RolesIDs returns the "roles" edge IDs in the mutation.
func (m *ParticipantMutation) RolesIDs() (ids []int) {
	for id := range m.roles {
		ids = append(ids, id)
	}
	return
}

// ResetRoles resets all changes to the "roles" edge.
func (m *ParticipantMutation) ResetRoles() {
	m.roles = nil
	m.clearedroles = false
	m.removedroles = nil
}

// AddGroupMembershipIDs adds the "group_memberships" edge to the ParticipantGroup entity by ids.
func (m *ParticipantMutation) AddGroupMembershipIDs(ids ...int) {
	if m.group_memberships == nil {
		m.group_memberships = make(map[int]struct{})
	}
	for i := range ids {
		m.group_memberships[ids[i]] = struct{}{}
	}
}

// ClearGroupMemberships clears the "group_memberships" edge to the ParticipantGroup entity.
func (m *ParticipantMutation) ClearGroupMemberships() {
	m.clearedgroup_memberships = true
}

// GroupMembershipsCleared reports if the "group_memberships" edge to the ParticipantGroup entity was cleared.
func (m *ParticipantMutation) GroupMembershipsCleared() bool {
	return m.clearedgroup_memberships
}

// RemoveGroupMembershipIDs removes the "group_memberships" edge to the ParticipantGroup entity by IDs.
func (m *ParticipantMutation) RemoveGroupMembershipIDs(ids ...int) {
	if m.removedgroup_memberships == nil {
		m.removedgroup_memberships = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.group_memberships, ids[i])
		m.removedgroup_memberships[ids[i]] = struct{}{}
	}
}

// RemovedGroupMemberships returns the removed IDs of the "group_memberships" edge to the ParticipantGroup entity.
func (m *ParticipantMutation) RemovedGroupMembershipsIDs() (ids []int) {
	for id := range m.removedgroup_memberships {
		ids = append(ids, id)
	}
	return
}

// GroupMembershipsIDs returns the "group_memberships" edge IDs in the mutation.
func (m *ParticipantMutation) GroupMembershipsIDs() (ids []int) {
	for id := range m.group_memberships {
		ids = append(ids, id)
	}
	return
}

// ResetGroupMemberships resets all changes to the "group_memberships" edge.
func (m *ParticipantMutation) ResetGroupMemberships() {
	m.group_memberships = nil
	m.clearedgroup_memberships = false
	m.removedgroup_memberships = nil
}

// Where appends a list predicates to the ParticipantMutation builder.
func (m *ParticipantMutation) Where(ps ...predicate.Participant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParticipantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParticipantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Participant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParticipantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParticipantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Participant).
func (m *ParticipantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParticipantMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.course != nil {
		fields = append(fields, participant.FieldCourseID)
	}
	if m.user != nil {
		fields = append(fields, participant.FieldUserID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParticipantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case participant.FieldCourseID:
		return m.CourseID()
	case participant.FieldUserID:
		return m.UserID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParticipantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case participant.FieldCourseID:
		return m.OldCourseID(ctx)
	case participant.FieldUserID:
		return m.OldUserID(ctx)
	}
	return nil, fmt.Errorf("unknown Participant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case participant.FieldCourseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case participant.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	}
	return fmt.Errorf("unknown Participant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParticipantMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParticipantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Participant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParticipantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParticipantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParticipantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Participant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParticipantMutation) ResetField(name string) error {
	switch name {
	case participant.FieldCourseID:
		m.ResetCourseID()
		return nil
	case participant.FieldUserID:
		m.ResetUserID()
		return nil
	}
	return fmt.Errorf("unknown Participant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParticipantMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.course != nil {
		edges = append(edges, participant.EdgeCourse)
	}
	if m.user != nil {
		edges = append(edges, participant.EdgeUser)
	}
	if m.roles != nil {
		edges = append(edges, participant.EdgeRoles)
	}
	if m.group_memberships != nil {
		edges = append(edges, participant.EdgeGroupMemberships)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParticipantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case participant.EdgeCourse:
		if id := m.course; id != nil {
			return []ent.Value{*id}
		}
	case participant.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case participant.EdgeRoles:
		ids := make([]ent.Value, 0, len(m.roles))
		for id := range m.roles {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeGroupMemberships:
		ids := make([]ent.Value, 0, len(m.group_memberships))
		for id := range m.group_memberships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParticipantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedroles != nil {
		edges = append(edges, participant.EdgeRoles)
	}
	if m.removedgroup_memberships != nil {
		edges = append(edges, participant.EdgeGroupMemberships)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParticipantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case participant.EdgeRoles:
		ids := make([]ent.Value, 0, len(m.removedroles))
		for id := range m.removedroles {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeGroupMemberships:
		ids := make([]ent.Value, 0, len(m.removedgroup_memberships))
		for id := range m.removedgroup_memberships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParticipantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedcourse {
		edges = append(edges, participant.EdgeCourse)
	}
	if m.cleareduser {
		edges = append(edges, participant.EdgeUser)
	}
	if m.clearedroles {
		edges = append(edges, participant.EdgeRoles)
	}
	if m.clearedgroup_memberships {
		edges = append(edges, participant.EdgeGroupMemberships)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParticipantMutation) EdgeCleared(name string) bool {
	switch name {
	case participant.EdgeCourse:
		return m.clearedcourse
	case participant.EdgeUser:
		return m.cleareduser
	case participant.EdgeRoles:
		return m.clearedroles
	case participant.EdgeGroupMemberships:
		return m.clearedgroup_memberships
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParticipantMutation) ClearEdge(name string) error {
	switch name {
	case participant.EdgeCourse:
		m.ClearCourse()
		return nil
	case participant.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Participant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParticipantMutation) ResetEdge(name string) error {
	switch name {
	case participant.EdgeCourse:
		m.ResetCourse()
		return nil
	case participant.EdgeUser:
		m.ResetUser()
		return nil
	case participant.EdgeRoles:
		m.ResetRoles()
		return nil
	case participant.EdgeGroupMemberships:
		m.ResetGroupMemberships()
		return nil
	}
	return fmt.Errorf("unknown Participant edge %s", name)
}

// ParticipantGroupMutation represents an operation that mutates the ParticipantGroup nodes in the graph.
type ParticipantGroupMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	clearedFields      map[string]struct{}
	participant        *int
	clearedparticipant bool
	group              *int64
	clearedgroup       bool
	done               bool
	oldValue           func(context.Context) (*ParticipantGroup, error)
	predicates         []predicate.ParticipantGroup
}

var _ ent.Mutation = (*ParticipantGroupMutation)(nil)

// participantgroupOption allows management of the mutation configuration using functional options.
type participantgroupOption func(*ParticipantGroupMutation)

// newParticipantGroupMutation creates new mutation for the ParticipantGroup entity.
func newParticipantGroupMutation(c config, op Op, opts ...participantgroupOption) *ParticipantGroupMutation {
	m := &ParticipantGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeParticipantGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParticipantGroupID sets the ID field of the mutation.
func withParticipantGroupID(id int) participantgroupOption {
	return func(m *ParticipantGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *ParticipantGroup
		)
		m.oldValue = func(ctx context.Context) (*ParticipantGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParticipantGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParticipantGroup sets the old ParticipantGroup of the mutation.
func withParticipantGroup(node *ParticipantGroup) participantgroupOption {
	return func(m *ParticipantGroupMutation) {
		m.oldValue = func(context.Context) (*ParticipantGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParticipantGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParticipantGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParticipantGroupMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParticipantGroupMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParticipantGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParticipantID sets the "participant_id" field.
func (m *ParticipantGroupMutation) SetParticipantID(i int) {
	m.participant = &i
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *ParticipantGroupMutation) ParticipantID() (r int, exists bool) {
	v := m.participant
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the ParticipantGroup entity.
// If the ParticipantGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantGroupMutation) OldParticipantID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *ParticipantGroupMutation) ResetParticipantID() {
	m.participant = nil
}

// SetGroupID sets the "group_id" field.
func (m *ParticipantGroupMutation) SetGroupID(i int64) {
	m.group = &i
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *ParticipantGroupMutation) GroupID() (r int64, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the ParticipantGroup entity.
// If the ParticipantGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantGroupMutation) OldGroupID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *ParticipantGroupMutation) ResetGroupID() {
	m.group = nil
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (m *ParticipantGroupMutation) ClearParticipant() {
	m.clearedparticipant = true
	m.clearedFields[participantgroup.FieldParticipantID] = struct{}{}
}

// ParticipantCleared reports if the "participant" edge to the Participant entity was cleared.
func (m *ParticipantGroupMutation) ParticipantCleared() bool {
	return m.clearedparticipant
}

// ParticipantIDs returns the "participant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParticipantID instead. It exists only for internal usage by the builders.
func (m *ParticipantGroupMutation) ParticipantIDs() (ids []int) {
	if id := m.participant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParticipant resets all changes to the "participant" edge.
func (m *ParticipantGroupMutation) ResetParticipant() {
	m.participant = nil
	m.clearedparticipant = false
}

// ClearGroup clears the "group" edge to the Group entity.
func (m *ParticipantGroupMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[participantgroup.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the Group entity was cleared.
func (m *ParticipantGroupMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *ParticipantGroupMutation) GroupIDs() (ids []int64) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *ParticipantGroupMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// Where appends a list predicates to the ParticipantGroupMutation builder.
func (m *ParticipantGroupMutation) Where(ps ...predicate.ParticipantGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParticipantGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParticipantGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParticipantGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParticipantGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParticipantGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParticipantGroup).
func (m *ParticipantGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParticipantGroupMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.participant != nil {
		fields = append(fields, participantgroup.FieldParticipantID)
	}
	if m.group != nil {
		fields = append(fields, participantgroup.FieldGroupID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParticipantGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case participantgroup.FieldParticipantID:
		return m.ParticipantID()
	case participantgroup.FieldGroupID:
		return m.GroupID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParticipantGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case participantgroup.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case participantgroup.FieldGroupID:
		return m.OldGroupID(ctx)
	}
	return nil, fmt.Errorf("unknown ParticipantGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case participantgroup.FieldParticipantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case participantgroup.FieldGroupID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	}
	return fmt.Errorf("unknown ParticipantGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParticipantGroupMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParticipantGroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ParticipantGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParticipantGroupMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParticipantGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParticipantGroupMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ParticipantGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParticipantGroupMutation) ResetField(name string) error {
	switch name {
	case participantgroup.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case participantgroup.FieldGroupID:
		m.ResetGroupID()
		return nil
	}
	return fmt.Errorf("unknown ParticipantGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParticipantGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.participant != nil {
		edges = append(edges, participantgroup.EdgeParticipant)
	}
	if m.group != nil {
		edges = append(edges, participantgroup.EdgeGroup)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParticipantGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case participantgroup.EdgeParticipant:
		if id := m.participant; id != nil {
			return []ent.Value{*id}
		}
	case participantgroup.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParticipantGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParticipantGroupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParticipantGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedparticipant {
		edges = append(edges, participantgroup.EdgeParticipant)
	}
	if m.clearedgroup {
		edges = append(edges, participantgroup.EdgeGroup)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParticipantGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case participantgroup.EdgeParticipant:
		return m.clearedparticipant
	case participantgroup.EdgeGroup:
		return m.clearedgroup
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParticipantGroupMutation) ClearEdge(name string) error {
	switch name {
	case participantgroup.EdgeParticipant:
		m.ClearParticipant()
		return nil
	case participantgroup.EdgeGroup:
		m.ClearGroup()
		return nil
	}
	return fmt.Errorf("unknown ParticipantGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParticipantGroupMutation) ResetEdge(name string) error {
	switch name {
	case participantgroup.EdgeParticipant:
		m.ResetParticipant()
		return nil
	case participantgroup.EdgeGroup:
		m.ResetGroup()
		return nil
	}
	return fmt.Errorf("unknown ParticipantGroup edge %s", name)
}

// ParticipantRoleMutation represents an operation that mutates the ParticipantRole nodes in the graph.
type ParticipantRoleMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	clearedFields      map[string]struct{}
	participant        *int
	clearedparticipant bool
	role               *int64
	clearedrole        bool
	done               bool
	oldValue           func(context.Context) (*ParticipantRole, error)
	predicates         []predicate.ParticipantRole
}

var _ ent.Mutation = (*ParticipantRoleMutation)(nil)

// participantroleOption allows management of the mutation configuration using functional options.
type participantroleOption func(*ParticipantRoleMutation)

// newParticipantRoleMutation creates new mutation for the ParticipantRole entity.
func newParticipantRoleMutation(c config, op Op, opts ...participantroleOption) *ParticipantRoleMutation {
	m := &ParticipantRoleMutation{
		config:        c,
		op:            op,
		typ:           TypeParticipantRole,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParticipantRoleID sets the ID field of the mutation.
func withParticipantRoleID(id int) participantroleOption {
	return func(m *ParticipantRoleMutation) {
		var (
			err   error
			once  sync.Once
			value *ParticipantRole
		)
		m.oldValue = func(ctx context.Context) (*ParticipantRole, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParticipantRole.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParticipantRole sets the old ParticipantRole of the mutation.
func withParticipantRole(node *ParticipantRole) participantroleOption {
	return func(m *ParticipantRoleMutation) {
		m.oldValue = func(context.Context) (*ParticipantRole, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParticipantRoleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParticipantRoleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParticipantRoleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParticipantRoleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParticipantRole.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParticipantID sets the "participant_id" field.
func (m *ParticipantRoleMutation) SetParticipantID(i int) {
	m.participant = &i
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *ParticipantRoleMutation) ParticipantID() (r int, exists bool) {
	v := m.participant
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the ParticipantRole entity.
// If the ParticipantRole object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantRoleMutation) OldParticipantID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *ParticipantRoleMutation) ResetParticipantID() {
	m.participant = nil
}

// SetRoleID sets the "role_id" field.
func (m *ParticipantRoleMutation) SetRoleID(i int64) {
	m.role = &i
}

// RoleID returns the value of the "role_id" field in the mutation.
func (m *ParticipantRoleMutation) RoleID() (r int64, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleID returns the old "role_id" field's value of the ParticipantRole entity.
// If the ParticipantRole object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantRoleMutation) OldRoleID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleID: %w", err)
	}
	return oldValue.RoleID, nil
}

// ResetRoleID resets all changes to the "role_id" field.
func (m *ParticipantRoleMutation) ResetRoleID() {
	m.role = nil
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (m *ParticipantRoleMutation) ClearParticipant() {
	m.clearedparticipant = true
	m.clearedFields[participantrole.FieldParticipantID] = struct{}{}
}

// ParticipantCleared reports if the "participant" edge to the Participant entity was cleared.
func (m *ParticipantRoleMutation) ParticipantCleared() bool {
	return m.clearedparticipant
}

// ParticipantIDs returns the "participant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParticipantID instead. It exists only for internal usage by the builders.
func (m *ParticipantRoleMutation) ParticipantIDs() (ids []int) {
	if id := m.participant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParticipant resets all changes to the "participant" edge.
func (m *ParticipantRoleMutation) ResetParticipant() {
	m.participant = nil
	m.clearedparticipant = false
}

// ClearRole clears the "role" edge to the Role entity.
func (m *ParticipantRoleMutation) ClearRole() {
	m.clearedrole = true
	m.clearedFields[participantrole.FieldRoleID] = struct{}{}
}

// RoleCleared reports if the "role" edge to the Role entity was cleared.
func (m *ParticipantRoleMutation) RoleCleared() bool {
	return m.clearedrole
}

// RoleIDs returns the "role" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoleID instead. It exists only for internal usage by the builders.
func (m *ParticipantRoleMutation) RoleIDs() (ids []int64) {
	if id := m.role; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRole resets all changes to the "role" edge.
func (m *ParticipantRoleMutation) ResetRole() {
	m.role = nil
	m.clearedrole = false
}

// Where appends a list predicates to the ParticipantRoleMutation builder.
func (m *ParticipantRoleMutation) Where(ps ...predicate.ParticipantRole) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParticipantRoleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParticipantRoleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParticipantRole, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParticipantRoleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParticipantRoleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParticipantRole).
func (m *ParticipantRoleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParticipantRoleMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.participant != nil {
		fields = append(fields, participantrole.FieldParticipantID)
	}
	if m.role != nil {
		fields = append(fields, participantrole.FieldRoleID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParticipantRoleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case participantrole.FieldParticipantID:
		return m.ParticipantID()
	case participantrole.FieldRoleID:
		return m.RoleID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParticipantRoleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case participantrole.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case participantrole.FieldRoleID:
		return m.OldRoleID(ctx)
	}
	return nil, fmt.Errorf("unknown ParticipantRole field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantRoleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case participantrole.FieldParticipantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case participantrole.FieldRoleID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleID(v)
		return nil
	}
	return fmt.Errorf("unknown ParticipantRole field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParticipantRoleMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParticipantRoleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantRoleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ParticipantRole numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParticipantRoleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParticipantRoleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParticipantRoleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ParticipantRole nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParticipantRoleMutation) ResetField(name string) error {
	switch name {
	case participantrole.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case participantrole.FieldRoleID:
		m.ResetRoleID()
		return nil
	}
	return fmt.Errorf("unknown ParticipantRole field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParticipantRoleMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.participant != nil {
		edges = append(edges, participantrole.EdgeParticipant)
	}
	if m.role != nil {
		edges = append(edges, participantrole.EdgeRole)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParticipantRoleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case participantrole.EdgeParticipant:
		if id := m.participant; id != nil {
			return []ent.Value{*id}
		}
	case participantrole.EdgeRole:
		if id := m.role; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParticipantRoleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParticipantRoleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParticipantRoleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedparticipant {
		edges = append(edges, participantrole.EdgeParticipant)
	}
	if m.clearedrole {
		edges = append(edges, participantrole.EdgeRole)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParticipantRoleMutation) EdgeCleared(name string) bool {
	switch name {
	case participantrole.EdgeParticipant:
		return m.clearedparticipant
	case participantrole.EdgeRole:
		return m.clearedrole
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParticipantRoleMutation) ClearEdge(name string) error {
	switch name {
	case participantrole.EdgeParticipant:
		m.ClearParticipant()
		return nil
	case participantrole.EdgeRole:
		m.ClearRole()
		return nil
	}
	return fmt.Errorf("unknown ParticipantRole unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParticipantRoleMutation) ResetEdge(name string) error {
	switch name {
	case participantrole.EdgeParticipant:
		m.ResetParticipant()
		return nil
	case participantrole.EdgeRole:
		m.ResetRole()
		return nil
	}
	return fmt.Errorf("unknown ParticipantRole edge %s", name)
}

// RoleMutation represents an operation that mutates the Role nodes in the graph.
type RoleMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int64
	name                     *string
	clearedFields            map[string]struct{}
	participant_roles        map[int]struct{}
	removedparticipant_roles map[int]struct{}
	clearedparticipant_roles bool
	done                     bool
	oldValue                 func(context.Context) (*Role, error)
	predicates               []predicate.Role
}

var _ ent.Mutation = (*RoleMutation)(nil)

// roleOption allows management of the mutation configuration using functional options.
type roleOption func(*RoleMutation)

// newRoleMutation creates new mutation for the Role entity.
func newRoleMutation(c config, op Op, opts ...roleOption) *RoleMutation {
	m := &RoleMutation{
		config:        c,
		op:            op,
		typ:           TypeRole,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoleID sets the ID field of the mutation.
func withRoleID(id int64) roleOption {
	return func(m *RoleMutation) {
		var (
			err   error
			once  sync.Once
			value *Role
		)
		m.oldValue = func(ctx context.Context) (*Role, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Role.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRole sets the old Role of the mutation.
func withRole(node *Role) roleOption {
	return func(m *RoleMutation) {
		m.oldValue = func(context.Context) (*Role, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Role entities.
func (m *RoleMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoleMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoleMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Role.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RoleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RoleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Role entity.
// If the Role object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RoleMutation) ResetName() {
	m.name = nil
}

// AddParticipantRoleIDs adds the "participant_roles" edge to the ParticipantRole entity by ids.
func (m *RoleMutation) AddParticipantRoleIDs(ids ...int) {
	if m.participant_roles == nil {
		m.participant_roles = make(map[int]struct{})
	}
	for i := range ids {
		m.participant_roles[ids[i]] = struct{}{}
	}
}

// ClearParticipantRoles clears the "participant_roles" edge to the ParticipantRole entity.
func (m *RoleMutation) ClearParticipantRoles() {
	m.clearedparticipant_roles = true
}

// ParticipantRolesCleared reports if the "participant_roles" edge to the ParticipantRole entity was cleared.
func (m *RoleMutation) ParticipantRolesCleared() bool {
	return m.clearedparticipant_roles
}

// RemoveParticipantRoleIDs removes the "participant_roles" edge to the ParticipantRole entity by IDs.
func (m *RoleMutation) RemoveParticipantRoleIDs(ids ...int) {
	if m.removedparticipant_roles == nil {
		m.removedparticipant_roles = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.participant_roles, ids[i])
		m.removedparticipant_roles[ids[i]] = struct{}{}
	}
}

// RemovedParticipantRoles returns the removed IDs of the "participant_roles" edge to the ParticipantRole entity.
func (m *RoleMutation) RemovedParticipantRolesIDs() (ids []int) {
	for id := range m.removedparticipant_roles {
		ids = append(ids, id)
	}
	return
}

// ParticipantRolesIDs returns the "participant_roles" edge IDs in the mutation.
func (m *RoleMutation) ParticipantRolesIDs() (ids []int) {
	for id := range m.participant_roles {
		ids = append(ids, id)
	}
	return
}

// ResetParticipantRoles resets all changes to the "participant_roles" edge.
func (m *RoleMutation) ResetParticipantRoles() {
	m.participant_roles = nil
	m.clearedparticipant_roles = false
	m.removedparticipant_roles = nil
}

// Where appends a list predicates to the RoleMutation builder.
func (m *RoleMutation) Where(ps ...predicate.Role) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Role, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Role).
func (m *RoleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoleMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.name != nil {
		fields = append(fields, role.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case role.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case role.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Role field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case role.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Role field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Role numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Role nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoleMutation) ResetField(name string) error {
	switch name {
	case role.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Role field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.participant_roles != nil {
		edges = append(edges, role.EdgeParticipantRoles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case role.EdgeParticipantRoles:
		ids := make([]ent.Value, 0, len(m.participant_roles))
		for id := range m.participant_roles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedparticipant_roles != nil {
		edges = append(edges, role.EdgeParticipantRoles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case role.EdgeParticipantRoles:
		ids := make([]ent.Value, 0, len(m.removedparticipant_roles))
		for id := range m.removedparticipant_roles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedparticipant_roles {
		edges = append(edges, role.EdgeParticipantRoles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoleMutation) EdgeCleared(name string) bool {
	switch name {
	case role.EdgeParticipantRoles:
		return m.clearedparticipant_roles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoleMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Role unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoleMutation) ResetEdge(name string) error {
	switch name {
	case role.EdgeParticipantRoles:
		m.ResetParticipantRoles()
		return nil
	}
	return fmt.Errorf("unknown Role edge %s", name)
}

// SubmissionMutation represents an operation that mutates the Submission nodes in the graph.
type SubmissionMutation struct {
	config
	op                Op
	typ               string
	id                *int64
	status            *string
	updated           *time.Time
	clearedFields     map[string]struct{}
	assignment        *int64
	clearedassignment bool
	user              *int64
	cleareduser       bool
	files             map[int]struct{}
	removedfiles      map[int]struct{}
	clearedfiles      bool
	done              bool
	oldValue          func(context.Context) (*Submission, error)
	predicates        []predicate.Submission
}

var _ ent.Mutation = (*SubmissionMutation)(nil)

// submissionOption allows management of the mutation configuration using functional options.
type submissionOption func(*SubmissionMutation)

// newSubmissionMutation creates new mutation for the Submission entity.
func newSubmissionMutation(c config, op Op, opts ...submissionOption) *SubmissionMutation {
	m := &SubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionID sets the ID field of the mutation.
func withSubmissionID(id int64) submissionOption {
	return func(m *SubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Submission
		)
		m.oldValue = func(ctx context.Context) (*Submission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Submission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmission sets the old Submission of the mutation.
func withSubmission(node *Submission) submissionOption {
	return func(m *SubmissionMutation) {
		m.oldValue = func(context.Context) (*Submission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Submission entities.
func (m *SubmissionMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Submission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAssignmentID sets the "assignment_id" field.
func (m *SubmissionMutation) SetAssignmentID(i int64) {
	m.assignment = &i
}

// AssignmentID returns the value of the "assignment_id" field in the mutation.
func (m *SubmissionMutation) AssignmentID() (r int64, exists bool) {
	v := m.assignment
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentID returns the old "assignment_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldAssignmentID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentID: %w", err)
	}
	return oldValue.AssignmentID, nil
}

// ResetAssignmentID resets all changes to the "assignment_id" field.
func (m *SubmissionMutation) ResetAssignmentID() {
	m.assignment = nil
}

// SetUserID sets the "user_id" field.
func (m *SubmissionMutation) SetUserID(i int64) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SubmissionMutation) UserID() (r int64, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SubmissionMutation) ResetUserID() {
	m.user = nil
}

// SetStatus sets the "status" field.
func (m *SubmissionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubmissionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *SubmissionMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[submission.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *SubmissionMutation) StatusCleared() bool {
	_, ok := m.clearedFields[submission.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *SubmissionMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, submission.FieldStatus)
}

// SetUpdated sets the "updated" field.
func (m *SubmissionMutation) SetUpdated(t time.Time) {
	m.updated = &t
}

// Updated returns the value of the "updated" field in the mutation.
func (m *SubmissionMutation) Updated() (r time.Time, exists bool) {
	v := m.updated
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdated returns the old "updated" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdated: %w", err)
	}
	return oldValue.Updated, nil
}

// ResetUpdated resets all changes to the "updated" field.
func (m *SubmissionMutation) ResetUpdated() {
	m.updated = nil
}

// ClearAssignment clears the "assignment" edge to the Assignment entity.
func (m *SubmissionMutation) ClearAssignment() {
	m.clearedassignment = true
	m.clearedFields[submission.FieldAssignmentID] = struct{}{}
}

// AssignmentCleared reports if the "assignment" edge to the Assignment entity was cleared.
func (m *SubmissionMutation) AssignmentCleared() bool {
	return m.clearedassignment
}

// AssignmentIDs returns the "assignment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssignmentID instead. It exists only for internal usage by the builders.
func (m *SubmissionMutation) AssignmentIDs() (ids []int64) {
	if id := m.assignment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignment resets all changes to the "assignment" edge.
func (m *SubmissionMutation) ResetAssignment() {
	m.assignment = nil
	m.clearedassignment = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *SubmissionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[submission.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *SubmissionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *SubmissionMutation) UserIDs() (ids []int64) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *SubmissionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddFileIDs adds the "files" edge to the SubmittedFile entity by ids.
func (m *SubmissionMutation) AddFileIDs(ids ...int) {
	if m.files == nil {
		m.files = make(map[int]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the SubmittedFile entity.
func (m *SubmissionMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the SubmittedFile entity was cleared.
func (m *SubmissionMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the SubmittedFile entity by IDs.
func (m *SubmissionMutation) RemoveFileIDs(ids ...int) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the SubmittedFile entity.
func (m *SubmissionMutation) RemovedFilesIDs() (ids []int) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *SubmissionMutation) FilesIDs() (ids []int) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *SubmissionMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// Where appends a list predicates to the SubmissionMutation builder.
func (m *SubmissionMutation) Where(ps ...predicate.Submission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Submission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Submission).
func (m *SubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.assignment != nil {
		fields = append(fields, submission.FieldAssignmentID)
	}
	if m.user != nil {
		fields = append(fields, submission.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, submission.FieldStatus)
	}
	if m.updated != nil {
		fields = append(fields, submission.FieldUpdated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldAssignmentID:
		return m.AssignmentID()
	case submission.FieldUserID:
		return m.UserID()
	case submission.FieldStatus:
		return m.Status()
	case submission.FieldUpdated:
		return m.Updated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submission.FieldAssignmentID:
		return m.OldAssignmentID(ctx)
	case submission.FieldUserID:
		return m.OldUserID(ctx)
	case submission.FieldStatus:
		return m.OldStatus(ctx)
	case submission.FieldUpdated:
		return m.OldUpdated(ctx)
	}
	return nil, fmt.Errorf("unknown Submission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submission.FieldAssignmentID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentID(v)
		return nil
	case submission.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case submission.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case submission.FieldUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Submission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(submission.FieldStatus) {
		fields = append(fields, submission.FieldStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionMutation) ClearField(name string) error {
	switch name {
	case submission.FieldStatus:
		m.ClearStatus()
		return nil
	}
	return fmt.Errorf("unknown Submission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionMutation) ResetField(name string) error {
	switch name {
	case submission.FieldAssignmentID:
		m.ResetAssignmentID()
		return nil
	case submission.FieldUserID:
		m.ResetUserID()
		return nil
	case submission.FieldStatus:
		m.ResetStatus()
		return nil
	case submission.FieldUpdated:
		m.ResetUpdated()
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.assignment != nil {
		edges = append(edges, submission.EdgeAssignment)
	}
	if m.user != nil {
		edges = append(edges, submission.EdgeUser)
	}
	if m.files != nil {
		edges = append(edges, submission.EdgeFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case submission.EdgeAssignment:
		if id := m.assignment; id != nil {
			return []ent.Value{*id}
		}
	case submission.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case submission.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedfiles != nil {
		edges = append(edges, submission.EdgeFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case submission.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedassignment {
		edges = append(edges, submission.EdgeAssignment)
	}
	if m.cleareduser {
		edges = append(edges, submission.EdgeUser)
	}
	if m.clearedfiles {
		edges = append(edges, submission.EdgeFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case submission.EdgeAssignment:
		return m.clearedassignment
	case submission.EdgeUser:
		return m.cleareduser
	case submission.EdgeFiles:
		return m.clearedfiles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionMutation) ClearEdge(name string) error {
	switch name {
	case submission.EdgeAssignment:
		m.ClearAssignment()
		return nil
	case submission.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Submission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionMutation) ResetEdge(name string) error {
	switch name {
	case submission.EdgeAssignment:
		m.ResetAssignment()
		return nil
	case submission.EdgeUser:
		m.ResetUser()
		return nil
	case submission.EdgeFiles:
		m.ResetFiles()
		return nil
	}
	return fmt.Errorf("unknown Submission edge %s", name)
}

// SubmittedFileMutation represents an operation that mutates the SubmittedFile nodes in the graph.
type SubmittedFileMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	filename                 *string
	filesize                 *int64
	addfilesize              *int64
	mimetype                 *string
	url                      *string
	uploaded                 *time.Time
	clearedFields            map[string]struct{}
	submission               *int64
	clearedsubmission        bool
	assignment               *int64
	clearedassignment        bool
	user                     *int64
	cleareduser              bool
	digests                  map[int]struct{}
	removeddigests           map[int]struct{}
	cleareddigests           bool
	warnings                 map[int]struct{}
	removedwarnings          map[int]struct{}
	clearedwarnings          bool
	older_comparisons        map[int]struct{}
	removedolder_comparisons map[int]struct{}
	clearedolder_comparisons bool
	newer_comparisons        map[int]struct{}
	removednewer_comparisons map[int]struct{}
	clearednewer_comparisons bool
	done                     bool
	oldValue                 func(context.Context) (*SubmittedFile, error)
	predicates               []predicate.SubmittedFile
}

var _ ent.Mutation = (*SubmittedFileMutation)(nil)

// submittedfileOption allows management of the mutation configuration using functional options.
type submittedfileOption func(*SubmittedFileMutation)

// newSubmittedFileMutation creates new mutation for the SubmittedFile entity.
func newSubmittedFileMutation(c config, op Op, opts ...submittedfileOption) *SubmittedFileMutation {
	m := &SubmittedFileMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmittedFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmittedFileID sets the ID field of the mutation.
func withSubmittedFileID(id int) submittedfileOption {
	return func(m *SubmittedFileMutation) {
		var (
			err   error
			once  sync.Once
			value *SubmittedFile
		)
		m.oldValue = func(ctx context.Context) (*SubmittedFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubmittedFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmittedFile sets the old SubmittedFile of the mutation.
func withSubmittedFile(node *SubmittedFile) submittedfileOption {
	return func(m *SubmittedFileMutation) {
		m.oldValue = func(context.Context) (*SubmittedFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmittedFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmittedFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmittedFileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmittedFileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubmittedFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubmissionID sets the "submission_id" field.
func (m *SubmittedFileMutation) SetSubmissionID(i int64) {
	m.submission = &i
}

// SubmissionID returns the value of the "submission_id" field in the mutation.
func (m *SubmittedFileMutation) SubmissionID() (r int64, exists bool) {
	v := m.submission
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionID returns the old "submission_id" field's value of the SubmittedFile entity.
// If the SubmittedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmittedFileMutation) OldSubmissionID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionID: %w", err)
	}
	return oldValue.SubmissionID, nil
}

// ResetSubmissionID resets all changes to the "submission_id" field.
func (m *SubmittedFileMutation) ResetSubmissionID() {
	m.submission = nil
}

// SetAssignmentID sets the "assignment_id" field.
func (m *SubmittedFileMutation) SetAssignmentID(i int64) {
	m.assignment = &i
}

// AssignmentID returns the value of the "assignment_id" field in the mutation.
func (m *SubmittedFileMutation) AssignmentID() (r int64, exists bool) {
	v := m.assignment
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentID returns the old "assignment_id" field's value of the SubmittedFile entity.
// If the SubmittedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmittedFileMutation) OldAssignmentID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentID: %w", err)
	}
	return oldValue.AssignmentID, nil
}

// ResetAssignmentID resets all changes to the "assignment_id" field.
func (m *SubmittedFileMutation) ResetAssignmentID() {
	m.assignment = nil
}

// SetUserID sets the "user_id" field.
func (m *SubmittedFileMutation) SetUserID(i int64) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SubmittedFileMutation) UserID() (r int64, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SubmittedFile entity.
// If the SubmittedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmittedFileMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SubmittedFileMutation) ResetUserID() {
	m.user = nil
}

// SetFilename sets the "filename" field.
func (m *SubmittedFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *SubmittedFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the SubmittedFile entity.
// If the SubmittedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmittedFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *SubmittedFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFilesize sets the "filesize" field.
func (m *SubmittedFileMutation) SetFilesize(i int64) {
	m.filesize = &i
	m.addfilesize = nil
}

// Filesize returns the value of the "filesize" field in the mutation.
func (m *SubmittedFileMutation) Filesize() (r int64, exists bool) {
	v := m.filesize
	if v == nil {
		return
	}
	return *v, true
}

// OldFilesize returns the old "filesize" field's value of the SubmittedFile entity.
// If the SubmittedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmittedFileMutation) OldFilesize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilesize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilesize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilesize: %w", err)
	}
	return oldValue.Filesize, nil
}

// AddFilesize adds i to the "filesize" field.
func (m *SubmittedFileMutation) AddFilesize(i int64) {
	if m.addfilesize != nil {
		*m.addfilesize += i
	} else {
		m.addfilesize = &i
	}
}

// AddedFilesize returns the value that was added to the "filesize" field in this mutation.
func (m *SubmittedFileMutation) AddedFilesize() (r int64, exists bool) {
	v := m.addfilesize
	if v == nil {
		return
	}
	return *v, true
}

// ResetFilesize resets all changes to the "filesize" field.
func (m *SubmittedFileMutation) ResetFilesize() {
	m.filesize = nil
	m.addfilesize = nil
}

// SetMimetype sets the "mimetype" field.
func (m *SubmittedFileMutation) SetMimetype(s string) {
	m.mimetype = &s
}

// Mimetype returns the value of the "mimetype" field in the mutation.
func (m *SubmittedFileMutation) Mimetype() (r string, exists bool) {
	v := m.mimetype
	if v == nil {
		return
	}
	return *v, true
}

// OldMimetype returns the old "mimetype" field's value of the SubmittedFile entity.
// If the SubmittedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmittedFileMutation) OldMimetype(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimetype is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimetype requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimetype: %w", err)
	}
	return oldValue.Mimetype, nil
}

// ResetMimetype resets all changes to the "mimetype" field.
func (m *SubmittedFileMutation) ResetMimetype() {
	m.mimetype = nil
}

// SetURL sets the "url" field.
func (m *SubmittedFileMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *SubmittedFileMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the SubmittedFile entity.
// If the SubmittedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmittedFileMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *SubmittedFileMutation) ResetURL() {
	m.url = nil
}

// SetUploaded sets the "uploaded" field.
func (m *SubmittedFileMutation) SetUploaded(t time.Time) {
	m.uploaded = &t
}

// Uploaded returns the value of the "uploaded" field in the mutation.
func (m *SubmittedFileMutation) Uploaded() (r time.Time, exists bool) {
	v := m.uploaded
	if v == nil {
		return
	}
	return *v, true
}

// OldUploaded returns the old "uploaded" field's value of the SubmittedFile entity.
// If the SubmittedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmittedFileMutation) OldUploaded(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploaded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploaded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploaded: %w", err)
	}
	return oldValue.Uploaded, nil
}

// ResetUploaded resets all changes to the "uploaded" field.
func (m *SubmittedFileMutation) ResetUploaded() {
	m.uploaded = nil
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (m *SubmittedFileMutation) ClearSubmission() {
	m.clearedsubmission = true
	m.clearedFields[submittedfile.FieldSubmissionID] = struct{}{}
}

// SubmissionCleared reports if the "submission" edge to the Submission entity was cleared.
func (m *SubmittedFileMutation) SubmissionCleared() bool {
	return m.clearedsubmission
}

// SubmissionIDs returns the "submission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubmissionID instead. It exists only for internal usage by the builders.
func (m *SubmittedFileMutation) SubmissionIDs() (ids []int64) {
	if id := m.submission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubmission resets all changes to the "submission" edge.
func (m *SubmittedFileMutation) ResetSubmission() {
	m.submission = nil
	m.clearedsubmission = false
}

// ClearAssignment clears the "assignment" edge to the Assignment entity.
func (m *SubmittedFileMutation) ClearAssignment() {
	m.clearedassignment = true
	m.clearedFields[submittedfile.FieldAssignmentID] = struct{}{}
}

// AssignmentCleared reports if the "assignment" edge to the Assignment entity was cleared.
func (m *SubmittedFileMutation) AssignmentCleared() bool {
	return m.clearedassignment
}

// AssignmentIDs returns the "assignment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssignmentID instead. It exists only for internal usage by the builders.
func (m *SubmittedFileMutation) AssignmentIDs() (ids []int64) {
	if id := m.assignment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignment resets all changes to the "assignment" edge.
func (m *SubmittedFileMutation) ResetAssignment() {
	m.assignment = nil
	m.clearedassignment = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *SubmittedFileMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[submittedfile.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *SubmittedFileMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *SubmittedFileMutation) UserIDs() (ids []int64) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *SubmittedFileMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddDigestIDs adds the "digests" edge to the FileDigest entity by ids.
func (m *SubmittedFileMutation) AddDigestIDs(ids ...int) {
	if m.digests == nil {
		m.digests = make(map[int]struct{})
	}
	for i := range ids {
		m.digests[ids[i]] = struct{}{}
	}
}

// ClearDigests clears the "digests" edge to the FileDigest entity.
func (m *SubmittedFileMutation) ClearDigests() {
	m.cleareddigests = true
}

// DigestsCleared reports if the "digests" edge to the FileDigest entity was cleared.
func (m *SubmittedFileMutation) DigestsCleared() bool {
	return m.cleareddigests
}

// RemoveDigestIDs removes the "digests" edge to the FileDigest entity by IDs.
func (m *SubmittedFileMutation) RemoveDigestIDs(ids ...int) {
	if m.removeddigests == nil {
		m.removeddigests = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.digests, ids[i])
		m.removeddigests[ids[i]] = struct{}{}
	}
}

// RemovedDigests returns the removed IDs of the "digests" edge to the FileDigest entity.
func (m *SubmittedFileMutation) RemovedDigestsIDs() (ids []int) {
	for id := range m.removeddigests {
		ids = append(ids, id)
	}
	return
}

// DigestsIDs returns the "digests" edge IDs in the mutation.
func (m *SubmittedFileMutation) DigestsIDs() (ids []int) {
	for id := range m.digests {
		ids = append(ids, id)
	}
	return
}

// ResetDigests resets all changes to the "digests" edge.
func (m *SubmittedFileMutation) ResetDigests() {
	m.digests = nil
	m.cleareddigests = false
	m.removeddigests = nil
}

// AddWarningIDs adds the "warnings" edge to the FileWarning entity by ids.
func (m *SubmittedFileMutation) AddWarningIDs(ids ...int) {
	if m.warnings == nil {
		m.warnings = make(map[int]struct{})
	}
	for i := range ids {
		m.warnings[ids[i]] = struct{}{}
	}
}

// ClearWarnings clears the "warnings" edge to the FileWarning entity.
func (m *SubmittedFileMutation) ClearWarnings() {
	m.clearedwarnings = true
}

// WarningsCleared reports if the "warnings" edge to the FileWarning entity was cleared.
func (m *SubmittedFileMutation) WarningsCleared() bool {
	return m.clearedwarnings
}

// RemoveWarningIDs removes the "warnings" edge to the FileWarning entity by IDs.
func (m *SubmittedFileMutation) RemoveWarningIDs(ids ...int) {
	if m.removedwarnings == nil {
		m.removedwarnings = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.warnings, ids[i])
		m.removedwarnings[ids[i]] = struct{}{}
	}
}

// RemovedWarnings returns the removed IDs of the "warnings" edge to the FileWarning entity.
func (m *SubmittedFileMutation) RemovedWarningsIDs() (ids []int) {
	for id := range m.removedwarnings {
		ids = append(ids, id)
	}
	return
}

// WarningsIDs returns the "warnings" edge IDs in the mutation.
func (m *SubmittedFileMutation) WarningsIDs() (ids []int) {
	for id := range m.warnings {
		ids = append(ids, id)
	}
	return
}

// ResetWarnings resets all changes to the "warnings" edge.
func (m *SubmittedFileMutation) ResetWarnings() {
	m.warnings = nil
	m.clearedwarnings = false
	m.removedwarnings = nil
}

// AddOlderComparisonIDs adds the "older_comparisons" edge to the FileComparison entity by ids.
func (m *SubmittedFileMutation) AddOlderComparisonIDs(ids ...int) {
	if m.older_comparisons == nil {
		m.older_comparisons = make(map[int]struct{})
	}
	for i := range ids {
		m.older_comparisons[ids[i]] = struct{}{}
	}
}

// ClearOlderComparisons clears the "older_comparisons" edge to the FileComparison entity.
func (m *SubmittedFileMutation) ClearOlderComparisons() {
	m.clearedolder_comparisons = true
}

// OlderComparisonsCleared reports if the "older_comparisons" edge to the FileComparison entity was cleared.
func (m *SubmittedFileMutation) OlderComparisonsCleared() bool {
	return m.clearedolder_comparisons
}

// RemoveOlderComparisonIDs removes the "older_comparisons" edge to the FileComparison entity by IDs.
func (m *SubmittedFileMutation) RemoveOlderComparisonIDs(ids ...int) {
	if m.removedolder_comparisons == nil {
		m.removedolder_comparisons = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.older_comparisons, ids[i])
		m.removedolder_comparisons[ids[i]] = struct{}{}
	}
}

// RemovedOlderComparisons returns the removed IDs of the "older_comparisons" edge to the FileComparison entity.
func (m *SubmittedFileMutation) RemovedOlderComparisonsIDs() (ids []int) {
	for id := range m.removedolder_comparisons {
		ids = append(ids, id)
	}
	return
}

// OlderComparisonsIDs returns the "older_comparisons" edge IDs in the mutation.
func (m *SubmittedFileMutation) OlderComparisonsIDs() (ids []int) {
	for id := range m.older_comparisons {
		ids = append(ids, id)
	}
	return
}

// ResetOlderComparisons resets all changes to the "older_comparisons" edge.
func (m *SubmittedFileMutation) ResetOlderComparisons() {
	m.older_comparisons = nil
	m.clearedolder_comparisons = false
	m.removedolder_comparisons = nil
}

// AddNewerComparisonIDs adds the "newer_comparisons" edge to the FileComparison entity by ids.
func (m *SubmittedFileMutation) AddNewerComparisonIDs(ids ...int) {
	if m.newer_comparisons == nil {
		m.newer_comparisons = make(map[int]struct{})
	}
	for i := range ids {
		m.newer_comparisons[ids[i]] = struct{}{}
	}
}

// ClearNewerComparisons clears the "newer_comparisons" edge to the FileComparison entity.
func (m *SubmittedFileMutation) ClearNewerComparisons() {
	m.clearednewer_comparisons = true
}

// NewerComparisonsCleared reports if the "newer_comparisons" edge to the FileComparison entity was cleared.
func (m *SubmittedFileMutation) NewerComparisonsCleared() bool {
	return m.clearednewer_comparisons
}

// RemoveNewerComparisonIDs removes the "newer_comparisons" edge to the FileComparison entity by IDs.
func (m *SubmittedFileMutation) RemoveNewerComparisonIDs(ids ...int) {
	if m.removednewer_comparisons == nil {
		m.removednewer_comparisons = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.newer_comparisons, ids[i])
		m.removednewer_comparisons[ids[i]] = struct{}{}
	}
}

// RemovedNewerComparisons returns the removed IDs of the "newer_comparisons" edge to the FileComparison entity.
func (m *SubmittedFileMutation) RemovedNewerComparisonsIDs() (ids []int) {
	for id := range m.removednewer_comparisons {
		ids = append(ids, id)
	}
	return
}

// NewerComparisonsIDs returns the "newer_comparisons" edge IDs in the mutation.
func (m *SubmittedFileMutation) NewerComparisonsIDs() (ids []int) {
	for id := range m.newer_comparisons {
		ids = append(ids, id)
	}
	return
}

// ResetNewerComparisons resets all changes to the "newer_comparisons" edge.
func (m *SubmittedFileMutation) ResetNewerComparisons() {
	m.newer_comparisons = nil
	m.clearednewer_comparisons = false
	m.removednewer_comparisons = nil
}

// Where appends a list predicates to the SubmittedFileMutation builder.
func (m *SubmittedFileMutation) Where(ps ...predicate.SubmittedFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmittedFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmittedFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubmittedFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmittedFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmittedFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubmittedFile).
func (m *SubmittedFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmittedFileMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.submission != nil {
		fields = append(fields, submittedfile.FieldSubmissionID)
	}
	if m.assignment != nil {
		fields = append(fields, submittedfile.FieldAssignmentID)
	}
	if m.user != nil {
		fields = append(fields, submittedfile.FieldUserID)
	}
	if m.filename != nil {
		fields = append(fields, submittedfile.FieldFilename)
	}
	if m.filesize != nil {
		fields = append(fields, submittedfile.FieldFilesize)
	}
	if m.mimetype != nil {
		fields = append(fields, submittedfile.FieldMimetype)
	}
	if m.url != nil {
		fields = append(fields, submittedfile.FieldURL)
	}
	if m.uploaded != nil {
		fields = append(fields, submittedfile.FieldUploaded)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmittedFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submittedfile.FieldSubmissionID:
		return m.SubmissionID()
	case submittedfile.FieldAssignmentID:
		return m.AssignmentID()
	case submittedfile.FieldUserID:
		return m.UserID()
	case submittedfile.FieldFilename:
		return m.Filename()
	case submittedfile.FieldFilesize:
		return m.Filesize()
	case submittedfile.FieldMimetype:
		return m.Mimetype()
	case submittedfile.FieldURL:
		return m.URL()
	case submittedfile.FieldUploaded:
		return m.Uploaded()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmittedFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submittedfile.FieldSubmissionID:
		return m.OldSubmissionID(ctx)
	case submittedfile.FieldAssignmentID:
		return m.OldAssignmentID(ctx)
	case submittedfile.FieldUserID:
		return m.OldUserID(ctx)
	case submittedfile.FieldFilename:
		return m.OldFilename(ctx)
	case submittedfile.FieldFilesize:
		return m.OldFilesize(ctx)
	case submittedfile.FieldMimetype:
		return m.OldMimetype(ctx)
	case submittedfile.FieldURL:
		return m.OldURL(ctx)
	case submittedfile.FieldUploaded:
		return m.OldUploaded(ctx)
	}
	return nil, fmt.Errorf("unknown SubmittedFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmittedFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submittedfile.FieldSubmissionID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionID(v)
		return nil
	case submittedfile.FieldAssignmentID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentID(v)
		return nil
	case submittedfile.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case submittedfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case submittedfile.FieldFilesize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilesize(v)
		return nil
	case submittedfile.FieldMimetype:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimetype(v)
		return nil
	case submittedfile.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case submittedfile.FieldUploaded:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploaded(v)
		return nil
	}
	return fmt.Errorf("unknown SubmittedFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmittedFileMutation) AddedFields() []string {
	var fields []string
	if m.addfilesize != nil {
		fields = append(fields, submittedfile.FieldFilesize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmittedFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submittedfile.FieldFilesize:
		return m.AddedFilesize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmittedFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submittedfile.FieldFilesize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFilesize(v)
		return nil
	}
	return fmt.Errorf("unknown SubmittedFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmittedFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmittedFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmittedFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SubmittedFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmittedFileMutation) ResetField(name string) error {
	switch name {
	case submittedfile.FieldSubmissionID:
		m.ResetSubmissionID()
		return nil
	case submittedfile.FieldAssignmentID:
		m.ResetAssignmentID()
		return nil
	case submittedfile.FieldUserID:
		m.ResetUserID()
		return nil
	case submittedfile.FieldFilename:
		m.ResetFilename()
		return nil
	case submittedfile.FieldFilesize:
		m.ResetFilesize()
		return nil
	case submittedfile.FieldMimetype:
		m.ResetMimetype()
		return nil
	case submittedfile.FieldURL:
		m.ResetURL()
		return nil
	case submittedfile.FieldUploaded:
		m.ResetUploaded()
		return nil
	}
	return fmt.Errorf("unknown SubmittedFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmittedFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.submission != nil {
		edges = append(edges, submittedfile.EdgeSubmission)
	}
	if m.assignment != nil {
		edges = append(edges, submittedfile.EdgeAssignment)
	}
	if m.user != nil {
		edges = append(edges, submittedfile.EdgeUser)
	}
	if m.digests != nil {
		edges = append(edges, submittedfile.EdgeDigests)
	}
	if m.warnings != nil {
		edges = append(edges, submittedfile.EdgeWarnings)
	}
	if m.older_comparisons != nil {
		edges = append(edges, submittedfile.EdgeOlderComparisons)
	}
	if m.newer_comparisons != nil {
		edges = append(edges, submittedfile.EdgeNewerComparisons)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmittedFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case submittedfile.EdgeSubmission:
		if id := m.submission; id != nil {
			return []ent.Value{*id}
		}
	case submittedfile.EdgeAssignment:
		if id := m.assignment; id != nil {
			return []ent.Value{*id}
		}
	case submittedfile.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case submittedfile.EdgeDigests:
		ids := make([]ent.Value, 0, len(m.digests))
		for id := range m.digests {
			ids = append(ids, id)
		}
		return ids
	case submittedfile.EdgeWarnings:
		ids := make([]ent.Value, 0, len(m.warnings))
		for id := range m.warnings {
			ids = append(ids, id)
		}
		return ids
	case submittedfile.EdgeOlderComparisons:
		ids := make([]ent.Value, 0, len(m.older_comparisons))
		for id := range m.older_comparisons {
			ids = append(ids, id)
		}
		return ids
	case submittedfile.EdgeNewerComparisons:
		ids := make([]ent.Value, 0, len(m.newer_comparisons))
		for id := range m.newer_comparisons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmittedFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removeddigests != nil {
		edges = append(edges, submittedfile.EdgeDigests)
	}
	if m.removedwarnings != nil {
		edges = append(edges, submittedfile.EdgeWarnings)
	}
	if m.removedolder_comparisons != nil {
		edges = append(edges, submittedfile.EdgeOlderComparisons)
	}
	if m.removednewer_comparisons != nil {
		edges = append(edges, submittedfile.EdgeNewerComparisons)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmittedFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case submittedfile.EdgeDigests:
		ids := make([]ent.Value, 0, len(m.removeddigests))
		for id := range m.removeddigests {
			ids = append(ids, id)
		}
		return ids
	case submittedfile.EdgeWarnings:
		ids := make([]ent.Value, 0, len(m.removedwarnings))
		for id := range m.removedwarnings {
			ids = append(ids, id)
		}
		return ids
	case submittedfile.EdgeOlderComparisons:
		ids := make([]ent.Value, 0, len(m.removedolder_comparisons))
		for id := range m.removedolder_comparisons {
			ids = append(ids, id)
		}
		return ids
	case submittedfile.EdgeNewerComparisons:
		ids := make([]ent.Value, 0, len(m.removednewer_comparisons))
		for id := range m.removednewer_comparisons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmittedFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedsubmission {
		edges = append(edges, submittedfile.EdgeSubmission)
	}
	if m.clearedassignment {
		edges = append(edges, submittedfile.EdgeAssignment)
	}
	if m.cleareduser {
		edges = append(edges, submittedfile.EdgeUser)
	}
	if m.cleareddigests {
		edges = append(edges, submittedfile.EdgeDigests)
	}
	if m.clearedwarnings {
		edges = append(edges, submittedfile.EdgeWarnings)
	}
	if m.clearedolder_comparisons {
		edges = append(edges, submittedfile.EdgeOlderComparisons)
	}
	if m.clearednewer_comparisons {
		edges = append(edges, submittedfile.EdgeNewerComparisons)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmittedFileMutation) EdgeCleared(name string) bool {
	switch name {
	case submittedfile.EdgeSubmission:
		return m.clearedsubmission
	case submittedfile.EdgeAssignment:
		return m.clearedassignment
	case submittedfile.EdgeUser:
		return m.cleareduser
	case submittedfile.EdgeDigests:
		return m.cleareddigests
	case submittedfile.EdgeWarnings:
		return m.clearedwarnings
	case submittedfile.EdgeOlderComparisons:
		return m.clearedolder_comparisons
	case submittedfile.EdgeNewerComparisons:
		return m.clearednewer_comparisons
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmittedFileMutation) ClearEdge(name string) error {
	switch name {
	case submittedfile.EdgeSubmission:
		m.ClearSubmission()
		return nil
	case submittedfile.EdgeAssignment:
		m.ClearAssignment()
		return nil
	case submittedfile.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown SubmittedFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmittedFileMutation) ResetEdge(name string) error {
	switch name {
	case submittedfile.EdgeSubmission:
		m.ResetSubmission()
		return nil
	case submittedfile.EdgeAssignment:
		m.ResetAssignment()
		return nil
	case submittedfile.EdgeUser:
		m.ResetUser()
		return nil
	case submittedfile.EdgeDigests:
		m.ResetDigests()
		return nil
	case submittedfile.EdgeWarnings:
		m.ResetWarnings()
		return nil
	case submittedfile.EdgeOlderComparisons:
		m.ResetOlderComparisons()
		return nil
	case submittedfile.EdgeNewerComparisons:
		m.ResetNewerComparisons()
		return nil
	}
	return fmt.Errorf("unknown SubmittedFile edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int64
	fullname               *string
	email                  *string
	last_seen              *time.Time
	clearedFields          map[string]struct{}
	participants           map[int]struct{}
	removedparticipants    map[int]struct{}
	clearedparticipants    bool
	submissions            map[int64]struct{}
	removedsubmissions     map[int64]struct{}
	clearedsubmissions     bool
	submitted_files        map[int]struct{}
	removedsubmitted_files map[int]struct{}
	clearedsubmitted_files bool
	done                   bool
	oldValue               func(context.Context) (*User, error)
	predicates             []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int64) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFullname sets the "fullname" field.
func (m *UserMutation) SetFullname(s string) {
	m.fullname = &s
}

// Fullname returns the value of the "fullname" field in the mutation.
func (m *UserMutation) Fullname() (r string, exists bool) {
	v := m.fullname
	if v == nil {
		return
	}
	return *v, true
}

// OldFullname returns the old "fullname" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFullname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullname: %w", err)
	}
	return oldValue.Fullname, nil
}

// ResetFullname resets all changes to the "fullname" field.
func (m *UserMutation) ResetFullname() {
	m.fullname = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetLastSeen sets the "last_seen" field.
func (m *UserMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *UserMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *UserMutation) ResetLastSeen() {
	m.last_seen = nil
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by ids.
func (m *UserMutation) AddParticipantIDs(ids ...int) {
	if m.participants == nil {
		m.participants = make(map[int]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the Participant entity.
func (m *UserMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the Participant entity was cleared.
func (m *UserMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the Participant entity by IDs.
func (m *UserMutation) RemoveParticipantIDs(ids ...int) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the Participant entity.
func (m *UserMutation) RemovedParticipantsIDs() (ids []int) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *UserMutation) ParticipantsIDs() (ids []int) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *UserMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by ids.
func (m *UserMutation) AddSubmissionIDs(ids ...int64) {
	if m.submissions == nil {
		m.submissions = make(map[int64]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the Submission entity.
func (m *UserMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the Submission entity was cleared.
func (m *UserMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the Submission entity by IDs.
func (m *UserMutation) RemoveSubmissionIDs(ids ...int64) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the Submission entity.
func (m *UserMutation) RemovedSubmissionsIDs() (ids []int64) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *UserMutation) SubmissionsIDs() (ids []int64) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *UserMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// AddSubmittedFileIDs adds the "submitted_files" edge to the SubmittedFile entity by ids.
func (m *UserMutation) AddSubmittedFileIDs(ids ...int) {
	if m.submitted_files == nil {
		m.submitted_files = make(map[int]struct{})
	}
	for i := range ids {
		m.submitted_files[ids[i]] = struct{}{}
	}
}

// ClearSubmittedFiles clears the "submitted_files" edge to the SubmittedFile entity.
func (m *UserMutation) ClearSubmittedFiles() {
	m.clearedsubmitted_files = true
}

// SubmittedFilesCleared reports if the "submitted_files" edge to the SubmittedFile entity was cleared.
func (m *UserMutation) SubmittedFilesCleared() bool {
	return m.clearedsubmitted_files
}

// RemoveSubmittedFileIDs removes the "submitted_files" edge to the SubmittedFile entity by IDs.
func (m *UserMutation) RemoveSubmittedFileIDs(ids ...int) {
	if m.removedsubmitted_files == nil {
		m.removedsubmitted_files = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.submitted_files, ids[i])
		m.removedsubmitted_files[ids[i]] = struct{}{}
	}
}

// RemovedSubmittedFiles returns the removed IDs of the "submitted_files" edge to the SubmittedFile entity.
func (m *UserMutation) RemovedSubmittedFilesIDs() (ids []int) {
	for id := range m.removedsubmitted_files {
		ids = append(ids, id)
	}
	return
}

// SubmittedFilesIDs returns the "submitted_files" edge IDs in the mutation.
func (m *UserMutation) SubmittedFilesIDs() (ids []int) {
	for id := range m.submitted_files {
		ids = append(ids, id)
	}
	return
}

// ResetSubmittedFiles resets all changes to the "submitted_files" edge.
func (m *UserMutation) ResetSubmittedFiles() {
	m.submitted_files = nil
	m.clearedsubmitted_files = false
	m.removedsubmitted_files = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.fullname != nil {
		fields = append(fields, user.FieldFullname)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.last_seen != nil {
		fields = append(fields, user.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFullname:
		return m.Fullname()
	case user.FieldEmail:
		return m.Email()
	case user.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldFullname:
		return m.OldFullname(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldFullname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullname(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldFullname:
		m.ResetFullname()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.participants != nil {
		edges = append(edges, user.EdgeParticipants)
	}
	if m.submissions != nil {
		edges = append(edges, user.EdgeSubmissions)
	}
	if m.submitted_files != nil {
		edges = append(edges, user.EdgeSubmittedFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSubmittedFiles:
		ids := make([]ent.Value, 0, len(m.submitted_files))
		for id := range m.submitted_files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedparticipants != nil {
		edges = append(edges, user.EdgeParticipants)
	}
	if m.removedsubmissions != nil {
		edges = append(edges, user.EdgeSubmissions)
	}
	if m.removedsubmitted_files != nil {
		edges = append(edges, user.EdgeSubmittedFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSubmittedFiles:
		ids := make([]ent.Value, 0, len(m.removedsubmitted_files))
		for id := range m.removedsubmitted_files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedparticipants {
		edges = append(edges, user.EdgeParticipants)
	}
	if m.clearedsubmissions {
		edges = append(edges, user.EdgeSubmissions)
	}
	if m.clearedsubmitted_files {
		edges = append(edges, user.EdgeSubmittedFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeParticipants:
		return m.clearedparticipants
	case user.EdgeSubmissions:
		return m.clearedsubmissions
	case user.EdgeSubmittedFiles:
		return m.clearedsubmitted_files
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeParticipants:
		m.ResetParticipants()
		return nil
	case user.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	case user.EdgeSubmittedFiles:
		m.ResetSubmittedFiles()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
