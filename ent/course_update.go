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
	"github.com/moodle-tools/simwatch/ent/group"
	"github.com/moodle-tools/simwatch/ent/participant"
	"github.com/moodle-tools/simwatch/ent/predicate"
)

// CourseUpdate is the builder for updating Course entities.
type CourseUpdate struct {
	config
	hooks    []Hook
	mutation *CourseMutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdate) Where(ps ...predicate.Course) *CourseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetShortname sets the "shortname" field.
func (_u *CourseUpdate) SetShortname(v string) *CourseUpdate {
	_u.mutation.SetShortname(v)
	return _u
}

// SetNillableShortname sets the "shortname" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableShortname(v *string) *CourseUpdate {
	if v != nil {
		_u.SetShortname(*v)
	}
	return _u
}

// SetFullname sets the "fullname" field.
func (_u *CourseUpdate) SetFullname(v string) *CourseUpdate {
	_u.mutation.SetFullname(v)
	return _u
}

// SetNillableFullname sets the "fullname" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableFullname(v *string) *CourseUpdate {
	if v != nil {
		_u.SetFullname(*v)
	}
	return _u
}

// SetStarts sets the "starts" field.
func (_u *CourseUpdate) SetStarts(v time.Time) *CourseUpdate {
	_u.mutation.SetStarts(v)
	return _u
}

// SetNillableStarts sets the "starts" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableStarts(v *time.Time) *CourseUpdate {
	if v != nil {
		_u.SetStarts(*v)
	}
	return _u
}

// ClearStarts clears the value of the "starts" field.
func (_u *CourseUpdate) ClearStarts() *CourseUpdate {
	_u.mutation.ClearStarts()
	return _u
}

// SetEnds sets the "ends" field.
func (_u *CourseUpdate) SetEnds(v time.Time) *CourseUpdate {
	_u.mutation.SetEnds(v)
	return _u
}

// SetNillableEnds sets the "ends" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableEnds(v *time.Time) *CourseUpdate {
	if v != nil {
		_u.SetEnds(*v)
	}
	return _u
}

// ClearEnds clears the value of the "ends" field.
func (_u *CourseUpdate) ClearEnds() *CourseUpdate {
	_u.mutation.ClearEnds()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *CourseUpdate) SetLastSeen(v time.Time) *CourseUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableLastSeen(v *time.Time) *CourseUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// AddGroupIDs adds the "groups" edge to the Group entity by IDs.
func (_u *CourseUpdate) AddGroupIDs(ids ...int64) *CourseUpdate {
	_u.mutation.AddGroupIDs(ids...)
	return _u
}

// AddGroups adds the "groups" edges to the Group entity.
func (_u *CourseUpdate) AddGroups(v ...*Group) *CourseUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGroupIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_u *CourseUpdate) AddParticipantIDs(ids ...int) *CourseUpdate {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_u *CourseUpdate) AddParticipants(v ...*Participant) *CourseUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the Assignment entity by IDs.
func (_u *CourseUpdate) AddAssignmentIDs(ids ...int64) *CourseUpdate {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the Assignment entity.
func (_u *CourseUpdate) AddAssignments(v ...*Assignment) *CourseUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdate) Mutation() *CourseMutation {
	return _u.mutation
}

// ClearGroups clears all "groups" edges to the Group entity.
func (_u *CourseUpdate) ClearGroups() *CourseUpdate {
	_u.mutation.ClearGroups()
	return _u
}

// RemoveGroupIDs removes the "groups" edge to Group entities by IDs.
func (_u *CourseUpdate) RemoveGroupIDs(ids ...int64) *CourseUpdate {
	_u.mutation.RemoveGroupIDs(ids...)
	return _u
}

// RemoveGroups removes "groups" edges to Group entities.
func (_u *CourseUpdate) RemoveGroups(v ...*Group) *CourseUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGroupIDs(ids...)
}

// ClearParticipants clears all "participants" edges to the Participant entity.
func (_u *CourseUpdate) ClearParticipants() *CourseUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to Participant entities by IDs.
func (_u *CourseUpdate) RemoveParticipantIDs(ids ...int) *CourseUpdate {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to Participant entities.
func (_u *CourseUpdate) RemoveParticipants(v ...*Participant) *CourseUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the Assignment entity.
func (_u *CourseUpdate) ClearAssignments() *CourseUpdate {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to Assignment entities by IDs.
func (_u *CourseUpdate) RemoveAssignmentIDs(ids ...int64) *CourseUpdate {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to Assignment entities.
func (_u *CourseUpdate) RemoveAssignments(v ...*Assignment) *CourseUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CourseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Shortname(); ok {
		_spec.SetField(course.FieldShortname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fullname(); ok {
		_spec.SetField(course.FieldFullname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Starts(); ok {
		_spec.SetField(course.FieldStarts, field.TypeTime, value)
	}
	if _u.mutation.StartsCleared() {
		_spec.ClearField(course.FieldStarts, field.TypeTime)
	}
	if value, ok := _u.mutation.Ends(); ok {
		_spec.SetField(course.FieldEnds, field.TypeTime, value)
	}
	if _u.mutation.EndsCleared() {
		_spec.ClearField(course.FieldEnds, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(course.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.GroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.GroupsTable,
			Columns: []string{course.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGroupsIDs(); len(nodes) > 0 && !_u.mutation.GroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.GroupsTable,
			Columns: []string{course.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.GroupsTable,
			Columns: []string{course.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.ParticipantsTable,
			Columns: []string{course.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.ParticipantsTable,
			Columns: []string{course.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.ParticipantsTable,
			Columns: []string{course.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.AssignmentsTable,
			Columns: []string{course.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.AssignmentsTable,
			Columns: []string{course.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.AssignmentsTable,
			Columns: []string{course.AssignmentsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseUpdateOne is the builder for updating a single Course entity.
type CourseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseMutation
}

// SetShortname sets the "shortname" field.
func (_u *CourseUpdateOne) SetShortname(v string) *CourseUpdateOne {
	_u.mutation.SetShortname(v)
	return _u
}

// SetNillableShortname sets the "shortname" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableShortname(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetShortname(*v)
	}
	return _u
}

// SetFullname sets the "fullname" field.
func (_u *CourseUpdateOne) SetFullname(v string) *CourseUpdateOne {
	_u.mutation.SetFullname(v)
	return _u
}

// SetNillableFullname sets the "fullname" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableFullname(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetFullname(*v)
	}
	return _u
}

// SetStarts sets the "starts" field.
func (_u *CourseUpdateOne) SetStarts(v time.Time) *CourseUpdateOne {
	_u.mutation.SetStarts(v)
	return _u
}

// SetNillableStarts sets the "starts" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableStarts(v *time.Time) *CourseUpdateOne {
	if v != nil {
		_u.SetStarts(*v)
	}
	return _u
}

// ClearStarts clears the value of the "starts" field.
func (_u *CourseUpdateOne) ClearStarts() *CourseUpdateOne {
	_u.mutation.ClearStarts()
	return _u
}

// SetEnds sets the "ends" field.
func (_u *CourseUpdateOne) SetEnds(v time.Time) *CourseUpdateOne {
	_u.mutation.SetEnds(v)
	return _u
}

// SetNillableEnds sets the "ends" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableEnds(v *time.Time) *CourseUpdateOne {
	if v != nil {
		_u.SetEnds(*v)
	}
	return _u
}

// ClearEnds clears the value of the "ends" field.
func (_u *CourseUpdateOne) ClearEnds() *CourseUpdateOne {
	_u.mutation.ClearEnds()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *CourseUpdateOne) SetLastSeen(v time.Time) *CourseUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableLastSeen(v *time.Time) *CourseUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// AddGroupIDs adds the "groups" edge to the Group entity by IDs.
func (_u *CourseUpdateOne) AddGroupIDs(ids ...int64) *CourseUpdateOne {
	_u.mutation.AddGroupIDs(ids...)
	return _u
}

// AddGroups adds the "groups" edges to the Group entity.
func (_u *CourseUpdateOne) AddGroups(v ...*Group) *CourseUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGroupIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_u *CourseUpdateOne) AddParticipantIDs(ids ...int) *CourseUpdateOne {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_u *CourseUpdateOne) AddParticipants(v ...*Participant) *CourseUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the Assignment entity by IDs.
func (_u *CourseUpdateOne) AddAssignmentIDs(ids ...int64) *CourseUpdateOne {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the Assignment entity.
func (_u *CourseUpdateOne) AddAssignments(v ...*Assignment) *CourseUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdateOne) Mutation() *CourseMutation {
	return _u.mutation
}

// ClearGroups clears all "groups" edges to the Group entity.
func (_u *CourseUpdateOne) ClearGroups() *CourseUpdateOne {
	_u.mutation.ClearGroups()
	return _u
}

// RemoveGroupIDs removes the "groups" edge to Group entities by IDs.
func (_u *CourseUpdateOne) RemoveGroupIDs(ids ...int64) *CourseUpdateOne {
	_u.mutation.RemoveGroupIDs(ids...)
	return _u
}

// RemoveGroups removes "groups" edges to Group entities.
func (_u *CourseUpdateOne) RemoveGroups(v ...*Group) *CourseUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGroupIDs(ids...)
}

// ClearParticipants clears all "participants" edges to the Participant entity.
func (_u *CourseUpdateOne) ClearParticipants() *CourseUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to Participant entities by IDs.
func (_u *CourseUpdateOne) RemoveParticipantIDs(ids ...int) *CourseUpdateOne {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to Participant entities.
func (_u *CourseUpdateOne) RemoveParticipants(v ...*Participant) *CourseUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the Assignment entity.
func (_u *CourseUpdateOne) ClearAssignments() *CourseUpdateOne {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to Assignment entities by IDs.
func (_u *CourseUpdateOne) RemoveAssignmentIDs(ids ...int64) *CourseUpdateOne {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to Assignment entities.
func (_u *CourseUpdateOne) RemoveAssignments(v ...*Assignment) *CourseUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdateOne) Where(ps ...predicate.Course) *CourseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseUpdateOne) Select(field string, fields ...string) *CourseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Course entity.
func (_u *CourseUpdateOne) Save(ctx context.Context) (*Course, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdateOne) SaveX(ctx context.Context) *Course {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CourseUpdateOne) sqlSave(ctx context.Context) (_node *Course, err error) {
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Course.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, course.FieldID)
		for _, f := range fields {
			if !course.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != course.FieldID {
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
	if value, ok := _u.mutation.Shortname(); ok {
		_spec.SetField(course.FieldShortname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fullname(); ok {
		_spec.SetField(course.FieldFullname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Starts(); ok {
		_spec.SetField(course.FieldStarts, field.TypeTime, value)
	}
	if _u.mutation.StartsCleared() {
		_spec.ClearField(course.FieldStarts, field.TypeTime)
	}
	if value, ok := _u.mutation.Ends(); ok {
		_spec.SetField(course.FieldEnds, field.TypeTime, value)
	}
	if _u.mutation.EndsCleared() {
		_spec.ClearField(course.FieldEnds, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(course.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.GroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.GroupsTable,
			Columns: []string{course.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGroupsIDs(); len(nodes) > 0 && !_u.mutation.GroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.GroupsTable,
			Columns: []string{course.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.GroupsTable,
			Columns: []string{course.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.ParticipantsTable,
			Columns: []string{course.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.ParticipantsTable,
			Columns: []string{course.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.ParticipantsTable,
			Columns: []string{course.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.AssignmentsTable,
			Columns: []string{course.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.AssignmentsTable,
			Columns: []string{course.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.AssignmentsTable,
			Columns: []string{course.AssignmentsColumn},
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
	_node = &Course{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
