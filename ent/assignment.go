// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/moodle-tools/simwatch/ent/assignment"
	"github.com/moodle-tools/simwatch/ent/course"
)

// Assignment is the model entity for the Assignment schema.
type Assignment struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID int64 `json:"course_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// allowsubmissionsfromdate on the server
	Opening *time.Time `json:"opening,omitempty"`
	// duedate on the server
	Closing *time.Time `json:"closing,omitempty"`
	// cutoffdate on the server
	Cutoff *time.Time `json:"cutoff,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssignmentQuery when eager-loading is set.
	Edges        AssignmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssignmentEdges holds the relations/edges for other nodes in the graph.
type AssignmentEdges struct {
	// Course holds the value of the course edge.
	Course *Course `json:"course,omitempty"`
	// Submissions holds the value of the submissions edge.
	Submissions []*Submission `json:"submissions,omitempty"`
	// SubmittedFiles holds the value of the submitted_files edge.
	SubmittedFiles []*SubmittedFile `json:"submitted_files,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CourseOrErr returns the Course value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssignmentEdges) CourseOrErr() (*Course, error) {
	if e.Course != nil {
		return e.Course, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: course.Label}
	}
	return nil, &NotLoadedError{edge: "course"}
}

// SubmissionsOrErr returns the Submissions value or an error if the edge
// was not loaded in eager-loading.
func (e AssignmentEdges) SubmissionsOrErr() ([]*Submission, error) {
	if e.loadedTypes[1] {
		return e.Submissions, nil
	}
	return nil, &NotLoadedError{edge: "submissions"}
}

// SubmittedFilesOrErr returns the SubmittedFiles value or an error if the edge
// was not loaded in eager-loading.
func (e AssignmentEdges) SubmittedFilesOrErr() ([]*SubmittedFile, error) {
	if e.loadedTypes[2] {
		return e.SubmittedFiles, nil
	}
	return nil, &NotLoadedError{edge: "submitted_files"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Assignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assignment.FieldID, assignment.FieldCourseID:
			values[i] = new(sql.NullInt64)
		case assignment.FieldName:
			values[i] = new(sql.NullString)
		case assignment.FieldOpening, assignment.FieldClosing, assignment.FieldCutoff:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Assignment fields.
func (_m *Assignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assignment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case assignment.FieldCourseID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = value.Int64
			}
		case assignment.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case assignment.FieldOpening:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field opening", values[i])
			} else if value.Valid {
				_m.Opening = new(time.Time)
				*_m.Opening = value.Time
			}
		case assignment.FieldClosing:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field closing", values[i])
			} else if value.Valid {
				_m.Closing = new(time.Time)
				*_m.Closing = value.Time
			}
		case assignment.FieldCutoff:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cutoff", values[i])
			} else if value.Valid {
				_m.Cutoff = new(time.Time)
				*_m.Cutoff = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Assignment.
// This includes values selected through modifiers, order, etc.
func (_m *Assignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCourse queries the "course" edge of the Assignment entity.
func (_m *Assignment) QueryCourse() *CourseQuery {
	return NewAssignmentClient(_m.config).QueryCourse(_m)
}

// QuerySubmissions queries the "submissions" edge of the Assignment entity.
func (_m *Assignment) QuerySubmissions() *SubmissionQuery {
	return NewAssignmentClient(_m.config).QuerySubmissions(_m)
}

// QuerySubmittedFiles queries the "submitted_files" edge of the Assignment entity.
func (_m *Assignment) QuerySubmittedFiles() *SubmittedFileQuery {
	return NewAssignmentClient(_m.config).QuerySubmittedFiles(_m)
}

// Update returns a builder for updating this Assignment.
// Note that you need to call Assignment.Unwrap() before calling this method if this Assignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Assignment) Update() *AssignmentUpdateOne {
	return NewAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Assignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Assignment) Unwrap() *Assignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Assignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Assignment) String() string {
	var builder strings.Builder
	builder.WriteString("Assignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("course_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourseID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Opening; v != nil {
		builder.WriteString("opening=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Closing; v != nil {
		builder.WriteString("closing=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Cutoff; v != nil {
		builder.WriteString("cutoff=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Assignments is a parsable slice of Assignment.
type Assignments []*Assignment
