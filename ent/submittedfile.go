// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/moodle-tools/simwatch/ent/assignment"
	"github.com/moodle-tools/simwatch/ent/submission"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
	"github.com/moodle-tools/simwatch/ent/user"
)

// SubmittedFile is the model entity for the SubmittedFile schema.
type SubmittedFile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SubmissionID holds the value of the "submission_id" field.
	SubmissionID int64 `json:"submission_id,omitempty"`
	// AssignmentID holds the value of the "assignment_id" field.
	AssignmentID int64 `json:"assignment_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// Filesize holds the value of the "filesize" field.
	Filesize int64 `json:"filesize,omitempty"`
	// Mimetype holds the value of the "mimetype" field.
	Mimetype string `json:"mimetype,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Uploaded holds the value of the "uploaded" field.
	Uploaded time.Time `json:"uploaded,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubmittedFileQuery when eager-loading is set.
	Edges        SubmittedFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubmittedFileEdges holds the relations/edges for other nodes in the graph.
type SubmittedFileEdges struct {
	// Submission holds the value of the submission edge.
	Submission *Submission `json:"submission,omitempty"`
	// Assignment holds the value of the assignment edge.
	Assignment *Assignment `json:"assignment,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Digests holds the value of the digests edge.
	Digests []*FileDigest `json:"digests,omitempty"`
	// Warnings holds the value of the warnings edge.
	Warnings []*FileWarning `json:"warnings,omitempty"`
	// OlderComparisons holds the value of the older_comparisons edge.
	OlderComparisons []*FileComparison `json:"older_comparisons,omitempty"`
	// NewerComparisons holds the value of the newer_comparisons edge.
	NewerComparisons []*FileComparison `json:"newer_comparisons,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// SubmissionOrErr returns the Submission value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmittedFileEdges) SubmissionOrErr() (*Submission, error) {
	if e.Submission != nil {
		return e.Submission, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: submission.Label}
	}
	return nil, &NotLoadedError{edge: "submission"}
}

// AssignmentOrErr returns the Assignment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmittedFileEdges) AssignmentOrErr() (*Assignment, error) {
	if e.Assignment != nil {
		return e.Assignment, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: assignment.Label}
	}
	return nil, &NotLoadedError{edge: "assignment"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmittedFileEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// DigestsOrErr returns the Digests value or an error if the edge
// was not loaded in eager-loading.
func (e SubmittedFileEdges) DigestsOrErr() ([]*FileDigest, error) {
	if e.loadedTypes[3] {
		return e.Digests, nil
	}
	return nil, &NotLoadedError{edge: "digests"}
}

// WarningsOrErr returns the Warnings value or an error if the edge
// was not loaded in eager-loading.
func (e SubmittedFileEdges) WarningsOrErr() ([]*FileWarning, error) {
	if e.loadedTypes[4] {
		return e.Warnings, nil
	}
	return nil, &NotLoadedError{edge: "warnings"}
}

// OlderComparisonsOrErr returns the OlderComparisons value or an error if the edge
// was not loaded in eager-loading.
func (e SubmittedFileEdges) OlderComparisonsOrErr() ([]*FileComparison, error) {
	if e.loadedTypes[5] {
		return e.OlderComparisons, nil
	}
	return nil, &NotLoadedError{edge: "older_comparisons"}
}

// NewerComparisonsOrErr returns the NewerComparisons value or an error if the edge
// was not loaded in eager-loading.
func (e SubmittedFileEdges) NewerComparisonsOrErr() ([]*FileComparison, error) {
	if e.loadedTypes[6] {
		return e.NewerComparisons, nil
	}
	return nil, &NotLoadedError{edge: "newer_comparisons"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubmittedFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submittedfile.FieldID, submittedfile.FieldSubmissionID, submittedfile.FieldAssignmentID, submittedfile.FieldUserID, submittedfile.FieldFilesize:
			values[i] = new(sql.NullInt64)
		case submittedfile.FieldFilename, submittedfile.FieldMimetype, submittedfile.FieldURL:
			values[i] = new(sql.NullString)
		case submittedfile.FieldUploaded:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubmittedFile fields.
func (_m *SubmittedFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submittedfile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case submittedfile.FieldSubmissionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field submission_id", values[i])
			} else if value.Valid {
				_m.SubmissionID = value.Int64
			}
		case submittedfile.FieldAssignmentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_id", values[i])
			} else if value.Valid {
				_m.AssignmentID = value.Int64
			}
		case submittedfile.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case submittedfile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case submittedfile.FieldFilesize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field filesize", values[i])
			} else if value.Valid {
				_m.Filesize = value.Int64
			}
		case submittedfile.FieldMimetype:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mimetype", values[i])
			} else if value.Valid {
				_m.Mimetype = value.String
			}
		case submittedfile.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case submittedfile.FieldUploaded:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded", values[i])
			} else if value.Valid {
				_m.Uploaded = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubmittedFile.
// This includes values selected through modifiers, order, etc.
func (_m *SubmittedFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubmission queries the "submission" edge of the SubmittedFile entity.
func (_m *SubmittedFile) QuerySubmission() *SubmissionQuery {
	return NewSubmittedFileClient(_m.config).QuerySubmission(_m)
}

// QueryAssignment queries the "assignment" edge of the SubmittedFile entity.
func (_m *SubmittedFile) QueryAssignment() *AssignmentQuery {
	return NewSubmittedFileClient(_m.config).QueryAssignment(_m)
}

// QueryUser queries the "user" edge of the SubmittedFile entity.
func (_m *SubmittedFile) QueryUser() *UserQuery {
	return NewSubmittedFileClient(_m.config).QueryUser(_m)
}

// QueryDigests queries the "digests" edge of the SubmittedFile entity.
func (_m *SubmittedFile) QueryDigests() *FileDigestQuery {
	return NewSubmittedFileClient(_m.config).QueryDigests(_m)
}

// QueryWarnings queries the "warnings" edge of the SubmittedFile entity.
func (_m *SubmittedFile) QueryWarnings() *FileWarningQuery {
	return NewSubmittedFileClient(_m.config).QueryWarnings(_m)
}

// QueryOlderComparisons queries the "older_comparisons" edge of the SubmittedFile entity.
func (_m *SubmittedFile) QueryOlderComparisons() *FileComparisonQuery {
	return NewSubmittedFileClient(_m.config).QueryOlderComparisons(_m)
}

// QueryNewerComparisons queries the "newer_comparisons" edge of the SubmittedFile entity.
func (_m *SubmittedFile) QueryNewerComparisons() *FileComparisonQuery {
	return NewSubmittedFileClient(_m.config).QueryNewerComparisons(_m)
}

// Update returns a builder for updating this SubmittedFile.
// Note that you need to call SubmittedFile.Unwrap() before calling this method if this SubmittedFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubmittedFile) Update() *SubmittedFileUpdateOne {
	return NewSubmittedFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubmittedFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubmittedFile) Unwrap() *SubmittedFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubmittedFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubmittedFile) String() string {
	var builder strings.Builder
	builder.WriteString("SubmittedFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("submission_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmissionID))
	builder.WriteString(", ")
	builder.WriteString("assignment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignmentID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("filesize=")
	builder.WriteString(fmt.Sprintf("%v", _m.Filesize))
	builder.WriteString(", ")
	builder.WriteString("mimetype=")
	builder.WriteString(_m.Mimetype)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("uploaded=")
	builder.WriteString(_m.Uploaded.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubmittedFiles is a parsable slice of SubmittedFile.
type SubmittedFiles []*SubmittedFile
