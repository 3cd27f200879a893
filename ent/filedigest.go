// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/moodle-tools/simwatch/ent/filedigest"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
)

// FileDigest is the model entity for the FileDigest schema.
type FileDigest struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID int `json:"file_id,omitempty"`
	// DigestType holds the value of the "digest_type" field.
	DigestType string `json:"digest_type,omitempty"`
	// gzip level-9 compressed digest bytes, null if extraction produced nothing
	Content *[]byte `json:"content,omitempty"`
	// Created holds the value of the "created" field.
	Created time.Time `json:"created,omitempty"`
	// AssignmentID holds the value of the "assignment_id" field.
	AssignmentID int64 `json:"assignment_id,omitempty"`
	// SubmissionID holds the value of the "submission_id" field.
	SubmissionID int64 `json:"submission_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// Uploaded holds the value of the "uploaded" field.
	Uploaded time.Time `json:"uploaded,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FileDigestQuery when eager-loading is set.
	Edges        FileDigestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FileDigestEdges holds the relations/edges for other nodes in the graph.
type FileDigestEdges struct {
	// File holds the value of the file edge.
	File *SubmittedFile `json:"file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FileDigestEdges) FileOrErr() (*SubmittedFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: submittedfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FileDigest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case filedigest.FieldContent:
			values[i] = new([]byte)
		case filedigest.FieldID, filedigest.FieldFileID, filedigest.FieldAssignmentID, filedigest.FieldSubmissionID, filedigest.FieldUserID:
			values[i] = new(sql.NullInt64)
		case filedigest.FieldDigestType:
			values[i] = new(sql.NullString)
		case filedigest.FieldCreated, filedigest.FieldUploaded:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FileDigest fields.
func (_m *FileDigest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case filedigest.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case filedigest.FieldFileID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value.Valid {
				_m.FileID = int(value.Int64)
			}
		case filedigest.FieldDigestType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field digest_type", values[i])
			} else if value.Valid {
				_m.DigestType = value.String
			}
		case filedigest.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil {
				_m.Content = value
			}
		case filedigest.FieldCreated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created", values[i])
			} else if value.Valid {
				_m.Created = value.Time
			}
		case filedigest.FieldAssignmentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_id", values[i])
			} else if value.Valid {
				_m.AssignmentID = value.Int64
			}
		case filedigest.FieldSubmissionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field submission_id", values[i])
			} else if value.Valid {
				_m.SubmissionID = value.Int64
			}
		case filedigest.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case filedigest.FieldUploaded:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FileDigest.
// This includes values selected through modifiers, order, etc.
func (_m *FileDigest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the FileDigest entity.
func (_m *FileDigest) QueryFile() *SubmittedFileQuery {
	return NewFileDigestClient(_m.config).QueryFile(_m)
}

// Update returns a builder for updating this FileDigest.
// Note that you need to call FileDigest.Unwrap() before calling this method if this FileDigest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FileDigest) Update() *FileDigestUpdateOne {
	return NewFileDigestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FileDigest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FileDigest) Unwrap() *FileDigest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FileDigest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FileDigest) String() string {
	var builder strings.Builder
	builder.WriteString("FileDigest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("digest_type=")
	builder.WriteString(_m.DigestType)
	builder.WriteString(", ")
	if v := _m.Content; v != nil {
		builder.WriteString("content=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created=")
	builder.WriteString(_m.Created.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("assignment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignmentID))
	builder.WriteString(", ")
	builder.WriteString("submission_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmissionID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("uploaded=")
	builder.WriteString(_m.Uploaded.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FileDigests is a parsable slice of FileDigest.
type FileDigests []*FileDigest
