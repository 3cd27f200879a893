// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/moodle-tools/simwatch/ent/filewarning"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
)

// FileWarning is the model entity for the FileWarning schema.
type FileWarning struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID int `json:"file_id,omitempty"`
	// WarningType holds the value of the "warning_type" field.
	WarningType string `json:"warning_type,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FileWarningQuery when eager-loading is set.
	Edges        FileWarningEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FileWarningEdges holds the relations/edges for other nodes in the graph.
type FileWarningEdges struct {
	// File holds the value of the file edge.
	File *SubmittedFile `json:"file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FileWarningEdges) FileOrErr() (*SubmittedFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: submittedfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FileWarning) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case filewarning.FieldID, filewarning.FieldFileID:
			values[i] = new(sql.NullInt64)
		case filewarning.FieldWarningType, filewarning.FieldMessage:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FileWarning fields.
func (_m *FileWarning) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case filewarning.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case filewarning.FieldFileID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value.Valid {
				_m.FileID = int(value.Int64)
			}
		case filewarning.FieldWarningType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warning_type", values[i])
			} else if value.Valid {
				_m.WarningType = value.String
			}
		case filewarning.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FileWarning.
// This includes values selected through modifiers, order, etc.
func (_m *FileWarning) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the FileWarning entity.
func (_m *FileWarning) QueryFile() *SubmittedFileQuery {
	return NewFileWarningClient(_m.config).QueryFile(_m)
}

// Update returns a builder for updating this FileWarning.
// Note that you need to call FileWarning.Unwrap() before calling this method if this FileWarning
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FileWarning) Update() *FileWarningUpdateOne {
	return NewFileWarningClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FileWarning entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FileWarning) Unwrap() *FileWarning {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FileWarning is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FileWarning) String() string {
	var builder strings.Builder
	builder.WriteString("FileWarning(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("warning_type=")
	builder.WriteString(_m.WarningType)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteByte(')')
	return builder.String()
}

// FileWarnings is a parsable slice of FileWarning.
type FileWarnings []*FileWarning
