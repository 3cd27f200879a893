// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/moodle-tools/simwatch/ent/filecomparison"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
)

// FileComparison is the model entity for the FileComparison schema.
type FileComparison struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// OlderFileID holds the value of the "older_file_id" field.
	OlderFileID int `json:"older_file_id,omitempty"`
	// OlderDigestType holds the value of the "older_digest_type" field.
	OlderDigestType string `json:"older_digest_type,omitempty"`
	// NewerFileID holds the value of the "newer_file_id" field.
	NewerFileID int `json:"newer_file_id,omitempty"`
	// NewerDigestType holds the value of the "newer_digest_type" field.
	NewerDigestType string `json:"newer_digest_type,omitempty"`
	// SimilarityScore holds the value of the "similarity_score" field.
	SimilarityScore float64 `json:"similarity_score,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FileComparisonQuery when eager-loading is set.
	Edges        FileComparisonEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FileComparisonEdges holds the relations/edges for other nodes in the graph.
type FileComparisonEdges struct {
	// OlderFile holds the value of the older_file edge.
	OlderFile *SubmittedFile `json:"older_file,omitempty"`
	// NewerFile holds the value of the newer_file edge.
	NewerFile *SubmittedFile `json:"newer_file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OlderFileOrErr returns the OlderFile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FileComparisonEdges) OlderFileOrErr() (*SubmittedFile, error) {
	if e.OlderFile != nil {
		return e.OlderFile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: submittedfile.Label}
	}
	return nil, &NotLoadedError{edge: "older_file"}
}

// NewerFileOrErr returns the NewerFile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FileComparisonEdges) NewerFileOrErr() (*SubmittedFile, error) {
	if e.NewerFile != nil {
		return e.NewerFile, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: submittedfile.Label}
	}
	return nil, &NotLoadedError{edge: "newer_file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FileComparison) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case filecomparison.FieldSimilarityScore:
			values[i] = new(sql.NullFloat64)
		case filecomparison.FieldID, filecomparison.FieldOlderFileID, filecomparison.FieldNewerFileID:
			values[i] = new(sql.NullInt64)
		case filecomparison.FieldOlderDigestType, filecomparison.FieldNewerDigestType:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FileComparison fields.
func (_m *FileComparison) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case filecomparison.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case filecomparison.FieldOlderFileID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field older_file_id", values[i])
			} else if value.Valid {
				_m.OlderFileID = int(value.Int64)
			}
		case filecomparison.FieldOlderDigestType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field older_digest_type", values[i])
			} else if value.Valid {
				_m.OlderDigestType = value.String
			}
		case filecomparison.FieldNewerFileID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field newer_file_id", values[i])
			} else if value.Valid {
				_m.NewerFileID = int(value.Int64)
			}
		case filecomparison.FieldNewerDigestType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field newer_digest_type", values[i])
			} else if value.Valid {
				_m.NewerDigestType = value.String
			}
		case filecomparison.FieldSimilarityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field similarity_score", values[i])
			} else if value.Valid {
				_m.SimilarityScore = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FileComparison.
// This includes values selected through modifiers, order, etc.
func (_m *FileComparison) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOlderFile queries the "older_file" edge of the FileComparison entity.
func (_m *FileComparison) QueryOlderFile() *SubmittedFileQuery {
	return NewFileComparisonClient(_m.config).QueryOlderFile(_m)
}

// QueryNewerFile queries the "newer_file" edge of the FileComparison entity.
func (_m *FileComparison) QueryNewerFile() *SubmittedFileQuery {
	return NewFileComparisonClient(_m.config).QueryNewerFile(_m)
}

// Update returns a builder for updating this FileComparison.
// Note that you need to call FileComparison.Unwrap() before calling this method if this FileComparison
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FileComparison) Update() *FileComparisonUpdateOne {
	return NewFileComparisonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FileComparison entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FileComparison) Unwrap() *FileComparison {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FileComparison is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FileComparison) String() string {
	var builder strings.Builder
	builder.WriteString("FileComparison(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("older_file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OlderFileID))
	builder.WriteString(", ")
	builder.WriteString("older_digest_type=")
	builder.WriteString(_m.OlderDigestType)
	builder.WriteString(", ")
	builder.WriteString("newer_file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewerFileID))
	builder.WriteString(", ")
	builder.WriteString("newer_digest_type=")
	builder.WriteString(_m.NewerDigestType)
	builder.WriteString(", ")
	builder.WriteString("similarity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SimilarityScore))
	builder.WriteByte(')')
	return builder.String()
}

// FileComparisons is a parsable slice of FileComparison.
type FileComparisons []*FileComparison
