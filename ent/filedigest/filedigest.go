// Code generated by ent, DO NOT EDIT.

package filedigest

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the filedigest type in the database.
	Label = "file_digest"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFileID holds the string denoting the file_id field in the database.
	FieldFileID = "file_id"
	// FieldDigestType holds the string denoting the digest_type field in the database.
	FieldDigestType = "digest_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldCreated holds the string denoting the created field in the database.
	FieldCreated = "created"
	// FieldAssignmentID holds the string denoting the assignment_id field in the database.
	FieldAssignmentID = "assignment_id"
	// FieldSubmissionID holds the string denoting the submission_id field in the database.
	FieldSubmissionID = "submission_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldUploaded holds the string denoting the uploaded field in the database.
	FieldUploaded = "uploaded"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// Table holds the table name of the filedigest in the database.
	Table = "file_digests"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "file_digests"
	// FileInverseTable is the table name for the SubmittedFile entity.
	// It exists in this package in order to avoid circular dependency with the "submittedfile" package.
	FileInverseTable = "moodle_submitted_files"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "file_id"
)

// Columns holds all SQL columns for filedigest fields.
var Columns = []string{
	FieldID,
	FieldFileID,
	FieldDigestType,
	FieldContent,
	FieldCreated,
	FieldAssignmentID,
	FieldSubmissionID,
	FieldUserID,
	FieldUploaded,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the FileDigest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFileID orders the results by the file_id field.
func ByFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileID, opts...).ToFunc()
}

// ByDigestType orders the results by the digest_type field.
func ByDigestType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDigestType, opts...).ToFunc()
}

// ByCreated orders the results by the created field.
func ByCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreated, opts...).ToFunc()
}

// ByAssignmentID orders the results by the assignment_id field.
func ByAssignmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentID, opts...).ToFunc()
}

// BySubmissionID orders the results by the submission_id field.
func BySubmissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmissionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByUploaded orders the results by the uploaded field.
func ByUploaded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploaded, opts...).ToFunc()
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}
