// Code generated by ent, DO NOT EDIT.

package filecomparison

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the filecomparison type in the database.
	Label = "file_comparison"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOlderFileID holds the string denoting the older_file_id field in the database.
	FieldOlderFileID = "older_file_id"
	// FieldOlderDigestType holds the string denoting the older_digest_type field in the database.
	FieldOlderDigestType = "older_digest_type"
	// FieldNewerFileID holds the string denoting the newer_file_id field in the database.
	FieldNewerFileID = "newer_file_id"
	// FieldNewerDigestType holds the string denoting the newer_digest_type field in the database.
	FieldNewerDigestType = "newer_digest_type"
	// FieldSimilarityScore holds the string denoting the similarity_score field in the database.
	FieldSimilarityScore = "similarity_score"
	// EdgeOlderFile holds the string denoting the older_file edge name in mutations.
	EdgeOlderFile = "older_file"
	// EdgeNewerFile holds the string denoting the newer_file edge name in mutations.
	EdgeNewerFile = "newer_file"
	// Table holds the table name of the filecomparison in the database.
	Table = "file_comparisons"
	// OlderFileTable is the table that holds the older_file relation/edge.
	OlderFileTable = "file_comparisons"
	// OlderFileInverseTable is the table name for the SubmittedFile entity.
	// It exists in this package in order to avoid circular dependency with the "submittedfile" package.
	OlderFileInverseTable = "moodle_submitted_files"
	// OlderFileColumn is the table column denoting the older_file relation/edge.
	OlderFileColumn = "older_file_id"
	// NewerFileTable is the table that holds the newer_file relation/edge.
	NewerFileTable = "file_comparisons"
	// NewerFileInverseTable is the table name for the SubmittedFile entity.
	// It exists in this package in order to avoid circular dependency with the "submittedfile" package.
	NewerFileInverseTable = "moodle_submitted_files"
	// NewerFileColumn is the table column denoting the newer_file relation/edge.
	NewerFileColumn = "newer_file_id"
)

// Columns holds all SQL columns for filecomparison fields.
var Columns = []string{
	FieldID,
	FieldOlderFileID,
	FieldOlderDigestType,
	FieldNewerFileID,
	FieldNewerDigestType,
	FieldSimilarityScore,
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

var (
	// SimilarityScoreValidator is a validator for the "similarity_score" field. It is called by the builders before save.
	SimilarityScoreValidator func(float64) error
)

// OrderOption defines the ordering options for the FileComparison queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOlderFileID orders the results by the older_file_id field.
func ByOlderFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOlderFileID, opts...).ToFunc()
}

// ByOlderDigestType orders the results by the older_digest_type field.
func ByOlderDigestType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOlderDigestType, opts...).ToFunc()
}

// ByNewerFileID orders the results by the newer_file_id field.
func ByNewerFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewerFileID, opts...).ToFunc()
}

// ByNewerDigestType orders the results by the newer_digest_type field.
func ByNewerDigestType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewerDigestType, opts...).ToFunc()
}

// BySimilarityScore orders the results by the similarity_score field.
func BySimilarityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimilarityScore, opts...).ToFunc()
}

// ByOlderFileField orders the results by older_file field.
func ByOlderFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOlderFileStep(), sql.OrderByField(field, opts...))
	}
}

// ByNewerFileField orders the results by newer_file field.
func ByNewerFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNewerFileStep(), sql.OrderByField(field, opts...))
	}
}
func newOlderFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OlderFileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OlderFileTable, OlderFileColumn),
	)
}
func newNewerFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NewerFileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, NewerFileTable, NewerFileColumn),
	)
}
