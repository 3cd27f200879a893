// Code generated by ent, DO NOT EDIT.

package submittedfile

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the submittedfile type in the database.
	Label = "submitted_file"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubmissionID holds the string denoting the submission_id field in the database.
	FieldSubmissionID = "submission_id"
	// FieldAssignmentID holds the string denoting the assignment_id field in the database.
	FieldAssignmentID = "assignment_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldFilesize holds the string denoting the filesize field in the database.
	FieldFilesize = "filesize"
	// FieldMimetype holds the string denoting the mimetype field in the database.
	FieldMimetype = "mimetype"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldUploaded holds the string denoting the uploaded field in the database.
	FieldUploaded = "uploaded"
	// EdgeSubmission holds the string denoting the submission edge name in mutations.
	EdgeSubmission = "submission"
	// EdgeAssignment holds the string denoting the assignment edge name in mutations.
	EdgeAssignment = "assignment"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeDigests holds the string denoting the digests edge name in mutations.
	EdgeDigests = "digests"
	// EdgeWarnings holds the string denoting the warnings edge name in mutations.
	EdgeWarnings = "warnings"
	// EdgeOlderComparisons holds the string denoting the older_comparisons edge name in mutations.
	EdgeOlderComparisons = "older_comparisons"
	// EdgeNewerComparisons holds the string denoting the newer_comparisons edge name in mutations.
	EdgeNewerComparisons = "newer_comparisons"
	// Table holds the table name of the submittedfile in the database.
	Table = "moodle_submitted_files"
	// SubmissionTable is the table that holds the submission relation/edge.
	SubmissionTable = "moodle_submitted_files"
	// SubmissionInverseTable is the table name for the Submission entity.
	// It exists in this package in order to avoid circular dependency with the "submission" package.
	SubmissionInverseTable = "moodle_submissions"
	// SubmissionColumn is the table column denoting the submission relation/edge.
	SubmissionColumn = "submission_id"
	// AssignmentTable is the table that holds the assignment relation/edge.
	AssignmentTable = "moodle_submitted_files"
	// AssignmentInverseTable is the table name for the Assignment entity.
	// It exists in this package in order to avoid circular dependency with the "assignment" package.
	AssignmentInverseTable = "moodle_assignments"
	// AssignmentColumn is the table column denoting the assignment relation/edge.
	AssignmentColumn = "assignment_id"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "moodle_submitted_files"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "moodle_users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// DigestsTable is the table that holds the digests relation/edge.
	DigestsTable = "file_digests"
	// DigestsInverseTable is the table name for the FileDigest entity.
	// It exists in this package in order to avoid circular dependency with the "filedigest" package.
	DigestsInverseTable = "file_digests"
	// DigestsColumn is the table column denoting the digests relation/edge.
	DigestsColumn = "file_id"
	// WarningsTable is the table that holds the warnings relation/edge.
	WarningsTable = "file_warnings"
	// WarningsInverseTable is the table name for the FileWarning entity.
	// It exists in this package in order to avoid circular dependency with the "filewarning" package.
	WarningsInverseTable = "file_warnings"
	// WarningsColumn is the table column denoting the warnings relation/edge.
	WarningsColumn = "file_id"
	// OlderComparisonsTable is the table that holds the older_comparisons relation/edge.
	OlderComparisonsTable = "file_comparisons"
	// OlderComparisonsInverseTable is the table name for the FileComparison entity.
	// It exists in this package in order to avoid circular dependency with the "filecomparison" package.
	OlderComparisonsInverseTable = "file_comparisons"
	// OlderComparisonsColumn is the table column denoting the older_comparisons relation/edge.
	OlderComparisonsColumn = "older_file_id"
	// NewerComparisonsTable is the table that holds the newer_comparisons relation/edge.
	NewerComparisonsTable = "file_comparisons"
	// NewerComparisonsInverseTable is the table name for the FileComparison entity.
	// It exists in this package in order to avoid circular dependency with the "filecomparison" package.
	NewerComparisonsInverseTable = "file_comparisons"
	// NewerComparisonsColumn is the table column denoting the newer_comparisons relation/edge.
	NewerComparisonsColumn = "newer_file_id"
)

// Columns holds all SQL columns for submittedfile fields.
var Columns = []string{
	FieldID,
	FieldSubmissionID,
	FieldAssignmentID,
	FieldUserID,
	FieldFilename,
	FieldFilesize,
	FieldMimetype,
	FieldURL,
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

// OrderOption defines the ordering options for the SubmittedFile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubmissionID orders the results by the submission_id field.
func BySubmissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmissionID, opts...).ToFunc()
}

// ByAssignmentID orders the results by the assignment_id field.
func ByAssignmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByFilesize orders the results by the filesize field.
func ByFilesize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilesize, opts...).ToFunc()
}

// ByMimetype orders the results by the mimetype field.
func ByMimetype(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimetype, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByUploaded orders the results by the uploaded field.
func ByUploaded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploaded, opts...).ToFunc()
}

// BySubmissionField orders the results by submission field.
func BySubmissionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmissionStep(), sql.OrderByField(field, opts...))
	}
}

// ByAssignmentField orders the results by assignment field.
func ByAssignmentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignmentStep(), sql.OrderByField(field, opts...))
	}
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByDigestsCount orders the results by digests count.
func ByDigestsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDigestsStep(), opts...)
	}
}

// ByDigests orders the results by digests terms.
func ByDigests(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDigestsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWarningsCount orders the results by warnings count.
func ByWarningsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWarningsStep(), opts...)
	}
}

// ByWarnings orders the results by warnings terms.
func ByWarnings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWarningsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOlderComparisonsCount orders the results by older_comparisons count.
func ByOlderComparisonsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOlderComparisonsStep(), opts...)
	}
}

// ByOlderComparisons orders the results by older_comparisons terms.
func ByOlderComparisons(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOlderComparisonsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByNewerComparisonsCount orders the results by newer_comparisons count.
func ByNewerComparisonsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNewerComparisonsStep(), opts...)
	}
}

// ByNewerComparisons orders the results by newer_comparisons terms.
func ByNewerComparisons(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNewerComparisonsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubmissionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmissionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
	)
}
func newAssignmentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignmentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AssignmentTable, AssignmentColumn),
	)
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newDigestsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DigestsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DigestsTable, DigestsColumn),
	)
}
func newWarningsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WarningsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WarningsTable, WarningsColumn),
	)
}
func newOlderComparisonsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OlderComparisonsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OlderComparisonsTable, OlderComparisonsColumn),
	)
}
func newNewerComparisonsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NewerComparisonsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NewerComparisonsTable, NewerComparisonsColumn),
	)
}
