// Code generated by ent, DO NOT EDIT.

package assignment

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the assignment type in the database.
	Label = "assignment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldOpening holds the string denoting the opening field in the database.
	FieldOpening = "opening"
	// FieldClosing holds the string denoting the closing field in the database.
	FieldClosing = "closing"
	// FieldCutoff holds the string denoting the cutoff field in the database.
	FieldCutoff = "cutoff"
	// EdgeCourse holds the string denoting the course edge name in mutations.
	EdgeCourse = "course"
	// EdgeSubmissions holds the string denoting the submissions edge name in mutations.
	EdgeSubmissions = "submissions"
	// EdgeSubmittedFiles holds the string denoting the submitted_files edge name in mutations.
	EdgeSubmittedFiles = "submitted_files"
	// Table holds the table name of the assignment in the database.
	Table = "moodle_assignments"
	// CourseTable is the table that holds the course relation/edge.
	CourseTable = "moodle_assignments"
	// CourseInverseTable is the table name for the Course entity.
	// It exists in this package in order to avoid circular dependency with the "course" package.
	CourseInverseTable = "moodle_courses"
	// CourseColumn is the table column denoting the course relation/edge.
	CourseColumn = "course_id"
	// SubmissionsTable is the table that holds the submissions relation/edge.
	SubmissionsTable = "moodle_submissions"
	// SubmissionsInverseTable is the table name for the Submission entity.
	// It exists in this package in order to avoid circular dependency with the "submission" package.
	SubmissionsInverseTable = "moodle_submissions"
	// SubmissionsColumn is the table column denoting the submissions relation/edge.
	SubmissionsColumn = "assignment_id"
	// SubmittedFilesTable is the table that holds the submitted_files relation/edge.
	SubmittedFilesTable = "moodle_submitted_files"
	// SubmittedFilesInverseTable is the table name for the SubmittedFile entity.
	// It exists in this package in order to avoid circular dependency with the "submittedfile" package.
	SubmittedFilesInverseTable = "moodle_submitted_files"
	// SubmittedFilesColumn is the table column denoting the submitted_files relation/edge.
	SubmittedFilesColumn = "assignment_id"
)

// Columns holds all SQL columns for assignment fields.
var Columns = []string{
	FieldID,
	FieldCourseID,
	FieldName,
	FieldOpening,
	FieldClosing,
	FieldCutoff,
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

// OrderOption defines the ordering options for the Assignment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByOpening orders the results by the opening field.
func ByOpening(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpening, opts...).ToFunc()
}

// ByClosing orders the results by the closing field.
func ByClosing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosing, opts...).ToFunc()
}

// ByCutoff orders the results by the cutoff field.
func ByCutoff(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCutoff, opts...).ToFunc()
}

// ByCourseField orders the results by course field.
func ByCourseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCourseStep(), sql.OrderByField(field, opts...))
	}
}

// BySubmissionsCount orders the results by submissions count.
func BySubmissionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubmissionsStep(), opts...)
	}
}

// BySubmissions orders the results by submissions terms.
func BySubmissions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmissionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySubmittedFilesCount orders the results by submitted_files count.
func BySubmittedFilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubmittedFilesStep(), opts...)
	}
}

// BySubmittedFiles orders the results by submitted_files terms.
func BySubmittedFiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmittedFilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCourseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CourseInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CourseTable, CourseColumn),
	)
}
func newSubmissionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmissionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
	)
}
func newSubmittedFilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmittedFilesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubmittedFilesTable, SubmittedFilesColumn),
	)
}
