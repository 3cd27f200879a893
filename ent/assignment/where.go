// Code generated by ent, DO NOT EDIT.

package assignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/moodle-tools/simwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldID, id))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v int64) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldCourseID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldName, v))
}

// Opening applies equality check predicate on the "opening" field. It's identical to OpeningEQ.
func Opening(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldOpening, v))
}

// Closing applies equality check predicate on the "closing" field. It's identical to ClosingEQ.
func Closing(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldClosing, v))
}

// Cutoff applies equality check predicate on the "cutoff" field. It's identical to CutoffEQ.
func Cutoff(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldCutoff, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v int64) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v int64) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...int64) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...int64) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldCourseID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldName, v))
}

// OpeningEQ applies the EQ predicate on the "opening" field.
func OpeningEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldOpening, v))
}

// OpeningNEQ applies the NEQ predicate on the "opening" field.
func OpeningNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldOpening, v))
}

// OpeningIn applies the In predicate on the "opening" field.
func OpeningIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldOpening, vs...))
}

// OpeningNotIn applies the NotIn predicate on the "opening" field.
func OpeningNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldOpening, vs...))
}

// OpeningGT applies the GT predicate on the "opening" field.
func OpeningGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldOpening, v))
}

// OpeningGTE applies the GTE predicate on the "opening" field.
func OpeningGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldOpening, v))
}

// OpeningLT applies the LT predicate on the "opening" field.
func OpeningLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldOpening, v))
}

// OpeningLTE applies the LTE predicate on the "opening" field.
func OpeningLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldOpening, v))
}

// OpeningIsNil applies the IsNil predicate on the "opening" field.
func OpeningIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldOpening))
}

// OpeningNotNil applies the NotNil predicate on the "opening" field.
func OpeningNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldOpening))
}

// ClosingEQ applies the EQ predicate on the "closing" field.
func ClosingEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldClosing, v))
}

// ClosingNEQ applies the NEQ predicate on the "closing" field.
func ClosingNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldClosing, v))
}

// ClosingIn applies the In predicate on the "closing" field.
func ClosingIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldClosing, vs...))
}

// ClosingNotIn applies the NotIn predicate on the "closing" field.
func ClosingNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldClosing, vs...))
}

// ClosingGT applies the GT predicate on the "closing" field.
func ClosingGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldClosing, v))
}

// ClosingGTE applies the GTE predicate on the "closing" field.
func ClosingGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldClosing, v))
}

// ClosingLT applies the LT predicate on the "closing" field.
func ClosingLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldClosing, v))
}

// ClosingLTE applies the LTE predicate on the "closing" field.
func ClosingLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldClosing, v))
}

// ClosingIsNil applies the IsNil predicate on the "closing" field.
func ClosingIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldClosing))
}

// ClosingNotNil applies the NotNil predicate on the "closing" field.
func ClosingNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldClosing))
}

// CutoffEQ applies the EQ predicate on the "cutoff" field.
func CutoffEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldCutoff, v))
}

// CutoffNEQ applies the NEQ predicate on the "cutoff" field.
func CutoffNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldCutoff, v))
}

// CutoffIn applies the In predicate on the "cutoff" field.
func CutoffIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldCutoff, vs...))
}

// CutoffNotIn applies the NotIn predicate on the "cutoff" field.
func CutoffNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldCutoff, vs...))
}

// CutoffGT applies the GT predicate on the "cutoff" field.
func CutoffGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldCutoff, v))
}

// CutoffGTE applies the GTE predicate on the "cutoff" field.
func CutoffGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldCutoff, v))
}

// CutoffLT applies the LT predicate on the "cutoff" field.
func CutoffLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldCutoff, v))
}

// CutoffLTE applies the LTE predicate on the "cutoff" field.
func CutoffLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldCutoff, v))
}

// CutoffIsNil applies the IsNil predicate on the "cutoff" field.
func CutoffIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldCutoff))
}

// CutoffNotNil applies the NotNil predicate on the "cutoff" field.
func CutoffNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldCutoff))
}

// HasCourse applies the HasEdge predicate on the "course" edge.
func HasCourse() predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CourseTable, CourseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCourseWith applies the HasEdge predicate on the "course" edge with a given conditions (other predicates).
func HasCourseWith(preds ...predicate.Course) predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := newCourseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubmissions applies the HasEdge predicate on the "submissions" edge.
func HasSubmissions() predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionsWith applies the HasEdge predicate on the "submissions" edge with a given conditions (other predicates).
func HasSubmissionsWith(preds ...predicate.Submission) predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := newSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubmittedFiles applies the HasEdge predicate on the "submitted_files" edge.
func HasSubmittedFiles() predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubmittedFilesTable, SubmittedFilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmittedFilesWith applies the HasEdge predicate on the "submitted_files" edge with a given conditions (other predicates).
func HasSubmittedFilesWith(preds ...predicate.SubmittedFile) predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := newSubmittedFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.NotPredicates(p))
}
