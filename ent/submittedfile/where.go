// Code generated by ent, DO NOT EDIT.

package submittedfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/moodle-tools/simwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldLTE(FieldID, id))
}

// SubmissionID applies equality check predicate on the "submission_id" field. It's identical to SubmissionIDEQ.
func SubmissionID(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldSubmissionID, v))
}

// AssignmentID applies equality check predicate on the "assignment_id" field. It's identical to AssignmentIDEQ.
func AssignmentID(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldAssignmentID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldUserID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldFilename, v))
}

// Filesize applies equality check predicate on the "filesize" field. It's identical to FilesizeEQ.
func Filesize(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldFilesize, v))
}

// Mimetype applies equality check predicate on the "mimetype" field. It's identical to MimetypeEQ.
func Mimetype(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldMimetype, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldURL, v))
}

// Uploaded applies equality check predicate on the "uploaded" field. It's identical to UploadedEQ.
func Uploaded(v time.Time) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldUploaded, v))
}

// SubmissionIDEQ applies the EQ predicate on the "submission_id" field.
func SubmissionIDEQ(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldSubmissionID, v))
}

// SubmissionIDNEQ applies the NEQ predicate on the "submission_id" field.
func SubmissionIDNEQ(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNEQ(FieldSubmissionID, v))
}

// SubmissionIDIn applies the In predicate on the "submission_id" field.
func SubmissionIDIn(vs ...int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldIn(FieldSubmissionID, vs...))
}

// SubmissionIDNotIn applies the NotIn predicate on the "submission_id" field.
func SubmissionIDNotIn(vs ...int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNotIn(FieldSubmissionID, vs...))
}

// AssignmentIDEQ applies the EQ predicate on the "assignment_id" field.
func AssignmentIDEQ(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldAssignmentID, v))
}

// AssignmentIDNEQ applies the NEQ predicate on the "assignment_id" field.
func AssignmentIDNEQ(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNEQ(FieldAssignmentID, v))
}

// AssignmentIDIn applies the In predicate on the "assignment_id" field.
func AssignmentIDIn(vs ...int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldIn(FieldAssignmentID, vs...))
}

// AssignmentIDNotIn applies the NotIn predicate on the "assignment_id" field.
func AssignmentIDNotIn(vs ...int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNotIn(FieldAssignmentID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNotIn(FieldUserID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldContainsFold(FieldFilename, v))
}

// FilesizeEQ applies the EQ predicate on the "filesize" field.
func FilesizeEQ(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldFilesize, v))
}

// FilesizeNEQ applies the NEQ predicate on the "filesize" field.
func FilesizeNEQ(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNEQ(FieldFilesize, v))
}

// FilesizeIn applies the In predicate on the "filesize" field.
func FilesizeIn(vs ...int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldIn(FieldFilesize, vs...))
}

// FilesizeNotIn applies the NotIn predicate on the "filesize" field.
func FilesizeNotIn(vs ...int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNotIn(FieldFilesize, vs...))
}

// FilesizeGT applies the GT predicate on the "filesize" field.
func FilesizeGT(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldGT(FieldFilesize, v))
}

// FilesizeGTE applies the GTE predicate on the "filesize" field.
func FilesizeGTE(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldGTE(FieldFilesize, v))
}

// FilesizeLT applies the LT predicate on the "filesize" field.
func FilesizeLT(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldLT(FieldFilesize, v))
}

// FilesizeLTE applies the LTE predicate on the "filesize" field.
func FilesizeLTE(v int64) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldLTE(FieldFilesize, v))
}

// MimetypeEQ applies the EQ predicate on the "mimetype" field.
func MimetypeEQ(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldMimetype, v))
}

// MimetypeNEQ applies the NEQ predicate on the "mimetype" field.
func MimetypeNEQ(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNEQ(FieldMimetype, v))
}

// MimetypeIn applies the In predicate on the "mimetype" field.
func MimetypeIn(vs ...string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldIn(FieldMimetype, vs...))
}

// MimetypeNotIn applies the NotIn predicate on the "mimetype" field.
func MimetypeNotIn(vs ...string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNotIn(FieldMimetype, vs...))
}

// MimetypeGT applies the GT predicate on the "mimetype" field.
func MimetypeGT(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldGT(FieldMimetype, v))
}

// MimetypeGTE applies the GTE predicate on the "mimetype" field.
func MimetypeGTE(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldGTE(FieldMimetype, v))
}

// MimetypeLT applies the LT predicate on the "mimetype" field.
func MimetypeLT(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldLT(FieldMimetype, v))
}

// MimetypeLTE applies the LTE predicate on the "mimetype" field.
func MimetypeLTE(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldLTE(FieldMimetype, v))
}

// MimetypeContains applies the Contains predicate on the "mimetype" field.
func MimetypeContains(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldContains(FieldMimetype, v))
}

// MimetypeHasPrefix applies the HasPrefix predicate on the "mimetype" field.
func MimetypeHasPrefix(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldHasPrefix(FieldMimetype, v))
}

// MimetypeHasSuffix applies the HasSuffix predicate on the "mimetype" field.
func MimetypeHasSuffix(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldHasSuffix(FieldMimetype, v))
}

// MimetypeEqualFold applies the EqualFold predicate on the "mimetype" field.
func MimetypeEqualFold(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEqualFold(FieldMimetype, v))
}

// MimetypeContainsFold applies the ContainsFold predicate on the "mimetype" field.
func MimetypeContainsFold(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldContainsFold(FieldMimetype, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldContainsFold(FieldURL, v))
}

// UploadedEQ applies the EQ predicate on the "uploaded" field.
func UploadedEQ(v time.Time) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldEQ(FieldUploaded, v))
}

// UploadedNEQ applies the NEQ predicate on the "uploaded" field.
func UploadedNEQ(v time.Time) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNEQ(FieldUploaded, v))
}

// UploadedIn applies the In predicate on the "uploaded" field.
func UploadedIn(vs ...time.Time) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldIn(FieldUploaded, vs...))
}

// UploadedNotIn applies the NotIn predicate on the "uploaded" field.
func UploadedNotIn(vs ...time.Time) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldNotIn(FieldUploaded, vs...))
}

// UploadedGT applies the GT predicate on the "uploaded" field.
func UploadedGT(v time.Time) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldGT(FieldUploaded, v))
}

// UploadedGTE applies the GTE predicate on the "uploaded" field.
func UploadedGTE(v time.Time) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldGTE(FieldUploaded, v))
}

// UploadedLT applies the LT predicate on the "uploaded" field.
func UploadedLT(v time.Time) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldLT(FieldUploaded, v))
}

// UploadedLTE applies the LTE predicate on the "uploaded" field.
func UploadedLTE(v time.Time) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.FieldLTE(FieldUploaded, v))
}

// HasSubmission applies the HasEdge predicate on the "submission" edge.
func HasSubmission() predicate.SubmittedFile {
	return predicate.SubmittedFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionWith applies the HasEdge predicate on the "submission" edge with a given conditions (other predicates).
func HasSubmissionWith(preds ...predicate.Submission) predicate.SubmittedFile {
	return predicate.SubmittedFile(func(s *sql.Selector) {
		step := newSubmissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignment applies the HasEdge predicate on the "assignment" edge.
func HasAssignment() predicate.SubmittedFile {
	return predicate.SubmittedFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssignmentTable, AssignmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignmentWith applies the HasEdge predicate on the "assignment" edge with a given conditions (other predicates).
func HasAssignmentWith(preds ...predicate.Assignment) predicate.SubmittedFile {
	return predicate.SubmittedFile(func(s *sql.Selector) {
		step := newAssignmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.SubmittedFile {
	return predicate.SubmittedFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.SubmittedFile {
	return predicate.SubmittedFile(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDigests applies the HasEdge predicate on the "digests" edge.
func HasDigests() predicate.SubmittedFile {
	return predicate.SubmittedFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DigestsTable, DigestsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDigestsWith applies the HasEdge predicate on the "digests" edge with a given conditions (other predicates).
func HasDigestsWith(preds ...predicate.FileDigest) predicate.SubmittedFile {
	return predicate.SubmittedFile(func(s *sql.Selector) {
		step := newDigestsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWarnings applies the HasEdge predicate on the "warnings" edge.
func HasWarnings() predicate.SubmittedFile {
	return predicate.SubmittedFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WarningsTable, WarningsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWarningsWith applies the HasEdge predicate on the "warnings" edge with a given conditions (other predicates).
func HasWarningsWith(preds ...predicate.FileWarning) predicate.SubmittedFile {
	return predicate.SubmittedFile(func(s *sql.Selector) {
		step := newWarningsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOlderComparisons applies the HasEdge predicate on the "older_comparisons" edge.
func HasOlderComparisons() predicate.SubmittedFile {
	return predicate.SubmittedFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OlderComparisonsTable, OlderComparisonsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOlderComparisonsWith applies the HasEdge predicate on the "older_comparisons" edge with a given conditions (other predicates).
func HasOlderComparisonsWith(preds ...predicate.FileComparison) predicate.SubmittedFile {
	return predicate.SubmittedFile(func(s *sql.Selector) {
		step := newOlderComparisonsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasNewerComparisons applies the HasEdge predicate on the "newer_comparisons" edge.
func HasNewerComparisons() predicate.SubmittedFile {
	return predicate.SubmittedFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NewerComparisonsTable, NewerComparisonsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNewerComparisonsWith applies the HasEdge predicate on the "newer_comparisons" edge with a given conditions (other predicates).
func HasNewerComparisonsWith(preds ...predicate.FileComparison) predicate.SubmittedFile {
	return predicate.SubmittedFile(func(s *sql.Selector) {
		step := newNewerComparisonsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubmittedFile) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubmittedFile) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubmittedFile) predicate.SubmittedFile {
	return predicate.SubmittedFile(sql.NotPredicates(p))
}
