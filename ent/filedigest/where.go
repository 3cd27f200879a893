// Code generated by ent, DO NOT EDIT.

package filedigest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/moodle-tools/simwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v int) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldFileID, v))
}

// DigestType applies equality check predicate on the "digest_type" field. It's identical to DigestTypeEQ.
func DigestType(v string) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldDigestType, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v []byte) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldContent, v))
}

// Created applies equality check predicate on the "created" field. It's identical to CreatedEQ.
func Created(v time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldCreated, v))
}

// AssignmentID applies equality check predicate on the "assignment_id" field. It's identical to AssignmentIDEQ.
func AssignmentID(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldAssignmentID, v))
}

// SubmissionID applies equality check predicate on the "submission_id" field. It's identical to SubmissionIDEQ.
func SubmissionID(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldSubmissionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldUserID, v))
}

// Uploaded applies equality check predicate on the "uploaded" field. It's identical to UploadedEQ.
func Uploaded(v time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldUploaded, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v int) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v int) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...int) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...int) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNotIn(FieldFileID, vs...))
}

// DigestTypeEQ applies the EQ predicate on the "digest_type" field.
func DigestTypeEQ(v string) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldDigestType, v))
}

// DigestTypeNEQ applies the NEQ predicate on the "digest_type" field.
func DigestTypeNEQ(v string) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNEQ(FieldDigestType, v))
}

// DigestTypeIn applies the In predicate on the "digest_type" field.
func DigestTypeIn(vs ...string) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldIn(FieldDigestType, vs...))
}

// DigestTypeNotIn applies the NotIn predicate on the "digest_type" field.
func DigestTypeNotIn(vs ...string) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNotIn(FieldDigestType, vs...))
}

// DigestTypeGT applies the GT predicate on the "digest_type" field.
func DigestTypeGT(v string) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGT(FieldDigestType, v))
}

// DigestTypeGTE applies the GTE predicate on the "digest_type" field.
func DigestTypeGTE(v string) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGTE(FieldDigestType, v))
}

// DigestTypeLT applies the LT predicate on the "digest_type" field.
func DigestTypeLT(v string) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLT(FieldDigestType, v))
}

// DigestTypeLTE applies the LTE predicate on the "digest_type" field.
func DigestTypeLTE(v string) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLTE(FieldDigestType, v))
}

// DigestTypeContains applies the Contains predicate on the "digest_type" field.
func DigestTypeContains(v string) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldContains(FieldDigestType, v))
}

// DigestTypeHasPrefix applies the HasPrefix predicate on the "digest_type" field.
func DigestTypeHasPrefix(v string) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldHasPrefix(FieldDigestType, v))
}

// DigestTypeHasSuffix applies the HasSuffix predicate on the "digest_type" field.
func DigestTypeHasSuffix(v string) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldHasSuffix(FieldDigestType, v))
}

// DigestTypeEqualFold applies the EqualFold predicate on the "digest_type" field.
func DigestTypeEqualFold(v string) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEqualFold(FieldDigestType, v))
}

// DigestTypeContainsFold applies the ContainsFold predicate on the "digest_type" field.
func DigestTypeContainsFold(v string) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldContainsFold(FieldDigestType, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v []byte) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v []byte) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...[]byte) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...[]byte) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v []byte) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v []byte) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v []byte) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v []byte) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLTE(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.FileDigest {
	return predicate.FileDigest(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNotNull(FieldContent))
}

// CreatedEQ applies the EQ predicate on the "created" field.
func CreatedEQ(v time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldCreated, v))
}

// CreatedNEQ applies the NEQ predicate on the "created" field.
func CreatedNEQ(v time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNEQ(FieldCreated, v))
}

// CreatedIn applies the In predicate on the "created" field.
func CreatedIn(vs ...time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldIn(FieldCreated, vs...))
}

// CreatedNotIn applies the NotIn predicate on the "created" field.
func CreatedNotIn(vs ...time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNotIn(FieldCreated, vs...))
}

// CreatedGT applies the GT predicate on the "created" field.
func CreatedGT(v time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGT(FieldCreated, v))
}

// CreatedGTE applies the GTE predicate on the "created" field.
func CreatedGTE(v time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGTE(FieldCreated, v))
}

// CreatedLT applies the LT predicate on the "created" field.
func CreatedLT(v time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLT(FieldCreated, v))
}

// CreatedLTE applies the LTE predicate on the "created" field.
func CreatedLTE(v time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLTE(FieldCreated, v))
}

// AssignmentIDEQ applies the EQ predicate on the "assignment_id" field.
func AssignmentIDEQ(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldAssignmentID, v))
}

// AssignmentIDNEQ applies the NEQ predicate on the "assignment_id" field.
func AssignmentIDNEQ(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNEQ(FieldAssignmentID, v))
}

// AssignmentIDIn applies the In predicate on the "assignment_id" field.
func AssignmentIDIn(vs ...int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldIn(FieldAssignmentID, vs...))
}

// AssignmentIDNotIn applies the NotIn predicate on the "assignment_id" field.
func AssignmentIDNotIn(vs ...int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNotIn(FieldAssignmentID, vs...))
}

// AssignmentIDGT applies the GT predicate on the "assignment_id" field.
func AssignmentIDGT(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGT(FieldAssignmentID, v))
}

// AssignmentIDGTE applies the GTE predicate on the "assignment_id" field.
func AssignmentIDGTE(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGTE(FieldAssignmentID, v))
}

// AssignmentIDLT applies the LT predicate on the "assignment_id" field.
func AssignmentIDLT(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLT(FieldAssignmentID, v))
}

// AssignmentIDLTE applies the LTE predicate on the "assignment_id" field.
func AssignmentIDLTE(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLTE(FieldAssignmentID, v))
}

// SubmissionIDEQ applies the EQ predicate on the "submission_id" field.
func SubmissionIDEQ(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldSubmissionID, v))
}

// SubmissionIDNEQ applies the NEQ predicate on the "submission_id" field.
func SubmissionIDNEQ(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNEQ(FieldSubmissionID, v))
}

// SubmissionIDIn applies the In predicate on the "submission_id" field.
func SubmissionIDIn(vs ...int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldIn(FieldSubmissionID, vs...))
}

// SubmissionIDNotIn applies the NotIn predicate on the "submission_id" field.
func SubmissionIDNotIn(vs ...int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNotIn(FieldSubmissionID, vs...))
}

// SubmissionIDGT applies the GT predicate on the "submission_id" field.
func SubmissionIDGT(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGT(FieldSubmissionID, v))
}

// SubmissionIDGTE applies the GTE predicate on the "submission_id" field.
func SubmissionIDGTE(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGTE(FieldSubmissionID, v))
}

// SubmissionIDLT applies the LT predicate on the "submission_id" field.
func SubmissionIDLT(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLT(FieldSubmissionID, v))
}

// SubmissionIDLTE applies the LTE predicate on the "submission_id" field.
func SubmissionIDLTE(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLTE(FieldSubmissionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLTE(FieldUserID, v))
}

// UploadedEQ applies the EQ predicate on the "uploaded" field.
func UploadedEQ(v time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldEQ(FieldUploaded, v))
}

// UploadedNEQ applies the NEQ predicate on the "uploaded" field.
func UploadedNEQ(v time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNEQ(FieldUploaded, v))
}

// UploadedIn applies the In predicate on the "uploaded" field.
func UploadedIn(vs ...time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldIn(FieldUploaded, vs...))
}

// UploadedNotIn applies the NotIn predicate on the "uploaded" field.
func UploadedNotIn(vs ...time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldNotIn(FieldUploaded, vs...))
}

// UploadedGT applies the GT predicate on the "uploaded" field.
func UploadedGT(v time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGT(FieldUploaded, v))
}

// UploadedGTE applies the GTE predicate on the "uploaded" field.
func UploadedGTE(v time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldGTE(FieldUploaded, v))
}

// UploadedLT applies the LT predicate on the "uploaded" field.
func UploadedLT(v time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLT(FieldUploaded, v))
}

// UploadedLTE applies the LTE predicate on the "uploaded" field.
func UploadedLTE(v time.Time) predicate.FileDigest {
	return predicate.FileDigest(sql.FieldLTE(FieldUploaded, v))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.FileDigest {
	return predicate.FileDigest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.SubmittedFile) predicate.FileDigest {
	return predicate.FileDigest(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FileDigest) predicate.FileDigest {
	return predicate.FileDigest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FileDigest) predicate.FileDigest {
	return predicate.FileDigest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FileDigest) predicate.FileDigest {
	return predicate.FileDigest(sql.NotPredicates(p))
}
