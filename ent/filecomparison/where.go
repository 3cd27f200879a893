// Code generated by ent, DO NOT EDIT.

package filecomparison

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/moodle-tools/simwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldLTE(FieldID, id))
}

// OlderFileID applies equality check predicate on the "older_file_id" field. It's identical to OlderFileIDEQ.
func OlderFileID(v int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldEQ(FieldOlderFileID, v))
}

// OlderDigestType applies equality check predicate on the "older_digest_type" field. It's identical to OlderDigestTypeEQ.
func OlderDigestType(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldEQ(FieldOlderDigestType, v))
}

// NewerFileID applies equality check predicate on the "newer_file_id" field. It's identical to NewerFileIDEQ.
func NewerFileID(v int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldEQ(FieldNewerFileID, v))
}

// NewerDigestType applies equality check predicate on the "newer_digest_type" field. It's identical to NewerDigestTypeEQ.
func NewerDigestType(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldEQ(FieldNewerDigestType, v))
}

// SimilarityScore applies equality check predicate on the "similarity_score" field. It's identical to SimilarityScoreEQ.
func SimilarityScore(v float64) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldEQ(FieldSimilarityScore, v))
}

// OlderFileIDEQ applies the EQ predicate on the "older_file_id" field.
func OlderFileIDEQ(v int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldEQ(FieldOlderFileID, v))
}

// OlderFileIDNEQ applies the NEQ predicate on the "older_file_id" field.
func OlderFileIDNEQ(v int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldNEQ(FieldOlderFileID, v))
}

// OlderFileIDIn applies the In predicate on the "older_file_id" field.
func OlderFileIDIn(vs ...int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldIn(FieldOlderFileID, vs...))
}

// OlderFileIDNotIn applies the NotIn predicate on the "older_file_id" field.
func OlderFileIDNotIn(vs ...int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldNotIn(FieldOlderFileID, vs...))
}

// OlderDigestTypeEQ applies the EQ predicate on the "older_digest_type" field.
func OlderDigestTypeEQ(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldEQ(FieldOlderDigestType, v))
}

// OlderDigestTypeNEQ applies the NEQ predicate on the "older_digest_type" field.
func OlderDigestTypeNEQ(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldNEQ(FieldOlderDigestType, v))
}

// OlderDigestTypeIn applies the In predicate on the "older_digest_type" field.
func OlderDigestTypeIn(vs ...string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldIn(FieldOlderDigestType, vs...))
}

// OlderDigestTypeNotIn applies the NotIn predicate on the "older_digest_type" field.
func OlderDigestTypeNotIn(vs ...string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldNotIn(FieldOlderDigestType, vs...))
}

// OlderDigestTypeGT applies the GT predicate on the "older_digest_type" field.
func OlderDigestTypeGT(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldGT(FieldOlderDigestType, v))
}

// OlderDigestTypeGTE applies the GTE predicate on the "older_digest_type" field.
func OlderDigestTypeGTE(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldGTE(FieldOlderDigestType, v))
}

// OlderDigestTypeLT applies the LT predicate on the "older_digest_type" field.
func OlderDigestTypeLT(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldLT(FieldOlderDigestType, v))
}

// OlderDigestTypeLTE applies the LTE predicate on the "older_digest_type" field.
func OlderDigestTypeLTE(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldLTE(FieldOlderDigestType, v))
}

// OlderDigestTypeContains applies the Contains predicate on the "older_digest_type" field.
func OlderDigestTypeContains(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldContains(FieldOlderDigestType, v))
}

// OlderDigestTypeHasPrefix applies the HasPrefix predicate on the "older_digest_type" field.
func OlderDigestTypeHasPrefix(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldHasPrefix(FieldOlderDigestType, v))
}

// OlderDigestTypeHasSuffix applies the HasSuffix predicate on the "older_digest_type" field.
func OlderDigestTypeHasSuffix(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldHasSuffix(FieldOlderDigestType, v))
}

// OlderDigestTypeEqualFold applies the EqualFold predicate on the "older_digest_type" field.
func OlderDigestTypeEqualFold(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldEqualFold(FieldOlderDigestType, v))
}

// OlderDigestTypeContainsFold applies the ContainsFold predicate on the "older_digest_type" field.
func OlderDigestTypeContainsFold(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldContainsFold(FieldOlderDigestType, v))
}

// NewerFileIDEQ applies the EQ predicate on the "newer_file_id" field.
func NewerFileIDEQ(v int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldEQ(FieldNewerFileID, v))
}

// NewerFileIDNEQ applies the NEQ predicate on the "newer_file_id" field.
func NewerFileIDNEQ(v int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldNEQ(FieldNewerFileID, v))
}

// NewerFileIDIn applies the In predicate on the "newer_file_id" field.
func NewerFileIDIn(vs ...int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldIn(FieldNewerFileID, vs...))
}

// NewerFileIDNotIn applies the NotIn predicate on the "newer_file_id" field.
func NewerFileIDNotIn(vs ...int) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldNotIn(FieldNewerFileID, vs...))
}

// NewerDigestTypeEQ applies the EQ predicate on the "newer_digest_type" field.
func NewerDigestTypeEQ(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldEQ(FieldNewerDigestType, v))
}

// NewerDigestTypeNEQ applies the NEQ predicate on the "newer_digest_type" field.
func NewerDigestTypeNEQ(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldNEQ(FieldNewerDigestType, v))
}

// NewerDigestTypeIn applies the In predicate on the "newer_digest_type" field.
func NewerDigestTypeIn(vs ...string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldIn(FieldNewerDigestType, vs...))
}

// NewerDigestTypeNotIn applies the NotIn predicate on the "newer_digest_type" field.
func NewerDigestTypeNotIn(vs ...string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldNotIn(FieldNewerDigestType, vs...))
}

// NewerDigestTypeGT applies the GT predicate on the "newer_digest_type" field.
func NewerDigestTypeGT(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldGT(FieldNewerDigestType, v))
}

// NewerDigestTypeGTE applies the GTE predicate on the "newer_digest_type" field.
func NewerDigestTypeGTE(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldGTE(FieldNewerDigestType, v))
}

// NewerDigestTypeLT applies the LT predicate on the "newer_digest_type" field.
func NewerDigestTypeLT(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldLT(FieldNewerDigestType, v))
}

// NewerDigestTypeLTE applies the LTE predicate on the "newer_digest_type" field.
func NewerDigestTypeLTE(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldLTE(FieldNewerDigestType, v))
}

// NewerDigestTypeContains applies the Contains predicate on the "newer_digest_type" field.
func NewerDigestTypeContains(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldContains(FieldNewerDigestType, v))
}

// NewerDigestTypeHasPrefix applies the HasPrefix predicate on the "newer_digest_type" field.
func NewerDigestTypeHasPrefix(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldHasPrefix(FieldNewerDigestType, v))
}

// NewerDigestTypeHasSuffix applies the HasSuffix predicate on the "newer_digest_type" field.
func NewerDigestTypeHasSuffix(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldHasSuffix(FieldNewerDigestType, v))
}

// NewerDigestTypeEqualFold applies the EqualFold predicate on the "newer_digest_type" field.
func NewerDigestTypeEqualFold(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldEqualFold(FieldNewerDigestType, v))
}

// NewerDigestTypeContainsFold applies the ContainsFold predicate on the "newer_digest_type" field.
func NewerDigestTypeContainsFold(v string) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldContainsFold(FieldNewerDigestType, v))
}

// SimilarityScoreEQ applies the EQ predicate on the "similarity_score" field.
func SimilarityScoreEQ(v float64) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldEQ(FieldSimilarityScore, v))
}

// SimilarityScoreNEQ applies the NEQ predicate on the "similarity_score" field.
func SimilarityScoreNEQ(v float64) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldNEQ(FieldSimilarityScore, v))
}

// SimilarityScoreIn applies the In predicate on the "similarity_score" field.
func SimilarityScoreIn(vs ...float64) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldIn(FieldSimilarityScore, vs...))
}

// SimilarityScoreNotIn applies the NotIn predicate on the "similarity_score" field.
func SimilarityScoreNotIn(vs ...float64) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldNotIn(FieldSimilarityScore, vs...))
}

// SimilarityScoreGT applies the GT predicate on the "similarity_score" field.
func SimilarityScoreGT(v float64) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldGT(FieldSimilarityScore, v))
}

// SimilarityScoreGTE applies the GTE predicate on the "similarity_score" field.
func SimilarityScoreGTE(v float64) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldGTE(FieldSimilarityScore, v))
}

// SimilarityScoreLT applies the LT predicate on the "similarity_score" field.
func SimilarityScoreLT(v float64) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldLT(FieldSimilarityScore, v))
}

// SimilarityScoreLTE applies the LTE predicate on the "similarity_score" field.
func SimilarityScoreLTE(v float64) predicate.FileComparison {
	return predicate.FileComparison(sql.FieldLTE(FieldSimilarityScore, v))
}

// HasOlderFile applies the HasEdge predicate on the "older_file" edge.
func HasOlderFile() predicate.FileComparison {
	return predicate.FileComparison(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OlderFileTable, OlderFileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOlderFileWith applies the HasEdge predicate on the "older_file" edge with a given conditions (other predicates).
func HasOlderFileWith(preds ...predicate.SubmittedFile) predicate.FileComparison {
	return predicate.FileComparison(func(s *sql.Selector) {
		step := newOlderFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasNewerFile applies the HasEdge predicate on the "newer_file" edge.
func HasNewerFile() predicate.FileComparison {
	return predicate.FileComparison(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, NewerFileTable, NewerFileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNewerFileWith applies the HasEdge predicate on the "newer_file" edge with a given conditions (other predicates).
func HasNewerFileWith(preds ...predicate.SubmittedFile) predicate.FileComparison {
	return predicate.FileComparison(func(s *sql.Selector) {
		step := newNewerFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FileComparison) predicate.FileComparison {
	return predicate.FileComparison(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FileComparison) predicate.FileComparison {
	return predicate.FileComparison(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FileComparison) predicate.FileComparison {
	return predicate.FileComparison(sql.NotPredicates(p))
}
