// Code generated by ent, DO NOT EDIT.

package filewarning

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/moodle-tools/simwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v int) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldEQ(FieldFileID, v))
}

// WarningType applies equality check predicate on the "warning_type" field. It's identical to WarningTypeEQ.
func WarningType(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldEQ(FieldWarningType, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldEQ(FieldMessage, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v int) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v int) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...int) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...int) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldNotIn(FieldFileID, vs...))
}

// WarningTypeEQ applies the EQ predicate on the "warning_type" field.
func WarningTypeEQ(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldEQ(FieldWarningType, v))
}

// WarningTypeNEQ applies the NEQ predicate on the "warning_type" field.
func WarningTypeNEQ(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldNEQ(FieldWarningType, v))
}

// WarningTypeIn applies the In predicate on the "warning_type" field.
func WarningTypeIn(vs ...string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldIn(FieldWarningType, vs...))
}

// WarningTypeNotIn applies the NotIn predicate on the "warning_type" field.
func WarningTypeNotIn(vs ...string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldNotIn(FieldWarningType, vs...))
}

// WarningTypeGT applies the GT predicate on the "warning_type" field.
func WarningTypeGT(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldGT(FieldWarningType, v))
}

// WarningTypeGTE applies the GTE predicate on the "warning_type" field.
func WarningTypeGTE(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldGTE(FieldWarningType, v))
}

// WarningTypeLT applies the LT predicate on the "warning_type" field.
func WarningTypeLT(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldLT(FieldWarningType, v))
}

// WarningTypeLTE applies the LTE predicate on the "warning_type" field.
func WarningTypeLTE(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldLTE(FieldWarningType, v))
}

// WarningTypeContains applies the Contains predicate on the "warning_type" field.
func WarningTypeContains(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldContains(FieldWarningType, v))
}

// WarningTypeHasPrefix applies the HasPrefix predicate on the "warning_type" field.
func WarningTypeHasPrefix(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldHasPrefix(FieldWarningType, v))
}

// WarningTypeHasSuffix applies the HasSuffix predicate on the "warning_type" field.
func WarningTypeHasSuffix(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldHasSuffix(FieldWarningType, v))
}

// WarningTypeEqualFold applies the EqualFold predicate on the "warning_type" field.
func WarningTypeEqualFold(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldEqualFold(FieldWarningType, v))
}

// WarningTypeContainsFold applies the ContainsFold predicate on the "warning_type" field.
func WarningTypeContainsFold(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldContainsFold(FieldWarningType, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.FileWarning {
	return predicate.FileWarning(sql.FieldContainsFold(FieldMessage, v))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.FileWarning {
	return predicate.FileWarning(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.SubmittedFile) predicate.FileWarning {
	return predicate.FileWarning(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FileWarning) predicate.FileWarning {
	return predicate.FileWarning(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FileWarning) predicate.FileWarning {
	return predicate.FileWarning(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FileWarning) predicate.FileWarning {
	return predicate.FileWarning(sql.NotPredicates(p))
}
