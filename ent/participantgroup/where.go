// Code generated by ent, DO NOT EDIT.

package participantgroup

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/moodle-tools/simwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldLTE(FieldID, id))
}

// ParticipantID applies equality check predicate on the "participant_id" field. It's identical to ParticipantIDEQ.
func ParticipantID(v int) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldEQ(FieldParticipantID, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v int64) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldEQ(FieldGroupID, v))
}

// ParticipantIDEQ applies the EQ predicate on the "participant_id" field.
func ParticipantIDEQ(v int) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldEQ(FieldParticipantID, v))
}

// ParticipantIDNEQ applies the NEQ predicate on the "participant_id" field.
func ParticipantIDNEQ(v int) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldNEQ(FieldParticipantID, v))
}

// ParticipantIDIn applies the In predicate on the "participant_id" field.
func ParticipantIDIn(vs ...int) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldIn(FieldParticipantID, vs...))
}

// ParticipantIDNotIn applies the NotIn predicate on the "participant_id" field.
func ParticipantIDNotIn(vs ...int) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldNotIn(FieldParticipantID, vs...))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v int64) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v int64) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...int64) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...int64) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.FieldNotIn(FieldGroupID, vs...))
}

// HasParticipant applies the HasEdge predicate on the "participant" edge.
func HasParticipant() predicate.ParticipantGroup {
	return predicate.ParticipantGroup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParticipantTable, ParticipantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantWith applies the HasEdge predicate on the "participant" edge with a given conditions (other predicates).
func HasParticipantWith(preds ...predicate.Participant) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(func(s *sql.Selector) {
		step := newParticipantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGroup applies the HasEdge predicate on the "group" edge.
func HasGroup() predicate.ParticipantGroup {
	return predicate.ParticipantGroup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupWith applies the HasEdge predicate on the "group" edge with a given conditions (other predicates).
func HasGroupWith(preds ...predicate.Group) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(func(s *sql.Selector) {
		step := newGroupStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParticipantGroup) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParticipantGroup) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParticipantGroup) predicate.ParticipantGroup {
	return predicate.ParticipantGroup(sql.NotPredicates(p))
}
