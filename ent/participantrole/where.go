// Code generated by ent, DO NOT EDIT.

package participantrole

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/moodle-tools/simwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldLTE(FieldID, id))
}

// ParticipantID applies equality check predicate on the "participant_id" field. It's identical to ParticipantIDEQ.
func ParticipantID(v int) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldEQ(FieldParticipantID, v))
}

// RoleID applies equality check predicate on the "role_id" field. It's identical to RoleIDEQ.
func RoleID(v int64) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldEQ(FieldRoleID, v))
}

// ParticipantIDEQ applies the EQ predicate on the "participant_id" field.
func ParticipantIDEQ(v int) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldEQ(FieldParticipantID, v))
}

// ParticipantIDNEQ applies the NEQ predicate on the "participant_id" field.
func ParticipantIDNEQ(v int) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldNEQ(FieldParticipantID, v))
}

// ParticipantIDIn applies the In predicate on the "participant_id" field.
func ParticipantIDIn(vs ...int) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldIn(FieldParticipantID, vs...))
}

// ParticipantIDNotIn applies the NotIn predicate on the "participant_id" field.
func ParticipantIDNotIn(vs ...int) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldNotIn(FieldParticipantID, vs...))
}

// RoleIDEQ applies the EQ predicate on the "role_id" field.
func RoleIDEQ(v int64) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldEQ(FieldRoleID, v))
}

// RoleIDNEQ applies the NEQ predicate on the "role_id" field.
func RoleIDNEQ(v int64) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldNEQ(FieldRoleID, v))
}

// RoleIDIn applies the In predicate on the "role_id" field.
func RoleIDIn(vs ...int64) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldIn(FieldRoleID, vs...))
}

// RoleIDNotIn applies the NotIn predicate on the "role_id" field.
func RoleIDNotIn(vs ...int64) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.FieldNotIn(FieldRoleID, vs...))
}

// HasParticipant applies the HasEdge predicate on the "participant" edge.
func HasParticipant() predicate.ParticipantRole {
	return predicate.ParticipantRole(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParticipantTable, ParticipantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantWith applies the HasEdge predicate on the "participant" edge with a given conditions (other predicates).
func HasParticipantWith(preds ...predicate.Participant) predicate.ParticipantRole {
	return predicate.ParticipantRole(func(s *sql.Selector) {
		step := newParticipantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRole applies the HasEdge predicate on the "role" edge.
func HasRole() predicate.ParticipantRole {
	return predicate.ParticipantRole(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoleTable, RoleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoleWith applies the HasEdge predicate on the "role" edge with a given conditions (other predicates).
func HasRoleWith(preds ...predicate.Role) predicate.ParticipantRole {
	return predicate.ParticipantRole(func(s *sql.Selector) {
		step := newRoleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParticipantRole) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParticipantRole) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParticipantRole) predicate.ParticipantRole {
	return predicate.ParticipantRole(sql.NotPredicates(p))
}
