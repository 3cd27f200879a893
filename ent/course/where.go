// Code generated by ent, DO NOT EDIT.

package course

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/moodle-tools/simwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldID, id))
}

// Shortname applies equality check predicate on the "shortname" field. It's identical to ShortnameEQ.
func Shortname(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldShortname, v))
}

// Fullname applies equality check predicate on the "fullname" field. It's identical to FullnameEQ.
func Fullname(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldFullname, v))
}

// Starts applies equality check predicate on the "starts" field. It's identical to StartsEQ.
func Starts(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldStarts, v))
}

// Ends applies equality check predicate on the "ends" field. It's identical to EndsEQ.
func Ends(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldEnds, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldLastSeen, v))
}

// ShortnameEQ applies the EQ predicate on the "shortname" field.
func ShortnameEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldShortname, v))
}

// ShortnameNEQ applies the NEQ predicate on the "shortname" field.
func ShortnameNEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldShortname, v))
}

// ShortnameIn applies the In predicate on the "shortname" field.
func ShortnameIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldShortname, vs...))
}

// ShortnameNotIn applies the NotIn predicate on the "shortname" field.
func ShortnameNotIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldShortname, vs...))
}

// ShortnameGT applies the GT predicate on the "shortname" field.
func ShortnameGT(v string) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldShortname, v))
}

// ShortnameGTE applies the GTE predicate on the "shortname" field.
func ShortnameGTE(v string) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldShortname, v))
}

// ShortnameLT applies the LT predicate on the "shortname" field.
func ShortnameLT(v string) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldShortname, v))
}

// ShortnameLTE applies the LTE predicate on the "shortname" field.
func ShortnameLTE(v string) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldShortname, v))
}

// ShortnameContains applies the Contains predicate on the "shortname" field.
func ShortnameContains(v string) predicate.Course {
	return predicate.Course(sql.FieldContains(FieldShortname, v))
}

// ShortnameHasPrefix applies the HasPrefix predicate on the "shortname" field.
func ShortnameHasPrefix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasPrefix(FieldShortname, v))
}

// ShortnameHasSuffix applies the HasSuffix predicate on the "shortname" field.
func ShortnameHasSuffix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasSuffix(FieldShortname, v))
}

// ShortnameEqualFold applies the EqualFold predicate on the "shortname" field.
func ShortnameEqualFold(v string) predicate.Course {
	return predicate.Course(sql.FieldEqualFold(FieldShortname, v))
}

// ShortnameContainsFold applies the ContainsFold predicate on the "shortname" field.
func ShortnameContainsFold(v string) predicate.Course {
	return predicate.Course(sql.FieldContainsFold(FieldShortname, v))
}

// FullnameEQ applies the EQ predicate on the "fullname" field.
func FullnameEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldFullname, v))
}

// FullnameNEQ applies the NEQ predicate on the "fullname" field.
func FullnameNEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldFullname, v))
}

// FullnameIn applies the In predicate on the "fullname" field.
func FullnameIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldFullname, vs...))
}

// FullnameNotIn applies the NotIn predicate on the "fullname" field.
func FullnameNotIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldFullname, vs...))
}

// FullnameGT applies the GT predicate on the "fullname" field.
func FullnameGT(v string) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldFullname, v))
}

// FullnameGTE applies the GTE predicate on the "fullname" field.
func FullnameGTE(v string) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldFullname, v))
}

// FullnameLT applies the LT predicate on the "fullname" field.
func FullnameLT(v string) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldFullname, v))
}

// FullnameLTE applies the LTE predicate on the "fullname" field.
func FullnameLTE(v string) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldFullname, v))
}

// FullnameContains applies the Contains predicate on the "fullname" field.
func FullnameContains(v string) predicate.Course {
	return predicate.Course(sql.FieldContains(FieldFullname, v))
}

// FullnameHasPrefix applies the HasPrefix predicate on the "fullname" field.
func FullnameHasPrefix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasPrefix(FieldFullname, v))
}

// FullnameHasSuffix applies the HasSuffix predicate on the "fullname" field.
func FullnameHasSuffix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasSuffix(FieldFullname, v))
}

// FullnameEqualFold applies the EqualFold predicate on the "fullname" field.
func FullnameEqualFold(v string) predicate.Course {
	return predicate.Course(sql.FieldEqualFold(FieldFullname, v))
}

// FullnameContainsFold applies the ContainsFold predicate on the "fullname" field.
func FullnameContainsFold(v string) predicate.Course {
	return predicate.Course(sql.FieldContainsFold(FieldFullname, v))
}

// StartsEQ applies the EQ predicate on the "starts" field.
func StartsEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldStarts, v))
}

// StartsNEQ applies the NEQ predicate on the "starts" field.
func StartsNEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldStarts, v))
}

// StartsIn applies the In predicate on the "starts" field.
func StartsIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldStarts, vs...))
}

// StartsNotIn applies the NotIn predicate on the "starts" field.
func StartsNotIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldStarts, vs...))
}

// StartsGT applies the GT predicate on the "starts" field.
func StartsGT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldStarts, v))
}

// StartsGTE applies the GTE predicate on the "starts" field.
func StartsGTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldStarts, v))
}

// StartsLT applies the LT predicate on the "starts" field.
func StartsLT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldStarts, v))
}

// StartsLTE applies the LTE predicate on the "starts" field.
func StartsLTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldStarts, v))
}

// StartsIsNil applies the IsNil predicate on the "starts" field.
func StartsIsNil() predicate.Course {
	return predicate.Course(sql.FieldIsNull(FieldStarts))
}

// StartsNotNil applies the NotNil predicate on the "starts" field.
func StartsNotNil() predicate.Course {
	return predicate.Course(sql.FieldNotNull(FieldStarts))
}

// EndsEQ applies the EQ predicate on the "ends" field.
func EndsEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldEnds, v))
}

// EndsNEQ applies the NEQ predicate on the "ends" field.
func EndsNEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldEnds, v))
}

// EndsIn applies the In predicate on the "ends" field.
func EndsIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldEnds, vs...))
}

// EndsNotIn applies the NotIn predicate on the "ends" field.
func EndsNotIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldEnds, vs...))
}

// EndsGT applies the GT predicate on the "ends" field.
func EndsGT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldEnds, v))
}

// EndsGTE applies the GTE predicate on the "ends" field.
func EndsGTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldEnds, v))
}

// EndsLT applies the LT predicate on the "ends" field.
func EndsLT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldEnds, v))
}

// EndsLTE applies the LTE predicate on the "ends" field.
func EndsLTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldEnds, v))
}

// EndsIsNil applies the IsNil predicate on the "ends" field.
func EndsIsNil() predicate.Course {
	return predicate.Course(sql.FieldIsNull(FieldEnds))
}

// EndsNotNil applies the NotNil predicate on the "ends" field.
func EndsNotNil() predicate.Course {
	return predicate.Course(sql.FieldNotNull(FieldEnds))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldLastSeen, v))
}

// HasGroups applies the HasEdge predicate on the "groups" edge.
func HasGroups() predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GroupsTable, GroupsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupsWith applies the HasEdge predicate on the "groups" edge with a given conditions (other predicates).
func HasGroupsWith(preds ...predicate.Group) predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := newGroupsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParticipants applies the HasEdge predicate on the "participants" edge.
func HasParticipants() predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantsWith applies the HasEdge predicate on the "participants" edge with a given conditions (other predicates).
func HasParticipantsWith(preds ...predicate.Participant) predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := newParticipantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignments applies the HasEdge predicate on the "assignments" edge.
func HasAssignments() predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignmentsWith applies the HasEdge predicate on the "assignments" edge with a given conditions (other predicates).
func HasAssignmentsWith(preds ...predicate.Assignment) predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := newAssignmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Course) predicate.Course {
	return predicate.Course(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Course) predicate.Course {
	return predicate.Course(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Course) predicate.Course {
	return predicate.Course(sql.NotPredicates(p))
}
