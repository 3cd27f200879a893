package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ParticipantRole links a participant to a role within their course.
// Links are full-sync replaced on every courses refresh.
type ParticipantRole struct {
	ent.Schema
}

// Fields of the ParticipantRole.
func (ParticipantRole) Fields() []ent.Field {
	return []ent.Field{
		field.Int("participant_id"),
		field.Int64("role_id"),
	}
}

// Edges of the ParticipantRole.
func (ParticipantRole) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("participant", Participant.Type).
			Ref("roles").
			Field("participant_id").
			Unique().
			Required(),
		edge.From("role", Role.Type).
			Ref("participant_roles").
			Field("role_id").
			Unique().
			Required(),
	}
}

// Indexes of the ParticipantRole.
func (ParticipantRole) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("participant_id", "role_id").
			Unique(),
	}
}

// Annotations of the ParticipantRole.
func (ParticipantRole) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "moodle_participant_roles"},
	}
}
