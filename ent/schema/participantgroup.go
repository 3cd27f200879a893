package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ParticipantGroup links a participant to a group within their course.
// Links are full-sync replaced on every courses refresh.
type ParticipantGroup struct {
	ent.Schema
}

// Fields of the ParticipantGroup.
func (ParticipantGroup) Fields() []ent.Field {
	return []ent.Field{
		field.Int("participant_id"),
		field.Int64("group_id"),
	}
}

// Edges of the ParticipantGroup.
func (ParticipantGroup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("participant", Participant.Type).
			Ref("group_memberships").
			Field("participant_id").
			Unique().
			Required(),
		edge.From("group", Group.Type).
			Ref("participant_groups").
			Field("group_id").
			Unique().
			Required(),
	}
}

// Indexes of the ParticipantGroup.
func (ParticipantGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("participant_id", "group_id").
			Unique(),
	}
}

// Annotations of the ParticipantGroup.
func (ParticipantGroup) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "moodle_participant_groups"},
	}
}
