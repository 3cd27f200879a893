package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Participant links a user to a course. The natural key is
// (course_id, user_id); the surrogate id exists only because every
// ent entity carries one.
type Participant struct {
	ent.Schema
}

// Fields of the Participant.
func (Participant) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("course_id"),
		field.Int64("user_id"),
	}
}

// Edges of the Participant.
func (Participant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course", Course.Type).
			Ref("participants").
			Field("course_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("participants").
			Field("user_id").
			Unique().
			Required(),
		edge.To("roles", ParticipantRole.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("group_memberships", ParticipantGroup.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Participant.
func (Participant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "user_id").
			Unique(),
	}
}

// Annotations of the Participant.
func (Participant) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "moodle_participants"},
	}
}
