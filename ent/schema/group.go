package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Group holds the schema definition for a Moodle group.
// A group belongs to exactly one course; groups of a course that
// disappear from a refresh snapshot are deleted, cascading through
// participant-group links.
type Group struct {
	ent.Schema
}

// Fields of the Group.
func (Group) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Immutable(),
		field.Int64("course_id"),
		field.String("name"),
	}
}

// Edges of the Group.
func (Group) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course", Course.Type).
			Ref("groups").
			Field("course_id").
			Unique().
			Required(),
		edge.To("participant_groups", ParticipantGroup.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Annotations of the Group.
func (Group) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "moodle_groups"},
	}
}
