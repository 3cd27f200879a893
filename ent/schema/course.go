package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Course holds the schema definition for a mirrored Moodle course.
// The id is assigned by the remote server and is authoritative there;
// local rows are upserted on every courses refresh.
type Course struct {
	ent.Schema
}

// Fields of the Course.
func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Immutable().
			Comment("Server-scoped course id"),
		field.String("shortname"),
		field.String("fullname"),
		field.Time("starts").
			Optional().
			Nillable().
			Comment("Course open timestamp; null means always open"),
		field.Time("ends").
			Optional().
			Nillable().
			Comment("Course close timestamp; null means never closes"),
		field.Time("last_seen").
			Comment("When the last courses refresh reported this course"),
	}
}

// Edges of the Course.
func (Course) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("groups", Group.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("participants", Participant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("assignments", Assignment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Course.
func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("starts", "ends"),
	}
}

// Annotations of the Course.
func (Course) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "moodle_courses"},
	}
}
