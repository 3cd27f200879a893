package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for a mirrored Moodle user.
// Users are server-global; they are never deleted by a courses refresh,
// only their last_seen timestamp is advanced.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Immutable().
			Comment("Server-scoped user id"),
		field.String("fullname"),
		field.String("email").
			Optional().
			Nillable(),
		field.Time("last_seen"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("participants", Participant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("submissions", Submission.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("submitted_files", SubmittedFile.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Annotations of the User.
func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "moodle_users"},
	}
}
