package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission holds the schema definition for a mirrored submission.
// Submissions are only ever added or updated locally; they disappear
// only through the assignment cascade.
type Submission struct {
	ent.Schema
}

// Fields of the Submission.
func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Immutable(),
		field.Int64("assignment_id"),
		field.Int64("user_id"),
		field.String("status").
			Optional().
			Nillable(),
		field.Time("updated").
			Comment("Server-side last modification time"),
	}
}

// Edges of the Submission.
func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("assignment", Assignment.Type).
			Ref("submissions").
			Field("assignment_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("submissions").
			Field("user_id").
			Unique().
			Required(),
		edge.To("files", SubmittedFile.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Submission.
func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assignment_id"),
		index.Fields("updated"),
	}
}

// Annotations of the Submission.
func (Submission) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "moodle_submissions"},
	}
}
