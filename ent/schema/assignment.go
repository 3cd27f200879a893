package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assignment holds the schema definition for a mirrored Moodle
// assignment. When all three timestamps are present the server
// guarantees opening <= closing <= cutoff.
type Assignment struct {
	ent.Schema
}

// Fields of the Assignment.
func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Immutable(),
		field.Int64("course_id"),
		field.String("name"),
		field.Time("opening").
			Optional().
			Nillable().
			Comment("allowsubmissionsfromdate on the server"),
		field.Time("closing").
			Optional().
			Nillable().
			Comment("duedate on the server"),
		field.Time("cutoff").
			Optional().
			Nillable().
			Comment("cutoffdate on the server"),
	}
}

// Edges of the Assignment.
func (Assignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course", Course.Type).
			Ref("assignments").
			Field("course_id").
			Unique().
			Required(),
		edge.To("submissions", Submission.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("submitted_files", SubmittedFile.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Assignment.
func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("opening"),
		index.Fields("closing"),
		index.Fields("cutoff"),
	}
}

// Annotations of the Assignment.
func (Assignment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "moodle_assignments"},
	}
}
