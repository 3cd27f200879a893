package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubmittedFile holds the schema definition for a file attached to a
// submission. Identity is (submission_id, filename); the surrogate id
// is what digests and comparisons reference. assignment_id and user_id
// are denormalized from the submission to keep downstream queries
// one-hop.
type SubmittedFile struct {
	ent.Schema
}

// Fields of the SubmittedFile.
func (SubmittedFile) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("submission_id"),
		field.Int64("assignment_id"),
		field.Int64("user_id"),
		field.String("filename"),
		field.Int64("filesize"),
		field.String("mimetype"),
		field.String("url"),
		field.Time("uploaded"),
	}
}

// Edges of the SubmittedFile.
func (SubmittedFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("submission", Submission.Type).
			Ref("files").
			Field("submission_id").
			Unique().
			Required(),
		edge.From("assignment", Assignment.Type).
			Ref("submitted_files").
			Field("assignment_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("submitted_files").
			Field("user_id").
			Unique().
			Required(),
		edge.To("digests", FileDigest.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("warnings", FileWarning.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("older_comparisons", FileComparison.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("newer_comparisons", FileComparison.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SubmittedFile.
func (SubmittedFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("submission_id", "filename").
			Unique(),
		index.Fields("uploaded"),
		index.Fields("filesize"),
	}
}

// Annotations of the SubmittedFile.
func (SubmittedFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "moodle_submitted_files"},
	}
}
