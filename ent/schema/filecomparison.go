package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FileComparison holds the schema definition for a similarity score
// between two digests of the same type. Identity is the four-tuple
// (older_file_id, older_digest_type, newer_file_id, newer_digest_type).
// The pairing query guarantees older.uploaded < newer.uploaded, same
// assignment, different submissions.
type FileComparison struct {
	ent.Schema
}

// Fields of the FileComparison.
func (FileComparison) Fields() []ent.Field {
	return []ent.Field{
		field.Int("older_file_id"),
		field.String("older_digest_type"),
		field.Int("newer_file_id"),
		field.String("newer_digest_type"),
		field.Float("similarity_score").
			Min(0).
			Max(1),
	}
}

// Edges of the FileComparison.
func (FileComparison) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("older_file", SubmittedFile.Type).
			Ref("older_comparisons").
			Field("older_file_id").
			Unique().
			Required(),
		edge.From("newer_file", SubmittedFile.Type).
			Ref("newer_comparisons").
			Field("newer_file_id").
			Unique().
			Required(),
	}
}

// Indexes of the FileComparison.
func (FileComparison) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("older_file_id", "older_digest_type", "newer_file_id", "newer_digest_type").
			Unique(),
		index.Fields("newer_file_id", "similarity_score"),
		index.Fields("older_file_id", "similarity_score"),
	}
}

// Annotations of the FileComparison.
func (FileComparison) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "file_comparisons"},
	}
}
