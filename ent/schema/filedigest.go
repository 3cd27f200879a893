package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FileDigest holds the schema definition for a content fingerprint of a
// submitted file. Identity is (file_id, digest_type). content carries
// gzip-compressed digest bytes; a null content records "extraction ran
// and produced nothing" so the file is not retried forever.
// assignment_id, submission_id, user_id and uploaded are denormalized
// from the file so the pairing query is a self-join.
type FileDigest struct {
	ent.Schema
}

// Fields of the FileDigest.
func (FileDigest) Fields() []ent.Field {
	return []ent.Field{
		field.Int("file_id"),
		field.String("digest_type"),
		field.Bytes("content").
			Optional().
			Nillable().
			Comment("gzip level-9 compressed digest bytes, null if extraction produced nothing"),
		field.Time("created"),
		field.Int64("assignment_id"),
		field.Int64("submission_id"),
		field.Int64("user_id"),
		field.Time("uploaded"),
	}
}

// Edges of the FileDigest.
func (FileDigest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", SubmittedFile.Type).
			Ref("digests").
			Field("file_id").
			Unique().
			Required(),
	}
}

// Indexes of the FileDigest.
func (FileDigest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id", "digest_type").
			Unique(),
		index.Fields("assignment_id", "digest_type"),
	}
}

// Annotations of the FileDigest.
func (FileDigest) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "file_digests"},
	}
}
