package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FileWarning holds the schema definition for a warning produced while
// extracting digests from a file. Identity is (file_id, warning_type).
type FileWarning struct {
	ent.Schema
}

// Fields of the FileWarning.
func (FileWarning) Fields() []ent.Field {
	return []ent.Field{
		field.Int("file_id"),
		field.String("warning_type"),
		field.Text("message"),
	}
}

// Edges of the FileWarning.
func (FileWarning) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", SubmittedFile.Type).
			Ref("warnings").
			Field("file_id").
			Unique().
			Required(),
	}
}

// Indexes of the FileWarning.
func (FileWarning) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id", "warning_type").
			Unique(),
	}
}

// Annotations of the FileWarning.
func (FileWarning) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "file_warnings"},
	}
}
