package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/mediareap/mediareap/internal/ent/mixins"
)

// DeletionEntry holds the schema definition for the DeletionEntry entity.
// The append-only deletion log; one entry per reconciled deletion. The
// unique key (title:tmdbid:timestamp) lets users remove entries via the API.
type DeletionEntry struct {
	ent.Schema
}

// Mixin of the DeletionEntry.
func (DeletionEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.IDMixin{},
		mixins.TimestampMixin{},
	}
}

// Fields of the DeletionEntry.
func (DeletionEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("unique_key"),
		field.String("title"),
		field.Enum("media_kind").
			Values("movie", "series").
			Default("movie"),
		field.String("path").
			Default(""),
		field.Int("tmdb_id").
			Default(0),
		field.String("season").
			Default(""),
		field.String("episode").
			Default(""),
		field.String("image_url").
			Default(""),
		field.Time("deleted_at"),
	}
}

// Indexes of the DeletionEntry.
func (DeletionEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unique_key").
			Unique(),
		index.Fields("deleted_at"),
	}
}

// Annotations of the DeletionEntry.
func (DeletionEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "deletion_entries"},
	}
}
