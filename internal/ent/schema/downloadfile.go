package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/mediareap/mediareap/internal/ent/mixins"
)

// DownloadFile holds the schema definition for the DownloadFile entity.
// One row per file a download client associates with a torrent. The ULID id
// doubles as registration order for the collection cascade: a sibling torrent
// registered later has strictly greater file ids.
type DownloadFile struct {
	ent.Schema
}

// Mixin of the DownloadFile.
func (DownloadFile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.IDMixin{},
		mixins.TimestampMixin{},
	}
}

// Fields of the DownloadFile.
func (DownloadFile) Fields() []ent.Field {
	return []ent.Field{
		field.String("download_hash"),
		field.String("downloader").
			Default(""),
		field.String("file_path").
			Comment("Path relative to the torrent save directory"),
		field.String("full_path").
			Comment("Absolute source path; join key for siblings sharing a directory"),
		field.Int("state").
			Default(0).
			Comment("Nonzero marks the file as kept by the user; kept files block torrent removal"),
	}
}

// Indexes of the DownloadFile.
func (DownloadFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("download_hash"),
		index.Fields("full_path"),
	}
}

// Annotations of the DownloadFile.
func (DownloadFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "download_files"},
	}
}
