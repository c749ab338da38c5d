// Package schema defines the ent schemas for the ledger database.
package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/mediareap/mediareap/internal/ent/mixins"
)

// TransferRecord holds the schema definition for the TransferRecord entity.
// One row per media file moved into the library by the transfer pipeline;
// dest_path is the join key against canonicalized deletion events.
type TransferRecord struct {
	ent.Schema
}

// Mixin of the TransferRecord.
func (TransferRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.IDMixin{},
		mixins.TimestampMixin{},
	}
}

// Fields of the TransferRecord.
func (TransferRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("media_kind").
			Values("movie", "series").
			Default("movie"),
		field.String("title"),
		field.String("dest_path").
			Comment("Canonical library path of the transferred file"),
		field.String("source_path").
			Default("").
			Comment("Path the file was transferred from (seedbox side)"),
		field.Int("tmdb_id").
			Default(0),
		field.String("season").
			Default("").
			Comment("Zero-padded season token, e.g. S01"),
		field.String("episode").
			Default("").
			Comment("Episode token, e.g. E3"),
		field.String("download_hash").
			Default(""),
		field.String("downloader").
			Default("").
			Comment("Name of the download client the hash belongs to"),
		field.Time("transferred_at"),
		field.String("image_url").
			Default("").
			Comment("Poster used in notifications"),
	}
}

// Indexes of the TransferRecord.
func (TransferRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dest_path"),
		index.Fields("tmdb_id", "media_kind"),
		index.Fields("download_hash"),
	}
}

// Annotations of the TransferRecord.
func (TransferRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "transfer_records"},
	}
}
