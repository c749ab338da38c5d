package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/mediareap/mediareap/internal/ent/mixins"
)

// SeedLink holds the schema definition for the SeedLink entity.
// A collaborator's record of torrents cross-seeded from a root torrent,
// keyed by the root hash. Links is a JSON array of {downloader, hash} pairs.
type SeedLink struct {
	ent.Schema
}

// Mixin of the SeedLink.
func (SeedLink) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.IDMixin{},
		mixins.TimestampMixin{},
	}
}

// Fields of the SeedLink.
func (SeedLink) Fields() []ent.Field {
	return []ent.Field{
		field.String("collaborator").
			Default("").
			Comment("Name of the plugin that recorded the links"),
		field.String("root_hash"),
		field.String("links").
			Default("[]").
			Comment("JSON-encoded []apitypes.TorrentLink"),
	}
}

// Indexes of the SeedLink.
func (SeedLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("collaborator", "root_hash").
			Unique(),
	}
}

// Annotations of the SeedLink.
func (SeedLink) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "seed_links"},
	}
}
