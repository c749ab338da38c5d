package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/mediareap/mediareap/internal/ent/mixins"
)

// ScanMark holds the schema definition for the ScanMark entity.
// Per media server, the timestamp of the newest log line already processed
// by the log scanner. Lines at or before the mark are skipped on the next pass.
type ScanMark struct {
	ent.Schema
}

// Mixin of the ScanMark.
func (ScanMark) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.IDMixin{},
		mixins.TimestampMixin{},
	}
}

// Fields of the ScanMark.
func (ScanMark) Fields() []ent.Field {
	return []ent.Field{
		field.String("server"),
		field.Time("last_seen"),
	}
}

// Indexes of the ScanMark.
func (ScanMark) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("server").
			Unique(),
	}
}

// Annotations of the ScanMark.
func (ScanMark) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scan_marks"},
	}
}
