// Code generated by ent, DO NOT EDIT.

package deletionentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediareap/mediareap/internal/ent/generated/predicate"
	ulid "github.com/oklog/ulid/v2"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ULID) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ULID) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ULID) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ULID) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ULID) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ULID) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ULID) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ULID) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ULID) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UniqueKey applies equality check predicate on the "unique_key" field. It's identical to UniqueKeyEQ.
func UniqueKey(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldUniqueKey, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldTitle, v))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldPath, v))
}

// TmdbID applies equality check predicate on the "tmdb_id" field. It's identical to TmdbIDEQ.
func TmdbID(v int) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldTmdbID, v))
}

// Season applies equality check predicate on the "season" field. It's identical to SeasonEQ.
func Season(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldSeason, v))
}

// Episode applies equality check predicate on the "episode" field. It's identical to EpisodeEQ.
func Episode(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldEpisode, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldImageURL, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// UniqueKeyEQ applies the EQ predicate on the "unique_key" field.
func UniqueKeyEQ(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldUniqueKey, v))
}

// UniqueKeyNEQ applies the NEQ predicate on the "unique_key" field.
func UniqueKeyNEQ(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNEQ(FieldUniqueKey, v))
}

// UniqueKeyIn applies the In predicate on the "unique_key" field.
func UniqueKeyIn(vs ...string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldIn(FieldUniqueKey, vs...))
}

// UniqueKeyNotIn applies the NotIn predicate on the "unique_key" field.
func UniqueKeyNotIn(vs ...string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNotIn(FieldUniqueKey, vs...))
}

// UniqueKeyGT applies the GT predicate on the "unique_key" field.
func UniqueKeyGT(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGT(FieldUniqueKey, v))
}

// UniqueKeyGTE applies the GTE predicate on the "unique_key" field.
func UniqueKeyGTE(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGTE(FieldUniqueKey, v))
}

// UniqueKeyLT applies the LT predicate on the "unique_key" field.
func UniqueKeyLT(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLT(FieldUniqueKey, v))
}

// UniqueKeyLTE applies the LTE predicate on the "unique_key" field.
func UniqueKeyLTE(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLTE(FieldUniqueKey, v))
}

// UniqueKeyContains applies the Contains predicate on the "unique_key" field.
func UniqueKeyContains(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldContains(FieldUniqueKey, v))
}

// UniqueKeyHasPrefix applies the HasPrefix predicate on the "unique_key" field.
func UniqueKeyHasPrefix(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldHasPrefix(FieldUniqueKey, v))
}

// UniqueKeyHasSuffix applies the HasSuffix predicate on the "unique_key" field.
func UniqueKeyHasSuffix(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldHasSuffix(FieldUniqueKey, v))
}

// UniqueKeyEqualFold applies the EqualFold predicate on the "unique_key" field.
func UniqueKeyEqualFold(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEqualFold(FieldUniqueKey, v))
}

// UniqueKeyContainsFold applies the ContainsFold predicate on the "unique_key" field.
func UniqueKeyContainsFold(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldContainsFold(FieldUniqueKey, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldContainsFold(FieldTitle, v))
}

// MediaKindEQ applies the EQ predicate on the "media_kind" field.
func MediaKindEQ(v MediaKind) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldMediaKind, v))
}

// MediaKindNEQ applies the NEQ predicate on the "media_kind" field.
func MediaKindNEQ(v MediaKind) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNEQ(FieldMediaKind, v))
}

// MediaKindIn applies the In predicate on the "media_kind" field.
func MediaKindIn(vs ...MediaKind) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldIn(FieldMediaKind, vs...))
}

// MediaKindNotIn applies the NotIn predicate on the "media_kind" field.
func MediaKindNotIn(vs ...MediaKind) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNotIn(FieldMediaKind, vs...))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldHasSuffix(FieldPath, v))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldContainsFold(FieldPath, v))
}

// TmdbIDEQ applies the EQ predicate on the "tmdb_id" field.
func TmdbIDEQ(v int) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldTmdbID, v))
}

// TmdbIDNEQ applies the NEQ predicate on the "tmdb_id" field.
func TmdbIDNEQ(v int) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNEQ(FieldTmdbID, v))
}

// TmdbIDIn applies the In predicate on the "tmdb_id" field.
func TmdbIDIn(vs ...int) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldIn(FieldTmdbID, vs...))
}

// TmdbIDNotIn applies the NotIn predicate on the "tmdb_id" field.
func TmdbIDNotIn(vs ...int) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNotIn(FieldTmdbID, vs...))
}

// TmdbIDGT applies the GT predicate on the "tmdb_id" field.
func TmdbIDGT(v int) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGT(FieldTmdbID, v))
}

// TmdbIDGTE applies the GTE predicate on the "tmdb_id" field.
func TmdbIDGTE(v int) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGTE(FieldTmdbID, v))
}

// TmdbIDLT applies the LT predicate on the "tmdb_id" field.
func TmdbIDLT(v int) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLT(FieldTmdbID, v))
}

// TmdbIDLTE applies the LTE predicate on the "tmdb_id" field.
func TmdbIDLTE(v int) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLTE(FieldTmdbID, v))
}

// SeasonEQ applies the EQ predicate on the "season" field.
func SeasonEQ(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldSeason, v))
}

// SeasonNEQ applies the NEQ predicate on the "season" field.
func SeasonNEQ(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNEQ(FieldSeason, v))
}

// SeasonIn applies the In predicate on the "season" field.
func SeasonIn(vs ...string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldIn(FieldSeason, vs...))
}

// SeasonNotIn applies the NotIn predicate on the "season" field.
func SeasonNotIn(vs ...string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNotIn(FieldSeason, vs...))
}

// SeasonGT applies the GT predicate on the "season" field.
func SeasonGT(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGT(FieldSeason, v))
}

// SeasonGTE applies the GTE predicate on the "season" field.
func SeasonGTE(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGTE(FieldSeason, v))
}

// SeasonLT applies the LT predicate on the "season" field.
func SeasonLT(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLT(FieldSeason, v))
}

// SeasonLTE applies the LTE predicate on the "season" field.
func SeasonLTE(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLTE(FieldSeason, v))
}

// SeasonContains applies the Contains predicate on the "season" field.
func SeasonContains(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldContains(FieldSeason, v))
}

// SeasonHasPrefix applies the HasPrefix predicate on the "season" field.
func SeasonHasPrefix(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldHasPrefix(FieldSeason, v))
}

// SeasonHasSuffix applies the HasSuffix predicate on the "season" field.
func SeasonHasSuffix(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldHasSuffix(FieldSeason, v))
}

// SeasonEqualFold applies the EqualFold predicate on the "season" field.
func SeasonEqualFold(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEqualFold(FieldSeason, v))
}

// SeasonContainsFold applies the ContainsFold predicate on the "season" field.
func SeasonContainsFold(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldContainsFold(FieldSeason, v))
}

// EpisodeEQ applies the EQ predicate on the "episode" field.
func EpisodeEQ(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldEpisode, v))
}

// EpisodeNEQ applies the NEQ predicate on the "episode" field.
func EpisodeNEQ(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNEQ(FieldEpisode, v))
}

// EpisodeIn applies the In predicate on the "episode" field.
func EpisodeIn(vs ...string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldIn(FieldEpisode, vs...))
}

// EpisodeNotIn applies the NotIn predicate on the "episode" field.
func EpisodeNotIn(vs ...string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNotIn(FieldEpisode, vs...))
}

// EpisodeGT applies the GT predicate on the "episode" field.
func EpisodeGT(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGT(FieldEpisode, v))
}

// EpisodeGTE applies the GTE predicate on the "episode" field.
func EpisodeGTE(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGTE(FieldEpisode, v))
}

// EpisodeLT applies the LT predicate on the "episode" field.
func EpisodeLT(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLT(FieldEpisode, v))
}

// EpisodeLTE applies the LTE predicate on the "episode" field.
func EpisodeLTE(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLTE(FieldEpisode, v))
}

// EpisodeContains applies the Contains predicate on the "episode" field.
func EpisodeContains(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldContains(FieldEpisode, v))
}

// EpisodeHasPrefix applies the HasPrefix predicate on the "episode" field.
func EpisodeHasPrefix(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldHasPrefix(FieldEpisode, v))
}

// EpisodeHasSuffix applies the HasSuffix predicate on the "episode" field.
func EpisodeHasSuffix(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldHasSuffix(FieldEpisode, v))
}

// EpisodeEqualFold applies the EqualFold predicate on the "episode" field.
func EpisodeEqualFold(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEqualFold(FieldEpisode, v))
}

// EpisodeContainsFold applies the ContainsFold predicate on the "episode" field.
func EpisodeContainsFold(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldContainsFold(FieldEpisode, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldContainsFold(FieldImageURL, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.FieldLTE(FieldDeletedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeletionEntry) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeletionEntry) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeletionEntry) predicate.DeletionEntry {
	return predicate.DeletionEntry(sql.NotPredicates(p))
}
