// Code generated by ent, DO NOT EDIT.

package transferrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediareap/mediareap/internal/ent/generated/predicate"
	ulid "github.com/oklog/ulid/v2"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ULID) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ULID) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ULID) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ULID) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ULID) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ULID) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ULID) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ULID) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ULID) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldTitle, v))
}

// DestPath applies equality check predicate on the "dest_path" field. It's identical to DestPathEQ.
func DestPath(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldDestPath, v))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldSourcePath, v))
}

// TmdbID applies equality check predicate on the "tmdb_id" field. It's identical to TmdbIDEQ.
func TmdbID(v int) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldTmdbID, v))
}

// Season applies equality check predicate on the "season" field. It's identical to SeasonEQ.
func Season(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldSeason, v))
}

// Episode applies equality check predicate on the "episode" field. It's identical to EpisodeEQ.
func Episode(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldEpisode, v))
}

// DownloadHash applies equality check predicate on the "download_hash" field. It's identical to DownloadHashEQ.
func DownloadHash(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldDownloadHash, v))
}

// Downloader applies equality check predicate on the "downloader" field. It's identical to DownloaderEQ.
func Downloader(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldDownloader, v))
}

// TransferredAt applies equality check predicate on the "transferred_at" field. It's identical to TransferredAtEQ.
func TransferredAt(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldTransferredAt, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldImageURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// MediaKindEQ applies the EQ predicate on the "media_kind" field.
func MediaKindEQ(v MediaKind) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldMediaKind, v))
}

// MediaKindNEQ applies the NEQ predicate on the "media_kind" field.
func MediaKindNEQ(v MediaKind) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNEQ(FieldMediaKind, v))
}

// MediaKindIn applies the In predicate on the "media_kind" field.
func MediaKindIn(vs ...MediaKind) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldIn(FieldMediaKind, vs...))
}

// MediaKindNotIn applies the NotIn predicate on the "media_kind" field.
func MediaKindNotIn(vs ...MediaKind) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNotIn(FieldMediaKind, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContainsFold(FieldTitle, v))
}

// DestPathEQ applies the EQ predicate on the "dest_path" field.
func DestPathEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldDestPath, v))
}

// DestPathNEQ applies the NEQ predicate on the "dest_path" field.
func DestPathNEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNEQ(FieldDestPath, v))
}

// DestPathIn applies the In predicate on the "dest_path" field.
func DestPathIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldIn(FieldDestPath, vs...))
}

// DestPathNotIn applies the NotIn predicate on the "dest_path" field.
func DestPathNotIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNotIn(FieldDestPath, vs...))
}

// DestPathGT applies the GT predicate on the "dest_path" field.
func DestPathGT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGT(FieldDestPath, v))
}

// DestPathGTE applies the GTE predicate on the "dest_path" field.
func DestPathGTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGTE(FieldDestPath, v))
}

// DestPathLT applies the LT predicate on the "dest_path" field.
func DestPathLT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLT(FieldDestPath, v))
}

// DestPathLTE applies the LTE predicate on the "dest_path" field.
func DestPathLTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLTE(FieldDestPath, v))
}

// DestPathContains applies the Contains predicate on the "dest_path" field.
func DestPathContains(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContains(FieldDestPath, v))
}

// DestPathHasPrefix applies the HasPrefix predicate on the "dest_path" field.
func DestPathHasPrefix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasPrefix(FieldDestPath, v))
}

// DestPathHasSuffix applies the HasSuffix predicate on the "dest_path" field.
func DestPathHasSuffix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasSuffix(FieldDestPath, v))
}

// DestPathEqualFold applies the EqualFold predicate on the "dest_path" field.
func DestPathEqualFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEqualFold(FieldDestPath, v))
}

// DestPathContainsFold applies the ContainsFold predicate on the "dest_path" field.
func DestPathContainsFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContainsFold(FieldDestPath, v))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContainsFold(FieldSourcePath, v))
}

// TmdbIDEQ applies the EQ predicate on the "tmdb_id" field.
func TmdbIDEQ(v int) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldTmdbID, v))
}

// TmdbIDNEQ applies the NEQ predicate on the "tmdb_id" field.
func TmdbIDNEQ(v int) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNEQ(FieldTmdbID, v))
}

// TmdbIDIn applies the In predicate on the "tmdb_id" field.
func TmdbIDIn(vs ...int) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldIn(FieldTmdbID, vs...))
}

// TmdbIDNotIn applies the NotIn predicate on the "tmdb_id" field.
func TmdbIDNotIn(vs ...int) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNotIn(FieldTmdbID, vs...))
}

// TmdbIDGT applies the GT predicate on the "tmdb_id" field.
func TmdbIDGT(v int) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGT(FieldTmdbID, v))
}

// TmdbIDGTE applies the GTE predicate on the "tmdb_id" field.
func TmdbIDGTE(v int) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGTE(FieldTmdbID, v))
}

// TmdbIDLT applies the LT predicate on the "tmdb_id" field.
func TmdbIDLT(v int) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLT(FieldTmdbID, v))
}

// TmdbIDLTE applies the LTE predicate on the "tmdb_id" field.
func TmdbIDLTE(v int) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLTE(FieldTmdbID, v))
}

// SeasonEQ applies the EQ predicate on the "season" field.
func SeasonEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldSeason, v))
}

// SeasonNEQ applies the NEQ predicate on the "season" field.
func SeasonNEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNEQ(FieldSeason, v))
}

// SeasonIn applies the In predicate on the "season" field.
func SeasonIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldIn(FieldSeason, vs...))
}

// SeasonNotIn applies the NotIn predicate on the "season" field.
func SeasonNotIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNotIn(FieldSeason, vs...))
}

// SeasonGT applies the GT predicate on the "season" field.
func SeasonGT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGT(FieldSeason, v))
}

// SeasonGTE applies the GTE predicate on the "season" field.
func SeasonGTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGTE(FieldSeason, v))
}

// SeasonLT applies the LT predicate on the "season" field.
func SeasonLT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLT(FieldSeason, v))
}

// SeasonLTE applies the LTE predicate on the "season" field.
func SeasonLTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLTE(FieldSeason, v))
}

// SeasonContains applies the Contains predicate on the "season" field.
func SeasonContains(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContains(FieldSeason, v))
}

// SeasonHasPrefix applies the HasPrefix predicate on the "season" field.
func SeasonHasPrefix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasPrefix(FieldSeason, v))
}

// SeasonHasSuffix applies the HasSuffix predicate on the "season" field.
func SeasonHasSuffix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasSuffix(FieldSeason, v))
}

// SeasonEqualFold applies the EqualFold predicate on the "season" field.
func SeasonEqualFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEqualFold(FieldSeason, v))
}

// SeasonContainsFold applies the ContainsFold predicate on the "season" field.
func SeasonContainsFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContainsFold(FieldSeason, v))
}

// EpisodeEQ applies the EQ predicate on the "episode" field.
func EpisodeEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldEpisode, v))
}

// EpisodeNEQ applies the NEQ predicate on the "episode" field.
func EpisodeNEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNEQ(FieldEpisode, v))
}

// EpisodeIn applies the In predicate on the "episode" field.
func EpisodeIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldIn(FieldEpisode, vs...))
}

// EpisodeNotIn applies the NotIn predicate on the "episode" field.
func EpisodeNotIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNotIn(FieldEpisode, vs...))
}

// EpisodeGT applies the GT predicate on the "episode" field.
func EpisodeGT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGT(FieldEpisode, v))
}

// EpisodeGTE applies the GTE predicate on the "episode" field.
func EpisodeGTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGTE(FieldEpisode, v))
}

// EpisodeLT applies the LT predicate on the "episode" field.
func EpisodeLT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLT(FieldEpisode, v))
}

// EpisodeLTE applies the LTE predicate on the "episode" field.
func EpisodeLTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLTE(FieldEpisode, v))
}

// EpisodeContains applies the Contains predicate on the "episode" field.
func EpisodeContains(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContains(FieldEpisode, v))
}

// EpisodeHasPrefix applies the HasPrefix predicate on the "episode" field.
func EpisodeHasPrefix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasPrefix(FieldEpisode, v))
}

// EpisodeHasSuffix applies the HasSuffix predicate on the "episode" field.
func EpisodeHasSuffix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasSuffix(FieldEpisode, v))
}

// EpisodeEqualFold applies the EqualFold predicate on the "episode" field.
func EpisodeEqualFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEqualFold(FieldEpisode, v))
}

// EpisodeContainsFold applies the ContainsFold predicate on the "episode" field.
func EpisodeContainsFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContainsFold(FieldEpisode, v))
}

// DownloadHashEQ applies the EQ predicate on the "download_hash" field.
func DownloadHashEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldDownloadHash, v))
}

// DownloadHashNEQ applies the NEQ predicate on the "download_hash" field.
func DownloadHashNEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNEQ(FieldDownloadHash, v))
}

// DownloadHashIn applies the In predicate on the "download_hash" field.
func DownloadHashIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldIn(FieldDownloadHash, vs...))
}

// DownloadHashNotIn applies the NotIn predicate on the "download_hash" field.
func DownloadHashNotIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNotIn(FieldDownloadHash, vs...))
}

// DownloadHashGT applies the GT predicate on the "download_hash" field.
func DownloadHashGT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGT(FieldDownloadHash, v))
}

// DownloadHashGTE applies the GTE predicate on the "download_hash" field.
func DownloadHashGTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGTE(FieldDownloadHash, v))
}

// DownloadHashLT applies the LT predicate on the "download_hash" field.
func DownloadHashLT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLT(FieldDownloadHash, v))
}

// DownloadHashLTE applies the LTE predicate on the "download_hash" field.
func DownloadHashLTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLTE(FieldDownloadHash, v))
}

// DownloadHashContains applies the Contains predicate on the "download_hash" field.
func DownloadHashContains(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContains(FieldDownloadHash, v))
}

// DownloadHashHasPrefix applies the HasPrefix predicate on the "download_hash" field.
func DownloadHashHasPrefix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasPrefix(FieldDownloadHash, v))
}

// DownloadHashHasSuffix applies the HasSuffix predicate on the "download_hash" field.
func DownloadHashHasSuffix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasSuffix(FieldDownloadHash, v))
}

// DownloadHashEqualFold applies the EqualFold predicate on the "download_hash" field.
func DownloadHashEqualFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEqualFold(FieldDownloadHash, v))
}

// DownloadHashContainsFold applies the ContainsFold predicate on the "download_hash" field.
func DownloadHashContainsFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContainsFold(FieldDownloadHash, v))
}

// DownloaderEQ applies the EQ predicate on the "downloader" field.
func DownloaderEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldDownloader, v))
}

// DownloaderNEQ applies the NEQ predicate on the "downloader" field.
func DownloaderNEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNEQ(FieldDownloader, v))
}

// DownloaderIn applies the In predicate on the "downloader" field.
func DownloaderIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldIn(FieldDownloader, vs...))
}

// DownloaderNotIn applies the NotIn predicate on the "downloader" field.
func DownloaderNotIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNotIn(FieldDownloader, vs...))
}

// DownloaderGT applies the GT predicate on the "downloader" field.
func DownloaderGT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGT(FieldDownloader, v))
}

// DownloaderGTE applies the GTE predicate on the "downloader" field.
func DownloaderGTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGTE(FieldDownloader, v))
}

// DownloaderLT applies the LT predicate on the "downloader" field.
func DownloaderLT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLT(FieldDownloader, v))
}

// DownloaderLTE applies the LTE predicate on the "downloader" field.
func DownloaderLTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLTE(FieldDownloader, v))
}

// DownloaderContains applies the Contains predicate on the "downloader" field.
func DownloaderContains(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContains(FieldDownloader, v))
}

// DownloaderHasPrefix applies the HasPrefix predicate on the "downloader" field.
func DownloaderHasPrefix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasPrefix(FieldDownloader, v))
}

// DownloaderHasSuffix applies the HasSuffix predicate on the "downloader" field.
func DownloaderHasSuffix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasSuffix(FieldDownloader, v))
}

// DownloaderEqualFold applies the EqualFold predicate on the "downloader" field.
func DownloaderEqualFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEqualFold(FieldDownloader, v))
}

// DownloaderContainsFold applies the ContainsFold predicate on the "downloader" field.
func DownloaderContainsFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContainsFold(FieldDownloader, v))
}

// TransferredAtEQ applies the EQ predicate on the "transferred_at" field.
func TransferredAtEQ(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldTransferredAt, v))
}

// TransferredAtNEQ applies the NEQ predicate on the "transferred_at" field.
func TransferredAtNEQ(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNEQ(FieldTransferredAt, v))
}

// TransferredAtIn applies the In predicate on the "transferred_at" field.
func TransferredAtIn(vs ...time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldIn(FieldTransferredAt, vs...))
}

// TransferredAtNotIn applies the NotIn predicate on the "transferred_at" field.
func TransferredAtNotIn(vs ...time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNotIn(FieldTransferredAt, vs...))
}

// TransferredAtGT applies the GT predicate on the "transferred_at" field.
func TransferredAtGT(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGT(FieldTransferredAt, v))
}

// TransferredAtGTE applies the GTE predicate on the "transferred_at" field.
func TransferredAtGTE(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGTE(FieldTransferredAt, v))
}

// TransferredAtLT applies the LT predicate on the "transferred_at" field.
func TransferredAtLT(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLT(FieldTransferredAt, v))
}

// TransferredAtLTE applies the LTE predicate on the "transferred_at" field.
func TransferredAtLTE(v time.Time) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLTE(FieldTransferredAt, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.TransferRecord {
	return predicate.TransferRecord(sql.FieldContainsFold(FieldImageURL, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TransferRecord) predicate.TransferRecord {
	return predicate.TransferRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TransferRecord) predicate.TransferRecord {
	return predicate.TransferRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TransferRecord) predicate.TransferRecord {
	return predicate.TransferRecord(sql.NotPredicates(p))
}
