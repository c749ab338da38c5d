// Code generated by ent, DO NOT EDIT.

package downloadfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediareap/mediareap/internal/ent/generated/predicate"
	ulid "github.com/oklog/ulid/v2"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ULID) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ULID) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ULID) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ULID) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ULID) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ULID) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ULID) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ULID) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ULID) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldUpdatedAt, v))
}

// DownloadHash applies equality check predicate on the "download_hash" field. It's identical to DownloadHashEQ.
func DownloadHash(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldDownloadHash, v))
}

// Downloader applies equality check predicate on the "downloader" field. It's identical to DownloaderEQ.
func Downloader(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldDownloader, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldFilePath, v))
}

// FullPath applies equality check predicate on the "full_path" field. It's identical to FullPathEQ.
func FullPath(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldFullPath, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v int) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldState, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLTE(FieldUpdatedAt, v))
}

// DownloadHashEQ applies the EQ predicate on the "download_hash" field.
func DownloadHashEQ(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldDownloadHash, v))
}

// DownloadHashNEQ applies the NEQ predicate on the "download_hash" field.
func DownloadHashNEQ(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNEQ(FieldDownloadHash, v))
}

// DownloadHashIn applies the In predicate on the "download_hash" field.
func DownloadHashIn(vs ...string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldIn(FieldDownloadHash, vs...))
}

// DownloadHashNotIn applies the NotIn predicate on the "download_hash" field.
func DownloadHashNotIn(vs ...string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNotIn(FieldDownloadHash, vs...))
}

// DownloadHashGT applies the GT predicate on the "download_hash" field.
func DownloadHashGT(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGT(FieldDownloadHash, v))
}

// DownloadHashGTE applies the GTE predicate on the "download_hash" field.
func DownloadHashGTE(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGTE(FieldDownloadHash, v))
}

// DownloadHashLT applies the LT predicate on the "download_hash" field.
func DownloadHashLT(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLT(FieldDownloadHash, v))
}

// DownloadHashLTE applies the LTE predicate on the "download_hash" field.
func DownloadHashLTE(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLTE(FieldDownloadHash, v))
}

// DownloadHashContains applies the Contains predicate on the "download_hash" field.
func DownloadHashContains(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldContains(FieldDownloadHash, v))
}

// DownloadHashHasPrefix applies the HasPrefix predicate on the "download_hash" field.
func DownloadHashHasPrefix(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldHasPrefix(FieldDownloadHash, v))
}

// DownloadHashHasSuffix applies the HasSuffix predicate on the "download_hash" field.
func DownloadHashHasSuffix(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldHasSuffix(FieldDownloadHash, v))
}

// DownloadHashEqualFold applies the EqualFold predicate on the "download_hash" field.
func DownloadHashEqualFold(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEqualFold(FieldDownloadHash, v))
}

// DownloadHashContainsFold applies the ContainsFold predicate on the "download_hash" field.
func DownloadHashContainsFold(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldContainsFold(FieldDownloadHash, v))
}

// DownloaderEQ applies the EQ predicate on the "downloader" field.
func DownloaderEQ(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldDownloader, v))
}

// DownloaderNEQ applies the NEQ predicate on the "downloader" field.
func DownloaderNEQ(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNEQ(FieldDownloader, v))
}

// DownloaderIn applies the In predicate on the "downloader" field.
func DownloaderIn(vs ...string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldIn(FieldDownloader, vs...))
}

// DownloaderNotIn applies the NotIn predicate on the "downloader" field.
func DownloaderNotIn(vs ...string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNotIn(FieldDownloader, vs...))
}

// DownloaderGT applies the GT predicate on the "downloader" field.
func DownloaderGT(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGT(FieldDownloader, v))
}

// DownloaderGTE applies the GTE predicate on the "downloader" field.
func DownloaderGTE(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGTE(FieldDownloader, v))
}

// DownloaderLT applies the LT predicate on the "downloader" field.
func DownloaderLT(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLT(FieldDownloader, v))
}

// DownloaderLTE applies the LTE predicate on the "downloader" field.
func DownloaderLTE(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLTE(FieldDownloader, v))
}

// DownloaderContains applies the Contains predicate on the "downloader" field.
func DownloaderContains(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldContains(FieldDownloader, v))
}

// DownloaderHasPrefix applies the HasPrefix predicate on the "downloader" field.
func DownloaderHasPrefix(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldHasPrefix(FieldDownloader, v))
}

// DownloaderHasSuffix applies the HasSuffix predicate on the "downloader" field.
func DownloaderHasSuffix(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldHasSuffix(FieldDownloader, v))
}

// DownloaderEqualFold applies the EqualFold predicate on the "downloader" field.
func DownloaderEqualFold(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEqualFold(FieldDownloader, v))
}

// DownloaderContainsFold applies the ContainsFold predicate on the "downloader" field.
func DownloaderContainsFold(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldContainsFold(FieldDownloader, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldContainsFold(FieldFilePath, v))
}

// FullPathEQ applies the EQ predicate on the "full_path" field.
func FullPathEQ(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldFullPath, v))
}

// FullPathNEQ applies the NEQ predicate on the "full_path" field.
func FullPathNEQ(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNEQ(FieldFullPath, v))
}

// FullPathIn applies the In predicate on the "full_path" field.
func FullPathIn(vs ...string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldIn(FieldFullPath, vs...))
}

// FullPathNotIn applies the NotIn predicate on the "full_path" field.
func FullPathNotIn(vs ...string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNotIn(FieldFullPath, vs...))
}

// FullPathGT applies the GT predicate on the "full_path" field.
func FullPathGT(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGT(FieldFullPath, v))
}

// FullPathGTE applies the GTE predicate on the "full_path" field.
func FullPathGTE(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGTE(FieldFullPath, v))
}

// FullPathLT applies the LT predicate on the "full_path" field.
func FullPathLT(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLT(FieldFullPath, v))
}

// FullPathLTE applies the LTE predicate on the "full_path" field.
func FullPathLTE(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLTE(FieldFullPath, v))
}

// FullPathContains applies the Contains predicate on the "full_path" field.
func FullPathContains(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldContains(FieldFullPath, v))
}

// FullPathHasPrefix applies the HasPrefix predicate on the "full_path" field.
func FullPathHasPrefix(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldHasPrefix(FieldFullPath, v))
}

// FullPathHasSuffix applies the HasSuffix predicate on the "full_path" field.
func FullPathHasSuffix(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldHasSuffix(FieldFullPath, v))
}

// FullPathEqualFold applies the EqualFold predicate on the "full_path" field.
func FullPathEqualFold(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEqualFold(FieldFullPath, v))
}

// FullPathContainsFold applies the ContainsFold predicate on the "full_path" field.
func FullPathContainsFold(v string) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldContainsFold(FieldFullPath, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v int) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v int) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...int) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...int) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v int) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v int) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v int) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v int) predicate.DownloadFile {
	return predicate.DownloadFile(sql.FieldLTE(FieldState, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DownloadFile) predicate.DownloadFile {
	return predicate.DownloadFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DownloadFile) predicate.DownloadFile {
	return predicate.DownloadFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DownloadFile) predicate.DownloadFile {
	return predicate.DownloadFile(sql.NotPredicates(p))
}
