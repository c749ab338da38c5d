// Code generated by ent, DO NOT EDIT.

package transferrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	ulid "github.com/oklog/ulid/v2"
)

const (
	// Label holds the string label denoting the transferrecord type in the database.
	Label = "transfer_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldMediaKind holds the string denoting the media_kind field in the database.
	FieldMediaKind = "media_kind"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDestPath holds the string denoting the dest_path field in the database.
	FieldDestPath = "dest_path"
	// FieldSourcePath holds the string denoting the source_path field in the database.
	FieldSourcePath = "source_path"
	// FieldTmdbID holds the string denoting the tmdb_id field in the database.
	FieldTmdbID = "tmdb_id"
	// FieldSeason holds the string denoting the season field in the database.
	FieldSeason = "season"
	// FieldEpisode holds the string denoting the episode field in the database.
	FieldEpisode = "episode"
	// FieldDownloadHash holds the string denoting the download_hash field in the database.
	FieldDownloadHash = "download_hash"
	// FieldDownloader holds the string denoting the downloader field in the database.
	FieldDownloader = "downloader"
	// FieldTransferredAt holds the string denoting the transferred_at field in the database.
	FieldTransferredAt = "transferred_at"
	// FieldImageURL holds the string denoting the image_url field in the database.
	FieldImageURL = "image_url"
	// Table holds the table name of the transferrecord in the database.
	Table = "transfer_records"
)

// Columns holds all SQL columns for transferrecord fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldMediaKind,
	FieldTitle,
	FieldDestPath,
	FieldSourcePath,
	FieldTmdbID,
	FieldSeason,
	FieldEpisode,
	FieldDownloadHash,
	FieldDownloader,
	FieldTransferredAt,
	FieldImageURL,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultSourcePath holds the default value on creation for the "source_path" field.
	DefaultSourcePath string
	// DefaultTmdbID holds the default value on creation for the "tmdb_id" field.
	DefaultTmdbID int
	// DefaultSeason holds the default value on creation for the "season" field.
	DefaultSeason string
	// DefaultEpisode holds the default value on creation for the "episode" field.
	DefaultEpisode string
	// DefaultDownloadHash holds the default value on creation for the "download_hash" field.
	DefaultDownloadHash string
	// DefaultDownloader holds the default value on creation for the "downloader" field.
	DefaultDownloader string
	// DefaultImageURL holds the default value on creation for the "image_url" field.
	DefaultImageURL string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() ulid.ULID
)

// MediaKind defines the type for the "media_kind" enum field.
type MediaKind string

// MediaKindMovie is the default value of the MediaKind enum.
const DefaultMediaKind = MediaKindMovie

// MediaKind values.
const (
	MediaKindMovie  MediaKind = "movie"
	MediaKindSeries MediaKind = "series"
)

func (mk MediaKind) String() string {
	return string(mk)
}

// MediaKindValidator is a validator for the "media_kind" field enum values. It is called by the builders before save.
func MediaKindValidator(mk MediaKind) error {
	switch mk {
	case MediaKindMovie, MediaKindSeries:
		return nil
	default:
		return fmt.Errorf("transferrecord: invalid enum value for media_kind field: %q", mk)
	}
}

// OrderOption defines the ordering options for the TransferRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMediaKind orders the results by the media_kind field.
func ByMediaKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaKind, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDestPath orders the results by the dest_path field.
func ByDestPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDestPath, opts...).ToFunc()
}

// BySourcePath orders the results by the source_path field.
func BySourcePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePath, opts...).ToFunc()
}

// ByTmdbID orders the results by the tmdb_id field.
func ByTmdbID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTmdbID, opts...).ToFunc()
}

// BySeason orders the results by the season field.
func BySeason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeason, opts...).ToFunc()
}

// ByEpisode orders the results by the episode field.
func ByEpisode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEpisode, opts...).ToFunc()
}

// ByDownloadHash orders the results by the download_hash field.
func ByDownloadHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDownloadHash, opts...).ToFunc()
}

// ByDownloader orders the results by the downloader field.
func ByDownloader(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDownloader, opts...).ToFunc()
}

// ByTransferredAt orders the results by the transferred_at field.
func ByTransferredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransferredAt, opts...).ToFunc()
}

// ByImageURL orders the results by the image_url field.
func ByImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageURL, opts...).ToFunc()
}
