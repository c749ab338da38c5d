// Code generated by ent, DO NOT EDIT.

package deletionentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	ulid "github.com/oklog/ulid/v2"
)

const (
	// Label holds the string label denoting the deletionentry type in the database.
	Label = "deletion_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUniqueKey holds the string denoting the unique_key field in the database.
	FieldUniqueKey = "unique_key"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldMediaKind holds the string denoting the media_kind field in the database.
	FieldMediaKind = "media_kind"
	// FieldPath holds the string denoting the path field in the database.
	FieldPath = "path"
	// FieldTmdbID holds the string denoting the tmdb_id field in the database.
	FieldTmdbID = "tmdb_id"
	// FieldSeason holds the string denoting the season field in the database.
	FieldSeason = "season"
	// FieldEpisode holds the string denoting the episode field in the database.
	FieldEpisode = "episode"
	// FieldImageURL holds the string denoting the image_url field in the database.
	FieldImageURL = "image_url"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// Table holds the table name of the deletionentry in the database.
	Table = "deletion_entries"
)

// Columns holds all SQL columns for deletionentry fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUniqueKey,
	FieldTitle,
	FieldMediaKind,
	FieldPath,
	FieldTmdbID,
	FieldSeason,
	FieldEpisode,
	FieldImageURL,
	FieldDeletedAt,
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
	// DefaultPath holds the default value on creation for the "path" field.
	DefaultPath string
	// DefaultTmdbID holds the default value on creation for the "tmdb_id" field.
	DefaultTmdbID int
	// DefaultSeason holds the default value on creation for the "season" field.
	DefaultSeason string
	// DefaultEpisode holds the default value on creation for the "episode" field.
	DefaultEpisode string
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
		return fmt.Errorf("deletionentry: invalid enum value for media_kind field: %q", mk)
	}
}

// OrderOption defines the ordering options for the DeletionEntry queries.
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

// ByUniqueKey orders the results by the unique_key field.
func ByUniqueKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUniqueKey, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByMediaKind orders the results by the media_kind field.
func ByMediaKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaKind, opts...).ToFunc()
}

// ByPath orders the results by the path field.
func ByPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPath, opts...).ToFunc()
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

// ByImageURL orders the results by the image_url field.
func ByImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageURL, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}
