// Code generated by ent, DO NOT EDIT.

package downloadfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	ulid "github.com/oklog/ulid/v2"
)

const (
	// Label holds the string label denoting the downloadfile type in the database.
	Label = "download_file"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDownloadHash holds the string denoting the download_hash field in the database.
	FieldDownloadHash = "download_hash"
	// FieldDownloader holds the string denoting the downloader field in the database.
	FieldDownloader = "downloader"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldFullPath holds the string denoting the full_path field in the database.
	FieldFullPath = "full_path"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// Table holds the table name of the downloadfile in the database.
	Table = "download_files"
)

// Columns holds all SQL columns for downloadfile fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDownloadHash,
	FieldDownloader,
	FieldFilePath,
	FieldFullPath,
	FieldState,
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
	// DefaultDownloader holds the default value on creation for the "downloader" field.
	DefaultDownloader string
	// DefaultState holds the default value on creation for the "state" field.
	DefaultState int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() ulid.ULID
)

// OrderOption defines the ordering options for the DownloadFile queries.
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

// ByDownloadHash orders the results by the download_hash field.
func ByDownloadHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDownloadHash, opts...).ToFunc()
}

// ByDownloader orders the results by the downloader field.
func ByDownloader(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDownloader, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByFullPath orders the results by the full_path field.
func ByFullPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullPath, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}
