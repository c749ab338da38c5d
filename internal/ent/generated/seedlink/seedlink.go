// Code generated by ent, DO NOT EDIT.

package seedlink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	ulid "github.com/oklog/ulid/v2"
)

const (
	// Label holds the string label denoting the seedlink type in the database.
	Label = "seed_link"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCollaborator holds the string denoting the collaborator field in the database.
	FieldCollaborator = "collaborator"
	// FieldRootHash holds the string denoting the root_hash field in the database.
	FieldRootHash = "root_hash"
	// FieldLinks holds the string denoting the links field in the database.
	FieldLinks = "links"
	// Table holds the table name of the seedlink in the database.
	Table = "seed_links"
)

// Columns holds all SQL columns for seedlink fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCollaborator,
	FieldRootHash,
	FieldLinks,
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
	// DefaultCollaborator holds the default value on creation for the "collaborator" field.
	DefaultCollaborator string
	// DefaultLinks holds the default value on creation for the "links" field.
	DefaultLinks string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() ulid.ULID
)

// OrderOption defines the ordering options for the SeedLink queries.
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

// ByCollaborator orders the results by the collaborator field.
func ByCollaborator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollaborator, opts...).ToFunc()
}

// ByRootHash orders the results by the root_hash field.
func ByRootHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRootHash, opts...).ToFunc()
}

// ByLinks orders the results by the links field.
func ByLinks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinks, opts...).ToFunc()
}
