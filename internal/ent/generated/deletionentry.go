// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediareap/mediareap/internal/ent/generated/deletionentry"
	ulid "github.com/oklog/ulid/v2"
)

// DeletionEntry is the model entity for the DeletionEntry schema.
type DeletionEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ULID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UniqueKey holds the value of the "unique_key" field.
	UniqueKey string `json:"unique_key,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// MediaKind holds the value of the "media_kind" field.
	MediaKind deletionentry.MediaKind `json:"media_kind,omitempty"`
	// Path holds the value of the "path" field.
	Path string `json:"path,omitempty"`
	// TmdbID holds the value of the "tmdb_id" field.
	TmdbID int `json:"tmdb_id,omitempty"`
	// Season holds the value of the "season" field.
	Season string `json:"season,omitempty"`
	// Episode holds the value of the "episode" field.
	Episode string `json:"episode,omitempty"`
	// ImageURL holds the value of the "image_url" field.
	ImageURL string `json:"image_url,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt    time.Time `json:"deleted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeletionEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deletionentry.FieldTmdbID:
			values[i] = new(sql.NullInt64)
		case deletionentry.FieldUniqueKey, deletionentry.FieldTitle, deletionentry.FieldMediaKind, deletionentry.FieldPath, deletionentry.FieldSeason, deletionentry.FieldEpisode, deletionentry.FieldImageURL:
			values[i] = new(sql.NullString)
		case deletionentry.FieldCreatedAt, deletionentry.FieldUpdatedAt, deletionentry.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case deletionentry.FieldID:
			values[i] = new(ulid.ULID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeletionEntry fields.
func (_m *DeletionEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deletionentry.FieldID:
			if value, ok := values[i].(*ulid.ULID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case deletionentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deletionentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case deletionentry.FieldUniqueKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unique_key", values[i])
			} else if value.Valid {
				_m.UniqueKey = value.String
			}
		case deletionentry.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case deletionentry.FieldMediaKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_kind", values[i])
			} else if value.Valid {
				_m.MediaKind = deletionentry.MediaKind(value.String)
			}
		case deletionentry.FieldPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path", values[i])
			} else if value.Valid {
				_m.Path = value.String
			}
		case deletionentry.FieldTmdbID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tmdb_id", values[i])
			} else if value.Valid {
				_m.TmdbID = int(value.Int64)
			}
		case deletionentry.FieldSeason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field season", values[i])
			} else if value.Valid {
				_m.Season = value.String
			}
		case deletionentry.FieldEpisode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field episode", values[i])
			} else if value.Valid {
				_m.Episode = value.String
			}
		case deletionentry.FieldImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_url", values[i])
			} else if value.Valid {
				_m.ImageURL = value.String
			}
		case deletionentry.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeletionEntry.
// This includes values selected through modifiers, order, etc.
func (_m *DeletionEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DeletionEntry.
// Note that you need to call DeletionEntry.Unwrap() before calling this method if this DeletionEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeletionEntry) Update() *DeletionEntryUpdateOne {
	return NewDeletionEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeletionEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeletionEntry) Unwrap() *DeletionEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: DeletionEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeletionEntry) String() string {
	var builder strings.Builder
	builder.WriteString("DeletionEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("unique_key=")
	builder.WriteString(_m.UniqueKey)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("media_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.MediaKind))
	builder.WriteString(", ")
	builder.WriteString("path=")
	builder.WriteString(_m.Path)
	builder.WriteString(", ")
	builder.WriteString("tmdb_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TmdbID))
	builder.WriteString(", ")
	builder.WriteString("season=")
	builder.WriteString(_m.Season)
	builder.WriteString(", ")
	builder.WriteString("episode=")
	builder.WriteString(_m.Episode)
	builder.WriteString(", ")
	builder.WriteString("image_url=")
	builder.WriteString(_m.ImageURL)
	builder.WriteString(", ")
	builder.WriteString("deleted_at=")
	builder.WriteString(_m.DeletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DeletionEntries is a parsable slice of DeletionEntry.
type DeletionEntries []*DeletionEntry
