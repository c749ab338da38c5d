// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediareap/mediareap/internal/ent/generated/transferrecord"
	ulid "github.com/oklog/ulid/v2"
)

// TransferRecord is the model entity for the TransferRecord schema.
type TransferRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ULID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// MediaKind holds the value of the "media_kind" field.
	MediaKind transferrecord.MediaKind `json:"media_kind,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Canonical library path of the transferred file
	DestPath string `json:"dest_path,omitempty"`
	// Path the file was transferred from (seedbox side)
	SourcePath string `json:"source_path,omitempty"`
	// TmdbID holds the value of the "tmdb_id" field.
	TmdbID int `json:"tmdb_id,omitempty"`
	// Zero-padded season token, e.g. S01
	Season string `json:"season,omitempty"`
	// Episode token, e.g. E3
	Episode string `json:"episode,omitempty"`
	// DownloadHash holds the value of the "download_hash" field.
	DownloadHash string `json:"download_hash,omitempty"`
	// Name of the download client the hash belongs to
	Downloader string `json:"downloader,omitempty"`
	// TransferredAt holds the value of the "transferred_at" field.
	TransferredAt time.Time `json:"transferred_at,omitempty"`
	// Poster used in notifications
	ImageURL     string `json:"image_url,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TransferRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transferrecord.FieldTmdbID:
			values[i] = new(sql.NullInt64)
		case transferrecord.FieldMediaKind, transferrecord.FieldTitle, transferrecord.FieldDestPath, transferrecord.FieldSourcePath, transferrecord.FieldSeason, transferrecord.FieldEpisode, transferrecord.FieldDownloadHash, transferrecord.FieldDownloader, transferrecord.FieldImageURL:
			values[i] = new(sql.NullString)
		case transferrecord.FieldCreatedAt, transferrecord.FieldUpdatedAt, transferrecord.FieldTransferredAt:
			values[i] = new(sql.NullTime)
		case transferrecord.FieldID:
			values[i] = new(ulid.ULID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TransferRecord fields.
func (_m *TransferRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transferrecord.FieldID:
			if value, ok := values[i].(*ulid.ULID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case transferrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case transferrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case transferrecord.FieldMediaKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_kind", values[i])
			} else if value.Valid {
				_m.MediaKind = transferrecord.MediaKind(value.String)
			}
		case transferrecord.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case transferrecord.FieldDestPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dest_path", values[i])
			} else if value.Valid {
				_m.DestPath = value.String
			}
		case transferrecord.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case transferrecord.FieldTmdbID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tmdb_id", values[i])
			} else if value.Valid {
				_m.TmdbID = int(value.Int64)
			}
		case transferrecord.FieldSeason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field season", values[i])
			} else if value.Valid {
				_m.Season = value.String
			}
		case transferrecord.FieldEpisode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field episode", values[i])
			} else if value.Valid {
				_m.Episode = value.String
			}
		case transferrecord.FieldDownloadHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field download_hash", values[i])
			} else if value.Valid {
				_m.DownloadHash = value.String
			}
		case transferrecord.FieldDownloader:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field downloader", values[i])
			} else if value.Valid {
				_m.Downloader = value.String
			}
		case transferrecord.FieldTransferredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field transferred_at", values[i])
			} else if value.Valid {
				_m.TransferredAt = value.Time
			}
		case transferrecord.FieldImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_url", values[i])
			} else if value.Valid {
				_m.ImageURL = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TransferRecord.
// This includes values selected through modifiers, order, etc.
func (_m *TransferRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TransferRecord.
// Note that you need to call TransferRecord.Unwrap() before calling this method if this TransferRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TransferRecord) Update() *TransferRecordUpdateOne {
	return NewTransferRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TransferRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TransferRecord) Unwrap() *TransferRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: TransferRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TransferRecord) String() string {
	var builder strings.Builder
	builder.WriteString("TransferRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("media_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.MediaKind))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("dest_path=")
	builder.WriteString(_m.DestPath)
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
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
	builder.WriteString("download_hash=")
	builder.WriteString(_m.DownloadHash)
	builder.WriteString(", ")
	builder.WriteString("downloader=")
	builder.WriteString(_m.Downloader)
	builder.WriteString(", ")
	builder.WriteString("transferred_at=")
	builder.WriteString(_m.TransferredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("image_url=")
	builder.WriteString(_m.ImageURL)
	builder.WriteByte(')')
	return builder.String()
}

// TransferRecords is a parsable slice of TransferRecord.
type TransferRecords []*TransferRecord
