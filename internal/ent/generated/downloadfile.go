// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediareap/mediareap/internal/ent/generated/downloadfile"
	ulid "github.com/oklog/ulid/v2"
)

// DownloadFile is the model entity for the DownloadFile schema.
type DownloadFile struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ULID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DownloadHash holds the value of the "download_hash" field.
	DownloadHash string `json:"download_hash,omitempty"`
	// Downloader holds the value of the "downloader" field.
	Downloader string `json:"downloader,omitempty"`
	// Path relative to the torrent save directory
	FilePath string `json:"file_path,omitempty"`
	// Absolute source path; join key for siblings sharing a directory
	FullPath string `json:"full_path,omitempty"`
	// Nonzero marks the file as kept by the user; kept files block torrent removal
	State        int `json:"state,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DownloadFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case downloadfile.FieldState:
			values[i] = new(sql.NullInt64)
		case downloadfile.FieldDownloadHash, downloadfile.FieldDownloader, downloadfile.FieldFilePath, downloadfile.FieldFullPath:
			values[i] = new(sql.NullString)
		case downloadfile.FieldCreatedAt, downloadfile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case downloadfile.FieldID:
			values[i] = new(ulid.ULID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DownloadFile fields.
func (_m *DownloadFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case downloadfile.FieldID:
			if value, ok := values[i].(*ulid.ULID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case downloadfile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case downloadfile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case downloadfile.FieldDownloadHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field download_hash", values[i])
			} else if value.Valid {
				_m.DownloadHash = value.String
			}
		case downloadfile.FieldDownloader:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field downloader", values[i])
			} else if value.Valid {
				_m.Downloader = value.String
			}
		case downloadfile.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case downloadfile.FieldFullPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_path", values[i])
			} else if value.Valid {
				_m.FullPath = value.String
			}
		case downloadfile.FieldState:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DownloadFile.
// This includes values selected through modifiers, order, etc.
func (_m *DownloadFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DownloadFile.
// Note that you need to call DownloadFile.Unwrap() before calling this method if this DownloadFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DownloadFile) Update() *DownloadFileUpdateOne {
	return NewDownloadFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DownloadFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DownloadFile) Unwrap() *DownloadFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: DownloadFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DownloadFile) String() string {
	var builder strings.Builder
	builder.WriteString("DownloadFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("download_hash=")
	builder.WriteString(_m.DownloadHash)
	builder.WriteString(", ")
	builder.WriteString("downloader=")
	builder.WriteString(_m.Downloader)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("full_path=")
	builder.WriteString(_m.FullPath)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteByte(')')
	return builder.String()
}

// DownloadFiles is a parsable slice of DownloadFile.
type DownloadFiles []*DownloadFile
