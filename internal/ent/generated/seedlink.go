// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediareap/mediareap/internal/ent/generated/seedlink"
	ulid "github.com/oklog/ulid/v2"
)

// SeedLink is the model entity for the SeedLink schema.
type SeedLink struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ULID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name of the plugin that recorded the links
	Collaborator string `json:"collaborator,omitempty"`
	// RootHash holds the value of the "root_hash" field.
	RootHash string `json:"root_hash,omitempty"`
	// JSON-encoded []apitypes.TorrentLink
	Links        string `json:"links,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SeedLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case seedlink.FieldCollaborator, seedlink.FieldRootHash, seedlink.FieldLinks:
			values[i] = new(sql.NullString)
		case seedlink.FieldCreatedAt, seedlink.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case seedlink.FieldID:
			values[i] = new(ulid.ULID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SeedLink fields.
func (_m *SeedLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case seedlink.FieldID:
			if value, ok := values[i].(*ulid.ULID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case seedlink.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case seedlink.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case seedlink.FieldCollaborator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field collaborator", values[i])
			} else if value.Valid {
				_m.Collaborator = value.String
			}
		case seedlink.FieldRootHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field root_hash", values[i])
			} else if value.Valid {
				_m.RootHash = value.String
			}
		case seedlink.FieldLinks:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field links", values[i])
			} else if value.Valid {
				_m.Links = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SeedLink.
// This includes values selected through modifiers, order, etc.
func (_m *SeedLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SeedLink.
// Note that you need to call SeedLink.Unwrap() before calling this method if this SeedLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SeedLink) Update() *SeedLinkUpdateOne {
	return NewSeedLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SeedLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SeedLink) Unwrap() *SeedLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: SeedLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SeedLink) String() string {
	var builder strings.Builder
	builder.WriteString("SeedLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("collaborator=")
	builder.WriteString(_m.Collaborator)
	builder.WriteString(", ")
	builder.WriteString("root_hash=")
	builder.WriteString(_m.RootHash)
	builder.WriteString(", ")
	builder.WriteString("links=")
	builder.WriteString(_m.Links)
	builder.WriteByte(')')
	return builder.String()
}

// SeedLinks is a parsable slice of SeedLink.
type SeedLinks []*SeedLink
