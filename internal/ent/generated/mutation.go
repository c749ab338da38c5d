// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediareap/mediareap/internal/ent/generated/deletionentry"
	"github.com/mediareap/mediareap/internal/ent/generated/downloadfile"
	"github.com/mediareap/mediareap/internal/ent/generated/predicate"
	"github.com/mediareap/mediareap/internal/ent/generated/scanmark"
	"github.com/mediareap/mediareap/internal/ent/generated/seedlink"
	"github.com/mediareap/mediareap/internal/ent/generated/transferrecord"
	ulid "github.com/oklog/ulid/v2"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDeletionEntry  = "DeletionEntry"
	TypeDownloadFile   = "DownloadFile"
	TypeScanMark       = "ScanMark"
	TypeSeedLink       = "SeedLink"
	TypeTransferRecord = "TransferRecord"
)

// DeletionEntryMutation represents an operation that mutates the DeletionEntry nodes in the graph.
type DeletionEntryMutation struct {
	config
	op            Op
	typ           string
	id            *ulid.ULID
	created_at    *time.Time
	updated_at    *time.Time
	unique_key    *string
	title         *string
	media_kind    *deletionentry.MediaKind
	_path         *string
	tmdb_id       *int
	addtmdb_id    *int
	season        *string
	episode       *string
	image_url     *string
	deleted_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DeletionEntry, error)
	predicates    []predicate.DeletionEntry
}

var _ ent.Mutation = (*DeletionEntryMutation)(nil)

// deletionentryOption allows management of the mutation configuration using functional options.
type deletionentryOption func(*DeletionEntryMutation)

// newDeletionEntryMutation creates new mutation for the DeletionEntry entity.
func newDeletionEntryMutation(c config, op Op, opts ...deletionentryOption) *DeletionEntryMutation {
	m := &DeletionEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeDeletionEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeletionEntryID sets the ID field of the mutation.
func withDeletionEntryID(id ulid.ULID) deletionentryOption {
	return func(m *DeletionEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *DeletionEntry
		)
		m.oldValue = func(ctx context.Context) (*DeletionEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeletionEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeletionEntry sets the old DeletionEntry of the mutation.
func withDeletionEntry(node *DeletionEntry) deletionentryOption {
	return func(m *DeletionEntryMutation) {
		m.oldValue = func(context.Context) (*DeletionEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeletionEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeletionEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeletionEntry entities.
func (m *DeletionEntryMutation) SetID(id ulid.ULID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeletionEntryMutation) ID() (id ulid.ULID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeletionEntryMutation) IDs(ctx context.Context) ([]ulid.ULID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ULID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeletionEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DeletionEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeletionEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DeletionEntry entity.
// If the DeletionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletionEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeletionEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DeletionEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DeletionEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DeletionEntry entity.
// If the DeletionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletionEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DeletionEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUniqueKey sets the "unique_key" field.
func (m *DeletionEntryMutation) SetUniqueKey(s string) {
	m.unique_key = &s
}

// UniqueKey returns the value of the "unique_key" field in the mutation.
func (m *DeletionEntryMutation) UniqueKey() (r string, exists bool) {
	v := m.unique_key
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueKey returns the old "unique_key" field's value of the DeletionEntry entity.
// If the DeletionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletionEntryMutation) OldUniqueKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueKey: %w", err)
	}
	return oldValue.UniqueKey, nil
}

// ResetUniqueKey resets all changes to the "unique_key" field.
func (m *DeletionEntryMutation) ResetUniqueKey() {
	m.unique_key = nil
}

// SetTitle sets the "title" field.
func (m *DeletionEntryMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DeletionEntryMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the DeletionEntry entity.
// If the DeletionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletionEntryMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *DeletionEntryMutation) ResetTitle() {
	m.title = nil
}

// SetMediaKind sets the "media_kind" field.
func (m *DeletionEntryMutation) SetMediaKind(dk deletionentry.MediaKind) {
	m.media_kind = &dk
}

// MediaKind returns the value of the "media_kind" field in the mutation.
func (m *DeletionEntryMutation) MediaKind() (r deletionentry.MediaKind, exists bool) {
	v := m.media_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaKind returns the old "media_kind" field's value of the DeletionEntry entity.
// If the DeletionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletionEntryMutation) OldMediaKind(ctx context.Context) (v deletionentry.MediaKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaKind: %w", err)
	}
	return oldValue.MediaKind, nil
}

// ResetMediaKind resets all changes to the "media_kind" field.
func (m *DeletionEntryMutation) ResetMediaKind() {
	m.media_kind = nil
}

// SetPath sets the "path" field.
func (m *DeletionEntryMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *DeletionEntryMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the DeletionEntry entity.
// If the DeletionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletionEntryMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *DeletionEntryMutation) ResetPath() {
	m._path = nil
}

// SetTmdbID sets the "tmdb_id" field.
func (m *DeletionEntryMutation) SetTmdbID(i int) {
	m.tmdb_id = &i
	m.addtmdb_id = nil
}

// TmdbID returns the value of the "tmdb_id" field in the mutation.
func (m *DeletionEntryMutation) TmdbID() (r int, exists bool) {
	v := m.tmdb_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTmdbID returns the old "tmdb_id" field's value of the DeletionEntry entity.
// If the DeletionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletionEntryMutation) OldTmdbID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTmdbID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTmdbID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTmdbID: %w", err)
	}
	return oldValue.TmdbID, nil
}

// AddTmdbID adds i to the "tmdb_id" field.
func (m *DeletionEntryMutation) AddTmdbID(i int) {
	if m.addtmdb_id != nil {
		*m.addtmdb_id += i
	} else {
		m.addtmdb_id = &i
	}
}

// AddedTmdbID returns the value that was added to the "tmdb_id" field in this mutation.
func (m *DeletionEntryMutation) AddedTmdbID() (r int, exists bool) {
	v := m.addtmdb_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTmdbID resets all changes to the "tmdb_id" field.
func (m *DeletionEntryMutation) ResetTmdbID() {
	m.tmdb_id = nil
	m.addtmdb_id = nil
}

// SetSeason sets the "season" field.
func (m *DeletionEntryMutation) SetSeason(s string) {
	m.season = &s
}

// Season returns the value of the "season" field in the mutation.
func (m *DeletionEntryMutation) Season() (r string, exists bool) {
	v := m.season
	if v == nil {
		return
	}
	return *v, true
}

// OldSeason returns the old "season" field's value of the DeletionEntry entity.
// If the DeletionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletionEntryMutation) OldSeason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeason: %w", err)
	}
	return oldValue.Season, nil
}

// ResetSeason resets all changes to the "season" field.
func (m *DeletionEntryMutation) ResetSeason() {
	m.season = nil
}

// SetEpisode sets the "episode" field.
func (m *DeletionEntryMutation) SetEpisode(s string) {
	m.episode = &s
}

// Episode returns the value of the "episode" field in the mutation.
func (m *DeletionEntryMutation) Episode() (r string, exists bool) {
	v := m.episode
	if v == nil {
		return
	}
	return *v, true
}

// OldEpisode returns the old "episode" field's value of the DeletionEntry entity.
// If the DeletionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletionEntryMutation) OldEpisode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEpisode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEpisode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEpisode: %w", err)
	}
	return oldValue.Episode, nil
}

// ResetEpisode resets all changes to the "episode" field.
func (m *DeletionEntryMutation) ResetEpisode() {
	m.episode = nil
}

// SetImageURL sets the "image_url" field.
func (m *DeletionEntryMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *DeletionEntryMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the DeletionEntry entity.
// If the DeletionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletionEntryMutation) OldImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *DeletionEntryMutation) ResetImageURL() {
	m.image_url = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *DeletionEntryMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *DeletionEntryMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the DeletionEntry entity.
// If the DeletionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletionEntryMutation) OldDeletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *DeletionEntryMutation) ResetDeletedAt() {
	m.deleted_at = nil
}

// Where appends a list predicates to the DeletionEntryMutation builder.
func (m *DeletionEntryMutation) Where(ps ...predicate.DeletionEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeletionEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeletionEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeletionEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeletionEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeletionEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeletionEntry).
func (m *DeletionEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeletionEntryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, deletionentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, deletionentry.FieldUpdatedAt)
	}
	if m.unique_key != nil {
		fields = append(fields, deletionentry.FieldUniqueKey)
	}
	if m.title != nil {
		fields = append(fields, deletionentry.FieldTitle)
	}
	if m.media_kind != nil {
		fields = append(fields, deletionentry.FieldMediaKind)
	}
	if m._path != nil {
		fields = append(fields, deletionentry.FieldPath)
	}
	if m.tmdb_id != nil {
		fields = append(fields, deletionentry.FieldTmdbID)
	}
	if m.season != nil {
		fields = append(fields, deletionentry.FieldSeason)
	}
	if m.episode != nil {
		fields = append(fields, deletionentry.FieldEpisode)
	}
	if m.image_url != nil {
		fields = append(fields, deletionentry.FieldImageURL)
	}
	if m.deleted_at != nil {
		fields = append(fields, deletionentry.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeletionEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deletionentry.FieldCreatedAt:
		return m.CreatedAt()
	case deletionentry.FieldUpdatedAt:
		return m.UpdatedAt()
	case deletionentry.FieldUniqueKey:
		return m.UniqueKey()
	case deletionentry.FieldTitle:
		return m.Title()
	case deletionentry.FieldMediaKind:
		return m.MediaKind()
	case deletionentry.FieldPath:
		return m.Path()
	case deletionentry.FieldTmdbID:
		return m.TmdbID()
	case deletionentry.FieldSeason:
		return m.Season()
	case deletionentry.FieldEpisode:
		return m.Episode()
	case deletionentry.FieldImageURL:
		return m.ImageURL()
	case deletionentry.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeletionEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deletionentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deletionentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case deletionentry.FieldUniqueKey:
		return m.OldUniqueKey(ctx)
	case deletionentry.FieldTitle:
		return m.OldTitle(ctx)
	case deletionentry.FieldMediaKind:
		return m.OldMediaKind(ctx)
	case deletionentry.FieldPath:
		return m.OldPath(ctx)
	case deletionentry.FieldTmdbID:
		return m.OldTmdbID(ctx)
	case deletionentry.FieldSeason:
		return m.OldSeason(ctx)
	case deletionentry.FieldEpisode:
		return m.OldEpisode(ctx)
	case deletionentry.FieldImageURL:
		return m.OldImageURL(ctx)
	case deletionentry.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeletionEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeletionEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deletionentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deletionentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case deletionentry.FieldUniqueKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueKey(v)
		return nil
	case deletionentry.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case deletionentry.FieldMediaKind:
		v, ok := value.(deletionentry.MediaKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaKind(v)
		return nil
	case deletionentry.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case deletionentry.FieldTmdbID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTmdbID(v)
		return nil
	case deletionentry.FieldSeason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeason(v)
		return nil
	case deletionentry.FieldEpisode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEpisode(v)
		return nil
	case deletionentry.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case deletionentry.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeletionEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeletionEntryMutation) AddedFields() []string {
	var fields []string
	if m.addtmdb_id != nil {
		fields = append(fields, deletionentry.FieldTmdbID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeletionEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deletionentry.FieldTmdbID:
		return m.AddedTmdbID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeletionEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deletionentry.FieldTmdbID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTmdbID(v)
		return nil
	}
	return fmt.Errorf("unknown DeletionEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeletionEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeletionEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeletionEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DeletionEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeletionEntryMutation) ResetField(name string) error {
	switch name {
	case deletionentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deletionentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case deletionentry.FieldUniqueKey:
		m.ResetUniqueKey()
		return nil
	case deletionentry.FieldTitle:
		m.ResetTitle()
		return nil
	case deletionentry.FieldMediaKind:
		m.ResetMediaKind()
		return nil
	case deletionentry.FieldPath:
		m.ResetPath()
		return nil
	case deletionentry.FieldTmdbID:
		m.ResetTmdbID()
		return nil
	case deletionentry.FieldSeason:
		m.ResetSeason()
		return nil
	case deletionentry.FieldEpisode:
		m.ResetEpisode()
		return nil
	case deletionentry.FieldImageURL:
		m.ResetImageURL()
		return nil
	case deletionentry.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown DeletionEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeletionEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeletionEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeletionEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeletionEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeletionEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeletionEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeletionEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeletionEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeletionEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeletionEntry edge %s", name)
}

// DownloadFileMutation represents an operation that mutates the DownloadFile nodes in the graph.
type DownloadFileMutation struct {
	config
	op            Op
	typ           string
	id            *ulid.ULID
	created_at    *time.Time
	updated_at    *time.Time
	download_hash *string
	downloader    *string
	file_path     *string
	full_path     *string
	state         *int
	addstate      *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DownloadFile, error)
	predicates    []predicate.DownloadFile
}

var _ ent.Mutation = (*DownloadFileMutation)(nil)

// downloadfileOption allows management of the mutation configuration using functional options.
type downloadfileOption func(*DownloadFileMutation)

// newDownloadFileMutation creates new mutation for the DownloadFile entity.
func newDownloadFileMutation(c config, op Op, opts ...downloadfileOption) *DownloadFileMutation {
	m := &DownloadFileMutation{
		config:        c,
		op:            op,
		typ:           TypeDownloadFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDownloadFileID sets the ID field of the mutation.
func withDownloadFileID(id ulid.ULID) downloadfileOption {
	return func(m *DownloadFileMutation) {
		var (
			err   error
			once  sync.Once
			value *DownloadFile
		)
		m.oldValue = func(ctx context.Context) (*DownloadFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DownloadFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDownloadFile sets the old DownloadFile of the mutation.
func withDownloadFile(node *DownloadFile) downloadfileOption {
	return func(m *DownloadFileMutation) {
		m.oldValue = func(context.Context) (*DownloadFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DownloadFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DownloadFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DownloadFile entities.
func (m *DownloadFileMutation) SetID(id ulid.ULID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DownloadFileMutation) ID() (id ulid.ULID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DownloadFileMutation) IDs(ctx context.Context) ([]ulid.ULID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ULID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DownloadFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DownloadFileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DownloadFileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DownloadFile entity.
// If the DownloadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DownloadFileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DownloadFileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DownloadFileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DownloadFileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DownloadFile entity.
// If the DownloadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DownloadFileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DownloadFileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDownloadHash sets the "download_hash" field.
func (m *DownloadFileMutation) SetDownloadHash(s string) {
	m.download_hash = &s
}

// DownloadHash returns the value of the "download_hash" field in the mutation.
func (m *DownloadFileMutation) DownloadHash() (r string, exists bool) {
	v := m.download_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldDownloadHash returns the old "download_hash" field's value of the DownloadFile entity.
// If the DownloadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DownloadFileMutation) OldDownloadHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDownloadHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDownloadHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDownloadHash: %w", err)
	}
	return oldValue.DownloadHash, nil
}

// ResetDownloadHash resets all changes to the "download_hash" field.
func (m *DownloadFileMutation) ResetDownloadHash() {
	m.download_hash = nil
}

// SetDownloader sets the "downloader" field.
func (m *DownloadFileMutation) SetDownloader(s string) {
	m.downloader = &s
}

// Downloader returns the value of the "downloader" field in the mutation.
func (m *DownloadFileMutation) Downloader() (r string, exists bool) {
	v := m.downloader
	if v == nil {
		return
	}
	return *v, true
}

// OldDownloader returns the old "downloader" field's value of the DownloadFile entity.
// If the DownloadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DownloadFileMutation) OldDownloader(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDownloader is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDownloader requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDownloader: %w", err)
	}
	return oldValue.Downloader, nil
}

// ResetDownloader resets all changes to the "downloader" field.
func (m *DownloadFileMutation) ResetDownloader() {
	m.downloader = nil
}

// SetFilePath sets the "file_path" field.
func (m *DownloadFileMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *DownloadFileMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the DownloadFile entity.
// If the DownloadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DownloadFileMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *DownloadFileMutation) ResetFilePath() {
	m.file_path = nil
}

// SetFullPath sets the "full_path" field.
func (m *DownloadFileMutation) SetFullPath(s string) {
	m.full_path = &s
}

// FullPath returns the value of the "full_path" field in the mutation.
func (m *DownloadFileMutation) FullPath() (r string, exists bool) {
	v := m.full_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFullPath returns the old "full_path" field's value of the DownloadFile entity.
// If the DownloadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DownloadFileMutation) OldFullPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullPath: %w", err)
	}
	return oldValue.FullPath, nil
}

// ResetFullPath resets all changes to the "full_path" field.
func (m *DownloadFileMutation) ResetFullPath() {
	m.full_path = nil
}

// SetState sets the "state" field.
func (m *DownloadFileMutation) SetState(i int) {
	m.state = &i
	m.addstate = nil
}

// State returns the value of the "state" field in the mutation.
func (m *DownloadFileMutation) State() (r int, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the DownloadFile entity.
// If the DownloadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DownloadFileMutation) OldState(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// AddState adds i to the "state" field.
func (m *DownloadFileMutation) AddState(i int) {
	if m.addstate != nil {
		*m.addstate += i
	} else {
		m.addstate = &i
	}
}

// AddedState returns the value that was added to the "state" field in this mutation.
func (m *DownloadFileMutation) AddedState() (r int, exists bool) {
	v := m.addstate
	if v == nil {
		return
	}
	return *v, true
}

// ResetState resets all changes to the "state" field.
func (m *DownloadFileMutation) ResetState() {
	m.state = nil
	m.addstate = nil
}

// Where appends a list predicates to the DownloadFileMutation builder.
func (m *DownloadFileMutation) Where(ps ...predicate.DownloadFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DownloadFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DownloadFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DownloadFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DownloadFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DownloadFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DownloadFile).
func (m *DownloadFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DownloadFileMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, downloadfile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, downloadfile.FieldUpdatedAt)
	}
	if m.download_hash != nil {
		fields = append(fields, downloadfile.FieldDownloadHash)
	}
	if m.downloader != nil {
		fields = append(fields, downloadfile.FieldDownloader)
	}
	if m.file_path != nil {
		fields = append(fields, downloadfile.FieldFilePath)
	}
	if m.full_path != nil {
		fields = append(fields, downloadfile.FieldFullPath)
	}
	if m.state != nil {
		fields = append(fields, downloadfile.FieldState)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DownloadFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case downloadfile.FieldCreatedAt:
		return m.CreatedAt()
	case downloadfile.FieldUpdatedAt:
		return m.UpdatedAt()
	case downloadfile.FieldDownloadHash:
		return m.DownloadHash()
	case downloadfile.FieldDownloader:
		return m.Downloader()
	case downloadfile.FieldFilePath:
		return m.FilePath()
	case downloadfile.FieldFullPath:
		return m.FullPath()
	case downloadfile.FieldState:
		return m.State()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DownloadFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case downloadfile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case downloadfile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case downloadfile.FieldDownloadHash:
		return m.OldDownloadHash(ctx)
	case downloadfile.FieldDownloader:
		return m.OldDownloader(ctx)
	case downloadfile.FieldFilePath:
		return m.OldFilePath(ctx)
	case downloadfile.FieldFullPath:
		return m.OldFullPath(ctx)
	case downloadfile.FieldState:
		return m.OldState(ctx)
	}
	return nil, fmt.Errorf("unknown DownloadFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DownloadFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case downloadfile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case downloadfile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case downloadfile.FieldDownloadHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDownloadHash(v)
		return nil
	case downloadfile.FieldDownloader:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDownloader(v)
		return nil
	case downloadfile.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case downloadfile.FieldFullPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullPath(v)
		return nil
	case downloadfile.FieldState:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	}
	return fmt.Errorf("unknown DownloadFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DownloadFileMutation) AddedFields() []string {
	var fields []string
	if m.addstate != nil {
		fields = append(fields, downloadfile.FieldState)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DownloadFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case downloadfile.FieldState:
		return m.AddedState()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DownloadFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case downloadfile.FieldState:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddState(v)
		return nil
	}
	return fmt.Errorf("unknown DownloadFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DownloadFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DownloadFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DownloadFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DownloadFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DownloadFileMutation) ResetField(name string) error {
	switch name {
	case downloadfile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case downloadfile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case downloadfile.FieldDownloadHash:
		m.ResetDownloadHash()
		return nil
	case downloadfile.FieldDownloader:
		m.ResetDownloader()
		return nil
	case downloadfile.FieldFilePath:
		m.ResetFilePath()
		return nil
	case downloadfile.FieldFullPath:
		m.ResetFullPath()
		return nil
	case downloadfile.FieldState:
		m.ResetState()
		return nil
	}
	return fmt.Errorf("unknown DownloadFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DownloadFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DownloadFileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DownloadFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DownloadFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DownloadFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DownloadFileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DownloadFileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DownloadFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DownloadFileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DownloadFile edge %s", name)
}

// ScanMarkMutation represents an operation that mutates the ScanMark nodes in the graph.
type ScanMarkMutation struct {
	config
	op            Op
	typ           string
	id            *ulid.ULID
	created_at    *time.Time
	updated_at    *time.Time
	server        *string
	last_seen     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ScanMark, error)
	predicates    []predicate.ScanMark
}

var _ ent.Mutation = (*ScanMarkMutation)(nil)

// scanmarkOption allows management of the mutation configuration using functional options.
type scanmarkOption func(*ScanMarkMutation)

// newScanMarkMutation creates new mutation for the ScanMark entity.
func newScanMarkMutation(c config, op Op, opts ...scanmarkOption) *ScanMarkMutation {
	m := &ScanMarkMutation{
		config:        c,
		op:            op,
		typ:           TypeScanMark,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScanMarkID sets the ID field of the mutation.
func withScanMarkID(id ulid.ULID) scanmarkOption {
	return func(m *ScanMarkMutation) {
		var (
			err   error
			once  sync.Once
			value *ScanMark
		)
		m.oldValue = func(ctx context.Context) (*ScanMark, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScanMark.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScanMark sets the old ScanMark of the mutation.
func withScanMark(node *ScanMark) scanmarkOption {
	return func(m *ScanMarkMutation) {
		m.oldValue = func(context.Context) (*ScanMark, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScanMarkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScanMarkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScanMark entities.
func (m *ScanMarkMutation) SetID(id ulid.ULID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScanMarkMutation) ID() (id ulid.ULID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScanMarkMutation) IDs(ctx context.Context) ([]ulid.ULID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ULID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScanMark.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ScanMarkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScanMarkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScanMark entity.
// If the ScanMark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMarkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScanMarkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScanMarkMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScanMarkMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ScanMark entity.
// If the ScanMark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMarkMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScanMarkMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetServer sets the "server" field.
func (m *ScanMarkMutation) SetServer(s string) {
	m.server = &s
}

// Server returns the value of the "server" field in the mutation.
func (m *ScanMarkMutation) Server() (r string, exists bool) {
	v := m.server
	if v == nil {
		return
	}
	return *v, true
}

// OldServer returns the old "server" field's value of the ScanMark entity.
// If the ScanMark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMarkMutation) OldServer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServer: %w", err)
	}
	return oldValue.Server, nil
}

// ResetServer resets all changes to the "server" field.
func (m *ScanMarkMutation) ResetServer() {
	m.server = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *ScanMarkMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *ScanMarkMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the ScanMark entity.
// If the ScanMark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMarkMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *ScanMarkMutation) ResetLastSeen() {
	m.last_seen = nil
}

// Where appends a list predicates to the ScanMarkMutation builder.
func (m *ScanMarkMutation) Where(ps ...predicate.ScanMark) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScanMarkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScanMarkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScanMark, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScanMarkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScanMarkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScanMark).
func (m *ScanMarkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScanMarkMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, scanmark.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scanmark.FieldUpdatedAt)
	}
	if m.server != nil {
		fields = append(fields, scanmark.FieldServer)
	}
	if m.last_seen != nil {
		fields = append(fields, scanmark.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScanMarkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scanmark.FieldCreatedAt:
		return m.CreatedAt()
	case scanmark.FieldUpdatedAt:
		return m.UpdatedAt()
	case scanmark.FieldServer:
		return m.Server()
	case scanmark.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScanMarkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scanmark.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scanmark.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case scanmark.FieldServer:
		return m.OldServer(ctx)
	case scanmark.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown ScanMark field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanMarkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scanmark.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scanmark.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case scanmark.FieldServer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServer(v)
		return nil
	case scanmark.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown ScanMark field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScanMarkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScanMarkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanMarkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScanMark numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScanMarkMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScanMarkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScanMarkMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ScanMark nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScanMarkMutation) ResetField(name string) error {
	switch name {
	case scanmark.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scanmark.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case scanmark.FieldServer:
		m.ResetServer()
		return nil
	case scanmark.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown ScanMark field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScanMarkMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScanMarkMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScanMarkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScanMarkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScanMarkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScanMarkMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScanMarkMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScanMark unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScanMarkMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScanMark edge %s", name)
}

// SeedLinkMutation represents an operation that mutates the SeedLink nodes in the graph.
type SeedLinkMutation struct {
	config
	op            Op
	typ           string
	id            *ulid.ULID
	created_at    *time.Time
	updated_at    *time.Time
	collaborator  *string
	root_hash     *string
	links         *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SeedLink, error)
	predicates    []predicate.SeedLink
}

var _ ent.Mutation = (*SeedLinkMutation)(nil)

// seedlinkOption allows management of the mutation configuration using functional options.
type seedlinkOption func(*SeedLinkMutation)

// newSeedLinkMutation creates new mutation for the SeedLink entity.
func newSeedLinkMutation(c config, op Op, opts ...seedlinkOption) *SeedLinkMutation {
	m := &SeedLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeSeedLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSeedLinkID sets the ID field of the mutation.
func withSeedLinkID(id ulid.ULID) seedlinkOption {
	return func(m *SeedLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *SeedLink
		)
		m.oldValue = func(ctx context.Context) (*SeedLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SeedLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSeedLink sets the old SeedLink of the mutation.
func withSeedLink(node *SeedLink) seedlinkOption {
	return func(m *SeedLinkMutation) {
		m.oldValue = func(context.Context) (*SeedLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SeedLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SeedLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SeedLink entities.
func (m *SeedLinkMutation) SetID(id ulid.ULID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SeedLinkMutation) ID() (id ulid.ULID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SeedLinkMutation) IDs(ctx context.Context) ([]ulid.ULID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ULID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SeedLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SeedLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SeedLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SeedLink entity.
// If the SeedLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeedLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SeedLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SeedLinkMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SeedLinkMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SeedLink entity.
// If the SeedLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeedLinkMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SeedLinkMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCollaborator sets the "collaborator" field.
func (m *SeedLinkMutation) SetCollaborator(s string) {
	m.collaborator = &s
}

// Collaborator returns the value of the "collaborator" field in the mutation.
func (m *SeedLinkMutation) Collaborator() (r string, exists bool) {
	v := m.collaborator
	if v == nil {
		return
	}
	return *v, true
}

// OldCollaborator returns the old "collaborator" field's value of the SeedLink entity.
// If the SeedLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeedLinkMutation) OldCollaborator(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollaborator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollaborator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollaborator: %w", err)
	}
	return oldValue.Collaborator, nil
}

// ResetCollaborator resets all changes to the "collaborator" field.
func (m *SeedLinkMutation) ResetCollaborator() {
	m.collaborator = nil
}

// SetRootHash sets the "root_hash" field.
func (m *SeedLinkMutation) SetRootHash(s string) {
	m.root_hash = &s
}

// RootHash returns the value of the "root_hash" field in the mutation.
func (m *SeedLinkMutation) RootHash() (r string, exists bool) {
	v := m.root_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRootHash returns the old "root_hash" field's value of the SeedLink entity.
// If the SeedLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeedLinkMutation) OldRootHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRootHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRootHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRootHash: %w", err)
	}
	return oldValue.RootHash, nil
}

// ResetRootHash resets all changes to the "root_hash" field.
func (m *SeedLinkMutation) ResetRootHash() {
	m.root_hash = nil
}

// SetLinks sets the "links" field.
func (m *SeedLinkMutation) SetLinks(s string) {
	m.links = &s
}

// Links returns the value of the "links" field in the mutation.
func (m *SeedLinkMutation) Links() (r string, exists bool) {
	v := m.links
	if v == nil {
		return
	}
	return *v, true
}

// OldLinks returns the old "links" field's value of the SeedLink entity.
// If the SeedLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeedLinkMutation) OldLinks(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinks: %w", err)
	}
	return oldValue.Links, nil
}

// ResetLinks resets all changes to the "links" field.
func (m *SeedLinkMutation) ResetLinks() {
	m.links = nil
}

// Where appends a list predicates to the SeedLinkMutation builder.
func (m *SeedLinkMutation) Where(ps ...predicate.SeedLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SeedLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SeedLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SeedLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SeedLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SeedLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SeedLink).
func (m *SeedLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SeedLinkMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, seedlink.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, seedlink.FieldUpdatedAt)
	}
	if m.collaborator != nil {
		fields = append(fields, seedlink.FieldCollaborator)
	}
	if m.root_hash != nil {
		fields = append(fields, seedlink.FieldRootHash)
	}
	if m.links != nil {
		fields = append(fields, seedlink.FieldLinks)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SeedLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case seedlink.FieldCreatedAt:
		return m.CreatedAt()
	case seedlink.FieldUpdatedAt:
		return m.UpdatedAt()
	case seedlink.FieldCollaborator:
		return m.Collaborator()
	case seedlink.FieldRootHash:
		return m.RootHash()
	case seedlink.FieldLinks:
		return m.Links()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SeedLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case seedlink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case seedlink.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case seedlink.FieldCollaborator:
		return m.OldCollaborator(ctx)
	case seedlink.FieldRootHash:
		return m.OldRootHash(ctx)
	case seedlink.FieldLinks:
		return m.OldLinks(ctx)
	}
	return nil, fmt.Errorf("unknown SeedLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SeedLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case seedlink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case seedlink.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case seedlink.FieldCollaborator:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollaborator(v)
		return nil
	case seedlink.FieldRootHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRootHash(v)
		return nil
	case seedlink.FieldLinks:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinks(v)
		return nil
	}
	return fmt.Errorf("unknown SeedLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SeedLinkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SeedLinkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SeedLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SeedLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SeedLinkMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SeedLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SeedLinkMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SeedLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SeedLinkMutation) ResetField(name string) error {
	switch name {
	case seedlink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case seedlink.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case seedlink.FieldCollaborator:
		m.ResetCollaborator()
		return nil
	case seedlink.FieldRootHash:
		m.ResetRootHash()
		return nil
	case seedlink.FieldLinks:
		m.ResetLinks()
		return nil
	}
	return fmt.Errorf("unknown SeedLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SeedLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SeedLinkMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SeedLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SeedLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SeedLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SeedLinkMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SeedLinkMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SeedLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SeedLinkMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SeedLink edge %s", name)
}

// TransferRecordMutation represents an operation that mutates the TransferRecord nodes in the graph.
type TransferRecordMutation struct {
	config
	op             Op
	typ            string
	id             *ulid.ULID
	created_at     *time.Time
	updated_at     *time.Time
	media_kind     *transferrecord.MediaKind
	title          *string
	dest_path      *string
	source_path    *string
	tmdb_id        *int
	addtmdb_id     *int
	season         *string
	episode        *string
	download_hash  *string
	downloader     *string
	transferred_at *time.Time
	image_url      *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*TransferRecord, error)
	predicates     []predicate.TransferRecord
}

var _ ent.Mutation = (*TransferRecordMutation)(nil)

// transferrecordOption allows management of the mutation configuration using functional options.
type transferrecordOption func(*TransferRecordMutation)

// newTransferRecordMutation creates new mutation for the TransferRecord entity.
func newTransferRecordMutation(c config, op Op, opts ...transferrecordOption) *TransferRecordMutation {
	m := &TransferRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeTransferRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransferRecordID sets the ID field of the mutation.
func withTransferRecordID(id ulid.ULID) transferrecordOption {
	return func(m *TransferRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *TransferRecord
		)
		m.oldValue = func(ctx context.Context) (*TransferRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TransferRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransferRecord sets the old TransferRecord of the mutation.
func withTransferRecord(node *TransferRecord) transferrecordOption {
	return func(m *TransferRecordMutation) {
		m.oldValue = func(context.Context) (*TransferRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransferRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransferRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TransferRecord entities.
func (m *TransferRecordMutation) SetID(id ulid.ULID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransferRecordMutation) ID() (id ulid.ULID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransferRecordMutation) IDs(ctx context.Context) ([]ulid.ULID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ULID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TransferRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TransferRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TransferRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TransferRecord entity.
// If the TransferRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TransferRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TransferRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TransferRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TransferRecord entity.
// If the TransferRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TransferRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetMediaKind sets the "media_kind" field.
func (m *TransferRecordMutation) SetMediaKind(tk transferrecord.MediaKind) {
	m.media_kind = &tk
}

// MediaKind returns the value of the "media_kind" field in the mutation.
func (m *TransferRecordMutation) MediaKind() (r transferrecord.MediaKind, exists bool) {
	v := m.media_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaKind returns the old "media_kind" field's value of the TransferRecord entity.
// If the TransferRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferRecordMutation) OldMediaKind(ctx context.Context) (v transferrecord.MediaKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaKind: %w", err)
	}
	return oldValue.MediaKind, nil
}

// ResetMediaKind resets all changes to the "media_kind" field.
func (m *TransferRecordMutation) ResetMediaKind() {
	m.media_kind = nil
}

// SetTitle sets the "title" field.
func (m *TransferRecordMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TransferRecordMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the TransferRecord entity.
// If the TransferRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferRecordMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TransferRecordMutation) ResetTitle() {
	m.title = nil
}

// SetDestPath sets the "dest_path" field.
func (m *TransferRecordMutation) SetDestPath(s string) {
	m.dest_path = &s
}

// DestPath returns the value of the "dest_path" field in the mutation.
func (m *TransferRecordMutation) DestPath() (r string, exists bool) {
	v := m.dest_path
	if v == nil {
		return
	}
	return *v, true
}

// OldDestPath returns the old "dest_path" field's value of the TransferRecord entity.
// If the TransferRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferRecordMutation) OldDestPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestPath: %w", err)
	}
	return oldValue.DestPath, nil
}

// ResetDestPath resets all changes to the "dest_path" field.
func (m *TransferRecordMutation) ResetDestPath() {
	m.dest_path = nil
}

// SetSourcePath sets the "source_path" field.
func (m *TransferRecordMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *TransferRecordMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the TransferRecord entity.
// If the TransferRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferRecordMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *TransferRecordMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetTmdbID sets the "tmdb_id" field.
func (m *TransferRecordMutation) SetTmdbID(i int) {
	m.tmdb_id = &i
	m.addtmdb_id = nil
}

// TmdbID returns the value of the "tmdb_id" field in the mutation.
func (m *TransferRecordMutation) TmdbID() (r int, exists bool) {
	v := m.tmdb_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTmdbID returns the old "tmdb_id" field's value of the TransferRecord entity.
// If the TransferRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferRecordMutation) OldTmdbID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTmdbID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTmdbID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTmdbID: %w", err)
	}
	return oldValue.TmdbID, nil
}

// AddTmdbID adds i to the "tmdb_id" field.
func (m *TransferRecordMutation) AddTmdbID(i int) {
	if m.addtmdb_id != nil {
		*m.addtmdb_id += i
	} else {
		m.addtmdb_id = &i
	}
}

// AddedTmdbID returns the value that was added to the "tmdb_id" field in this mutation.
func (m *TransferRecordMutation) AddedTmdbID() (r int, exists bool) {
	v := m.addtmdb_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTmdbID resets all changes to the "tmdb_id" field.
func (m *TransferRecordMutation) ResetTmdbID() {
	m.tmdb_id = nil
	m.addtmdb_id = nil
}

// SetSeason sets the "season" field.
func (m *TransferRecordMutation) SetSeason(s string) {
	m.season = &s
}

// Season returns the value of the "season" field in the mutation.
func (m *TransferRecordMutation) Season() (r string, exists bool) {
	v := m.season
	if v == nil {
		return
	}
	return *v, true
}

// OldSeason returns the old "season" field's value of the TransferRecord entity.
// If the TransferRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferRecordMutation) OldSeason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeason: %w", err)
	}
	return oldValue.Season, nil
}

// ResetSeason resets all changes to the "season" field.
func (m *TransferRecordMutation) ResetSeason() {
	m.season = nil
}

// SetEpisode sets the "episode" field.
func (m *TransferRecordMutation) SetEpisode(s string) {
	m.episode = &s
}

// Episode returns the value of the "episode" field in the mutation.
func (m *TransferRecordMutation) Episode() (r string, exists bool) {
	v := m.episode
	if v == nil {
		return
	}
	return *v, true
}

// OldEpisode returns the old "episode" field's value of the TransferRecord entity.
// If the TransferRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferRecordMutation) OldEpisode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEpisode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEpisode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEpisode: %w", err)
	}
	return oldValue.Episode, nil
}

// ResetEpisode resets all changes to the "episode" field.
func (m *TransferRecordMutation) ResetEpisode() {
	m.episode = nil
}

// SetDownloadHash sets the "download_hash" field.
func (m *TransferRecordMutation) SetDownloadHash(s string) {
	m.download_hash = &s
}

// DownloadHash returns the value of the "download_hash" field in the mutation.
func (m *TransferRecordMutation) DownloadHash() (r string, exists bool) {
	v := m.download_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldDownloadHash returns the old "download_hash" field's value of the TransferRecord entity.
// If the TransferRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferRecordMutation) OldDownloadHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDownloadHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDownloadHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDownloadHash: %w", err)
	}
	return oldValue.DownloadHash, nil
}

// ResetDownloadHash resets all changes to the "download_hash" field.
func (m *TransferRecordMutation) ResetDownloadHash() {
	m.download_hash = nil
}

// SetDownloader sets the "downloader" field.
func (m *TransferRecordMutation) SetDownloader(s string) {
	m.downloader = &s
}

// Downloader returns the value of the "downloader" field in the mutation.
func (m *TransferRecordMutation) Downloader() (r string, exists bool) {
	v := m.downloader
	if v == nil {
		return
	}
	return *v, true
}

// OldDownloader returns the old "downloader" field's value of the TransferRecord entity.
// If the TransferRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferRecordMutation) OldDownloader(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDownloader is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDownloader requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDownloader: %w", err)
	}
	return oldValue.Downloader, nil
}

// ResetDownloader resets all changes to the "downloader" field.
func (m *TransferRecordMutation) ResetDownloader() {
	m.downloader = nil
}

// SetTransferredAt sets the "transferred_at" field.
func (m *TransferRecordMutation) SetTransferredAt(t time.Time) {
	m.transferred_at = &t
}

// TransferredAt returns the value of the "transferred_at" field in the mutation.
func (m *TransferRecordMutation) TransferredAt() (r time.Time, exists bool) {
	v := m.transferred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTransferredAt returns the old "transferred_at" field's value of the TransferRecord entity.
// If the TransferRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferRecordMutation) OldTransferredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransferredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransferredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransferredAt: %w", err)
	}
	return oldValue.TransferredAt, nil
}

// ResetTransferredAt resets all changes to the "transferred_at" field.
func (m *TransferRecordMutation) ResetTransferredAt() {
	m.transferred_at = nil
}

// SetImageURL sets the "image_url" field.
func (m *TransferRecordMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *TransferRecordMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the TransferRecord entity.
// If the TransferRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferRecordMutation) OldImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *TransferRecordMutation) ResetImageURL() {
	m.image_url = nil
}

// Where appends a list predicates to the TransferRecordMutation builder.
func (m *TransferRecordMutation) Where(ps ...predicate.TransferRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransferRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransferRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TransferRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransferRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransferRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TransferRecord).
func (m *TransferRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransferRecordMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, transferrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, transferrecord.FieldUpdatedAt)
	}
	if m.media_kind != nil {
		fields = append(fields, transferrecord.FieldMediaKind)
	}
	if m.title != nil {
		fields = append(fields, transferrecord.FieldTitle)
	}
	if m.dest_path != nil {
		fields = append(fields, transferrecord.FieldDestPath)
	}
	if m.source_path != nil {
		fields = append(fields, transferrecord.FieldSourcePath)
	}
	if m.tmdb_id != nil {
		fields = append(fields, transferrecord.FieldTmdbID)
	}
	if m.season != nil {
		fields = append(fields, transferrecord.FieldSeason)
	}
	if m.episode != nil {
		fields = append(fields, transferrecord.FieldEpisode)
	}
	if m.download_hash != nil {
		fields = append(fields, transferrecord.FieldDownloadHash)
	}
	if m.downloader != nil {
		fields = append(fields, transferrecord.FieldDownloader)
	}
	if m.transferred_at != nil {
		fields = append(fields, transferrecord.FieldTransferredAt)
	}
	if m.image_url != nil {
		fields = append(fields, transferrecord.FieldImageURL)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransferRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transferrecord.FieldCreatedAt:
		return m.CreatedAt()
	case transferrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	case transferrecord.FieldMediaKind:
		return m.MediaKind()
	case transferrecord.FieldTitle:
		return m.Title()
	case transferrecord.FieldDestPath:
		return m.DestPath()
	case transferrecord.FieldSourcePath:
		return m.SourcePath()
	case transferrecord.FieldTmdbID:
		return m.TmdbID()
	case transferrecord.FieldSeason:
		return m.Season()
	case transferrecord.FieldEpisode:
		return m.Episode()
	case transferrecord.FieldDownloadHash:
		return m.DownloadHash()
	case transferrecord.FieldDownloader:
		return m.Downloader()
	case transferrecord.FieldTransferredAt:
		return m.TransferredAt()
	case transferrecord.FieldImageURL:
		return m.ImageURL()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransferRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transferrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case transferrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case transferrecord.FieldMediaKind:
		return m.OldMediaKind(ctx)
	case transferrecord.FieldTitle:
		return m.OldTitle(ctx)
	case transferrecord.FieldDestPath:
		return m.OldDestPath(ctx)
	case transferrecord.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case transferrecord.FieldTmdbID:
		return m.OldTmdbID(ctx)
	case transferrecord.FieldSeason:
		return m.OldSeason(ctx)
	case transferrecord.FieldEpisode:
		return m.OldEpisode(ctx)
	case transferrecord.FieldDownloadHash:
		return m.OldDownloadHash(ctx)
	case transferrecord.FieldDownloader:
		return m.OldDownloader(ctx)
	case transferrecord.FieldTransferredAt:
		return m.OldTransferredAt(ctx)
	case transferrecord.FieldImageURL:
		return m.OldImageURL(ctx)
	}
	return nil, fmt.Errorf("unknown TransferRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransferRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transferrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case transferrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case transferrecord.FieldMediaKind:
		v, ok := value.(transferrecord.MediaKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaKind(v)
		return nil
	case transferrecord.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case transferrecord.FieldDestPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestPath(v)
		return nil
	case transferrecord.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case transferrecord.FieldTmdbID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTmdbID(v)
		return nil
	case transferrecord.FieldSeason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeason(v)
		return nil
	case transferrecord.FieldEpisode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEpisode(v)
		return nil
	case transferrecord.FieldDownloadHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDownloadHash(v)
		return nil
	case transferrecord.FieldDownloader:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDownloader(v)
		return nil
	case transferrecord.FieldTransferredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransferredAt(v)
		return nil
	case transferrecord.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	}
	return fmt.Errorf("unknown TransferRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransferRecordMutation) AddedFields() []string {
	var fields []string
	if m.addtmdb_id != nil {
		fields = append(fields, transferrecord.FieldTmdbID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransferRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transferrecord.FieldTmdbID:
		return m.AddedTmdbID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransferRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transferrecord.FieldTmdbID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTmdbID(v)
		return nil
	}
	return fmt.Errorf("unknown TransferRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransferRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransferRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransferRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TransferRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransferRecordMutation) ResetField(name string) error {
	switch name {
	case transferrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case transferrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case transferrecord.FieldMediaKind:
		m.ResetMediaKind()
		return nil
	case transferrecord.FieldTitle:
		m.ResetTitle()
		return nil
	case transferrecord.FieldDestPath:
		m.ResetDestPath()
		return nil
	case transferrecord.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case transferrecord.FieldTmdbID:
		m.ResetTmdbID()
		return nil
	case transferrecord.FieldSeason:
		m.ResetSeason()
		return nil
	case transferrecord.FieldEpisode:
		m.ResetEpisode()
		return nil
	case transferrecord.FieldDownloadHash:
		m.ResetDownloadHash()
		return nil
	case transferrecord.FieldDownloader:
		m.ResetDownloader()
		return nil
	case transferrecord.FieldTransferredAt:
		m.ResetTransferredAt()
		return nil
	case transferrecord.FieldImageURL:
		m.ResetImageURL()
		return nil
	}
	return fmt.Errorf("unknown TransferRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransferRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransferRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransferRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransferRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransferRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransferRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransferRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TransferRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransferRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TransferRecord edge %s", name)
}
