// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediareap/mediareap/internal/ent/generated/transferrecord"
	ulid "github.com/oklog/ulid/v2"
)

// TransferRecordCreate is the builder for creating a TransferRecord entity.
type TransferRecordCreate struct {
	config
	mutation *TransferRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TransferRecordCreate) SetCreatedAt(v time.Time) *TransferRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TransferRecordCreate) SetNillableCreatedAt(v *time.Time) *TransferRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TransferRecordCreate) SetUpdatedAt(v time.Time) *TransferRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TransferRecordCreate) SetNillableUpdatedAt(v *time.Time) *TransferRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetMediaKind sets the "media_kind" field.
func (_c *TransferRecordCreate) SetMediaKind(v transferrecord.MediaKind) *TransferRecordCreate {
	_c.mutation.SetMediaKind(v)
	return _c
}

// SetNillableMediaKind sets the "media_kind" field if the given value is not nil.
func (_c *TransferRecordCreate) SetNillableMediaKind(v *transferrecord.MediaKind) *TransferRecordCreate {
	if v != nil {
		_c.SetMediaKind(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *TransferRecordCreate) SetTitle(v string) *TransferRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDestPath sets the "dest_path" field.
func (_c *TransferRecordCreate) SetDestPath(v string) *TransferRecordCreate {
	_c.mutation.SetDestPath(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *TransferRecordCreate) SetSourcePath(v string) *TransferRecordCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_c *TransferRecordCreate) SetNillableSourcePath(v *string) *TransferRecordCreate {
	if v != nil {
		_c.SetSourcePath(*v)
	}
	return _c
}

// SetTmdbID sets the "tmdb_id" field.
func (_c *TransferRecordCreate) SetTmdbID(v int) *TransferRecordCreate {
	_c.mutation.SetTmdbID(v)
	return _c
}

// SetNillableTmdbID sets the "tmdb_id" field if the given value is not nil.
func (_c *TransferRecordCreate) SetNillableTmdbID(v *int) *TransferRecordCreate {
	if v != nil {
		_c.SetTmdbID(*v)
	}
	return _c
}

// SetSeason sets the "season" field.
func (_c *TransferRecordCreate) SetSeason(v string) *TransferRecordCreate {
	_c.mutation.SetSeason(v)
	return _c
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_c *TransferRecordCreate) SetNillableSeason(v *string) *TransferRecordCreate {
	if v != nil {
		_c.SetSeason(*v)
	}
	return _c
}

// SetEpisode sets the "episode" field.
func (_c *TransferRecordCreate) SetEpisode(v string) *TransferRecordCreate {
	_c.mutation.SetEpisode(v)
	return _c
}

// SetNillableEpisode sets the "episode" field if the given value is not nil.
func (_c *TransferRecordCreate) SetNillableEpisode(v *string) *TransferRecordCreate {
	if v != nil {
		_c.SetEpisode(*v)
	}
	return _c
}

// SetDownloadHash sets the "download_hash" field.
func (_c *TransferRecordCreate) SetDownloadHash(v string) *TransferRecordCreate {
	_c.mutation.SetDownloadHash(v)
	return _c
}

// SetNillableDownloadHash sets the "download_hash" field if the given value is not nil.
func (_c *TransferRecordCreate) SetNillableDownloadHash(v *string) *TransferRecordCreate {
	if v != nil {
		_c.SetDownloadHash(*v)
	}
	return _c
}

// SetDownloader sets the "downloader" field.
func (_c *TransferRecordCreate) SetDownloader(v string) *TransferRecordCreate {
	_c.mutation.SetDownloader(v)
	return _c
}

// SetNillableDownloader sets the "downloader" field if the given value is not nil.
func (_c *TransferRecordCreate) SetNillableDownloader(v *string) *TransferRecordCreate {
	if v != nil {
		_c.SetDownloader(*v)
	}
	return _c
}

// SetTransferredAt sets the "transferred_at" field.
func (_c *TransferRecordCreate) SetTransferredAt(v time.Time) *TransferRecordCreate {
	_c.mutation.SetTransferredAt(v)
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *TransferRecordCreate) SetImageURL(v string) *TransferRecordCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_c *TransferRecordCreate) SetNillableImageURL(v *string) *TransferRecordCreate {
	if v != nil {
		_c.SetImageURL(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TransferRecordCreate) SetID(v ulid.ULID) *TransferRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TransferRecordCreate) SetNillableID(v *ulid.ULID) *TransferRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TransferRecordMutation object of the builder.
func (_c *TransferRecordCreate) Mutation() *TransferRecordMutation {
	return _c.mutation
}

// Save creates the TransferRecord in the database.
func (_c *TransferRecordCreate) Save(ctx context.Context) (*TransferRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TransferRecordCreate) SaveX(ctx context.Context) *TransferRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransferRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransferRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TransferRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transferrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := transferrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MediaKind(); !ok {
		v := transferrecord.DefaultMediaKind
		_c.mutation.SetMediaKind(v)
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		v := transferrecord.DefaultSourcePath
		_c.mutation.SetSourcePath(v)
	}
	if _, ok := _c.mutation.TmdbID(); !ok {
		v := transferrecord.DefaultTmdbID
		_c.mutation.SetTmdbID(v)
	}
	if _, ok := _c.mutation.Season(); !ok {
		v := transferrecord.DefaultSeason
		_c.mutation.SetSeason(v)
	}
	if _, ok := _c.mutation.Episode(); !ok {
		v := transferrecord.DefaultEpisode
		_c.mutation.SetEpisode(v)
	}
	if _, ok := _c.mutation.DownloadHash(); !ok {
		v := transferrecord.DefaultDownloadHash
		_c.mutation.SetDownloadHash(v)
	}
	if _, ok := _c.mutation.Downloader(); !ok {
		v := transferrecord.DefaultDownloader
		_c.mutation.SetDownloader(v)
	}
	if _, ok := _c.mutation.ImageURL(); !ok {
		v := transferrecord.DefaultImageURL
		_c.mutation.SetImageURL(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := transferrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TransferRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "TransferRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "TransferRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.MediaKind(); !ok {
		return &ValidationError{Name: "media_kind", err: errors.New(`generated: missing required field "TransferRecord.media_kind"`)}
	}
	if v, ok := _c.mutation.MediaKind(); ok {
		if err := transferrecord.MediaKindValidator(v); err != nil {
			return &ValidationError{Name: "media_kind", err: fmt.Errorf(`generated: validator failed for field "TransferRecord.media_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`generated: missing required field "TransferRecord.title"`)}
	}
	if _, ok := _c.mutation.DestPath(); !ok {
		return &ValidationError{Name: "dest_path", err: errors.New(`generated: missing required field "TransferRecord.dest_path"`)}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`generated: missing required field "TransferRecord.source_path"`)}
	}
	if _, ok := _c.mutation.TmdbID(); !ok {
		return &ValidationError{Name: "tmdb_id", err: errors.New(`generated: missing required field "TransferRecord.tmdb_id"`)}
	}
	if _, ok := _c.mutation.Season(); !ok {
		return &ValidationError{Name: "season", err: errors.New(`generated: missing required field "TransferRecord.season"`)}
	}
	if _, ok := _c.mutation.Episode(); !ok {
		return &ValidationError{Name: "episode", err: errors.New(`generated: missing required field "TransferRecord.episode"`)}
	}
	if _, ok := _c.mutation.DownloadHash(); !ok {
		return &ValidationError{Name: "download_hash", err: errors.New(`generated: missing required field "TransferRecord.download_hash"`)}
	}
	if _, ok := _c.mutation.Downloader(); !ok {
		return &ValidationError{Name: "downloader", err: errors.New(`generated: missing required field "TransferRecord.downloader"`)}
	}
	if _, ok := _c.mutation.TransferredAt(); !ok {
		return &ValidationError{Name: "transferred_at", err: errors.New(`generated: missing required field "TransferRecord.transferred_at"`)}
	}
	if _, ok := _c.mutation.ImageURL(); !ok {
		return &ValidationError{Name: "image_url", err: errors.New(`generated: missing required field "TransferRecord.image_url"`)}
	}
	return nil
}

func (_c *TransferRecordCreate) sqlSave(ctx context.Context) (*TransferRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*ulid.ULID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TransferRecordCreate) createSpec() (*TransferRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &TransferRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transferrecord.Table, sqlgraph.NewFieldSpec(transferrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transferrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(transferrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.MediaKind(); ok {
		_spec.SetField(transferrecord.FieldMediaKind, field.TypeEnum, value)
		_node.MediaKind = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(transferrecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.DestPath(); ok {
		_spec.SetField(transferrecord.FieldDestPath, field.TypeString, value)
		_node.DestPath = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(transferrecord.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.TmdbID(); ok {
		_spec.SetField(transferrecord.FieldTmdbID, field.TypeInt, value)
		_node.TmdbID = value
	}
	if value, ok := _c.mutation.Season(); ok {
		_spec.SetField(transferrecord.FieldSeason, field.TypeString, value)
		_node.Season = value
	}
	if value, ok := _c.mutation.Episode(); ok {
		_spec.SetField(transferrecord.FieldEpisode, field.TypeString, value)
		_node.Episode = value
	}
	if value, ok := _c.mutation.DownloadHash(); ok {
		_spec.SetField(transferrecord.FieldDownloadHash, field.TypeString, value)
		_node.DownloadHash = value
	}
	if value, ok := _c.mutation.Downloader(); ok {
		_spec.SetField(transferrecord.FieldDownloader, field.TypeString, value)
		_node.Downloader = value
	}
	if value, ok := _c.mutation.TransferredAt(); ok {
		_spec.SetField(transferrecord.FieldTransferredAt, field.TypeTime, value)
		_node.TransferredAt = value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(transferrecord.FieldImageURL, field.TypeString, value)
		_node.ImageURL = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TransferRecord.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TransferRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TransferRecordCreate) OnConflict(opts ...sql.ConflictOption) *TransferRecordUpsertOne {
	_c.conflict = opts
	return &TransferRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TransferRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TransferRecordCreate) OnConflictColumns(columns ...string) *TransferRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TransferRecordUpsertOne{
		create: _c,
	}
}

type (
	// TransferRecordUpsertOne is the builder for "upsert"-ing
	//  one TransferRecord node.
	TransferRecordUpsertOne struct {
		create *TransferRecordCreate
	}

	// TransferRecordUpsert is the "OnConflict" setter.
	TransferRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TransferRecordUpsert) SetUpdatedAt(v time.Time) *TransferRecordUpsert {
	u.Set(transferrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TransferRecordUpsert) UpdateUpdatedAt() *TransferRecordUpsert {
	u.SetExcluded(transferrecord.FieldUpdatedAt)
	return u
}

// SetMediaKind sets the "media_kind" field.
func (u *TransferRecordUpsert) SetMediaKind(v transferrecord.MediaKind) *TransferRecordUpsert {
	u.Set(transferrecord.FieldMediaKind, v)
	return u
}

// UpdateMediaKind sets the "media_kind" field to the value that was provided on create.
func (u *TransferRecordUpsert) UpdateMediaKind() *TransferRecordUpsert {
	u.SetExcluded(transferrecord.FieldMediaKind)
	return u
}

// SetTitle sets the "title" field.
func (u *TransferRecordUpsert) SetTitle(v string) *TransferRecordUpsert {
	u.Set(transferrecord.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TransferRecordUpsert) UpdateTitle() *TransferRecordUpsert {
	u.SetExcluded(transferrecord.FieldTitle)
	return u
}

// SetDestPath sets the "dest_path" field.
func (u *TransferRecordUpsert) SetDestPath(v string) *TransferRecordUpsert {
	u.Set(transferrecord.FieldDestPath, v)
	return u
}

// UpdateDestPath sets the "dest_path" field to the value that was provided on create.
func (u *TransferRecordUpsert) UpdateDestPath() *TransferRecordUpsert {
	u.SetExcluded(transferrecord.FieldDestPath)
	return u
}

// SetSourcePath sets the "source_path" field.
func (u *TransferRecordUpsert) SetSourcePath(v string) *TransferRecordUpsert {
	u.Set(transferrecord.FieldSourcePath, v)
	return u
}

// UpdateSourcePath sets the "source_path" field to the value that was provided on create.
func (u *TransferRecordUpsert) UpdateSourcePath() *TransferRecordUpsert {
	u.SetExcluded(transferrecord.FieldSourcePath)
	return u
}

// SetTmdbID sets the "tmdb_id" field.
func (u *TransferRecordUpsert) SetTmdbID(v int) *TransferRecordUpsert {
	u.Set(transferrecord.FieldTmdbID, v)
	return u
}

// UpdateTmdbID sets the "tmdb_id" field to the value that was provided on create.
func (u *TransferRecordUpsert) UpdateTmdbID() *TransferRecordUpsert {
	u.SetExcluded(transferrecord.FieldTmdbID)
	return u
}

// AddTmdbID adds v to the "tmdb_id" field.
func (u *TransferRecordUpsert) AddTmdbID(v int) *TransferRecordUpsert {
	u.Add(transferrecord.FieldTmdbID, v)
	return u
}

// SetSeason sets the "season" field.
func (u *TransferRecordUpsert) SetSeason(v string) *TransferRecordUpsert {
	u.Set(transferrecord.FieldSeason, v)
	return u
}

// UpdateSeason sets the "season" field to the value that was provided on create.
func (u *TransferRecordUpsert) UpdateSeason() *TransferRecordUpsert {
	u.SetExcluded(transferrecord.FieldSeason)
	return u
}

// SetEpisode sets the "episode" field.
func (u *TransferRecordUpsert) SetEpisode(v string) *TransferRecordUpsert {
	u.Set(transferrecord.FieldEpisode, v)
	return u
}

// UpdateEpisode sets the "episode" field to the value that was provided on create.
func (u *TransferRecordUpsert) UpdateEpisode() *TransferRecordUpsert {
	u.SetExcluded(transferrecord.FieldEpisode)
	return u
}

// SetDownloadHash sets the "download_hash" field.
func (u *TransferRecordUpsert) SetDownloadHash(v string) *TransferRecordUpsert {
	u.Set(transferrecord.FieldDownloadHash, v)
	return u
}

// UpdateDownloadHash sets the "download_hash" field to the value that was provided on create.
func (u *TransferRecordUpsert) UpdateDownloadHash() *TransferRecordUpsert {
	u.SetExcluded(transferrecord.FieldDownloadHash)
	return u
}

// SetDownloader sets the "downloader" field.
func (u *TransferRecordUpsert) SetDownloader(v string) *TransferRecordUpsert {
	u.Set(transferrecord.FieldDownloader, v)
	return u
}

// UpdateDownloader sets the "downloader" field to the value that was provided on create.
func (u *TransferRecordUpsert) UpdateDownloader() *TransferRecordUpsert {
	u.SetExcluded(transferrecord.FieldDownloader)
	return u
}

// SetTransferredAt sets the "transferred_at" field.
func (u *TransferRecordUpsert) SetTransferredAt(v time.Time) *TransferRecordUpsert {
	u.Set(transferrecord.FieldTransferredAt, v)
	return u
}

// UpdateTransferredAt sets the "transferred_at" field to the value that was provided on create.
func (u *TransferRecordUpsert) UpdateTransferredAt() *TransferRecordUpsert {
	u.SetExcluded(transferrecord.FieldTransferredAt)
	return u
}

// SetImageURL sets the "image_url" field.
func (u *TransferRecordUpsert) SetImageURL(v string) *TransferRecordUpsert {
	u.Set(transferrecord.FieldImageURL, v)
	return u
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *TransferRecordUpsert) UpdateImageURL() *TransferRecordUpsert {
	u.SetExcluded(transferrecord.FieldImageURL)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TransferRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(transferrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TransferRecordUpsertOne) UpdateNewValues() *TransferRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(transferrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(transferrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TransferRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TransferRecordUpsertOne) Ignore() *TransferRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TransferRecordUpsertOne) DoNothing() *TransferRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TransferRecordCreate.OnConflict
// documentation for more info.
func (u *TransferRecordUpsertOne) Update(set func(*TransferRecordUpsert)) *TransferRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TransferRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TransferRecordUpsertOne) SetUpdatedAt(v time.Time) *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TransferRecordUpsertOne) UpdateUpdatedAt() *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetMediaKind sets the "media_kind" field.
func (u *TransferRecordUpsertOne) SetMediaKind(v transferrecord.MediaKind) *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetMediaKind(v)
	})
}

// UpdateMediaKind sets the "media_kind" field to the value that was provided on create.
func (u *TransferRecordUpsertOne) UpdateMediaKind() *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateMediaKind()
	})
}

// SetTitle sets the "title" field.
func (u *TransferRecordUpsertOne) SetTitle(v string) *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TransferRecordUpsertOne) UpdateTitle() *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateTitle()
	})
}

// SetDestPath sets the "dest_path" field.
func (u *TransferRecordUpsertOne) SetDestPath(v string) *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetDestPath(v)
	})
}

// UpdateDestPath sets the "dest_path" field to the value that was provided on create.
func (u *TransferRecordUpsertOne) UpdateDestPath() *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateDestPath()
	})
}

// SetSourcePath sets the "source_path" field.
func (u *TransferRecordUpsertOne) SetSourcePath(v string) *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetSourcePath(v)
	})
}

// UpdateSourcePath sets the "source_path" field to the value that was provided on create.
func (u *TransferRecordUpsertOne) UpdateSourcePath() *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateSourcePath()
	})
}

// SetTmdbID sets the "tmdb_id" field.
func (u *TransferRecordUpsertOne) SetTmdbID(v int) *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetTmdbID(v)
	})
}

// AddTmdbID adds v to the "tmdb_id" field.
func (u *TransferRecordUpsertOne) AddTmdbID(v int) *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.AddTmdbID(v)
	})
}

// UpdateTmdbID sets the "tmdb_id" field to the value that was provided on create.
func (u *TransferRecordUpsertOne) UpdateTmdbID() *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateTmdbID()
	})
}

// SetSeason sets the "season" field.
func (u *TransferRecordUpsertOne) SetSeason(v string) *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetSeason(v)
	})
}

// UpdateSeason sets the "season" field to the value that was provided on create.
func (u *TransferRecordUpsertOne) UpdateSeason() *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateSeason()
	})
}

// SetEpisode sets the "episode" field.
func (u *TransferRecordUpsertOne) SetEpisode(v string) *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetEpisode(v)
	})
}

// UpdateEpisode sets the "episode" field to the value that was provided on create.
func (u *TransferRecordUpsertOne) UpdateEpisode() *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateEpisode()
	})
}

// SetDownloadHash sets the "download_hash" field.
func (u *TransferRecordUpsertOne) SetDownloadHash(v string) *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetDownloadHash(v)
	})
}

// UpdateDownloadHash sets the "download_hash" field to the value that was provided on create.
func (u *TransferRecordUpsertOne) UpdateDownloadHash() *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateDownloadHash()
	})
}

// SetDownloader sets the "downloader" field.
func (u *TransferRecordUpsertOne) SetDownloader(v string) *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetDownloader(v)
	})
}

// UpdateDownloader sets the "downloader" field to the value that was provided on create.
func (u *TransferRecordUpsertOne) UpdateDownloader() *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateDownloader()
	})
}

// SetTransferredAt sets the "transferred_at" field.
func (u *TransferRecordUpsertOne) SetTransferredAt(v time.Time) *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetTransferredAt(v)
	})
}

// UpdateTransferredAt sets the "transferred_at" field to the value that was provided on create.
func (u *TransferRecordUpsertOne) UpdateTransferredAt() *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateTransferredAt()
	})
}

// SetImageURL sets the "image_url" field.
func (u *TransferRecordUpsertOne) SetImageURL(v string) *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetImageURL(v)
	})
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *TransferRecordUpsertOne) UpdateImageURL() *TransferRecordUpsertOne {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateImageURL()
	})
}

// Exec executes the query.
func (u *TransferRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for TransferRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TransferRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TransferRecordUpsertOne) ID(ctx context.Context) (id ulid.ULID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("generated: TransferRecordUpsertOne.ID is not supported by MySQL driver. Use TransferRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TransferRecordUpsertOne) IDX(ctx context.Context) ulid.ULID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TransferRecordCreateBulk is the builder for creating many TransferRecord entities in bulk.
type TransferRecordCreateBulk struct {
	config
	err      error
	builders []*TransferRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the TransferRecord entities in the database.
func (_c *TransferRecordCreateBulk) Save(ctx context.Context) ([]*TransferRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TransferRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TransferRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TransferRecordCreateBulk) SaveX(ctx context.Context) []*TransferRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransferRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransferRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TransferRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TransferRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TransferRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *TransferRecordUpsertBulk {
	_c.conflict = opts
	return &TransferRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TransferRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TransferRecordCreateBulk) OnConflictColumns(columns ...string) *TransferRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TransferRecordUpsertBulk{
		create: _c,
	}
}

// TransferRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of TransferRecord nodes.
type TransferRecordUpsertBulk struct {
	create *TransferRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TransferRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(transferrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TransferRecordUpsertBulk) UpdateNewValues() *TransferRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(transferrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(transferrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TransferRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TransferRecordUpsertBulk) Ignore() *TransferRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TransferRecordUpsertBulk) DoNothing() *TransferRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TransferRecordCreateBulk.OnConflict
// documentation for more info.
func (u *TransferRecordUpsertBulk) Update(set func(*TransferRecordUpsert)) *TransferRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TransferRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TransferRecordUpsertBulk) SetUpdatedAt(v time.Time) *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TransferRecordUpsertBulk) UpdateUpdatedAt() *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetMediaKind sets the "media_kind" field.
func (u *TransferRecordUpsertBulk) SetMediaKind(v transferrecord.MediaKind) *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetMediaKind(v)
	})
}

// UpdateMediaKind sets the "media_kind" field to the value that was provided on create.
func (u *TransferRecordUpsertBulk) UpdateMediaKind() *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateMediaKind()
	})
}

// SetTitle sets the "title" field.
func (u *TransferRecordUpsertBulk) SetTitle(v string) *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TransferRecordUpsertBulk) UpdateTitle() *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateTitle()
	})
}

// SetDestPath sets the "dest_path" field.
func (u *TransferRecordUpsertBulk) SetDestPath(v string) *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetDestPath(v)
	})
}

// UpdateDestPath sets the "dest_path" field to the value that was provided on create.
func (u *TransferRecordUpsertBulk) UpdateDestPath() *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateDestPath()
	})
}

// SetSourcePath sets the "source_path" field.
func (u *TransferRecordUpsertBulk) SetSourcePath(v string) *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetSourcePath(v)
	})
}

// UpdateSourcePath sets the "source_path" field to the value that was provided on create.
func (u *TransferRecordUpsertBulk) UpdateSourcePath() *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateSourcePath()
	})
}

// SetTmdbID sets the "tmdb_id" field.
func (u *TransferRecordUpsertBulk) SetTmdbID(v int) *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetTmdbID(v)
	})
}

// AddTmdbID adds v to the "tmdb_id" field.
func (u *TransferRecordUpsertBulk) AddTmdbID(v int) *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.AddTmdbID(v)
	})
}

// UpdateTmdbID sets the "tmdb_id" field to the value that was provided on create.
func (u *TransferRecordUpsertBulk) UpdateTmdbID() *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateTmdbID()
	})
}

// SetSeason sets the "season" field.
func (u *TransferRecordUpsertBulk) SetSeason(v string) *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetSeason(v)
	})
}

// UpdateSeason sets the "season" field to the value that was provided on create.
func (u *TransferRecordUpsertBulk) UpdateSeason() *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateSeason()
	})
}

// SetEpisode sets the "episode" field.
func (u *TransferRecordUpsertBulk) SetEpisode(v string) *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetEpisode(v)
	})
}

// UpdateEpisode sets the "episode" field to the value that was provided on create.
func (u *TransferRecordUpsertBulk) UpdateEpisode() *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateEpisode()
	})
}

// SetDownloadHash sets the "download_hash" field.
func (u *TransferRecordUpsertBulk) SetDownloadHash(v string) *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetDownloadHash(v)
	})
}

// UpdateDownloadHash sets the "download_hash" field to the value that was provided on create.
func (u *TransferRecordUpsertBulk) UpdateDownloadHash() *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateDownloadHash()
	})
}

// SetDownloader sets the "downloader" field.
func (u *TransferRecordUpsertBulk) SetDownloader(v string) *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetDownloader(v)
	})
}

// UpdateDownloader sets the "downloader" field to the value that was provided on create.
func (u *TransferRecordUpsertBulk) UpdateDownloader() *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateDownloader()
	})
}

// SetTransferredAt sets the "transferred_at" field.
func (u *TransferRecordUpsertBulk) SetTransferredAt(v time.Time) *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetTransferredAt(v)
	})
}

// UpdateTransferredAt sets the "transferred_at" field to the value that was provided on create.
func (u *TransferRecordUpsertBulk) UpdateTransferredAt() *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateTransferredAt()
	})
}

// SetImageURL sets the "image_url" field.
func (u *TransferRecordUpsertBulk) SetImageURL(v string) *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.SetImageURL(v)
	})
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *TransferRecordUpsertBulk) UpdateImageURL() *TransferRecordUpsertBulk {
	return u.Update(func(s *TransferRecordUpsert) {
		s.UpdateImageURL()
	})
}

// Exec executes the query.
func (u *TransferRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the TransferRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for TransferRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TransferRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
