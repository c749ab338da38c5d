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
	"github.com/mediareap/mediareap/internal/ent/generated/deletionentry"
	ulid "github.com/oklog/ulid/v2"
)

// DeletionEntryCreate is the builder for creating a DeletionEntry entity.
type DeletionEntryCreate struct {
	config
	mutation *DeletionEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeletionEntryCreate) SetCreatedAt(v time.Time) *DeletionEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeletionEntryCreate) SetNillableCreatedAt(v *time.Time) *DeletionEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DeletionEntryCreate) SetUpdatedAt(v time.Time) *DeletionEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DeletionEntryCreate) SetNillableUpdatedAt(v *time.Time) *DeletionEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUniqueKey sets the "unique_key" field.
func (_c *DeletionEntryCreate) SetUniqueKey(v string) *DeletionEntryCreate {
	_c.mutation.SetUniqueKey(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *DeletionEntryCreate) SetTitle(v string) *DeletionEntryCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMediaKind sets the "media_kind" field.
func (_c *DeletionEntryCreate) SetMediaKind(v deletionentry.MediaKind) *DeletionEntryCreate {
	_c.mutation.SetMediaKind(v)
	return _c
}

// SetNillableMediaKind sets the "media_kind" field if the given value is not nil.
func (_c *DeletionEntryCreate) SetNillableMediaKind(v *deletionentry.MediaKind) *DeletionEntryCreate {
	if v != nil {
		_c.SetMediaKind(*v)
	}
	return _c
}

// SetPath sets the "path" field.
func (_c *DeletionEntryCreate) SetPath(v string) *DeletionEntryCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_c *DeletionEntryCreate) SetNillablePath(v *string) *DeletionEntryCreate {
	if v != nil {
		_c.SetPath(*v)
	}
	return _c
}

// SetTmdbID sets the "tmdb_id" field.
func (_c *DeletionEntryCreate) SetTmdbID(v int) *DeletionEntryCreate {
	_c.mutation.SetTmdbID(v)
	return _c
}

// SetNillableTmdbID sets the "tmdb_id" field if the given value is not nil.
func (_c *DeletionEntryCreate) SetNillableTmdbID(v *int) *DeletionEntryCreate {
	if v != nil {
		_c.SetTmdbID(*v)
	}
	return _c
}

// SetSeason sets the "season" field.
func (_c *DeletionEntryCreate) SetSeason(v string) *DeletionEntryCreate {
	_c.mutation.SetSeason(v)
	return _c
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_c *DeletionEntryCreate) SetNillableSeason(v *string) *DeletionEntryCreate {
	if v != nil {
		_c.SetSeason(*v)
	}
	return _c
}

// SetEpisode sets the "episode" field.
func (_c *DeletionEntryCreate) SetEpisode(v string) *DeletionEntryCreate {
	_c.mutation.SetEpisode(v)
	return _c
}

// SetNillableEpisode sets the "episode" field if the given value is not nil.
func (_c *DeletionEntryCreate) SetNillableEpisode(v *string) *DeletionEntryCreate {
	if v != nil {
		_c.SetEpisode(*v)
	}
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *DeletionEntryCreate) SetImageURL(v string) *DeletionEntryCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_c *DeletionEntryCreate) SetNillableImageURL(v *string) *DeletionEntryCreate {
	if v != nil {
		_c.SetImageURL(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DeletionEntryCreate) SetDeletedAt(v time.Time) *DeletionEntryCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DeletionEntryCreate) SetID(v ulid.ULID) *DeletionEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DeletionEntryCreate) SetNillableID(v *ulid.ULID) *DeletionEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DeletionEntryMutation object of the builder.
func (_c *DeletionEntryCreate) Mutation() *DeletionEntryMutation {
	return _c.mutation
}

// Save creates the DeletionEntry in the database.
func (_c *DeletionEntryCreate) Save(ctx context.Context) (*DeletionEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeletionEntryCreate) SaveX(ctx context.Context) *DeletionEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeletionEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeletionEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeletionEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deletionentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := deletionentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MediaKind(); !ok {
		v := deletionentry.DefaultMediaKind
		_c.mutation.SetMediaKind(v)
	}
	if _, ok := _c.mutation.Path(); !ok {
		v := deletionentry.DefaultPath
		_c.mutation.SetPath(v)
	}
	if _, ok := _c.mutation.TmdbID(); !ok {
		v := deletionentry.DefaultTmdbID
		_c.mutation.SetTmdbID(v)
	}
	if _, ok := _c.mutation.Season(); !ok {
		v := deletionentry.DefaultSeason
		_c.mutation.SetSeason(v)
	}
	if _, ok := _c.mutation.Episode(); !ok {
		v := deletionentry.DefaultEpisode
		_c.mutation.SetEpisode(v)
	}
	if _, ok := _c.mutation.ImageURL(); !ok {
		v := deletionentry.DefaultImageURL
		_c.mutation.SetImageURL(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := deletionentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeletionEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "DeletionEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "DeletionEntry.updated_at"`)}
	}
	if _, ok := _c.mutation.UniqueKey(); !ok {
		return &ValidationError{Name: "unique_key", err: errors.New(`generated: missing required field "DeletionEntry.unique_key"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`generated: missing required field "DeletionEntry.title"`)}
	}
	if _, ok := _c.mutation.MediaKind(); !ok {
		return &ValidationError{Name: "media_kind", err: errors.New(`generated: missing required field "DeletionEntry.media_kind"`)}
	}
	if v, ok := _c.mutation.MediaKind(); ok {
		if err := deletionentry.MediaKindValidator(v); err != nil {
			return &ValidationError{Name: "media_kind", err: fmt.Errorf(`generated: validator failed for field "DeletionEntry.media_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`generated: missing required field "DeletionEntry.path"`)}
	}
	if _, ok := _c.mutation.TmdbID(); !ok {
		return &ValidationError{Name: "tmdb_id", err: errors.New(`generated: missing required field "DeletionEntry.tmdb_id"`)}
	}
	if _, ok := _c.mutation.Season(); !ok {
		return &ValidationError{Name: "season", err: errors.New(`generated: missing required field "DeletionEntry.season"`)}
	}
	if _, ok := _c.mutation.Episode(); !ok {
		return &ValidationError{Name: "episode", err: errors.New(`generated: missing required field "DeletionEntry.episode"`)}
	}
	if _, ok := _c.mutation.ImageURL(); !ok {
		return &ValidationError{Name: "image_url", err: errors.New(`generated: missing required field "DeletionEntry.image_url"`)}
	}
	if _, ok := _c.mutation.DeletedAt(); !ok {
		return &ValidationError{Name: "deleted_at", err: errors.New(`generated: missing required field "DeletionEntry.deleted_at"`)}
	}
	return nil
}

func (_c *DeletionEntryCreate) sqlSave(ctx context.Context) (*DeletionEntry, error) {
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

func (_c *DeletionEntryCreate) createSpec() (*DeletionEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &DeletionEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deletionentry.Table, sqlgraph.NewFieldSpec(deletionentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deletionentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(deletionentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UniqueKey(); ok {
		_spec.SetField(deletionentry.FieldUniqueKey, field.TypeString, value)
		_node.UniqueKey = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(deletionentry.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.MediaKind(); ok {
		_spec.SetField(deletionentry.FieldMediaKind, field.TypeEnum, value)
		_node.MediaKind = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(deletionentry.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.TmdbID(); ok {
		_spec.SetField(deletionentry.FieldTmdbID, field.TypeInt, value)
		_node.TmdbID = value
	}
	if value, ok := _c.mutation.Season(); ok {
		_spec.SetField(deletionentry.FieldSeason, field.TypeString, value)
		_node.Season = value
	}
	if value, ok := _c.mutation.Episode(); ok {
		_spec.SetField(deletionentry.FieldEpisode, field.TypeString, value)
		_node.Episode = value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(deletionentry.FieldImageURL, field.TypeString, value)
		_node.ImageURL = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(deletionentry.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeletionEntry.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeletionEntryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DeletionEntryCreate) OnConflict(opts ...sql.ConflictOption) *DeletionEntryUpsertOne {
	_c.conflict = opts
	return &DeletionEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeletionEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeletionEntryCreate) OnConflictColumns(columns ...string) *DeletionEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeletionEntryUpsertOne{
		create: _c,
	}
}

type (
	// DeletionEntryUpsertOne is the builder for "upsert"-ing
	//  one DeletionEntry node.
	DeletionEntryUpsertOne struct {
		create *DeletionEntryCreate
	}

	// DeletionEntryUpsert is the "OnConflict" setter.
	DeletionEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DeletionEntryUpsert) SetUpdatedAt(v time.Time) *DeletionEntryUpsert {
	u.Set(deletionentry.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DeletionEntryUpsert) UpdateUpdatedAt() *DeletionEntryUpsert {
	u.SetExcluded(deletionentry.FieldUpdatedAt)
	return u
}

// SetUniqueKey sets the "unique_key" field.
func (u *DeletionEntryUpsert) SetUniqueKey(v string) *DeletionEntryUpsert {
	u.Set(deletionentry.FieldUniqueKey, v)
	return u
}

// UpdateUniqueKey sets the "unique_key" field to the value that was provided on create.
func (u *DeletionEntryUpsert) UpdateUniqueKey() *DeletionEntryUpsert {
	u.SetExcluded(deletionentry.FieldUniqueKey)
	return u
}

// SetTitle sets the "title" field.
func (u *DeletionEntryUpsert) SetTitle(v string) *DeletionEntryUpsert {
	u.Set(deletionentry.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DeletionEntryUpsert) UpdateTitle() *DeletionEntryUpsert {
	u.SetExcluded(deletionentry.FieldTitle)
	return u
}

// SetMediaKind sets the "media_kind" field.
func (u *DeletionEntryUpsert) SetMediaKind(v deletionentry.MediaKind) *DeletionEntryUpsert {
	u.Set(deletionentry.FieldMediaKind, v)
	return u
}

// UpdateMediaKind sets the "media_kind" field to the value that was provided on create.
func (u *DeletionEntryUpsert) UpdateMediaKind() *DeletionEntryUpsert {
	u.SetExcluded(deletionentry.FieldMediaKind)
	return u
}

// SetPath sets the "path" field.
func (u *DeletionEntryUpsert) SetPath(v string) *DeletionEntryUpsert {
	u.Set(deletionentry.FieldPath, v)
	return u
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *DeletionEntryUpsert) UpdatePath() *DeletionEntryUpsert {
	u.SetExcluded(deletionentry.FieldPath)
	return u
}

// SetTmdbID sets the "tmdb_id" field.
func (u *DeletionEntryUpsert) SetTmdbID(v int) *DeletionEntryUpsert {
	u.Set(deletionentry.FieldTmdbID, v)
	return u
}

// UpdateTmdbID sets the "tmdb_id" field to the value that was provided on create.
func (u *DeletionEntryUpsert) UpdateTmdbID() *DeletionEntryUpsert {
	u.SetExcluded(deletionentry.FieldTmdbID)
	return u
}

// AddTmdbID adds v to the "tmdb_id" field.
func (u *DeletionEntryUpsert) AddTmdbID(v int) *DeletionEntryUpsert {
	u.Add(deletionentry.FieldTmdbID, v)
	return u
}

// SetSeason sets the "season" field.
func (u *DeletionEntryUpsert) SetSeason(v string) *DeletionEntryUpsert {
	u.Set(deletionentry.FieldSeason, v)
	return u
}

// UpdateSeason sets the "season" field to the value that was provided on create.
func (u *DeletionEntryUpsert) UpdateSeason() *DeletionEntryUpsert {
	u.SetExcluded(deletionentry.FieldSeason)
	return u
}

// SetEpisode sets the "episode" field.
func (u *DeletionEntryUpsert) SetEpisode(v string) *DeletionEntryUpsert {
	u.Set(deletionentry.FieldEpisode, v)
	return u
}

// UpdateEpisode sets the "episode" field to the value that was provided on create.
func (u *DeletionEntryUpsert) UpdateEpisode() *DeletionEntryUpsert {
	u.SetExcluded(deletionentry.FieldEpisode)
	return u
}

// SetImageURL sets the "image_url" field.
func (u *DeletionEntryUpsert) SetImageURL(v string) *DeletionEntryUpsert {
	u.Set(deletionentry.FieldImageURL, v)
	return u
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *DeletionEntryUpsert) UpdateImageURL() *DeletionEntryUpsert {
	u.SetExcluded(deletionentry.FieldImageURL)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DeletionEntryUpsert) SetDeletedAt(v time.Time) *DeletionEntryUpsert {
	u.Set(deletionentry.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DeletionEntryUpsert) UpdateDeletedAt() *DeletionEntryUpsert {
	u.SetExcluded(deletionentry.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DeletionEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deletionentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DeletionEntryUpsertOne) UpdateNewValues() *DeletionEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(deletionentry.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(deletionentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeletionEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DeletionEntryUpsertOne) Ignore() *DeletionEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeletionEntryUpsertOne) DoNothing() *DeletionEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeletionEntryCreate.OnConflict
// documentation for more info.
func (u *DeletionEntryUpsertOne) Update(set func(*DeletionEntryUpsert)) *DeletionEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeletionEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DeletionEntryUpsertOne) SetUpdatedAt(v time.Time) *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DeletionEntryUpsertOne) UpdateUpdatedAt() *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUniqueKey sets the "unique_key" field.
func (u *DeletionEntryUpsertOne) SetUniqueKey(v string) *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetUniqueKey(v)
	})
}

// UpdateUniqueKey sets the "unique_key" field to the value that was provided on create.
func (u *DeletionEntryUpsertOne) UpdateUniqueKey() *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateUniqueKey()
	})
}

// SetTitle sets the "title" field.
func (u *DeletionEntryUpsertOne) SetTitle(v string) *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DeletionEntryUpsertOne) UpdateTitle() *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateTitle()
	})
}

// SetMediaKind sets the "media_kind" field.
func (u *DeletionEntryUpsertOne) SetMediaKind(v deletionentry.MediaKind) *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetMediaKind(v)
	})
}

// UpdateMediaKind sets the "media_kind" field to the value that was provided on create.
func (u *DeletionEntryUpsertOne) UpdateMediaKind() *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateMediaKind()
	})
}

// SetPath sets the "path" field.
func (u *DeletionEntryUpsertOne) SetPath(v string) *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *DeletionEntryUpsertOne) UpdatePath() *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdatePath()
	})
}

// SetTmdbID sets the "tmdb_id" field.
func (u *DeletionEntryUpsertOne) SetTmdbID(v int) *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetTmdbID(v)
	})
}

// AddTmdbID adds v to the "tmdb_id" field.
func (u *DeletionEntryUpsertOne) AddTmdbID(v int) *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.AddTmdbID(v)
	})
}

// UpdateTmdbID sets the "tmdb_id" field to the value that was provided on create.
func (u *DeletionEntryUpsertOne) UpdateTmdbID() *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateTmdbID()
	})
}

// SetSeason sets the "season" field.
func (u *DeletionEntryUpsertOne) SetSeason(v string) *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetSeason(v)
	})
}

// UpdateSeason sets the "season" field to the value that was provided on create.
func (u *DeletionEntryUpsertOne) UpdateSeason() *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateSeason()
	})
}

// SetEpisode sets the "episode" field.
func (u *DeletionEntryUpsertOne) SetEpisode(v string) *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetEpisode(v)
	})
}

// UpdateEpisode sets the "episode" field to the value that was provided on create.
func (u *DeletionEntryUpsertOne) UpdateEpisode() *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateEpisode()
	})
}

// SetImageURL sets the "image_url" field.
func (u *DeletionEntryUpsertOne) SetImageURL(v string) *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetImageURL(v)
	})
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *DeletionEntryUpsertOne) UpdateImageURL() *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateImageURL()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DeletionEntryUpsertOne) SetDeletedAt(v time.Time) *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DeletionEntryUpsertOne) UpdateDeletedAt() *DeletionEntryUpsertOne {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateDeletedAt()
	})
}

// Exec executes the query.
func (u *DeletionEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for DeletionEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeletionEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DeletionEntryUpsertOne) ID(ctx context.Context) (id ulid.ULID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("generated: DeletionEntryUpsertOne.ID is not supported by MySQL driver. Use DeletionEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DeletionEntryUpsertOne) IDX(ctx context.Context) ulid.ULID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DeletionEntryCreateBulk is the builder for creating many DeletionEntry entities in bulk.
type DeletionEntryCreateBulk struct {
	config
	err      error
	builders []*DeletionEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the DeletionEntry entities in the database.
func (_c *DeletionEntryCreateBulk) Save(ctx context.Context) ([]*DeletionEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeletionEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeletionEntryMutation)
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
func (_c *DeletionEntryCreateBulk) SaveX(ctx context.Context) []*DeletionEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeletionEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeletionEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeletionEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeletionEntryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DeletionEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *DeletionEntryUpsertBulk {
	_c.conflict = opts
	return &DeletionEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeletionEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeletionEntryCreateBulk) OnConflictColumns(columns ...string) *DeletionEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeletionEntryUpsertBulk{
		create: _c,
	}
}

// DeletionEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of DeletionEntry nodes.
type DeletionEntryUpsertBulk struct {
	create *DeletionEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DeletionEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deletionentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DeletionEntryUpsertBulk) UpdateNewValues() *DeletionEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(deletionentry.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(deletionentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeletionEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DeletionEntryUpsertBulk) Ignore() *DeletionEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeletionEntryUpsertBulk) DoNothing() *DeletionEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeletionEntryCreateBulk.OnConflict
// documentation for more info.
func (u *DeletionEntryUpsertBulk) Update(set func(*DeletionEntryUpsert)) *DeletionEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeletionEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DeletionEntryUpsertBulk) SetUpdatedAt(v time.Time) *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DeletionEntryUpsertBulk) UpdateUpdatedAt() *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUniqueKey sets the "unique_key" field.
func (u *DeletionEntryUpsertBulk) SetUniqueKey(v string) *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetUniqueKey(v)
	})
}

// UpdateUniqueKey sets the "unique_key" field to the value that was provided on create.
func (u *DeletionEntryUpsertBulk) UpdateUniqueKey() *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateUniqueKey()
	})
}

// SetTitle sets the "title" field.
func (u *DeletionEntryUpsertBulk) SetTitle(v string) *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DeletionEntryUpsertBulk) UpdateTitle() *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateTitle()
	})
}

// SetMediaKind sets the "media_kind" field.
func (u *DeletionEntryUpsertBulk) SetMediaKind(v deletionentry.MediaKind) *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetMediaKind(v)
	})
}

// UpdateMediaKind sets the "media_kind" field to the value that was provided on create.
func (u *DeletionEntryUpsertBulk) UpdateMediaKind() *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateMediaKind()
	})
}

// SetPath sets the "path" field.
func (u *DeletionEntryUpsertBulk) SetPath(v string) *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *DeletionEntryUpsertBulk) UpdatePath() *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdatePath()
	})
}

// SetTmdbID sets the "tmdb_id" field.
func (u *DeletionEntryUpsertBulk) SetTmdbID(v int) *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetTmdbID(v)
	})
}

// AddTmdbID adds v to the "tmdb_id" field.
func (u *DeletionEntryUpsertBulk) AddTmdbID(v int) *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.AddTmdbID(v)
	})
}

// UpdateTmdbID sets the "tmdb_id" field to the value that was provided on create.
func (u *DeletionEntryUpsertBulk) UpdateTmdbID() *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateTmdbID()
	})
}

// SetSeason sets the "season" field.
func (u *DeletionEntryUpsertBulk) SetSeason(v string) *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetSeason(v)
	})
}

// UpdateSeason sets the "season" field to the value that was provided on create.
func (u *DeletionEntryUpsertBulk) UpdateSeason() *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateSeason()
	})
}

// SetEpisode sets the "episode" field.
func (u *DeletionEntryUpsertBulk) SetEpisode(v string) *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetEpisode(v)
	})
}

// UpdateEpisode sets the "episode" field to the value that was provided on create.
func (u *DeletionEntryUpsertBulk) UpdateEpisode() *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateEpisode()
	})
}

// SetImageURL sets the "image_url" field.
func (u *DeletionEntryUpsertBulk) SetImageURL(v string) *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetImageURL(v)
	})
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *DeletionEntryUpsertBulk) UpdateImageURL() *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateImageURL()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DeletionEntryUpsertBulk) SetDeletedAt(v time.Time) *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DeletionEntryUpsertBulk) UpdateDeletedAt() *DeletionEntryUpsertBulk {
	return u.Update(func(s *DeletionEntryUpsert) {
		s.UpdateDeletedAt()
	})
}

// Exec executes the query.
func (u *DeletionEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the DeletionEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for DeletionEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeletionEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
