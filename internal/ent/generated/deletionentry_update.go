// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediareap/mediareap/internal/ent/generated/deletionentry"
	"github.com/mediareap/mediareap/internal/ent/generated/predicate"
)

// DeletionEntryUpdate is the builder for updating DeletionEntry entities.
type DeletionEntryUpdate struct {
	config
	hooks    []Hook
	mutation *DeletionEntryMutation
}

// Where appends a list predicates to the DeletionEntryUpdate builder.
func (_u *DeletionEntryUpdate) Where(ps ...predicate.DeletionEntry) *DeletionEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeletionEntryUpdate) SetUpdatedAt(v time.Time) *DeletionEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUniqueKey sets the "unique_key" field.
func (_u *DeletionEntryUpdate) SetUniqueKey(v string) *DeletionEntryUpdate {
	_u.mutation.SetUniqueKey(v)
	return _u
}

// SetNillableUniqueKey sets the "unique_key" field if the given value is not nil.
func (_u *DeletionEntryUpdate) SetNillableUniqueKey(v *string) *DeletionEntryUpdate {
	if v != nil {
		_u.SetUniqueKey(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DeletionEntryUpdate) SetTitle(v string) *DeletionEntryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DeletionEntryUpdate) SetNillableTitle(v *string) *DeletionEntryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMediaKind sets the "media_kind" field.
func (_u *DeletionEntryUpdate) SetMediaKind(v deletionentry.MediaKind) *DeletionEntryUpdate {
	_u.mutation.SetMediaKind(v)
	return _u
}

// SetNillableMediaKind sets the "media_kind" field if the given value is not nil.
func (_u *DeletionEntryUpdate) SetNillableMediaKind(v *deletionentry.MediaKind) *DeletionEntryUpdate {
	if v != nil {
		_u.SetMediaKind(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *DeletionEntryUpdate) SetPath(v string) *DeletionEntryUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *DeletionEntryUpdate) SetNillablePath(v *string) *DeletionEntryUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetTmdbID sets the "tmdb_id" field.
func (_u *DeletionEntryUpdate) SetTmdbID(v int) *DeletionEntryUpdate {
	_u.mutation.ResetTmdbID()
	_u.mutation.SetTmdbID(v)
	return _u
}

// SetNillableTmdbID sets the "tmdb_id" field if the given value is not nil.
func (_u *DeletionEntryUpdate) SetNillableTmdbID(v *int) *DeletionEntryUpdate {
	if v != nil {
		_u.SetTmdbID(*v)
	}
	return _u
}

// AddTmdbID adds value to the "tmdb_id" field.
func (_u *DeletionEntryUpdate) AddTmdbID(v int) *DeletionEntryUpdate {
	_u.mutation.AddTmdbID(v)
	return _u
}

// SetSeason sets the "season" field.
func (_u *DeletionEntryUpdate) SetSeason(v string) *DeletionEntryUpdate {
	_u.mutation.SetSeason(v)
	return _u
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_u *DeletionEntryUpdate) SetNillableSeason(v *string) *DeletionEntryUpdate {
	if v != nil {
		_u.SetSeason(*v)
	}
	return _u
}

// SetEpisode sets the "episode" field.
func (_u *DeletionEntryUpdate) SetEpisode(v string) *DeletionEntryUpdate {
	_u.mutation.SetEpisode(v)
	return _u
}

// SetNillableEpisode sets the "episode" field if the given value is not nil.
func (_u *DeletionEntryUpdate) SetNillableEpisode(v *string) *DeletionEntryUpdate {
	if v != nil {
		_u.SetEpisode(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *DeletionEntryUpdate) SetImageURL(v string) *DeletionEntryUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *DeletionEntryUpdate) SetNillableImageURL(v *string) *DeletionEntryUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DeletionEntryUpdate) SetDeletedAt(v time.Time) *DeletionEntryUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DeletionEntryUpdate) SetNillableDeletedAt(v *time.Time) *DeletionEntryUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// Mutation returns the DeletionEntryMutation object of the builder.
func (_u *DeletionEntryUpdate) Mutation() *DeletionEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeletionEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeletionEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeletionEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeletionEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeletionEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deletionentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeletionEntryUpdate) check() error {
	if v, ok := _u.mutation.MediaKind(); ok {
		if err := deletionentry.MediaKindValidator(v); err != nil {
			return &ValidationError{Name: "media_kind", err: fmt.Errorf(`generated: validator failed for field "DeletionEntry.media_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *DeletionEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deletionentry.Table, deletionentry.Columns, sqlgraph.NewFieldSpec(deletionentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(deletionentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UniqueKey(); ok {
		_spec.SetField(deletionentry.FieldUniqueKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(deletionentry.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.MediaKind(); ok {
		_spec.SetField(deletionentry.FieldMediaKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(deletionentry.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.TmdbID(); ok {
		_spec.SetField(deletionentry.FieldTmdbID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTmdbID(); ok {
		_spec.AddField(deletionentry.FieldTmdbID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Season(); ok {
		_spec.SetField(deletionentry.FieldSeason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Episode(); ok {
		_spec.SetField(deletionentry.FieldEpisode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(deletionentry.FieldImageURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(deletionentry.FieldDeletedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deletionentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeletionEntryUpdateOne is the builder for updating a single DeletionEntry entity.
type DeletionEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeletionEntryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeletionEntryUpdateOne) SetUpdatedAt(v time.Time) *DeletionEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUniqueKey sets the "unique_key" field.
func (_u *DeletionEntryUpdateOne) SetUniqueKey(v string) *DeletionEntryUpdateOne {
	_u.mutation.SetUniqueKey(v)
	return _u
}

// SetNillableUniqueKey sets the "unique_key" field if the given value is not nil.
func (_u *DeletionEntryUpdateOne) SetNillableUniqueKey(v *string) *DeletionEntryUpdateOne {
	if v != nil {
		_u.SetUniqueKey(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DeletionEntryUpdateOne) SetTitle(v string) *DeletionEntryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DeletionEntryUpdateOne) SetNillableTitle(v *string) *DeletionEntryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMediaKind sets the "media_kind" field.
func (_u *DeletionEntryUpdateOne) SetMediaKind(v deletionentry.MediaKind) *DeletionEntryUpdateOne {
	_u.mutation.SetMediaKind(v)
	return _u
}

// SetNillableMediaKind sets the "media_kind" field if the given value is not nil.
func (_u *DeletionEntryUpdateOne) SetNillableMediaKind(v *deletionentry.MediaKind) *DeletionEntryUpdateOne {
	if v != nil {
		_u.SetMediaKind(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *DeletionEntryUpdateOne) SetPath(v string) *DeletionEntryUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *DeletionEntryUpdateOne) SetNillablePath(v *string) *DeletionEntryUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetTmdbID sets the "tmdb_id" field.
func (_u *DeletionEntryUpdateOne) SetTmdbID(v int) *DeletionEntryUpdateOne {
	_u.mutation.ResetTmdbID()
	_u.mutation.SetTmdbID(v)
	return _u
}

// SetNillableTmdbID sets the "tmdb_id" field if the given value is not nil.
func (_u *DeletionEntryUpdateOne) SetNillableTmdbID(v *int) *DeletionEntryUpdateOne {
	if v != nil {
		_u.SetTmdbID(*v)
	}
	return _u
}

// AddTmdbID adds value to the "tmdb_id" field.
func (_u *DeletionEntryUpdateOne) AddTmdbID(v int) *DeletionEntryUpdateOne {
	_u.mutation.AddTmdbID(v)
	return _u
}

// SetSeason sets the "season" field.
func (_u *DeletionEntryUpdateOne) SetSeason(v string) *DeletionEntryUpdateOne {
	_u.mutation.SetSeason(v)
	return _u
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_u *DeletionEntryUpdateOne) SetNillableSeason(v *string) *DeletionEntryUpdateOne {
	if v != nil {
		_u.SetSeason(*v)
	}
	return _u
}

// SetEpisode sets the "episode" field.
func (_u *DeletionEntryUpdateOne) SetEpisode(v string) *DeletionEntryUpdateOne {
	_u.mutation.SetEpisode(v)
	return _u
}

// SetNillableEpisode sets the "episode" field if the given value is not nil.
func (_u *DeletionEntryUpdateOne) SetNillableEpisode(v *string) *DeletionEntryUpdateOne {
	if v != nil {
		_u.SetEpisode(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *DeletionEntryUpdateOne) SetImageURL(v string) *DeletionEntryUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *DeletionEntryUpdateOne) SetNillableImageURL(v *string) *DeletionEntryUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DeletionEntryUpdateOne) SetDeletedAt(v time.Time) *DeletionEntryUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DeletionEntryUpdateOne) SetNillableDeletedAt(v *time.Time) *DeletionEntryUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// Mutation returns the DeletionEntryMutation object of the builder.
func (_u *DeletionEntryUpdateOne) Mutation() *DeletionEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeletionEntryUpdate builder.
func (_u *DeletionEntryUpdateOne) Where(ps ...predicate.DeletionEntry) *DeletionEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeletionEntryUpdateOne) Select(field string, fields ...string) *DeletionEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeletionEntry entity.
func (_u *DeletionEntryUpdateOne) Save(ctx context.Context) (*DeletionEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeletionEntryUpdateOne) SaveX(ctx context.Context) *DeletionEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeletionEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeletionEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeletionEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deletionentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeletionEntryUpdateOne) check() error {
	if v, ok := _u.mutation.MediaKind(); ok {
		if err := deletionentry.MediaKindValidator(v); err != nil {
			return &ValidationError{Name: "media_kind", err: fmt.Errorf(`generated: validator failed for field "DeletionEntry.media_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *DeletionEntryUpdateOne) sqlSave(ctx context.Context) (_node *DeletionEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deletionentry.Table, deletionentry.Columns, sqlgraph.NewFieldSpec(deletionentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "DeletionEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deletionentry.FieldID)
		for _, f := range fields {
			if !deletionentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != deletionentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(deletionentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UniqueKey(); ok {
		_spec.SetField(deletionentry.FieldUniqueKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(deletionentry.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.MediaKind(); ok {
		_spec.SetField(deletionentry.FieldMediaKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(deletionentry.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.TmdbID(); ok {
		_spec.SetField(deletionentry.FieldTmdbID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTmdbID(); ok {
		_spec.AddField(deletionentry.FieldTmdbID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Season(); ok {
		_spec.SetField(deletionentry.FieldSeason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Episode(); ok {
		_spec.SetField(deletionentry.FieldEpisode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(deletionentry.FieldImageURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(deletionentry.FieldDeletedAt, field.TypeTime, value)
	}
	_node = &DeletionEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deletionentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
