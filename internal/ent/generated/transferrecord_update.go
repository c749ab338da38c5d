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
	"github.com/mediareap/mediareap/internal/ent/generated/predicate"
	"github.com/mediareap/mediareap/internal/ent/generated/transferrecord"
)

// TransferRecordUpdate is the builder for updating TransferRecord entities.
type TransferRecordUpdate struct {
	config
	hooks    []Hook
	mutation *TransferRecordMutation
}

// Where appends a list predicates to the TransferRecordUpdate builder.
func (_u *TransferRecordUpdate) Where(ps ...predicate.TransferRecord) *TransferRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TransferRecordUpdate) SetUpdatedAt(v time.Time) *TransferRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMediaKind sets the "media_kind" field.
func (_u *TransferRecordUpdate) SetMediaKind(v transferrecord.MediaKind) *TransferRecordUpdate {
	_u.mutation.SetMediaKind(v)
	return _u
}

// SetNillableMediaKind sets the "media_kind" field if the given value is not nil.
func (_u *TransferRecordUpdate) SetNillableMediaKind(v *transferrecord.MediaKind) *TransferRecordUpdate {
	if v != nil {
		_u.SetMediaKind(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TransferRecordUpdate) SetTitle(v string) *TransferRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TransferRecordUpdate) SetNillableTitle(v *string) *TransferRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDestPath sets the "dest_path" field.
func (_u *TransferRecordUpdate) SetDestPath(v string) *TransferRecordUpdate {
	_u.mutation.SetDestPath(v)
	return _u
}

// SetNillableDestPath sets the "dest_path" field if the given value is not nil.
func (_u *TransferRecordUpdate) SetNillableDestPath(v *string) *TransferRecordUpdate {
	if v != nil {
		_u.SetDestPath(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *TransferRecordUpdate) SetSourcePath(v string) *TransferRecordUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *TransferRecordUpdate) SetNillableSourcePath(v *string) *TransferRecordUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetTmdbID sets the "tmdb_id" field.
func (_u *TransferRecordUpdate) SetTmdbID(v int) *TransferRecordUpdate {
	_u.mutation.ResetTmdbID()
	_u.mutation.SetTmdbID(v)
	return _u
}

// SetNillableTmdbID sets the "tmdb_id" field if the given value is not nil.
func (_u *TransferRecordUpdate) SetNillableTmdbID(v *int) *TransferRecordUpdate {
	if v != nil {
		_u.SetTmdbID(*v)
	}
	return _u
}

// AddTmdbID adds value to the "tmdb_id" field.
func (_u *TransferRecordUpdate) AddTmdbID(v int) *TransferRecordUpdate {
	_u.mutation.AddTmdbID(v)
	return _u
}

// SetSeason sets the "season" field.
func (_u *TransferRecordUpdate) SetSeason(v string) *TransferRecordUpdate {
	_u.mutation.SetSeason(v)
	return _u
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_u *TransferRecordUpdate) SetNillableSeason(v *string) *TransferRecordUpdate {
	if v != nil {
		_u.SetSeason(*v)
	}
	return _u
}

// SetEpisode sets the "episode" field.
func (_u *TransferRecordUpdate) SetEpisode(v string) *TransferRecordUpdate {
	_u.mutation.SetEpisode(v)
	return _u
}

// SetNillableEpisode sets the "episode" field if the given value is not nil.
func (_u *TransferRecordUpdate) SetNillableEpisode(v *string) *TransferRecordUpdate {
	if v != nil {
		_u.SetEpisode(*v)
	}
	return _u
}

// SetDownloadHash sets the "download_hash" field.
func (_u *TransferRecordUpdate) SetDownloadHash(v string) *TransferRecordUpdate {
	_u.mutation.SetDownloadHash(v)
	return _u
}

// SetNillableDownloadHash sets the "download_hash" field if the given value is not nil.
func (_u *TransferRecordUpdate) SetNillableDownloadHash(v *string) *TransferRecordUpdate {
	if v != nil {
		_u.SetDownloadHash(*v)
	}
	return _u
}

// SetDownloader sets the "downloader" field.
func (_u *TransferRecordUpdate) SetDownloader(v string) *TransferRecordUpdate {
	_u.mutation.SetDownloader(v)
	return _u
}

// SetNillableDownloader sets the "downloader" field if the given value is not nil.
func (_u *TransferRecordUpdate) SetNillableDownloader(v *string) *TransferRecordUpdate {
	if v != nil {
		_u.SetDownloader(*v)
	}
	return _u
}

// SetTransferredAt sets the "transferred_at" field.
func (_u *TransferRecordUpdate) SetTransferredAt(v time.Time) *TransferRecordUpdate {
	_u.mutation.SetTransferredAt(v)
	return _u
}

// SetNillableTransferredAt sets the "transferred_at" field if the given value is not nil.
func (_u *TransferRecordUpdate) SetNillableTransferredAt(v *time.Time) *TransferRecordUpdate {
	if v != nil {
		_u.SetTransferredAt(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *TransferRecordUpdate) SetImageURL(v string) *TransferRecordUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *TransferRecordUpdate) SetNillableImageURL(v *string) *TransferRecordUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// Mutation returns the TransferRecordMutation object of the builder.
func (_u *TransferRecordUpdate) Mutation() *TransferRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransferRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransferRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransferRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransferRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TransferRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transferrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransferRecordUpdate) check() error {
	if v, ok := _u.mutation.MediaKind(); ok {
		if err := transferrecord.MediaKindValidator(v); err != nil {
			return &ValidationError{Name: "media_kind", err: fmt.Errorf(`generated: validator failed for field "TransferRecord.media_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *TransferRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transferrecord.Table, transferrecord.Columns, sqlgraph.NewFieldSpec(transferrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transferrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MediaKind(); ok {
		_spec.SetField(transferrecord.FieldMediaKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(transferrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DestPath(); ok {
		_spec.SetField(transferrecord.FieldDestPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(transferrecord.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.TmdbID(); ok {
		_spec.SetField(transferrecord.FieldTmdbID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTmdbID(); ok {
		_spec.AddField(transferrecord.FieldTmdbID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Season(); ok {
		_spec.SetField(transferrecord.FieldSeason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Episode(); ok {
		_spec.SetField(transferrecord.FieldEpisode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DownloadHash(); ok {
		_spec.SetField(transferrecord.FieldDownloadHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Downloader(); ok {
		_spec.SetField(transferrecord.FieldDownloader, field.TypeString, value)
	}
	if value, ok := _u.mutation.TransferredAt(); ok {
		_spec.SetField(transferrecord.FieldTransferredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(transferrecord.FieldImageURL, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transferrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransferRecordUpdateOne is the builder for updating a single TransferRecord entity.
type TransferRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransferRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TransferRecordUpdateOne) SetUpdatedAt(v time.Time) *TransferRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMediaKind sets the "media_kind" field.
func (_u *TransferRecordUpdateOne) SetMediaKind(v transferrecord.MediaKind) *TransferRecordUpdateOne {
	_u.mutation.SetMediaKind(v)
	return _u
}

// SetNillableMediaKind sets the "media_kind" field if the given value is not nil.
func (_u *TransferRecordUpdateOne) SetNillableMediaKind(v *transferrecord.MediaKind) *TransferRecordUpdateOne {
	if v != nil {
		_u.SetMediaKind(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TransferRecordUpdateOne) SetTitle(v string) *TransferRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TransferRecordUpdateOne) SetNillableTitle(v *string) *TransferRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDestPath sets the "dest_path" field.
func (_u *TransferRecordUpdateOne) SetDestPath(v string) *TransferRecordUpdateOne {
	_u.mutation.SetDestPath(v)
	return _u
}

// SetNillableDestPath sets the "dest_path" field if the given value is not nil.
func (_u *TransferRecordUpdateOne) SetNillableDestPath(v *string) *TransferRecordUpdateOne {
	if v != nil {
		_u.SetDestPath(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *TransferRecordUpdateOne) SetSourcePath(v string) *TransferRecordUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *TransferRecordUpdateOne) SetNillableSourcePath(v *string) *TransferRecordUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetTmdbID sets the "tmdb_id" field.
func (_u *TransferRecordUpdateOne) SetTmdbID(v int) *TransferRecordUpdateOne {
	_u.mutation.ResetTmdbID()
	_u.mutation.SetTmdbID(v)
	return _u
}

// SetNillableTmdbID sets the "tmdb_id" field if the given value is not nil.
func (_u *TransferRecordUpdateOne) SetNillableTmdbID(v *int) *TransferRecordUpdateOne {
	if v != nil {
		_u.SetTmdbID(*v)
	}
	return _u
}

// AddTmdbID adds value to the "tmdb_id" field.
func (_u *TransferRecordUpdateOne) AddTmdbID(v int) *TransferRecordUpdateOne {
	_u.mutation.AddTmdbID(v)
	return _u
}

// SetSeason sets the "season" field.
func (_u *TransferRecordUpdateOne) SetSeason(v string) *TransferRecordUpdateOne {
	_u.mutation.SetSeason(v)
	return _u
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_u *TransferRecordUpdateOne) SetNillableSeason(v *string) *TransferRecordUpdateOne {
	if v != nil {
		_u.SetSeason(*v)
	}
	return _u
}

// SetEpisode sets the "episode" field.
func (_u *TransferRecordUpdateOne) SetEpisode(v string) *TransferRecordUpdateOne {
	_u.mutation.SetEpisode(v)
	return _u
}

// SetNillableEpisode sets the "episode" field if the given value is not nil.
func (_u *TransferRecordUpdateOne) SetNillableEpisode(v *string) *TransferRecordUpdateOne {
	if v != nil {
		_u.SetEpisode(*v)
	}
	return _u
}

// SetDownloadHash sets the "download_hash" field.
func (_u *TransferRecordUpdateOne) SetDownloadHash(v string) *TransferRecordUpdateOne {
	_u.mutation.SetDownloadHash(v)
	return _u
}

// SetNillableDownloadHash sets the "download_hash" field if the given value is not nil.
func (_u *TransferRecordUpdateOne) SetNillableDownloadHash(v *string) *TransferRecordUpdateOne {
	if v != nil {
		_u.SetDownloadHash(*v)
	}
	return _u
}

// SetDownloader sets the "downloader" field.
func (_u *TransferRecordUpdateOne) SetDownloader(v string) *TransferRecordUpdateOne {
	_u.mutation.SetDownloader(v)
	return _u
}

// SetNillableDownloader sets the "downloader" field if the given value is not nil.
func (_u *TransferRecordUpdateOne) SetNillableDownloader(v *string) *TransferRecordUpdateOne {
	if v != nil {
		_u.SetDownloader(*v)
	}
	return _u
}

// SetTransferredAt sets the "transferred_at" field.
func (_u *TransferRecordUpdateOne) SetTransferredAt(v time.Time) *TransferRecordUpdateOne {
	_u.mutation.SetTransferredAt(v)
	return _u
}

// SetNillableTransferredAt sets the "transferred_at" field if the given value is not nil.
func (_u *TransferRecordUpdateOne) SetNillableTransferredAt(v *time.Time) *TransferRecordUpdateOne {
	if v != nil {
		_u.SetTransferredAt(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *TransferRecordUpdateOne) SetImageURL(v string) *TransferRecordUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *TransferRecordUpdateOne) SetNillableImageURL(v *string) *TransferRecordUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// Mutation returns the TransferRecordMutation object of the builder.
func (_u *TransferRecordUpdateOne) Mutation() *TransferRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the TransferRecordUpdate builder.
func (_u *TransferRecordUpdateOne) Where(ps ...predicate.TransferRecord) *TransferRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransferRecordUpdateOne) Select(field string, fields ...string) *TransferRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TransferRecord entity.
func (_u *TransferRecordUpdateOne) Save(ctx context.Context) (*TransferRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransferRecordUpdateOne) SaveX(ctx context.Context) *TransferRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransferRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransferRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TransferRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transferrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransferRecordUpdateOne) check() error {
	if v, ok := _u.mutation.MediaKind(); ok {
		if err := transferrecord.MediaKindValidator(v); err != nil {
			return &ValidationError{Name: "media_kind", err: fmt.Errorf(`generated: validator failed for field "TransferRecord.media_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *TransferRecordUpdateOne) sqlSave(ctx context.Context) (_node *TransferRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transferrecord.Table, transferrecord.Columns, sqlgraph.NewFieldSpec(transferrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "TransferRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transferrecord.FieldID)
		for _, f := range fields {
			if !transferrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != transferrecord.FieldID {
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
		_spec.SetField(transferrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MediaKind(); ok {
		_spec.SetField(transferrecord.FieldMediaKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(transferrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DestPath(); ok {
		_spec.SetField(transferrecord.FieldDestPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(transferrecord.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.TmdbID(); ok {
		_spec.SetField(transferrecord.FieldTmdbID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTmdbID(); ok {
		_spec.AddField(transferrecord.FieldTmdbID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Season(); ok {
		_spec.SetField(transferrecord.FieldSeason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Episode(); ok {
		_spec.SetField(transferrecord.FieldEpisode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DownloadHash(); ok {
		_spec.SetField(transferrecord.FieldDownloadHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Downloader(); ok {
		_spec.SetField(transferrecord.FieldDownloader, field.TypeString, value)
	}
	if value, ok := _u.mutation.TransferredAt(); ok {
		_spec.SetField(transferrecord.FieldTransferredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(transferrecord.FieldImageURL, field.TypeString, value)
	}
	_node = &TransferRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transferrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
