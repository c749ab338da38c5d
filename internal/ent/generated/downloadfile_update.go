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
	"github.com/mediareap/mediareap/internal/ent/generated/downloadfile"
	"github.com/mediareap/mediareap/internal/ent/generated/predicate"
)

// DownloadFileUpdate is the builder for updating DownloadFile entities.
type DownloadFileUpdate struct {
	config
	hooks    []Hook
	mutation *DownloadFileMutation
}

// Where appends a list predicates to the DownloadFileUpdate builder.
func (_u *DownloadFileUpdate) Where(ps ...predicate.DownloadFile) *DownloadFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DownloadFileUpdate) SetUpdatedAt(v time.Time) *DownloadFileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDownloadHash sets the "download_hash" field.
func (_u *DownloadFileUpdate) SetDownloadHash(v string) *DownloadFileUpdate {
	_u.mutation.SetDownloadHash(v)
	return _u
}

// SetNillableDownloadHash sets the "download_hash" field if the given value is not nil.
func (_u *DownloadFileUpdate) SetNillableDownloadHash(v *string) *DownloadFileUpdate {
	if v != nil {
		_u.SetDownloadHash(*v)
	}
	return _u
}

// SetDownloader sets the "downloader" field.
func (_u *DownloadFileUpdate) SetDownloader(v string) *DownloadFileUpdate {
	_u.mutation.SetDownloader(v)
	return _u
}

// SetNillableDownloader sets the "downloader" field if the given value is not nil.
func (_u *DownloadFileUpdate) SetNillableDownloader(v *string) *DownloadFileUpdate {
	if v != nil {
		_u.SetDownloader(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DownloadFileUpdate) SetFilePath(v string) *DownloadFileUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DownloadFileUpdate) SetNillableFilePath(v *string) *DownloadFileUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFullPath sets the "full_path" field.
func (_u *DownloadFileUpdate) SetFullPath(v string) *DownloadFileUpdate {
	_u.mutation.SetFullPath(v)
	return _u
}

// SetNillableFullPath sets the "full_path" field if the given value is not nil.
func (_u *DownloadFileUpdate) SetNillableFullPath(v *string) *DownloadFileUpdate {
	if v != nil {
		_u.SetFullPath(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *DownloadFileUpdate) SetState(v int) *DownloadFileUpdate {
	_u.mutation.ResetState()
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *DownloadFileUpdate) SetNillableState(v *int) *DownloadFileUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// AddState adds value to the "state" field.
func (_u *DownloadFileUpdate) AddState(v int) *DownloadFileUpdate {
	_u.mutation.AddState(v)
	return _u
}

// Mutation returns the DownloadFileMutation object of the builder.
func (_u *DownloadFileUpdate) Mutation() *DownloadFileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DownloadFileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DownloadFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DownloadFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DownloadFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DownloadFileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := downloadfile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DownloadFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(downloadfile.Table, downloadfile.Columns, sqlgraph.NewFieldSpec(downloadfile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(downloadfile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DownloadHash(); ok {
		_spec.SetField(downloadfile.FieldDownloadHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Downloader(); ok {
		_spec.SetField(downloadfile.FieldDownloader, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(downloadfile.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullPath(); ok {
		_spec.SetField(downloadfile.FieldFullPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(downloadfile.FieldState, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedState(); ok {
		_spec.AddField(downloadfile.FieldState, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{downloadfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DownloadFileUpdateOne is the builder for updating a single DownloadFile entity.
type DownloadFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DownloadFileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DownloadFileUpdateOne) SetUpdatedAt(v time.Time) *DownloadFileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDownloadHash sets the "download_hash" field.
func (_u *DownloadFileUpdateOne) SetDownloadHash(v string) *DownloadFileUpdateOne {
	_u.mutation.SetDownloadHash(v)
	return _u
}

// SetNillableDownloadHash sets the "download_hash" field if the given value is not nil.
func (_u *DownloadFileUpdateOne) SetNillableDownloadHash(v *string) *DownloadFileUpdateOne {
	if v != nil {
		_u.SetDownloadHash(*v)
	}
	return _u
}

// SetDownloader sets the "downloader" field.
func (_u *DownloadFileUpdateOne) SetDownloader(v string) *DownloadFileUpdateOne {
	_u.mutation.SetDownloader(v)
	return _u
}

// SetNillableDownloader sets the "downloader" field if the given value is not nil.
func (_u *DownloadFileUpdateOne) SetNillableDownloader(v *string) *DownloadFileUpdateOne {
	if v != nil {
		_u.SetDownloader(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DownloadFileUpdateOne) SetFilePath(v string) *DownloadFileUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DownloadFileUpdateOne) SetNillableFilePath(v *string) *DownloadFileUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFullPath sets the "full_path" field.
func (_u *DownloadFileUpdateOne) SetFullPath(v string) *DownloadFileUpdateOne {
	_u.mutation.SetFullPath(v)
	return _u
}

// SetNillableFullPath sets the "full_path" field if the given value is not nil.
func (_u *DownloadFileUpdateOne) SetNillableFullPath(v *string) *DownloadFileUpdateOne {
	if v != nil {
		_u.SetFullPath(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *DownloadFileUpdateOne) SetState(v int) *DownloadFileUpdateOne {
	_u.mutation.ResetState()
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *DownloadFileUpdateOne) SetNillableState(v *int) *DownloadFileUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// AddState adds value to the "state" field.
func (_u *DownloadFileUpdateOne) AddState(v int) *DownloadFileUpdateOne {
	_u.mutation.AddState(v)
	return _u
}

// Mutation returns the DownloadFileMutation object of the builder.
func (_u *DownloadFileUpdateOne) Mutation() *DownloadFileMutation {
	return _u.mutation
}

// Where appends a list predicates to the DownloadFileUpdate builder.
func (_u *DownloadFileUpdateOne) Where(ps ...predicate.DownloadFile) *DownloadFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DownloadFileUpdateOne) Select(field string, fields ...string) *DownloadFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DownloadFile entity.
func (_u *DownloadFileUpdateOne) Save(ctx context.Context) (*DownloadFile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DownloadFileUpdateOne) SaveX(ctx context.Context) *DownloadFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DownloadFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DownloadFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DownloadFileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := downloadfile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DownloadFileUpdateOne) sqlSave(ctx context.Context) (_node *DownloadFile, err error) {
	_spec := sqlgraph.NewUpdateSpec(downloadfile.Table, downloadfile.Columns, sqlgraph.NewFieldSpec(downloadfile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "DownloadFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, downloadfile.FieldID)
		for _, f := range fields {
			if !downloadfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != downloadfile.FieldID {
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
		_spec.SetField(downloadfile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DownloadHash(); ok {
		_spec.SetField(downloadfile.FieldDownloadHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Downloader(); ok {
		_spec.SetField(downloadfile.FieldDownloader, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(downloadfile.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullPath(); ok {
		_spec.SetField(downloadfile.FieldFullPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(downloadfile.FieldState, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedState(); ok {
		_spec.AddField(downloadfile.FieldState, field.TypeInt, value)
	}
	_node = &DownloadFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{downloadfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
