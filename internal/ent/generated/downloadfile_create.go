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
	"github.com/mediareap/mediareap/internal/ent/generated/downloadfile"
	ulid "github.com/oklog/ulid/v2"
)

// DownloadFileCreate is the builder for creating a DownloadFile entity.
type DownloadFileCreate struct {
	config
	mutation *DownloadFileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DownloadFileCreate) SetCreatedAt(v time.Time) *DownloadFileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DownloadFileCreate) SetNillableCreatedAt(v *time.Time) *DownloadFileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DownloadFileCreate) SetUpdatedAt(v time.Time) *DownloadFileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DownloadFileCreate) SetNillableUpdatedAt(v *time.Time) *DownloadFileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDownloadHash sets the "download_hash" field.
func (_c *DownloadFileCreate) SetDownloadHash(v string) *DownloadFileCreate {
	_c.mutation.SetDownloadHash(v)
	return _c
}

// SetDownloader sets the "downloader" field.
func (_c *DownloadFileCreate) SetDownloader(v string) *DownloadFileCreate {
	_c.mutation.SetDownloader(v)
	return _c
}

// SetNillableDownloader sets the "downloader" field if the given value is not nil.
func (_c *DownloadFileCreate) SetNillableDownloader(v *string) *DownloadFileCreate {
	if v != nil {
		_c.SetDownloader(*v)
	}
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *DownloadFileCreate) SetFilePath(v string) *DownloadFileCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetFullPath sets the "full_path" field.
func (_c *DownloadFileCreate) SetFullPath(v string) *DownloadFileCreate {
	_c.mutation.SetFullPath(v)
	return _c
}

// SetState sets the "state" field.
func (_c *DownloadFileCreate) SetState(v int) *DownloadFileCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *DownloadFileCreate) SetNillableState(v *int) *DownloadFileCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DownloadFileCreate) SetID(v ulid.ULID) *DownloadFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DownloadFileCreate) SetNillableID(v *ulid.ULID) *DownloadFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DownloadFileMutation object of the builder.
func (_c *DownloadFileCreate) Mutation() *DownloadFileMutation {
	return _c.mutation
}

// Save creates the DownloadFile in the database.
func (_c *DownloadFileCreate) Save(ctx context.Context) (*DownloadFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DownloadFileCreate) SaveX(ctx context.Context) *DownloadFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DownloadFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DownloadFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DownloadFileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := downloadfile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := downloadfile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Downloader(); !ok {
		v := downloadfile.DefaultDownloader
		_c.mutation.SetDownloader(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := downloadfile.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := downloadfile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DownloadFileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "DownloadFile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "DownloadFile.updated_at"`)}
	}
	if _, ok := _c.mutation.DownloadHash(); !ok {
		return &ValidationError{Name: "download_hash", err: errors.New(`generated: missing required field "DownloadFile.download_hash"`)}
	}
	if _, ok := _c.mutation.Downloader(); !ok {
		return &ValidationError{Name: "downloader", err: errors.New(`generated: missing required field "DownloadFile.downloader"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`generated: missing required field "DownloadFile.file_path"`)}
	}
	if _, ok := _c.mutation.FullPath(); !ok {
		return &ValidationError{Name: "full_path", err: errors.New(`generated: missing required field "DownloadFile.full_path"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`generated: missing required field "DownloadFile.state"`)}
	}
	return nil
}

func (_c *DownloadFileCreate) sqlSave(ctx context.Context) (*DownloadFile, error) {
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

func (_c *DownloadFileCreate) createSpec() (*DownloadFile, *sqlgraph.CreateSpec) {
	var (
		_node = &DownloadFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(downloadfile.Table, sqlgraph.NewFieldSpec(downloadfile.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(downloadfile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(downloadfile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DownloadHash(); ok {
		_spec.SetField(downloadfile.FieldDownloadHash, field.TypeString, value)
		_node.DownloadHash = value
	}
	if value, ok := _c.mutation.Downloader(); ok {
		_spec.SetField(downloadfile.FieldDownloader, field.TypeString, value)
		_node.Downloader = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(downloadfile.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.FullPath(); ok {
		_spec.SetField(downloadfile.FieldFullPath, field.TypeString, value)
		_node.FullPath = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(downloadfile.FieldState, field.TypeInt, value)
		_node.State = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DownloadFile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DownloadFileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DownloadFileCreate) OnConflict(opts ...sql.ConflictOption) *DownloadFileUpsertOne {
	_c.conflict = opts
	return &DownloadFileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DownloadFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DownloadFileCreate) OnConflictColumns(columns ...string) *DownloadFileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DownloadFileUpsertOne{
		create: _c,
	}
}

type (
	// DownloadFileUpsertOne is the builder for "upsert"-ing
	//  one DownloadFile node.
	DownloadFileUpsertOne struct {
		create *DownloadFileCreate
	}

	// DownloadFileUpsert is the "OnConflict" setter.
	DownloadFileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DownloadFileUpsert) SetUpdatedAt(v time.Time) *DownloadFileUpsert {
	u.Set(downloadfile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DownloadFileUpsert) UpdateUpdatedAt() *DownloadFileUpsert {
	u.SetExcluded(downloadfile.FieldUpdatedAt)
	return u
}

// SetDownloadHash sets the "download_hash" field.
func (u *DownloadFileUpsert) SetDownloadHash(v string) *DownloadFileUpsert {
	u.Set(downloadfile.FieldDownloadHash, v)
	return u
}

// UpdateDownloadHash sets the "download_hash" field to the value that was provided on create.
func (u *DownloadFileUpsert) UpdateDownloadHash() *DownloadFileUpsert {
	u.SetExcluded(downloadfile.FieldDownloadHash)
	return u
}

// SetDownloader sets the "downloader" field.
func (u *DownloadFileUpsert) SetDownloader(v string) *DownloadFileUpsert {
	u.Set(downloadfile.FieldDownloader, v)
	return u
}

// UpdateDownloader sets the "downloader" field to the value that was provided on create.
func (u *DownloadFileUpsert) UpdateDownloader() *DownloadFileUpsert {
	u.SetExcluded(downloadfile.FieldDownloader)
	return u
}

// SetFilePath sets the "file_path" field.
func (u *DownloadFileUpsert) SetFilePath(v string) *DownloadFileUpsert {
	u.Set(downloadfile.FieldFilePath, v)
	return u
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *DownloadFileUpsert) UpdateFilePath() *DownloadFileUpsert {
	u.SetExcluded(downloadfile.FieldFilePath)
	return u
}

// SetFullPath sets the "full_path" field.
func (u *DownloadFileUpsert) SetFullPath(v string) *DownloadFileUpsert {
	u.Set(downloadfile.FieldFullPath, v)
	return u
}

// UpdateFullPath sets the "full_path" field to the value that was provided on create.
func (u *DownloadFileUpsert) UpdateFullPath() *DownloadFileUpsert {
	u.SetExcluded(downloadfile.FieldFullPath)
	return u
}

// SetState sets the "state" field.
func (u *DownloadFileUpsert) SetState(v int) *DownloadFileUpsert {
	u.Set(downloadfile.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *DownloadFileUpsert) UpdateState() *DownloadFileUpsert {
	u.SetExcluded(downloadfile.FieldState)
	return u
}

// AddState adds v to the "state" field.
func (u *DownloadFileUpsert) AddState(v int) *DownloadFileUpsert {
	u.Add(downloadfile.FieldState, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DownloadFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(downloadfile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DownloadFileUpsertOne) UpdateNewValues() *DownloadFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(downloadfile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(downloadfile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DownloadFile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DownloadFileUpsertOne) Ignore() *DownloadFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DownloadFileUpsertOne) DoNothing() *DownloadFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DownloadFileCreate.OnConflict
// documentation for more info.
func (u *DownloadFileUpsertOne) Update(set func(*DownloadFileUpsert)) *DownloadFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DownloadFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DownloadFileUpsertOne) SetUpdatedAt(v time.Time) *DownloadFileUpsertOne {
	return u.Update(func(s *DownloadFileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DownloadFileUpsertOne) UpdateUpdatedAt() *DownloadFileUpsertOne {
	return u.Update(func(s *DownloadFileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDownloadHash sets the "download_hash" field.
func (u *DownloadFileUpsertOne) SetDownloadHash(v string) *DownloadFileUpsertOne {
	return u.Update(func(s *DownloadFileUpsert) {
		s.SetDownloadHash(v)
	})
}

// UpdateDownloadHash sets the "download_hash" field to the value that was provided on create.
func (u *DownloadFileUpsertOne) UpdateDownloadHash() *DownloadFileUpsertOne {
	return u.Update(func(s *DownloadFileUpsert) {
		s.UpdateDownloadHash()
	})
}

// SetDownloader sets the "downloader" field.
func (u *DownloadFileUpsertOne) SetDownloader(v string) *DownloadFileUpsertOne {
	return u.Update(func(s *DownloadFileUpsert) {
		s.SetDownloader(v)
	})
}

// UpdateDownloader sets the "downloader" field to the value that was provided on create.
func (u *DownloadFileUpsertOne) UpdateDownloader() *DownloadFileUpsertOne {
	return u.Update(func(s *DownloadFileUpsert) {
		s.UpdateDownloader()
	})
}

// SetFilePath sets the "file_path" field.
func (u *DownloadFileUpsertOne) SetFilePath(v string) *DownloadFileUpsertOne {
	return u.Update(func(s *DownloadFileUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *DownloadFileUpsertOne) UpdateFilePath() *DownloadFileUpsertOne {
	return u.Update(func(s *DownloadFileUpsert) {
		s.UpdateFilePath()
	})
}

// SetFullPath sets the "full_path" field.
func (u *DownloadFileUpsertOne) SetFullPath(v string) *DownloadFileUpsertOne {
	return u.Update(func(s *DownloadFileUpsert) {
		s.SetFullPath(v)
	})
}

// UpdateFullPath sets the "full_path" field to the value that was provided on create.
func (u *DownloadFileUpsertOne) UpdateFullPath() *DownloadFileUpsertOne {
	return u.Update(func(s *DownloadFileUpsert) {
		s.UpdateFullPath()
	})
}

// SetState sets the "state" field.
func (u *DownloadFileUpsertOne) SetState(v int) *DownloadFileUpsertOne {
	return u.Update(func(s *DownloadFileUpsert) {
		s.SetState(v)
	})
}

// AddState adds v to the "state" field.
func (u *DownloadFileUpsertOne) AddState(v int) *DownloadFileUpsertOne {
	return u.Update(func(s *DownloadFileUpsert) {
		s.AddState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *DownloadFileUpsertOne) UpdateState() *DownloadFileUpsertOne {
	return u.Update(func(s *DownloadFileUpsert) {
		s.UpdateState()
	})
}

// Exec executes the query.
func (u *DownloadFileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for DownloadFileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DownloadFileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DownloadFileUpsertOne) ID(ctx context.Context) (id ulid.ULID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("generated: DownloadFileUpsertOne.ID is not supported by MySQL driver. Use DownloadFileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DownloadFileUpsertOne) IDX(ctx context.Context) ulid.ULID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DownloadFileCreateBulk is the builder for creating many DownloadFile entities in bulk.
type DownloadFileCreateBulk struct {
	config
	err      error
	builders []*DownloadFileCreate
	conflict []sql.ConflictOption
}

// Save creates the DownloadFile entities in the database.
func (_c *DownloadFileCreateBulk) Save(ctx context.Context) ([]*DownloadFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DownloadFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DownloadFileMutation)
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
func (_c *DownloadFileCreateBulk) SaveX(ctx context.Context) []*DownloadFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DownloadFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DownloadFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DownloadFile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DownloadFileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DownloadFileCreateBulk) OnConflict(opts ...sql.ConflictOption) *DownloadFileUpsertBulk {
	_c.conflict = opts
	return &DownloadFileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DownloadFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DownloadFileCreateBulk) OnConflictColumns(columns ...string) *DownloadFileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DownloadFileUpsertBulk{
		create: _c,
	}
}

// DownloadFileUpsertBulk is the builder for "upsert"-ing
// a bulk of DownloadFile nodes.
type DownloadFileUpsertBulk struct {
	create *DownloadFileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DownloadFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(downloadfile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DownloadFileUpsertBulk) UpdateNewValues() *DownloadFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(downloadfile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(downloadfile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DownloadFile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DownloadFileUpsertBulk) Ignore() *DownloadFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DownloadFileUpsertBulk) DoNothing() *DownloadFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DownloadFileCreateBulk.OnConflict
// documentation for more info.
func (u *DownloadFileUpsertBulk) Update(set func(*DownloadFileUpsert)) *DownloadFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DownloadFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DownloadFileUpsertBulk) SetUpdatedAt(v time.Time) *DownloadFileUpsertBulk {
	return u.Update(func(s *DownloadFileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DownloadFileUpsertBulk) UpdateUpdatedAt() *DownloadFileUpsertBulk {
	return u.Update(func(s *DownloadFileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDownloadHash sets the "download_hash" field.
func (u *DownloadFileUpsertBulk) SetDownloadHash(v string) *DownloadFileUpsertBulk {
	return u.Update(func(s *DownloadFileUpsert) {
		s.SetDownloadHash(v)
	})
}

// UpdateDownloadHash sets the "download_hash" field to the value that was provided on create.
func (u *DownloadFileUpsertBulk) UpdateDownloadHash() *DownloadFileUpsertBulk {
	return u.Update(func(s *DownloadFileUpsert) {
		s.UpdateDownloadHash()
	})
}

// SetDownloader sets the "downloader" field.
func (u *DownloadFileUpsertBulk) SetDownloader(v string) *DownloadFileUpsertBulk {
	return u.Update(func(s *DownloadFileUpsert) {
		s.SetDownloader(v)
	})
}

// UpdateDownloader sets the "downloader" field to the value that was provided on create.
func (u *DownloadFileUpsertBulk) UpdateDownloader() *DownloadFileUpsertBulk {
	return u.Update(func(s *DownloadFileUpsert) {
		s.UpdateDownloader()
	})
}

// SetFilePath sets the "file_path" field.
func (u *DownloadFileUpsertBulk) SetFilePath(v string) *DownloadFileUpsertBulk {
	return u.Update(func(s *DownloadFileUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *DownloadFileUpsertBulk) UpdateFilePath() *DownloadFileUpsertBulk {
	return u.Update(func(s *DownloadFileUpsert) {
		s.UpdateFilePath()
	})
}

// SetFullPath sets the "full_path" field.
func (u *DownloadFileUpsertBulk) SetFullPath(v string) *DownloadFileUpsertBulk {
	return u.Update(func(s *DownloadFileUpsert) {
		s.SetFullPath(v)
	})
}

// UpdateFullPath sets the "full_path" field to the value that was provided on create.
func (u *DownloadFileUpsertBulk) UpdateFullPath() *DownloadFileUpsertBulk {
	return u.Update(func(s *DownloadFileUpsert) {
		s.UpdateFullPath()
	})
}

// SetState sets the "state" field.
func (u *DownloadFileUpsertBulk) SetState(v int) *DownloadFileUpsertBulk {
	return u.Update(func(s *DownloadFileUpsert) {
		s.SetState(v)
	})
}

// AddState adds v to the "state" field.
func (u *DownloadFileUpsertBulk) AddState(v int) *DownloadFileUpsertBulk {
	return u.Update(func(s *DownloadFileUpsert) {
		s.AddState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *DownloadFileUpsertBulk) UpdateState() *DownloadFileUpsertBulk {
	return u.Update(func(s *DownloadFileUpsert) {
		s.UpdateState()
	})
}

// Exec executes the query.
func (u *DownloadFileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the DownloadFileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for DownloadFileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DownloadFileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
