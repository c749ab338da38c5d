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
	"github.com/mediareap/mediareap/internal/ent/generated/scanmark"
	ulid "github.com/oklog/ulid/v2"
)

// ScanMarkCreate is the builder for creating a ScanMark entity.
type ScanMarkCreate struct {
	config
	mutation *ScanMarkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScanMarkCreate) SetCreatedAt(v time.Time) *ScanMarkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScanMarkCreate) SetNillableCreatedAt(v *time.Time) *ScanMarkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScanMarkCreate) SetUpdatedAt(v time.Time) *ScanMarkCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScanMarkCreate) SetNillableUpdatedAt(v *time.Time) *ScanMarkCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetServer sets the "server" field.
func (_c *ScanMarkCreate) SetServer(v string) *ScanMarkCreate {
	_c.mutation.SetServer(v)
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *ScanMarkCreate) SetLastSeen(v time.Time) *ScanMarkCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ScanMarkCreate) SetID(v ulid.ULID) *ScanMarkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScanMarkCreate) SetNillableID(v *ulid.ULID) *ScanMarkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ScanMarkMutation object of the builder.
func (_c *ScanMarkCreate) Mutation() *ScanMarkMutation {
	return _c.mutation
}

// Save creates the ScanMark in the database.
func (_c *ScanMarkCreate) Save(ctx context.Context) (*ScanMark, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScanMarkCreate) SaveX(ctx context.Context) *ScanMark {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanMarkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanMarkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScanMarkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scanmark.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scanmark.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := scanmark.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScanMarkCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "ScanMark.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "ScanMark.updated_at"`)}
	}
	if _, ok := _c.mutation.Server(); !ok {
		return &ValidationError{Name: "server", err: errors.New(`generated: missing required field "ScanMark.server"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`generated: missing required field "ScanMark.last_seen"`)}
	}
	return nil
}

func (_c *ScanMarkCreate) sqlSave(ctx context.Context) (*ScanMark, error) {
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

func (_c *ScanMarkCreate) createSpec() (*ScanMark, *sqlgraph.CreateSpec) {
	var (
		_node = &ScanMark{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scanmark.Table, sqlgraph.NewFieldSpec(scanmark.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scanmark.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scanmark.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Server(); ok {
		_spec.SetField(scanmark.FieldServer, field.TypeString, value)
		_node.Server = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(scanmark.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScanMark.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScanMarkUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ScanMarkCreate) OnConflict(opts ...sql.ConflictOption) *ScanMarkUpsertOne {
	_c.conflict = opts
	return &ScanMarkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScanMark.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScanMarkCreate) OnConflictColumns(columns ...string) *ScanMarkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScanMarkUpsertOne{
		create: _c,
	}
}

type (
	// ScanMarkUpsertOne is the builder for "upsert"-ing
	//  one ScanMark node.
	ScanMarkUpsertOne struct {
		create *ScanMarkCreate
	}

	// ScanMarkUpsert is the "OnConflict" setter.
	ScanMarkUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ScanMarkUpsert) SetUpdatedAt(v time.Time) *ScanMarkUpsert {
	u.Set(scanmark.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScanMarkUpsert) UpdateUpdatedAt() *ScanMarkUpsert {
	u.SetExcluded(scanmark.FieldUpdatedAt)
	return u
}

// SetServer sets the "server" field.
func (u *ScanMarkUpsert) SetServer(v string) *ScanMarkUpsert {
	u.Set(scanmark.FieldServer, v)
	return u
}

// UpdateServer sets the "server" field to the value that was provided on create.
func (u *ScanMarkUpsert) UpdateServer() *ScanMarkUpsert {
	u.SetExcluded(scanmark.FieldServer)
	return u
}

// SetLastSeen sets the "last_seen" field.
func (u *ScanMarkUpsert) SetLastSeen(v time.Time) *ScanMarkUpsert {
	u.Set(scanmark.FieldLastSeen, v)
	return u
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *ScanMarkUpsert) UpdateLastSeen() *ScanMarkUpsert {
	u.SetExcluded(scanmark.FieldLastSeen)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ScanMark.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scanmark.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScanMarkUpsertOne) UpdateNewValues() *ScanMarkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(scanmark.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(scanmark.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScanMark.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScanMarkUpsertOne) Ignore() *ScanMarkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScanMarkUpsertOne) DoNothing() *ScanMarkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScanMarkCreate.OnConflict
// documentation for more info.
func (u *ScanMarkUpsertOne) Update(set func(*ScanMarkUpsert)) *ScanMarkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScanMarkUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScanMarkUpsertOne) SetUpdatedAt(v time.Time) *ScanMarkUpsertOne {
	return u.Update(func(s *ScanMarkUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScanMarkUpsertOne) UpdateUpdatedAt() *ScanMarkUpsertOne {
	return u.Update(func(s *ScanMarkUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetServer sets the "server" field.
func (u *ScanMarkUpsertOne) SetServer(v string) *ScanMarkUpsertOne {
	return u.Update(func(s *ScanMarkUpsert) {
		s.SetServer(v)
	})
}

// UpdateServer sets the "server" field to the value that was provided on create.
func (u *ScanMarkUpsertOne) UpdateServer() *ScanMarkUpsertOne {
	return u.Update(func(s *ScanMarkUpsert) {
		s.UpdateServer()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *ScanMarkUpsertOne) SetLastSeen(v time.Time) *ScanMarkUpsertOne {
	return u.Update(func(s *ScanMarkUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *ScanMarkUpsertOne) UpdateLastSeen() *ScanMarkUpsertOne {
	return u.Update(func(s *ScanMarkUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *ScanMarkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for ScanMarkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScanMarkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScanMarkUpsertOne) ID(ctx context.Context) (id ulid.ULID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("generated: ScanMarkUpsertOne.ID is not supported by MySQL driver. Use ScanMarkUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScanMarkUpsertOne) IDX(ctx context.Context) ulid.ULID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScanMarkCreateBulk is the builder for creating many ScanMark entities in bulk.
type ScanMarkCreateBulk struct {
	config
	err      error
	builders []*ScanMarkCreate
	conflict []sql.ConflictOption
}

// Save creates the ScanMark entities in the database.
func (_c *ScanMarkCreateBulk) Save(ctx context.Context) ([]*ScanMark, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScanMark, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScanMarkMutation)
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
func (_c *ScanMarkCreateBulk) SaveX(ctx context.Context) []*ScanMark {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanMarkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanMarkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScanMark.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScanMarkUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ScanMarkCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScanMarkUpsertBulk {
	_c.conflict = opts
	return &ScanMarkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScanMark.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScanMarkCreateBulk) OnConflictColumns(columns ...string) *ScanMarkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScanMarkUpsertBulk{
		create: _c,
	}
}

// ScanMarkUpsertBulk is the builder for "upsert"-ing
// a bulk of ScanMark nodes.
type ScanMarkUpsertBulk struct {
	create *ScanMarkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ScanMark.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scanmark.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScanMarkUpsertBulk) UpdateNewValues() *ScanMarkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(scanmark.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(scanmark.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScanMark.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScanMarkUpsertBulk) Ignore() *ScanMarkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScanMarkUpsertBulk) DoNothing() *ScanMarkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScanMarkCreateBulk.OnConflict
// documentation for more info.
func (u *ScanMarkUpsertBulk) Update(set func(*ScanMarkUpsert)) *ScanMarkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScanMarkUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScanMarkUpsertBulk) SetUpdatedAt(v time.Time) *ScanMarkUpsertBulk {
	return u.Update(func(s *ScanMarkUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScanMarkUpsertBulk) UpdateUpdatedAt() *ScanMarkUpsertBulk {
	return u.Update(func(s *ScanMarkUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetServer sets the "server" field.
func (u *ScanMarkUpsertBulk) SetServer(v string) *ScanMarkUpsertBulk {
	return u.Update(func(s *ScanMarkUpsert) {
		s.SetServer(v)
	})
}

// UpdateServer sets the "server" field to the value that was provided on create.
func (u *ScanMarkUpsertBulk) UpdateServer() *ScanMarkUpsertBulk {
	return u.Update(func(s *ScanMarkUpsert) {
		s.UpdateServer()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *ScanMarkUpsertBulk) SetLastSeen(v time.Time) *ScanMarkUpsertBulk {
	return u.Update(func(s *ScanMarkUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *ScanMarkUpsertBulk) UpdateLastSeen() *ScanMarkUpsertBulk {
	return u.Update(func(s *ScanMarkUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *ScanMarkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the ScanMarkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for ScanMarkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScanMarkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
