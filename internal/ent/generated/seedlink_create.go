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
	"github.com/mediareap/mediareap/internal/ent/generated/seedlink"
	ulid "github.com/oklog/ulid/v2"
)

// SeedLinkCreate is the builder for creating a SeedLink entity.
type SeedLinkCreate struct {
	config
	mutation *SeedLinkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SeedLinkCreate) SetCreatedAt(v time.Time) *SeedLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SeedLinkCreate) SetNillableCreatedAt(v *time.Time) *SeedLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SeedLinkCreate) SetUpdatedAt(v time.Time) *SeedLinkCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SeedLinkCreate) SetNillableUpdatedAt(v *time.Time) *SeedLinkCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCollaborator sets the "collaborator" field.
func (_c *SeedLinkCreate) SetCollaborator(v string) *SeedLinkCreate {
	_c.mutation.SetCollaborator(v)
	return _c
}

// SetNillableCollaborator sets the "collaborator" field if the given value is not nil.
func (_c *SeedLinkCreate) SetNillableCollaborator(v *string) *SeedLinkCreate {
	if v != nil {
		_c.SetCollaborator(*v)
	}
	return _c
}

// SetRootHash sets the "root_hash" field.
func (_c *SeedLinkCreate) SetRootHash(v string) *SeedLinkCreate {
	_c.mutation.SetRootHash(v)
	return _c
}

// SetLinks sets the "links" field.
func (_c *SeedLinkCreate) SetLinks(v string) *SeedLinkCreate {
	_c.mutation.SetLinks(v)
	return _c
}

// SetNillableLinks sets the "links" field if the given value is not nil.
func (_c *SeedLinkCreate) SetNillableLinks(v *string) *SeedLinkCreate {
	if v != nil {
		_c.SetLinks(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SeedLinkCreate) SetID(v ulid.ULID) *SeedLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SeedLinkCreate) SetNillableID(v *ulid.ULID) *SeedLinkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SeedLinkMutation object of the builder.
func (_c *SeedLinkCreate) Mutation() *SeedLinkMutation {
	return _c.mutation
}

// Save creates the SeedLink in the database.
func (_c *SeedLinkCreate) Save(ctx context.Context) (*SeedLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SeedLinkCreate) SaveX(ctx context.Context) *SeedLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SeedLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SeedLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SeedLinkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := seedlink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := seedlink.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Collaborator(); !ok {
		v := seedlink.DefaultCollaborator
		_c.mutation.SetCollaborator(v)
	}
	if _, ok := _c.mutation.Links(); !ok {
		v := seedlink.DefaultLinks
		_c.mutation.SetLinks(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := seedlink.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SeedLinkCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "SeedLink.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "SeedLink.updated_at"`)}
	}
	if _, ok := _c.mutation.Collaborator(); !ok {
		return &ValidationError{Name: "collaborator", err: errors.New(`generated: missing required field "SeedLink.collaborator"`)}
	}
	if _, ok := _c.mutation.RootHash(); !ok {
		return &ValidationError{Name: "root_hash", err: errors.New(`generated: missing required field "SeedLink.root_hash"`)}
	}
	if _, ok := _c.mutation.Links(); !ok {
		return &ValidationError{Name: "links", err: errors.New(`generated: missing required field "SeedLink.links"`)}
	}
	return nil
}

func (_c *SeedLinkCreate) sqlSave(ctx context.Context) (*SeedLink, error) {
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

func (_c *SeedLinkCreate) createSpec() (*SeedLink, *sqlgraph.CreateSpec) {
	var (
		_node = &SeedLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(seedlink.Table, sqlgraph.NewFieldSpec(seedlink.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(seedlink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(seedlink.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Collaborator(); ok {
		_spec.SetField(seedlink.FieldCollaborator, field.TypeString, value)
		_node.Collaborator = value
	}
	if value, ok := _c.mutation.RootHash(); ok {
		_spec.SetField(seedlink.FieldRootHash, field.TypeString, value)
		_node.RootHash = value
	}
	if value, ok := _c.mutation.Links(); ok {
		_spec.SetField(seedlink.FieldLinks, field.TypeString, value)
		_node.Links = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SeedLink.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SeedLinkUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SeedLinkCreate) OnConflict(opts ...sql.ConflictOption) *SeedLinkUpsertOne {
	_c.conflict = opts
	return &SeedLinkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SeedLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SeedLinkCreate) OnConflictColumns(columns ...string) *SeedLinkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SeedLinkUpsertOne{
		create: _c,
	}
}

type (
	// SeedLinkUpsertOne is the builder for "upsert"-ing
	//  one SeedLink node.
	SeedLinkUpsertOne struct {
		create *SeedLinkCreate
	}

	// SeedLinkUpsert is the "OnConflict" setter.
	SeedLinkUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SeedLinkUpsert) SetUpdatedAt(v time.Time) *SeedLinkUpsert {
	u.Set(seedlink.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SeedLinkUpsert) UpdateUpdatedAt() *SeedLinkUpsert {
	u.SetExcluded(seedlink.FieldUpdatedAt)
	return u
}

// SetCollaborator sets the "collaborator" field.
func (u *SeedLinkUpsert) SetCollaborator(v string) *SeedLinkUpsert {
	u.Set(seedlink.FieldCollaborator, v)
	return u
}

// UpdateCollaborator sets the "collaborator" field to the value that was provided on create.
func (u *SeedLinkUpsert) UpdateCollaborator() *SeedLinkUpsert {
	u.SetExcluded(seedlink.FieldCollaborator)
	return u
}

// SetRootHash sets the "root_hash" field.
func (u *SeedLinkUpsert) SetRootHash(v string) *SeedLinkUpsert {
	u.Set(seedlink.FieldRootHash, v)
	return u
}

// UpdateRootHash sets the "root_hash" field to the value that was provided on create.
func (u *SeedLinkUpsert) UpdateRootHash() *SeedLinkUpsert {
	u.SetExcluded(seedlink.FieldRootHash)
	return u
}

// SetLinks sets the "links" field.
func (u *SeedLinkUpsert) SetLinks(v string) *SeedLinkUpsert {
	u.Set(seedlink.FieldLinks, v)
	return u
}

// UpdateLinks sets the "links" field to the value that was provided on create.
func (u *SeedLinkUpsert) UpdateLinks() *SeedLinkUpsert {
	u.SetExcluded(seedlink.FieldLinks)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SeedLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(seedlink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SeedLinkUpsertOne) UpdateNewValues() *SeedLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(seedlink.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(seedlink.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SeedLink.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SeedLinkUpsertOne) Ignore() *SeedLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SeedLinkUpsertOne) DoNothing() *SeedLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SeedLinkCreate.OnConflict
// documentation for more info.
func (u *SeedLinkUpsertOne) Update(set func(*SeedLinkUpsert)) *SeedLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SeedLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SeedLinkUpsertOne) SetUpdatedAt(v time.Time) *SeedLinkUpsertOne {
	return u.Update(func(s *SeedLinkUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SeedLinkUpsertOne) UpdateUpdatedAt() *SeedLinkUpsertOne {
	return u.Update(func(s *SeedLinkUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCollaborator sets the "collaborator" field.
func (u *SeedLinkUpsertOne) SetCollaborator(v string) *SeedLinkUpsertOne {
	return u.Update(func(s *SeedLinkUpsert) {
		s.SetCollaborator(v)
	})
}

// UpdateCollaborator sets the "collaborator" field to the value that was provided on create.
func (u *SeedLinkUpsertOne) UpdateCollaborator() *SeedLinkUpsertOne {
	return u.Update(func(s *SeedLinkUpsert) {
		s.UpdateCollaborator()
	})
}

// SetRootHash sets the "root_hash" field.
func (u *SeedLinkUpsertOne) SetRootHash(v string) *SeedLinkUpsertOne {
	return u.Update(func(s *SeedLinkUpsert) {
		s.SetRootHash(v)
	})
}

// UpdateRootHash sets the "root_hash" field to the value that was provided on create.
func (u *SeedLinkUpsertOne) UpdateRootHash() *SeedLinkUpsertOne {
	return u.Update(func(s *SeedLinkUpsert) {
		s.UpdateRootHash()
	})
}

// SetLinks sets the "links" field.
func (u *SeedLinkUpsertOne) SetLinks(v string) *SeedLinkUpsertOne {
	return u.Update(func(s *SeedLinkUpsert) {
		s.SetLinks(v)
	})
}

// UpdateLinks sets the "links" field to the value that was provided on create.
func (u *SeedLinkUpsertOne) UpdateLinks() *SeedLinkUpsertOne {
	return u.Update(func(s *SeedLinkUpsert) {
		s.UpdateLinks()
	})
}

// Exec executes the query.
func (u *SeedLinkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for SeedLinkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SeedLinkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SeedLinkUpsertOne) ID(ctx context.Context) (id ulid.ULID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("generated: SeedLinkUpsertOne.ID is not supported by MySQL driver. Use SeedLinkUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SeedLinkUpsertOne) IDX(ctx context.Context) ulid.ULID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SeedLinkCreateBulk is the builder for creating many SeedLink entities in bulk.
type SeedLinkCreateBulk struct {
	config
	err      error
	builders []*SeedLinkCreate
	conflict []sql.ConflictOption
}

// Save creates the SeedLink entities in the database.
func (_c *SeedLinkCreateBulk) Save(ctx context.Context) ([]*SeedLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SeedLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SeedLinkMutation)
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
func (_c *SeedLinkCreateBulk) SaveX(ctx context.Context) []*SeedLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SeedLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SeedLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SeedLink.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SeedLinkUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SeedLinkCreateBulk) OnConflict(opts ...sql.ConflictOption) *SeedLinkUpsertBulk {
	_c.conflict = opts
	return &SeedLinkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SeedLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SeedLinkCreateBulk) OnConflictColumns(columns ...string) *SeedLinkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SeedLinkUpsertBulk{
		create: _c,
	}
}

// SeedLinkUpsertBulk is the builder for "upsert"-ing
// a bulk of SeedLink nodes.
type SeedLinkUpsertBulk struct {
	create *SeedLinkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SeedLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(seedlink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SeedLinkUpsertBulk) UpdateNewValues() *SeedLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(seedlink.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(seedlink.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SeedLink.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SeedLinkUpsertBulk) Ignore() *SeedLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SeedLinkUpsertBulk) DoNothing() *SeedLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SeedLinkCreateBulk.OnConflict
// documentation for more info.
func (u *SeedLinkUpsertBulk) Update(set func(*SeedLinkUpsert)) *SeedLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SeedLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SeedLinkUpsertBulk) SetUpdatedAt(v time.Time) *SeedLinkUpsertBulk {
	return u.Update(func(s *SeedLinkUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SeedLinkUpsertBulk) UpdateUpdatedAt() *SeedLinkUpsertBulk {
	return u.Update(func(s *SeedLinkUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCollaborator sets the "collaborator" field.
func (u *SeedLinkUpsertBulk) SetCollaborator(v string) *SeedLinkUpsertBulk {
	return u.Update(func(s *SeedLinkUpsert) {
		s.SetCollaborator(v)
	})
}

// UpdateCollaborator sets the "collaborator" field to the value that was provided on create.
func (u *SeedLinkUpsertBulk) UpdateCollaborator() *SeedLinkUpsertBulk {
	return u.Update(func(s *SeedLinkUpsert) {
		s.UpdateCollaborator()
	})
}

// SetRootHash sets the "root_hash" field.
func (u *SeedLinkUpsertBulk) SetRootHash(v string) *SeedLinkUpsertBulk {
	return u.Update(func(s *SeedLinkUpsert) {
		s.SetRootHash(v)
	})
}

// UpdateRootHash sets the "root_hash" field to the value that was provided on create.
func (u *SeedLinkUpsertBulk) UpdateRootHash() *SeedLinkUpsertBulk {
	return u.Update(func(s *SeedLinkUpsert) {
		s.UpdateRootHash()
	})
}

// SetLinks sets the "links" field.
func (u *SeedLinkUpsertBulk) SetLinks(v string) *SeedLinkUpsertBulk {
	return u.Update(func(s *SeedLinkUpsert) {
		s.SetLinks(v)
	})
}

// UpdateLinks sets the "links" field to the value that was provided on create.
func (u *SeedLinkUpsertBulk) UpdateLinks() *SeedLinkUpsertBulk {
	return u.Update(func(s *SeedLinkUpsert) {
		s.UpdateLinks()
	})
}

// Exec executes the query.
func (u *SeedLinkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the SeedLinkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for SeedLinkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SeedLinkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
