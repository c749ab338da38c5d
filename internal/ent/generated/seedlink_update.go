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
	"github.com/mediareap/mediareap/internal/ent/generated/seedlink"
)

// SeedLinkUpdate is the builder for updating SeedLink entities.
type SeedLinkUpdate struct {
	config
	hooks    []Hook
	mutation *SeedLinkMutation
}

// Where appends a list predicates to the SeedLinkUpdate builder.
func (_u *SeedLinkUpdate) Where(ps ...predicate.SeedLink) *SeedLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SeedLinkUpdate) SetUpdatedAt(v time.Time) *SeedLinkUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCollaborator sets the "collaborator" field.
func (_u *SeedLinkUpdate) SetCollaborator(v string) *SeedLinkUpdate {
	_u.mutation.SetCollaborator(v)
	return _u
}

// SetNillableCollaborator sets the "collaborator" field if the given value is not nil.
func (_u *SeedLinkUpdate) SetNillableCollaborator(v *string) *SeedLinkUpdate {
	if v != nil {
		_u.SetCollaborator(*v)
	}
	return _u
}

// SetRootHash sets the "root_hash" field.
func (_u *SeedLinkUpdate) SetRootHash(v string) *SeedLinkUpdate {
	_u.mutation.SetRootHash(v)
	return _u
}

// SetNillableRootHash sets the "root_hash" field if the given value is not nil.
func (_u *SeedLinkUpdate) SetNillableRootHash(v *string) *SeedLinkUpdate {
	if v != nil {
		_u.SetRootHash(*v)
	}
	return _u
}

// SetLinks sets the "links" field.
func (_u *SeedLinkUpdate) SetLinks(v string) *SeedLinkUpdate {
	_u.mutation.SetLinks(v)
	return _u
}

// SetNillableLinks sets the "links" field if the given value is not nil.
func (_u *SeedLinkUpdate) SetNillableLinks(v *string) *SeedLinkUpdate {
	if v != nil {
		_u.SetLinks(*v)
	}
	return _u
}

// Mutation returns the SeedLinkMutation object of the builder.
func (_u *SeedLinkUpdate) Mutation() *SeedLinkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SeedLinkUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SeedLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SeedLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SeedLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SeedLinkUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := seedlink.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SeedLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(seedlink.Table, seedlink.Columns, sqlgraph.NewFieldSpec(seedlink.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(seedlink.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Collaborator(); ok {
		_spec.SetField(seedlink.FieldCollaborator, field.TypeString, value)
	}
	if value, ok := _u.mutation.RootHash(); ok {
		_spec.SetField(seedlink.FieldRootHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Links(); ok {
		_spec.SetField(seedlink.FieldLinks, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{seedlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SeedLinkUpdateOne is the builder for updating a single SeedLink entity.
type SeedLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SeedLinkMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SeedLinkUpdateOne) SetUpdatedAt(v time.Time) *SeedLinkUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCollaborator sets the "collaborator" field.
func (_u *SeedLinkUpdateOne) SetCollaborator(v string) *SeedLinkUpdateOne {
	_u.mutation.SetCollaborator(v)
	return _u
}

// SetNillableCollaborator sets the "collaborator" field if the given value is not nil.
func (_u *SeedLinkUpdateOne) SetNillableCollaborator(v *string) *SeedLinkUpdateOne {
	if v != nil {
		_u.SetCollaborator(*v)
	}
	return _u
}

// SetRootHash sets the "root_hash" field.
func (_u *SeedLinkUpdateOne) SetRootHash(v string) *SeedLinkUpdateOne {
	_u.mutation.SetRootHash(v)
	return _u
}

// SetNillableRootHash sets the "root_hash" field if the given value is not nil.
func (_u *SeedLinkUpdateOne) SetNillableRootHash(v *string) *SeedLinkUpdateOne {
	if v != nil {
		_u.SetRootHash(*v)
	}
	return _u
}

// SetLinks sets the "links" field.
func (_u *SeedLinkUpdateOne) SetLinks(v string) *SeedLinkUpdateOne {
	_u.mutation.SetLinks(v)
	return _u
}

// SetNillableLinks sets the "links" field if the given value is not nil.
func (_u *SeedLinkUpdateOne) SetNillableLinks(v *string) *SeedLinkUpdateOne {
	if v != nil {
		_u.SetLinks(*v)
	}
	return _u
}

// Mutation returns the SeedLinkMutation object of the builder.
func (_u *SeedLinkUpdateOne) Mutation() *SeedLinkMutation {
	return _u.mutation
}

// Where appends a list predicates to the SeedLinkUpdate builder.
func (_u *SeedLinkUpdateOne) Where(ps ...predicate.SeedLink) *SeedLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SeedLinkUpdateOne) Select(field string, fields ...string) *SeedLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SeedLink entity.
func (_u *SeedLinkUpdateOne) Save(ctx context.Context) (*SeedLink, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SeedLinkUpdateOne) SaveX(ctx context.Context) *SeedLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SeedLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SeedLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SeedLinkUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := seedlink.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SeedLinkUpdateOne) sqlSave(ctx context.Context) (_node *SeedLink, err error) {
	_spec := sqlgraph.NewUpdateSpec(seedlink.Table, seedlink.Columns, sqlgraph.NewFieldSpec(seedlink.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "SeedLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, seedlink.FieldID)
		for _, f := range fields {
			if !seedlink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != seedlink.FieldID {
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
		_spec.SetField(seedlink.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Collaborator(); ok {
		_spec.SetField(seedlink.FieldCollaborator, field.TypeString, value)
	}
	if value, ok := _u.mutation.RootHash(); ok {
		_spec.SetField(seedlink.FieldRootHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Links(); ok {
		_spec.SetField(seedlink.FieldLinks, field.TypeString, value)
	}
	_node = &SeedLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{seedlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
