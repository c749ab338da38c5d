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
	"github.com/mediareap/mediareap/internal/ent/generated/scanmark"
)

// ScanMarkUpdate is the builder for updating ScanMark entities.
type ScanMarkUpdate struct {
	config
	hooks    []Hook
	mutation *ScanMarkMutation
}

// Where appends a list predicates to the ScanMarkUpdate builder.
func (_u *ScanMarkUpdate) Where(ps ...predicate.ScanMark) *ScanMarkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScanMarkUpdate) SetUpdatedAt(v time.Time) *ScanMarkUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetServer sets the "server" field.
func (_u *ScanMarkUpdate) SetServer(v string) *ScanMarkUpdate {
	_u.mutation.SetServer(v)
	return _u
}

// SetNillableServer sets the "server" field if the given value is not nil.
func (_u *ScanMarkUpdate) SetNillableServer(v *string) *ScanMarkUpdate {
	if v != nil {
		_u.SetServer(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ScanMarkUpdate) SetLastSeen(v time.Time) *ScanMarkUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ScanMarkUpdate) SetNillableLastSeen(v *time.Time) *ScanMarkUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the ScanMarkMutation object of the builder.
func (_u *ScanMarkUpdate) Mutation() *ScanMarkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScanMarkUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanMarkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScanMarkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanMarkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScanMarkUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scanmark.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ScanMarkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(scanmark.Table, scanmark.Columns, sqlgraph.NewFieldSpec(scanmark.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scanmark.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Server(); ok {
		_spec.SetField(scanmark.FieldServer, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(scanmark.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanmark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScanMarkUpdateOne is the builder for updating a single ScanMark entity.
type ScanMarkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanMarkMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScanMarkUpdateOne) SetUpdatedAt(v time.Time) *ScanMarkUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetServer sets the "server" field.
func (_u *ScanMarkUpdateOne) SetServer(v string) *ScanMarkUpdateOne {
	_u.mutation.SetServer(v)
	return _u
}

// SetNillableServer sets the "server" field if the given value is not nil.
func (_u *ScanMarkUpdateOne) SetNillableServer(v *string) *ScanMarkUpdateOne {
	if v != nil {
		_u.SetServer(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ScanMarkUpdateOne) SetLastSeen(v time.Time) *ScanMarkUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ScanMarkUpdateOne) SetNillableLastSeen(v *time.Time) *ScanMarkUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the ScanMarkMutation object of the builder.
func (_u *ScanMarkUpdateOne) Mutation() *ScanMarkMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScanMarkUpdate builder.
func (_u *ScanMarkUpdateOne) Where(ps ...predicate.ScanMark) *ScanMarkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScanMarkUpdateOne) Select(field string, fields ...string) *ScanMarkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScanMark entity.
func (_u *ScanMarkUpdateOne) Save(ctx context.Context) (*ScanMark, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanMarkUpdateOne) SaveX(ctx context.Context) *ScanMark {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScanMarkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanMarkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScanMarkUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scanmark.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ScanMarkUpdateOne) sqlSave(ctx context.Context) (_node *ScanMark, err error) {
	_spec := sqlgraph.NewUpdateSpec(scanmark.Table, scanmark.Columns, sqlgraph.NewFieldSpec(scanmark.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "ScanMark.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanmark.FieldID)
		for _, f := range fields {
			if !scanmark.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != scanmark.FieldID {
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
		_spec.SetField(scanmark.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Server(); ok {
		_spec.SetField(scanmark.FieldServer, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(scanmark.FieldLastSeen, field.TypeTime, value)
	}
	_node = &ScanMark{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanmark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
