// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediareap/mediareap/internal/ent/generated/deletionentry"
	"github.com/mediareap/mediareap/internal/ent/generated/predicate"
)

// DeletionEntryDelete is the builder for deleting a DeletionEntry entity.
type DeletionEntryDelete struct {
	config
	hooks    []Hook
	mutation *DeletionEntryMutation
}

// Where appends a list predicates to the DeletionEntryDelete builder.
func (_d *DeletionEntryDelete) Where(ps ...predicate.DeletionEntry) *DeletionEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeletionEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeletionEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeletionEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(deletionentry.Table, sqlgraph.NewFieldSpec(deletionentry.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DeletionEntryDeleteOne is the builder for deleting a single DeletionEntry entity.
type DeletionEntryDeleteOne struct {
	_d *DeletionEntryDelete
}

// Where appends a list predicates to the DeletionEntryDelete builder.
func (_d *DeletionEntryDeleteOne) Where(ps ...predicate.DeletionEntry) *DeletionEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeletionEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{deletionentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeletionEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
