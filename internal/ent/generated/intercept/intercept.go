// Code generated by ent, DO NOT EDIT.

package intercept

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/mediareap/mediareap/internal/ent/generated"
	"github.com/mediareap/mediareap/internal/ent/generated/deletionentry"
	"github.com/mediareap/mediareap/internal/ent/generated/downloadfile"
	"github.com/mediareap/mediareap/internal/ent/generated/predicate"
	"github.com/mediareap/mediareap/internal/ent/generated/scanmark"
	"github.com/mediareap/mediareap/internal/ent/generated/seedlink"
	"github.com/mediareap/mediareap/internal/ent/generated/transferrecord"
)

// The Query interface represents an operation that queries a graph.
// By using this interface, users can write generic code that manipulates
// query builders of different types.
type Query interface {
	// Type returns the string representation of the query type.
	Type() string
	// Limit the number of records to be returned by this query.
	Limit(int)
	// Offset to start from.
	Offset(int)
	// Unique configures the query builder to filter duplicate records.
	Unique(bool)
	// Order specifies how the records should be ordered.
	Order(...func(*sql.Selector))
	// WhereP appends storage-level predicates to the query builder. Using this method, users
	// can use type-assertion to append predicates that do not depend on any generated package.
	WhereP(...func(*sql.Selector))
}

// The Func type is an adapter that allows ordinary functions to be used as interceptors.
// Unlike traversal functions, interceptors are skipped during graph traversals. Note that the
// implementation of Func is different from the one defined in entgo.io/ent.InterceptFunc.
type Func func(context.Context, Query) error

// Intercept calls f(ctx, q) and then applied the next Querier.
func (f Func) Intercept(next generated.Querier) generated.Querier {
	return generated.QuerierFunc(func(ctx context.Context, q generated.Query) (generated.Value, error) {
		query, err := NewQuery(q)
		if err != nil {
			return nil, err
		}
		if err := f(ctx, query); err != nil {
			return nil, err
		}
		return next.Query(ctx, q)
	})
}

// The TraverseFunc type is an adapter to allow the use of ordinary function as Traverser.
// If f is a function with the appropriate signature, TraverseFunc(f) is a Traverser that calls f.
type TraverseFunc func(context.Context, Query) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseFunc) Intercept(next generated.Querier) generated.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseFunc) Traverse(ctx context.Context, q generated.Query) error {
	query, err := NewQuery(q)
	if err != nil {
		return err
	}
	return f(ctx, query)
}

// The DeletionEntryFunc type is an adapter to allow the use of ordinary function as a Querier.
type DeletionEntryFunc func(context.Context, *generated.DeletionEntryQuery) (generated.Value, error)

// Query calls f(ctx, q).
func (f DeletionEntryFunc) Query(ctx context.Context, q generated.Query) (generated.Value, error) {
	if q, ok := q.(*generated.DeletionEntryQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *generated.DeletionEntryQuery", q)
}

// The TraverseDeletionEntry type is an adapter to allow the use of ordinary function as Traverser.
type TraverseDeletionEntry func(context.Context, *generated.DeletionEntryQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseDeletionEntry) Intercept(next generated.Querier) generated.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseDeletionEntry) Traverse(ctx context.Context, q generated.Query) error {
	if q, ok := q.(*generated.DeletionEntryQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *generated.DeletionEntryQuery", q)
}

// The DownloadFileFunc type is an adapter to allow the use of ordinary function as a Querier.
type DownloadFileFunc func(context.Context, *generated.DownloadFileQuery) (generated.Value, error)

// Query calls f(ctx, q).
func (f DownloadFileFunc) Query(ctx context.Context, q generated.Query) (generated.Value, error) {
	if q, ok := q.(*generated.DownloadFileQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *generated.DownloadFileQuery", q)
}

// The TraverseDownloadFile type is an adapter to allow the use of ordinary function as Traverser.
type TraverseDownloadFile func(context.Context, *generated.DownloadFileQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseDownloadFile) Intercept(next generated.Querier) generated.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseDownloadFile) Traverse(ctx context.Context, q generated.Query) error {
	if q, ok := q.(*generated.DownloadFileQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *generated.DownloadFileQuery", q)
}

// The ScanMarkFunc type is an adapter to allow the use of ordinary function as a Querier.
type ScanMarkFunc func(context.Context, *generated.ScanMarkQuery) (generated.Value, error)

// Query calls f(ctx, q).
func (f ScanMarkFunc) Query(ctx context.Context, q generated.Query) (generated.Value, error) {
	if q, ok := q.(*generated.ScanMarkQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *generated.ScanMarkQuery", q)
}

// The TraverseScanMark type is an adapter to allow the use of ordinary function as Traverser.
type TraverseScanMark func(context.Context, *generated.ScanMarkQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseScanMark) Intercept(next generated.Querier) generated.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseScanMark) Traverse(ctx context.Context, q generated.Query) error {
	if q, ok := q.(*generated.ScanMarkQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *generated.ScanMarkQuery", q)
}

// The SeedLinkFunc type is an adapter to allow the use of ordinary function as a Querier.
type SeedLinkFunc func(context.Context, *generated.SeedLinkQuery) (generated.Value, error)

// Query calls f(ctx, q).
func (f SeedLinkFunc) Query(ctx context.Context, q generated.Query) (generated.Value, error) {
	if q, ok := q.(*generated.SeedLinkQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *generated.SeedLinkQuery", q)
}

// The TraverseSeedLink type is an adapter to allow the use of ordinary function as Traverser.
type TraverseSeedLink func(context.Context, *generated.SeedLinkQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseSeedLink) Intercept(next generated.Querier) generated.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseSeedLink) Traverse(ctx context.Context, q generated.Query) error {
	if q, ok := q.(*generated.SeedLinkQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *generated.SeedLinkQuery", q)
}

// The TransferRecordFunc type is an adapter to allow the use of ordinary function as a Querier.
type TransferRecordFunc func(context.Context, *generated.TransferRecordQuery) (generated.Value, error)

// Query calls f(ctx, q).
func (f TransferRecordFunc) Query(ctx context.Context, q generated.Query) (generated.Value, error) {
	if q, ok := q.(*generated.TransferRecordQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *generated.TransferRecordQuery", q)
}

// The TraverseTransferRecord type is an adapter to allow the use of ordinary function as Traverser.
type TraverseTransferRecord func(context.Context, *generated.TransferRecordQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseTransferRecord) Intercept(next generated.Querier) generated.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseTransferRecord) Traverse(ctx context.Context, q generated.Query) error {
	if q, ok := q.(*generated.TransferRecordQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *generated.TransferRecordQuery", q)
}

// NewQuery returns the generic Query interface for the given typed query.
func NewQuery(q generated.Query) (Query, error) {
	switch q := q.(type) {
	case *generated.DeletionEntryQuery:
		return &query[*generated.DeletionEntryQuery, predicate.DeletionEntry, deletionentry.OrderOption]{typ: generated.TypeDeletionEntry, tq: q}, nil
	case *generated.DownloadFileQuery:
		return &query[*generated.DownloadFileQuery, predicate.DownloadFile, downloadfile.OrderOption]{typ: generated.TypeDownloadFile, tq: q}, nil
	case *generated.ScanMarkQuery:
		return &query[*generated.ScanMarkQuery, predicate.ScanMark, scanmark.OrderOption]{typ: generated.TypeScanMark, tq: q}, nil
	case *generated.SeedLinkQuery:
		return &query[*generated.SeedLinkQuery, predicate.SeedLink, seedlink.OrderOption]{typ: generated.TypeSeedLink, tq: q}, nil
	case *generated.TransferRecordQuery:
		return &query[*generated.TransferRecordQuery, predicate.TransferRecord, transferrecord.OrderOption]{typ: generated.TypeTransferRecord, tq: q}, nil
	default:
		return nil, fmt.Errorf("unknown query type %T", q)
	}
}

type query[T any, P ~func(*sql.Selector), R ~func(*sql.Selector)] struct {
	typ string
	tq  interface {
		Limit(int) T
		Offset(int) T
		Unique(bool) T
		Order(...R) T
		Where(...P) T
	}
}

func (q query[T, P, R]) Type() string {
	return q.typ
}

func (q query[T, P, R]) Limit(limit int) {
	q.tq.Limit(limit)
}

func (q query[T, P, R]) Offset(offset int) {
	q.tq.Offset(offset)
}

func (q query[T, P, R]) Unique(unique bool) {
	q.tq.Unique(unique)
}

func (q query[T, P, R]) Order(orders ...func(*sql.Selector)) {
	rs := make([]R, len(orders))
	for i := range orders {
		rs[i] = orders[i]
	}
	q.tq.Order(rs...)
}

func (q query[T, P, R]) WhereP(ps ...func(*sql.Selector)) {
	p := make([]P, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	q.tq.Where(p...)
}
