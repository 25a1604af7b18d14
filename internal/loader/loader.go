// Package loader moves generated records into the store. Three strategies
// share the same contracts and differ only in buffering and transaction
// granularity: row-batch (one commit per entity type), chunked-commit
// (periodic commits, skip-and-continue on bad records), and stream-copy
// (bulk-copy channel, flush failures fatal).
package loader

import (
	"context"
	"fmt"

	"github.com/dverduzco/ecompop/internal/model"
)

// Store is the slice of the connection the strategies need. Transactions are
// driven with plain BEGIN/COMMIT/ROLLBACK statements through Exec, which
// keeps every strategy testable against a recording fake.
type Store interface {
	Exec(ctx context.Context, sql string, args ...any) error
	InsertReturningID(ctx context.Context, sql string, args ...any) (int64, error)
	CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)
}

// RowSink persists rows of one independent entity type (customer, category,
// product). Load may buffer; Flush forces buffered rows to the store;
// Finalize flushes and commits outstanding work.
type RowSink interface {
	Load(ctx context.Context, rows [][]any) (int, error)
	Flush(ctx context.Context) error
	Finalize(ctx context.Context) error
}

// OrderSink persists the order family as grouped units so lines, payments
// and shipments always land with their order.
type OrderSink interface {
	Add(ctx context.Context, o *model.Order) error
	Finalize(ctx context.Context) (Totals, error)
}

// Totals counts what an OrderSink actually persisted. Skipped is non-zero
// only under the chunked-commit skip policy.
type Totals struct {
	Orders    int
	Lines     int
	Payments  int
	Shipments int
	Skipped   int
}

// FlushError marks a bulk-copy flush failure. The buffer spans many logical
// records and the copy channel does not report which row failed, so a retry
// risks duplicate keys: the run must abort.
type FlushError struct {
	Table string
	Err   error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("bulk flush into %s failed: %v", e.Table, e.Err)
}

func (e *FlushError) Unwrap() error { return e.Err }
