package loader

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dverduzco/ecompop/internal/model"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildInsert renders one multi-row INSERT for a whole slice of rows.
func buildInsert(table model.Table, rows [][]any) (string, []any, error) {
	b := qb.Insert(table.Name).Columns(table.Columns...)
	for _, row := range rows {
		b = b.Values(row...)
	}
	return b.ToSql()
}

// RowBatch accumulates every record for one entity type in memory, then
// issues a single batched statement and a single commit. Simplicity over
// throughput; only viable because light-tier volumes are in the hundreds.
type RowBatch struct {
	store Store
	table model.Table
	rows  [][]any
	begun bool
}

func NewRowBatch(store Store, table model.Table) *RowBatch {
	return &RowBatch{store: store, table: table}
}

func (s *RowBatch) Load(ctx context.Context, rows [][]any) (int, error) {
	s.rows = append(s.rows, rows...)
	return len(rows), nil
}

func (s *RowBatch) Flush(ctx context.Context) error {
	if len(s.rows) == 0 {
		return nil
	}
	if !s.begun {
		if err := s.store.Exec(ctx, "BEGIN"); err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		s.begun = true
	}

	sql, args, err := buildInsert(s.table, s.rows)
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", s.table.Name, err)
	}
	if err := s.store.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("batch insert into %s failed: %w", s.table.Name, err)
	}
	s.rows = s.rows[:0]
	return nil
}

func (s *RowBatch) Finalize(ctx context.Context) error {
	if err := s.Flush(ctx); err != nil {
		return err
	}
	if !s.begun {
		return nil
	}
	s.begun = false
	if err := s.store.Exec(ctx, "COMMIT"); err != nil {
		return fmt.Errorf("failed to commit %s batch: %w", s.table.Name, err)
	}
	return nil
}

// RowBatchOrders loads the order family inside one transaction, committed at
// the end. Any insert error aborts the whole run: at this volume a clean
// retry from truncate is cheaper than partial recovery.
type RowBatchOrders struct {
	store  Store
	begun  bool
	totals Totals
}

func NewRowBatchOrders(store Store) *RowBatchOrders {
	return &RowBatchOrders{store: store}
}

func (s *RowBatchOrders) Add(ctx context.Context, o *model.Order) error {
	if !s.begun {
		if err := s.store.Exec(ctx, "BEGIN"); err != nil {
			return fmt.Errorf("failed to begin order transaction: %w", err)
		}
		s.begun = true
	}
	if err := insertOrderTree(ctx, s.store, o); err != nil {
		return err
	}
	s.totals.count(o)
	return nil
}

func (s *RowBatchOrders) Finalize(ctx context.Context) (Totals, error) {
	if !s.begun {
		return s.totals, nil
	}
	s.begun = false
	if err := s.store.Exec(ctx, "COMMIT"); err != nil {
		return s.totals, fmt.Errorf("failed to commit orders: %w", err)
	}
	return s.totals, nil
}
