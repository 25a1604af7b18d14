package loader

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/dverduzco/ecompop/internal/model"
)

// Chunked accumulates rows up to a fixed chunk size, issues one batched
// statement per chunk, and commits every few chunks. Commit cadence is
// decoupled from chunk size so the transaction log stays bounded without
// paying a commit per statement.
type Chunked struct {
	store       Store
	table       model.Table
	chunkSize   int
	commitEvery int

	rows   [][]any
	chunks int
	begun  bool
}

func NewChunked(store Store, table model.Table, chunkSize, commitEvery int) *Chunked {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if commitEvery <= 0 {
		commitEvery = 1
	}
	return &Chunked{store: store, table: table, chunkSize: chunkSize, commitEvery: commitEvery}
}

func (s *Chunked) Load(ctx context.Context, rows [][]any) (int, error) {
	s.rows = append(s.rows, rows...)
	for len(s.rows) >= s.chunkSize {
		if err := s.flushChunk(ctx, s.rows[:s.chunkSize]); err != nil {
			return 0, err
		}
		s.rows = s.rows[s.chunkSize:]
	}
	return len(rows), nil
}

func (s *Chunked) Flush(ctx context.Context) error {
	if len(s.rows) == 0 {
		return nil
	}
	if err := s.flushChunk(ctx, s.rows); err != nil {
		return err
	}
	s.rows = s.rows[:0]
	return nil
}

func (s *Chunked) Finalize(ctx context.Context) error {
	if err := s.Flush(ctx); err != nil {
		return err
	}
	return s.commit(ctx)
}

func (s *Chunked) flushChunk(ctx context.Context, chunk [][]any) error {
	if !s.begun {
		if err := s.store.Exec(ctx, "BEGIN"); err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		s.begun = true
	}

	sql, args, err := buildInsert(s.table, chunk)
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", s.table.Name, err)
	}
	if err := s.store.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("chunk insert into %s failed: %w", s.table.Name, err)
	}

	s.chunks++
	if s.chunks >= s.commitEvery {
		return s.commit(ctx)
	}
	return nil
}

func (s *Chunked) commit(ctx context.Context) error {
	if !s.begun {
		return nil
	}
	s.begun = false
	s.chunks = 0
	if err := s.store.Exec(ctx, "COMMIT"); err != nil {
		return fmt.Errorf("failed to commit %s chunk: %w", s.table.Name, err)
	}
	return nil
}

// ChunkedOrders loads the order family with a savepoint around each order:
// a record that trips a constraint rolls back only its own order, which is
// skipped, and the loop continues. The run accepts a shortfall over an
// abort.
type ChunkedOrders struct {
	store       Store
	commitEvery int

	sinceCommit int
	begun       bool
	totals      Totals
}

func NewChunkedOrders(store Store, commitEvery int) *ChunkedOrders {
	if commitEvery <= 0 {
		commitEvery = 100
	}
	return &ChunkedOrders{store: store, commitEvery: commitEvery}
}

func (s *ChunkedOrders) Add(ctx context.Context, o *model.Order) error {
	if !s.begun {
		if err := s.store.Exec(ctx, "BEGIN"); err != nil {
			return fmt.Errorf("failed to begin order transaction: %w", err)
		}
		s.begun = true
	}

	if err := s.store.Exec(ctx, "SAVEPOINT order_unit"); err != nil {
		return fmt.Errorf("failed to set savepoint: %w", err)
	}
	if err := insertOrderTree(ctx, s.store, o); err != nil {
		if rbErr := s.store.Exec(ctx, "ROLLBACK TO SAVEPOINT order_unit"); rbErr != nil {
			return fmt.Errorf("order failed (%v) and savepoint rollback failed: %w", err, rbErr)
		}
		s.totals.Skipped++
		color.Yellow("  ⚠️  Skipping order: %v", err)
		return nil
	}
	if err := s.store.Exec(ctx, "RELEASE SAVEPOINT order_unit"); err != nil {
		return fmt.Errorf("failed to release savepoint: %w", err)
	}

	s.totals.count(o)
	s.sinceCommit++
	if s.sinceCommit >= s.commitEvery {
		s.sinceCommit = 0
		s.begun = false
		if err := s.store.Exec(ctx, "COMMIT"); err != nil {
			return fmt.Errorf("failed to commit order chunk: %w", err)
		}
	}
	return nil
}

func (s *ChunkedOrders) Finalize(ctx context.Context) (Totals, error) {
	if !s.begun {
		return s.totals, nil
	}
	s.begun = false
	if err := s.store.Exec(ctx, "COMMIT"); err != nil {
		return s.totals, fmt.Errorf("failed to commit orders: %w", err)
	}
	return s.totals, nil
}
