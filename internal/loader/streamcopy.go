package loader

import (
	"context"

	"github.com/dverduzco/ecompop/internal/model"
)

// StreamCopy buffers rows for one entity type and streams the whole buffer
// through the bulk-copy channel once it reaches the threshold, bypassing
// per-row statement overhead. A flush failure is unrecoverable: the buffer
// spans many records and partial re-application risks duplicate keys.
type StreamCopy struct {
	store     Store
	table     model.Table
	threshold int
	rows      [][]any
}

func NewStreamCopy(store Store, table model.Table, threshold int) *StreamCopy {
	if threshold <= 0 {
		threshold = 50000
	}
	return &StreamCopy{store: store, table: table, threshold: threshold}
}

func (s *StreamCopy) Load(ctx context.Context, rows [][]any) (int, error) {
	s.rows = append(s.rows, rows...)
	if len(s.rows) >= s.threshold {
		if err := s.Flush(ctx); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

func (s *StreamCopy) Flush(ctx context.Context) error {
	if len(s.rows) == 0 {
		return nil
	}
	if _, err := s.store.CopyFrom(ctx, s.table.Name, s.table.Columns, s.rows); err != nil {
		return &FlushError{Table: s.table.Name, Err: err}
	}
	s.rows = s.rows[:0]
	return nil
}

func (s *StreamCopy) Finalize(ctx context.Context) error {
	return s.Flush(ctx)
}

// StreamCopyOrders buffers the four order-family tables in parallel and
// flushes them together at the same cadence, keeping insertion order aligned
// with sequential surrogate-id assignment. The copy channel never reports
// generated ids, so the sink predicts them: after truncate-with-restart the
// store's sequence hands out 1, 2, 3... in exactly the order rows arrive.
type StreamCopyOrders struct {
	store     Store
	threshold int

	nextID    int64
	orders    [][]any
	lines     [][]any
	payments  [][]any
	shipments [][]any
	totals    Totals
}

func NewStreamCopyOrders(store Store, threshold int) *StreamCopyOrders {
	if threshold <= 0 {
		threshold = 50000
	}
	return &StreamCopyOrders{store: store, threshold: threshold}
}

// PredictedNext returns the order id the next Add will assign.
func (s *StreamCopyOrders) PredictedNext() int64 { return s.nextID + 1 }

func (s *StreamCopyOrders) Add(ctx context.Context, o *model.Order) error {
	s.nextID++
	o.Stamp(s.nextID)

	s.orders = append(s.orders, o.Row())
	for _, line := range o.Lines {
		s.lines = append(s.lines, line.Row())
	}
	if o.Payment != nil {
		s.payments = append(s.payments, o.Payment.Row())
	}
	if o.Shipment != nil {
		s.shipments = append(s.shipments, o.Shipment.Row())
	}
	s.totals.count(o)

	if len(s.orders) >= s.threshold {
		return s.flushAll(ctx)
	}
	return nil
}

// flushAll streams the four buffers parent-first so the store never sees a
// dependent row before its order.
func (s *StreamCopyOrders) flushAll(ctx context.Context) error {
	for _, b := range []struct {
		table model.Table
		rows  *[][]any
	}{
		{model.TableOrder, &s.orders},
		{model.TableOrderLine, &s.lines},
		{model.TablePayment, &s.payments},
		{model.TableShipment, &s.shipments},
	} {
		if len(*b.rows) == 0 {
			continue
		}
		if _, err := s.store.CopyFrom(ctx, b.table.Name, b.table.Columns, *b.rows); err != nil {
			return &FlushError{Table: b.table.Name, Err: err}
		}
		*b.rows = (*b.rows)[:0]
	}
	return nil
}

func (s *StreamCopyOrders) Finalize(ctx context.Context) (Totals, error) {
	if err := s.flushAll(ctx); err != nil {
		return s.totals, err
	}
	return s.totals, nil
}
