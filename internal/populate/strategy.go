package populate

import (
	"fmt"

	"github.com/dverduzco/ecompop/internal/loader"
	"github.com/dverduzco/ecompop/internal/model"
	"github.com/dverduzco/ecompop/internal/tier"
)

// rowSink builds the per-entity sink the plan's strategy calls for.
func rowSink(store loader.Store, plan tier.Plan, table model.Table) (loader.RowSink, error) {
	switch plan.Strategy {
	case tier.RowBatch:
		return loader.NewRowBatch(store, table), nil
	case tier.ChunkedCommit:
		return loader.NewChunked(store, table, plan.ChunkSize, 1), nil
	case tier.StreamCopy:
		return loader.NewStreamCopy(store, table, plan.CopyBuffer), nil
	default:
		return nil, fmt.Errorf("unknown load strategy %q", plan.Strategy)
	}
}

// orderSink builds the order-family sink the plan's strategy calls for.
func orderSink(store loader.Store, plan tier.Plan) (loader.OrderSink, error) {
	switch plan.Strategy {
	case tier.RowBatch:
		return loader.NewRowBatchOrders(store), nil
	case tier.ChunkedCommit:
		return loader.NewChunkedOrders(store, plan.CommitEvery), nil
	case tier.StreamCopy:
		return loader.NewStreamCopyOrders(store, plan.CopyBuffer), nil
	default:
		return nil, fmt.Errorf("unknown load strategy %q", plan.Strategy)
	}
}
