// Package tier defines the three population profiles. A profile is data, not
// a code path: the engine reads one Plan and behaves accordingly.
package tier

import "fmt"

type Strategy int

const (
	// RowBatch accumulates every record for an entity type and commits once.
	RowBatch Strategy = iota
	// ChunkedCommit batches inserts in fixed chunks with periodic commits.
	ChunkedCommit
	// StreamCopy buffers rows and streams them through the bulk-copy channel.
	StreamCopy
)

func (s Strategy) String() string {
	switch s {
	case RowBatch:
		return "row-batch"
	case ChunkedCommit:
		return "chunked-commit"
	case StreamCopy:
		return "stream-copy"
	}
	return "unknown"
}

type Optimize int

const (
	OptimizeNone Optimize = iota
	OptimizeAnalyze
	OptimizeFull
)

// Plan carries every tier-specific constant: volumes, generation bounds,
// buffering and commit cadence, and which preparation rules to suspend.
type Plan struct {
	Name     string
	Seed     int64
	Strategy Strategy

	Customers  int
	Products   int
	Orders     int
	Categories int

	MinLines int
	MaxLines int
	MaxQty   int

	PriceMin float64
	PriceMax float64
	MaxStock int

	// Active percentages, 0-100.
	CustomerActivePct int
	ProductActivePct  int

	// Timestamp windows, counted back from the run clock.
	RegistrationDays int
	OrderDays        int
	PaymentMaxHours  int
	ShipmentMaxDays  int

	// Reference pool caps; zero means uncapped.
	CustomerPoolCap int
	ProductPoolCap  int

	// ChunkedCommit: rows per statement batch and orders per commit.
	ChunkSize   int
	CommitEvery int

	// StreamCopy: buffered orders per copy flush.
	CopyBuffer int

	DropIndexes bool
	Optimize    Optimize
}

// Light is the development profile: small enough that simplicity beats
// throughput.
func Light() Plan {
	return Plan{
		Name:              "light",
		Seed:              42,
		Strategy:          RowBatch,
		Customers:         100,
		Products:          50,
		Orders:            200,
		Categories:        10,
		MinLines:          1,
		MaxLines:          5,
		MaxQty:            5,
		PriceMin:          10,
		PriceMax:          5000,
		MaxStock:          1000,
		CustomerActivePct: 75,
		ProductActivePct:  75,
		RegistrationDays:  2 * 365,
		OrderDays:         182,
		PaymentMaxHours:   48,
		ShipmentMaxDays:   3,
		Optimize:          OptimizeNone,
	}
}

// Moderate is the pre-production profile: batch inserts with index
// suspension.
func Moderate() Plan {
	return Plan{
		Name:              "moderate",
		Seed:              42,
		Strategy:          ChunkedCommit,
		Customers:         10000,
		Products:          5000,
		Orders:            15000,
		Categories:        15,
		MinLines:          1,
		MaxLines:          6,
		MaxQty:            10,
		PriceMin:          5,
		PriceMax:          10000,
		MaxStock:          2000,
		CustomerActivePct: 80,
		ProductActivePct:  90,
		RegistrationDays:  3 * 365,
		OrderDays:         365,
		PaymentMaxHours:   72,
		ShipmentMaxDays:   5,
		ChunkSize:         1000,
		CommitEvery:       100,
		DropIndexes:       true,
		Optimize:          OptimizeAnalyze,
	}
}

// Massive is the production profile: bulk copy with everything suspended.
func Massive() Plan {
	return Plan{
		Name:              "massive",
		Seed:              42,
		Strategy:          StreamCopy,
		Customers:         500000,
		Products:          100000,
		Orders:            1000000,
		Categories:        20,
		MinLines:          1,
		MaxLines:          5,
		MaxQty:            8,
		PriceMin:          5,
		PriceMax:          15000,
		MaxStock:          3000,
		CustomerActivePct: 90,
		ProductActivePct:  95,
		RegistrationDays:  5 * 365,
		OrderDays:         2 * 365,
		PaymentMaxHours:   72,
		ShipmentMaxDays:   7,
		CustomerPoolCap:   100000,
		ProductPoolCap:    50000,
		CopyBuffer:        50000,
		DropIndexes:       true,
		Optimize:          OptimizeFull,
	}
}

// Validate rejects plans whose constants cannot produce a consistent run.
func (p Plan) Validate() error {
	if p.Customers <= 0 || p.Products <= 0 || p.Orders <= 0 {
		return fmt.Errorf("tier %s: volumes must be positive", p.Name)
	}
	if p.Categories <= 0 {
		return fmt.Errorf("tier %s: at least one category is required", p.Name)
	}
	if p.MinLines < 1 || p.MaxLines < p.MinLines {
		return fmt.Errorf("tier %s: invalid order-line bounds [%d, %d]", p.Name, p.MinLines, p.MaxLines)
	}
	if p.MaxQty < 1 {
		return fmt.Errorf("tier %s: line quantity bound must be positive", p.Name)
	}
	if p.PriceMin <= 0 || p.PriceMax < p.PriceMin {
		return fmt.Errorf("tier %s: invalid price range [%.2f, %.2f]", p.Name, p.PriceMin, p.PriceMax)
	}
	switch p.Strategy {
	case ChunkedCommit:
		if p.ChunkSize <= 0 || p.CommitEvery <= 0 {
			return fmt.Errorf("tier %s: chunked-commit requires chunk size and commit cadence", p.Name)
		}
	case StreamCopy:
		if p.CopyBuffer <= 0 {
			return fmt.Errorf("tier %s: stream-copy requires a copy buffer size", p.Name)
		}
	}
	return nil
}
