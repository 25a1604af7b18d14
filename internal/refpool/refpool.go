// Package refpool holds the sampling universes of valid foreign keys used to
// build dependent records. A pool is snapshotted once per run, after the
// customer and product phases finish and before any order is generated.
package refpool

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var (
	ErrNoCustomers = errors.New("reference pool has no active customers")
	ErrNoProducts  = errors.New("reference pool has no active in-stock products")
)

// ProductRef pairs a product id with its current catalog price, the base for
// order-time price drift.
type ProductRef struct {
	ID    int64
	Price decimal.Decimal
}

type Pool struct {
	customers []int64
	products  []ProductRef
}

type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Load snapshots the eligible customers and products. Caps bound memory on
// very large tiers; zero means uncapped.
func Load(ctx context.Context, q Querier, customerLimit, productLimit int) (*Pool, error) {
	customers, err := loadCustomers(ctx, q, customerLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer pool: %w", err)
	}
	products, err := loadProducts(ctx, q, productLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load product pool: %w", err)
	}
	return New(customers, products)
}

// New builds a pool from already-fetched universes. An empty universe is a
// configuration error: no dependent entity can be generated from it.
func New(customers []int64, products []ProductRef) (*Pool, error) {
	if len(customers) == 0 {
		return nil, ErrNoCustomers
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	return &Pool{customers: customers, products: products}, nil
}

func loadCustomers(ctx context.Context, q Querier, limit int) ([]int64, error) {
	sql := "SELECT id_cliente FROM cliente WHERE activo = TRUE"
	if limit > 0 {
		sql += fmt.Sprintf(" LIMIT %d", limit)
	}
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func loadProducts(ctx context.Context, q Querier, limit int) ([]ProductRef, error) {
	sql := "SELECT id_producto, precio FROM producto WHERE activo = TRUE AND stock > 0"
	if limit > 0 {
		sql += fmt.Sprintf(" LIMIT %d", limit)
	}
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []ProductRef
	for rows.Next() {
		var ref ProductRef
		if err := rows.Scan(&ref.ID, &ref.Price); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// Customer samples one eligible customer id uniformly.
func (p *Pool) Customer(rng *rand.Rand) int64 {
	return p.customers[rng.Intn(len(p.customers))]
}

// Products samples n distinct product refs without replacement. When the
// pool holds fewer than n products the result clamps to the pool size.
func (p *Pool) Products(rng *rand.Rand, n int) []ProductRef {
	if n >= len(p.products) {
		out := make([]ProductRef, len(p.products))
		copy(out, p.products)
		return out
	}

	out := make([]ProductRef, 0, n)
	seen := make(map[int]struct{}, n)
	for len(out) < n {
		i := rng.Intn(len(p.products))
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, p.products[i])
	}
	return out
}

func (p *Pool) Customers() int { return len(p.customers) }
func (p *Pool) Size() int      { return len(p.products) }
