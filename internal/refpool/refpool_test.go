package refpool

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
)

func refs(n int) []ProductRef {
	out := make([]ProductRef, n)
	for i := range out {
		out[i] = ProductRef{ID: int64(i + 1), Price: decimal.NewFromInt(10)}
	}
	return out
}

func TestNewRejectsEmptyUniverses(t *testing.T) {
	if _, err := New(nil, refs(3)); !errors.Is(err, ErrNoCustomers) {
		t.Errorf("empty customers: err = %v, want ErrNoCustomers", err)
	}
	if _, err := New([]int64{1}, nil); !errors.Is(err, ErrNoProducts) {
		t.Errorf("empty products: err = %v, want ErrNoProducts", err)
	}
}

func TestPoolSizes(t *testing.T) {
	pool, err := New([]int64{10, 20, 30}, refs(7))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := pool.Customers(); got != 3 {
		t.Errorf("Customers = %d, want 3", got)
	}
	if got := pool.Size(); got != 7 {
		t.Errorf("Size = %d, want 7", got)
	}
}

func TestCustomerSamplesFromPool(t *testing.T) {
	pool, err := New([]int64{10, 20, 30}, refs(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		id := pool.Customer(rng)
		if id != 10 && id != 20 && id != 30 {
			t.Fatalf("sampled unknown customer %d", id)
		}
	}
}

func TestProductsDistinct(t *testing.T) {
	pool, err := New([]int64{1}, refs(10))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		got := pool.Products(rng, 5)
		if len(got) != 5 {
			t.Fatalf("got %d products, want 5", len(got))
		}
		seen := make(map[int64]struct{})
		for _, p := range got {
			if _, dup := seen[p.ID]; dup {
				t.Fatalf("product %d sampled twice", p.ID)
			}
			seen[p.ID] = struct{}{}
		}
	}
}

func TestProductsClampsToPoolSize(t *testing.T) {
	pool, err := New([]int64{1}, refs(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	got := pool.Products(rng, 10)
	if len(got) != 4 {
		t.Fatalf("got %d products from a 4-product pool, want 4", len(got))
	}
}

func TestProductsReturnsCopyWhenClamped(t *testing.T) {
	pool, err := New([]int64{1}, refs(2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	got := pool.Products(rng, 5)
	got[0].ID = 999
	again := pool.Products(rng, 5)
	if again[0].ID == 999 {
		t.Fatal("clamped sample aliases the pool's backing slice")
	}
}
