package gen

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dverduzco/ecompop/internal/refpool"
	"github.com/dverduzco/ecompop/internal/tier"
)

func testPool(t *testing.T, products int) *refpool.Pool {
	t.Helper()
	customers := []int64{1, 2, 3, 4, 5}
	refs := make([]refpool.ProductRef, products)
	for i := range refs {
		refs[i] = refpool.ProductRef{ID: int64(i + 1), Price: decimal.NewFromFloat(99.90)}
	}
	pool, err := refpool.New(customers, refs)
	if err != nil {
		t.Fatalf("New pool: %v", err)
	}
	return pool
}

func TestCustomerEmailsUnique(t *testing.T) {
	g := New(tier.Light())
	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		c := g.Customer()
		if _, dup := seen[c.Email]; dup {
			t.Fatalf("duplicate email %q at customer %d", c.Email, i)
		}
		seen[c.Email] = struct{}{}
		if strings.ContainsAny(c.Email, "áéíóúñÁÉÍÓÚÑ ") {
			t.Errorf("email %q not folded to plain ascii", c.Email)
		}
	}
}

func TestCustomerFieldsWithinWindow(t *testing.T) {
	plan := tier.Light()
	g := New(plan)
	for i := 0; i < 200; i++ {
		c := g.Customer()
		age := g.now.Sub(c.RegisteredAt)
		if age < 0 || age.Hours() > float64(plan.RegistrationDays)*24 {
			t.Fatalf("registration %v outside the %d-day window", c.RegisteredAt, plan.RegistrationDays)
		}
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(tier.Light())
	b := New(tier.Light())
	for i := 0; i < 100; i++ {
		ca, cb := a.Customer(), b.Customer()
		if ca.Name != cb.Name || ca.Email != cb.Email || ca.Phone != cb.Phone || ca.Active != cb.Active {
			t.Fatalf("sequences diverge at customer %d: %+v vs %+v", i, ca, cb)
		}
	}
}

func TestCategoriesSizedToPlan(t *testing.T) {
	plan := tier.Light()
	plan.Categories = 10
	cats := New(plan).Categories()
	if len(cats) != 10 {
		t.Fatalf("got %d categories, want 10", len(cats))
	}
	names := make(map[string]struct{})
	for _, c := range cats {
		if _, dup := names[c.Name]; dup {
			t.Errorf("duplicate category %q", c.Name)
		}
		names[c.Name] = struct{}{}
		if !c.Active {
			t.Errorf("category %q not active", c.Name)
		}
		if c.Description == "" {
			t.Errorf("category %q has no description", c.Name)
		}
	}
}

func TestProductWithinBounds(t *testing.T) {
	plan := tier.Light()
	g := New(plan)
	min := decimal.NewFromFloat(plan.PriceMin)
	max := decimal.NewFromFloat(plan.PriceMax)
	for i := 0; i < 300; i++ {
		p := g.Product([]int64{10, 20, 30})
		if p.Price.LessThan(min) || p.Price.GreaterThan(max) {
			t.Fatalf("price %s outside [%s, %s]", p.Price, min, max)
		}
		if p.Stock < 0 || p.Stock > plan.MaxStock {
			t.Fatalf("stock %d outside [0, %d]", p.Stock, plan.MaxStock)
		}
		if p.CategoryID != 10 && p.CategoryID != 20 && p.CategoryID != 30 {
			t.Fatalf("category id %d not from the given set", p.CategoryID)
		}
	}
}

func TestOrderTotalIsExactLineSum(t *testing.T) {
	plan := tier.Light()
	g := New(plan)
	pool := testPool(t, 50)

	for i := 0; i < 200; i++ {
		o := g.Order(pool)
		sum := decimal.Zero
		for _, line := range o.Lines {
			sum = sum.Add(line.Subtotal())
		}
		if !o.Total.Equal(sum) {
			t.Fatalf("total %s != line sum %s", o.Total, sum)
		}
		if len(o.Lines) < plan.MinLines || len(o.Lines) > plan.MaxLines {
			t.Fatalf("order has %d lines, want [%d, %d]", len(o.Lines), plan.MinLines, plan.MaxLines)
		}
	}
}

func TestOrderLinesDistinctProducts(t *testing.T) {
	g := New(tier.Light())
	pool := testPool(t, 50)
	for i := 0; i < 100; i++ {
		o := g.Order(pool)
		seen := make(map[int64]struct{})
		for _, line := range o.Lines {
			if _, dup := seen[line.ProductID]; dup {
				t.Fatalf("order repeats product %d", line.ProductID)
			}
			seen[line.ProductID] = struct{}{}
			if line.Quantity < 1 || line.Quantity > g.plan.MaxQty {
				t.Fatalf("quantity %d outside [1, %d]", line.Quantity, g.plan.MaxQty)
			}
		}
	}
}

func TestOrderLinesClampToPoolSize(t *testing.T) {
	plan := tier.Light()
	plan.MinLines, plan.MaxLines = 5, 5
	g := New(plan)
	pool := testPool(t, 3)

	o := g.Order(pool)
	if len(o.Lines) != 3 {
		t.Fatalf("got %d lines from a 3-product pool, want 3", len(o.Lines))
	}
}

func TestPaymentAndShipmentFollowStatus(t *testing.T) {
	g := New(tier.Light())
	pool := testPool(t, 50)

	for i := 0; i < 300; i++ {
		o := g.Order(pool)
		if got, want := o.Payment != nil, o.Status.RequiresPayment(); got != want {
			t.Fatalf("status %s: payment present = %v, want %v", o.Status, got, want)
		}
		if got, want := o.Shipment != nil, o.Status.RequiresShipment(); got != want {
			t.Fatalf("status %s: shipment present = %v, want %v", o.Status, got, want)
		}
		if o.Payment != nil {
			if !o.Payment.Amount.Equal(o.Total) {
				t.Fatalf("payment %s != order total %s", o.Payment.Amount, o.Total)
			}
			if !o.Payment.PaidAt.After(o.PlacedAt) {
				t.Fatalf("payment at %v not after order at %v", o.Payment.PaidAt, o.PlacedAt)
			}
		}
		if o.Shipment != nil && !o.Shipment.ShippedAt.After(o.PlacedAt) {
			t.Fatalf("shipment at %v not after order at %v", o.Shipment.ShippedAt, o.PlacedAt)
		}
	}
}

func TestUnitPricesHaveTwoDecimals(t *testing.T) {
	g := New(tier.Light())
	pool := testPool(t, 20)
	for i := 0; i < 100; i++ {
		o := g.Order(pool)
		for _, line := range o.Lines {
			if line.UnitPrice.Exponent() < -2 {
				t.Fatalf("unit price %s has more than two decimals", line.UnitPrice)
			}
		}
	}
}

func TestSanitizeStripsDelimiters(t *testing.T) {
	got := sanitize("a\tb\nc\rd")
	if got != "a b c d" {
		t.Errorf("sanitize = %q", got)
	}
}
