// Package gen produces synthetic records. A Generator is an explicitly
// seeded context: two runs constructed with the same plan emit the same
// sequence of records, and nothing here touches the store.
package gen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dverduzco/ecompop/internal/model"
	"github.com/dverduzco/ecompop/internal/refpool"
	"github.com/dverduzco/ecompop/internal/tier"
)

type Generator struct {
	rng    *rand.Rand
	plan   tier.Plan
	now    time.Time
	emails map[string]struct{}
}

func New(plan tier.Plan) *Generator {
	return &Generator{
		rng:    rand.New(rand.NewSource(plan.Seed)),
		plan:   plan,
		now:    time.Now().Truncate(time.Second),
		emails: make(map[string]struct{}, plan.Customers),
	}
}

// Customer emits one customer with an email unseen so far in this run. The
// rejection loop is unbounded on paper but the random suffix space makes a
// long streak of collisions vanishingly unlikely.
func (g *Generator) Customer() model.Customer {
	first := pick(g.rng, firstNames)
	last := pick(g.rng, lastNames)

	var email string
	for {
		email = fmt.Sprintf("%s.%s%d@%s",
			asciiLower(first), asciiLower(last), g.rng.Intn(1000000), pick(g.rng, emailDomains))
		if _, taken := g.emails[email]; !taken {
			g.emails[email] = struct{}{}
			break
		}
	}

	return model.Customer{
		Name:         sanitize(first + " " + last),
		Email:        email,
		Phone:        fmt.Sprintf("+52 %03d %03d %04d", g.rng.Intn(1000), g.rng.Intn(1000), g.rng.Intn(10000)),
		RegisteredAt: g.timestampBack(g.plan.RegistrationDays),
		Active:       g.percent(g.plan.CustomerActivePct),
	}
}

// Categories returns the fixed vocabulary sized for the plan. Created once
// per run, never updated.
func (g *Generator) Categories() []model.Category {
	n := g.plan.Categories
	if n > len(categoryNames) {
		n = len(categoryNames)
	}
	cats := make([]model.Category, n)
	for i, name := range categoryNames[:n] {
		cats[i] = model.Category{
			Name:        name,
			Description: "Productos de " + strings.ToLower(name),
			Active:      true,
		}
	}
	return cats
}

// Product emits one product referencing a uniformly sampled category.
func (g *Generator) Product(categoryIDs []int64) model.Product {
	price := g.plan.PriceMin + g.rng.Float64()*(g.plan.PriceMax-g.plan.PriceMin)
	return model.Product{
		CategoryID:  categoryIDs[g.rng.Intn(len(categoryIDs))],
		Name:        sanitize(fmt.Sprintf("%s %s %d", pick(g.rng, productNouns), pick(g.rng, productAdjectives), g.rng.Intn(9000)+1000)),
		Description: sanitize(g.sentence(8 + g.rng.Intn(8))),
		Price:       round2(price),
		Stock:       g.rng.Intn(g.plan.MaxStock + 1),
		Active:      g.percent(g.plan.ProductActivePct),
	}
}

// Order emits one order with its lines and, when the status calls for them,
// a payment and a shipment. Line products are sampled without replacement
// and the total is the exact sum of line subtotals.
func (g *Generator) Order(pool *refpool.Pool) model.Order {
	o := model.Order{
		CustomerID: pool.Customer(g.rng),
		PlacedAt:   g.timestampBack(g.plan.OrderDays),
		Status:     model.OrderStatuses[g.rng.Intn(len(model.OrderStatuses))],
	}

	want := g.plan.MinLines + g.rng.Intn(g.plan.MaxLines-g.plan.MinLines+1)
	products := pool.Products(g.rng, want)

	total := decimal.Zero
	o.Lines = make([]model.OrderLine, len(products))
	for i, p := range products {
		line := model.OrderLine{
			ProductID: p.ID,
			Quantity:  1 + g.rng.Intn(g.plan.MaxQty),
			UnitPrice: g.driftPrice(p.Price),
		}
		total = total.Add(line.Subtotal())
		o.Lines[i] = line
	}
	o.Total = total

	if o.Status.RequiresPayment() {
		o.Payment = &model.Payment{
			PaidAt: o.PlacedAt.Add(time.Duration(1+g.rng.Intn(g.plan.PaymentMaxHours)) * time.Hour),
			Method: model.PaymentMethods[g.rng.Intn(len(model.PaymentMethods))],
			Amount: o.Total,
		}
	}
	if o.Status.RequiresShipment() {
		o.Shipment = &model.Shipment{
			Address:   sanitize(fmt.Sprintf("%s %d", pick(g.rng, streetNames), g.rng.Intn(9999)+1)),
			City:      pick(g.rng, cityNames),
			ShippedAt: o.PlacedAt.AddDate(0, 0, 1+g.rng.Intn(g.plan.ShipmentMaxDays)),
		}
	}
	return o
}

// driftPrice resamples a unit price around the product's current price
// (±10%), modelling price drift between catalog and order time.
func (g *Generator) driftPrice(base decimal.Decimal) decimal.Decimal {
	drift := 0.9 + g.rng.Float64()*0.2
	return base.Mul(decimal.NewFromFloat(drift)).Round(2)
}

func (g *Generator) timestampBack(days int) time.Time {
	span := days * 24
	return g.now.Add(-time.Duration(g.rng.Intn(span)) * time.Hour)
}

func (g *Generator) percent(pct int) bool {
	return g.rng.Intn(100) < pct
}

func (g *Generator) sentence(words int) string {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = pick(g.rng, descriptionWords)
	}
	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

// round2 rounds half away from zero to two decimals, the fixed-point
// currency convention. decimal.Round implements exactly that.
func round2(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

// sanitize strips delimiter and record-separator characters from free text
// so a buffered bulk-copy line can never be split by its own payload.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return ' '
		}
		return r
	}, s)
}

// asciiLower folds a name to a plain-ascii local part for emails.
func asciiLower(s string) string {
	repl := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
		"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ñ", "n",
	)
	return strings.ToLower(repl.Replace(s))
}
