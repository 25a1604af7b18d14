// Package populate orchestrates a full population run: wipe, suspend schema
// objects, generate and load every entity, restore, optimize and report.
package populate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5"
	"github.com/schollz/progressbar/v3"

	"github.com/dverduzco/ecompop/internal/config"
	"github.com/dverduzco/ecompop/internal/gen"
	"github.com/dverduzco/ecompop/internal/loader"
	"github.com/dverduzco/ecompop/internal/model"
	"github.com/dverduzco/ecompop/internal/refpool"
	"github.com/dverduzco/ecompop/internal/schemaprep"
	"github.com/dverduzco/ecompop/internal/tier"
)

const insertCategorySQL = `INSERT INTO categoria (nombre, descripcion, activo) VALUES ($1, $2, $3) RETURNING id_categoria`

// Store is the slice of the connection the orchestrator drives. *db.Conn
// satisfies it.
type Store interface {
	Exec(ctx context.Context, sql string, args ...any) error
	InsertReturningID(ctx context.Context, sql string, args ...any) (int64, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)
	Truncate(ctx context.Context) error
	TableCount(ctx context.Context, table string) (int64, error)
	DatabaseSize(ctx context.Context, database string) (string, error)
}

// Run executes one population run for the given plan against the store.
func Run(ctx context.Context, store Store, cfg *config.Config, plan tier.Plan) error {
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}

	color.Cyan("=== Poblacion %s: %d clientes, %d productos, %d pedidos (%s) ===",
		plan.Name, plan.Customers, plan.Products, plan.Orders, plan.Strategy)

	rules, err := schemaprep.DefaultRules()
	if err != nil {
		return err
	}
	ctrl := schemaprep.NewController(store, rules)
	scope := schemaprep.Scope{Triggers: true, Indexes: plan.DropIndexes}

	m := beginMetrics()

	color.Yellow("Limpiando tablas...")
	if err := store.Truncate(ctx); err != nil {
		return err
	}

	printWarnings("suspension", ctrl.Suspend(ctx, scope))
	restored := false
	restore := func() {
		if restored {
			return
		}
		restored = true
		printWarnings("restauracion", ctrl.Restore(ctx, scope))
	}
	defer restore()

	g := gen.New(plan)

	if err := loadEntities(ctx, store, plan, g); err != nil {
		rollback(ctx, store)
		return err
	}

	pool, err := refpool.Load(ctx, store, plan.CustomerPoolCap, plan.ProductPoolCap)
	if err != nil {
		if errors.Is(err, refpool.ErrNoCustomers) || errors.Is(err, refpool.ErrNoProducts) {
			return fmt.Errorf("cannot generate orders: %w", err)
		}
		return err
	}
	color.Green("Pool de referencias: %d clientes, %d productos", pool.Customers(), pool.Size())

	totals, err := loadOrders(ctx, store, plan, g, pool)
	if err != nil {
		rollback(ctx, store)
		return err
	}
	if totals.Skipped > 0 {
		color.Yellow("Pedidos omitidos por errores transitorios: %d", totals.Skipped)
	}

	restore()

	switch plan.Optimize {
	case tier.OptimizeAnalyze:
		color.Yellow("Optimizando base de datos (VACUUM ANALYZE)...")
		if err := ctrl.Optimize(ctx, false); err != nil {
			return err
		}
	case tier.OptimizeFull:
		color.Yellow("Optimizando base de datos (VACUUM FULL ANALYZE)...")
		if err := ctrl.Optimize(ctx, true); err != nil {
			return err
		}
	}

	return report(ctx, store, cfg, m)
}

// loadEntities generates and loads the independent entities. Categories go
// through per-row inserts because their generated ids feed product
// generation; customers and products use the plan's strategy.
func loadEntities(ctx context.Context, store Store, plan tier.Plan, g *gen.Generator) error {
	sink, err := rowSink(store, plan, model.TableCustomer)
	if err != nil {
		return err
	}
	bar := progressbar.Default(int64(plan.Customers), "clientes")
	for i := 0; i < plan.Customers; i++ {
		c := g.Customer()
		if _, err := sink.Load(ctx, [][]any{c.Row()}); err != nil {
			return err
		}
		bar.Add(1)
	}
	if err := sink.Finalize(ctx); err != nil {
		return err
	}

	categoryIDs, err := loadCategories(ctx, store, g)
	if err != nil {
		return err
	}

	sink, err = rowSink(store, plan, model.TableProduct)
	if err != nil {
		return err
	}
	bar = progressbar.Default(int64(plan.Products), "productos")
	for i := 0; i < plan.Products; i++ {
		p := g.Product(categoryIDs)
		if _, err := sink.Load(ctx, [][]any{p.Row()}); err != nil {
			return err
		}
		bar.Add(1)
	}
	return sink.Finalize(ctx)
}

func loadCategories(ctx context.Context, store Store, g *gen.Generator) ([]int64, error) {
	cats := g.Categories()
	ids := make([]int64, 0, len(cats))
	for _, c := range cats {
		id, err := store.InsertReturningID(ctx, insertCategorySQL, c.Name, c.Description, c.Active)
		if err != nil {
			return nil, fmt.Errorf("failed to insert category %s: %w", c.Name, err)
		}
		ids = append(ids, id)
	}
	color.Green("Categorias insertadas: %d", len(ids))
	return ids, nil
}

func loadOrders(ctx context.Context, store Store, plan tier.Plan, g *gen.Generator, pool *refpool.Pool) (loader.Totals, error) {
	sink, err := orderSink(store, plan)
	if err != nil {
		return loader.Totals{}, err
	}
	bar := progressbar.Default(int64(plan.Orders), "pedidos")
	for i := 0; i < plan.Orders; i++ {
		o := g.Order(pool)
		if err := sink.Add(ctx, &o); err != nil {
			return loader.Totals{}, err
		}
		bar.Add(1)
	}
	return sink.Finalize(ctx)
}

func printWarnings(phase string, warns []schemaprep.Warning) {
	for _, w := range warns {
		color.Yellow("Advertencia de %s: %s", phase, w)
	}
}

// rollback discards any open transaction on a fatal path. Outside a
// transaction the statement is a harmless no-op warning on the server.
func rollback(ctx context.Context, store Store) {
	_ = store.Exec(ctx, "ROLLBACK")
}

func report(ctx context.Context, store Store, cfg *config.Config, m *metrics) error {
	color.Cyan("\n=== Estadisticas finales ===")

	var total int64
	for _, t := range model.ReportOrder {
		n, err := store.TableCount(ctx, t.Name)
		if err != nil {
			return err
		}
		total += n
		fmt.Printf("  %-15s %12d\n", t.Name, n)
	}
	fmt.Printf("  %-15s %12d\n", "TOTAL", total)

	size, err := store.DatabaseSize(ctx, cfg.Database)
	if err != nil {
		return err
	}

	color.Green("Tiempo total:      %s", m.elapsed().Round(10*time.Millisecond))
	color.Green("Registros/segundo: %.0f", m.recordsPerSecond(total))
	color.Green("Memoria usada:     %.1f MB", m.heapDeltaMB())
	color.Green("Tamano de BD:      %s", size)
	return nil
}
