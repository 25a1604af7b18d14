package schemaprep

import (
	"context"
	"fmt"
)

// Execer runs a single statement against the database.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) error
}

// Scope selects which object classes a suspend/restore pass touches.
type Scope struct {
	Triggers bool
	Indexes  bool
}

// Warning records a schema object that could not be suspended or restored.
// The load proceeds regardless; the caller decides how loudly to report.
type Warning struct {
	Object string
	Action string
	Err    error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s: %v", w.Action, w.Object, w.Err)
}

// Controller suspends and restores the catalog against one database.
type Controller struct {
	db    Execer
	rules *RuleSet
}

func NewController(db Execer, rules *RuleSet) *Controller {
	return &Controller{db: db, rules: rules}
}

// Suspend disables the scoped triggers and drops the scoped indexes.
// Each failure becomes a warning; work continues on the remaining objects.
func (c *Controller) Suspend(ctx context.Context, scope Scope) []Warning {
	var warns []Warning
	if scope.Triggers {
		for _, trg := range c.rules.Triggers {
			sql := fmt.Sprintf("ALTER TABLE %s DISABLE TRIGGER %s", trg.Table, trg.Name)
			if err := c.db.Exec(ctx, sql); err != nil {
				warns = append(warns, Warning{Object: trg.Name, Action: "disable trigger", Err: err})
			}
		}
	}
	if scope.Indexes {
		for _, idx := range c.rules.Indexes {
			sql := fmt.Sprintf("DROP INDEX IF EXISTS %s", idx.Name)
			if err := c.db.Exec(ctx, sql); err != nil {
				warns = append(warns, Warning{Object: idx.Name, Action: "drop index", Err: err})
			}
		}
	}
	return warns
}

// Restore rebuilds the scoped indexes and re-enables the scoped triggers.
// Failures are reported as warnings so one bad object cannot leave the
// rest suspended.
func (c *Controller) Restore(ctx context.Context, scope Scope) []Warning {
	var warns []Warning
	if scope.Indexes {
		for _, idx := range c.rules.Indexes {
			if err := c.db.Exec(ctx, idx.Create); err != nil {
				warns = append(warns, Warning{Object: idx.Name, Action: "create index", Err: err})
			}
		}
	}
	if scope.Triggers {
		for _, trg := range c.rules.Triggers {
			sql := fmt.Sprintf("ALTER TABLE %s ENABLE TRIGGER %s", trg.Table, trg.Name)
			if err := c.db.Exec(ctx, sql); err != nil {
				warns = append(warns, Warning{Object: trg.Name, Action: "enable trigger", Err: err})
			}
		}
	}
	return warns
}

// Optimize refreshes planner statistics after a load. Full additionally
// rewrites the tables to reclaim space, which takes an exclusive lock.
func (c *Controller) Optimize(ctx context.Context, full bool) error {
	stmt := "VACUUM ANALYZE"
	if full {
		stmt = "VACUUM FULL ANALYZE"
	}
	if err := c.db.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("database optimize failed: %w", err)
	}
	return nil
}
