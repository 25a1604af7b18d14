package schemaprep

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeExecer struct {
	stmts  []string
	failOn string
}

func (f *fakeExecer) Exec(ctx context.Context, sql string, args ...any) error {
	f.stmts = append(f.stmts, sql)
	if f.failOn != "" && strings.Contains(sql, f.failOn) {
		return errors.New("object does not exist")
	}
	return nil
}

func TestDefaultRules(t *testing.T) {
	rs, err := DefaultRules()
	if err != nil {
		t.Fatalf("DefaultRules: %v", err)
	}
	if rs.Version != 1 {
		t.Errorf("Version = %d", rs.Version)
	}
	if len(rs.Triggers) != 4 {
		t.Errorf("got %d triggers, want 4", len(rs.Triggers))
	}
	for _, trg := range rs.Triggers {
		if trg.Table != "detallepedido" {
			t.Errorf("trigger %s on table %s, want detallepedido", trg.Name, trg.Table)
		}
	}
	if len(rs.Indexes) != 21 {
		t.Errorf("got %d indexes, want 21", len(rs.Indexes))
	}
	for _, idx := range rs.Indexes {
		if !strings.Contains(idx.Create, idx.Name) {
			t.Errorf("create statement for %s does not mention the index", idx.Name)
		}
	}
}

func TestParseRejectsUnknownVersion(t *testing.T) {
	_, err := ParseRules([]byte("version: 9\n"))
	if err == nil {
		t.Fatal("expected an error for version 9")
	}
}

func TestParseRejectsIncompleteRules(t *testing.T) {
	_, err := ParseRules([]byte("version: 1\nindexes:\n  - name: idx_x\n"))
	if err == nil {
		t.Fatal("expected an error for an index without a create statement")
	}
}

func TestSuspendScope(t *testing.T) {
	rs, err := DefaultRules()
	if err != nil {
		t.Fatalf("DefaultRules: %v", err)
	}

	db := &fakeExecer{}
	ctrl := NewController(db, rs)
	warns := ctrl.Suspend(context.Background(), Scope{Triggers: true})
	if len(warns) != 0 {
		t.Fatalf("warnings: %v", warns)
	}
	if len(db.stmts) != len(rs.Triggers) {
		t.Errorf("executed %d statements, want %d trigger disables", len(db.stmts), len(rs.Triggers))
	}
	for _, s := range db.stmts {
		if !strings.Contains(s, "DISABLE TRIGGER") {
			t.Errorf("unexpected statement in trigger-only scope: %s", s)
		}
	}

	db = &fakeExecer{}
	ctrl = NewController(db, rs)
	ctrl.Suspend(context.Background(), Scope{Triggers: true, Indexes: true})
	if len(db.stmts) != len(rs.Triggers)+len(rs.Indexes) {
		t.Errorf("executed %d statements, want %d", len(db.stmts), len(rs.Triggers)+len(rs.Indexes))
	}
}

func TestSuspendCollectsWarningsAndContinues(t *testing.T) {
	rs, err := DefaultRules()
	if err != nil {
		t.Fatalf("DefaultRules: %v", err)
	}
	db := &fakeExecer{failOn: "idx_pedido_fecha"}
	ctrl := NewController(db, rs)

	warns := ctrl.Suspend(context.Background(), Scope{Indexes: true})
	if len(warns) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warns)
	}
	if warns[0].Object != "idx_pedido_fecha" {
		t.Errorf("warning names %q", warns[0].Object)
	}
	// Every drop still ran despite the failure.
	if len(db.stmts) != len(rs.Indexes) {
		t.Errorf("executed %d statements, want %d", len(db.stmts), len(rs.Indexes))
	}
}

func TestRestoreRebuildsIndexesBeforeTriggers(t *testing.T) {
	rs, err := DefaultRules()
	if err != nil {
		t.Fatalf("DefaultRules: %v", err)
	}
	db := &fakeExecer{}
	ctrl := NewController(db, rs)

	warns := ctrl.Restore(context.Background(), Scope{Triggers: true, Indexes: true})
	if len(warns) != 0 {
		t.Fatalf("warnings: %v", warns)
	}
	lastCreate, firstEnable := -1, -1
	for i, s := range db.stmts {
		if strings.HasPrefix(s, "CREATE INDEX") {
			lastCreate = i
		}
		if firstEnable == -1 && strings.Contains(s, "ENABLE TRIGGER") {
			firstEnable = i
		}
	}
	if lastCreate == -1 || firstEnable == -1 || lastCreate > firstEnable {
		t.Errorf("indexes not rebuilt before triggers re-enabled: %v", db.stmts)
	}
}

func TestOptimize(t *testing.T) {
	db := &fakeExecer{}
	ctrl := NewController(db, &RuleSet{Version: 1})

	if err := ctrl.Optimize(context.Background(), false); err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if err := ctrl.Optimize(context.Background(), true); err != nil {
		t.Fatalf("Optimize full: %v", err)
	}
	if db.stmts[0] != "VACUUM ANALYZE" || db.stmts[1] != "VACUUM FULL ANALYZE" {
		t.Errorf("statements = %v", db.stmts)
	}
}
