package bootstrap_test

import (
	"strings"
	"testing"
	"volley-training/internal/bootstrap"
	"volley-training/internal/schema"
	"volley-training/internal/testinfra"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap/zaptest"
)

func counts(t *testing.T, db *sqlx.DB) map[string]int {
	t.Helper()
	out := make(map[string]int)
	for _, table := range []string{"players", "drills", "sessions", "session_drills", "attendance", "drill_results"} {
		var n int
		if err := db.Get(&n, `SELECT COUNT(*) FROM `+table); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		out[table] = n
	}
	return out
}

var seeded = map[string]int{
	"players":        5,
	"drills":         4,
	"sessions":       3,
	"session_drills": 7,
	"attendance":     12,
	"drill_results":  10,
}

func assertCounts(t *testing.T, got, want map[string]int) {
	t.Helper()
	for table, n := range want {
		if got[table] != n {
			t.Errorf("%s = %d, want %d", table, got[table], n)
		}
	}
}

func TestSchemaFor(t *testing.T) {
	pg, err := bootstrap.SchemaFor("postgres")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pg, "BIGSERIAL PRIMARY KEY") || strings.Contains(pg, "{{") {
		t.Error("postgres DDL not rendered")
	}

	lite, err := bootstrap.SchemaFor("sqlite")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(lite, "INTEGER PRIMARY KEY AUTOINCREMENT") || strings.Contains(lite, "{{") {
		t.Error("sqlite DDL not rendered")
	}

	if _, err := bootstrap.SchemaFor("mysql"); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestInitSeedsOnce(t *testing.T) {
	db := testinfra.OpenSQLite(t)
	log := zaptest.NewLogger(t)

	if err := bootstrap.Init(db, true, log); err != nil {
		t.Fatalf("Init: %v", err)
	}
	assertCounts(t, counts(t, db), seeded)

	if err := bootstrap.Init(db, true, log); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	assertCounts(t, counts(t, db), seeded)
}

func TestInitWithoutSeed(t *testing.T) {
	db := testinfra.OpenSQLite(t)

	if err := bootstrap.Init(db, false, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	for table, n := range counts(t, db) {
		if n != 0 {
			t.Errorf("%s has %d rows, want none", table, n)
		}
	}
}

func TestInitKeepsExistingData(t *testing.T) {
	db := testinfra.NewSQLite(t)
	testinfra.MustExec(t, db, `INSERT INTO players (name) VALUES ('Tsai Min')`)

	if err := bootstrap.Init(db, true, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if got := counts(t, db); got["players"] != 1 || got["drills"] != 0 {
		t.Errorf("non-empty database was seeded: %v", got)
	}
}

func TestResetRestoresDemoData(t *testing.T) {
	db := testinfra.OpenSQLite(t)
	log := zaptest.NewLogger(t)
	if err := bootstrap.Init(db, true, log); err != nil {
		t.Fatal(err)
	}
	testinfra.MustExec(t, db, `DELETE FROM drill_results`)
	testinfra.MustExec(t, db, `INSERT INTO players (name) VALUES ('Walk-on')`)

	if err := bootstrap.Reset(db, log); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	assertCounts(t, counts(t, db), seeded)
}

func TestInitializerResetClearsResolverCache(t *testing.T) {
	db := testinfra.OpenSQLite(t)
	testinfra.MustExec(t, db, `CREATE TABLE drills (drill_id INTEGER PRIMARY KEY, drill_name TEXT, purpose TEXT)`)
	resolver := testinfra.NewResolver(t, db)

	if col, err := resolver.Resolve(schema.DrillPurpose); err != nil || col != "purpose" {
		t.Fatalf("legacy Resolve = %q, %v", col, err)
	}

	initializer := bootstrap.NewInitializer(db, resolver, zaptest.NewLogger(t))
	if err := initializer.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if col, err := resolver.Resolve(schema.DrillPurpose); err != nil || col != "objective" {
		t.Errorf("after Reset Resolve = %q, %v; want objective", col, err)
	}
}
