// Package testinfra holds helpers shared by package tests.
package testinfra

import (
	"path/filepath"
	"testing"
	"volley-training/internal/bootstrap"
	"volley-training/internal/repository/columns"
	"volley-training/internal/schema"
	database "volley-training/pkg"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap/zaptest"
)

// NewSQLite opens a fresh database file under t.TempDir with the full schema.
func NewSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	db := OpenSQLite(t)
	if err := bootstrap.EnsureSchema(db); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	return db
}

// OpenSQLite opens an empty database file, for tests that build their own tables.
func OpenSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "volley_test.db")
	db, err := database.NewSQLite(path, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// MustExec runs statements that are expected to succeed.
func MustExec(t *testing.T, db *sqlx.DB, query string, args ...interface{}) {
	t.Helper()
	if _, err := db.Exec(db.Rebind(query), args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}

// NewResolver returns a schema resolver over db's live columns.
func NewResolver(t *testing.T, db *sqlx.DB) *schema.Resolver {
	return schema.NewResolver(columns.NewColumnInspector(db), zaptest.NewLogger(t))
}
