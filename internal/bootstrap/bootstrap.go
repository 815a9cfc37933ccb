// Package bootstrap is the persistence initializer: it creates the schema when it
// is missing, loads demo rows into a fresh database, and resets a database back
// to the demo state.
package bootstrap

import (
	_ "embed"
	"fmt"
	"strings"
	"volley-training/internal/repository"
	"volley-training/internal/schema"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

var (
	//go:embed sql/schema.sql
	schemaSQL string

	//go:embed sql/seed.sql
	seedSQL string
)

// dropOrder lists tables children first
var dropOrder = []string{"drill_results", "attendance", "session_drills", "sessions", "drills", "players"}

var dialects = map[string]*strings.Replacer{
	"postgres": strings.NewReplacer(
		"{{pk}}", "BIGSERIAL PRIMARY KEY",
		"{{ts}}", "TIMESTAMPTZ",
		"{{date}}", "DATE",
		"{{bool}}", "BOOLEAN",
		"{{true}}", "TRUE",
	),
	"sqlite": strings.NewReplacer(
		"{{pk}}", "INTEGER PRIMARY KEY AUTOINCREMENT",
		"{{ts}}", "TEXT",
		"{{date}}", "TEXT",
		"{{bool}}", "INTEGER",
		"{{true}}", "1",
	),
}

// SchemaFor renders the DDL for a driver name
func SchemaFor(driver string) (string, error) {
	r, ok := dialects[driver]
	if !ok {
		return "", fmt.Errorf("no schema for driver %q", driver)
	}
	return r.Replace(schemaSQL), nil
}

// EnsureSchema creates every table that does not exist yet
func EnsureSchema(db *sqlx.DB) error {
	ddl, err := SchemaFor(db.DriverName())
	if err != nil {
		return err
	}
	return repository.InTx(db, func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(ddl); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return nil
	})
}

// Seed loads the demo data set
func Seed(db *sqlx.DB) error {
	return repository.InTx(db, func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(seedSQL); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		return nil
	})
}

// Init makes the schema exist and seeds it when seed is set and the database holds
// no players, drills or sessions yet.
func Init(db *sqlx.DB, seed bool, log *zap.Logger) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}
	if !seed {
		return nil
	}

	var rows int
	err := db.Get(&rows, `
		SELECT (SELECT COUNT(*) FROM players) + (SELECT COUNT(*) FROM drills) + (SELECT COUNT(*) FROM sessions)
	`)
	if err != nil {
		return fmt.Errorf("check for existing data: %w", repository.Translate(err))
	}
	if rows > 0 {
		return nil
	}

	log.Info("empty database, loading demo data")
	return Seed(db)
}

// Reset drops every table, recreates the schema and reseeds, in one transaction
func Reset(db *sqlx.DB, log *zap.Logger) error {
	ddl, err := SchemaFor(db.DriverName())
	if err != nil {
		return err
	}

	err = repository.InTx(db, func(tx *sqlx.Tx) error {
		for _, table := range dropOrder {
			if _, err := tx.Exec(`DROP TABLE IF EXISTS ` + table); err != nil {
				return fmt.Errorf("drop %s: %w", table, err)
			}
		}
		if _, err := tx.Exec(ddl); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := tx.Exec(seedSQL); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Warn("database reset to demo data")
	return nil
}

// Initializer binds the bootstrap steps to one database and clears the schema
// resolver's cache whenever the tables are recreated.
type Initializer struct {
	db       *sqlx.DB
	resolver *schema.Resolver
	log      *zap.Logger
}

func NewInitializer(db *sqlx.DB, resolver *schema.Resolver, log *zap.Logger) *Initializer {
	return &Initializer{db: db, resolver: resolver, log: log}
}

func (i *Initializer) Init(seed bool) error {
	defer i.resolver.Invalidate()
	return Init(i.db, seed, i.log)
}

func (i *Initializer) Reset() error {
	defer i.resolver.Invalidate()
	return Reset(i.db, i.log)
}
