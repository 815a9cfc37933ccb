// Package schema hides renamed optional columns from the rest of the code base.
//
// Older databases carry some drill and session columns under a previous name.
// Each such column is declared once here as a Field with its physical names in
// order of preference; repositories ask the Resolver which one exists instead of
// special-casing names. Nothing is migrated: the lookup happens at read time.
package schema

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"volley-training/internal/models"
	"volley-training/internal/repository"

	"go.uber.org/zap"
)

// Field is one logical column and the physical names it has had, preferred first.
type Field struct {
	Table   string
	Name    string
	Columns []string
}

var (
	DrillPurpose    = Field{Table: "drills", Name: "purpose", Columns: []string{"objective", "purpose"}}
	DrillDifficulty = Field{Table: "drills", Name: "difficulty", Columns: []string{"difficulty", "nm_load"}}
	DrillMinPlayers = Field{Table: "drills", Name: "min_players", Columns: []string{"min_players", "min_participants"}}
	DrillVisible    = Field{Table: "drills", Name: "is_visible", Columns: []string{"is_visible", "is_active"}}
	SessionPhase    = Field{Table: "sessions", Name: "phase", Columns: []string{"phase", "training_phase"}}
)

// Resolver caches the column set of every table it has been asked about.
// Call it before opening a transaction: on SQLite the pool has a single connection.
type Resolver struct {
	inspector repository.ColumnInspector
	log       *zap.Logger

	mu     sync.Mutex
	tables map[string]map[string]bool
}

func NewResolver(inspector repository.ColumnInspector, log *zap.Logger) *Resolver {
	return &Resolver{
		inspector: inspector,
		log:       log,
		tables:    make(map[string]map[string]bool),
	}
}

// Resolve returns the physical column backing f, or ErrSchemaIncompatible when
// the table has none of its names.
func (r *Resolver) Resolve(f Field) (string, error) {
	cols, err := r.columns(f.Table)
	if err != nil {
		return "", err
	}

	for i, name := range f.Columns {
		if !cols[name] {
			continue
		}
		if i > 0 {
			r.log.Debug("using legacy column",
				zap.String("table", f.Table), zap.String("field", f.Name), zap.String("column", name))
		}
		return name, nil
	}

	return "", fmt.Errorf("%w: %s has none of [%s] for %s",
		models.ErrSchemaIncompatible, f.Table, strings.Join(f.Columns, ", "), f.Name)
}

// Expr returns the physical column for f, or fallback (an SQL literal) when the
// table has none of its names.
func (r *Resolver) Expr(f Field, fallback string) (string, error) {
	col, err := r.Resolve(f)
	if errors.Is(err, models.ErrSchemaIncompatible) {
		return fallback, nil
	}
	return col, err
}

// SelectExpr is Expr aliased to the field name, for a SELECT list.
func (r *Resolver) SelectExpr(f Field, fallback string) (string, error) {
	expr, err := r.Expr(f, fallback)
	if err != nil {
		return "", err
	}
	return expr + " AS " + f.Name, nil
}

// Invalidate drops the cached column sets, after the schema was recreated.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables = make(map[string]map[string]bool)
}

func (r *Resolver) columns(table string) (map[string]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cols, ok := r.tables[table]; ok {
		return cols, nil
	}

	cols, err := r.inspector.Columns(table)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", table, err)
	}
	r.tables[table] = cols
	return cols, nil
}
