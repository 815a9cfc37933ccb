package columns

import (
	"fmt"
	"strings"
	"volley-training/internal/repository"

	"github.com/jmoiron/sqlx"
)

type columnInspector struct {
	db *sqlx.DB
}

func NewColumnInspector(db *sqlx.DB) repository.ColumnInspector {
	return &columnInspector{db: db}
}

func (c *columnInspector) Columns(table string) (map[string]bool, error) {
	var query string
	switch c.db.DriverName() {
	case "postgres":
		query = `
			SELECT column_name
			FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = $1
		`
	default:
		query = `SELECT name FROM pragma_table_info(?)`
	}

	var names []string
	if err := c.db.Select(&names, query, table); err != nil {
		return nil, fmt.Errorf("list columns of %s: %w", table, repository.Translate(err))
	}

	cols := make(map[string]bool, len(names))
	for _, n := range names {
		cols[strings.ToLower(n)] = true
	}
	return cols, nil
}
