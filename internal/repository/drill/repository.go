package drill

import (
	"errors"
	"fmt"
	"strings"
	"volley-training/internal/models"
	"volley-training/internal/repository"
	"volley-training/internal/schema"

	"github.com/jmoiron/sqlx"
)

type drillRepository struct {
	db       *sqlx.DB
	resolver *schema.Resolver
}

func NewDrillRepository(db *sqlx.DB, resolver *schema.Resolver) repository.DrillRepository {
	return &drillRepository{db: db, resolver: resolver}
}

// selectDrill builds the SELECT list for the columns present in this database.
// A missing optional column reads as its default.
func (r *drillRepository) selectDrill() (string, error) {
	purpose, err := r.resolver.Expr(schema.DrillPurpose, "NULL")
	if err != nil {
		return "", err
	}
	cols := []string{
		"drill_id",
		"drill_name",
		"COALESCE(category, '') AS category",
		"COALESCE(" + purpose + ", '') AS purpose",
		"created_at",
	}

	for _, f := range []struct {
		field    schema.Field
		fallback string
	}{
		{schema.DrillDifficulty, "3"},
		{schema.DrillMinPlayers, "0"},
		{schema.DrillVisible, "(1 = 1)"},
	} {
		expr, err := r.resolver.SelectExpr(f.field, f.fallback)
		if err != nil {
			return "", err
		}
		cols = append(cols, expr)
	}

	return "SELECT " + strings.Join(cols, ", ") + " FROM drills", nil
}

// writableColumns maps present physical columns to values. The purpose column is
// only required when there is a purpose to store.
func (r *drillRepository) writableColumns(drill *models.Drill) ([]string, []interface{}, error) {
	names := []string{"drill_name", "category"}
	values := []interface{}{drill.Name, drill.Category}

	optional := []struct {
		field schema.Field
		value interface{}
		need  bool
	}{
		{schema.DrillPurpose, drill.Purpose, drill.Purpose != ""},
		{schema.DrillDifficulty, drill.Difficulty, false},
		{schema.DrillMinPlayers, drill.MinPlayers, false},
		{schema.DrillVisible, drill.Visible, false},
	}
	for _, o := range optional {
		col, err := r.resolver.Resolve(o.field)
		if err != nil {
			if errors.Is(err, models.ErrSchemaIncompatible) && !o.need {
				continue
			}
			return nil, nil, err
		}
		names = append(names, col)
		values = append(values, o.value)
	}
	return names, values, nil
}

func (r *drillRepository) Create(drill *models.Drill) error {
	names, values, err := r.writableColumns(drill)
	if err != nil {
		return fmt.Errorf("create drill: %w", err)
	}
	drill.CreatedAt = models.Now()
	names = append(names, "created_at")
	values = append(values, drill.CreatedAt)

	query := fmt.Sprintf(
		`INSERT INTO drills (%s) VALUES (%s) RETURNING drill_id`,
		strings.Join(names, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", "),
	)
	if err := r.db.QueryRowx(r.db.Rebind(query), values...).Scan(&drill.ID); err != nil {
		return fmt.Errorf("create drill: %w", repository.Translate(err))
	}
	return nil
}

func (r *drillRepository) GetByID(id int64) (*models.Drill, error) {
	query, err := r.selectDrill()
	if err != nil {
		return nil, err
	}

	drill := &models.Drill{}
	if err := r.db.Get(drill, r.db.Rebind(query+` WHERE drill_id = ?`), id); err != nil {
		return nil, fmt.Errorf("drill %d: %w", id, repository.Translate(err))
	}
	return drill, nil
}

func (r *drillRepository) GetAll(visibleOnly bool) ([]models.Drill, error) {
	query, err := r.selectDrill()
	if err != nil {
		return nil, err
	}

	drills := []models.Drill{}
	if err := r.db.Select(&drills, query+` ORDER BY drill_name, drill_id`); err != nil {
		return nil, fmt.Errorf("list drills: %w", repository.Translate(err))
	}
	if !visibleOnly {
		return drills, nil
	}

	visible := drills[:0]
	for _, d := range drills {
		if d.Visible {
			visible = append(visible, d)
		}
	}
	return visible, nil
}

func (r *drillRepository) Update(drill *models.Drill) error {
	names, values, err := r.writableColumns(drill)
	if err != nil {
		return fmt.Errorf("update drill: %w", err)
	}

	sets := make([]string, len(names))
	for i, n := range names {
		sets[i] = n + " = ?"
	}
	query := fmt.Sprintf(`UPDATE drills SET %s WHERE drill_id = ?`, strings.Join(sets, ", "))

	res, err := r.db.Exec(r.db.Rebind(query), append(values, drill.ID)...)
	if err != nil {
		return fmt.Errorf("update drill: %w", repository.Translate(err))
	}
	return repository.ExpectRow(res, "drill", drill.ID)
}

func (r *drillRepository) Delete(id int64) error {
	return repository.InTx(r.db, func(tx *sqlx.Tx) error {
		for _, query := range []string{
			`DELETE FROM session_drills WHERE drill_id = ?`,
			`DELETE FROM drill_results WHERE drill_id = ?`,
		} {
			if _, err := tx.Exec(tx.Rebind(query), id); err != nil {
				return fmt.Errorf("delete drill %d dependents: %w", id, repository.Translate(err))
			}
		}

		res, err := tx.Exec(tx.Rebind(`DELETE FROM drills WHERE drill_id = ?`), id)
		if err != nil {
			return fmt.Errorf("delete drill %d: %w", id, repository.Translate(err))
		}
		return repository.ExpectRow(res, "drill", id)
	})
}

func (r *drillRepository) Categories() ([]string, error) {
	categories := []string{}
	query := `
		SELECT DISTINCT category
		FROM drills
		WHERE category IS NOT NULL AND category <> ''
		ORDER BY category
	`
	if err := r.db.Select(&categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", repository.Translate(err))
	}
	return categories, nil
}
