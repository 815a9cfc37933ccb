package result

import (
	"fmt"
	"volley-training/internal/models"
	"volley-training/internal/repository"

	"github.com/jmoiron/sqlx"
)

const selectResult = `
	SELECT result_id, session_id, drill_id, player_id, success_count, total_count,
	       COALESCE(error_type, '') AS error_type, COALESCE(notes, '') AS notes, created_at
	FROM drill_results
`

type resultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) repository.ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Insert(result *models.DrillResult) error {
	query := `
		INSERT INTO drill_results
		(session_id, drill_id, player_id, success_count, total_count, error_type, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING result_id
	`
	result.CreatedAt = models.Now()

	return repository.InTx(r.db, func(tx *sqlx.Tx) error {
		refs := []struct {
			table, column, what string
			id                  int64
		}{
			{"sessions", "session_id", "session", result.SessionID},
			{"drills", "drill_id", "drill", result.DrillID},
			{"players", "player_id", "player", result.PlayerID},
		}
		for _, ref := range refs {
			if err := repository.MustExist(tx, ref.table, ref.column, ref.id, ref.what); err != nil {
				return err
			}
		}

		scheduled, err := repository.Scheduled(tx, result.SessionID, result.DrillID)
		if err != nil {
			return err
		}
		if !scheduled {
			return fmt.Errorf("%w: drill %d in session %d", models.ErrNotScheduled, result.DrillID, result.SessionID)
		}

		err = tx.QueryRowx(
			tx.Rebind(query),
			result.SessionID,
			result.DrillID,
			result.PlayerID,
			result.SuccessCount,
			result.TotalCount,
			nullIfEmpty(result.ErrorType),
			nullIfEmpty(result.Notes),
			result.CreatedAt,
		).Scan(&result.ID)
		if err != nil {
			return fmt.Errorf("insert result: %w", repository.Translate(err))
		}
		return nil
	})
}

func (r *resultRepository) GetBySession(sessionID int64) ([]models.DrillResult, error) {
	results := []models.DrillResult{}
	query := selectResult + ` WHERE session_id = ? ORDER BY result_id`
	if err := r.db.Select(&results, r.db.Rebind(query), sessionID); err != nil {
		return nil, fmt.Errorf("results of session %d: %w", sessionID, repository.Translate(err))
	}
	return results, nil
}

func (r *resultRepository) GetByPlayer(playerID int64) ([]models.DrillResult, error) {
	results := []models.DrillResult{}
	query := selectResult + ` WHERE player_id = ? ORDER BY result_id`
	if err := r.db.Select(&results, r.db.Rebind(query), playerID); err != nil {
		return nil, fmt.Errorf("results of player %d: %w", playerID, repository.Translate(err))
	}
	return results, nil
}

// Facts returns matching results joined with session, drill and player, oldest first
func (r *resultRepository) Facts(filter models.FactFilter) ([]models.ResultFact, error) {
	where := repository.FactWhere(filter, "r", true)
	query := `
		SELECT
			r.result_id, r.session_id, s.session_date, COALESCE(s.theme, '') AS theme,
			r.drill_id, d.drill_name, COALESCE(d.category, '') AS category,
			r.player_id, p.name AS player_name,
			r.success_count, r.total_count, COALESCE(r.error_type, '') AS error_type
		FROM drill_results r
		JOIN sessions s ON s.session_id = r.session_id
		JOIN drills d ON d.drill_id = r.drill_id
		JOIN players p ON p.player_id = r.player_id
	` + where.SQL() + `
		ORDER BY r.result_id ASC
	`

	facts := []models.ResultFact{}
	if err := r.db.Select(&facts, r.db.Rebind(query), where.Args()...); err != nil {
		return nil, fmt.Errorf("result facts: %w", repository.Translate(err))
	}
	return facts, nil
}

func (r *resultRepository) Totals(dr models.DateRange) (*models.KPISummary, error) {
	where := (&repository.Where{}).Range("s.session_date", dr)
	query := `
		SELECT
			COALESCE(SUM(r.success_count), 0) AS success_count,
			COALESCE(SUM(r.total_count), 0) AS total_reps,
			COUNT(DISTINCT r.session_id) AS sessions,
			COUNT(DISTINCT r.player_id) AS active_players
		FROM drill_results r
		JOIN sessions s ON s.session_id = r.session_id
	` + where.SQL()

	kpi := &models.KPISummary{}
	if err := r.db.Get(kpi, r.db.Rebind(query), where.Args()...); err != nil {
		return nil, fmt.Errorf("result totals: %w", repository.Translate(err))
	}
	return kpi, nil
}

func (r *resultRepository) PlayerVolume(dr models.DateRange) ([]models.PlayerVolume, error) {
	where := (&repository.Where{}).Range("s.session_date", dr)
	query := `
		SELECT
			r.player_id,
			p.name,
			COUNT(DISTINCT r.session_id) AS sessions,
			COALESCE(SUM(r.total_count), 0) AS total_actions
		FROM drill_results r
		JOIN players p ON p.player_id = r.player_id
		JOIN sessions s ON s.session_id = r.session_id
	` + where.SQL() + `
		GROUP BY r.player_id, p.name
		ORDER BY total_actions DESC, r.player_id ASC
	`

	volume := []models.PlayerVolume{}
	if err := r.db.Select(&volume, r.db.Rebind(query), where.Args()...); err != nil {
		return nil, fmt.Errorf("player volume: %w", repository.Translate(err))
	}
	return volume, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
