package session

import (
	"errors"
	"fmt"
	"volley-training/internal/models"
	"volley-training/internal/repository"
	"volley-training/internal/schema"

	"github.com/jmoiron/sqlx"
)

type sessionRepository struct {
	db       *sqlx.DB
	resolver *schema.Resolver
}

func NewSessionRepository(db *sqlx.DB, resolver *schema.Resolver) repository.SessionRepository {
	return &sessionRepository{db: db, resolver: resolver}
}

func (r *sessionRepository) selectSession() (string, error) {
	phase, err := r.resolver.Expr(schema.SessionPhase, "NULL")
	if err != nil {
		return "", err
	}
	return `
		SELECT session_id, session_date, duration_min, COALESCE(theme, '') AS theme,
		       COALESCE(` + phase + `, '') AS phase, COALESCE(notes, '') AS notes, created_at
		FROM sessions
	`, nil
}

// phaseColumn is "" when the schema has no phase column and there is nothing to store
func (r *sessionRepository) phaseColumn(phase string) (string, error) {
	col, err := r.resolver.Resolve(schema.SessionPhase)
	if errors.Is(err, models.ErrSchemaIncompatible) && phase == "" {
		return "", nil
	}
	return col, err
}

func (r *sessionRepository) Create(session *models.Session, slots []models.SessionDrill) error {
	phaseCol, err := r.phaseColumn(session.Phase)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	query := `INSERT INTO sessions (session_date, duration_min, theme, notes, created_at) VALUES (?, ?, ?, ?, ?) RETURNING session_id`
	session.CreatedAt = models.Now()
	args := []interface{}{session.Date, session.DurationMin, session.Theme, session.Notes, session.CreatedAt}
	if phaseCol != "" {
		query = fmt.Sprintf(`INSERT INTO sessions (session_date, duration_min, theme, notes, created_at, %s) VALUES (?, ?, ?, ?, ?, ?) RETURNING session_id`, phaseCol)
		args = append(args, session.Phase)
	}

	return repository.InTx(r.db, func(tx *sqlx.Tx) error {
		if err := tx.QueryRowx(tx.Rebind(query), args...).Scan(&session.ID); err != nil {
			return fmt.Errorf("create session: %w", repository.Translate(err))
		}
		for i := range slots {
			slots[i].SessionID = session.ID
			if err := repository.InsertSlot(tx, &slots[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sessionRepository) GetByID(id int64) (*models.Session, error) {
	query, err := r.selectSession()
	if err != nil {
		return nil, err
	}

	session := &models.Session{}
	if err := r.db.Get(session, r.db.Rebind(query+` WHERE session_id = ?`), id); err != nil {
		return nil, fmt.Errorf("session %d: %w", id, repository.Translate(err))
	}
	return session, nil
}

func (r *sessionRepository) GetByDateRange(dr models.DateRange) ([]models.Session, error) {
	query, err := r.selectSession()
	if err != nil {
		return nil, err
	}

	where := (&repository.Where{}).Range("session_date", dr)
	query += where.SQL() + ` ORDER BY session_date DESC, session_id DESC`

	sessions := []models.Session{}
	if err := r.db.Select(&sessions, r.db.Rebind(query), where.Args()...); err != nil {
		return nil, fmt.Errorf("list sessions: %w", repository.Translate(err))
	}
	return sessions, nil
}

func (r *sessionRepository) Update(session *models.Session) error {
	phaseCol, err := r.phaseColumn(session.Phase)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	query := `UPDATE sessions SET session_date = ?, duration_min = ?, theme = ?, notes = ?`
	args := []interface{}{session.Date, session.DurationMin, session.Theme, session.Notes}
	if phaseCol != "" {
		query += fmt.Sprintf(`, %s = ?`, phaseCol)
		args = append(args, session.Phase)
	}
	query += ` WHERE session_id = ?`
	args = append(args, session.ID)

	res, err := r.db.Exec(r.db.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("update session: %w", repository.Translate(err))
	}
	return repository.ExpectRow(res, "session", session.ID)
}

func (r *sessionRepository) Delete(id int64) error {
	return repository.InTx(r.db, func(tx *sqlx.Tx) error {
		for _, query := range []string{
			`DELETE FROM session_drills WHERE session_id = ?`,
			`DELETE FROM attendance WHERE session_id = ?`,
			`DELETE FROM drill_results WHERE session_id = ?`,
		} {
			if _, err := tx.Exec(tx.Rebind(query), id); err != nil {
				return fmt.Errorf("delete session %d dependents: %w", id, repository.Translate(err))
			}
		}

		res, err := tx.Exec(tx.Rebind(`DELETE FROM sessions WHERE session_id = ?`), id)
		if err != nil {
			return fmt.Errorf("delete session %d: %w", id, repository.Translate(err))
		}
		return repository.ExpectRow(res, "session", id)
	})
}
