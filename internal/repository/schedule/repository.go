package schedule

import (
	"fmt"
	"volley-training/internal/models"
	"volley-training/internal/repository"

	"github.com/jmoiron/sqlx"
)

type scheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) AddSlot(slot *models.SessionDrill) error {
	return repository.InTx(r.db, func(tx *sqlx.Tx) error {
		if err := repository.MustExist(tx, "sessions", "session_id", slot.SessionID, "session"); err != nil {
			return err
		}
		return repository.InsertSlot(tx, slot)
	})
}

func (r *scheduleRepository) GetSlots(sessionID int64) ([]models.SessionDrill, error) {
	query := `
		SELECT
			sd.session_id, sd.drill_id, sd.sequence_no, sd.planned_minutes, sd.planned_reps,
			d.drill_name, COALESCE(d.category, '') AS category
		FROM session_drills sd
		JOIN drills d ON d.drill_id = sd.drill_id
		WHERE sd.session_id = ?
		ORDER BY sd.sequence_no ASC
	`

	slots := []models.SessionDrill{}
	if err := r.db.Select(&slots, r.db.Rebind(query), sessionID); err != nil {
		return nil, fmt.Errorf("slots of session %d: %w", sessionID, repository.Translate(err))
	}
	return slots, nil
}

func (r *scheduleRepository) ReplacePlan(sessionID int64, slots []models.SessionDrill) error {
	return repository.InTx(r.db, func(tx *sqlx.Tx) error {
		if err := repository.MustExist(tx, "sessions", "session_id", sessionID, "session"); err != nil {
			return err
		}
		if _, err := tx.Exec(tx.Rebind(`DELETE FROM session_drills WHERE session_id = ?`), sessionID); err != nil {
			return fmt.Errorf("clear plan of session %d: %w", sessionID, repository.Translate(err))
		}
		for i := range slots {
			slots[i].SessionID = sessionID
			if err := repository.InsertSlot(tx, &slots[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *scheduleRepository) DeleteSlot(sessionID, drillID int64, sequenceNo int) error {
	query := `DELETE FROM session_drills WHERE session_id = ? AND drill_id = ? AND sequence_no = ?`
	res, err := r.db.Exec(r.db.Rebind(query), sessionID, drillID, sequenceNo)
	if err != nil {
		return fmt.Errorf("delete slot: %w", repository.Translate(err))
	}
	return repository.ExpectRow(res, "slot of session", sessionID)
}

func (r *scheduleRepository) IsScheduled(sessionID, drillID int64) (bool, error) {
	return repository.Scheduled(r.db, sessionID, drillID)
}

func (r *scheduleRepository) SlotFacts(filter models.FactFilter) ([]models.SlotFact, error) {
	where := repository.FactWhere(filter, "sd", false)
	query := `
		SELECT
			sd.session_id, s.session_date, sd.drill_id, d.drill_name,
			COALESCE(d.category, '') AS category, sd.sequence_no,
			COALESCE(sd.planned_minutes, 0) AS planned_minutes
		FROM session_drills sd
		JOIN sessions s ON s.session_id = sd.session_id
		JOIN drills d ON d.drill_id = sd.drill_id
	` + where.SQL() + `
		ORDER BY s.session_date ASC, sd.session_id ASC, sd.sequence_no ASC
	`

	facts := []models.SlotFact{}
	if err := r.db.Select(&facts, r.db.Rebind(query), where.Args()...); err != nil {
		return nil, fmt.Errorf("slot facts: %w", repository.Translate(err))
	}
	return facts, nil
}
