package repository

import (
	"fmt"
	"volley-training/internal/models"

	"github.com/jmoiron/sqlx"
)

// InsertSlot writes one SessionDrill inside tx. The session must already exist in
// tx; the drill is checked here.
func InsertSlot(tx *sqlx.Tx, slot *models.SessionDrill) error {
	if err := MustExist(tx, "drills", "drill_id", slot.DrillID, "drill"); err != nil {
		return err
	}

	query := `
		INSERT INTO session_drills (session_id, drill_id, sequence_no, planned_minutes, planned_reps)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := tx.Exec(
		tx.Rebind(query),
		slot.SessionID,
		slot.DrillID,
		slot.SequenceNo,
		slot.PlannedMinutes,
		slot.PlannedReps,
	)
	if err != nil {
		return fmt.Errorf("schedule drill %d at #%d: %w", slot.DrillID, slot.SequenceNo, Translate(err))
	}
	return nil
}

// Scheduled reports whether the drill has at least one slot in the session
func Scheduled(q sqlx.Queryer, sessionID, drillID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM session_drills WHERE session_id = ? AND drill_id = ?`

	var count int
	if err := sqlx.Get(q, &count, rebind(q, query), sessionID, drillID); err != nil {
		return false, Translate(err)
	}
	return count > 0, nil
}
