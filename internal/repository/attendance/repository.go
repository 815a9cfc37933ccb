package attendance

import (
	"fmt"
	"volley-training/internal/models"
	"volley-training/internal/repository"

	"github.com/jmoiron/sqlx"
)

type attendanceRepository struct {
	db *sqlx.DB
}

func NewAttendanceRepository(db *sqlx.DB) repository.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert records the status for (session, player); marking again replaces it
func (r *attendanceRepository) Upsert(attendance *models.Attendance) error {
	query := `
		INSERT INTO attendance (session_id, player_id, status, recorded_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (session_id, player_id)
		DO UPDATE SET status = excluded.status, recorded_at = excluded.recorded_at
	`
	attendance.RecordedAt = models.Now()

	return repository.InTx(r.db, func(tx *sqlx.Tx) error {
		if err := repository.MustExist(tx, "sessions", "session_id", attendance.SessionID, "session"); err != nil {
			return err
		}
		if err := repository.MustExist(tx, "players", "player_id", attendance.PlayerID, "player"); err != nil {
			return err
		}

		_, err := tx.Exec(
			tx.Rebind(query),
			attendance.SessionID,
			attendance.PlayerID,
			attendance.Status,
			attendance.RecordedAt,
		)
		if err != nil {
			return fmt.Errorf("record attendance: %w", repository.Translate(err))
		}
		return nil
	})
}

func (r *attendanceRepository) GetBySession(sessionID int64) ([]models.Attendance, error) {
	query := `
		SELECT a.session_id, a.player_id, a.status, a.recorded_at, p.name AS player_name
		FROM attendance a
		JOIN players p ON p.player_id = a.player_id
		WHERE a.session_id = ?
		ORDER BY p.name, a.player_id
	`

	attendances := []models.Attendance{}
	if err := r.db.Select(&attendances, r.db.Rebind(query), sessionID); err != nil {
		return nil, fmt.Errorf("attendance of session %d: %w", sessionID, repository.Translate(err))
	}
	return attendances, nil
}

func (r *attendanceRepository) GetByPlayer(playerID int64, dr models.DateRange) ([]models.Attendance, error) {
	where := (&repository.Where{}).Add("a.player_id = ?", playerID).Range("s.session_date", dr)
	query := `
		SELECT a.session_id, a.player_id, a.status, a.recorded_at, p.name AS player_name
		FROM attendance a
		JOIN players p ON p.player_id = a.player_id
		JOIN sessions s ON s.session_id = a.session_id
	` + where.SQL() + `
		ORDER BY s.session_date DESC, a.session_id DESC
	`

	attendances := []models.Attendance{}
	if err := r.db.Select(&attendances, r.db.Rebind(query), where.Args()...); err != nil {
		return nil, fmt.Errorf("attendance of player %d: %w", playerID, repository.Translate(err))
	}
	return attendances, nil
}

func (r *attendanceRepository) GetStats(sessionID int64) (*models.AttendanceSummary, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN status = 'present' THEN 1 END) AS present,
			COUNT(CASE WHEN status = 'late' THEN 1 END) AS late,
			COUNT(CASE WHEN status = 'excused' THEN 1 END) AS excused,
			COUNT(CASE WHEN status = 'absent' THEN 1 END) AS absent
		FROM attendance
		WHERE session_id = ?
	`

	stats := &models.AttendanceSummary{SessionID: sessionID}
	err := r.db.QueryRowx(r.db.Rebind(query), sessionID).Scan(
		&stats.Total, &stats.Present, &stats.Late, &stats.Excused, &stats.Absent,
	)
	if err != nil {
		return nil, fmt.Errorf("attendance stats of session %d: %w", sessionID, repository.Translate(err))
	}
	return stats, nil
}
