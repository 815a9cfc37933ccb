package recording_service

import (
	"errors"
	"testing"
	"volley-training/internal/models"
	attendance_repo "volley-training/internal/repository/attendance"
	result_repo "volley-training/internal/repository/result"
	"volley-training/internal/service"
	"volley-training/internal/testinfra"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap/zaptest"
)

func setup(t *testing.T) (*sqlx.DB, service.RecordingService) {
	db := testinfra.NewSQLite(t)
	testinfra.MustExec(t, db, `INSERT INTO players (player_id, name) VALUES (1, 'Lin Yu-han'), (2, 'Huang Ting')`)
	testinfra.MustExec(t, db, `INSERT INTO drills (drill_id, drill_name, category) VALUES (1, 'D1', 'serve'), (2, 'D2', 'defense')`)
	testinfra.MustExec(t, db, `INSERT INTO sessions (session_id, session_date) VALUES (1, '2024-12-08')`)
	testinfra.MustExec(t, db, `INSERT INTO session_drills (session_id, drill_id, sequence_no) VALUES (1, 1, 1)`)

	svc := NewRecordingService(
		attendance_repo.NewAttendanceRepository(db),
		result_repo.NewResultRepository(db),
		zaptest.NewLogger(t),
	)
	return db, svc
}

func TestRecordAttendance(t *testing.T) {
	_, svc := setup(t)

	a, err := svc.RecordAttendance(1, 1, " Late ")
	if err != nil {
		t.Fatalf("RecordAttendance: %v", err)
	}
	if a.Status != models.StatusLate {
		t.Errorf("status = %q, want late", a.Status)
	}
	if _, err := svc.RecordAttendance(1, 1, "present"); err != nil {
		t.Fatalf("re-marking: %v", err)
	}

	list, err := svc.SessionAttendance(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Status != models.StatusPresent {
		t.Errorf("attendance = %+v, want a single present row", list)
	}

	summary, err := svc.AttendanceSummary(1)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Present != 1 || summary.Late != 0 || summary.Total != 1 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestRecordAttendanceRejects(t *testing.T) {
	_, svc := setup(t)

	tests := []struct {
		name            string
		session, player int64
		status          string
		want            error
	}{
		{"unknown status", 1, 1, "sick", models.ErrInvalidStatus},
		{"empty status", 1, 1, "", models.ErrInvalidStatus},
		{"unknown session", 5, 1, "present", models.ErrReferentialIntegrity},
		{"unknown player", 1, 5, "present", models.ErrReferentialIntegrity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.RecordAttendance(tt.session, tt.player, tt.status); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRecordDrillResult(t *testing.T) {
	db, svc := setup(t)

	tests := []struct {
		name  string
		input service.RecordResultInput
		want  error
	}{
		{"success above total", service.RecordResultInput{SessionID: 1, DrillID: 1, PlayerID: 1, SuccessCount: 5, TotalCount: 4}, models.ErrInvalidTally},
		{"negative count", service.RecordResultInput{SessionID: 1, DrillID: 1, PlayerID: 1, SuccessCount: -1, TotalCount: 4}, models.ErrInvalidTally},
		{"tally checked before references", service.RecordResultInput{SessionID: 9, DrillID: 9, PlayerID: 9, SuccessCount: 2, TotalCount: 1}, models.ErrInvalidTally},
		{"unknown player", service.RecordResultInput{SessionID: 1, DrillID: 1, PlayerID: 9, SuccessCount: 1, TotalCount: 1}, models.ErrReferentialIntegrity},
		{"drill not planned", service.RecordResultInput{SessionID: 1, DrillID: 2, PlayerID: 1, SuccessCount: 1, TotalCount: 1}, models.ErrNotScheduled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.RecordDrillResult(tt.input); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	var stored int
	if err := db.Get(&stored, `SELECT COUNT(*) FROM drill_results`); err != nil {
		t.Fatal(err)
	}
	if stored != 0 {
		t.Fatalf("%d rejected results were stored", stored)
	}

	result, err := svc.RecordDrillResult(service.RecordResultInput{
		SessionID: 1, DrillID: 1, PlayerID: 2, SuccessCount: 0, TotalCount: 0, ErrorType: "  toss ",
	})
	if err != nil {
		t.Fatalf("zero tally should be accepted: %v", err)
	}
	if result.ID == 0 || result.ErrorType != "toss" {
		t.Errorf("result = %+v", result)
	}

	results, err := svc.SessionResults(1)
	if err != nil || len(results) != 1 {
		t.Errorf("SessionResults = %+v, %v", results, err)
	}
}
