package session

import (
	"errors"
	"testing"
	"volley-training/internal/models"
	"volley-training/internal/repository"
	"volley-training/internal/testinfra"

	"github.com/jmoiron/sqlx"
)

func intPtr(v int) *int { return &v }

func newRepo(t *testing.T) (*sqlx.DB, repository.SessionRepository) {
	db := testinfra.NewSQLite(t)
	testinfra.MustExec(t, db, `
		INSERT INTO drills (drill_id, drill_name, category)
		VALUES (1, 'Serve receive triangle', 'serve_receive'), (2, 'Dig and cover', 'defense')
	`)
	return db, NewSessionRepository(db, testinfra.NewResolver(t, db))
}

func count(t *testing.T, db *sqlx.DB, query string) int {
	t.Helper()
	var n int
	if err := db.Get(&n, query); err != nil {
		t.Fatal(err)
	}
	return n
}

func TestSessionCreateWithPlan(t *testing.T) {
	db, repo := newRepo(t)

	session := &models.Session{
		Date:        models.NewDate(2024, 12, 8),
		DurationMin: intPtr(120),
		Theme:       "Reception and defense",
		Phase:       "build",
	}
	plan := []models.SessionDrill{
		{DrillID: 1, SequenceNo: 1, PlannedMinutes: intPtr(30)},
		{DrillID: 2, SequenceNo: 2, PlannedMinutes: intPtr(40)},
	}
	if err := repo.Create(session, plan); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if plan[1].SessionID != session.ID {
		t.Error("slots not bound to the new session")
	}

	got, err := repo.GetByID(session.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Date != session.Date || got.Theme != "Reception and defense" || got.Phase != "build" || *got.DurationMin != 120 {
		t.Errorf("got %+v", got)
	}
	if n := count(t, db, `SELECT COUNT(*) FROM session_drills`); n != 2 {
		t.Errorf("slots = %d, want 2", n)
	}
}

func TestSessionCreateIsAtomic(t *testing.T) {
	tests := []struct {
		name string
		plan []models.SessionDrill
		want error
	}{
		{
			name: "repeated sequence number",
			plan: []models.SessionDrill{{DrillID: 1, SequenceNo: 1}, {DrillID: 2, SequenceNo: 1}},
			want: models.ErrDuplicateSlot,
		},
		{
			name: "unknown drill",
			plan: []models.SessionDrill{{DrillID: 1, SequenceNo: 1}, {DrillID: 99, SequenceNo: 2}},
			want: models.ErrReferentialIntegrity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, repo := newRepo(t)

			err := repo.Create(&models.Session{Date: models.NewDate(2024, 12, 12)}, tt.plan)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if n := count(t, db, `SELECT COUNT(*) FROM sessions`); n != 0 {
				t.Errorf("sessions = %d after failed create", n)
			}
			if n := count(t, db, `SELECT COUNT(*) FROM session_drills`); n != 0 {
				t.Errorf("slots = %d after failed create", n)
			}
		})
	}
}

func TestSessionDateRange(t *testing.T) {
	_, repo := newRepo(t)
	for _, day := range []int{8, 12, 15} {
		if err := repo.Create(&models.Session{Date: models.NewDate(2024, 12, day)}, nil); err != nil {
			t.Fatal(err)
		}
	}

	all, err := repo.GetByDateRange(models.DateRange{})
	if err != nil {
		t.Fatalf("GetByDateRange: %v", err)
	}
	if len(all) != 3 || all[0].Date.Day() != 15 || all[2].Date.Day() != 8 {
		t.Errorf("want newest first, got %+v", all)
	}

	within, _ := repo.GetByDateRange(models.DateRange{From: models.NewDate(2024, 12, 9), To: models.NewDate(2024, 12, 15)})
	if len(within) != 2 {
		t.Errorf("inclusive range returned %d sessions, want 2", len(within))
	}
}

func TestSessionUpdateAndDelete(t *testing.T) {
	db, repo := newRepo(t)
	session := &models.Session{Date: models.NewDate(2024, 12, 8), Theme: "Serve"}
	if err := repo.Create(session, []models.SessionDrill{{DrillID: 1, SequenceNo: 1}}); err != nil {
		t.Fatal(err)
	}

	session.Theme = "Serve and pass"
	session.Phase = "peak"
	if err := repo.Update(session); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := repo.GetByID(session.ID)
	if got.Theme != "Serve and pass" || got.Phase != "peak" {
		t.Errorf("after update %+v", got)
	}

	testinfra.MustExec(t, db, `INSERT INTO players (player_id, name) VALUES (1, 'Tsai Min')`)
	testinfra.MustExec(t, db, `INSERT INTO attendance (session_id, player_id, status) VALUES (?, 1, 'present')`, session.ID)
	testinfra.MustExec(t, db, `
		INSERT INTO drill_results (session_id, drill_id, player_id, success_count, total_count)
		VALUES (?, 1, 1, 4, 5)
	`, session.ID)

	if err := repo.Delete(session.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	for _, table := range []string{"sessions", "session_drills", "attendance", "drill_results"} {
		if n := count(t, db, `SELECT COUNT(*) FROM `+table); n != 0 {
			t.Errorf("%s has %d rows after delete", table, n)
		}
	}
	if err := repo.Update(session); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("update deleted session err = %v", err)
	}
}

func TestSessionLegacyPhaseColumn(t *testing.T) {
	db := testinfra.OpenSQLite(t)
	testinfra.MustExec(t, db, `
		CREATE TABLE sessions (
			session_id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_date TEXT NOT NULL,
			duration_min INTEGER,
			theme TEXT,
			training_phase TEXT,
			notes TEXT,
			created_at TEXT
		)
	`)
	repo := NewSessionRepository(db, testinfra.NewResolver(t, db))

	session := &models.Session{Date: models.NewDate(2024, 12, 15), Phase: "taper"}
	if err := repo.Create(session, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(session.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Phase != "taper" {
		t.Errorf("phase = %q, want taper", got.Phase)
	}
}
