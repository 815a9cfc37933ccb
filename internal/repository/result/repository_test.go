package result

import (
	"errors"
	"testing"
	"volley-training/internal/models"
	"volley-training/internal/testinfra"

	"github.com/jmoiron/sqlx"
)

func setup(t *testing.T) *sqlx.DB {
	db := testinfra.NewSQLite(t)
	testinfra.MustExec(t, db, `INSERT INTO players (player_id, name) VALUES (1, 'Lin Yu-han'), (2, 'Huang Ting')`)
	testinfra.MustExec(t, db, `
		INSERT INTO drills (drill_id, drill_name, category) VALUES
			(1, 'Serve receive triangle', 'serve_receive'),
			(2, 'Dig and cover', 'defense'),
			(3, 'Float serve targets', 'serve')
	`)
	testinfra.MustExec(t, db, `
		INSERT INTO sessions (session_id, session_date, theme) VALUES
			(1, '2024-12-08', 'Reception and defense'),
			(2, '2024-12-12', 'Attack chain')
	`)
	testinfra.MustExec(t, db, `
		INSERT INTO session_drills (session_id, drill_id, sequence_no) VALUES
			(1, 1, 1), (1, 2, 2), (2, 3, 1)
	`)
	return db
}

func TestInsertChecks(t *testing.T) {
	repo := NewResultRepository(setup(t))

	tests := []struct {
		name   string
		result models.DrillResult
		want   error
	}{
		{"unknown session", models.DrillResult{SessionID: 9, DrillID: 1, PlayerID: 1, TotalCount: 1}, models.ErrReferentialIntegrity},
		{"unknown drill", models.DrillResult{SessionID: 1, DrillID: 9, PlayerID: 1, TotalCount: 1}, models.ErrReferentialIntegrity},
		{"unknown player", models.DrillResult{SessionID: 1, DrillID: 1, PlayerID: 9, TotalCount: 1}, models.ErrReferentialIntegrity},
		{"drill not in plan", models.DrillResult{SessionID: 1, DrillID: 3, PlayerID: 1, TotalCount: 1}, models.ErrNotScheduled},
		{"tally rejected by store", models.DrillResult{SessionID: 1, DrillID: 1, PlayerID: 1, SuccessCount: 3, TotalCount: 2}, models.ErrInvalidTally},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.result
			if err := repo.Insert(&r); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	results, _ := repo.GetBySession(1)
	if len(results) != 0 {
		t.Errorf("rejected results were stored: %+v", results)
	}
}

func TestInsertAppends(t *testing.T) {
	repo := NewResultRepository(setup(t))

	for _, r := range []models.DrillResult{
		{SessionID: 1, DrillID: 1, PlayerID: 1, SuccessCount: 18, TotalCount: 20, ErrorType: "platform angle"},
		{SessionID: 1, DrillID: 1, PlayerID: 1, SuccessCount: 2, TotalCount: 2},
	} {
		r := r
		if err := repo.Insert(&r); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if r.ID == 0 {
			t.Error("Insert did not set ID")
		}
	}

	results, err := repo.GetByPlayer(1)
	if err != nil {
		t.Fatalf("GetByPlayer: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("both batches should be kept, got %+v", results)
	}
	if results[0].ErrorType != "platform angle" || results[1].ErrorType != "" {
		t.Errorf("error types = %q, %q", results[0].ErrorType, results[1].ErrorType)
	}
}

func TestFactsAndAggregates(t *testing.T) {
	repo := NewResultRepository(setup(t))
	for _, r := range []models.DrillResult{
		{SessionID: 1, DrillID: 1, PlayerID: 1, SuccessCount: 18, TotalCount: 25, ErrorType: "platform angle"},
		{SessionID: 1, DrillID: 2, PlayerID: 2, SuccessCount: 16, TotalCount: 20},
		{SessionID: 2, DrillID: 3, PlayerID: 1, SuccessCount: 17, TotalCount: 20, ErrorType: "toss"},
	} {
		r := r
		if err := repo.Insert(&r); err != nil {
			t.Fatal(err)
		}
	}

	player := int64(1)
	facts, err := repo.Facts(models.FactFilter{PlayerID: &player})
	if err != nil {
		t.Fatalf("Facts: %v", err)
	}
	if len(facts) != 2 {
		t.Fatalf("facts = %+v", facts)
	}
	f := facts[0]
	if f.Theme != "Reception and defense" || f.Category != "serve_receive" || f.PlayerName != "Lin Yu-han" ||
		f.SessionDate != models.NewDate(2024, 12, 8) {
		t.Errorf("joined fact = %+v", f)
	}

	december8 := models.DateRange{From: models.NewDate(2024, 12, 8), To: models.NewDate(2024, 12, 8)}
	kpi, err := repo.Totals(december8)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	want := models.KPISummary{SuccessCount: 34, TotalReps: 45, Sessions: 1, ActivePlayers: 2}
	if *kpi != want {
		t.Errorf("totals = %+v, want %+v", *kpi, want)
	}

	empty, err := repo.Totals(models.DateRange{From: models.NewDate(2025, 1, 1)})
	if err != nil || *empty != (models.KPISummary{}) {
		t.Errorf("empty totals = %+v, %v", empty, err)
	}

	volume, err := repo.PlayerVolume(models.DateRange{})
	if err != nil {
		t.Fatalf("PlayerVolume: %v", err)
	}
	if len(volume) != 2 || volume[0].PlayerID != 1 || volume[0].TotalActions != 45 || volume[0].Sessions != 2 {
		t.Errorf("volume = %+v", volume)
	}
}
