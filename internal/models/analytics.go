package models

// DateRange is inclusive on both ends. A zero bound is open.
type DateRange struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

func (r DateRange) Contains(d Date) bool {
	if !r.From.IsZero() && d.Before(r.From.Time) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To.Time) {
		return false
	}
	return true
}

type KPISummary struct {
	SuccessRate   float64 `json:"success_rate" db:"-"`
	SuccessCount  int     `json:"success_count" db:"success_count"`
	TotalReps     int     `json:"total_reps" db:"total_reps"`
	Sessions      int     `json:"sessions" db:"sessions"`
	ActivePlayers int     `json:"active_players" db:"active_players"`
}

// RadarAxis carries a nil SuccessRate when the player has no reps in the category.
type RadarAxis struct {
	Category     string   `json:"category"`
	SuccessRate  *float64 `json:"success_rate"`
	SuccessCount int      `json:"success_count"`
	TotalReps    int      `json:"total_reps"`
}

type RadarProfile struct {
	PlayerID int64       `json:"player_id"`
	Axes     []RadarAxis `json:"axes"`
}

type TrendQuery struct {
	PlayerID *int64 // nil = whole team
	Category string
	Range    DateRange
}

type TrendPoint struct {
	SessionID   int64   `json:"session_id"`
	SessionDate Date    `json:"session_date"`
	SuccessRate float64 `json:"success_rate"`
	TotalReps   int     `json:"total_reps"`
}

const (
	ShareByDrill    = "drill"
	ShareByCategory = "category"
)

type TimeShareQuery struct {
	SessionID *int64 // when set, Range is ignored
	Range     DateRange
	By        string
}

type TimeShare struct {
	Key     string  `json:"key"`
	DrillID int64   `json:"drill_id,omitempty"`
	Minutes int     `json:"minutes"`
	Share   float64 `json:"share"`
}

type ErrorQuery struct {
	PlayerID *int64 // nil = whole team
	Range    DateRange
	TopN     int
}

type ErrorCount struct {
	ErrorType string `json:"error_type"`
	Count     int    `json:"count"`
}

type PlayerVolume struct {
	PlayerID     int64  `json:"player_id" db:"player_id"`
	Name         string `json:"name" db:"name"`
	Sessions     int    `json:"sessions" db:"sessions"`
	TotalActions int    `json:"total_actions" db:"total_actions"`
}

type DrillRate struct {
	DrillID      int64   `json:"drill_id"`
	DrillName    string  `json:"drill_name"`
	Category     string  `json:"category"`
	SuccessRate  float64 `json:"success_rate"`
	TotalActions int     `json:"total_actions"`
}

type ThemeRate struct {
	Theme       string  `json:"theme"`
	Sessions    int     `json:"sessions"`
	SuccessRate float64 `json:"success_rate"`
}
