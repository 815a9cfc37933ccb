package models

// DrillResult - one recorded batch of attempts. Several batches may exist for the
// same (session, drill, player); rows are never updated.
type DrillResult struct {
	ID           int64     `db:"result_id" json:"id"`
	SessionID    int64     `db:"session_id" json:"session_id"`
	DrillID      int64     `db:"drill_id" json:"drill_id"`
	PlayerID     int64     `db:"player_id" json:"player_id"`
	SuccessCount int       `db:"success_count" json:"success_count"`
	TotalCount   int       `db:"total_count" json:"total_count"`
	ErrorType    string    `db:"error_type" json:"error_type,omitempty"`
	Notes        string    `db:"notes" json:"notes,omitempty"`
	CreatedAt    Timestamp `db:"created_at" json:"created_at"`
}

// ResultFact is a DrillResult joined with its session and drill, the input row of
// the analytics engine.
type ResultFact struct {
	ResultID     int64  `db:"result_id"`
	SessionID    int64  `db:"session_id"`
	SessionDate  Date   `db:"session_date"`
	Theme        string `db:"theme"`
	DrillID      int64  `db:"drill_id"`
	DrillName    string `db:"drill_name"`
	Category     string `db:"category"`
	PlayerID     int64  `db:"player_id"`
	PlayerName   string `db:"player_name"`
	SuccessCount int    `db:"success_count"`
	TotalCount   int    `db:"total_count"`
	ErrorType    string `db:"error_type"`
}

// SlotFact is a SessionDrill joined with its session date and drill category.
type SlotFact struct {
	SessionID      int64  `db:"session_id"`
	SessionDate    Date   `db:"session_date"`
	DrillID        int64  `db:"drill_id"`
	DrillName      string `db:"drill_name"`
	Category       string `db:"category"`
	SequenceNo     int    `db:"sequence_no"`
	PlannedMinutes int    `db:"planned_minutes"`
}

// FactFilter narrows analytics fact queries. Nil pointers and empty strings mean "any".
type FactFilter struct {
	Range     DateRange
	SessionID *int64
	PlayerID  *int64
	DrillID   *int64
	Category  string
}
