package models

import "strings"

const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusExcused = "excused"
	StatusAbsent  = "absent"
)

var attendanceStatuses = map[string]bool{
	StatusPresent: true,
	StatusLate:    true,
	StatusExcused: true,
	StatusAbsent:  true,
}

// NormalizeStatus trims and lower-cases s and reports whether it is a recognized status.
func NormalizeStatus(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, attendanceStatuses[s]
}

// Attendance - one status per (session, player).
type Attendance struct {
	SessionID  int64     `db:"session_id" json:"session_id"`
	PlayerID   int64     `db:"player_id" json:"player_id"`
	Status     string    `db:"status" json:"status"`
	RecordedAt Timestamp `db:"recorded_at" json:"recorded_at"`

	// Joined fields
	PlayerName string `db:"player_name" json:"player_name,omitempty"`
}

type AttendanceSummary struct {
	SessionID int64 `json:"session_id"`
	Present   int   `json:"present"`
	Late      int   `json:"late"`
	Excused   int   `json:"excused"`
	Absent    int   `json:"absent"`
	Total     int   `json:"total"`
}
