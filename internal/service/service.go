package service

import (
	"volley-training/internal/models"
)

type PlayerService interface {
	CreatePlayer(player *models.Player) error
	GetPlayer(id int64) (*models.Player, error)
	ListPlayers() ([]models.Player, error)
	UpdatePlayer(player *models.Player) error
	DeletePlayer(id int64) error
}

type DrillService interface {
	CreateDrill(drill *models.Drill) error
	// GetDrill tolerates a schema without a purpose column, Purpose reads as ""
	GetDrill(id int64) (*models.Drill, error)
	// GetDrillDetail fails with ErrSchemaIncompatible when no purpose column exists
	GetDrillDetail(id int64) (*models.Drill, error)
	ResolveDrillPurpose(id int64) (string, error)
	ListDrills(visibleOnly bool) ([]models.Drill, error)
	ListCategories() ([]string, error)
	UpdateDrill(drill *models.Drill) error
	DeleteDrill(id int64) error
}

type SessionService interface {
	// CreateSession stores the session and its plan atomically
	CreateSession(session *models.Session, plan []models.SessionDrill) error
	GetSession(id int64) (*models.Session, error)
	ListSessions(r models.DateRange) ([]models.Session, error)
	UpdateSession(session *models.Session) error
	DeleteSession(id int64) error

	ScheduleDrill(slot *models.SessionDrill) error
	GetPlan(sessionID int64) ([]models.SessionDrill, error)
	ReplacePlan(sessionID int64, plan []models.SessionDrill) error
	RemoveSlot(sessionID, drillID int64, sequenceNo int) error
}

// RecordingService appends attendance and live-counting tallies. It keeps no
// state between calls: the caller counts and commits the final tally once.
type RecordingService interface {
	RecordAttendance(sessionID, playerID int64, status string) (*models.Attendance, error)
	RecordDrillResult(input RecordResultInput) (*models.DrillResult, error)
	SessionAttendance(sessionID int64) ([]models.Attendance, error)
	AttendanceSummary(sessionID int64) (*models.AttendanceSummary, error)
	SessionResults(sessionID int64) ([]models.DrillResult, error)
}

type RecordResultInput struct {
	SessionID    int64  `json:"session_id"`
	DrillID      int64  `json:"drill_id"`
	PlayerID     int64  `json:"player_id"`
	SuccessCount int    `json:"success_count"`
	TotalCount   int    `json:"total_count"`
	ErrorType    string `json:"error_type,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// AnalyticsService is read-only. Empty scopes give zero values, never errors.
type AnalyticsService interface {
	TeamKPISummary(r models.DateRange) (*models.KPISummary, error)
	PlayerRadarProfile(playerID int64, r models.DateRange) (*models.RadarProfile, error)
	TrendSeries(q models.TrendQuery) ([]models.TrendPoint, error)
	DrillTimeProportion(q models.TimeShareQuery) ([]models.TimeShare, error)
	TopErrorRanking(q models.ErrorQuery) ([]models.ErrorCount, error)

	PlayerVolume(r models.DateRange) ([]models.PlayerVolume, error)
	WeakestDrills(r models.DateRange, minReps int) ([]models.DrillRate, error)
	ThemePerformance(r models.DateRange) ([]models.ThemeRate, error)
}
