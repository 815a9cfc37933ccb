package repository

import (
	"volley-training/internal/models"
)

type PlayerRepository interface {
	Create(player *models.Player) error
	GetByID(id int64) (*models.Player, error)
	GetAll() ([]models.Player, error)
	Update(player *models.Player) error
	// Delete removes the player with its attendance and results
	Delete(id int64) error
}

type DrillRepository interface {
	Create(drill *models.Drill) error
	GetByID(id int64) (*models.Drill, error)
	GetAll(visibleOnly bool) ([]models.Drill, error)
	Update(drill *models.Drill) error
	// Delete removes the drill with its schedule slots and results
	Delete(id int64) error
	Categories() ([]string, error)
}

type SessionRepository interface {
	// Create inserts the session and its slots in one transaction
	Create(session *models.Session, slots []models.SessionDrill) error
	GetByID(id int64) (*models.Session, error)
	GetByDateRange(r models.DateRange) ([]models.Session, error)
	Update(session *models.Session) error
	// Delete removes the session with its slots, attendance and results
	Delete(id int64) error
}

type ScheduleRepository interface {
	AddSlot(slot *models.SessionDrill) error
	GetSlots(sessionID int64) ([]models.SessionDrill, error)
	// ReplacePlan swaps all slots of a session atomically
	ReplacePlan(sessionID int64, slots []models.SessionDrill) error
	DeleteSlot(sessionID, drillID int64, sequenceNo int) error
	IsScheduled(sessionID, drillID int64) (bool, error)
	SlotFacts(filter models.FactFilter) ([]models.SlotFact, error)
}

type AttendanceRepository interface {
	Upsert(attendance *models.Attendance) error
	GetBySession(sessionID int64) ([]models.Attendance, error)
	GetByPlayer(playerID int64, r models.DateRange) ([]models.Attendance, error)
	GetStats(sessionID int64) (*models.AttendanceSummary, error)
}

type ResultRepository interface {
	// Insert appends a result after checking references and the session plan
	Insert(result *models.DrillResult) error
	GetBySession(sessionID int64) ([]models.DrillResult, error)
	GetByPlayer(playerID int64) ([]models.DrillResult, error)
	Facts(filter models.FactFilter) ([]models.ResultFact, error)
	Totals(r models.DateRange) (*models.KPISummary, error)
	PlayerVolume(r models.DateRange) ([]models.PlayerVolume, error)
}

// ColumnInspector lists the physical columns of a table
type ColumnInspector interface {
	Columns(table string) (map[string]bool, error)
}
