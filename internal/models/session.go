package models

// Session - one training event on a given date.
type Session struct {
	ID          int64     `db:"session_id" json:"id"`
	Date        Date      `db:"session_date" json:"date"`
	DurationMin *int      `db:"duration_min" json:"duration_min,omitempty" validate:"omitempty,min=0,max=600"`
	Theme       string    `db:"theme" json:"theme" validate:"max=100"`
	Phase       string    `db:"phase" json:"phase,omitempty" validate:"omitempty,oneof=base build peak recovery taper transition"`
	Notes       string    `db:"notes" json:"notes"`
	CreatedAt   Timestamp `db:"created_at" json:"created_at"`
}

// SessionDrill - a scheduling slot. SequenceNo orders execution inside the session
// and is unique per session.
type SessionDrill struct {
	SessionID      int64 `db:"session_id" json:"session_id"`
	DrillID        int64 `db:"drill_id" json:"drill_id" validate:"required"`
	SequenceNo     int   `db:"sequence_no" json:"sequence_no" validate:"min=1"`
	PlannedMinutes *int  `db:"planned_minutes" json:"planned_minutes,omitempty" validate:"omitempty,min=0"`
	PlannedReps    *int  `db:"planned_reps" json:"planned_reps,omitempty" validate:"omitempty,min=0"`

	// Joined fields
	DrillName string `db:"drill_name" json:"drill_name,omitempty"`
	Category  string `db:"category" json:"category,omitempty"`
}
