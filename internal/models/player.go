package models

// Player - a rostered athlete.
type Player struct {
	ID           int64     `db:"player_id" json:"id"`
	Name         string    `db:"name" json:"name" validate:"required,max=100"`
	JerseyNumber *int      `db:"jersey_number" json:"jersey_number,omitempty" validate:"omitempty,min=0,max=99"`
	Position     string    `db:"position" json:"position" validate:"max=40"`
	GradeYear    string    `db:"grade_year" json:"grade_year" validate:"max=40"`
	Notes        string    `db:"notes" json:"notes"`
	CreatedAt    Timestamp `db:"created_at" json:"created_at"`
}
