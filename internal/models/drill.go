package models

// Drill - a named training exercise.
// Purpose, Difficulty, MinPlayers and Visible are read through the schema resolver,
// the physical column names differ between database generations.
type Drill struct {
	ID         int64     `db:"drill_id" json:"id"`
	Name       string    `db:"drill_name" json:"name" validate:"required,max=100"`
	Category   string    `db:"category" json:"category" validate:"max=60"`
	Difficulty int       `db:"difficulty" json:"difficulty" validate:"min=1,max=5"`
	MinPlayers int       `db:"min_players" json:"min_players" validate:"min=0,max=30"`
	Visible    bool      `db:"is_visible" json:"visible"`
	Purpose    string    `db:"purpose" json:"purpose"`
	CreatedAt  Timestamp `db:"created_at" json:"created_at"`
}
