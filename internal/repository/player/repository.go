package player

import (
	"fmt"
	"volley-training/internal/models"
	"volley-training/internal/repository"

	"github.com/jmoiron/sqlx"
)

const selectPlayer = `
	SELECT player_id, name, jersey_number, position, grade_year,
	       COALESCE(notes, '') AS notes, created_at
	FROM players
`

type playerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) repository.PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(player *models.Player) error {
	query := `
		INSERT INTO players (name, jersey_number, position, grade_year, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING player_id
	`
	player.CreatedAt = models.Now()

	err := r.db.QueryRowx(
		r.db.Rebind(query),
		player.Name,
		player.JerseyNumber,
		player.Position,
		player.GradeYear,
		player.Notes,
		player.CreatedAt,
	).Scan(&player.ID)
	if err != nil {
		return fmt.Errorf("create player: %w", repository.Translate(err))
	}
	return nil
}

func (r *playerRepository) GetByID(id int64) (*models.Player, error) {
	player := &models.Player{}
	err := r.db.Get(player, r.db.Rebind(selectPlayer+` WHERE player_id = ?`), id)
	if err != nil {
		return nil, fmt.Errorf("player %d: %w", id, repository.Translate(err))
	}
	return player, nil
}

func (r *playerRepository) GetAll() ([]models.Player, error) {
	players := []models.Player{}
	if err := r.db.Select(&players, selectPlayer+` ORDER BY name, player_id`); err != nil {
		return nil, fmt.Errorf("list players: %w", repository.Translate(err))
	}
	return players, nil
}

func (r *playerRepository) Update(player *models.Player) error {
	query := `
		UPDATE players
		SET name = ?, jersey_number = ?, position = ?, grade_year = ?, notes = ?
		WHERE player_id = ?
	`
	res, err := r.db.Exec(
		r.db.Rebind(query),
		player.Name,
		player.JerseyNumber,
		player.Position,
		player.GradeYear,
		player.Notes,
		player.ID,
	)
	if err != nil {
		return fmt.Errorf("update player: %w", repository.Translate(err))
	}
	return repository.ExpectRow(res, "player", player.ID)
}

func (r *playerRepository) Delete(id int64) error {
	return repository.InTx(r.db, func(tx *sqlx.Tx) error {
		for _, query := range []string{
			`DELETE FROM attendance WHERE player_id = ?`,
			`DELETE FROM drill_results WHERE player_id = ?`,
		} {
			if _, err := tx.Exec(tx.Rebind(query), id); err != nil {
				return fmt.Errorf("delete player %d dependents: %w", id, repository.Translate(err))
			}
		}

		res, err := tx.Exec(tx.Rebind(`DELETE FROM players WHERE player_id = ?`), id)
		if err != nil {
			return fmt.Errorf("delete player %d: %w", id, repository.Translate(err))
		}
		return repository.ExpectRow(res, "player", id)
	})
}
