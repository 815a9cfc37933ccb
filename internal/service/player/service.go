package player_service

import (
	"strings"
	"volley-training/internal/models"
	"volley-training/internal/repository"
	"volley-training/internal/service"

	"go.uber.org/zap"
)

type playerService struct {
	playerRepo repository.PlayerRepository
	log        *zap.Logger
}

func NewPlayerService(playerRepo repository.PlayerRepository, log *zap.Logger) service.PlayerService {
	return &playerService{playerRepo: playerRepo, log: log}
}

func (s *playerService) CreatePlayer(player *models.Player) error {
	player.Name = strings.TrimSpace(player.Name)
	player.GradeYear = strings.TrimSpace(player.GradeYear)
	if err := service.Validate(player); err != nil {
		return err
	}
	if err := s.playerRepo.Create(player); err != nil {
		return err
	}

	s.log.Info("player created", zap.Int64("player_id", player.ID), zap.String("name", player.Name))
	return nil
}

func (s *playerService) GetPlayer(id int64) (*models.Player, error) {
	return s.playerRepo.GetByID(id)
}

func (s *playerService) ListPlayers() ([]models.Player, error) {
	return s.playerRepo.GetAll()
}

func (s *playerService) UpdatePlayer(player *models.Player) error {
	player.Name = strings.TrimSpace(player.Name)
	if err := service.Validate(player); err != nil {
		return err
	}
	return s.playerRepo.Update(player)
}

// DeletePlayer also removes the player's attendance and results
func (s *playerService) DeletePlayer(id int64) error {
	if err := s.playerRepo.Delete(id); err != nil {
		return err
	}
	s.log.Info("player deleted", zap.Int64("player_id", id))
	return nil
}
