package drill_service

import (
	"fmt"
	"strings"
	"volley-training/internal/models"
	"volley-training/internal/repository"
	"volley-training/internal/schema"
	"volley-training/internal/service"

	"go.uber.org/zap"
)

const defaultDifficulty = 3

type drillService struct {
	drillRepo repository.DrillRepository
	resolver  *schema.Resolver
	log       *zap.Logger
}

func NewDrillService(drillRepo repository.DrillRepository, resolver *schema.Resolver, log *zap.Logger) service.DrillService {
	return &drillService{drillRepo: drillRepo, resolver: resolver, log: log}
}

func (s *drillService) CreateDrill(drill *models.Drill) error {
	normalize(drill)
	if err := service.Validate(drill); err != nil {
		return err
	}
	if err := s.drillRepo.Create(drill); err != nil {
		return err
	}

	s.log.Info("drill created",
		zap.Int64("drill_id", drill.ID), zap.String("name", drill.Name), zap.String("category", drill.Category))
	return nil
}

func (s *drillService) GetDrill(id int64) (*models.Drill, error) {
	return s.drillRepo.GetByID(id)
}

func (s *drillService) GetDrillDetail(id int64) (*models.Drill, error) {
	if _, err := s.resolver.Resolve(schema.DrillPurpose); err != nil {
		s.log.Error("drill detail unavailable", zap.Int64("drill_id", id), zap.Error(err))
		return nil, fmt.Errorf("drill %d detail: %w", id, err)
	}
	return s.drillRepo.GetByID(id)
}

func (s *drillService) ResolveDrillPurpose(id int64) (string, error) {
	drill, err := s.GetDrillDetail(id)
	if err != nil {
		return "", err
	}
	return drill.Purpose, nil
}

func (s *drillService) ListDrills(visibleOnly bool) ([]models.Drill, error) {
	return s.drillRepo.GetAll(visibleOnly)
}

func (s *drillService) ListCategories() ([]string, error) {
	return s.drillRepo.Categories()
}

func (s *drillService) UpdateDrill(drill *models.Drill) error {
	normalize(drill)
	if err := service.Validate(drill); err != nil {
		return err
	}
	return s.drillRepo.Update(drill)
}

// DeleteDrill also removes its schedule slots and results
func (s *drillService) DeleteDrill(id int64) error {
	if err := s.drillRepo.Delete(id); err != nil {
		return err
	}
	s.log.Info("drill deleted", zap.Int64("drill_id", id))
	return nil
}

func normalize(drill *models.Drill) {
	drill.Name = strings.TrimSpace(drill.Name)
	drill.Category = strings.TrimSpace(drill.Category)
	drill.Purpose = strings.TrimSpace(drill.Purpose)
	if drill.Difficulty == 0 {
		drill.Difficulty = defaultDifficulty
	}
}
