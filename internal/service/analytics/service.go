package analytics_service

import (
	"fmt"
	"volley-training/internal/models"
	"volley-training/internal/repository"
	"volley-training/internal/service"

	"go.uber.org/zap"
)

type analyticsService struct {
	resultRepo   repository.ResultRepository
	scheduleRepo repository.ScheduleRepository
	drillRepo    repository.DrillRepository
	playerRepo   repository.PlayerRepository
	log          *zap.Logger
}

func NewAnalyticsService(
	resultRepo repository.ResultRepository,
	scheduleRepo repository.ScheduleRepository,
	drillRepo repository.DrillRepository,
	playerRepo repository.PlayerRepository,
	log *zap.Logger,
) service.AnalyticsService {
	return &analyticsService{
		resultRepo:   resultRepo,
		scheduleRepo: scheduleRepo,
		drillRepo:    drillRepo,
		playerRepo:   playerRepo,
		log:          log,
	}
}

func (s *analyticsService) TeamKPISummary(r models.DateRange) (*models.KPISummary, error) {
	kpi, err := s.resultRepo.Totals(r)
	if err != nil {
		return nil, err
	}
	kpi.SuccessRate = successRate(kpi.SuccessCount, kpi.TotalReps)

	s.log.Debug("team kpi",
		zap.Stringer("from", r.From), zap.Stringer("to", r.To),
		zap.Int("reps", kpi.TotalReps), zap.Float64("rate", kpi.SuccessRate))
	return kpi, nil
}

// PlayerRadarProfile has an axis for every drill category; the player must exist
func (s *analyticsService) PlayerRadarProfile(playerID int64, r models.DateRange) (*models.RadarProfile, error) {
	if _, err := s.playerRepo.GetByID(playerID); err != nil {
		return nil, err
	}

	categories, err := s.drillRepo.Categories()
	if err != nil {
		return nil, err
	}
	facts, err := s.resultRepo.Facts(models.FactFilter{Range: r, PlayerID: &playerID})
	if err != nil {
		return nil, err
	}

	return &models.RadarProfile{
		PlayerID: playerID,
		Axes:     radarAxes(categories, facts),
	}, nil
}

func (s *analyticsService) TrendSeries(q models.TrendQuery) ([]models.TrendPoint, error) {
	facts, err := s.resultRepo.Facts(models.FactFilter{
		Range:    q.Range,
		PlayerID: q.PlayerID,
		Category: q.Category,
	})
	if err != nil {
		return nil, err
	}
	return trendPoints(facts), nil
}

// DrillTimeProportion uses planned minutes from the session plans in scope
func (s *analyticsService) DrillTimeProportion(q models.TimeShareQuery) ([]models.TimeShare, error) {
	switch q.By {
	case "":
		q.By = models.ShareByDrill
	case models.ShareByDrill, models.ShareByCategory:
	default:
		return nil, fmt.Errorf("%w: proportion by %q (want drill or category)", models.ErrInvalidInput, q.By)
	}

	filter := models.FactFilter{SessionID: q.SessionID}
	if q.SessionID == nil {
		filter.Range = q.Range
	}

	slots, err := s.scheduleRepo.SlotFacts(filter)
	if err != nil {
		return nil, err
	}
	return timeShares(slots, q.By), nil
}

func (s *analyticsService) TopErrorRanking(q models.ErrorQuery) ([]models.ErrorCount, error) {
	facts, err := s.resultRepo.Facts(models.FactFilter{Range: q.Range, PlayerID: q.PlayerID})
	if err != nil {
		return nil, err
	}
	return rankErrors(facts, q.TopN), nil
}

func (s *analyticsService) PlayerVolume(r models.DateRange) ([]models.PlayerVolume, error) {
	return s.resultRepo.PlayerVolume(r)
}

// WeakestDrills ranks drills with at least minReps attempts by ascending success rate
func (s *analyticsService) WeakestDrills(r models.DateRange, minReps int) ([]models.DrillRate, error) {
	facts, err := s.resultRepo.Facts(models.FactFilter{Range: r})
	if err != nil {
		return nil, err
	}
	return drillRates(facts, minReps), nil
}

func (s *analyticsService) ThemePerformance(r models.DateRange) ([]models.ThemeRate, error) {
	facts, err := s.resultRepo.Facts(models.FactFilter{Range: r})
	if err != nil {
		return nil, err
	}
	return themeRates(facts), nil
}
