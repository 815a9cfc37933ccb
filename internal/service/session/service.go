package session_service

import (
	"fmt"
	"strings"
	"volley-training/internal/models"
	"volley-training/internal/repository"
	"volley-training/internal/service"

	"go.uber.org/zap"
)

type sessionService struct {
	sessionRepo  repository.SessionRepository
	scheduleRepo repository.ScheduleRepository
	log          *zap.Logger
}

func NewSessionService(sessionRepo repository.SessionRepository, scheduleRepo repository.ScheduleRepository, log *zap.Logger) service.SessionService {
	return &sessionService{
		sessionRepo:  sessionRepo,
		scheduleRepo: scheduleRepo,
		log:          log,
	}
}

func (s *sessionService) CreateSession(session *models.Session, plan []models.SessionDrill) error {
	if err := validateSession(session); err != nil {
		return err
	}
	if err := service.ValidatePlan(plan); err != nil {
		return err
	}
	if err := s.sessionRepo.Create(session, plan); err != nil {
		return err
	}

	s.log.Info("session created",
		zap.Int64("session_id", session.ID),
		zap.Stringer("date", session.Date),
		zap.Int("slots", len(plan)))
	return nil
}

func (s *sessionService) GetSession(id int64) (*models.Session, error) {
	return s.sessionRepo.GetByID(id)
}

func (s *sessionService) ListSessions(r models.DateRange) ([]models.Session, error) {
	return s.sessionRepo.GetByDateRange(r)
}

func (s *sessionService) UpdateSession(session *models.Session) error {
	if err := validateSession(session); err != nil {
		return err
	}
	return s.sessionRepo.Update(session)
}

// DeleteSession also removes its plan, attendance and results
func (s *sessionService) DeleteSession(id int64) error {
	if err := s.sessionRepo.Delete(id); err != nil {
		return err
	}
	s.log.Info("session deleted", zap.Int64("session_id", id))
	return nil
}

func (s *sessionService) ScheduleDrill(slot *models.SessionDrill) error {
	if err := service.Validate(slot); err != nil {
		return err
	}
	return s.scheduleRepo.AddSlot(slot)
}

func (s *sessionService) GetPlan(sessionID int64) ([]models.SessionDrill, error) {
	return s.scheduleRepo.GetSlots(sessionID)
}

func (s *sessionService) ReplacePlan(sessionID int64, plan []models.SessionDrill) error {
	if err := service.ValidatePlan(plan); err != nil {
		return err
	}
	if err := s.scheduleRepo.ReplacePlan(sessionID, plan); err != nil {
		return err
	}

	s.log.Info("session plan replaced", zap.Int64("session_id", sessionID), zap.Int("slots", len(plan)))
	return nil
}

func (s *sessionService) RemoveSlot(sessionID, drillID int64, sequenceNo int) error {
	return s.scheduleRepo.DeleteSlot(sessionID, drillID, sequenceNo)
}

func validateSession(session *models.Session) error {
	if session.Date.IsZero() {
		return fmt.Errorf("%w: session date is required", models.ErrInvalidInput)
	}
	session.Theme = strings.TrimSpace(session.Theme)
	session.Phase = strings.ToLower(strings.TrimSpace(session.Phase))
	return service.Validate(session)
}
