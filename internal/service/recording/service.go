package recording_service

import (
	"fmt"
	"strings"
	"volley-training/internal/models"
	"volley-training/internal/repository"
	"volley-training/internal/service"

	"go.uber.org/zap"
)

type recordingService struct {
	attendanceRepo repository.AttendanceRepository
	resultRepo     repository.ResultRepository
	log            *zap.Logger
}

func NewRecordingService(attendanceRepo repository.AttendanceRepository, resultRepo repository.ResultRepository, log *zap.Logger) service.RecordingService {
	return &recordingService{
		attendanceRepo: attendanceRepo,
		resultRepo:     resultRepo,
		log:            log,
	}
}

// RecordAttendance marks a player for a session; a second call for the same pair
// replaces the status.
func (s *recordingService) RecordAttendance(sessionID, playerID int64, status string) (*models.Attendance, error) {
	normalized, ok := models.NormalizeStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %q (want present, late, excused or absent)", models.ErrInvalidStatus, status)
	}

	attendance := &models.Attendance{
		SessionID: sessionID,
		PlayerID:  playerID,
		Status:    normalized,
	}
	if err := s.attendanceRepo.Upsert(attendance); err != nil {
		return nil, err
	}

	s.log.Debug("attendance recorded",
		zap.Int64("session_id", sessionID), zap.Int64("player_id", playerID), zap.String("status", normalized))
	return attendance, nil
}

// RecordDrillResult appends one committed tally. Checks run in order: tally,
// references, then the session plan.
func (s *recordingService) RecordDrillResult(input service.RecordResultInput) (*models.DrillResult, error) {
	if input.SuccessCount < 0 || input.TotalCount < 0 {
		return nil, fmt.Errorf("%w: counts must not be negative (%d/%d)", models.ErrInvalidTally, input.SuccessCount, input.TotalCount)
	}
	if input.SuccessCount > input.TotalCount {
		return nil, fmt.Errorf("%w: %d successes out of %d attempts", models.ErrInvalidTally, input.SuccessCount, input.TotalCount)
	}

	result := &models.DrillResult{
		SessionID:    input.SessionID,
		DrillID:      input.DrillID,
		PlayerID:     input.PlayerID,
		SuccessCount: input.SuccessCount,
		TotalCount:   input.TotalCount,
		ErrorType:    strings.TrimSpace(input.ErrorType),
		Notes:        strings.TrimSpace(input.Notes),
	}
	if err := s.resultRepo.Insert(result); err != nil {
		s.log.Warn("result rejected",
			zap.Int64("session_id", input.SessionID),
			zap.Int64("drill_id", input.DrillID),
			zap.Int64("player_id", input.PlayerID),
			zap.Error(err))
		return nil, err
	}

	s.log.Info("result recorded",
		zap.Int64("result_id", result.ID),
		zap.Int64("session_id", result.SessionID),
		zap.Int64("drill_id", result.DrillID),
		zap.Int64("player_id", result.PlayerID),
		zap.Int("success", result.SuccessCount),
		zap.Int("total", result.TotalCount))
	return result, nil
}

func (s *recordingService) SessionAttendance(sessionID int64) ([]models.Attendance, error) {
	return s.attendanceRepo.GetBySession(sessionID)
}

func (s *recordingService) AttendanceSummary(sessionID int64) (*models.AttendanceSummary, error) {
	return s.attendanceRepo.GetStats(sessionID)
}

func (s *recordingService) SessionResults(sessionID int64) ([]models.DrillResult, error) {
	return s.resultRepo.GetBySession(sessionID)
}
