package web

import (
	"net/http"
	"volley-training/internal/models"
	"volley-training/internal/service"
)

type attendanceRequest struct {
	Status string `json:"status"`
}

type attendanceResponse struct {
	Summary *models.AttendanceSummary `json:"summary"`
	Players []models.Attendance       `json:"players"`
}

// RecordAttendance sets the player's status for the session, overwriting any earlier one
func (h *Handler) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	playerID, err := pathID(r, "playerID")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req attendanceRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	attendance, err := h.recordingService.RecordAttendance(sessionID, playerID, req.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, attendance)
}

func (h *Handler) SessionAttendance(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	players, err := h.recordingService.SessionAttendance(sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	summary, err := h.recordingService.AttendanceSummary(sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, attendanceResponse{Summary: summary, Players: players})
}

// RecordDrillResult commits one counted batch of attempts
func (h *Handler) RecordDrillResult(w http.ResponseWriter, r *http.Request) {
	var input service.RecordResultInput
	if err := decodeBody(r, &input); err != nil {
		h.writeError(w, err)
		return
	}
	result, err := h.recordingService.RecordDrillResult(input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) SessionResults(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	results, err := h.recordingService.SessionResults(sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}
