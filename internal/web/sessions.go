package web

import (
	"net/http"
	"strconv"
	"volley-training/internal/models"

	"github.com/go-chi/chi/v5"
)

type sessionRequest struct {
	models.Session
	Plan []models.SessionDrill `json:"plan"`
}

type sessionResponse struct {
	*models.Session
	Plan []models.SessionDrill `json:"plan"`
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	dr, err := dateRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	sessions, err := h.sessionService.ListSessions(dr)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sessions)
}

// CreateSession stores the session and the optional plan in one go
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	session := req.Session
	session.ID = 0
	if err := h.sessionService.CreateSession(&session, req.Plan); err != nil {
		h.writeError(w, err)
		return
	}
	plan, err := h.sessionService.GetPlan(session.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, sessionResponse{Session: &session, Plan: plan})
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	session, err := h.sessionService.GetSession(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	plan, err := h.sessionService.GetPlan(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sessionResponse{Session: session, Plan: plan})
}

func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var session models.Session
	if err := decodeBody(r, &session); err != nil {
		h.writeError(w, err)
		return
	}
	session.ID = id
	if err := h.sessionService.UpdateSession(&session); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, session)
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.sessionService.DeleteSession(id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	if _, err := h.sessionService.GetSession(id); err != nil {
		h.writeError(w, err)
		return
	}
	plan, err := h.sessionService.GetPlan(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) ScheduleDrill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var slot models.SessionDrill
	if err := decodeBody(r, &slot); err != nil {
		h.writeError(w, err)
		return
	}
	slot.SessionID = id
	if err := h.sessionService.ScheduleDrill(&slot); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, slot)
}

func (h *Handler) ReplacePlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var plan []models.SessionDrill
	if err := decodeBody(r, &plan); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.sessionService.ReplacePlan(id, plan); err != nil {
		h.writeError(w, err)
		return
	}
	saved, err := h.sessionService.GetPlan(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, saved)
}

func (h *Handler) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	drillID, err := pathID(r, "drillID")
	if err != nil {
		h.writeError(w, err)
		return
	}
	seq, err := strconv.Atoi(chi.URLParam(r, "seq"))
	if err != nil || seq < 1 {
		h.writeError(w, models.ErrInvalidInput)
		return
	}
	if err := h.sessionService.RemoveSlot(id, drillID, seq); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
