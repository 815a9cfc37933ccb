package web

import (
	"net/http"
	"volley-training/internal/models"
)

const (
	defaultTopErrors = 5
	defaultMinReps   = 30
)

func (h *Handler) TeamKPI(w http.ResponseWriter, r *http.Request) {
	dr, err := dateRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	kpi, err := h.analyticsService.TeamKPISummary(dr)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, kpi)
}

func (h *Handler) PlayerRadar(w http.ResponseWriter, r *http.Request) {
	playerID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	dr, err := dateRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	profile, err := h.analyticsService.PlayerRadarProfile(playerID, dr)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, profile)
}

// Trend takes optional ?player=ID&category=NAME on top of the date range
func (h *Handler) Trend(w http.ResponseWriter, r *http.Request) {
	dr, err := dateRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	playerID, err := queryID(r, "player")
	if err != nil {
		h.writeError(w, err)
		return
	}
	points, err := h.analyticsService.TrendSeries(models.TrendQuery{
		PlayerID: playerID,
		Category: r.URL.Query().Get("category"),
		Range:    dr,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, points)
}

// TimeShare takes ?session=ID or a date range, and ?by=drill|category
func (h *Handler) TimeShare(w http.ResponseWriter, r *http.Request) {
	dr, err := dateRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	sessionID, err := queryID(r, "session")
	if err != nil {
		h.writeError(w, err)
		return
	}
	shares, err := h.analyticsService.DrillTimeProportion(models.TimeShareQuery{
		SessionID: sessionID,
		Range:     dr,
		By:        r.URL.Query().Get("by"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, shares)
}

func (h *Handler) TopErrors(w http.ResponseWriter, r *http.Request) {
	dr, err := dateRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	playerID, err := queryID(r, "player")
	if err != nil {
		h.writeError(w, err)
		return
	}
	top, err := queryInt(r, "top", defaultTopErrors)
	if err != nil {
		h.writeError(w, err)
		return
	}
	ranking, err := h.analyticsService.TopErrorRanking(models.ErrorQuery{
		PlayerID: playerID,
		Range:    dr,
		TopN:     top,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ranking)
}

func (h *Handler) PlayerVolume(w http.ResponseWriter, r *http.Request) {
	dr, err := dateRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	volume, err := h.analyticsService.PlayerVolume(dr)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, volume)
}

func (h *Handler) WeakestDrills(w http.ResponseWriter, r *http.Request) {
	dr, err := dateRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	minReps, err := queryInt(r, "min_reps", defaultMinReps)
	if err != nil {
		h.writeError(w, err)
		return
	}
	rates, err := h.analyticsService.WeakestDrills(dr, minReps)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rates)
}

func (h *Handler) Themes(w http.ResponseWriter, r *http.Request) {
	dr, err := dateRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	rates, err := h.analyticsService.ThemePerformance(dr)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rates)
}
