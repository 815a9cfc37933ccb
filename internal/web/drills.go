package web

import (
	"net/http"
	"volley-training/internal/models"
)

type drillRequest struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
	MinPlayers int    `json:"min_players"`
	Visible    *bool  `json:"visible"`
	Purpose    string `json:"purpose"`
}

func (req drillRequest) drill(id int64) *models.Drill {
	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}
	return &models.Drill{
		ID:         id,
		Name:       req.Name,
		Category:   req.Category,
		Difficulty: req.Difficulty,
		MinPlayers: req.MinPlayers,
		Visible:    visible,
		Purpose:    req.Purpose,
	}
}

// ListDrills returns visible drills unless ?all=true
func (h *Handler) ListDrills(w http.ResponseWriter, r *http.Request) {
	drills, err := h.drillService.ListDrills(r.URL.Query().Get("all") != "true")
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, drills)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.drillService.ListCategories()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) CreateDrill(w http.ResponseWriter, r *http.Request) {
	var req drillRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	drill := req.drill(0)
	if err := h.drillService.CreateDrill(drill); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, drill)
}

// GetDrillDetail answers 500 schema_incompatible when the drills table has no
// purpose column under any known name
func (h *Handler) GetDrillDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	drill, err := h.drillService.GetDrillDetail(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, drill)
}

func (h *Handler) UpdateDrill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req drillRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	drill := req.drill(id)
	if err := h.drillService.UpdateDrill(drill); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, drill)
}

func (h *Handler) DeleteDrill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.drillService.DeleteDrill(id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
