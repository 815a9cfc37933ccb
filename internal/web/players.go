package web

import (
	"net/http"
	"volley-training/internal/models"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.ListPlayers()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, players)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var player models.Player
	if err := decodeBody(r, &player); err != nil {
		h.writeError(w, err)
		return
	}
	player.ID = 0
	if err := h.playerService.CreatePlayer(&player); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, player)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	player, err := h.playerService.GetPlayer(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, player)
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var player models.Player
	if err := decodeBody(r, &player); err != nil {
		h.writeError(w, err)
		return
	}
	player.ID = id
	if err := h.playerService.UpdatePlayer(&player); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, player)
}

// DeletePlayer removes the player along with their attendance and results
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.playerService.DeletePlayer(id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
