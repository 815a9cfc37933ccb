package web

import (
	"net/http"

	"go.uber.org/zap"
)

// Reset drops every table, recreates the schema and loads the demo data
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.resetter.Reset(); err != nil {
		h.writeError(w, err)
		return
	}
	h.log.Warn("database reset over http", zap.String("remote", r.RemoteAddr))
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
