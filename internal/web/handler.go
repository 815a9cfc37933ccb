package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
	"volley-training/internal/models"
	"volley-training/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Resetter drops and reseeds the database
type Resetter interface {
	Reset() error
}

type Handler struct {
	playerService    service.PlayerService
	drillService     service.DrillService
	sessionService   service.SessionService
	recordingService service.RecordingService
	analyticsService service.AnalyticsService
	resetter         Resetter
	log              *zap.Logger
}

func NewHandler(
	playerService service.PlayerService,
	drillService service.DrillService,
	sessionService service.SessionService,
	recordingService service.RecordingService,
	analyticsService service.AnalyticsService,
	resetter Resetter,
	log *zap.Logger,
) *Handler {
	return &Handler{
		playerService:    playerService,
		drillService:     drillService,
		sessionService:   sessionService,
		recordingService: recordingService,
		analyticsService: analyticsService,
		resetter:         resetter,
		log:              log,
	}
}

// Routes mounts the JSON API under /api
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Post("/", h.CreatePlayer)
			r.Get("/{id}", h.GetPlayer)
			r.Put("/{id}", h.UpdatePlayer)
			r.Delete("/{id}", h.DeletePlayer)
		})

		r.Route("/drills", func(r chi.Router) {
			r.Get("/", h.ListDrills)
			r.Post("/", h.CreateDrill)
			r.Get("/categories", h.ListCategories)
			r.Get("/{id}", h.GetDrillDetail)
			r.Put("/{id}", h.UpdateDrill)
			r.Delete("/{id}", h.DeleteDrill)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", h.ListSessions)
			r.Post("/", h.CreateSession)
			r.Get("/{id}", h.GetSession)
			r.Put("/{id}", h.UpdateSession)
			r.Delete("/{id}", h.DeleteSession)

			r.Get("/{id}/plan", h.GetPlan)
			r.Post("/{id}/plan", h.ScheduleDrill)
			r.Put("/{id}/plan", h.ReplacePlan)
			r.Delete("/{id}/plan/{drillID}/{seq}", h.RemoveSlot)

			r.Get("/{id}/attendance", h.SessionAttendance)
			r.Put("/{id}/attendance/{playerID}", h.RecordAttendance)
			r.Get("/{id}/results", h.SessionResults)
		})

		r.Post("/results", h.RecordDrillResult)

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/kpi", h.TeamKPI)
			r.Get("/players/{id}/radar", h.PlayerRadar)
			r.Get("/trend", h.Trend)
			r.Get("/time-share", h.TimeShare)
			r.Get("/errors", h.TopErrors)
			r.Get("/volume", h.PlayerVolume)
			r.Get("/weakest-drills", h.WeakestDrills)
			r.Get("/themes", h.Themes)
		})

		r.Post("/admin/reset", h.Reset)
	})

	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var errorStatus = []struct {
	err    error
	status int
	code   string
}{
	{models.ErrNotFound, http.StatusNotFound, "not_found"},
	{models.ErrReferentialIntegrity, http.StatusConflict, "referential_integrity"},
	{models.ErrDuplicateSlot, http.StatusConflict, "duplicate_slot"},
	{models.ErrInvalidStatus, http.StatusUnprocessableEntity, "invalid_status"},
	{models.ErrInvalidTally, http.StatusUnprocessableEntity, "invalid_tally"},
	{models.ErrNotScheduled, http.StatusUnprocessableEntity, "not_scheduled"},
	{models.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{models.ErrSchemaIncompatible, http.StatusInternalServerError, "schema_incompatible"},
	{models.ErrStoreUnavailable, http.StatusServiceUnavailable, "store_unavailable"},
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, "internal"
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			status, code = e.status, e.code
			break
		}
	}
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("code", code), zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Warn("encode response", zap.Error(err))
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: request body: %v", models.ErrInvalidInput, err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", models.ErrInvalidInput, name, raw)
	}
	return id, nil
}

// queryID reads an optional positive id from the query string
func queryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: invalid %s %q", models.ErrInvalidInput, name, raw)
	}
	return &id, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", models.ErrInvalidInput, name, raw)
	}
	return v, nil
}

// dateRange reads ?from=YYYY-MM-DD&to=YYYY-MM-DD, both optional
func dateRange(r *http.Request) (models.DateRange, error) {
	var dr models.DateRange
	q := r.URL.Query()
	if from := q.Get("from"); from != "" {
		d, err := models.ParseDate(from)
		if err != nil {
			return dr, err
		}
		dr.From = d
	}
	if to := q.Get("to"); to != "" {
		d, err := models.ParseDate(to)
		if err != nil {
			return dr, err
		}
		dr.To = d
	}
	return dr, nil
}
