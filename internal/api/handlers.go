package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/panchanga-api/internal/config"
	"github.com/zapponejosh/panchanga-api/internal/database"
	"github.com/zapponejosh/panchanga-api/internal/logger"
	"github.com/zapponejosh/panchanga-api/internal/panchanga"
)

// Defaults for GET /api/v1/panchanga when time or zone is omitted.
const (
	defaultTime = "12:00"
	defaultZone = "+00:00"
)

// Store is the storage the handlers need.
type Store interface {
	Health(ctx context.Context) error
	RecordCalculation(ctx context.Context, c *database.Calculation) error
	GetCalculation(ctx context.Context, id int64) (*database.Calculation, error)
	CalculationHistory(ctx context.Context, limit, offset int) (*database.CalculationPage, error)
}

// Handlers contains all HTTP handlers and their dependencies.
// Logging goes through the request-scoped default logger.
type Handlers struct {
	store Store
	cfg   *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store Store, cfg *config.Config) *Handlers {
	return &Handlers{
		store: store,
		cfg:   cfg,
	}
}

// PanchangaRequest is the body of POST /panchang.
type PanchangaRequest struct {
	Date   string `json:"date"`             // DD/MM/YYYY
	Time   string `json:"time"`             // HH:MM, 24-hour
	Zone   string `json:"zone"`             // [+/-]HH:MM
	Detail bool   `json:"detail,omitempty"` // include intermediate values
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Health(r.Context()); err != nil {
		logger.Warn(r.Context(), "health check failed", slog.Any("error", err))
		writeEnvelope(w, r, Response{
			Status:     StatusUnhealthy,
			StatusCode: http.StatusServiceUnavailable,
			Message:    "Database unhealthy",
			Code:       "HEALTH_CHECK_FAILED",
		})
		return
	}

	writeEnvelope(w, r, Response{
		Status:     StatusHealthy,
		StatusCode: http.StatusOK,
		Message:    "Service is running",
	})
}

// CalculatePanchanga handles POST /panchang and POST /api/v1/panchanga
func (h *Handlers) CalculatePanchanga(w http.ResponseWriter, r *http.Request) {
	var req PanchangaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteBadRequest(w, r, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	var missing []string
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.Time == "" {
		missing = append(missing, "time")
	}
	if req.Zone == "" {
		missing = append(missing, "zone")
	}
	if len(missing) > 0 {
		WriteBadRequest(w, r, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	h.respondPanchanga(w, r, req)
}

// GetPanchanga handles GET /api/v1/panchanga?date=DD/MM/YYYY&time=HH:MM&zone=+HH:MM
func (h *Handlers) GetPanchanga(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := PanchangaRequest{
		Date: q.Get("date"),
		Time: q.Get("time"),
		Zone: q.Get("zone"),
	}
	if req.Date == "" {
		WriteBadRequest(w, r, "Date parameter is required. Use DD/MM/YYYY")
		return
	}
	if req.Time == "" {
		req.Time = defaultTime
	}
	if req.Zone == "" {
		req.Zone = defaultZone
	}
	// An unescaped '+' in a query string decodes to a space.
	if strings.HasPrefix(req.Zone, " ") {
		req.Zone = "+" + req.Zone[1:]
	}
	req.Detail, _ = strconv.ParseBool(q.Get("detail"))

	h.respondPanchanga(w, r, req)
}

// respondPanchanga parses, computes, records, and writes the result.
func (h *Handlers) respondPanchanga(w http.ResponseWriter, r *http.Request, req PanchangaRequest) {
	ctx := r.Context()

	moment, err := panchanga.ParseMoment(req.Date, req.Time, req.Zone)
	if err != nil {
		h.writeCalculationError(w, r, err)
		return
	}

	detail, err := panchanga.Calculate(moment)
	if err != nil {
		h.writeCalculationError(w, r, err)
		return
	}

	logger.Debug(ctx, "panchanga computed",
		slog.String("moment", moment.String()),
		slog.Float64("ayanamsa", detail.Ayanamsa),
		slog.Int("kepler_iterations", detail.KeplerIterations),
	)

	if h.cfg.HistoryEnabled {
		h.record(ctx, req, moment, detail.Result)
	}

	var data any = detail.Result
	if req.Detail {
		data = detail
	}
	WriteSuccess(w, r, "Panchang data fetched successfully", data)
}

// record stores a successful calculation. Failures are logged and do not
// fail the request.
func (h *Handlers) record(ctx context.Context, req PanchangaRequest, m panchanga.Moment, res panchanga.Result) {
	c := &database.Calculation{
		RequestID:  logger.RequestID(ctx),
		InputDate:  req.Date,
		InputTime:  req.Time,
		InputZone:  req.Zone,
		Day:        m.Day,
		Month:      m.Month,
		Year:       m.Year,
		Hour:       m.Hour,
		ZoneOffset: m.ZoneOffset,
		Tithi:      res.Tithi,
		Paksha:     res.Paksha,
		Nakshatra:  res.Nakshatra,
		Yoga:       res.Yoga,
		Karana:     res.Karana,
		Rashi:      res.Rashi,
	}

	if err := h.store.RecordCalculation(ctx, c); err != nil {
		logger.Error(ctx, "failed to record calculation", err)
		return
	}
	logger.Info(ctx, "calculation recorded", slog.Int64("id", c.ID))
}

// writeCalculationError maps core errors to HTTP statuses.
func (h *Handlers) writeCalculationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case panchanga.IsInputError(err):
		WriteBadRequest(w, r, err.Error())
	case panchanga.IsModelError(err):
		logger.Warn(r.Context(), "moment outside model", slog.Any("error", err))
		WriteUnprocessable(w, r, err.Error())
	default:
		logger.Error(r.Context(), "panchanga calculation failed", err)
		WriteInternalError(w, r, "Failed to calculate panchanga")
	}
}

// ListHistory handles GET /api/v1/panchanga/history?limit=N&offset=M
func (h *Handlers) ListHistory(w http.ResponseWriter, r *http.Request) {
	limit := 50 // default
	offset := 0

	if s := r.URL.Query().Get("limit"); s != "" {
		if l, err := strconv.Atoi(s); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}
	if s := r.URL.Query().Get("offset"); s != "" {
		if o, err := strconv.Atoi(s); err == nil && o >= 0 {
			offset = o
		}
	}

	page, err := h.store.CalculationHistory(r.Context(), limit, offset)
	if err != nil {
		logger.Error(r.Context(), "failed to list history", err)
		WriteInternalError(w, r, "Failed to retrieve history")
		return
	}

	WriteSuccess(w, r, "", page)
}

// GetHistory handles GET /api/v1/panchanga/history/{id}
func (h *Handlers) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		WriteBadRequest(w, r, "Invalid calculation ID")
		return
	}

	calc, err := h.store.GetCalculation(r.Context(), id)
	if err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, r, "Calculation not found")
			return
		}
		logger.Error(r.Context(), "failed to get calculation", err, slog.Int64("id", id))
		WriteInternalError(w, r, "Failed to retrieve calculation")
		return
	}

	WriteSuccess(w, r, "", calc)
}

// decodeJSON decodes a JSON request body, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}
	return nil
}
