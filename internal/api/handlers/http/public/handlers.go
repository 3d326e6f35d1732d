package public

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ananyaa0518/resQAI/internal/domain"
	"github.com/ananyaa0518/resQAI/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ReportSubmitter interface {
	Submit(ctx context.Context, req domain.CreateReportRequest, origin string) (*domain.Report, error)
}

type SOSSubmitter interface {
	Submit(ctx context.Context, req domain.CreateSOSRequest, origin string) (*domain.Report, error)
}

type ReportLister interface {
	List(ctx context.Context) ([]*domain.Report, error)
}

type Handler struct {
	logger  *slog.Logger
	Reports ReportSubmitter
	SOS     SOSSubmitter
	Lister  ReportLister
}

func NewHandler(logger *slog.Logger, reports ReportSubmitter, sos SOSSubmitter, lister ReportLister) *Handler {
	return &Handler{
		logger:  logger,
		Reports: reports,
		SOS:     sos,
		Lister:  lister,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateReportRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	origin := middleware.ClientIP(r)
	l.Info("report submission",
		slog.String("origin", origin),
		slog.Float64("latitude", req.Latitude),
		slog.Float64("longitude", req.Longitude),
	)

	report, err := h.Reports.Submit(r.Context(), req, origin)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) CreateSOS(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateSOSRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	origin := middleware.ClientIP(r)
	l.Info("sos submission", slog.String("origin", origin))

	report, err := h.SOS.Submit(r.Context(), req, origin)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Lister.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if reports == nil {
		reports = []*domain.Report{}
	}

	writeJSON(w, http.StatusOK, reports)
}

// decodeStrict rejects malformed JSON, unknown fields and trailing data.
func decodeStrict(w http.ResponseWriter, r *http.Request, target any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	return true
}
