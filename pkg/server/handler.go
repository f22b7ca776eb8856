package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/linyuze/wordscope/pkg/analysis"
	"github.com/linyuze/wordscope/pkg/chart"
	"github.com/linyuze/wordscope/pkg/fetch"
	"github.com/linyuze/wordscope/pkg/logging"
	"github.com/linyuze/wordscope/pkg/wordscope"
)

// Runner runs one analysis. Satisfied by *wordscope.Analyzer.
type Runner interface {
	Run(url string, kind chart.Kind) (*wordscope.Result, error)
}

type Handler struct {
	runner Runner
	logger *logging.Logger
}

func NewHandler(runner Runner, logger *logging.Logger) *Handler {
	return &Handler{runner: runner, logger: logger}
}

type AnalyzeRequest struct {
	URL   string `json:"url"`
	Chart string `json:"chart"`
}

type AnalyzeResponse struct {
	URL      string           `json:"url"`
	Total    int              `json:"total_words"`
	Distinct int              `json:"distinct_words"`
	Top      []analysis.Entry `json:"top"`
	Series   *chart.Series    `json:"series,omitempty"`
}

// HandleAnalyze runs the pipeline and returns the ranked list plus the
// chart series as JSON. An unsupported chart kind still returns the
// frequency data, just without a series.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var payload AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}
	if payload.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	kind := chart.Kind(payload.Chart)
	if payload.Chart == "" {
		kind = chart.KindBar
	}

	result, err := h.runner.Run(payload.URL, kind)
	if err != nil {
		h.respondRunError(w, payload.URL, err)
		return
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		URL:      payload.URL,
		Total:    result.Table.Total(),
		Distinct: result.Table.Len(),
		Top:      result.Top,
		Series:   result.Series,
	})
}

// HandleChart runs the pipeline and streams the rendered chart HTML.
func (h *Handler) HandleChart(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	kindParam := r.URL.Query().Get("kind")
	if kindParam == "" {
		kindParam = string(chart.KindCloud)
	}
	kind, err := chart.ParseKind(kindParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.runner.Run(url, kind)
	if err != nil {
		h.respondRunError(w, url, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.Render(w, result.Series, url); err != nil {
		h.logger.Error("render %s: %v", url, err)
	}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

func (h *Handler) respondRunError(w http.ResponseWriter, url string, err error) {
	h.logger.Error("analyze %s: %v", url, err)

	var fetchErr *fetch.FetchError
	switch {
	case errors.As(err, &fetchErr):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, analysis.ErrSegmenterUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
