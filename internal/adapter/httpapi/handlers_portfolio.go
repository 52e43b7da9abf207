package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/assetbook/assetbook-backend/internal/domain"
	"github.com/assetbook/assetbook-backend/internal/usecase/planner"
	"github.com/assetbook/assetbook-backend/internal/usecase/portfolio"
)

// portfolioOptions reads the summary query parameters into aggregation options
// Unset parameters fall through to the aggregator defaults
func portfolioOptions(r *http.Request) (portfolio.Options, error) {
	opts := portfolio.Options{}
	query := r.URL.Query()

	if raw := query.Get("as_of"); raw != "" {
		asOf, err := time.Parse(dateFormat, raw)
		if err != nil {
			return opts, errors.New("invalid as_of format, want YYYY-MM-DD")
		}
		opts.AsOf = asOf
	}
	if raw := query.Get("top_n"); raw != "" {
		topN, err := strconv.Atoi(raw)
		if err != nil || topN < 1 {
			return opts, errors.New("top_n must be a positive integer")
		}
		opts.TopN = topN
	}
	if raw := query.Get("alert_threshold_pct"); raw != "" {
		threshold, err := decimal.NewFromString(raw)
		if err != nil || threshold.IsNegative() {
			return opts, errors.New("alert_threshold_pct must be a non-negative number")
		}
		opts.AlertThresholdPct = threshold
	}
	if query.Get("include_disposed") == "true" {
		opts.IncludeDisposed = true
	}

	return opts, nil
}

func (s *Server) handlePortfolioSummary(w http.ResponseWriter, r *http.Request) {
	opts, err := portfolioOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.DashboardService.GetPortfolioOverview(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build portfolio summary")
		return
	}

	asOf := opts.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}
	writeJSON(w, http.StatusOK, toPortfolioSummaryResponse(result, asOf))
}

func (s *Server) handleListReplacementTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.TaskRepo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list replacement tasks")
		return
	}

	responses := make([]replacementTaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, toReplacementTaskResponse(task))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (s *Server) handleGenerateReplacementTasks(w http.ResponseWriter, r *http.Request) {
	opts, err := portfolioOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	assets, err := s.AssetService.ListAssets(r.Context(), domain.AssetFilter{IncludeDisposed: opts.IncludeDisposed})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list assets")
		return
	}
	categories, err := s.CategoryService.ListCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	created, err := planner.GenerateReplacementTasks(r.Context(), assets, categories, s.TaskRepo, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate replacement tasks")
		return
	}

	responses := make([]replacementTaskResponse, 0, len(created))
	for i := range created {
		responses = append(responses, toReplacementTaskResponse(&created[i]))
	}
	writeJSON(w, http.StatusCreated, responses)
}

func (s *Server) handleCompleteReplacementTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := s.TaskRepo.MarkCompleted(r.Context(), id, time.Now()); err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "replacement task not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to complete replacement task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
