package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/assetbook/assetbook-backend/internal/domain"
	"github.com/assetbook/assetbook-backend/internal/usecase/asset"
)

func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// isNotFound distinguishes missing records from storage failures based on
// the repository error convention
func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not found")
}

func (s *Server) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	var payload assetPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	parsed, err := payload.parse()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.AssetService.CreateAsset(r.Context(), asset.CreateAssetInput{
		Name:            payload.Name,
		Description:     payload.Description,
		CategoryID:      parsed.CategoryID,
		PurchaseDate:    parsed.PurchaseDate,
		PurchasePrice:   parsed.PurchasePrice,
		UsefulLifeYears: payload.UsefulLifeYears,
		SalvageValue:    parsed.SalvageValue,
		Condition:       domain.Condition(payload.Condition),
		Status:          domain.Status(payload.Status),
	})
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toAssetResponse(created))
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	filter := domain.AssetFilter{}

	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category_id format")
			return
		}
		filter.CategoryID = &id
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		filter.Status = domain.Status(raw)
	}
	if r.URL.Query().Get("include_disposed") == "true" {
		filter.IncludeDisposed = true
	}

	assets, err := s.AssetService.ListAssets(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list assets")
		return
	}

	responses := make([]assetResponse, 0, len(assets))
	for _, a := range assets {
		responses = append(responses, toAssetResponse(a))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (s *Server) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	found, err := s.AssetService.GetAsset(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "asset not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get asset")
		return
	}

	writeJSON(w, http.StatusOK, toAssetResponse(found))
}

func (s *Server) handleUpdateAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	var payload assetPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	parsed, err := payload.parse()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.AssetService.UpdateAsset(r.Context(), id, asset.UpdateAssetInput{
		Name:            payload.Name,
		Description:     payload.Description,
		CategoryID:      parsed.CategoryID,
		PurchaseDate:    parsed.PurchaseDate,
		PurchasePrice:   parsed.PurchasePrice,
		UsefulLifeYears: payload.UsefulLifeYears,
		SalvageValue:    parsed.SalvageValue,
		Condition:       domain.Condition(payload.Condition),
		Status:          domain.Status(payload.Status),
	})
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "asset not found")
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toAssetResponse(updated))
}

func (s *Server) handleDisposeAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	if err := s.AssetService.DisposeAsset(r.Context(), id); err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "asset not found")
			return
		}
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetAssetValuation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	asOf := time.Time{}
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, err := time.Parse(dateFormat, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid as_of format, want YYYY-MM-DD")
			return
		}
		asOf = parsed
	}

	valuation, err := s.DashboardService.GetAssetValuation(r.Context(), id, asOf)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "asset not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to compute valuation")
		return
	}

	writeJSON(w, http.StatusOK, toValuationResponse(valuation))
}

func (s *Server) handleRecordMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	var payload maintenancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := asset.RecordMaintenanceInput{
		AssetID:     id,
		Description: payload.Description,
		PerformedBy: payload.PerformedBy,
		Cost:        decimal.Zero,
	}
	if payload.Date != "" {
		date, err := time.Parse(dateFormat, payload.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date format, want YYYY-MM-DD")
			return
		}
		input.Date = date
	}
	if payload.Cost != "" {
		cost, err := decimal.NewFromString(payload.Cost)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid cost format")
			return
		}
		input.Cost = cost
	}

	record, err := s.AssetService.RecordMaintenance(r.Context(), input)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "asset not found")
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toMaintenanceResponse(record))
}

func (s *Server) handleListMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	records, err := s.AssetService.ListMaintenance(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list maintenance records")
		return
	}

	responses := make([]maintenanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toMaintenanceResponse(record))
	}
	writeJSON(w, http.StatusOK, responses)
}
