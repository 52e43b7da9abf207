package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/assetbook/assetbook-backend/internal/usecase/category"
)

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.CategoryService.CreateCategory(r.Context(), category.CreateCategoryInput{
		Name:                   payload.Name,
		Description:            payload.Description,
		DefaultUsefulLifeYears: payload.DefaultUsefulLifeYears,
	})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(created))
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.CategoryService.ListCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	responses := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, toCategoryResponse(c))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	found, err := s.CategoryService.GetCategory(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get category")
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(found))
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.CategoryService.UpdateCategory(r.Context(), id, category.UpdateCategoryInput{
		Name:                   payload.Name,
		Description:            payload.Description,
		DefaultUsefulLifeYears: payload.DefaultUsefulLifeYears,
	})
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(updated))
}
