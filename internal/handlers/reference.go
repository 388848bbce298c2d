package handlers

import (
	"net/http"
	"strconv"

	"istanfix/internal/services"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReferenceHandler struct {
	service *services.ReferenceService
	logr    *zap.Logger
}

func NewReferenceHandler(svc *services.ReferenceService, logr *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{service: svc, logr: logr}
}

// GET /api/categories
func (h *ReferenceHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logr.Error("failed to list categories", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": categories})
}

// GET /api/districts
func (h *ReferenceHandler) ListDistricts(w http.ResponseWriter, r *http.Request) {
	districts, err := h.service.ListDistricts(r.Context())
	if err != nil {
		h.logr.Error("failed to list districts", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": districts})
}

// GET /api/neighborhoods
func (h *ReferenceHandler) ListNeighborhoods(w http.ResponseWriter, r *http.Request) {
	neighborhoods, err := h.service.ListNeighborhoods(r.Context())
	if err != nil {
		h.logr.Error("failed to list neighborhoods", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": neighborhoods})
}

// GET /api/districts/{id}/neighborhoods
func (h *ReferenceHandler) ListDistrictNeighborhoods(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid district ID")
		return
	}

	neighborhoods, err := h.service.ListNeighborhoodsByDistrict(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": neighborhoods})
}
