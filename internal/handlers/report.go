package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"istanfix/internal/middleware"
	"istanfix/internal/services"
	"istanfix/internal/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReportHandler struct {
	service *services.ReportService
	uploads *storage.UploadStore
	logr    *zap.Logger
}

func NewReportHandler(svc *services.ReportService, uploads *storage.UploadStore, logr *zap.Logger) *ReportHandler {
	return &ReportHandler{service: svc, uploads: uploads, logr: logr}
}

// GET /api/reports
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.List(r.Context())
	if err != nil {
		h.logr.Error("failed to list reports", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "success", "data": rows})
}

// GET /api/reports/category/{categoryId}
func (h *ReportHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	rows, err := h.service.ListByCategory(r.Context(), categoryID)
	if err != nil {
		h.logr.Error("failed to list reports by category", zap.Error(err), zap.Int64("category_id", categoryID))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "success", "data": rows})
}

// POST /api/reports (multipart form, optional image)
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	// Image cap plus headroom for the text fields.
	r.Body = http.MaxBytesReader(w, r.Body, 6*1024*1024)
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	form := r.MultipartForm.Value
	address := strings.TrimSpace(formValue(form, "address"))
	description := strings.TrimSpace(formValue(form, "description"))
	if formValue(form, "category_id") == "" || formValue(form, "district_id") == "" || address == "" || description == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: category_id, district_id, address, description.")
		return
	}

	categoryID, err := strconv.ParseInt(formValue(form, "category_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid category_id. Must be a number.")
		return
	}
	districtID, err := strconv.ParseInt(formValue(form, "district_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid district_id. Must be a number.")
		return
	}

	var neighborhoodID *int64
	if v := formValue(form, "neighborhood_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid neighborhood_id. Must be a number.")
			return
		}
		neighborhoodID = &id
	}

	latitude, longitude, err := parseCoordinates(formValue(form, "latitude"), formValue(form, "longitude"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var imagePath *string
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		path, err := h.uploads.SaveImage(file, header)
		if err != nil {
			if errors.Is(err, storage.ErrTooLarge) || errors.Is(err, storage.ErrNotImage) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			h.logr.Error("failed to store image", zap.Error(err))
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		imagePath = &path
	}

	row, err := h.service.Create(r.Context(), actor, services.CreateReportInput{
		CategoryID:     categoryID,
		DistrictID:     districtID,
		NeighborhoodID: neighborhoodID,
		Address:        address,
		Description:    description,
		Latitude:       latitude,
		Longitude:      longitude,
		ImagePath:      imagePath,
	})
	if err != nil {
		if imagePath != nil {
			_ = h.uploads.Remove(*imagePath)
		}
		writeServiceError(w, err)
		return
	}

	h.logr.Info("report created", zap.Int64("report_id", row.ID), zap.Int64("user_id", actor.ID))
	writeJSON(w, http.StatusCreated, map[string]any{"message": "success", "data": row})
}

// PUT /api/reports/{id}/status
func (h *ReportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	reportID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	status := strings.ToLower(req.Status)

	if err := h.service.UpdateStatus(r.Context(), actor, reportID, status); err != nil {
		writeServiceError(w, err)
		return
	}

	h.logr.Info("report status updated",
		zap.Int64("report_id", reportID),
		zap.String("status", status),
		zap.Int64("actor_id", actor.ID))
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "success",
		"data":    map[string]any{"id": reportID, "status": status},
	})
}

// DELETE /api/reports/{id}
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	reportID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	if err := h.service.Delete(r.Context(), actor, reportID); err != nil {
		writeServiceError(w, err)
		return
	}

	h.logr.Info("report deleted", zap.Int64("report_id", reportID), zap.Int64("actor_id", actor.ID))
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "deleted",
		"data":    map[string]any{"id": reportID, "deleted": true},
	})
}

func formValue(form map[string][]string, key string) string {
	if v, ok := form[key]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}

// parseCoordinates enforces that latitude and longitude are both numeric or
// both absent.
func parseCoordinates(latStr, lonStr string) (*float64, *float64, error) {
	if latStr == "" && lonStr == "" {
		return nil, nil, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, nil, errors.New("Invalid latitude or longitude provided. Must be numbers.")
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, nil, errors.New("Invalid latitude or longitude provided. Must be numbers.")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, nil, errors.New("Invalid latitude or longitude provided. Must be numbers.")
	}
	return &lat, &lon, nil
}
