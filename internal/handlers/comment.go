package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"istanfix/internal/middleware"
	"istanfix/internal/services"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommentHandler struct {
	service *services.CommentService
	logr    *zap.Logger
}

func NewCommentHandler(svc *services.CommentService, logr *zap.Logger) *CommentHandler {
	return &CommentHandler{service: svc, logr: logr}
}

// GET /api/reports/{reportId}/comments
func (h *CommentHandler) ListByReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := strconv.ParseInt(chi.URLParam(r, "reportId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	rows, err := h.service.ListByReport(r.Context(), reportID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": rows})
}

// POST /api/reports/{reportId}/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	reportID, err := strconv.ParseInt(chi.URLParam(r, "reportId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.Create(r.Context(), actor, reportID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.logr.Info("comment created",
		zap.Int64("comment_id", row.ID),
		zap.Int64("report_id", reportID),
		zap.Int64("user_id", actor.ID))
	writeJSON(w, http.StatusCreated, map[string]any{"data": row})
}

// DELETE /api/comments/{commentId}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	commentID, err := strconv.ParseInt(chi.URLParam(r, "commentId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	if err := h.service.Delete(r.Context(), actor, commentID); err != nil {
		writeServiceError(w, err)
		return
	}

	h.logr.Info("comment deleted", zap.Int64("comment_id", commentID), zap.Int64("actor_id", actor.ID))
	writeJSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{"id": commentID, "deleted": true},
	})
}
