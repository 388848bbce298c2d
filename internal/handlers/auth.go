package handlers

import (
	"encoding/json"
	"net/http"

	"istanfix/internal/auth"
	"istanfix/internal/config"
	"istanfix/internal/logger"
	"istanfix/internal/services"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authSvc *services.AuthService
	jwt     *auth.JWTManager
	cfg     *config.Config
	logr    *logger.Logger
}

func NewAuthHandler(svc *services.AuthService, jwt *auth.JWTManager, cfg *config.Config, logr *logger.Logger) *AuthHandler {
	return &AuthHandler{authSvc: svc, jwt: jwt, cfg: cfg, logr: logr}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type safeUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req services.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authSvc.Signup(r.Context(), req)
	if err != nil {
		h.logr.Warn("signup failed", zap.Error(err), zap.String("email", req.Email))
		writeServiceError(w, err)
		return
	}

	token, _, err := h.jwt.GenerateToken(user.ID, user.Role, h.cfg.AccessTokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      "User registered successfully",
		"userId":       user.ID,
		"email":        user.Email,
		"role":         user.Role,
		"access_token": token,
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logr.Warn("login failed", zap.String("email", req.Email))
		writeServiceError(w, err)
		return
	}

	token, _, err := h.jwt.GenerateToken(user.ID, user.Role, h.cfg.AccessTokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user": safeUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
		"access_token": token,
	})
}
