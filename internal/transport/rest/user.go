package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"github.com/heartmarshall/growth-journal-backend/internal/service/user"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	GetSettings(ctx context.Context) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, input user.UpdateSettingsInput) (*domain.UserSettings, error)
}

// UserHandler serves the profile and settings of the authenticated user.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

type settingsResponse struct {
	Timezone  string    `json:"timezone"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type updateSettingsRequest struct {
	Timezone *string `json:"timezone"`
}

// GetProfile handles GET /me.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateProfile handles PUT /me.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// GetSettings handles GET /me/settings.
func (h *UserHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSettings(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

// UpdateSettings handles PUT /me/settings.
func (h *UserHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s, err := h.svc.UpdateSettings(r.Context(), user.UpdateSettingsInput{Timezone: req.Timezone})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func toSettingsResponse(s *domain.UserSettings) settingsResponse {
	return settingsResponse{Timezone: s.Timezone, UpdatedAt: s.UpdatedAt}
}
