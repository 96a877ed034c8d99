package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"profiles/internal/profile/models"
	"profiles/pkg/platform/httputil"
	"profiles/pkg/requestcontext"
)

// Service defines the profile operations exposed over HTTP.
type Service interface {
	CreateProfile(ctx context.Context, req *models.CreateProfileRequest) error
}

// Handler handles profile endpoints.
type Handler struct {
	logger   *slog.Logger
	profiles Service
}

// New creates a new profile Handler.
func New(profiles Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, profiles: profiles}
}

// Register registers the profile routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/profiles", h.HandleCreateProfile)
}

type createProfileResponse struct {
	ID string `json:"id"`
}

// HandleCreateProfile creates a profile from {"id", "email"} and answers 201
// with the normalized id.
func (h *Handler) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	var req models.CreateProfileRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.logger.WarnContext(ctx, "invalid create profile request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(ctx, "create profile request failed validation",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	if err := h.profiles.CreateProfile(ctx, &req); err != nil {
		status := httputil.StatusFor(httputil.CodeOf(err))
		if status >= http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "failed to create profile",
				"request_id", requestID,
				"error", err.Error(),
			)
		} else {
			h.logger.InfoContext(ctx, "create profile rejected",
				"request_id", requestID,
				"status", status,
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, createProfileResponse{ID: req.ID})
}
