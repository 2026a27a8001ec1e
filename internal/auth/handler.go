package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/harborgate/harborgate/internal/platform/httpx"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers auth routes on provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.handleLogin)
	r.Get("/admin-check/{userID}", h.handleAdminCheck)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// The four login outcomes map to four distinct, stable status codes so that
// callers can tell them apart without parsing the body.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	result, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("login", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}

	switch result.Outcome {
	case OutcomeUserNotFound:
		httpx.Problem(w, http.StatusNotFound, "User Not Found", "no account with that username")
	case OutcomeInvalidPassword:
		httpx.Problem(w, http.StatusUnauthorized, "Invalid Password", "password did not match")
	case OutcomeNotVerified:
		httpx.Problem(w, http.StatusForbidden, "Not Verified", "account has not been verified")
	default:
		httpx.JSON(w, http.StatusOK, map[string]string{
			"user_id": result.UserID,
			"outcome": result.Outcome.String(),
		})
	}
}

func (h *Handler) handleAdminCheck(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	role, err := h.service.CheckAdminRole(r.Context(), userID)
	if err != nil {
		h.logger.Error("admin check", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{
		"user_id": userID,
		"role":    role.String(),
	})
}
