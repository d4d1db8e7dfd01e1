package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPasswordRequired   = "введите пароль"
	msgInvalidPassword    = "пароль неверный"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Password string `json:"password"`
}

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Login(r.Context(), req.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrPasswordRequired):
			h.logger.Warn("POST /admin/login - Password required")
			handlers.RespondBadRequest(w, msgPasswordRequired)

		case errors.Is(err, auth.ErrInvalidPassword):
			h.logger.Warn("POST /admin/login - Invalid password")
			handlers.RespondUnauthorized(w, msgInvalidPassword)

		default:
			h.logger.Error("POST /admin/login - Failed to login: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in")
	handlers.RespondJSON(w, http.StatusOK, nil)
}
