package httpx

import (
	"log/slog"
	"net/http"

	"github.com/depscout/depscout/internal/domain/model"
	"github.com/depscout/depscout/internal/service"
)

// AuthHandlers provides HTTP handlers for token issuance.
type AuthHandlers struct {
	Svc    *service.AuthService
	Logger *slog.Logger
}

// Login handles POST /auth/login: it checks the credential shape and issues
// an access/refresh token pair.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	pair, err := h.Svc.Login(r.Context(), &req)
	if err != nil {
		writeAppError(w, err)
		return
	}

	if h.Logger != nil {
		h.Logger.InfoContext(r.Context(), "login", slog.String("login", req.Login))
	}
	WriteJSON(w, http.StatusOK, pair)
}
