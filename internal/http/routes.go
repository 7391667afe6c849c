package httpx

import (
	"log/slog"
	"net/http"

	"github.com/depscout/depscout/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Jobs *service.JobService
	Auth *service.AuthService

	// RequireAuth puts the job routes behind bearer-token auth. The login
	// endpoint itself is always public.
	RequireAuth bool

	Logger *slog.Logger // Logger for HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	jobHandlers := &JobHandlers{Svc: services.Jobs}

	wrap := func(h http.HandlerFunc) http.Handler {
		if services.RequireAuth && services.Auth != nil {
			return RequireToken(services.Auth)(h)
		}
		return h
	}

	mux.Handle("PUT /request/packages", wrap(jobHandlers.Submit))
	mux.Handle("GET /request/packages/{job_id}", wrap(jobHandlers.GetJob))

	if services.Auth != nil {
		authHandlers := &AuthHandlers{Svc: services.Auth, Logger: services.Logger}
		mux.HandleFunc("POST /auth/login", authHandlers.Login)
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}
