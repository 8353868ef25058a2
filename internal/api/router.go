package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskward/taskward-api/internal/api/middleware"
	"github.com/taskward/taskward-api/internal/api/shared"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	TaskHandler    *TaskHandler
	StatsHandler   *StatsHandler
	AuthMiddleware *middleware.AuthMiddleware
	AllowedOrigins []string
	HealthCheck    func(ctx context.Context) error
}

// NewRouter builds the HTTP routing tree. Credential issuance, logout, and
// registration are public; every task and stats route sits behind the auth
// middleware.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.TraceMiddleware)
	r.Use(middleware.NewCORSMiddleware(deps.AllowedOrigins))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Task Management Server is Up"))
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if deps.HealthCheck != nil {
			if err := deps.HealthCheck(req.Context()); err != nil {
				shared.RespondWithErrorAndLog(w, req, http.StatusServiceUnavailable, "Store unreachable", err)
				return
			}
		}
		shared.RespondWithJSON(w, req, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/jwt", deps.AuthHandler.IssueToken)
		r.Post("/logout", deps.AuthHandler.Logout)
		r.Post("/users", deps.UserHandler.Register)

		r.Group(func(r chi.Router) {
			r.Use(deps.AuthMiddleware.Authenticate)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", deps.TaskHandler.List)
				r.Post("/", deps.TaskHandler.Create)
				r.Get("/{id}", deps.TaskHandler.Get)
				r.Put("/{id}", deps.TaskHandler.Update)
				r.Delete("/{id}", deps.TaskHandler.Delete)
			})

			r.Get("/stats", deps.StatsHandler.Summary)
		})
	})

	return r
}
