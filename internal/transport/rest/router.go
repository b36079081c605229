package rest

import (
	"net/http"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Submission *SubmissionHandler
	Poems      *ContentHandler
	BlogPosts  *ContentHandler
	Category   *CategoryHandler
	Dashboard  *DashboardHandler
	Health     *HealthHandler
}

// NewRouter wires all handlers onto a ServeMux under /api/v1. Access
// control lives in the services; the router only routes.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Probes stay outside the API prefix.
	mux.HandleFunc("GET /healthz", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /api/v1/health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/login/password", h.Auth.LoginWithPassword)
	mux.HandleFunc("POST /api/v1/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/v1/users/me", h.User.Me)
	mux.HandleFunc("PATCH /api/v1/users/me", h.User.UpdateMe)

	mux.HandleFunc("POST /api/v1/submissions", h.Submission.Submit)
	mux.HandleFunc("GET /api/v1/submissions/mine", h.Submission.ListMine)
	mux.HandleFunc("GET /api/v1/submissions/{id}", h.Submission.Get)

	mountContent(mux, "poems", h.Poems)
	mountContent(mux, "blog-posts", h.BlogPosts)

	mux.HandleFunc("GET /api/v1/categories", h.Category.List)

	mux.HandleFunc("GET /api/v1/admin/dashboard", h.Dashboard.Stats)
	mux.HandleFunc("GET /api/v1/admin/submissions", h.Submission.List)
	mux.HandleFunc("POST /api/v1/admin/submissions/{id}/review", h.Submission.Review)
	mux.HandleFunc("GET /api/v1/admin/users", h.User.List)
	mux.HandleFunc("PATCH /api/v1/admin/users/{id}/role", h.User.SetRole)
	mux.HandleFunc("DELETE /api/v1/admin/users/{id}", h.User.Delete)
	mux.HandleFunc("POST /api/v1/admin/categories", h.Category.Create)
	mux.HandleFunc("DELETE /api/v1/admin/categories/{id}", h.Category.Delete)

	return mux
}

func mountContent(mux *http.ServeMux, prefix string, h *ContentHandler) {
	mux.HandleFunc("GET /api/v1/"+prefix, h.List)
	mux.HandleFunc("GET /api/v1/"+prefix+"/{id}", h.Get)
	mux.HandleFunc("POST /api/v1/"+prefix+"/{id}/like", h.Like)

	mux.HandleFunc("POST /api/v1/admin/"+prefix, h.Create)
	mux.HandleFunc("PATCH /api/v1/admin/"+prefix+"/{id}/publish", h.SetPublished)
	mux.HandleFunc("PATCH /api/v1/admin/"+prefix+"/{id}/feature", h.SetFeatured)
	mux.HandleFunc("DELETE /api/v1/admin/"+prefix+"/{id}", h.Delete)
}
