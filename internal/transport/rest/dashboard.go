package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/inklet-app/inklet-backend/internal/service/dashboard"
)

// dashboardService defines the minimal interface needed by DashboardHandler.
type dashboardService interface {
	GetStats(ctx context.Context) (*dashboard.Stats, error)
}

// DashboardHandler serves the admin overview endpoint.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type contentStatsResponse struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Featured  int `json:"featured"`
}

type statsResponse struct {
	Poems              contentStatsResponse `json:"poems"`
	BlogPosts          contentStatsResponse `json:"blogPosts"`
	Users              int                  `json:"users"`
	Categories         int                  `json:"categories"`
	PendingSubmissions int                  `json:"pendingSubmissions"`
}

// Stats handles GET /admin/dashboard.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Poems:              contentStatsResponse(stats.Poems),
		BlogPosts:          contentStatsResponse(stats.BlogPosts),
		Users:              stats.Users,
		Categories:         stats.Categories,
		PendingSubmissions: stats.PendingSubmissions,
	})
}
