package routes

import (
	"io/fs"
	"net/http"

	agency "github.com/innovelous/agency"
	"github.com/innovelous/agency/internal/app"
	"github.com/innovelous/agency/internal/handler"
	"github.com/innovelous/agency/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	public := handler.NewPublicHandler(app.PortfolioService, app.CategoryService, app.ExpertiseService, app.DownloadService)
	project := handler.NewProjectHandler(app.PortfolioService)
	category := handler.NewCategoryHandler(app.CategoryService)
	expertise := handler.NewExpertiseHandler(app.ExpertiseService)
	download := handler.NewDownloadHandler(app.DownloadService)
	order := handler.NewOrderHandler(app.OrderService, app.PortfolioService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC API
	// ============================================================================

	mux.HandleFunc("GET /api/projects", public.Projects)
	mux.HandleFunc("GET /api/categories", public.Categories)
	mux.HandleFunc("GET /api/services", public.Services)
	mux.HandleFunc("GET /api/downloads", public.Downloads)

	// Order form
	mux.HandleFunc("POST /api/orders", order.Submit)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /api/auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)
	mux.HandleFunc("GET /api/auth/session", auth.Session)
	mux.HandleFunc("POST /api/auth/password", rateLimiter(middleware.RequireAdmin(auth.ChangePassword)))

	// ============================================================================
	// ADMIN API (/api/admin/*)
	// ============================================================================

	mux.HandleFunc("GET /api/admin/stats", middleware.RequireAdmin(order.Stats))

	mux.HandleFunc("GET /api/admin/projects", middleware.RequireAdmin(project.List))
	mux.HandleFunc("POST /api/admin/projects", middleware.RequireAdmin(project.Create))
	mux.HandleFunc("PUT /api/admin/projects/{id}", middleware.RequireAdmin(project.Update))
	mux.HandleFunc("POST /api/admin/projects/{id}/images", middleware.RequireAdmin(project.AddImages))
	mux.HandleFunc("DELETE /api/admin/projects/{id}/images", middleware.RequireAdmin(project.RemoveImage))
	mux.HandleFunc("DELETE /api/admin/projects/{id}", middleware.RequireAdmin(project.Delete))

	mux.HandleFunc("GET /api/admin/categories", middleware.RequireAdmin(category.List))
	mux.HandleFunc("POST /api/admin/categories", middleware.RequireAdmin(category.Create))
	mux.HandleFunc("PUT /api/admin/categories/{id}", middleware.RequireAdmin(category.Update))
	mux.HandleFunc("DELETE /api/admin/categories/{id}", middleware.RequireAdmin(category.Delete))

	mux.HandleFunc("GET /api/admin/services", middleware.RequireAdmin(expertise.List))
	mux.HandleFunc("POST /api/admin/services", middleware.RequireAdmin(expertise.Create))
	mux.HandleFunc("PUT /api/admin/services/{id}", middleware.RequireAdmin(expertise.Update))
	mux.HandleFunc("DELETE /api/admin/services/{id}", middleware.RequireAdmin(expertise.Delete))

	mux.HandleFunc("GET /api/admin/downloads", middleware.RequireAdmin(download.List))
	mux.HandleFunc("POST /api/admin/downloads", middleware.RequireAdmin(download.Create))
	mux.HandleFunc("DELETE /api/admin/downloads/{id}", middleware.RequireAdmin(download.Delete))

	mux.HandleFunc("GET /api/admin/orders", middleware.RequireAdmin(order.List))
	mux.HandleFunc("PATCH /api/admin/orders/{id}/status", middleware.RequireAdmin(order.UpdateStatus))
	mux.HandleFunc("DELETE /api/admin/orders/{id}", middleware.RequireAdmin(order.Delete))

	// ============================================================================
	// FALLBACK - embedded SPA
	// ============================================================================

	sub, _ := fs.Sub(agency.WebFS, "web/dist")
	mux.Handle("/", handler.NewSPAHandler(sub))

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.Auth(app.AuthService),
		middleware.WithURLPath,
	)

	return h
}
