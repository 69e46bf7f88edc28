package handler

import (
	"log/slog"
	"net/http"

	"github.com/innovelous/agency/internal/model"
	"github.com/innovelous/agency/internal/response"
	"github.com/innovelous/agency/internal/service"
)

// PublicHandler serves the read-only marketing endpoints. No session needed.
type PublicHandler struct {
	portfolioService *service.PortfolioService
	categoryService  *service.CategoryService
	expertiseService *service.ExpertiseService
	downloadService  *service.DownloadService
}

func NewPublicHandler(
	portfolioService *service.PortfolioService,
	categoryService *service.CategoryService,
	expertiseService *service.ExpertiseService,
	downloadService *service.DownloadService,
) *PublicHandler {
	return &PublicHandler{
		portfolioService: portfolioService,
		categoryService:  categoryService,
		expertiseService: expertiseService,
		downloadService:  downloadService,
	}
}

type publicProject struct {
	*model.Project
	CategoryLabel string `json:"category_label"`
	CategoryIcon  string `json:"category_icon"`
}

// Projects lists portfolio projects, optionally filtered by ?category=key.
// Each project carries a resolved category label so a deleted category never
// leaves a blank chip on the page.
func (h *PublicHandler) Projects(w http.ResponseWriter, r *http.Request) {
	categoryKey := r.URL.Query().Get("category")

	projects, err := h.portfolioService.PublicProjects(categoryKey)
	if err != nil {
		slog.Error("failed to list projects", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load projects")
		return
	}

	out := make([]publicProject, 0, len(projects))
	for _, project := range projects {
		category := h.categoryService.Resolve(project.Category)
		out = append(out, publicProject{
			Project:       project,
			CategoryLabel: category.Name,
			CategoryIcon:  category.Icon,
		})
	}

	response.JSON(w, http.StatusOK, out)
}

func (h *PublicHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.Categories()
	if err != nil {
		slog.Error("failed to list categories", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load categories")
		return
	}

	response.JSON(w, http.StatusOK, categories)
}

func (h *PublicHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.expertiseService.PublicServices()
	if err != nil {
		slog.Error("failed to list services", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load services")
		return
	}

	response.JSON(w, http.StatusOK, services)
}

func (h *PublicHandler) Downloads(w http.ResponseWriter, r *http.Request) {
	downloads, err := h.downloadService.Downloads()
	if err != nil {
		slog.Error("failed to list downloads", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load downloads")
		return
	}

	response.JSON(w, http.StatusOK, downloads)
}
