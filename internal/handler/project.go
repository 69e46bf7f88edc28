package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/innovelous/agency/internal/repository"
	"github.com/innovelous/agency/internal/response"
	"github.com/innovelous/agency/internal/service"
)

// maxUploadMemory caps how much of a multipart body is buffered in memory
// before spilling to temp files.
const maxUploadMemory = 32 << 20

// ProjectHandler is the admin CRUD surface for portfolio projects. Every
// successful mutation responds with the refreshed project list so the
// dashboard never renders from a stale cache.
type ProjectHandler struct {
	portfolioService *service.PortfolioService
}

func NewProjectHandler(portfolioService *service.PortfolioService) *ProjectHandler {
	return &ProjectHandler{
		portfolioService: portfolioService,
	}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.portfolioService.Projects()
	if err != nil {
		slog.Error("failed to list projects", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load projects")
		return
	}

	response.JSON(w, http.StatusOK, projects)
}

// Create accepts a multipart form: text fields plus one or more "images"
// file parts. Technologies arrive as a JSON array in the "technologies"
// field.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	input := service.ProjectInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		DemoURL:     r.FormValue("demo_url"),
		Category:    r.FormValue("category"),
		Pinned:      r.FormValue("pinned") == "true",
	}
	if techs := r.FormValue("technologies"); techs != "" {
		err = json.Unmarshal([]byte(techs), &input.Technologies)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "technologies must be a JSON array of strings")
			return
		}
	}

	images := r.MultipartForm.File["images"]

	_, err = h.portfolioService.Create(input, images)
	if err != nil {
		h.writeError(w, err, "failed to create project")
		return
	}

	h.writeList(w, http.StatusCreated)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var input service.ProjectInput
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err = h.portfolioService.Update(id, input)
	if err != nil {
		h.writeError(w, err, "failed to update project")
		return
	}

	h.writeList(w, http.StatusOK)
}

func (h *ProjectHandler) AddImages(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	_, err = h.portfolioService.AddImages(id, r.MultipartForm.File["images"])
	if err != nil {
		h.writeError(w, err, "failed to add images")
		return
	}

	h.writeList(w, http.StatusOK)
}

func (h *ProjectHandler) RemoveImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		ImageURL string `json:"image_url"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || strings.TrimSpace(req.ImageURL) == "" {
		response.Error(w, http.StatusBadRequest, "image_url is required")
		return
	}

	_, err = h.portfolioService.RemoveImage(id, req.ImageURL)
	if err != nil {
		h.writeError(w, err, "failed to remove image")
		return
	}

	h.writeList(w, http.StatusOK)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.portfolioService.Delete(id)
	if err != nil {
		h.writeError(w, err, "failed to delete project")
		return
	}

	h.writeList(w, http.StatusOK)
}

func (h *ProjectHandler) writeList(w http.ResponseWriter, status int) {
	projects, err := h.portfolioService.Projects()
	if err != nil {
		slog.Error("failed to refresh project list", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load projects")
		return
	}

	response.JSON(w, status, projects)
}

func (h *ProjectHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case isValidationErr(err):
		response.Error(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, repository.ErrProjectNotFound):
		response.Error(w, http.StatusNotFound, "project not found")
	default:
		slog.Error(fallback, "error", err)
		response.Error(w, http.StatusInternalServerError, fallback)
	}
}
