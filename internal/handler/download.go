package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/innovelous/agency/internal/repository"
	"github.com/innovelous/agency/internal/response"
	"github.com/innovelous/agency/internal/service"
)

type DownloadHandler struct {
	downloadService *service.DownloadService
}

func NewDownloadHandler(downloadService *service.DownloadService) *DownloadHandler {
	return &DownloadHandler{
		downloadService: downloadService,
	}
}

func (h *DownloadHandler) List(w http.ResponseWriter, r *http.Request) {
	downloads, err := h.downloadService.Downloads()
	if err != nil {
		slog.Error("failed to list downloads", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load downloads")
		return
	}

	response.JSON(w, http.StatusOK, downloads)
}

// Create accepts a multipart form with text fields and a single "file" part.
func (h *DownloadHandler) Create(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	input := service.DownloadInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		response.Error(w, http.StatusBadRequest, "file is required")
		return
	}

	_, err = h.downloadService.Create(input, files[0])
	if err != nil {
		h.writeError(w, err, "failed to create download")
		return
	}

	h.writeList(w, http.StatusCreated)
}

func (h *DownloadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.downloadService.Delete(id)
	if err != nil {
		h.writeError(w, err, "failed to delete download")
		return
	}

	h.writeList(w, http.StatusOK)
}

func (h *DownloadHandler) writeList(w http.ResponseWriter, status int) {
	downloads, err := h.downloadService.Downloads()
	if err != nil {
		slog.Error("failed to refresh download list", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load downloads")
		return
	}

	response.JSON(w, status, downloads)
}

func (h *DownloadHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case isValidationErr(err):
		response.Error(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, repository.ErrDownloadNotFound):
		response.Error(w, http.StatusNotFound, "download not found")
	default:
		slog.Error(fallback, "error", err)
		response.Error(w, http.StatusInternalServerError, fallback)
	}
}
