package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/innovelous/agency/internal/repository"
	"github.com/innovelous/agency/internal/response"
	"github.com/innovelous/agency/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.Categories()
	if err != nil {
		slog.Error("failed to list categories", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load categories")
		return
	}

	response.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CategoryInput
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err = h.categoryService.Create(input)
	if err != nil {
		h.writeError(w, err, "failed to create category")
		return
	}

	h.writeList(w, http.StatusCreated)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var input service.CategoryInput
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err = h.categoryService.Update(id, input)
	if err != nil {
		h.writeError(w, err, "failed to update category")
		return
	}

	h.writeList(w, http.StatusOK)
}

// Delete removes the category record only. Projects keep their key and fall
// back to a derived label on the public site.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.categoryService.Delete(id)
	if err != nil {
		h.writeError(w, err, "failed to delete category")
		return
	}

	h.writeList(w, http.StatusOK)
}

func (h *CategoryHandler) writeList(w http.ResponseWriter, status int) {
	categories, err := h.categoryService.Categories()
	if err != nil {
		slog.Error("failed to refresh category list", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load categories")
		return
	}

	response.JSON(w, status, categories)
}

func (h *CategoryHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case isValidationErr(err):
		response.Error(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, repository.ErrCategoryNotFound):
		response.Error(w, http.StatusNotFound, "category not found")
	default:
		slog.Error(fallback, "error", err)
		response.Error(w, http.StatusInternalServerError, fallback)
	}
}
