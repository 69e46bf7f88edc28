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

type ExpertiseHandler struct {
	expertiseService *service.ExpertiseService
}

func NewExpertiseHandler(expertiseService *service.ExpertiseService) *ExpertiseHandler {
	return &ExpertiseHandler{
		expertiseService: expertiseService,
	}
}

func (h *ExpertiseHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.expertiseService.Services()
	if err != nil {
		slog.Error("failed to list services", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load services")
		return
	}

	response.JSON(w, http.StatusOK, services)
}

func (h *ExpertiseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.ServiceInput
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err = h.expertiseService.Create(input)
	if err != nil {
		h.writeError(w, err, "failed to create service")
		return
	}

	h.writeList(w, http.StatusCreated)
}

func (h *ExpertiseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var input service.ServiceInput
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err = h.expertiseService.Update(id, input)
	if err != nil {
		h.writeError(w, err, "failed to update service")
		return
	}

	h.writeList(w, http.StatusOK)
}

func (h *ExpertiseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.expertiseService.Delete(id)
	if err != nil {
		h.writeError(w, err, "failed to delete service")
		return
	}

	h.writeList(w, http.StatusOK)
}

func (h *ExpertiseHandler) writeList(w http.ResponseWriter, status int) {
	services, err := h.expertiseService.Services()
	if err != nil {
		slog.Error("failed to refresh service list", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load services")
		return
	}

	response.JSON(w, status, services)
}

func (h *ExpertiseHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case isValidationErr(err):
		response.Error(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, repository.ErrServiceNotFound):
		response.Error(w, http.StatusNotFound, "service not found")
	default:
		slog.Error(fallback, "error", err)
		response.Error(w, http.StatusInternalServerError, fallback)
	}
}
