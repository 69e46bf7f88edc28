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

type OrderHandler struct {
	orderService     *service.OrderService
	portfolioService *service.PortfolioService
}

func NewOrderHandler(orderService *service.OrderService, portfolioService *service.PortfolioService) *OrderHandler {
	return &OrderHandler{
		orderService:     orderService,
		portfolioService: portfolioService,
	}
}

// Submit is the public order form endpoint. A multipart form with contact
// fields and optional "attachments" file parts.
func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	input := service.OrderInput{
		Name:         r.FormValue("name"),
		Email:        r.FormValue("email"),
		Phone:        r.FormValue("phone"),
		ProjectTitle: r.FormValue("project_title"),
		Description:  r.FormValue("description"),
		Budget:       r.FormValue("budget"),
		Timeline:     r.FormValue("timeline"),
	}

	order, err := h.orderService.Submit(input, r.MultipartForm.File["attachments"])
	if err != nil {
		h.writeError(w, err, "failed to submit order")
		return
	}

	slog.Info("order submitted", "order_id", order.ID)
	response.JSON(w, http.StatusCreated, map[string]string{"id": order.ID, "status": order.Status})
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.Orders()
	if err != nil {
		slog.Error("failed to list orders", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load orders")
		return
	}

	response.JSON(w, http.StatusOK, orders)
}

// UpdateStatus sets the order's workflow status. Any transition between the
// known statuses is allowed, including backward ones.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Status string `json:"status"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.orderService.UpdateStatus(id, req.Status)
	if err != nil {
		h.writeError(w, err, "failed to update order status")
		return
	}

	h.writeList(w, http.StatusOK)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.orderService.Delete(id)
	if err != nil {
		h.writeError(w, err, "failed to delete order")
		return
	}

	h.writeList(w, http.StatusOK)
}

// Stats powers the dashboard header cards.
func (h *OrderHandler) Stats(w http.ResponseWriter, r *http.Request) {
	projects, err := h.portfolioService.Projects()
	if err != nil {
		slog.Error("failed to count projects", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load stats")
		return
	}

	stats, err := h.orderService.Stats(len(projects))
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load stats")
		return
	}

	response.JSON(w, http.StatusOK, stats)
}

func (h *OrderHandler) writeList(w http.ResponseWriter, status int) {
	orders, err := h.orderService.Orders()
	if err != nil {
		slog.Error("failed to refresh order list", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load orders")
		return
	}

	response.JSON(w, status, orders)
}

func (h *OrderHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case isValidationErr(err):
		response.Error(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, repository.ErrOrderNotFound):
		response.Error(w, http.StatusNotFound, "order not found")
	default:
		slog.Error(fallback, "error", err)
		response.Error(w, http.StatusInternalServerError, fallback)
	}
}
