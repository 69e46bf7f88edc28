package service

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/innovelous/agency/internal/model"
	"github.com/innovelous/agency/internal/repository"
	"github.com/innovelous/agency/internal/storage"
	"github.com/innovelous/agency/internal/validation"
)

// OrderService handles the public intake form and the admin order workflow.
type OrderService struct {
	orderRepository repository.OrderRepository
	storage         storage.Storage
	emailService    *EmailService
}

func NewOrderService(orderRepository repository.OrderRepository, storage storage.Storage, emailService *EmailService) *OrderService {
	return &OrderService{
		orderRepository: orderRepository,
		storage:         storage,
		emailService:    emailService,
	}
}

type OrderInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProjectTitle string `json:"project_title"`
	Description  string `json:"description"`
	Budget       string `json:"budget"`
	Timeline     string `json:"timeline"`
}

func (s *OrderService) Orders() ([]*model.Order, error) {
	return s.orderRepository.All()
}

// Submit validates the intake form, uploads any attachments, inserts the
// order as pending and sends the confirmation/notification emails. Email
// failures are logged, never fatal to the order.
func (s *OrderService) Submit(input OrderInput, attachments []*multipart.FileHeader) (*model.Order, error) {
	err := validateOrderInput(input)
	if err != nil {
		return nil, err
	}
	for _, header := range attachments {
		err = validation.ValidateFile(header, validation.AttachmentConstraints)
		if err != nil {
			return nil, validationError(err.Error())
		}
	}

	fileURLs := model.StringList{}
	uploaded := []string{}
	for _, header := range attachments {
		file, openErr := header.Open()
		if openErr != nil {
			return nil, fmt.Errorf("failed to open attachment: %w", openErr)
		}

		path := uuid.New().String() + strings.ToLower(filepath.Ext(header.Filename))
		err = s.storage.Save(storage.BucketOrderFiles, path, file)
		_ = file.Close()
		if err != nil {
			delErr := s.storage.DeleteMany(storage.BucketOrderFiles, uploaded)
			if delErr != nil {
				slog.Error("failed to clean up order attachments", "error", delErr)
			}
			return nil, fmt.Errorf("failed to upload attachment: %w", err)
		}

		uploaded = append(uploaded, path)
		fileURLs = append(fileURLs, s.storage.PublicURL(storage.BucketOrderFiles, path))
	}

	order := &model.Order{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(strings.ToLower(input.Email)),
		Phone:        strings.TrimSpace(input.Phone),
		ProjectTitle: strings.TrimSpace(input.ProjectTitle),
		Description:  input.Description,
		Budget:       strings.TrimSpace(input.Budget),
		Timeline:     strings.TrimSpace(input.Timeline),
		Status:       model.OrderStatusPending,
		FileURLs:     fileURLs,
		SubmittedAt:  time.Now().UTC(),
	}

	err = s.orderRepository.Create(order)
	if err != nil {
		delErr := s.storage.DeleteMany(storage.BucketOrderFiles, uploaded)
		if delErr != nil {
			slog.Error("failed to clean up order attachments", "error", delErr)
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.emailService != nil {
		err = s.emailService.SendOrderConfirmation(order)
		if err != nil {
			slog.Warn("failed to send order confirmation", "order_id", order.ID, "error", err)
		}
		err = s.emailService.SendOrderNotification(order)
		if err != nil {
			slog.Warn("failed to send order notification", "order_id", order.ID, "error", err)
		}
	}

	return order, nil
}

// UpdateStatus sets the order status. Only enum membership is checked; the
// dashboard disables backward transitions but the write path accepts them.
func (s *OrderService) UpdateStatus(id, status string) error {
	if !model.ValidOrderStatus(status) {
		return validationError("unknown order status")
	}
	return s.orderRepository.UpdateStatus(id, status)
}

// Delete removes the order record. Attachments in storage are not deleted.
func (s *OrderService) Delete(id string) error {
	return s.orderRepository.Delete(id)
}

// Stats summarizes the dashboard analytics counters.
type Stats struct {
	TotalProjects   int `json:"total_projects"`
	TotalOrders     int `json:"total_orders"`
	PendingOrders   int `json:"pending_orders"`
	CompletedOrders int `json:"completed_orders"`
}

func (s *OrderService) Stats(totalProjects int) (*Stats, error) {
	orders, err := s.orderRepository.All()
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalProjects: totalProjects,
		TotalOrders:   len(orders),
	}
	for _, order := range orders {
		switch order.Status {
		case model.OrderStatusPending:
			stats.PendingOrders++
		case model.OrderStatusCompleted:
			stats.CompletedOrders++
		}
	}

	return stats, nil
}

func validateOrderInput(input OrderInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return validationError("name is required")
	}
	err := validation.ValidateEmail(strings.TrimSpace(input.Email))
	if err != nil {
		return validationError(err.Error())
	}
	if strings.TrimSpace(input.ProjectTitle) == "" {
		return validationError("project title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return validationError("description is required")
	}
	return nil
}
