package service

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/innovelous/agency/internal/markdown"
	"github.com/innovelous/agency/internal/model"
	"github.com/innovelous/agency/internal/repository"
)

// ExpertiseService manages the service listings shown on the expertise
// section of the site.
type ExpertiseService struct {
	serviceRepository repository.ServiceRepository
	renderer          *markdown.Renderer
}

func NewExpertiseService(serviceRepository repository.ServiceRepository, renderer *markdown.Renderer) *ExpertiseService {
	return &ExpertiseService{
		serviceRepository: serviceRepository,
		renderer:          renderer,
	}
}

type ServiceInput struct {
	Icon            string `json:"icon"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	LongDescription string `json:"long_description"`
}

func (s *ExpertiseService) Services() ([]*model.Service, error) {
	return s.serviceRepository.All()
}

// PublicServices lists services with long descriptions rendered to HTML.
func (s *ExpertiseService) PublicServices() ([]*model.Service, error) {
	services, err := s.serviceRepository.All()
	if err != nil {
		return nil, err
	}

	for _, svc := range services {
		svc.Icon = model.IconOrDefault(svc.Icon)
		if svc.LongDescription == "" {
			continue
		}
		html, renderErr := s.renderer.Render(svc.LongDescription)
		if renderErr != nil {
			slog.Warn("failed to render service description", "service_id", svc.ID, "error", renderErr)
			continue
		}
		svc.LongDescriptionHTML = html
	}

	return services, nil
}

func (s *ExpertiseService) Create(input ServiceInput) (*model.Service, error) {
	err := validateServiceInput(input)
	if err != nil {
		return nil, err
	}

	service := &model.Service{
		ID:              uuid.New().String(),
		Icon:            input.Icon,
		Title:           strings.TrimSpace(input.Title),
		Description:     input.Description,
		LongDescription: input.LongDescription,
		CreatedAt:       time.Now().UTC(),
	}

	err = s.serviceRepository.Create(service)
	if err != nil {
		return nil, err
	}

	return service, nil
}

func (s *ExpertiseService) Update(id string, input ServiceInput) (*model.Service, error) {
	err := validateServiceInput(input)
	if err != nil {
		return nil, err
	}

	service, err := s.serviceRepository.ByID(id)
	if err != nil {
		return nil, err
	}

	service.Icon = input.Icon
	service.Title = strings.TrimSpace(input.Title)
	service.Description = input.Description
	service.LongDescription = input.LongDescription

	err = s.serviceRepository.Update(service)
	if err != nil {
		return nil, err
	}

	return service, nil
}

func (s *ExpertiseService) Delete(id string) error {
	return s.serviceRepository.Delete(id)
}

func validateServiceInput(input ServiceInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return validationError("title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return validationError("description is required")
	}
	if input.Icon == "" {
		return validationError("icon is required")
	}
	if !model.ValidIcon(input.Icon) {
		return validationError("unknown icon name")
	}
	return nil
}
