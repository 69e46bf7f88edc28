package service

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/innovelous/agency/internal/markdown"
	"github.com/innovelous/agency/internal/model"
	"github.com/innovelous/agency/internal/repository"
	"github.com/innovelous/agency/internal/storage"
	"github.com/innovelous/agency/internal/validation"
)

// PortfolioService synchronizes the projects table and owns the project
// image objects in storage.
type PortfolioService struct {
	projectRepository repository.ProjectRepository
	storage           storage.Storage
	renderer          *markdown.Renderer
}

func NewPortfolioService(projectRepository repository.ProjectRepository, storage storage.Storage, renderer *markdown.Renderer) *PortfolioService {
	return &PortfolioService{
		projectRepository: projectRepository,
		storage:           storage,
		renderer:          renderer,
	}
}

type ProjectInput struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	DemoURL      string   `json:"demo_url"`
	Category     string   `json:"category"`
	Pinned       bool     `json:"pinned"`
}

// Projects lists all projects, newest first.
func (s *PortfolioService) Projects() ([]*model.Project, error) {
	return s.projectRepository.All()
}

// PublicProjects lists projects for the portfolio page, optionally filtered
// by category key, with descriptions rendered to HTML.
func (s *PortfolioService) PublicProjects(categoryKey string) ([]*model.Project, error) {
	var projects []*model.Project
	var err error

	if categoryKey != "" {
		projects, err = s.projectRepository.ByCategory(categoryKey)
	} else {
		projects, err = s.projectRepository.All()
	}
	if err != nil {
		return nil, err
	}

	for _, project := range projects {
		html, renderErr := s.renderer.Render(project.Description)
		if renderErr != nil {
			slog.Warn("failed to render project description", "project_id", project.ID, "error", renderErr)
			continue
		}
		project.DescriptionHTML = html
	}

	return projects, nil
}

func (s *PortfolioService) Project(id string) (*model.Project, error) {
	return s.projectRepository.ByID(id)
}

// Create validates the input, uploads every image, then inserts the record
// referencing the resulting public URLs. If the insert fails after uploads
// succeeded, the uploaded objects are deleted best effort.
func (s *PortfolioService) Create(input ProjectInput, images []*multipart.FileHeader) (*model.Project, error) {
	err := validateProjectInput(input)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, validationError("at least one image is required")
	}
	for _, header := range images {
		err = validation.ValidateFile(header, validation.ImageConstraints)
		if err != nil {
			return nil, validationError(err.Error())
		}
	}

	urls, paths, err := s.uploadImages(images)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Technologies: input.Technologies,
		ImageURLs:    urls,
		DemoURL:      strings.TrimSpace(input.DemoURL),
		Category:     strings.TrimSpace(input.Category),
		Pinned:       input.Pinned,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.projectRepository.Create(project)
	if err != nil {
		// Insert failed after upload: clean up so the bucket doesn't collect orphans
		delErr := s.storage.DeleteMany(storage.BucketProjectImages, paths)
		if delErr != nil {
			slog.Error("failed to clean up uploaded images", "error", delErr)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// Update patches the project's fields by id. Image changes go through
// AddImages/RemoveImage.
func (s *PortfolioService) Update(id string, input ProjectInput) (*model.Project, error) {
	err := validateProjectInput(input)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepository.ByID(id)
	if err != nil {
		return nil, err
	}

	project.Name = strings.TrimSpace(input.Name)
	project.Description = input.Description
	project.Technologies = input.Technologies
	project.DemoURL = strings.TrimSpace(input.DemoURL)
	project.Category = strings.TrimSpace(input.Category)
	project.Pinned = input.Pinned

	err = s.projectRepository.Update(project)
	if err != nil {
		return nil, err
	}

	return project, nil
}

// AddImages uploads additional images and appends their URLs to the project.
// Storage first, then the record patch; no rollback if the patch fails.
func (s *PortfolioService) AddImages(id string, images []*multipart.FileHeader) (*model.Project, error) {
	if len(images) == 0 {
		return nil, validationError("no images supplied")
	}
	for _, header := range images {
		err := validation.ValidateFile(header, validation.ImageConstraints)
		if err != nil {
			return nil, validationError(err.Error())
		}
	}

	project, err := s.projectRepository.ByID(id)
	if err != nil {
		return nil, err
	}

	urls, _, err := s.uploadImages(images)
	if err != nil {
		return nil, err
	}

	project.ImageURLs = append(project.ImageURLs, urls...)
	err = s.projectRepository.Update(project)
	if err != nil {
		return nil, err
	}

	return project, nil
}

// RemoveImage deletes one image object and drops its URL from the project.
func (s *PortfolioService) RemoveImage(id, imageURL string) (*model.Project, error) {
	project, err := s.projectRepository.ByID(id)
	if err != nil {
		return nil, err
	}

	found := false
	remaining := model.StringList{}
	for _, url := range project.ImageURLs {
		if url == imageURL {
			found = true
			continue
		}
		remaining = append(remaining, url)
	}
	if !found {
		return nil, validationError("image does not belong to this project")
	}

	bucket, path, ok := s.storage.PathFromURL(imageURL)
	if ok {
		err = s.storage.Delete(bucket, path)
		if err != nil {
			return nil, fmt.Errorf("failed to remove image from storage: %w", err)
		}
	}

	project.ImageURLs = remaining
	err = s.projectRepository.Update(project)
	if err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes the project's images best effort, then deletes the record.
// The record delete proceeds even if storage removal failed.
func (s *PortfolioService) Delete(id string) error {
	project, err := s.projectRepository.ByID(id)
	if err != nil {
		return err
	}

	paths := []string{}
	for _, url := range project.ImageURLs {
		bucket, path, ok := s.storage.PathFromURL(url)
		if !ok || bucket != storage.BucketProjectImages {
			continue
		}
		paths = append(paths, path)
	}

	if len(paths) > 0 {
		err = s.storage.DeleteMany(storage.BucketProjectImages, paths)
		if err != nil {
			slog.Warn("failed to delete project images from storage", "project_id", id, "error", err)
		}
	}

	return s.projectRepository.Delete(id)
}

func (s *PortfolioService) uploadImages(images []*multipart.FileHeader) (model.StringList, []string, error) {
	urls := model.StringList{}
	paths := []string{}

	for _, header := range images {
		file, err := header.Open()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open image: %w", err)
		}

		path := uuid.New().String() + strings.ToLower(filepath.Ext(header.Filename))
		err = s.storage.Save(storage.BucketProjectImages, path, file)
		_ = file.Close()
		if err != nil {
			// Abandon the batch; objects uploaded so far are cleaned up
			delErr := s.storage.DeleteMany(storage.BucketProjectImages, paths)
			if delErr != nil {
				slog.Error("failed to clean up uploaded images", "error", delErr)
			}
			return nil, nil, fmt.Errorf("failed to upload image: %w", err)
		}

		paths = append(paths, path)
		urls = append(urls, s.storage.PublicURL(storage.BucketProjectImages, path))
	}

	return urls, paths, nil
}

func validateProjectInput(input ProjectInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return validationError("name is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return validationError("description is required")
	}
	return nil
}
