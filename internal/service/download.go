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

// DownloadService manages the downloads catalog and its files in storage.
type DownloadService struct {
	downloadRepository repository.DownloadRepository
	storage            storage.Storage
}

func NewDownloadService(downloadRepository repository.DownloadRepository, storage storage.Storage) *DownloadService {
	return &DownloadService{
		downloadRepository: downloadRepository,
		storage:            storage,
	}
}

type DownloadInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (s *DownloadService) Downloads() ([]*model.Download, error) {
	return s.downloadRepository.All()
}

// Create uploads the file, then inserts the catalog record. The size label
// and type tag are derived from the upload (extension-based, no sniffing).
func (s *DownloadService) Create(input DownloadInput, header *multipart.FileHeader) (*model.Download, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, validationError("title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, validationError("description is required")
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, validationError("category is required")
	}
	if header == nil {
		return nil, validationError("file is required")
	}

	err := validation.ValidateFile(header, validation.ArchiveConstraints)
	if err != nil {
		return nil, validationError(err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := uuid.New().String() + ext

	err = s.storage.Save(storage.BucketDownloads, path, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	download := &model.Download{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    strings.TrimSpace(input.Category),
		FileSize:    fmt.Sprintf("%.1f MB", float64(header.Size)/(1<<20)),
		FileType:    strings.ToUpper(strings.TrimPrefix(ext, ".")),
		FileURL:     s.storage.PublicURL(storage.BucketDownloads, path),
		CreatedAt:   time.Now().UTC(),
	}

	err = s.downloadRepository.Create(download)
	if err != nil {
		// Insert failed after upload: remove the orphan
		delErr := s.storage.Delete(storage.BucketDownloads, path)
		if delErr != nil {
			slog.Error("failed to clean up uploaded file", "path", path, "error", delErr)
		}
		return nil, fmt.Errorf("failed to create download: %w", err)
	}

	return download, nil
}

// Delete removes the file best effort, then deletes the record.
func (s *DownloadService) Delete(id string) error {
	download, err := s.downloadRepository.ByID(id)
	if err != nil {
		return err
	}

	bucket, path, ok := s.storage.PathFromURL(download.FileURL)
	if ok {
		err = s.storage.Delete(bucket, path)
		if err != nil {
			slog.Warn("failed to delete file from storage", "download_id", id, "error", err)
		}
	}

	return s.downloadRepository.Delete(id)
}
