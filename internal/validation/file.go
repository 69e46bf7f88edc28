package validation

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// FileConstraints defines validation rules for file uploads.
type FileConstraints struct {
	AllowedExtensions map[string]bool
	MaxSize           int64
}

var (
	// ImageConstraints covers project gallery uploads.
	ImageConstraints = FileConstraints{
		AllowedExtensions: map[string]bool{
			".jpg":  true,
			".jpeg": true,
			".png":  true,
			".webp": true,
		},
		MaxSize: 5 << 20, // 5MB
	}

	// ArchiveConstraints covers the downloads catalog (.zip/.apk bundles).
	ArchiveConstraints = FileConstraints{
		AllowedExtensions: map[string]bool{
			".zip": true,
			".apk": true,
		},
		MaxSize: 100 << 20, // 100MB
	}

	// AttachmentConstraints covers order-form attachments.
	AttachmentConstraints = FileConstraints{
		AllowedExtensions: map[string]bool{
			".jpg":  true,
			".jpeg": true,
			".png":  true,
			".webp": true,
			".pdf":  true,
			".doc":  true,
			".docx": true,
			".zip":  true,
		},
		MaxSize: 10 << 20, // 10MB
	}
)

// ValidateFile validates a file upload against one or more constraint sets.
// If multiple constraints are provided, the file must match at least one.
func ValidateFile(header *multipart.FileHeader, constraints ...FileConstraints) error {
	if len(constraints) == 0 {
		return fmt.Errorf("no file constraints provided")
	}

	var lastErr error
	for _, constraint := range constraints {
		err := validateAgainstConstraint(header, constraint)
		if err == nil {
			return nil
		}
		lastErr = err
	}

	return lastErr
}

func validateAgainstConstraint(header *multipart.FileHeader, constraints FileConstraints) error {
	if header.Size > constraints.MaxSize {
		maxMB := constraints.MaxSize / (1 << 20)
		return fmt.Errorf("file too large: maximum size is %d MB", maxMB)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !constraints.AllowedExtensions[ext] {
		return fmt.Errorf("invalid file extension: %s", ext)
	}

	return nil
}
