// Package storage abstracts hosted image storage. The database keeps only an
// asset URL plus a public ID; the store is the authority for deletion.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/somgarh/campaign-backend/internal/config"
)

// Sentinel errors for uploads.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

// Upload folders, one per content type.
const (
	FolderBeneficiaries = "beneficiaries"
	FolderTeam          = "team"
	FolderHero          = "hero"
	FolderGallery       = "gallery"
)

// Asset identifies a stored image: the serving URL and the reference used to
// request deletion.
type Asset struct {
	URL      string
	PublicID string
}

// ImageStore uploads and deletes hosted images.
type ImageStore interface {
	Upload(ctx context.Context, file io.Reader, header *multipart.FileHeader, folder string) (*Asset, error)
	Delete(ctx context.Context, publicID string) error
}

// NewStore builds the ImageStore selected by STORAGE_DRIVER.
func NewStore(cfg *config.Config) (ImageStore, error) {
	switch cfg.StorageDriver {
	case "cloudinary":
		return NewCloudinaryStore(cfg)
	case "local":
		return NewLocalStore(cfg), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// allowedMIMETypes maps accepted image content types to file extensions.
var allowedMIMETypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// validateHeader enforces the MIME allow-list and size cap shared by both
// store implementations. Returns the extension for the content type.
func validateHeader(header *multipart.FileHeader, maxBytes int64) (string, error) {
	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedMIMETypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s (allowed: %s)",
			ErrUnsupportedFileType, contentType, strings.Join(allowedTypes(), ", "))
	}
	if maxBytes > 0 && header.Size > maxBytes {
		return "", fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, header.Size, maxBytes)
	}
	return ext, nil
}

func allowedTypes() []string {
	types := make([]string, 0, len(allowedMIMETypes))
	for t := range allowedMIMETypes {
		types = append(types, t)
	}
	return types
}
