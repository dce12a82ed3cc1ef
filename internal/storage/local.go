package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/somgarh/campaign-backend/internal/config"
)

// LocalStore writes uploads to the local filesystem. URLs are relative
// (/uploads/<folder>/<name>) and served statically by the router. Used for
// development and as the legacy pre-CDN storage path.
type LocalStore struct {
	dir      string
	maxBytes int64
}

// NewLocalStore creates a store rooted at the configured upload directory.
func NewLocalStore(cfg *config.Config) *LocalStore {
	return &LocalStore{dir: cfg.UploadDir, maxBytes: cfg.MaxUploadBytes}
}

// Upload saves the file under a UUID filename and returns its relative URL.
// The public ID is the folder-qualified filename, mirroring CDN addressing.
func (s *LocalStore) Upload(ctx context.Context, file io.Reader, header *multipart.FileHeader, folder string) (*Asset, error) {
	ext, err := validateHeader(header, s.maxBytes)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Join(s.dir, folder), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	filename := uuid.New().String() + ext
	destPath := filepath.Join(s.dir, folder, filename)

	dst, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}

	return &Asset{
		URL:      "/uploads/" + folder + "/" + filename,
		PublicID: folder + "/" + filename,
	}, nil
}

// Delete removes the file. A missing file is treated as already deleted.
func (s *LocalStore) Delete(ctx context.Context, publicID string) error {
	// Reject path escapes; public IDs are always <folder>/<uuid>.<ext>.
	if strings.Contains(publicID, "..") {
		return fmt.Errorf("invalid public id: %s", publicID)
	}
	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(publicID)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
