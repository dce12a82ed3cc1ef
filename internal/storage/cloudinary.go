package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/somgarh/campaign-backend/internal/config"
)

// CloudinaryStore uploads images to the hosted CDN. Assets live under
// <base folder>/<content folder> and are addressed by their public ID.
type CloudinaryStore struct {
	cld        *cloudinary.Cloudinary
	baseFolder string
	maxBytes   int64
}

// NewCloudinaryStore builds a store from the CLOUDINARY_URL credential string.
func NewCloudinaryStore(cfg *config.Config) (*CloudinaryStore, error) {
	if cfg.CloudinaryURL == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL is not set")
	}
	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	return &CloudinaryStore{
		cld:        cld,
		baseFolder: cfg.CloudinaryFolder,
		maxBytes:   cfg.MaxUploadBytes,
	}, nil
}

// Upload sends the file to the CDN and returns its secure URL and public ID.
func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, header *multipart.FileHeader, folder string) (*Asset, error) {
	if _, err := validateHeader(header, s.maxBytes); err != nil {
		return nil, err
	}

	publicID := fmt.Sprintf("upload-%d-%d", time.Now().UnixMilli(), rand.Int63n(1_000_000_000))

	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       s.baseFolder + "/" + folder,
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}

	return &Asset{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

// Delete destroys the asset. A "not found" result is treated as success so
// repeated cleanup attempts stay idempotent.
func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: %s", res.Result)
	}
	return nil
}
