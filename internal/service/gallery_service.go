package service

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/somgarh/campaign-backend/internal/model"
	"github.com/somgarh/campaign-backend/internal/repository"
	"github.com/somgarh/campaign-backend/internal/storage"
)

// GalleryService handles multi-image gallery posts.
type GalleryService struct {
	galleryRepo *repository.GalleryRepository
	store       storage.ImageStore
	cleanup     *CleanupService
	log         zerolog.Logger
}

// NewGalleryService creates a new GalleryService.
func NewGalleryService(galleryRepo *repository.GalleryRepository, store storage.ImageStore, cleanup *CleanupService, log zerolog.Logger) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		store:       store,
		cleanup:     cleanup,
		log:         log.With().Str("component", "gallery_service").Logger(),
	}
}

// uploadAll stores every file in order, undoing earlier uploads on failure.
func (s *GalleryService) uploadAll(ctx context.Context, files []*multipart.FileHeader) ([]storage.Asset, error) {
	assets := make([]storage.Asset, 0, len(files))
	for _, header := range files {
		f, err := header.Open()
		if err == nil {
			var asset *storage.Asset
			asset, err = s.store.Upload(ctx, f, header, storage.FolderGallery)
			f.Close()
			if err == nil {
				assets = append(assets, *asset)
				continue
			}
		}
		for _, a := range assets {
			s.cleanup.DeleteBestEffort(ctx, a.PublicID)
		}
		return nil, err
	}
	return assets, nil
}

// Create uploads 1-10 images and persists the post with their URLs in order.
func (s *GalleryService) Create(ctx context.Context, req *model.CreateGalleryPostRequest, files []*multipart.FileHeader) (*model.GalleryPost, error) {
	if len(files) == 0 {
		return nil, ErrNoImagesProvided
	}
	if len(files) > model.MaxGalleryImages {
		return nil, ErrTooManyImages
	}

	assets, err := s.uploadAll(ctx, files)
	if err != nil {
		return nil, err
	}

	post := &model.GalleryPost{
		Title:        req.Title,
		Description:  req.Description,
		FacebookLink: req.FacebookLink,
		Images:       make([]string, 0, len(assets)),
	}
	for _, a := range assets {
		post.Images = append(post.Images, a.URL)
	}

	if err := s.galleryRepo.Create(ctx, post); err != nil {
		for _, a := range assets {
			s.cleanup.DeleteBestEffort(ctx, a.PublicID)
		}
		return nil, err
	}
	return post, nil
}

// GetAll returns all posts, newest first.
func (s *GalleryService) GetAll(ctx context.Context) ([]model.GalleryPost, error) {
	return s.galleryRepo.GetAll(ctx)
}

// GetByID retrieves a single post.
func (s *GalleryService) GetByID(ctx context.Context, id int) (*model.GalleryPost, error) {
	post, err := s.galleryRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return post, err
}

// Update applies partial field changes. A fresh image upload replaces the
// entire list and best-effort-deletes the previous assets; there is no
// partial add/remove.
func (s *GalleryService) Update(ctx context.Context, id int, req *model.UpdateGalleryPostRequest, files []*multipart.FileHeader) (*model.GalleryPost, error) {
	post, err := s.galleryRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Description != "" {
		post.Description = req.Description
	}
	if req.FacebookLink != "" {
		post.FacebookLink = req.FacebookLink
	}

	var newAssets []storage.Asset
	if len(files) > 0 {
		if len(files) > model.MaxGalleryImages {
			return nil, ErrTooManyImages
		}
		newAssets, err = s.uploadAll(ctx, files)
		if err != nil {
			return nil, err
		}

		for _, url := range post.Images {
			s.cleanup.DeleteBestEffort(ctx, storage.PublicIDFromURL(url))
		}

		post.Images = post.Images[:0]
		for _, a := range newAssets {
			post.Images = append(post.Images, a.URL)
		}
	}

	if err := s.galleryRepo.Update(ctx, post); err != nil {
		for _, a := range newAssets {
			s.cleanup.DeleteBestEffort(ctx, a.PublicID)
		}
		return nil, err
	}
	return post, nil
}

// Delete best-effort-deletes every image asset and then the post row.
func (s *GalleryService) Delete(ctx context.Context, id int) error {
	post, err := s.galleryRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	for _, url := range post.Images {
		s.cleanup.DeleteBestEffort(ctx, storage.PublicIDFromURL(url))
	}
	return s.galleryRepo.Delete(ctx, id)
}
