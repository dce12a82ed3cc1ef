package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/somgarh/campaign-backend/internal/config"
	"github.com/somgarh/campaign-backend/internal/model"
	"github.com/somgarh/campaign-backend/internal/repository"
	"github.com/somgarh/campaign-backend/internal/storage"
)

// heroCacheTTL bounds staleness if an invalidation is ever lost.
const heroCacheTTL = time.Hour

// HeroService handles the homepage banner singleton. Reads go through a
// Redis cache that is invalidated on every update.
type HeroService struct {
	heroRepo *repository.HeroRepository
	store    storage.ImageStore
	cleanup  *CleanupService
	rdb      *redis.Client
	log      zerolog.Logger
}

// NewHeroService creates a new HeroService.
func NewHeroService(heroRepo *repository.HeroRepository, store storage.ImageStore, cleanup *CleanupService, rdb *redis.Client, log zerolog.Logger) *HeroService {
	return &HeroService{
		heroRepo: heroRepo,
		store:    store,
		cleanup:  cleanup,
		rdb:      rdb,
		log:      log.With().Str("component", "hero_service").Logger(),
	}
}

// Get returns the singleton, creating it with defaults on first read.
func (s *HeroService) Get(ctx context.Context) (*model.HeroContent, error) {
	key := config.CacheKey.HeroContentKey()

	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		hero := &model.HeroContent{}
		if err := json.Unmarshal([]byte(raw), hero); err == nil {
			return hero, nil
		}
		// Corrupt cache entry; fall through to the database.
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Hero cache read failed")
	}

	hero, err := s.heroRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(hero); err == nil {
		if err := s.rdb.Set(ctx, key, raw, heroCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Hero cache write failed")
		}
	}
	return hero, nil
}

// Update applies partial text changes and an optional replacement image,
// then invalidates the cache. The previous image is deleted best-effort
// after the new upload is accepted.
func (s *HeroService) Update(ctx context.Context, req *model.UpdateHeroRequest, file io.Reader, header *multipart.FileHeader) (*model.HeroContent, error) {
	hero, err := s.heroRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		hero.Title = req.Title
	}
	if req.Subtitle != "" {
		hero.Subtitle = req.Subtitle
	}
	if req.Description != "" {
		hero.Description = req.Description
	}

	if header != nil {
		asset, err := s.store.Upload(ctx, file, header, storage.FolderHero)
		if err != nil {
			return nil, err
		}
		s.cleanup.DeleteBestEffort(ctx, hero.HeroImagePublicID)
		hero.HeroImageURL = asset.URL
		hero.HeroImagePublicID = asset.PublicID
	}

	if err := s.heroRepo.Update(ctx, hero); err != nil {
		return nil, err
	}

	if err := s.rdb.Del(ctx, config.CacheKey.HeroContentKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Hero cache invalidation failed")
	}
	return hero, nil
}
