package service

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/somgarh/campaign-backend/internal/config"
	"github.com/somgarh/campaign-backend/internal/storage"
)

// CleanupService deletes stored image assets on a best-effort basis. A
// failed deletion never fails the caller's operation: the public ID is
// logged and queued for the sweep worker to retry out-of-band.
type CleanupService struct {
	store storage.ImageStore
	rdb   *redis.Client
	log   zerolog.Logger
}

// NewCleanupService creates a new CleanupService.
func NewCleanupService(store storage.ImageStore, rdb *redis.Client, log zerolog.Logger) *CleanupService {
	return &CleanupService{
		store: store,
		rdb:   rdb,
		log:   log.With().Str("component", "cleanup_service").Logger(),
	}
}

// DeleteBestEffort attempts to delete the asset now, queueing it for the
// sweep worker when the store rejects the call. Safe to call with "".
func (s *CleanupService) DeleteBestEffort(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}

	if err := s.store.Delete(ctx, publicID); err == nil {
		return
	} else {
		s.log.Warn().Err(err).Str("public_id", publicID).Msg("Asset delete failed, queueing for sweep")
	}

	if err := s.rdb.RPush(ctx, config.CacheKey.AssetCleanupQueue(), publicID).Err(); err != nil {
		// Queue unavailable too. The asset stays orphaned; nothing else to do.
		s.log.Error().Err(err).Str("public_id", publicID).Msg("Failed to queue asset for cleanup")
	}
}
