package worker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/somgarh/campaign-backend/internal/config"
	"github.com/somgarh/campaign-backend/internal/storage"
)

// SweepWorker consumes asset_cleanup_queue and retries image deletions that
// failed in the request path. Store deletes are idempotent, so an item that
// was already removed upstream resolves cleanly.
type SweepWorker struct {
	store storage.ImageStore
	rdb   *redis.Client
	log   zerolog.Logger
}

// NewSweepWorker creates a new SweepWorker.
func NewSweepWorker(store storage.ImageStore, rdb *redis.Client, log zerolog.Logger) *SweepWorker {
	return &SweepWorker{
		store: store,
		rdb:   rdb,
		log:   log.With().Str("component", "sweep_worker").Logger(),
	}
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *SweepWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *SweepWorker) processNext(ctx context.Context) {
	queue := config.CacheKey.AssetCleanupQueue()

	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, queue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	publicID := result[1]
	if err := w.store.Delete(ctx, publicID); err != nil {
		w.log.Error().Err(err).
			Str("public_id", publicID).
			Msg("Sweep delete error, retrying in 5s")
		// Push back to queue for retry.
		w.rdb.RPush(ctx, queue, publicID)
		time.Sleep(5 * time.Second)
		return
	}

	w.log.Debug().Str("public_id", publicID).Msg("Swept orphaned asset")
}

// drain processes all remaining items in the queue before shutdown.
func (w *SweepWorker) drain(ctx context.Context) {
	queue := config.CacheKey.AssetCleanupQueue()

	drained := 0
	for {
		publicID, err := w.rdb.LPop(ctx, queue).Result()
		if err != nil {
			break
		}

		if err := w.store.Delete(ctx, publicID); err != nil {
			w.log.Error().Err(err).Str("public_id", publicID).Msg("Drain delete error")
			w.rdb.RPush(ctx, queue, publicID)
			break
		}
		drained++
	}

	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained remaining items")
	}
}
