package service

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/somgarh/campaign-backend/internal/card"
	"github.com/somgarh/campaign-backend/internal/config"
	"github.com/somgarh/campaign-backend/internal/model"
)

const (
	cardCacheTTL      = 10 * time.Minute
	photoFetchTimeout = 10 * time.Second
)

// CardService renders downloadable card artifacts and caches the results.
type CardService struct {
	renderer *card.Renderer
	rdb      *redis.Client
	client   *http.Client
	baseURL  string
	log      zerolog.Logger
}

// NewCardService creates a CardService. baseURL resolves relative photo URLs
// produced by the local storage driver.
func NewCardService(renderer *card.Renderer, rdb *redis.Client, baseURL string, log zerolog.Logger) *CardService {
	return &CardService{
		renderer: renderer,
		rdb:      rdb,
		client:   &http.Client{Timeout: photoFetchTimeout},
		baseURL:  baseURL,
		log:      log.With().Str("component", "card_service").Logger(),
	}
}

// fetchPhoto downloads and decodes the holder photo. Failures are logged and
// reported as nil so the card renders with a placeholder instead of erroring.
func (s *CardService) fetchPhoto(ctx context.Context, photoURL string) image.Image {
	if photoURL == "" {
		return nil
	}
	if photoURL[0] == '/' {
		if s.baseURL == "" {
			return nil
		}
		photoURL = s.baseURL + photoURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photoURL, nil)
	if err != nil {
		s.log.Warn().Err(err).Str("url", photoURL).Msg("Invalid photo URL")
		return nil
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn().Err(err).Str("url", photoURL).Msg("Failed to fetch holder photo")
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		s.log.Warn().Int("status", resp.StatusCode).Str("url", photoURL).Msg("Photo fetch returned non-OK status")
		return nil
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		s.log.Warn().Err(err).Str("url", photoURL).Msg("Failed to decode holder photo")
		return nil
	}
	return img
}

// renderPanels produces both panels, front and back in parallel.
func (s *CardService) renderPanels(ctx context.Context, c *model.BeneficiaryCard) (front, back image.Image, err error) {
	photo := s.fetchPhoto(ctx, c.PhotoURL)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var rerr error
		front, rerr = s.renderer.RenderFront(c, photo)
		return rerr
	})
	g.Go(func() error {
		var rerr error
		back, rerr = s.renderer.RenderBack()
		return rerr
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("render card panels: %w", err)
	}
	return front, back, nil
}

// RenderPNG returns the stacked two-panel PNG for a card.
func (s *CardService) RenderPNG(ctx context.Context, c *model.BeneficiaryCard) ([]byte, error) {
	return s.cached(ctx, c, "png", func(front, back image.Image) ([]byte, error) {
		return card.ComposePNG(front, back)
	})
}

// RenderPDF returns the two-page print-size PDF for a card.
func (s *CardService) RenderPDF(ctx context.Context, c *model.BeneficiaryCard) ([]byte, error) {
	return s.cached(ctx, c, "pdf", func(front, back image.Image) ([]byte, error) {
		return card.ComposePDF(front, back)
	})
}

func (s *CardService) cached(ctx context.Context, c *model.BeneficiaryCard, format string, compose func(front, back image.Image) ([]byte, error)) ([]byte, error) {
	key := config.CacheKey.BeneficiaryCardKey(c.UniqueID, format)
	if s.rdb != nil {
		if data, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			return data, nil
		}
	}

	front, back, err := s.renderPanels(ctx, c)
	if err != nil {
		return nil, err
	}
	data, err := compose(front, back)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, key, data, cardCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("Failed to cache rendered card")
		}
	}
	return data, nil
}
