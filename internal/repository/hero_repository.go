package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/somgarh/campaign-backend/internal/model"
)

// heroRowID pins the singleton. The table carries a CHECK (id = 1).
const heroRowID = 1

// HeroRepository handles the hero banner singleton.
type HeroRepository struct {
	pool *pgxpool.Pool
}

// NewHeroRepository creates a new HeroRepository.
func NewHeroRepository(pool *pgxpool.Pool) *HeroRepository {
	return &HeroRepository{pool: pool}
}

// GetOrCreate returns the singleton row, creating it with defaults on first
// read. The insert is ON CONFLICT DO NOTHING, so two concurrent first reads
// converge on the same row.
func (r *HeroRepository) GetOrCreate(ctx context.Context) (*model.HeroContent, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO hero_contents (id, title, subtitle, description)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		heroRowID, model.DefaultHeroTitle, model.DefaultHeroSubtitle, model.DefaultHeroDescription)
	if err != nil {
		return nil, err
	}

	h := &model.HeroContent{}
	err = r.pool.QueryRow(ctx,
		`SELECT id, title, subtitle, description, hero_image_url, hero_image_public_id, created_at, updated_at
		 FROM hero_contents WHERE id = $1`, heroRowID,
	).Scan(&h.ID, &h.Title, &h.Subtitle, &h.Description,
		&h.HeroImageURL, &h.HeroImagePublicID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Update persists the full singleton row.
func (r *HeroRepository) Update(ctx context.Context, h *model.HeroContent) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE hero_contents
		 SET title = $1, subtitle = $2, description = $3,
		     hero_image_url = $4, hero_image_public_id = $5, updated_at = NOW()
		 WHERE id = $6`,
		h.Title, h.Subtitle, h.Description, h.HeroImageURL, h.HeroImagePublicID, heroRowID)
	return err
}
