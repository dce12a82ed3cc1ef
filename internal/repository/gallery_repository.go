package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/somgarh/campaign-backend/internal/model"
)

// GalleryRepository handles gallery post data access.
type GalleryRepository struct {
	pool *pgxpool.Pool
}

// NewGalleryRepository creates a new GalleryRepository.
func NewGalleryRepository(pool *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{pool: pool}
}

// Create inserts a new post. Image order is preserved by the text[] column.
func (r *GalleryRepository) Create(ctx context.Context, p *model.GalleryPost) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO gallery_posts (title, description, images, facebook_link)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Description, p.Images, p.FacebookLink,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// GetAll returns all posts, newest first.
func (r *GalleryRepository) GetAll(ctx context.Context) ([]model.GalleryPost, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, images, facebook_link, created_at, updated_at
		 FROM gallery_posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []model.GalleryPost
	for rows.Next() {
		var p model.GalleryPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Images,
			&p.FacebookLink, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetByID retrieves a single post.
func (r *GalleryRepository) GetByID(ctx context.Context, id int) (*model.GalleryPost, error) {
	p := &model.GalleryPost{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, images, facebook_link, created_at, updated_at
		 FROM gallery_posts WHERE id = $1`, id,
	).Scan(&p.ID, &p.Title, &p.Description, &p.Images,
		&p.FacebookLink, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update persists the full post row.
func (r *GalleryRepository) Update(ctx context.Context, p *model.GalleryPost) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE gallery_posts
		 SET title = $1, description = $2, images = $3, facebook_link = $4, updated_at = NOW()
		 WHERE id = $5`,
		p.Title, p.Description, p.Images, p.FacebookLink, p.ID)
	return err
}

// Delete removes a post.
func (r *GalleryRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM gallery_posts WHERE id = $1`, id)
	return err
}
