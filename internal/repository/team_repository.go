package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/somgarh/campaign-backend/internal/model"
)

// TeamRepository handles team roster data access.
type TeamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

// Create inserts a new team member.
func (r *TeamRepository) Create(ctx context.Context, m *model.TeamMember) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO team_members (name, mobile, position, display_order, image_url, image_public_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		m.Name, m.Mobile, m.Position, m.DisplayOrder, m.ImageURL, m.ImagePublicID,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

// GetAll returns the roster ordered for display.
func (r *TeamRepository) GetAll(ctx context.Context) ([]model.TeamMember, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, mobile, position, display_order, image_url, image_public_id, created_at, updated_at
		 FROM team_members ORDER BY display_order ASC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []model.TeamMember
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Mobile, &m.Position, &m.DisplayOrder,
			&m.ImageURL, &m.ImagePublicID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// GetByID retrieves a single team member.
func (r *TeamRepository) GetByID(ctx context.Context, id int) (*model.TeamMember, error) {
	m := &model.TeamMember{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, mobile, position, display_order, image_url, image_public_id, created_at, updated_at
		 FROM team_members WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Mobile, &m.Position, &m.DisplayOrder,
		&m.ImageURL, &m.ImagePublicID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Update persists the full member row.
func (r *TeamRepository) Update(ctx context.Context, m *model.TeamMember) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE team_members
		 SET name = $1, mobile = $2, position = $3, display_order = $4,
		     image_url = $5, image_public_id = $6, updated_at = NOW()
		 WHERE id = $7`,
		m.Name, m.Mobile, m.Position, m.DisplayOrder, m.ImageURL, m.ImagePublicID, m.ID)
	return err
}

// Delete removes a team member.
func (r *TeamRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	return err
}
