package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/somgarh/campaign-backend/internal/model"
)

// ContactRepository handles contact message data access.
type ContactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// Create inserts a new contact message.
func (r *ContactRepository) Create(ctx context.Context, c *model.Contact) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, mobile, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, is_read, created_at, updated_at`,
		c.Name, c.Email, c.Mobile, c.Message,
	).Scan(&c.ID, &c.IsRead, &c.CreatedAt, &c.UpdatedAt)
}

// GetAll returns all contact messages, newest first.
func (r *ContactRepository) GetAll(ctx context.Context) ([]model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, mobile, message, is_read, created_at, updated_at
		 FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Mobile, &c.Message,
			&c.IsRead, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// MarkRead flags a message as read and returns the updated row.
func (r *ContactRepository) MarkRead(ctx context.Context, id int) (*model.Contact, error) {
	c := &model.Contact{}
	err := r.pool.QueryRow(ctx,
		`UPDATE contacts SET is_read = TRUE, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, name, email, mobile, message, is_read, created_at, updated_at`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Mobile, &c.Message,
		&c.IsRead, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a message. Reports whether a row was deleted.
func (r *ContactRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
