package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/somgarh/campaign-backend/internal/model"
)

// Unique constraint names from the beneficiary_cards migration. The indexes
// are the authoritative uniqueness guard; the service maps violations to
// domain errors instead of relying on its pre-checks under concurrency.
const (
	ConstraintUniqueID = "beneficiary_cards_unique_id_key"
	ConstraintMobile   = "beneficiary_cards_mobile_key"
)

// BeneficiaryRepository handles beneficiary card data access.
type BeneficiaryRepository struct {
	pool *pgxpool.Pool
}

// NewBeneficiaryRepository creates a new BeneficiaryRepository.
func NewBeneficiaryRepository(pool *pgxpool.Pool) *BeneficiaryRepository {
	return &BeneficiaryRepository{pool: pool}
}

const cardColumns = `id, unique_id, name, father_name, ward_no, village, mobile,
	email, photo_url, photo_public_id, created_at, updated_at`

func scanCard(row pgx.Row) (*model.BeneficiaryCard, error) {
	b := &model.BeneficiaryCard{}
	err := row.Scan(&b.ID, &b.UniqueID, &b.Name, &b.FatherName, &b.WardNo, &b.Village,
		&b.Mobile, &b.Email, &b.PhotoURL, &b.PhotoPublicID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Create inserts a new card row.
func (r *BeneficiaryRepository) Create(ctx context.Context, b *model.BeneficiaryCard) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO beneficiary_cards
		 (unique_id, name, father_name, ward_no, village, mobile, email, photo_url, photo_public_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		b.UniqueID, b.Name, b.FatherName, b.WardNo, b.Village, b.Mobile,
		b.Email, b.PhotoURL, b.PhotoPublicID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// GetByMobile returns the card registered for a mobile number, if any.
func (r *BeneficiaryRepository) GetByMobile(ctx context.Context, mobile string) (*model.BeneficiaryCard, error) {
	return scanCard(r.pool.QueryRow(ctx,
		`SELECT `+cardColumns+` FROM beneficiary_cards WHERE mobile = $1`, mobile))
}

// GetByUniqueID returns the card with the given generated identifier.
func (r *BeneficiaryRepository) GetByUniqueID(ctx context.Context, uniqueID string) (*model.BeneficiaryCard, error) {
	return scanCard(r.pool.QueryRow(ctx,
		`SELECT `+cardColumns+` FROM beneficiary_cards WHERE unique_id = $1`, uniqueID))
}

// GetByID returns a card by database ID.
func (r *BeneficiaryRepository) GetByID(ctx context.Context, id int) (*model.BeneficiaryCard, error) {
	return scanCard(r.pool.QueryRow(ctx,
		`SELECT `+cardColumns+` FROM beneficiary_cards WHERE id = $1`, id))
}

// UniqueIDExists reports whether a generated identifier is already taken.
func (r *BeneficiaryRepository) UniqueIDExists(ctx context.Context, uniqueID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM beneficiary_cards WHERE unique_id = $1)`, uniqueID,
	).Scan(&exists)
	return exists, err
}

// FindByNameMobile matches a card by normalized holder name and exact mobile.
// Both the stored and the supplied name are compared with leading/trailing
// whitespace trimmed, internal whitespace collapsed, and case folded.
func (r *BeneficiaryRepository) FindByNameMobile(ctx context.Context, name, mobile string) (*model.BeneficiaryCard, error) {
	return scanCard(r.pool.QueryRow(ctx,
		`SELECT `+cardColumns+` FROM beneficiary_cards
		 WHERE lower(regexp_replace(btrim(name), '\s+', ' ', 'g')) = lower($1)
		   AND mobile = $2`,
		name, mobile))
}

// GetAll returns all cards, newest first.
func (r *BeneficiaryRepository) GetAll(ctx context.Context) ([]model.BeneficiaryCard, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cardColumns+` FROM beneficiary_cards ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []model.BeneficiaryCard
	for rows.Next() {
		var b model.BeneficiaryCard
		if err := rows.Scan(&b.ID, &b.UniqueID, &b.Name, &b.FatherName, &b.WardNo, &b.Village,
			&b.Mobile, &b.Email, &b.PhotoURL, &b.PhotoPublicID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		cards = append(cards, b)
	}
	return cards, rows.Err()
}

// Delete removes a card.
func (r *BeneficiaryRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM beneficiary_cards WHERE id = $1`, id)
	return err
}

// IsUniqueViolation reports whether err is a unique-constraint violation on
// the named constraint. An empty name matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
