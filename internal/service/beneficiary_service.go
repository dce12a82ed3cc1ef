package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/somgarh/campaign-backend/internal/model"
	"github.com/somgarh/campaign-backend/internal/repository"
	"github.com/somgarh/campaign-backend/internal/storage"
)

// maxIDAttempts bounds unique-ID regeneration. The space is 9×10^11, so a
// collision twice in a row already means something is wrong.
const maxIDAttempts = 5

// BeneficiaryService handles card self-registration, verification and
// admin management.
type BeneficiaryService struct {
	cardRepo *repository.BeneficiaryRepository
	store    storage.ImageStore
	cleanup  *CleanupService
	log      zerolog.Logger
}

// NewBeneficiaryService creates a new BeneficiaryService.
func NewBeneficiaryService(cardRepo *repository.BeneficiaryRepository, store storage.ImageStore, cleanup *CleanupService, log zerolog.Logger) *BeneficiaryService {
	return &BeneficiaryService{
		cardRepo: cardRepo,
		store:    store,
		cleanup:  cleanup,
		log:      log.With().Str("component", "beneficiary_service").Logger(),
	}
}

// GenerateUniqueID returns a random 12-digit identifier grouped as
// XXX-XXX-XXX-XXX. The leading digit is never zero.
func GenerateUniqueID() string {
	n := 100_000_000_000 + rand.Int63n(900_000_000_000)
	s := fmt.Sprintf("%012d", n)
	return s[0:3] + "-" + s[3:6] + "-" + s[6:9] + "-" + s[9:12]
}

// NormalizeName trims a holder name and collapses internal whitespace runs
// to single spaces. Case folding happens at comparison time.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// Create registers a new card. The photo is uploaded first; if a card
// already exists for the mobile number the fresh upload is deleted again and
// a DuplicateCardError carrying the existing card is returned. The mobile
// unique index is the authoritative guard; a constraint violation from a
// concurrent registration maps to the same conflict.
func (s *BeneficiaryService) Create(ctx context.Context, req *model.CreateBeneficiaryCardRequest, photo io.Reader, header *multipart.FileHeader) (*model.BeneficiaryCard, error) {
	asset, err := s.store.Upload(ctx, photo, header, storage.FolderBeneficiaries)
	if err != nil {
		return nil, err
	}

	// Pre-check keeps the common duplicate path cheap and lets us return
	// the existing card; the DB index closes the race.
	if existing, err := s.cardRepo.GetByMobile(ctx, req.Mobile); err == nil {
		s.cleanup.DeleteBestEffort(ctx, asset.PublicID)
		return nil, &DuplicateCardError{Existing: existing}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		s.cleanup.DeleteBestEffort(ctx, asset.PublicID)
		return nil, err
	}

	card := &model.BeneficiaryCard{
		Name:          strings.TrimSpace(req.Name),
		FatherName:    strings.TrimSpace(req.FatherName),
		WardNo:        strings.TrimSpace(req.WardNo),
		Village:       strings.TrimSpace(req.Village),
		Mobile:        strings.TrimSpace(req.Mobile),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		PhotoURL:      asset.URL,
		PhotoPublicID: asset.PublicID,
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		card.UniqueID = GenerateUniqueID()

		if taken, err := s.cardRepo.UniqueIDExists(ctx, card.UniqueID); err != nil {
			s.cleanup.DeleteBestEffort(ctx, asset.PublicID)
			return nil, err
		} else if taken {
			continue
		}

		err := s.cardRepo.Create(ctx, card)
		if err == nil {
			return card, nil
		}
		if repository.IsUniqueViolation(err, repository.ConstraintUniqueID) {
			continue // Lost the race on the generated ID; roll again.
		}
		if repository.IsUniqueViolation(err, repository.ConstraintMobile) {
			s.cleanup.DeleteBestEffort(ctx, asset.PublicID)
			existing, lookupErr := s.cardRepo.GetByMobile(ctx, req.Mobile)
			if lookupErr != nil {
				return nil, lookupErr
			}
			return nil, &DuplicateCardError{Existing: existing}
		}
		s.cleanup.DeleteBestEffort(ctx, asset.PublicID)
		return nil, err
	}

	s.cleanup.DeleteBestEffort(ctx, asset.PublicID)
	return nil, ErrUniqueIDGenerationFail
}

// Verify looks up a card by holder name and mobile. The name comparison is
// case-insensitive with whitespace normalized on both sides; the mobile
// comparison is deliberately a strict equality.
func (s *BeneficiaryService) Verify(ctx context.Context, req *model.VerifyCardRequest) (*model.BeneficiaryCard, error) {
	name := NormalizeName(req.Name)
	mobile := strings.TrimSpace(req.Mobile)
	if name == "" || mobile == "" {
		return nil, ErrNotFound
	}

	card, err := s.cardRepo.FindByNameMobile(ctx, name, mobile)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return card, err
}

// GetForDownload fetches a card for rendering. The supplied mobile must
// match the stored one; a mismatch is indistinguishable from a missing card.
func (s *BeneficiaryService) GetForDownload(ctx context.Context, uniqueID, mobile string) (*model.BeneficiaryCard, error) {
	card, err := s.cardRepo.GetByUniqueID(ctx, uniqueID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if card.Mobile != strings.TrimSpace(mobile) {
		return nil, ErrNotFound
	}
	return card, nil
}

// GetAll returns all cards, newest first.
func (s *BeneficiaryService) GetAll(ctx context.Context) ([]model.BeneficiaryCard, error) {
	return s.cardRepo.GetAll(ctx)
}

// Delete removes the stored photo (best-effort) and then the card row.
func (s *BeneficiaryService) Delete(ctx context.Context, id int) error {
	card, err := s.cardRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	s.cleanup.DeleteBestEffort(ctx, card.PhotoPublicID)
	return s.cardRepo.Delete(ctx, id)
}
