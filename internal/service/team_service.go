package service

import (
	"context"
	"errors"
	"io"
	"mime/multipart"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/somgarh/campaign-backend/internal/model"
	"github.com/somgarh/campaign-backend/internal/repository"
	"github.com/somgarh/campaign-backend/internal/storage"
)

// TeamService handles the public team roster.
type TeamService struct {
	teamRepo *repository.TeamRepository
	store    storage.ImageStore
	cleanup  *CleanupService
	log      zerolog.Logger
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo *repository.TeamRepository, store storage.ImageStore, cleanup *CleanupService, log zerolog.Logger) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		store:    store,
		cleanup:  cleanup,
		log:      log.With().Str("component", "team_service").Logger(),
	}
}

// GetAll returns the roster ordered for display.
func (s *TeamService) GetAll(ctx context.Context) ([]model.TeamMember, error) {
	return s.teamRepo.GetAll(ctx)
}

// Create uploads the member photo and persists the roster entry.
func (s *TeamService) Create(ctx context.Context, req *model.CreateTeamMemberRequest, file io.Reader, header *multipart.FileHeader) (*model.TeamMember, error) {
	asset, err := s.store.Upload(ctx, file, header, storage.FolderTeam)
	if err != nil {
		return nil, err
	}

	position := req.Position
	if position == "" {
		position = model.DefaultPosition
	}

	member := &model.TeamMember{
		Name:          req.Name,
		Mobile:        req.Mobile,
		Position:      position,
		DisplayOrder:  req.Order,
		ImageURL:      asset.URL,
		ImagePublicID: asset.PublicID,
	}
	if err := s.teamRepo.Create(ctx, member); err != nil {
		// Row never landed; don't leave the upload orphaned.
		s.cleanup.DeleteBestEffort(ctx, asset.PublicID)
		return nil, err
	}
	return member, nil
}

// Update applies partial field changes. A new image replaces the stored one;
// the previous asset is deleted only after the new upload is accepted.
func (s *TeamService) Update(ctx context.Context, id int, req *model.UpdateTeamMemberRequest, file io.Reader, header *multipart.FileHeader) (*model.TeamMember, error) {
	member, err := s.teamRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		member.Name = req.Name
	}
	if req.Mobile != "" {
		member.Mobile = req.Mobile
	}
	if req.Position != "" {
		member.Position = req.Position
	}
	if req.Order != nil {
		member.DisplayOrder = *req.Order
	}

	if header != nil {
		asset, err := s.store.Upload(ctx, file, header, storage.FolderTeam)
		if err != nil {
			return nil, err
		}
		s.cleanup.DeleteBestEffort(ctx, member.ImagePublicID)
		member.ImageURL = asset.URL
		member.ImagePublicID = asset.PublicID
	}

	if err := s.teamRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes the stored image (best-effort) and then the roster entry.
func (s *TeamService) Delete(ctx context.Context, id int) error {
	member, err := s.teamRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	s.cleanup.DeleteBestEffort(ctx, member.ImagePublicID)
	return s.teamRepo.Delete(ctx, id)
}
