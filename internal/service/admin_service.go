package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/somgarh/campaign-backend/internal/config"
	"github.com/somgarh/campaign-backend/internal/model"
	"github.com/somgarh/campaign-backend/internal/repository"
)

// AdminService handles admin account lookup and bootstrap.
type AdminService struct {
	adminRepo *repository.AdminRepository
	auth      *AuthService
	cfg       *config.Config
	log       zerolog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo *repository.AdminRepository, auth *AuthService, cfg *config.Config, log zerolog.Logger) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		auth:      auth,
		cfg:       cfg,
		log:       log.With().Str("component", "admin_service").Logger(),
	}
}

// GetByID retrieves an admin, mapping a missing row to ErrNotFound.
func (s *AdminService) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return admin, err
}

// GetByEmail retrieves an admin by email, mapping a missing row to ErrNotFound.
func (s *AdminService) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return admin, err
}

// Bootstrap upserts the admin account from the configured credentials: if an
// admin with the email exists its password is reset, otherwise one is
// created. Idempotent; intended for one-time setup and the init-admin CLI.
func (s *AdminService) Bootstrap(ctx context.Context) (*model.Admin, bool, error) {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		return nil, false, ErrBootstrapUnconfigured
	}
	return s.BootstrapWith(ctx, s.cfg.AdminEmail, s.cfg.AdminPassword, "Initial Admin")
}

// BootstrapWith upserts an admin with explicit credentials.
func (s *AdminService) BootstrapWith(ctx context.Context, email, password, name string) (*model.Admin, bool, error) {
	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, false, err
	}

	admin := &model.Admin{Email: email, Name: name, PasswordHash: hash}
	created, err := s.adminRepo.Upsert(ctx, admin)
	if err != nil {
		return nil, false, err
	}

	if created {
		s.log.Info().Str("email", email).Msg("Bootstrap admin created")
	} else {
		s.log.Info().Str("email", email).Msg("Bootstrap admin password reset")
	}
	return admin, created, nil
}
