package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/somgarh/campaign-backend/internal/model"
	"github.com/somgarh/campaign-backend/internal/repository"
)

// ContactService handles contact form messages.
type ContactService struct {
	contactRepo *repository.ContactRepository
	log         zerolog.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo *repository.ContactRepository, log zerolog.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		log:         log.With().Str("component", "contact_service").Logger(),
	}
}

// Create stores a new message from the public form.
func (s *ContactService) Create(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error) {
	contact := &model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Mobile:  req.Mobile,
		Message: req.Message,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// GetAll returns all messages, newest first.
func (s *ContactService) GetAll(ctx context.Context) ([]model.Contact, error) {
	return s.contactRepo.GetAll(ctx)
}

// MarkRead flags a message as read.
func (s *ContactService) MarkRead(ctx context.Context, id int) (*model.Contact, error) {
	contact, err := s.contactRepo.MarkRead(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return contact, err
}

// Delete removes a message.
func (s *ContactService) Delete(ctx context.Context, id int) error {
	deleted, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
