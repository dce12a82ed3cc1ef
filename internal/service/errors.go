package service

import (
	"errors"

	"github.com/somgarh/campaign-backend/internal/model"
)

// Common service errors.
var (
	ErrNotFound               = errors.New("resource not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrBootstrapUnconfigured  = errors.New("bootstrap admin credentials not configured")
	ErrCardMobileMismatch     = errors.New("mobile does not match card")
	ErrNoImagesProvided       = errors.New("at least one image is required")
	ErrTooManyImages          = errors.New("too many images")
	ErrUniqueIDGenerationFail = errors.New("could not generate a unique card id")
)

// DuplicateCardError signals that a card already exists for a mobile number.
// It carries the existing card so the API can point the caller at it.
type DuplicateCardError struct {
	Existing *model.BeneficiaryCard
}

func (e *DuplicateCardError) Error() string {
	return "a card is already registered for this mobile number"
}
