package model

import "time"

// BeneficiaryCard is a self-registered membership card. The unique ID is
// twelve random digits grouped as XXX-XXX-XXX-XXX and never reused; at most
// one card exists per mobile number.
type BeneficiaryCard struct {
	ID            int       `json:"id"`
	UniqueID      string    `json:"unique_id"`
	Name          string    `json:"name"`
	FatherName    string    `json:"father_name,omitempty"`
	WardNo        string    `json:"ward_no"`
	Village       string    `json:"village"`
	Mobile        string    `json:"mobile"`
	Email         string    `json:"email,omitempty"`
	PhotoURL      string    `json:"photo"`
	PhotoPublicID string    `json:"photo_public_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateBeneficiaryCardRequest is the multipart form payload for
// self-registration. The photo file arrives under the "photo" field.
type CreateBeneficiaryCardRequest struct {
	Name       string `form:"name" binding:"required,max=100"`
	FatherName string `form:"father_name" binding:"omitempty,max=100"`
	WardNo     string `form:"ward_no" binding:"required,max=20"`
	Village    string `form:"village" binding:"required,max=100"`
	Mobile     string `form:"mobile" binding:"required,max=20"`
	Email      string `form:"email" binding:"omitempty,email,max=255"`
}

// VerifyCardRequest looks up an existing card by holder name and mobile.
type VerifyCardRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Mobile string `json:"mobile" binding:"required,max=20"`
}
