package model

import "time"

// DefaultPosition is assigned when a team member is created without one.
const DefaultPosition = "Team Member"

// TeamMember is a roster entry shown on the public Team page.
type TeamMember struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Mobile        string    `json:"mobile"`
	Position      string    `json:"position"`
	ImageURL      string    `json:"image"`
	ImagePublicID string    `json:"image_public_id,omitempty"`
	DisplayOrder  int       `json:"order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateTeamMemberRequest is the multipart form payload for creating a member.
// The image file arrives separately under the "image" field.
type CreateTeamMemberRequest struct {
	Name     string `form:"name" binding:"required,max=100"`
	Mobile   string `form:"mobile" binding:"required,max=20"`
	Position string `form:"position" binding:"omitempty,max=100"`
	Order    int    `form:"order" binding:"omitempty,min=0"`
}

// UpdateTeamMemberRequest carries partial updates. Empty strings leave the
// stored value unchanged; Order is a pointer so zero can be set explicitly.
type UpdateTeamMemberRequest struct {
	Name     string `form:"name" binding:"omitempty,max=100"`
	Mobile   string `form:"mobile" binding:"omitempty,max=20"`
	Position string `form:"position" binding:"omitempty,max=100"`
	Order    *int   `form:"order" binding:"omitempty,min=0"`
}
