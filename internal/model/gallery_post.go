package model

import "time"

// MaxGalleryImages caps the number of images accepted per post.
const MaxGalleryImages = 10

// GalleryPost is a dated multi-image post with description and optional
// external link. Images keep their upload order.
type GalleryPost struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Images       []string  `json:"images"`
	FacebookLink string    `json:"facebook_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateGalleryPostRequest is the multipart form payload for a new post.
// Image files arrive under the "images" field (1-10 required).
type CreateGalleryPostRequest struct {
	Title        string `form:"title" binding:"required,max=200"`
	Description  string `form:"description" binding:"required,max=5000"`
	FacebookLink string `form:"facebook_link" binding:"omitempty,url,max=500"`
}

// UpdateGalleryPostRequest carries partial updates. A fresh "images" upload
// replaces the entire list; there is no partial add/remove.
type UpdateGalleryPostRequest struct {
	Title        string `form:"title" binding:"omitempty,max=200"`
	Description  string `form:"description" binding:"omitempty,max=5000"`
	FacebookLink string `form:"facebook_link" binding:"omitempty,url,max=500"`
}
