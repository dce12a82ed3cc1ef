package model

import "time"

// Default hero banner copy, applied when the singleton row is first created.
const (
	DefaultHeroTitle       = "अभिषेक सर्राफ – मुखिया प्रत्याशी, ग्राम पंचायत राज सोमगढ़"
	DefaultHeroSubtitle    = "विकास की नई पहचान – ईमानदार नेतृत्व, जनसेवा हमारा धर्म"
	DefaultHeroDescription = "आप सभी के प्यार और आशीर्वाद से हम इस पंचायत के सर्वांगीण विकास के लिए दृढ़ संकल्पित हैं।"
)

// HeroContent is the homepage banner. Exactly one row exists (id = 1); it is
// created with defaults on first read and only ever updated.
type HeroContent struct {
	ID                int       `json:"id"`
	Title             string    `json:"title"`
	Subtitle          string    `json:"subtitle"`
	Description       string    `json:"description"`
	HeroImageURL      string    `json:"hero_image"`
	HeroImagePublicID string    `json:"hero_image_public_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UpdateHeroRequest carries partial banner updates. The replacement image
// arrives under the "heroImage" multipart field.
type UpdateHeroRequest struct {
	Title       string `form:"title" binding:"omitempty,max=300"`
	Subtitle    string `form:"subtitle" binding:"omitempty,max=300"`
	Description string `form:"description" binding:"omitempty,max=2000"`
}
