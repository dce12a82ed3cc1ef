package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somgarh/campaign-backend/internal/model"
	"github.com/somgarh/campaign-backend/internal/response"
	"github.com/somgarh/campaign-backend/internal/service"
	"github.com/somgarh/campaign-backend/internal/validator"
)

// HeroHandler handles the homepage banner singleton.
type HeroHandler struct {
	heroService *service.HeroService
}

// NewHeroHandler creates a new HeroHandler.
func NewHeroHandler(heroService *service.HeroService) *HeroHandler {
	return &HeroHandler{heroService: heroService}
}

// Get godoc
// GET /api/hero
// Returns the banner, creating it with defaults on first read.
func (h *HeroHandler) Get(c *gin.Context) {
	hero, err := h.heroService.Get(c.Request.Context())
	if err != nil {
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", hero)
}

// Update godoc
// PUT /api/hero
// Partially updates the banner. A "heroImage" upload replaces the image.
func (h *HeroHandler) Update(c *gin.Context) {
	var req model.UpdateHeroRequest
	if fields := validator.BindForm(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	file, header, err := openFormFile(c, "heroImage")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}
	if file != nil {
		defer file.Close()
	}

	hero, err := h.heroService.Update(c.Request.Context(), &req, file, header)
	if err != nil {
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Hero content updated", hero)
}
