package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somgarh/campaign-backend/internal/model"
	"github.com/somgarh/campaign-backend/internal/response"
	"github.com/somgarh/campaign-backend/internal/service"
	"github.com/somgarh/campaign-backend/internal/validator"
)

// GalleryHandler handles public gallery reads and admin post management.
type GalleryHandler struct {
	galleryService *service.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// formFiles returns the multipart files under the "images" field.
func formFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}

// List godoc
// GET /api/gallery
// Returns all posts, newest first.
func (h *GalleryHandler) List(c *gin.Context) {
	posts, err := h.galleryService.GetAll(c.Request.Context())
	if err != nil {
		failFromServiceError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, posts, len(posts))
}

// Get godoc
// GET /api/gallery/:id
// Returns a single post.
func (h *GalleryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	post, err := h.galleryService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", post)
}

// Create godoc
// POST /api/gallery
// Creates a post from a multipart form with 1-10 "images" files.
func (h *GalleryHandler) Create(c *gin.Context) {
	var req model.CreateGalleryPostRequest
	if fields := validator.BindForm(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	post, err := h.galleryService.Create(c.Request.Context(), &req, formFiles(c))
	if err != nil {
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Gallery post created", post)
}

// Update godoc
// PUT /api/gallery/:id
// Partially updates a post. A fresh "images" upload replaces the whole set.
func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateGalleryPostRequest
	if fields := validator.BindForm(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	post, err := h.galleryService.Update(c.Request.Context(), id, &req, formFiles(c))
	if err != nil {
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Gallery post updated", post)
}

// Delete godoc
// DELETE /api/gallery/:id
// Removes a post and all its stored images.
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.galleryService.Delete(c.Request.Context(), id); err != nil {
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Gallery post deleted", nil)
}
