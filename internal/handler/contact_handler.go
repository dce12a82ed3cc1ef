package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somgarh/campaign-backend/internal/model"
	"github.com/somgarh/campaign-backend/internal/response"
	"github.com/somgarh/campaign-backend/internal/service"
	"github.com/somgarh/campaign-backend/internal/validator"
)

// ContactHandler handles the public contact form and its admin inbox.
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Create godoc
// POST /api/contact
// Accepts a public contact form submission.
func (h *ContactHandler) Create(c *gin.Context) {
	var req model.CreateContactRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	contact, err := h.contactService.Create(c.Request.Context(), &req)
	if err != nil {
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent successfully", contact)
}

// List godoc
// GET /api/contact
// Returns all messages, newest first. Admin only.
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.GetAll(c.Request.Context())
	if err != nil {
		failFromServiceError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, contacts, len(contacts))
}

// MarkRead godoc
// PUT /api/contact/:id/read
// Marks a message as read. Admin only.
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	contact, err := h.contactService.MarkRead(c.Request.Context(), id)
	if err != nil {
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Message marked as read", contact)
}

// Delete godoc
// DELETE /api/contact/:id
// Removes a message. Admin only.
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Message deleted", nil)
}
