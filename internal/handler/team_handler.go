package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somgarh/campaign-backend/internal/model"
	"github.com/somgarh/campaign-backend/internal/response"
	"github.com/somgarh/campaign-backend/internal/service"
	"github.com/somgarh/campaign-backend/internal/validator"
)

// TeamHandler handles the public team roster and its admin CRUD.
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// openFormFile opens a single multipart file field. A missing field is
// reported as (nil, nil, nil) so callers can treat the upload as optional.
func openFormFile(c *gin.Context, field string) (io.ReadCloser, *multipart.FileHeader, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return f, header, nil
}

// List godoc
// GET /api/team
// Returns all members ordered by display order.
func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.teamService.GetAll(c.Request.Context())
	if err != nil {
		failFromServiceError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, members, len(members))
}

// Create godoc
// POST /api/team
// Creates a member from a multipart form. The "image" file is required.
func (h *TeamHandler) Create(c *gin.Context) {
	var req model.CreateTeamMemberRequest
	if fields := validator.BindForm(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	file, header, err := openFormFile(c, "image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}
	if file == nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	member, err := h.teamService.Create(c.Request.Context(), &req, file, header)
	if err != nil {
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Team member created", member)
}

// Update godoc
// PUT /api/team/:id
// Partially updates a member. A fresh "image" upload replaces the photo.
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateTeamMemberRequest
	if fields := validator.BindForm(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	file, header, err := openFormFile(c, "image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}
	if file != nil {
		defer file.Close()
	}

	member, err := h.teamService.Update(c.Request.Context(), id, &req, file, header)
	if err != nil {
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Team member updated", member)
}

// Delete godoc
// DELETE /api/team/:id
// Removes a member and their stored image.
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), id); err != nil {
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Team member deleted", nil)
}
