package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somgarh/campaign-backend/internal/middleware"
	"github.com/somgarh/campaign-backend/internal/model"
	"github.com/somgarh/campaign-backend/internal/response"
	"github.com/somgarh/campaign-backend/internal/service"
	"github.com/somgarh/campaign-backend/internal/validator"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	authService  *service.AuthService
	adminService *service.AdminService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, adminService *service.AdminService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		adminService: adminService,
	}
}

// Login godoc
// POST /api/admin/login
// Exchanges email and password for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.adminService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if err := h.authService.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateToken(admin.ID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"admin": admin,
	})
}

// GetProfile godoc
// GET /api/admin/profile
// Returns the authenticated admin.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	admin := middleware.GetAdmin(c)
	if admin == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"admin": admin})
}

// InitAdmin godoc
// POST /api/admin/init
// Upserts the admin account from ADMIN_EMAIL / ADMIN_PASSWORD. Idempotent:
// an existing account gets its password reset to the configured value.
func (h *AuthHandler) InitAdmin(c *gin.Context) {
	admin, created, err := h.adminService.Bootstrap(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrBootstrapUnconfigured) {
			response.Fail(c, http.StatusBadRequest, response.ErrAdminNotInit)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	status := http.StatusOK
	message := "Admin password reset from configured credentials"
	if created {
		status = http.StatusCreated
		message = "Admin account created"
	}
	response.Success(c, status, message, gin.H{"admin": admin})
}
