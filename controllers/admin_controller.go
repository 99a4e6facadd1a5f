package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mirkashi/Grazieoutfits/apperrors"
	"github.com/mirkashi/Grazieoutfits/middleware"
	"github.com/mirkashi/Grazieoutfits/models"
	"github.com/mirkashi/Grazieoutfits/services"
)

// LoginRequest is the admin credentials payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest rotates the caller's own password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// AdminController exposes admin authentication and profile management.
type AdminController struct {
	service *services.AuthService
}

// NewAdminController creates a new AdminController.
func NewAdminController(service *services.AuthService) *AdminController {
	return &AdminController{service: service}
}

// Login authenticates an admin and issues a bearer token.
func (ac *AdminController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	token, admin, err := ac.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"admin":   publicAdmin(admin),
	})
}

// CreateAdmin registers an admin account. Open only while no admin exists;
// afterwards it requires an authenticated admin.
func (ac *AdminController) CreateAdmin(c *gin.Context) {
	var req services.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	_, authenticated := middleware.AdminFromContext(c)

	admin, err := ac.service.CreateAdmin(c.Request.Context(), req, authenticated)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin created successfully",
		"admin":   publicAdmin(admin),
	})
}

// GetProfile returns the authenticated admin's own record.
func (ac *AdminController) GetProfile(c *gin.Context) {
	caller, ok := middleware.AdminFromContext(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	admin, err := ac.service.GetProfile(c.Request.Context(), caller.ID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": admin})
}

// ChangePassword rotates the authenticated admin's password after
// re-verifying the current one.
func (ac *AdminController) ChangePassword(c *gin.Context) {
	caller, ok := middleware.AdminFromContext(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := ac.service.ChangePassword(c.Request.Context(), caller.ID, req.CurrentPassword, req.NewPassword); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated successfully"})
}

func publicAdmin(admin *models.Admin) gin.H {
	return gin.H{
		"id":       admin.ID.Hex(),
		"username": admin.Username,
		"email":    admin.Email,
		"role":     admin.Role,
	}
}
