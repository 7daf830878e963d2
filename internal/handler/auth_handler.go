package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hygienicomfort/shop_api/internal/middleware"
	"github.com/hygienicomfort/shop_api/internal/service"
	"github.com/hygienicomfort/shop_api/internal/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	rateLimiter *middleware.InvalidAuthRateLimiter
	resetBase   string
}

func NewAuthHandler(authService *service.AuthService, rateLimiter *middleware.InvalidAuthRateLimiter, resetBase string) *AuthHandler {
	return &AuthHandler{authService: authService, rateLimiter: rateLimiter, resetBase: resetBase}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if !h.rateLimiter.Allow(c.ClientIP()) {
		utils.Error(c, 429, "TOO_MANY_ATTEMPTS", "Too many login attempts, try again in a minute")
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.Success(c, 200, "Login successful", result)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email      string `json:"email" binding:"required,email"`
		Password   string `json:"password" binding:"required,min=8"`
		FullName   string `json:"fullName" binding:"required"`
		EmployeeID string `json:"employeeId"`
		Role       string `json:"role"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	user, err := h.authService.Register(req.Email, req.Password, req.FullName, req.EmployeeID, req.Role)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.Success(c, 201, "Account created", user)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	link, err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email, h.resetBase)
	if err != nil {
		serviceError(c, err)
		return
	}

	// Same message whether or not the email exists
	utils.Success(c, 200, "If the email is registered, a reset link has been issued", gin.H{
		"resetLink": link,
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		serviceError(c, err)
		return
	}

	utils.Success(c, 200, "Password updated", nil)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=8"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.authService.ChangePassword(c.GetInt("user_id"), req.CurrentPassword, req.NewPassword); err != nil {
		serviceError(c, err)
		return
	}

	utils.Success(c, 200, "Password updated", nil)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.authService.GetProfile(c.GetInt("user_id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Profile retrieved", user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		FullName   string `json:"fullName" binding:"required"`
		EmployeeID string `json:"employeeId"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	user, err := h.authService.UpdateProfile(c.GetInt("user_id"), req.FullName, req.EmployeeID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Profile updated", user)
}
