package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ideahub/helper"
	"ideahub/models"
	"ideahub/services"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.Signup(req)
	if err != nil {
		if errors.Is(err, services.ErrPasswordMismatch) || errors.Is(err, services.ErrEmailTaken) {
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, "Signup failed", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendCreated(c, "Signup successful! Please login.", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendUnauthorizedError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Login successful!", response)
}

// Logout exists for the client flow; tokens are stateless, so the client
// simply discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Helper.SendSuccess(c, "Logged out", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) GetSettings(c *gin.Context) {
	userID, _ := c.Get("user_id")

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Settings loaded", user)
}

func (h *AuthHandler) UpdateSettings(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.UpdateSettingsRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.UpdateSettings(userID.(uint), req)
	if err != nil {
		h.Helper.SendBadRequest(c, "Settings update failed", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Settings updated!", response)
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, _ := c.Get("user_id")

	if err := h.authService.DeleteAccount(userID.(uint)); err != nil {
		h.Helper.SendBadRequest(c, "Account deletion failed", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Your account has been deleted permanently.", h.Helper.EmptyJsonMap())
}
