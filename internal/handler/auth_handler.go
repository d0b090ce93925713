// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"net/http"

	apperrors "gin-jobs/internal/errors"
	"gin-jobs/internal/middleware"
	"gin-jobs/internal/models"
	"gin-jobs/internal/service"
	"gin-jobs/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service service.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a new account with name, email, password and an optional role (user or employer)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.RegisterRequest  true  "Registration details"
// @Success      200      {object}  response.Response{data=models.AuthResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// Login godoc
// @Summary      User login
// @Description  Authenticate with email and password and receive a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "User credentials"
// @Success      200      {object}  response.Response{data=models.AuthResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// Me godoc
// @Summary      Current user profile
// @Description  Return the profile of the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      401  {object}  response.Response
// @Router       /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	response.Success(c, user)
}

// UpdatePassword godoc
// @Summary      Change password
// @Description  Change the authenticated user's password after verifying the current one
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.UpdatePasswordRequest  true  "Current and new password"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /password/update [put]
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req models.UpdatePasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.GetUser(c)
	if user == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	if err := h.service.UpdatePassword(c.Request.Context(), user.ID, &req); err != nil {
		if errors.Is(err, apperrors.ErrPasswordMismatch) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.SuccessMessage(c, "password updated successfully", nil)
}

// ForgotPassword godoc
// @Summary      Request a password reset
// @Description  Email a password reset link to the given address
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.ForgotPasswordRequest  true  "Account email"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /password/forgot [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, "no user found with this email")
		case errors.Is(err, apperrors.ErrMailQueueFull):
			response.Error(c, http.StatusServiceUnavailable, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.SuccessMessage(c, "email sent to "+req.Email, nil)
}

// ResetPassword godoc
// @Summary      Reset password
// @Description  Set a new password using the token from the reset email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token    path      string                       true  "Reset token"
// @Param        request  body      models.ResetPasswordRequest  true  "New password"
// @Success      200      {object}  response.Response{data=models.AuthResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /password/reset/{token} [put]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ResetPassword(c.Request.Context(), c.Param("token"), req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrResetTokenInvalid) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}
