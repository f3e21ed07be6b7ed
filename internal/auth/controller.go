package auth

import (
	"errors"
	"net/http"

	"beeos/internal/shared/utils/response"
	"beeos/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
	log     *logger.Logger
}

func NewController(service Service) *Controller {
	return &Controller{
		service: service,
		log:     logger.GetDefault(),
	}
}

// Register handles POST /api/v1/auth/register
func (c *Controller) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := c.service.Register(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			response.Error(ctx, http.StatusConflict, "Email is already registered", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Registration failed", err.Error())
		return
	}

	c.log.LogAuthSuccess(ctx.Request.Context(), resp.User.ID, "register")
	response.Success(ctx, http.StatusCreated, "User registered successfully", resp)
}

// Login handles POST /api/v1/auth/login
func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.log.LogAuthFailure(ctx.Request.Context(), "invalid credentials", ctx.ClientIP())
			response.Error(ctx, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}

	c.log.LogAuthSuccess(ctx.Request.Context(), resp.User.ID, "login")
	response.Success(ctx, http.StatusOK, "Login successful", resp)
}

// Refresh handles POST /api/v1/auth/refresh
func (c *Controller) Refresh(ctx *gin.Context) {
	var req RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	tokenPair, err := c.service.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(ctx, http.StatusUnauthorized, "Invalid or expired refresh token", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Token refreshed successfully", tokenPair)
}
