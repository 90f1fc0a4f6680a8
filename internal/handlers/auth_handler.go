package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"unijobs_backend/internal/middleware"
	"unijobs_backend/internal/services"
	"unijobs_backend/internal/services/dto"
	"unijobs_backend/pkg/apperrors"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes регистрирует все маршруты аутентификации
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/google", h.LoginWithGoogle)
		auth.POST("/reset-password", h.ResetPassword)
		auth.POST("/update-password", h.UpdatePassword)
		// /me валидирует токен на уровне сервиса, middleware не нужен
		auth.GET("/me", h.GetCurrentUser)
	}

	account := rg.Group("/account")
	account.Use(middleware.AuthMiddleware())
	{
		account.PUT("", h.UpdateAccount)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// LoginWithGoogle - федеративный вход; тела запроса нет,
// личность выбирается из пула на стороне сервиса
func (h *AuthHandler) LoginWithGoogle(c *gin.Context) {
	response, err := h.authService.LoginWithGoogle(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.PasswordResetRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.authService.ResetPassword(c.Request.Context(), req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req dto.PasswordResetConfirm
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.UpdatePassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
		return
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	account, err := h.authService.GetCurrentUser(c.Request.Context(), token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": account})
}

func (h *AuthHandler) UpdateAccount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	account, err := h.authService.UpdateAccount(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": account})
}
