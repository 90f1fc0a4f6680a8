package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"unijobs_backend/internal/middleware"
	"unijobs_backend/internal/services"
	"unijobs_backend/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes регистрирует маршруты профиля.
// Каталог шаблонов публичный, остальное за auth middleware.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume-templates", h.GetResumeTemplates)

	profile := rg.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", h.GetUserProfile)
		profile.PUT("", h.UpdateProfile)

		profile.POST("/education", h.AddEducation)
		profile.PUT("/education/:id", h.UpdateEducation)
		profile.DELETE("/education/:id", h.DeleteEducation)

		profile.PUT("/skills", h.UpdateSkills)

		profile.POST("/resumes", h.UploadResume)
		profile.POST("/resumes/generate", h.GenerateResume)
	}
}

func (h *ProfileHandler) GetUserProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bundle, err := h.profileService.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bundle)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.profileService.UpdateUserProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddEducationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.profileService.AddEducation(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ProfileHandler) UpdateEducation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEducationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.profileService.UpdateEducation(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteEducation(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Education deleted successfully"})
}

func (h *ProfileHandler) UpdateSkills(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSkillsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.profileService.UpdateSkills(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProfileHandler) UploadResume(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UploadResumeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.profileService.UploadResume(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ProfileHandler) GenerateResume(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.GenerateResumeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.profileService.GenerateResume(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ProfileHandler) GetResumeTemplates(c *gin.Context) {
	response, err := h.profileService.GetResumeTemplates(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
