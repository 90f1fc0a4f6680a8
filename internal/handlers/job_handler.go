package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"unijobs_backend/internal/middleware"
	"unijobs_backend/internal/models"
	"unijobs_backend/internal/services"
	"unijobs_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes регистрирует маршруты вакансий.
// Лента публичная, отклики и закладки за auth middleware.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.ListJobs)

	protected := rg.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/applications", h.ListApplications)
		protected.POST("/applications", h.Apply)
		protected.PUT("/applications/:id/status", h.UpdateApplicationStatus)

		protected.GET("/saved-jobs", h.ListSavedJobs)
		protected.POST("/saved-jobs", h.SaveJob)
		protected.DELETE("/saved-jobs/:id", h.UnsaveJob)
	}
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	var filters models.JobFilters
	if !h.BindAndValidateQuery(c, &filters) {
		return
	}

	response, err := h.jobService.ListJobs(c.Request.Context(), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.jobService.Apply(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *JobHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.jobService.ListApplications(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) UpdateApplicationStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.jobService.UpdateApplicationStatus(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) SaveJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SaveJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.jobService.SaveJob(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *JobHandler) UnsaveJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.UnsaveJob(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job removed from saved"})
}

func (h *JobHandler) ListSavedJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.jobService.ListSavedJobs(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
