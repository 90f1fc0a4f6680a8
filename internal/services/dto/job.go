package dto

import "unijobs_backend/internal/models"

// ApplyRequest - отклик на вакансию
type ApplyRequest struct {
	JobID string `json:"jobId" validate:"required"`
}

// UpdateApplicationStatusRequest - смена статуса отклика (сторона рекрутера)
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
}

// SaveJobRequest - закладка на вакансию
type SaveJobRequest struct {
	JobID string `json:"jobId" validate:"required"`
}

type JobListResponse struct {
	Jobs []models.Job `json:"jobs"`
}

type ApplicationResponse struct {
	Application models.Application `json:"application"`
	Message     string             `json:"message"`
}

type ApplicationListResponse struct {
	Applications []models.Application `json:"applications"`
}

type SavedJobResponse struct {
	SavedJob models.SavedJob `json:"savedJob"`
	Message  string          `json:"message"`
}

type SavedJobListResponse struct {
	SavedJobs []models.SavedJob `json:"savedJobs"`
}
