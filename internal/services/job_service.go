package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"unijobs_backend/internal/models"
	"unijobs_backend/internal/repositories"
	"unijobs_backend/internal/services/dto"
	"unijobs_backend/pkg/apperrors"
)

type JobService interface {
	ListJobs(ctx context.Context, filters models.JobFilters) (*dto.JobListResponse, error)
	Apply(ctx context.Context, accountID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error)
	ListApplications(ctx context.Context, accountID string) (*dto.ApplicationListResponse, error)
	UpdateApplicationStatus(ctx context.Context, accountID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
	SaveJob(ctx context.Context, accountID string, req *dto.SaveJobRequest) (*dto.SavedJobResponse, error)
	UnsaveJob(ctx context.Context, accountID, jobID string) error
	ListSavedJobs(ctx context.Context, accountID string) (*dto.SavedJobListResponse, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
	latency LatencySimulator
}

func NewJobService(jobRepo repositories.JobRepository, latency LatencySimulator) JobService {
	return &JobServiceImpl{
		jobRepo: jobRepo,
		latency: latency,
	}
}

// ListJobs - лента вакансий с фильтрами
func (s *JobServiceImpl) ListJobs(ctx context.Context, filters models.JobFilters) (*dto.JobListResponse, error) {
	s.latency(ctx)

	return &dto.JobListResponse{Jobs: s.jobRepo.List(filters)}, nil
}

// Apply - отклик на вакансию, статус всегда начинается с Applied
func (s *JobServiceImpl) Apply(ctx context.Context, accountID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	s.latency(ctx)

	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		return nil, apperrors.ErrJobNotFound
	}

	app := &models.Application{
		ID:          uuid.NewString(),
		UserID:      accountID,
		JobID:       job.ID,
		Title:       job.Title,
		Company:     job.Company,
		Status:      models.ApplicationStatusApplied,
		StatusColor: models.ApplicationStatusApplied.StatusColor(),
		AppliedDate: time.Now().Format("2006-01-02"),
	}

	s.jobRepo.AddApplication(app)

	return &dto.ApplicationResponse{
		Application: *app,
		Message:     "Application submitted successfully",
	}, nil
}

func (s *JobServiceImpl) ListApplications(ctx context.Context, accountID string) (*dto.ApplicationListResponse, error) {
	s.latency(ctx)

	return &dto.ApplicationListResponse{
		Applications: s.jobRepo.ApplicationsByUser(accountID),
	}, nil
}

// UpdateApplicationStatus - смена статуса отклика с пересчетом цветовой метки
func (s *JobServiceImpl) UpdateApplicationStatus(ctx context.Context, accountID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	s.latency(ctx)

	app, err := s.jobRepo.UpdateApplicationStatus(accountID, applicationID, req.Status)
	if err != nil {
		return nil, apperrors.ErrApplicationNotFound
	}

	return &dto.ApplicationResponse{
		Application: *app,
		Message:     "Application status updated",
	}, nil
}

// SaveJob - закладка. Повторное сохранение той же вакансии - no-op.
func (s *JobServiceImpl) SaveJob(ctx context.Context, accountID string, req *dto.SaveJobRequest) (*dto.SavedJobResponse, error) {
	s.latency(ctx)

	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		return nil, apperrors.ErrJobNotFound
	}

	saved := &models.SavedJob{
		ID:        job.ID,
		UserID:    accountID,
		Title:     job.Title,
		Company:   job.Company,
		Location:  job.Location,
		SavedDate: time.Now().Format("2006-01-02"),
	}

	s.jobRepo.AddSavedJob(saved)

	return &dto.SavedJobResponse{
		SavedJob: *saved,
		Message:  "Job saved",
	}, nil
}

func (s *JobServiceImpl) UnsaveJob(ctx context.Context, accountID, jobID string) error {
	s.latency(ctx)

	if err := s.jobRepo.RemoveSavedJob(accountID, jobID); err != nil {
		return apperrors.ErrJobNotFound
	}
	return nil
}

func (s *JobServiceImpl) ListSavedJobs(ctx context.Context, accountID string) (*dto.SavedJobListResponse, error) {
	s.latency(ctx)

	return &dto.SavedJobListResponse{
		SavedJobs: s.jobRepo.SavedJobsByUser(accountID),
	}, nil
}
