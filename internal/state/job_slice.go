package state

import (
	"context"
	"sync"

	"unijobs_backend/internal/models"
	"unijobs_backend/internal/services"
	"unijobs_backend/internal/services/dto"
)

// JobSlice - канонические данные ленты вакансий: список, отклики,
// закладки и активные фильтры текущего аккаунта.
type JobSlice struct {
	lifecycle

	jobService services.JobService

	mu           sync.Mutex
	accountID    string
	jobs         []models.Job
	applications []models.Application
	savedJobs    []models.SavedJob
	filters      models.JobFilters
}

func NewJobSlice(jobService services.JobService) *JobSlice {
	return &JobSlice{
		lifecycle:  newLifecycle("jobs"),
		jobService: jobService,
	}
}

// SetAccount привязывает слайс к аккаунту и сбрасывает его данные
func (s *JobSlice) SetAccount(accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accountID = accountID
	s.applications = nil
	s.savedJobs = nil
}

// Jobs возвращает копию последней загруженной ленты
func (s *JobSlice) Jobs() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Job(nil), s.jobs...)
}

// Applications возвращает копию списка откликов
func (s *JobSlice) Applications() []models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Application(nil), s.applications...)
}

// SavedJobs возвращает копию списка закладок
func (s *JobSlice) SavedJobs() []models.SavedJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SavedJob(nil), s.savedJobs...)
}

// Filters - активные фильтры ленты
func (s *JobSlice) Filters() models.JobFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetFilters - синхронный редьюсер фильтров. Следующий Fetch
// использует новое значение.
func (s *JobSlice) SetFilters(filters models.JobFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters
}

// IsSaved проверяет, есть ли вакансия в закладках
func (s *JobSlice) IsSaved(jobID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sj := range s.savedJobs {
		if sj.ID == jobID {
			return true
		}
	}
	return false
}

// Fetch диспатчит загрузку ленты с активными фильтрами
func (s *JobSlice) Fetch(ctx context.Context) *Operation {
	op := s.begin("jobs/fetchJobs")
	go func() {
		s.mu.Lock()
		filters := s.filters
		s.mu.Unlock()

		resp, err := s.jobService.ListJobs(ctx, filters)
		if err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		s.jobs = resp.Jobs
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}

// Apply диспатчит отклик на вакансию
func (s *JobSlice) Apply(ctx context.Context, req *dto.ApplyRequest) *Operation {
	op := s.begin("jobs/applyToJob")
	go func() {
		s.mu.Lock()
		accountID := s.accountID
		s.mu.Unlock()

		resp, err := s.jobService.Apply(ctx, accountID, req)
		if err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		s.applications = append(s.applications, resp.Application)
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}

// FetchApplications диспатчит загрузку откликов аккаунта
func (s *JobSlice) FetchApplications(ctx context.Context) *Operation {
	op := s.begin("jobs/fetchApplications")
	go func() {
		s.mu.Lock()
		accountID := s.accountID
		s.mu.Unlock()

		resp, err := s.jobService.ListApplications(ctx, accountID)
		if err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		s.applications = resp.Applications
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}

// UpdateApplicationStatus диспатчит смену статуса отклика;
// в каноническом списке отклик заменяется по месту
func (s *JobSlice) UpdateApplicationStatus(ctx context.Context, applicationID string, req *dto.UpdateApplicationStatusRequest) *Operation {
	op := s.begin("jobs/updateApplicationStatus")
	go func() {
		s.mu.Lock()
		accountID := s.accountID
		s.mu.Unlock()

		resp, err := s.jobService.UpdateApplicationStatus(ctx, accountID, applicationID, req)
		if err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		for i := range s.applications {
			if s.applications[i].ID == applicationID {
				s.applications[i] = resp.Application
				break
			}
		}
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}

// SaveJob диспатчит добавление закладки. Повторное сохранение той же
// вакансии не дублирует запись.
func (s *JobSlice) SaveJob(ctx context.Context, req *dto.SaveJobRequest) *Operation {
	op := s.begin("jobs/saveJob")
	go func() {
		s.mu.Lock()
		accountID := s.accountID
		s.mu.Unlock()

		resp, err := s.jobService.SaveJob(ctx, accountID, req)
		if err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		exists := false
		for _, sj := range s.savedJobs {
			if sj.ID == resp.SavedJob.ID {
				exists = true
				break
			}
		}
		if !exists {
			s.savedJobs = append(s.savedJobs, resp.SavedJob)
		}
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}

// UnsaveJob диспатчит снятие закладки
func (s *JobSlice) UnsaveJob(ctx context.Context, jobID string) *Operation {
	op := s.begin("jobs/unsaveJob")
	go func() {
		s.mu.Lock()
		accountID := s.accountID
		s.mu.Unlock()

		if err := s.jobService.UnsaveJob(ctx, accountID, jobID); err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		kept := s.savedJobs[:0]
		for _, sj := range s.savedJobs {
			if sj.ID != jobID {
				kept = append(kept, sj)
			}
		}
		s.savedJobs = kept
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}

// FetchSavedJobs диспатчит загрузку закладок аккаунта
func (s *JobSlice) FetchSavedJobs(ctx context.Context) *Operation {
	op := s.begin("jobs/fetchSavedJobs")
	go func() {
		s.mu.Lock()
		accountID := s.accountID
		s.mu.Unlock()

		resp, err := s.jobService.ListSavedJobs(ctx, accountID)
		if err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		s.savedJobs = resp.SavedJobs
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}
