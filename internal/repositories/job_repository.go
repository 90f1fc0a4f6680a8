package repositories

import (
	"errors"
	"strings"

	"unijobs_backend/internal/models"
	"unijobs_backend/internal/store"
)

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
)

type JobRepository interface {
	List(filters models.JobFilters) []models.Job
	FindByID(id string) (*models.Job, error)
	Add(job *models.Job)

	ApplicationsByUser(accountID string) []models.Application
	AddApplication(app *models.Application)
	UpdateApplicationStatus(accountID, applicationID string, status models.ApplicationStatus) (*models.Application, error)

	SavedJobsByUser(accountID string) []models.SavedJob
	AddSavedJob(saved *models.SavedJob) bool
	RemoveSavedJob(accountID, jobID string) error
}

type JobRepositoryImpl struct {
	store *store.Store
}

func NewJobRepository(s *store.Store) JobRepository {
	return &JobRepositoryImpl{store: s}
}

// List возвращает вакансии, подходящие под все непустые фильтры
func (r *JobRepositoryImpl) List(filters models.JobFilters) []models.Job {
	r.store.RLock()
	defer r.store.RUnlock()

	out := []models.Job{}
	for _, j := range r.store.Jobs {
		if !matchesFilters(j, filters) {
			continue
		}
		cp := *j
		out = append(out, cp)
	}
	return out
}

func matchesFilters(j *models.Job, f models.JobFilters) bool {
	if f.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(j.Type, f.Type) {
		return false
	}
	if f.Company != "" && !strings.Contains(strings.ToLower(j.Company), strings.ToLower(f.Company)) {
		return false
	}
	for _, want := range f.Skills {
		found := false
		for _, have := range j.Skills {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	for _, j := range r.store.Jobs {
		if j.ID == id {
			cp := *j
			return &cp, nil
		}
	}
	return nil, ErrJobNotFound
}

func (r *JobRepositoryImpl) Add(job *models.Job) {
	r.store.Lock()
	defer r.store.Unlock()

	cp := *job
	r.store.Jobs = append(r.store.Jobs, &cp)
}

func (r *JobRepositoryImpl) ApplicationsByUser(accountID string) []models.Application {
	r.store.RLock()
	defer r.store.RUnlock()

	out := []models.Application{}
	for _, a := range r.store.Applications {
		if a.UserID == accountID {
			out = append(out, *a)
		}
	}
	return out
}

func (r *JobRepositoryImpl) AddApplication(app *models.Application) {
	r.store.Lock()
	defer r.store.Unlock()

	cp := *app
	r.store.Applications = append(r.store.Applications, &cp)
}

func (r *JobRepositoryImpl) UpdateApplicationStatus(accountID, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	r.store.Lock()
	defer r.store.Unlock()

	for _, a := range r.store.Applications {
		if a.ID == applicationID && a.UserID == accountID {
			a.Status = status
			a.StatusColor = status.StatusColor()
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrApplicationNotFound
}

func (r *JobRepositoryImpl) SavedJobsByUser(accountID string) []models.SavedJob {
	r.store.RLock()
	defer r.store.RUnlock()

	out := []models.SavedJob{}
	for _, s := range r.store.SavedJobs {
		if s.UserID == accountID {
			out = append(out, *s)
		}
	}
	return out
}

// AddSavedJob добавляет закладку. Возвращает false, если уже сохранена.
func (r *JobRepositoryImpl) AddSavedJob(saved *models.SavedJob) bool {
	r.store.Lock()
	defer r.store.Unlock()

	for _, s := range r.store.SavedJobs {
		if s.UserID == saved.UserID && s.ID == saved.ID {
			return false
		}
	}

	cp := *saved
	r.store.SavedJobs = append(r.store.SavedJobs, &cp)
	return true
}

func (r *JobRepositoryImpl) RemoveSavedJob(accountID, jobID string) error {
	r.store.Lock()
	defer r.store.Unlock()

	for i, s := range r.store.SavedJobs {
		if s.UserID == accountID && s.ID == jobID {
			r.store.SavedJobs = append(r.store.SavedJobs[:i], r.store.SavedJobs[i+1:]...)
			return nil
		}
	}
	return ErrJobNotFound
}
