package repositories

import (
	"errors"

	"unijobs_backend/internal/models"
	"unijobs_backend/internal/store"
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrEducationNotFound = errors.New("education record not found")
	ErrTemplateNotFound  = errors.New("resume template not found")
)

type ProfileRepository interface {
	// GetBundle возвращает глубокую копию профильных данных аккаунта.
	// Второе значение false, если аккаунт еще ничего не записывал.
	GetBundle(accountID string) (models.ProfileBundle, bool)

	SaveProfile(accountID string, profile models.Profile)
	AddEducation(accountID string, entry models.EducationEntry)
	UpdateEducation(accountID string, entry models.EducationEntry) error
	DeleteEducation(accountID, educationID string) error
	ReplaceSkills(accountID string, skills []models.Skill)
	AddResume(accountID string, resume models.Resume)
	ResumeCount(accountID string) int

	Templates() []models.ResumeTemplate
	FindTemplate(id string) (*models.ResumeTemplate, error)
}

type ProfileRepositoryImpl struct {
	store *store.Store
}

func NewProfileRepository(s *store.Store) ProfileRepository {
	return &ProfileRepositoryImpl{store: s}
}

// ensureBundle создает пустой контейнер при первой записи.
// Вызывается только под write-блокировкой.
func (r *ProfileRepositoryImpl) ensureBundle(accountID string) *models.ProfileBundle {
	b, ok := r.store.Profiles[accountID]
	if !ok {
		b = &models.ProfileBundle{
			Education: []models.EducationEntry{},
			Skills:    []models.Skill{},
			Resumes:   []models.Resume{},
		}
		r.store.Profiles[accountID] = b
	}
	return b
}

func copyBundle(b *models.ProfileBundle) models.ProfileBundle {
	cp := models.ProfileBundle{
		Profile:   b.Profile,
		Education: make([]models.EducationEntry, len(b.Education)),
		Skills:    make([]models.Skill, len(b.Skills)),
		Resumes:   make([]models.Resume, len(b.Resumes)),
	}
	copy(cp.Education, b.Education)
	copy(cp.Skills, b.Skills)
	copy(cp.Resumes, b.Resumes)
	return cp
}

func (r *ProfileRepositoryImpl) GetBundle(accountID string) (models.ProfileBundle, bool) {
	r.store.RLock()
	defer r.store.RUnlock()

	b, ok := r.store.Profiles[accountID]
	if !ok {
		// Отсутствие данных - пустые структуры, не ошибка
		return models.ProfileBundle{
			Education: []models.EducationEntry{},
			Skills:    []models.Skill{},
			Resumes:   []models.Resume{},
		}, false
	}
	return copyBundle(b), true
}

func (r *ProfileRepositoryImpl) SaveProfile(accountID string, profile models.Profile) {
	r.store.Lock()
	defer r.store.Unlock()

	b := r.ensureBundle(accountID)
	b.Profile = profile
}

func (r *ProfileRepositoryImpl) AddEducation(accountID string, entry models.EducationEntry) {
	r.store.Lock()
	defer r.store.Unlock()

	b := r.ensureBundle(accountID)
	b.Education = append(b.Education, entry)
}

func (r *ProfileRepositoryImpl) UpdateEducation(accountID string, entry models.EducationEntry) error {
	r.store.Lock()
	defer r.store.Unlock()

	b, ok := r.store.Profiles[accountID]
	if !ok {
		return ErrProfileNotFound
	}

	for i := range b.Education {
		if b.Education[i].ID == entry.ID {
			b.Education[i] = entry
			return nil
		}
	}
	return ErrEducationNotFound
}

func (r *ProfileRepositoryImpl) DeleteEducation(accountID, educationID string) error {
	r.store.Lock()
	defer r.store.Unlock()

	b, ok := r.store.Profiles[accountID]
	if !ok {
		return ErrProfileNotFound
	}

	for i := range b.Education {
		if b.Education[i].ID == educationID {
			b.Education = append(b.Education[:i], b.Education[i+1:]...)
			return nil
		}
	}
	return ErrEducationNotFound
}

// ReplaceSkills меняет список навыков целиком (не merge)
func (r *ProfileRepositoryImpl) ReplaceSkills(accountID string, skills []models.Skill) {
	r.store.Lock()
	defer r.store.Unlock()

	b := r.ensureBundle(accountID)
	b.Skills = make([]models.Skill, len(skills))
	copy(b.Skills, skills)
}

func (r *ProfileRepositoryImpl) AddResume(accountID string, resume models.Resume) {
	r.store.Lock()
	defer r.store.Unlock()

	b := r.ensureBundle(accountID)
	b.Resumes = append(b.Resumes, resume)
}

func (r *ProfileRepositoryImpl) ResumeCount(accountID string) int {
	r.store.RLock()
	defer r.store.RUnlock()

	b, ok := r.store.Profiles[accountID]
	if !ok {
		return 0
	}
	return len(b.Resumes)
}

func (r *ProfileRepositoryImpl) Templates() []models.ResumeTemplate {
	r.store.RLock()
	defer r.store.RUnlock()

	out := make([]models.ResumeTemplate, len(r.store.Templates))
	copy(out, r.store.Templates)
	return out
}

func (r *ProfileRepositoryImpl) FindTemplate(id string) (*models.ResumeTemplate, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	for i := range r.store.Templates {
		if r.store.Templates[i].ID == id {
			cp := r.store.Templates[i]
			return &cp, nil
		}
	}
	return nil, ErrTemplateNotFound
}
