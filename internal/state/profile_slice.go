package state

import (
	"context"
	"sync"

	"unijobs_backend/internal/models"
	"unijobs_backend/internal/services"
	"unijobs_backend/internal/services/dto"
)

// DefaultResumeTemplate - активный шаблон до первого явного выбора
const DefaultResumeTemplate = "modern"

// ProfileSlice - канонические профильные данные текущего аккаунта.
//
// Редьюсеры воспроизводят исходную клиентскую семантику: fetch меняет
// весь набор целиком, profile-операции мержат, education обновляется
// по месту, skills заменяются целиком, resumes только добавляются.
type ProfileSlice struct {
	lifecycle

	profileService services.ProfileService

	mu        sync.Mutex
	accountID string
	profile   models.Profile
	education []models.EducationEntry
	skills    []models.Skill
	resumes   []models.Resume
	templates []models.ResumeTemplate

	activeTemplate string
}

func NewProfileSlice(profileService services.ProfileService) *ProfileSlice {
	return &ProfileSlice{
		lifecycle:      newLifecycle("profile"),
		profileService: profileService,
		activeTemplate: DefaultResumeTemplate,
	}
}

// SetAccount привязывает слайс к аккаунту и сбрасывает канонические данные
func (s *ProfileSlice) SetAccount(accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accountID = accountID
	s.profile = models.Profile{}
	s.education = nil
	s.skills = nil
	s.resumes = nil
}

// Snapshot возвращает копию текущего набора профильных данных
func (s *ProfileSlice) Snapshot() models.ProfileBundle {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.ProfileBundle{
		Profile:   s.profile,
		Education: append([]models.EducationEntry(nil), s.education...),
		Skills:    append([]models.Skill(nil), s.skills...),
		Resumes:   append([]models.Resume(nil), s.resumes...),
	}
}

// Templates возвращает закешированный каталог шаблонов
func (s *ProfileSlice) Templates() []models.ResumeTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ResumeTemplate(nil), s.templates...)
}

// ActiveTemplate - выбранный шаблон резюме
func (s *ProfileSlice) ActiveTemplate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTemplate
}

// SetActiveTemplate - синхронный редьюсер выбора шаблона
func (s *ProfileSlice) SetActiveTemplate(templateID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTemplate = templateID
}

// Fetch диспатчит загрузку всего профильного набора
func (s *ProfileSlice) Fetch(ctx context.Context) *Operation {
	op := s.begin("profile/fetchUserProfile")
	go func() {
		s.mu.Lock()
		accountID := s.accountID
		s.mu.Unlock()

		resp, err := s.profileService.GetUserProfile(ctx, accountID)
		if err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		s.profile = resp.Profile
		s.education = resp.Education
		s.skills = resp.Skills
		s.resumes = resp.Resumes
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}

// UpdateProfile диспатчит частичное обновление личной информации
func (s *ProfileSlice) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) *Operation {
	op := s.begin("profile/updateProfile")
	go func() {
		s.mu.Lock()
		accountID := s.accountID
		s.mu.Unlock()

		resp, err := s.profileService.UpdateUserProfile(ctx, accountID, req)
		if err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		s.profile = resp.Profile
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}

// AddEducation диспатчит добавление записи об образовании
func (s *ProfileSlice) AddEducation(ctx context.Context, req *dto.AddEducationRequest) *Operation {
	op := s.begin("profile/addEducation")
	go func() {
		s.mu.Lock()
		accountID := s.accountID
		s.mu.Unlock()

		resp, err := s.profileService.AddEducation(ctx, accountID, req)
		if err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		s.education = append(s.education, resp.Education)
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}

// UpdateEducation диспатчит обновление записи; в каноническом списке
// запись заменяется по месту, порядок сохраняется
func (s *ProfileSlice) UpdateEducation(ctx context.Context, educationID string, req *dto.UpdateEducationRequest) *Operation {
	op := s.begin("profile/updateEducation")
	go func() {
		s.mu.Lock()
		accountID := s.accountID
		s.mu.Unlock()

		resp, err := s.profileService.UpdateEducation(ctx, accountID, educationID, req)
		if err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		for i := range s.education {
			if s.education[i].ID == educationID {
				s.education[i] = resp.Education
				break
			}
		}
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}

// DeleteEducation диспатчит удаление записи об образовании
func (s *ProfileSlice) DeleteEducation(ctx context.Context, educationID string) *Operation {
	op := s.begin("profile/deleteEducation")
	go func() {
		s.mu.Lock()
		accountID := s.accountID
		s.mu.Unlock()

		if err := s.profileService.DeleteEducation(ctx, accountID, educationID); err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		kept := s.education[:0]
		for _, e := range s.education {
			if e.ID != educationID {
				kept = append(kept, e)
			}
		}
		s.education = kept
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}

// UpdateSkills диспатчит полную замену набора навыков
func (s *ProfileSlice) UpdateSkills(ctx context.Context, req *dto.UpdateSkillsRequest) *Operation {
	op := s.begin("profile/updateSkills")
	go func() {
		s.mu.Lock()
		accountID := s.accountID
		s.mu.Unlock()

		resp, err := s.profileService.UpdateSkills(ctx, accountID, req)
		if err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		s.skills = resp.Skills
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}

// UploadResume диспатчит загрузку готового файла резюме
func (s *ProfileSlice) UploadResume(ctx context.Context, req *dto.UploadResumeRequest) *Operation {
	op := s.begin("profile/uploadResume")
	go func() {
		s.mu.Lock()
		accountID := s.accountID
		s.mu.Unlock()

		resp, err := s.profileService.UploadResume(ctx, accountID, req)
		if err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		s.resumes = append(s.resumes, resp.Resume)
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}

// GenerateResume диспатчит генерацию резюме по шаблону
func (s *ProfileSlice) GenerateResume(ctx context.Context, req *dto.GenerateResumeRequest) *Operation {
	op := s.begin("profile/generateResume")
	go func() {
		s.mu.Lock()
		accountID := s.accountID
		s.mu.Unlock()

		resp, err := s.profileService.GenerateResume(ctx, accountID, req)
		if err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		s.resumes = append(s.resumes, resp.Resume)
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}

// FetchTemplates диспатчит загрузку каталога шаблонов
func (s *ProfileSlice) FetchTemplates(ctx context.Context) *Operation {
	op := s.begin("profile/fetchResumeTemplates")
	go func() {
		resp, err := s.profileService.GetResumeTemplates(ctx)
		if err != nil {
			s.resolve(op, err)
			return
		}

		s.mu.Lock()
		s.templates = resp.Templates
		s.mu.Unlock()

		s.resolve(op, nil)
	}()
	return op
}
