package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"unijobs_backend/internal/models"
	"unijobs_backend/internal/repositories"
	"unijobs_backend/internal/services/dto"
	"unijobs_backend/pkg/apperrors"
)

type ProfileService interface {
	GetUserProfile(ctx context.Context, accountID string) (*dto.ProfileBundleResponse, error)
	UpdateUserProfile(ctx context.Context, accountID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	AddEducation(ctx context.Context, accountID string, req *dto.AddEducationRequest) (*dto.EducationResponse, error)
	UpdateEducation(ctx context.Context, accountID, educationID string, req *dto.UpdateEducationRequest) (*dto.EducationResponse, error)
	DeleteEducation(ctx context.Context, accountID, educationID string) error
	UpdateSkills(ctx context.Context, accountID string, req *dto.UpdateSkillsRequest) (*dto.SkillsResponse, error)
	UploadResume(ctx context.Context, accountID string, req *dto.UploadResumeRequest) (*dto.ResumeResponse, error)
	GenerateResume(ctx context.Context, accountID string, req *dto.GenerateResumeRequest) (*dto.ResumeResponse, error)
	GetResumeTemplates(ctx context.Context) (*dto.TemplatesResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	latency     LatencySimulator
}

func NewProfileService(profileRepo repositories.ProfileRepository, latency LatencySimulator) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		latency:     latency,
	}
}

// GetUserProfile - все профильные данные аккаунта.
// Если аккаунт еще ничего не записывал, возвращает пустые структуры,
// не ошибку.
func (s *ProfileServiceImpl) GetUserProfile(ctx context.Context, accountID string) (*dto.ProfileBundleResponse, error) {
	s.latency(ctx)

	bundle, _ := s.profileRepo.GetBundle(accountID)
	return &dto.ProfileBundleResponse{
		Profile:   bundle.Profile,
		Education: bundle.Education,
		Skills:    bundle.Skills,
		Resumes:   bundle.Resumes,
	}, nil
}

// UpdateUserProfile - merge переданных полей в профиль
// (контейнер создается при первой записи)
func (s *ProfileServiceImpl) UpdateUserProfile(ctx context.Context, accountID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	s.latency(ctx)

	bundle, _ := s.profileRepo.GetBundle(accountID)
	profile := bundle.Profile

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.Github != nil {
		profile.Github = *req.Github
	}
	if req.Linkedin != nil {
		profile.Linkedin = *req.Linkedin
	}
	if req.DateOfBirth != nil {
		profile.DateOfBirth = *req.DateOfBirth
	}

	s.profileRepo.SaveProfile(accountID, profile)

	return &dto.ProfileResponse{
		Profile: profile,
		Message: "Profile updated successfully",
	}, nil
}

// AddEducation - новая запись добавляется в конец списка
func (s *ProfileServiceImpl) AddEducation(ctx context.Context, accountID string, req *dto.AddEducationRequest) (*dto.EducationResponse, error) {
	s.latency(ctx)

	entry := models.EducationEntry{
		ID:          uuid.NewString(),
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Grade:       req.Grade,
		Activities:  req.Activities,
		Description: req.Description,
	}

	s.profileRepo.AddEducation(accountID, entry)

	return &dto.EducationResponse{
		Education: entry,
		Message:   "Education added successfully",
	}, nil
}

// UpdateEducation - меняет только переданные поля целевой записи
func (s *ProfileServiceImpl) UpdateEducation(ctx context.Context, accountID, educationID string, req *dto.UpdateEducationRequest) (*dto.EducationResponse, error) {
	s.latency(ctx)

	bundle, exists := s.profileRepo.GetBundle(accountID)
	if !exists {
		return nil, apperrors.ErrProfileNotFound
	}

	var entry *models.EducationEntry
	for i := range bundle.Education {
		if bundle.Education[i].ID == educationID {
			entry = &bundle.Education[i]
			break
		}
	}
	if entry == nil {
		return nil, apperrors.ErrEducationNotFound
	}

	if req.Institution != nil {
		entry.Institution = *req.Institution
	}
	if req.Degree != nil {
		entry.Degree = *req.Degree
	}
	if req.Field != nil {
		entry.Field = *req.Field
	}
	if req.StartDate != nil {
		entry.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		entry.EndDate = *req.EndDate
	}
	if req.Grade != nil {
		entry.Grade = *req.Grade
	}
	if req.Activities != nil {
		entry.Activities = *req.Activities
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}

	if err := s.profileRepo.UpdateEducation(accountID, *entry); err != nil {
		return nil, mapProfileRepoError(err)
	}

	return &dto.EducationResponse{
		Education: *entry,
		Message:   "Education updated successfully",
	}, nil
}

// DeleteEducation - удаляет ровно одну запись по id
func (s *ProfileServiceImpl) DeleteEducation(ctx context.Context, accountID, educationID string) error {
	s.latency(ctx)

	if err := s.profileRepo.DeleteEducation(accountID, educationID); err != nil {
		return mapProfileRepoError(err)
	}
	return nil
}

// UpdateSkills - замена списка навыков целиком (не merge).
// Дубликаты имен схлопываются регистронезависимо, выживает первый.
func (s *ProfileServiceImpl) UpdateSkills(ctx context.Context, accountID string, req *dto.UpdateSkillsRequest) (*dto.SkillsResponse, error) {
	s.latency(ctx)

	skills := make([]models.Skill, 0, len(req.Skills))
	seen := make(map[string]bool, len(req.Skills))
	for _, in := range req.Skills {
		key := strings.ToLower(in.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, models.Skill{
			Name:  in.Name,
			Level: in.Level,
			Years: in.Years,
		})
	}

	s.profileRepo.ReplaceSkills(accountID, skills)

	return &dto.SkillsResponse{
		Skills:  skills,
		Message: "Skills updated successfully",
	}, nil
}

// UploadResume - добавляет резюме с шаблоном "uploaded"
func (s *ProfileServiceImpl) UploadResume(ctx context.Context, accountID string, req *dto.UploadResumeRequest) (*dto.ResumeResponse, error) {
	s.latency(ctx)

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("Resume %d", s.profileRepo.ResumeCount(accountID)+1)
	}

	resume := models.Resume{
		ID:          uuid.NewString(),
		Name:        name,
		Template:    "uploaded",
		CreatedAt:   time.Now().Format("2006-01-02"),
		DownloadURL: "#",
		FileType:    req.FileType,
		FileSize:    req.FileSize,
	}

	s.profileRepo.AddResume(accountID, resume)

	return &dto.ResumeResponse{
		Resume:  resume,
		Message: "Resume uploaded successfully",
	}, nil
}

// GenerateResume - добавляет резюме, помеченное выбранным шаблоном каталога
func (s *ProfileServiceImpl) GenerateResume(ctx context.Context, accountID string, req *dto.GenerateResumeRequest) (*dto.ResumeResponse, error) {
	s.latency(ctx)

	if _, err := s.profileRepo.FindTemplate(req.TemplateID); err != nil {
		return nil, apperrors.ErrTemplateNotFound
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("Resume %d", s.profileRepo.ResumeCount(accountID)+1)
	}

	resume := models.Resume{
		ID:          uuid.NewString(),
		Name:        name,
		Template:    req.TemplateID,
		CreatedAt:   time.Now().Format("2006-01-02"),
		DownloadURL: "#",
	}

	s.profileRepo.AddResume(accountID, resume)

	return &dto.ResumeResponse{
		Resume:  resume,
		Message: "Resume generated successfully",
	}, nil
}

// GetResumeTemplates - статический каталог шаблонов
func (s *ProfileServiceImpl) GetResumeTemplates(ctx context.Context) (*dto.TemplatesResponse, error) {
	s.latency(ctx)

	return &dto.TemplatesResponse{
		Templates: s.profileRepo.Templates(),
	}, nil
}

func mapProfileRepoError(err error) error {
	switch {
	case apperrors.Is(err, repositories.ErrProfileNotFound):
		return apperrors.ErrProfileNotFound
	case apperrors.Is(err, repositories.ErrEducationNotFound):
		return apperrors.ErrEducationNotFound
	default:
		return apperrors.InternalError(err)
	}
}
