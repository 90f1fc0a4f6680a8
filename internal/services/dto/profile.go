package dto

import "unijobs_backend/internal/models"

// ==========================
// Requests
// ==========================

// UpdateProfileRequest - частичное обновление личной информации.
// nil-поля не трогаются, непустые merge-атся в существующий профиль.
type UpdateProfileRequest struct {
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	Website     *string `json:"website,omitempty"`
	Github      *string `json:"github,omitempty"`
	Linkedin    *string `json:"linkedin,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
}

// AddEducationRequest - новая запись об образовании
type AddEducationRequest struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"` // пусто = "по настоящее время"
	Grade       string `json:"grade,omitempty"`
	Activities  string `json:"activities,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateEducationRequest - частичное обновление записи:
// меняются только переданные поля
type UpdateEducationRequest struct {
	Institution *string `json:"institution,omitempty"`
	Degree      *string `json:"degree,omitempty"`
	Field       *string `json:"field,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Grade       *string `json:"grade,omitempty"`
	Activities  *string `json:"activities,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SkillInput - один навык в запросе замены списка
type SkillInput struct {
	Name  string            `json:"name" validate:"required"`
	Level models.SkillLevel `json:"level" validate:"required,is-skill-level"`
	Years int               `json:"years" validate:"min=0"`
}

// UpdateSkillsRequest - замена списка навыков целиком.
// Пустой список валиден: сохранение [] обнуляет навыки.
type UpdateSkillsRequest struct {
	Skills []SkillInput `json:"skills" validate:"dive"`
}

// UploadResumeRequest - метаданные загружаемого файла резюме
type UploadResumeRequest struct {
	Name     string `json:"name,omitempty"`
	FileType string `json:"fileType,omitempty"`
	FileSize int64  `json:"fileSize,omitempty" validate:"min=0"`
}

// GenerateResumeRequest - генерация резюме по шаблону из каталога
type GenerateResumeRequest struct {
	TemplateID string `json:"templateId" validate:"required"`
	Name       string `json:"name,omitempty"`
}

// ==========================
// Responses
// ==========================

// ProfileBundleResponse - ответ getUserProfile
type ProfileBundleResponse struct {
	Profile   models.Profile          `json:"profile"`
	Education []models.EducationEntry `json:"education"`
	Skills    []models.Skill          `json:"skills"`
	Resumes   []models.Resume         `json:"resumes"`
}

type ProfileResponse struct {
	Profile models.Profile `json:"profile"`
	Message string         `json:"message"`
}

type EducationResponse struct {
	Education models.EducationEntry `json:"education"`
	Message   string                `json:"message"`
}

type SkillsResponse struct {
	Skills  []models.Skill `json:"skills"`
	Message string         `json:"message"`
}

type ResumeResponse struct {
	Resume  models.Resume `json:"resume"`
	Message string        `json:"message"`
}

type TemplatesResponse struct {
	Templates []models.ResumeTemplate `json:"templates"`
}
