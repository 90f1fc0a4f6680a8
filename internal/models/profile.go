package models

import "strings"

// Profile - личная информация аккаунта. Все поля опциональны,
// контейнер создается лениво при первой записи.
type Profile struct {
	Bio         string `json:"bio,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Website     string `json:"website,omitempty"`
	Github      string `json:"github,omitempty"`
	Linkedin    string `json:"linkedin,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

// EducationEntry - запись об образовании. Принадлежит ровно одному
// аккаунту, порядок в списке = порядок вставки.
type EducationEntry struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"` // пусто = "по настоящее время"
	Grade       string `json:"grade,omitempty"`
	Activities  string `json:"activities,omitempty"`
	Description string `json:"description,omitempty"`
}

// Skill - навык аккаунта. Имя уникально в пределах аккаунта
// (сравнение регистронезависимое при подсказках).
type Skill struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
	Years int        `json:"years"`
}

// Resume - резюме аккаунта. Append-only: операций обновления
// и удаления в мок-наборе нет.
type Resume struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Template    string `json:"template"` // id шаблона из каталога или "uploaded"
	CreatedAt   string `json:"createdAt"`
	DownloadURL string `json:"downloadUrl"`
	FileType    string `json:"fileType,omitempty"`
	FileSize    int64  `json:"fileSize,omitempty"`
}

// ResumeTemplate - статическая запись каталога шаблонов, read-only
type ResumeTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

// ProfileBundle - все профильные данные одного аккаунта.
// Отсутствие данных представляется пустыми структурами, не ошибкой.
type ProfileBundle struct {
	Profile   Profile          `json:"profile"`
	Education []EducationEntry `json:"education"`
	Skills    []Skill          `json:"skills"`
	Resumes   []Resume         `json:"resumes"`
}

// HasSkill проверяет наличие навыка с таким именем (регистронезависимо)
func (b *ProfileBundle) HasSkill(name string) bool {
	for _, s := range b.Skills {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}
