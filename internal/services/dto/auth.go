package dto

import (
	"unijobs_backend/internal/models"
)

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Email           string          `json:"email" validate:"required,email"`
	Password        string          `json:"password" validate:"required,min=6"`
	ConfirmPassword string          `json:"confirmPassword" validate:"required,eqfield=Password"`
	FirstName       string          `json:"firstName" validate:"required"`
	LastName        string          `json:"lastName" validate:"required"`
	UserType        models.UserType `json:"userType" validate:"required,is-user-type"`

	// Поля студента
	College        string `json:"college,omitempty" validate:"required_if=UserType student"`
	GraduationYear string `json:"graduationYear,omitempty"`

	// Поля рекрутера
	Company string `json:"company,omitempty" validate:"required_if=UserType recruiter"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PasswordResetRequest - запрос сброса пароля
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirm - подтверждение сброса пароля
type PasswordResetConfirm struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// UpdateAccountRequest - частичное обновление полей самого аккаунта
// (имя, вуз, компания). nil-поля не трогаются.
type UpdateAccountRequest struct {
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	College        *string `json:"college,omitempty"`
	GraduationYear *string `json:"graduationYear,omitempty"`
	Company        *string `json:"company,omitempty"`
}

// AccountDTO - аккаунт без пароля, как его видит клиент
type AccountDTO struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	UserType       models.UserType `json:"userType"`
	College        string          `json:"college,omitempty"`
	GraduationYear string          `json:"graduationYear,omitempty"`
	Company        string          `json:"company,omitempty"`
	CreatedAt      string          `json:"createdAt"`
	IsVerified     bool            `json:"isVerified"`
	LoginMethod    string          `json:"loginMethod,omitempty"`
}

// AuthResponse - ответ credential-устанавливающих операций
type AuthResponse struct {
	User    AccountDTO `json:"user"`
	Token   string     `json:"token"`
	Message string     `json:"message"`
}

// ResetResponse - ответ запроса сброса пароля.
// В реальной системе токен ушел бы письмом, а не в ответе.
type ResetResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken"`
}

// FromAccount собирает AccountDTO из модели (пароль отброшен)
func FromAccount(a *models.Account) AccountDTO {
	return AccountDTO{
		ID:             a.ID,
		Email:          a.Email,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		UserType:       a.UserType,
		College:        a.College,
		GraduationYear: a.GraduationYear,
		Company:        a.Company,
		CreatedAt:      a.CreatedAt.Format("2006-01-02"),
		IsVerified:     a.IsVerified,
		LoginMethod:    a.LoginMethod,
	}
}
