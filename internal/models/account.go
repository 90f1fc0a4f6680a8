package models

import "time"

// Account - зарегистрированный пользователь (студент или рекрутер).
// Email уникален регистронезависимо. Аккаунты никогда не удаляются.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	UserType     UserType  `json:"userType"`
	CreatedAt    time.Time `json:"createdAt"`
	IsVerified   bool      `json:"isVerified"`

	// Поля студента
	College        string `json:"college,omitempty"`
	GraduationYear string `json:"graduationYear,omitempty"`

	// Поля рекрутера
	Company string `json:"company,omitempty"`

	// Проставляется при федеративном входе ("google")
	LoginMethod string `json:"loginMethod,omitempty"`
}

// PasswordResetToken - одноразовый токен сброса пароля.
// Умирает либо по TTL, либо после первого успешного использования.
type PasswordResetToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired сообщает, просрочен ли токен на момент now
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
