package services

import (
	"unijobs_backend/internal/email"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService    AuthService
	ProfileService ProfileService
	JobService     JobService
	EmailService   email.Provider
}
