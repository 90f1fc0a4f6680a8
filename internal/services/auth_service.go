package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"unijobs_backend/internal/auth"
	"unijobs_backend/internal/email"
	"unijobs_backend/internal/logger"
	"unijobs_backend/internal/models"
	"unijobs_backend/internal/repositories"
	"unijobs_backend/internal/services/dto"
	"unijobs_backend/pkg/apperrors"
)

// resetTokenTTL - время жизни токена сброса пароля
const resetTokenTTL = time.Hour

// FederatedIdentity - профиль федеративного провайдера (mock Google OAuth)
type FederatedIdentity struct {
	Email          string
	FirstName      string
	LastName       string
	UserType       models.UserType
	College        string
	GraduationYear string
}

// GoogleIdentityPool - фиксированный пул identity для mock-входа через Google
var GoogleIdentityPool = []FederatedIdentity{
	{
		Email:          "student@gmail.com",
		FirstName:      "Alex",
		LastName:       "Kumar",
		UserType:       models.UserTypeStudent,
		College:        "Delhi University",
		GraduationYear: "2025",
	},
	{
		Email:          "priya.google@gmail.com",
		FirstName:      "Priya",
		LastName:       "Patel",
		UserType:       models.UserTypeStudent,
		College:        "Mumbai University",
		GraduationYear: "2024",
	},
}

// IdentityPicker выбирает индекс identity из пула.
// Внедряется, чтобы тесты могли зафиксировать выбор.
type IdentityPicker func(poolSize int) int

// RandomIdentityPicker - выбор по умолчанию (недетерминированный, как в mock)
func RandomIdentityPicker(poolSize int) int {
	return rand.Intn(poolSize)
}

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	LoginWithGoogle(ctx context.Context) (*dto.AuthResponse, error)
	ResetPassword(ctx context.Context, emailAddr string) (*dto.ResetResponse, error)
	UpdatePassword(ctx context.Context, token, newPassword string) error
	GetCurrentUser(ctx context.Context, token string) (*dto.AccountDTO, error)
	UpdateAccount(ctx context.Context, accountID string, req *dto.UpdateAccountRequest) (*dto.AccountDTO, error)
}

type AuthServiceImpl struct {
	accountRepo    repositories.AccountRepository
	resetTokenRepo repositories.ResetTokenRepository
	emailProvider  email.Provider
	identityPicker IdentityPicker
	latency        LatencySimulator
}

func NewAuthService(
	accountRepo repositories.AccountRepository,
	resetTokenRepo repositories.ResetTokenRepository,
	emailProvider email.Provider,
	identityPicker IdentityPicker,
	latency LatencySimulator,
) AuthService {
	if identityPicker == nil {
		identityPicker = RandomIdentityPicker
	}
	return &AuthServiceImpl{
		accountRepo:    accountRepo,
		resetTokenRepo: resetTokenRepo,
		emailProvider:  emailProvider,
		identityPicker: identityPicker,
		latency:        latency,
	}
}

// Login - аутентификация по email и паролю.
// Email сравнивается регистронезависимо.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	s.latency(ctx)

	account, err := s.accountRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, account.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !account.IsVerified {
		return nil, apperrors.ErrAccountUnverified
	}

	token, err := auth.GenerateToken(account.ID, account.UserType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		User:    dto.FromAccount(account),
		Token:   token,
		Message: "Login successful",
	}, nil
}

// Register - регистрация нового аккаунта.
// В mock-режиме аккаунт авто-верифицируется.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	s.latency(ctx)

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	account := &models.Account{
		ID:             uuid.NewString(),
		Email:          req.Email,
		PasswordHash:   passwordHash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		UserType:       req.UserType,
		College:        req.College,
		GraduationYear: req.GraduationYear,
		Company:        req.Company,
		CreatedAt:      time.Now(),
		IsVerified:     true, // авто-верификация в mock
	}

	if err := s.accountRepo.Create(account); err != nil {
		if apperrors.Is(err, repositories.ErrAccountAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(account.ID, account.UserType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Письмо не критично для регистрации
	if err := s.emailProvider.SendWelcome(account.Email, account.FirstName); err != nil {
		logger.CtxWarn(ctx, "failed to send welcome email", "email", account.Email, "error", err.Error())
	}

	return &dto.AuthResponse{
		User:    dto.FromAccount(account),
		Token:   token,
		Message: "Registration successful",
	}, nil
}

// LoginWithGoogle - mock федеративного входа: выбирает identity из пула
// и находит-или-создает соответствующий аккаунт
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context) (*dto.AuthResponse, error) {
	s.latency(ctx)

	identity := GoogleIdentityPool[s.identityPicker(len(GoogleIdentityPool))]

	account, err := s.accountRepo.FindByEmail(identity.Email)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.InternalError(err)
		}

		account = &models.Account{
			ID:             uuid.NewString(),
			Email:          identity.Email,
			FirstName:      identity.FirstName,
			LastName:       identity.LastName,
			UserType:       identity.UserType,
			College:        identity.College,
			GraduationYear: identity.GraduationYear,
			CreatedAt:      time.Now(),
			IsVerified:     true,
			LoginMethod:    "google",
		}

		if err := s.accountRepo.Create(account); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	token, err := auth.GenerateToken(account.ID, account.UserType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		User:    dto.FromAccount(account),
		Token:   token,
		Message: "Google login successful",
	}, nil
}

// ResetPassword - выпускает одноразовый токен сброса с TTL в один час.
// В реальной системе токен ушел бы только письмом; mock возвращает его
// в ответе, чтобы поток был проходим без почты.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, emailAddr string) (*dto.ResetResponse, error) {
	s.latency(ctx)

	account, err := s.accountRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resetToken := &models.PasswordResetToken{
		Token:     "reset_" + uuid.NewString(),
		UserID:    account.ID,
		Email:     account.Email,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}

	if err := s.resetTokenRepo.Save(resetToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendPasswordReset(account.Email, resetToken.Token); err != nil {
		logger.CtxWarn(ctx, "failed to send reset email", "email", account.Email, "error", err.Error())
	}

	return &dto.ResetResponse{
		Message:    "Password reset email sent successfully",
		ResetToken: resetToken.Token,
	}, nil
}

// UpdatePassword - одноразовое использование токена сброса.
// Просроченный токен удаляется при первой же попытке.
func (s *AuthServiceImpl) UpdatePassword(ctx context.Context, token, newPassword string) error {
	s.latency(ctx)

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ValidationError(err.Error())
	}

	tokenData, err := s.resetTokenRepo.Find(token)
	if err != nil {
		return apperrors.ErrInvalidResetToken
	}

	if tokenData.Expired(time.Now()) {
		_ = s.resetTokenRepo.Delete(token)
		return apperrors.ErrResetTokenExpired
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.accountRepo.UpdatePassword(tokenData.UserID, passwordHash); err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.InternalError(err)
	}

	// Удаляем использованный токен
	_ = s.resetTokenRepo.Delete(token)
	return nil
}

// GetCurrentUser - аккаунт по сессионному токену
func (s *AuthServiceImpl) GetCurrentUser(ctx context.Context, token string) (*dto.AccountDTO, error) {
	s.latency(ctx)

	claims, err := auth.ParseToken(token)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid token")
	}

	account, err := s.accountRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrAccountNotFound
	}

	resp := dto.FromAccount(account)
	return &resp, nil
}

// UpdateAccount - частичное обновление полей аккаунта
func (s *AuthServiceImpl) UpdateAccount(ctx context.Context, accountID string, req *dto.UpdateAccountRequest) (*dto.AccountDTO, error) {
	s.latency(ctx)

	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		return nil, apperrors.ErrAccountNotFound
	}

	if req.FirstName != nil {
		account.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		account.LastName = *req.LastName
	}
	if req.College != nil {
		account.College = *req.College
	}
	if req.GraduationYear != nil {
		account.GraduationYear = *req.GraduationYear
	}
	if req.Company != nil {
		account.Company = *req.Company
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.FromAccount(account)
	return &resp, nil
}
