package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unijobs_backend/internal/models"
	"unijobs_backend/internal/services"
	"unijobs_backend/internal/services/dto"
	"unijobs_backend/pkg/apperrors"
)

func registerStudent(t *testing.T, f *fixture, email string) *dto.AuthResponse {
	t.Helper()

	resp, err := f.authService.Register(context.Background(), &dto.RegisterRequest{
		Email:           email,
		Password:        "password123",
		ConfirmPassword: "password123",
		FirstName:       "Test",
		LastName:        "Student",
		UserType:        models.UserTypeStudent,
		College:         "Test College",
		GraduationYear:  "2026",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	regResp := registerStudent(t, f, "new.student@test.edu")
	assert.NotEmpty(t, regResp.Token)
	assert.True(t, regResp.User.IsVerified, "регистрация авто-верифицирует аккаунт")
	assert.Equal(t, "Registration successful", regResp.Message)
	assert.Equal(t, 1, f.accounts.Count())

	loginResp, err := f.authService.Login(ctx, &dto.LoginRequest{
		Email:    "new.student@test.edu",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, regResp.User.ID, loginResp.User.ID)
	assert.NotEmpty(t, loginResp.Token)
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	registerStudent(t, f, "Mixed.Case@Test.edu")

	resp, err := f.authService.Login(context.Background(), &dto.LoginRequest{
		Email:    "mixed.case@test.edu",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mixed.Case@Test.edu", resp.User.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	registerStudent(t, f, "taken@test.edu")

	_, err := f.authService.Register(context.Background(), &dto.RegisterRequest{
		Email:           "TAKEN@test.edu",
		Password:        "otherpass",
		ConfirmPassword: "otherpass",
		FirstName:       "Second",
		LastName:        "Student",
		UserType:        models.UserTypeStudent,
		College:         "Other College",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.authService.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@test.edu",
		Password: "whatever",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	registerStudent(t, f, "student@test.edu")

	_, err := f.authService.Login(context.Background(), &dto.LoginRequest{
		Email:    "student@test.edu",
		Password: "wrong-password",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}

func TestLoginUnverifiedAccount(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	registerStudent(t, f, "pending@test.edu")

	// Регистрация авто-верифицирует, флаг снимаем напрямую в хранилище
	f.store.Lock()
	for _, acc := range f.store.Accounts {
		acc.IsVerified = false
	}
	f.store.Unlock()

	_, err := f.authService.Login(context.Background(), &dto.LoginRequest{
		Email:    "pending@test.edu",
		Password: "password123",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnverified, appErr.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	registerStudent(t, f, "reset.me@test.edu")

	resetResp, err := f.authService.ResetPassword(ctx, "reset.me@test.edu")
	require.NoError(t, err)
	require.NotEmpty(t, resetResp.ResetToken)

	// Токен ушел и "почтой"
	assert.Contains(t, f.emails.resetTokens(), resetResp.ResetToken)

	err = f.authService.UpdatePassword(ctx, resetResp.ResetToken, "newpassword456")
	require.NoError(t, err)

	// Старый пароль больше не подходит
	_, err = f.authService.Login(ctx, &dto.LoginRequest{
		Email:    "reset.me@test.edu",
		Password: "password123",
	})
	require.Error(t, err)

	// Новый подходит
	_, err = f.authService.Login(ctx, &dto.LoginRequest{
		Email:    "reset.me@test.edu",
		Password: "newpassword456",
	})
	require.NoError(t, err)
}

func TestResetTokenSingleUse(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	registerStudent(t, f, "once@test.edu")

	resetResp, err := f.authService.ResetPassword(ctx, "once@test.edu")
	require.NoError(t, err)

	require.NoError(t, f.authService.UpdatePassword(ctx, resetResp.ResetToken, "firstnewpass"))

	err = f.authService.UpdatePassword(ctx, resetResp.ResetToken, "secondnewpass")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidToken, appErr.Code)
}

func TestResetTokenExpired(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	registerStudent(t, f, "late@test.edu")

	resetResp, err := f.authService.ResetPassword(ctx, "late@test.edu")
	require.NoError(t, err)

	// Просрочиваем токен напрямую в хранилище
	f.store.Lock()
	f.store.ResetTokens[resetResp.ResetToken].ExpiresAt = time.Now().Add(-time.Minute)
	f.store.Unlock()

	err = f.authService.UpdatePassword(ctx, resetResp.ResetToken, "toolatepass")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeTokenExpired, appErr.Code)

	// Просроченный токен удален, повторная попытка дает invalid
	err = f.authService.UpdatePassword(ctx, resetResp.ResetToken, "toolatepass")
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidToken, appErr.Code)
}

func TestResetPasswordUnknownEmail(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.authService.ResetPassword(context.Background(), "ghost@test.edu")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// Для несуществующего адреса токен не создается
	assert.Equal(t, 0, f.resetTokens.Count())
	assert.Empty(t, f.emails.resetTokens())
}

func TestLoginWithGoogleCreatesThenReuses(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	// picker фикстуры всегда выбирает первый identity пула
	first, err := f.authService.LoginWithGoogle(ctx)
	require.NoError(t, err)
	assert.Equal(t, services.GoogleIdentityPool[0].Email, first.User.Email)
	assert.Equal(t, "google", first.User.LoginMethod)

	second, err := f.authService.LoginWithGoogle(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID, "повторный вход не создает новый аккаунт")
}

func TestGetCurrentUser(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	regResp := registerStudent(t, f, "me@test.edu")

	account, err := f.authService.GetCurrentUser(ctx, regResp.Token)
	require.NoError(t, err)
	assert.Equal(t, regResp.User.ID, account.ID)

	_, err = f.authService.GetCurrentUser(ctx, "not-a-token")
	require.Error(t, err)
}

func TestUpdateAccount(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	regResp := registerStudent(t, f, "edit.me@test.edu")

	newFirst := "Renamed"
	newCollege := "New College"
	updated, err := f.authService.UpdateAccount(ctx, regResp.User.ID, &dto.UpdateAccountRequest{
		FirstName: &newFirst,
		College:   &newCollege,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.FirstName)
	assert.Equal(t, "New College", updated.College)
	assert.Equal(t, "Student", updated.LastName, "непереданные поля не трогаются")
}
