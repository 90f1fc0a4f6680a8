package workers_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unijobs_backend/internal/models"
	"unijobs_backend/internal/repositories"
	"unijobs_backend/internal/state"
	"unijobs_backend/internal/store"
	"unijobs_backend/internal/workers"
)

func saveResetToken(t *testing.T, repo repositories.ResetTokenRepository, token string, expiresAt time.Time) {
	t.Helper()
	err := repo.Save(&models.PasswordResetToken{
		Token:     token,
		UserID:    "u1",
		Email:     "u1@test.edu",
		ExpiresAt: expiresAt,
	})
	require.NoError(t, err)
}

func TestTokenWorkerSweepsExpiredTokens(t *testing.T) {
	t.Parallel()

	dataStore := store.New(nil)
	repo := repositories.NewResetTokenRepository(dataStore)

	saveResetToken(t, repo, "stale-1", time.Now().Add(-time.Hour))
	saveResetToken(t, repo, "stale-2", time.Now().Add(-time.Minute))
	saveResetToken(t, repo, "live", time.Now().Add(time.Hour))
	require.Equal(t, 3, repo.Count())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workers.NewTokenWorker(repo, 2*time.Millisecond).Start(ctx)

	assert.Eventually(t, func() bool {
		return repo.Count() == 1
	}, time.Second, 5*time.Millisecond, "просроченные токены должны быть убраны")

	// Живой токен уборка не трогает
	kept, err := repo.Find("live")
	require.NoError(t, err)
	assert.Equal(t, "live", kept.Token)
}

func TestTokenWorkerStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	dataStore := store.New(nil)
	repo := repositories.NewResetTokenRepository(dataStore)

	ctx, cancel := context.WithCancel(context.Background())
	workers.NewTokenWorker(repo, 2*time.Millisecond).Start(ctx)

	cancel()
	time.Sleep(50 * time.Millisecond)

	// После остановки просроченные токены больше не убираются
	saveResetToken(t, repo, "stale-after-stop", time.Now().Add(-time.Hour))
	assert.Never(t, func() bool {
		return repo.Count() == 0
	}, 100*time.Millisecond, 10*time.Millisecond)
}

func TestToastWorkerPrunesExpiredToasts(t *testing.T) {
	t.Parallel()

	ui := state.NewUISlice()
	ui.ShowToast("stale", models.ToastSeverityInfo, time.Nanosecond)
	ui.ShowToast("fresh", models.ToastSeveritySuccess, time.Hour)
	require.Len(t, ui.Toasts(), 2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workers.NewToastWorker(ui, 2*time.Millisecond).Start(ctx)

	assert.Eventually(t, func() bool {
		return len(ui.Toasts()) == 1
	}, time.Second, 5*time.Millisecond, "истекшее уведомление должно быть убрано")

	toasts := ui.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "fresh", toasts[0].Message)
}
