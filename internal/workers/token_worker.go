package workers

import (
	"context"
	"time"

	"unijobs_backend/internal/logger"
	"unijobs_backend/internal/repositories"
)

// DefaultTokenSweepInterval - период уборки просроченных токенов сброса
const DefaultTokenSweepInterval = 10 * time.Minute

// TokenWorker периодически удаляет просроченные токены сброса пароля.
// Токены и так отвергаются при попытке использования; уборка нужна,
// чтобы хранилище не росло бесконечно.
type TokenWorker struct {
	resetTokenRepo repositories.ResetTokenRepository
	interval       time.Duration
}

func NewTokenWorker(resetTokenRepo repositories.ResetTokenRepository, interval time.Duration) *TokenWorker {
	if interval <= 0 {
		interval = DefaultTokenSweepInterval
	}
	return &TokenWorker{
		resetTokenRepo: resetTokenRepo,
		interval:       interval,
	}
}

// Start запускает фоновую уборку токенов
func (w *TokenWorker) Start(ctx context.Context) {
	go w.sweepExpiredTokens(ctx)
}

func (w *TokenWorker) sweepExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token worker stopped")
			return
		case <-ticker.C:
			removed := w.resetTokenRepo.DeleteExpired(time.Now())
			if removed > 0 {
				logger.WorkerLog("token_worker", "sweep_expired_tokens", nil)
				logger.Info("Removed expired reset tokens", "count", removed)
			}
		}
	}
}
