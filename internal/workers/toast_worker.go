package workers

import (
	"context"
	"time"

	"unijobs_backend/internal/logger"
	"unijobs_backend/internal/state"
)

// DefaultToastSweepInterval - период уборки истекших уведомлений
const DefaultToastSweepInterval = time.Second

// ToastWorker убирает из UI-слайса уведомления с истекшим сроком жизни.
type ToastWorker struct {
	ui       *state.UISlice
	interval time.Duration
}

func NewToastWorker(ui *state.UISlice, interval time.Duration) *ToastWorker {
	if interval <= 0 {
		interval = DefaultToastSweepInterval
	}
	return &ToastWorker{
		ui:       ui,
		interval: interval,
	}
}

// Start запускает фоновую уборку уведомлений
func (w *ToastWorker) Start(ctx context.Context) {
	go w.pruneToasts(ctx)
}

func (w *ToastWorker) pruneToasts(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Toast worker stopped")
			return
		case <-ticker.C:
			if removed := w.ui.Prune(); removed > 0 {
				logger.Debug("Pruned expired toasts", "count", removed)
			}
		}
	}
}
