package state

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"unijobs_backend/internal/models"
)

// DefaultToastDuration - срок жизни уведомления по умолчанию
const DefaultToastDuration = 6 * time.Second

// Toast - одно UI-уведомление
type Toast struct {
	ID       string               `json:"id"`
	Message  string               `json:"message"`
	Severity models.ToastSeverity `json:"severity"`
	Duration time.Duration        `json:"duration"`
	AddedAt  time.Time            `json:"addedAt"`
}

// Expired сообщает, истек ли срок жизни уведомления
func (t Toast) Expired(now time.Time) bool {
	return now.Sub(t.AddedAt) >= t.Duration
}

// UISlice - очередь UI-уведомлений. Все редьюсеры синхронные:
// асинхронных операций у слайса нет.
type UISlice struct {
	mu     sync.Mutex
	toasts []Toast

	now func() time.Time
}

func NewUISlice() *UISlice {
	return &UISlice{now: time.Now}
}

// ShowToast добавляет уведомление и возвращает его id.
// duration <= 0 означает срок по умолчанию.
func (s *UISlice) ShowToast(message string, severity models.ToastSeverity, duration time.Duration) string {
	if duration <= 0 {
		duration = DefaultToastDuration
	}

	toast := Toast{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: severity,
		Duration: duration,
		AddedAt:  s.now(),
	}

	s.mu.Lock()
	s.toasts = append(s.toasts, toast)
	s.mu.Unlock()

	return toast.ID
}

// HideToast убирает уведомление по id. Неизвестный id игнорируется.
func (s *UISlice) HideToast(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
}

// Toasts возвращает копию текущей очереди в порядке добавления
func (s *UISlice) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Toast(nil), s.toasts...)
}

// Prune убирает уведомления с истекшим сроком жизни,
// возвращает число удаленных
func (s *UISlice) Prune() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.toasts[:0]
	removed := 0
	for _, t := range s.toasts {
		if t.Expired(now) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.toasts = kept
	return removed
}
