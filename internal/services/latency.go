package services

import (
	"context"
	"math/rand"
	"time"
)

// LatencySimulator имитирует сетевую задержку mock-бэкенда перед тем,
// как операция коснется хранилища. Нужна, чтобы loading-состояния
// клиента вели себя как при настоящей сети.
type LatencySimulator func(ctx context.Context)

// NewLatencySimulator возвращает симулятор со случайной задержкой
// в диапазоне [minMS, maxMS] миллисекунд. Прерывается отменой контекста.
func NewLatencySimulator(minMS, maxMS int) LatencySimulator {
	return func(ctx context.Context) {
		if maxMS <= 0 {
			return
		}
		spread := maxMS - minMS
		if spread < 0 {
			spread = 0
		}
		delay := time.Duration(minMS) * time.Millisecond
		if spread > 0 {
			delay += time.Duration(rand.Intn(spread+1)) * time.Millisecond
		}

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}
}

// NoLatency - симулятор без задержки (тесты)
func NoLatency() LatencySimulator {
	return func(ctx context.Context) {}
}
