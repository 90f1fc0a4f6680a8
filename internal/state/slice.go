// Package state реализует клиентскую модель состояния: слайсы
// (auth/profile/jobs/ui) с каноническими данными домена и жизненным
// циклом асинхронных операций idle -> pending -> fulfilled | rejected.
package state

import (
	"sync"

	"github.com/google/uuid"

	"unijobs_backend/internal/logger"
	"unijobs_backend/pkg/apperrors"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
	StatusRejected  Status = "rejected"
)

// Operation - одна диспатчнутая асинхронная операция слайса.
type Operation struct {
	ID   string
	Name string

	mu     sync.Mutex
	status Status
	errMsg string
	done   chan struct{}
}

// Status возвращает текущую фазу операции
func (o *Operation) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// ErrMessage возвращает сообщение об ошибке (пусто, если операция не rejected)
func (o *Operation) ErrMessage() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.errMsg
}

// Wait блокируется до fulfilled или rejected
func (o *Operation) Wait() {
	<-o.done
}

// lifecycle - трекер жизненного цикла операций слайса.
//
// Состояние ведется на двух уровнях:
//   - по request id: точный статус каждой операции (ops);
//   - агрегатно: один isLoading/lastError на слайс, как в исходном
//     клиенте. При конкурентных операциях агрегатные поля определяются
//     последней завершившейся операцией (документированный last-write-wins).
type lifecycle struct {
	slice string

	mu        sync.Mutex
	ops       map[string]*Operation
	isLoading bool
	lastError string
}

func newLifecycle(slice string) lifecycle {
	return lifecycle{
		slice: slice,
		ops:   make(map[string]*Operation),
	}
}

// begin переводит новую операцию в pending:
// isLoading = true, ошибка сбрасывается
func (l *lifecycle) begin(name string) *Operation {
	op := &Operation{
		ID:     uuid.NewString(),
		Name:   name,
		status: StatusPending,
		done:   make(chan struct{}),
	}

	l.mu.Lock()
	l.ops[op.ID] = op
	l.isLoading = true
	l.lastError = ""
	l.mu.Unlock()

	logger.OpLog(l.slice, name, op.ID, string(StatusPending), nil)
	return op
}

// resolve завершает операцию: fulfilled при err == nil, иначе rejected
// с человекочитаемым сообщением в агрегатном поле ошибки
func (l *lifecycle) resolve(op *Operation, err error) {
	status := StatusFulfilled
	msg := ""
	if err != nil {
		status = StatusRejected
		msg = errorMessage(err)
	}

	op.mu.Lock()
	op.status = status
	op.errMsg = msg
	op.mu.Unlock()

	l.mu.Lock()
	l.isLoading = false
	l.lastError = msg
	l.mu.Unlock()

	logger.OpLog(l.slice, op.Name, op.ID, string(status), err)
	close(op.done)
}

// IsLoading - агрегатный флаг загрузки слайса (last-write-wins)
func (l *lifecycle) IsLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isLoading
}

// Err - агрегатное сообщение об ошибке слайса (пусто = ошибки нет)
func (l *lifecycle) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastError
}

// ClearError сбрасывает агрегатную ошибку
func (l *lifecycle) ClearError() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastError = ""
}

// OperationStatus - точный статус операции по request id
func (l *lifecycle) OperationStatus(requestID string) Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	op, ok := l.ops[requestID]
	if !ok {
		return StatusIdle
	}
	return op.Status()
}

// errorMessage достает человекочитаемое сообщение:
// у AppError берется Message, у остальных - Error()
func errorMessage(err error) string {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr.Message
	}
	return err.Error()
}
