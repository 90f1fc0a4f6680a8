package state

import (
	"context"
	"encoding/json"
	"sync"

	"unijobs_backend/internal/logger"
	"unijobs_backend/internal/services"
	"unijobs_backend/internal/services/dto"
	"unijobs_backend/internal/session"
)

// AuthSlice - канонические {account, token} плюс жизненный цикл
// операций аутентификации.
//
// На каждой успешной credential-устанавливающей операции пара
// {account, token} персистится в локальное хранилище под фиксированными
// ключами; Logout очищает и состояние, и хранилище. При конструировании
// слайс восстанавливается из хранилища.
type AuthSlice struct {
	lifecycle

	authService services.AuthService
	storage     *session.Storage

	mu      sync.Mutex
	account *dto.AccountDTO
	token   string
}

func NewAuthSlice(authService services.AuthService, storage *session.Storage) *AuthSlice {
	s := &AuthSlice{
		lifecycle:   newLifecycle("auth"),
		authService: authService,
		storage:     storage,
	}
	s.restore()
	return s
}

// restore - начальное состояние из локального хранилища
func (s *AuthSlice) restore() {
	raw := s.storage.Get(session.KeyUser)
	token := s.storage.Get(session.KeyToken)
	if raw == "" || token == "" {
		return
	}

	var account dto.AccountDTO
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		logger.Warn("failed to restore persisted session", "error", err.Error())
		return
	}

	s.mu.Lock()
	s.account = &account
	s.token = token
	s.mu.Unlock()
}

// Account возвращает копию текущего аккаунта (nil = не залогинен)
func (s *AuthSlice) Account() *dto.AccountDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account == nil {
		return nil
	}
	cp := *s.account
	return &cp
}

// Token возвращает текущий сессионный токен
func (s *AuthSlice) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// applyCredentials - общий fulfilled-редьюсер credential-операций
func (s *AuthSlice) applyCredentials(resp *dto.AuthResponse) {
	s.mu.Lock()
	account := resp.User
	s.account = &account
	s.token = resp.Token
	s.mu.Unlock()

	raw, err := json.Marshal(resp.User)
	if err != nil {
		logger.Warn("failed to marshal account for persistence", "error", err.Error())
		return
	}
	if err := s.storage.Set(session.KeyUser, string(raw)); err != nil {
		logger.Warn("failed to persist account", "error", err.Error())
	}
	if err := s.storage.Set(session.KeyToken, resp.Token); err != nil {
		logger.Warn("failed to persist token", "error", err.Error())
	}
}

// Login диспатчит операцию входа
func (s *AuthSlice) Login(ctx context.Context, email, password string) *Operation {
	op := s.begin("auth/login")
	go func() {
		resp, err := s.authService.Login(ctx, &dto.LoginRequest{Email: email, Password: password})
		if err != nil {
			s.resolve(op, err)
			return
		}
		s.applyCredentials(resp)
		s.resolve(op, nil)
	}()
	return op
}

// Register диспатчит операцию регистрации
func (s *AuthSlice) Register(ctx context.Context, req *dto.RegisterRequest) *Operation {
	op := s.begin("auth/register")
	go func() {
		resp, err := s.authService.Register(ctx, req)
		if err != nil {
			s.resolve(op, err)
			return
		}
		s.applyCredentials(resp)
		s.resolve(op, nil)
	}()
	return op
}

// LoginWithGoogle диспатчит федеративный вход
func (s *AuthSlice) LoginWithGoogle(ctx context.Context) *Operation {
	op := s.begin("auth/loginWithGoogle")
	go func() {
		resp, err := s.authService.LoginWithGoogle(ctx)
		if err != nil {
			s.resolve(op, err)
			return
		}
		s.applyCredentials(resp)
		s.resolve(op, nil)
	}()
	return op
}

// ResetPassword диспатчит запрос сброса пароля.
// Канонического состояния операция не меняет.
func (s *AuthSlice) ResetPassword(ctx context.Context, email string) *Operation {
	op := s.begin("auth/resetPassword")
	go func() {
		_, err := s.authService.ResetPassword(ctx, email)
		s.resolve(op, err)
	}()
	return op
}

// UpdatePassword диспатчит установку нового пароля по токену сброса
func (s *AuthSlice) UpdatePassword(ctx context.Context, token, newPassword string) *Operation {
	op := s.begin("auth/updatePassword")
	go func() {
		err := s.authService.UpdatePassword(ctx, token, newPassword)
		s.resolve(op, err)
	}()
	return op
}

// Logout - синхронный редьюсер: чистит состояние, ошибку и хранилище
func (s *AuthSlice) Logout() {
	s.mu.Lock()
	s.account = nil
	s.token = ""
	s.mu.Unlock()

	s.ClearError()

	if err := s.storage.Delete(session.KeyUser); err != nil {
		logger.Warn("failed to clear persisted account", "error", err.Error())
	}
	if err := s.storage.Delete(session.KeyToken); err != nil {
		logger.Warn("failed to clear persisted token", "error", err.Error())
	}
}
