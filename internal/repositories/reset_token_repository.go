package repositories

import (
	"errors"
	"time"

	"unijobs_backend/internal/models"
	"unijobs_backend/internal/store"
)

var ErrTokenNotFound = errors.New("reset token not found")

type ResetTokenRepository interface {
	Save(token *models.PasswordResetToken) error
	Find(token string) (*models.PasswordResetToken, error)
	Delete(token string) error
	DeleteExpired(now time.Time) int
	Count() int
}

type ResetTokenRepositoryImpl struct {
	store *store.Store
}

func NewResetTokenRepository(s *store.Store) ResetTokenRepository {
	return &ResetTokenRepositoryImpl{store: s}
}

func (r *ResetTokenRepositoryImpl) Save(token *models.PasswordResetToken) error {
	r.store.Lock()
	defer r.store.Unlock()

	cp := *token
	r.store.ResetTokens[token.Token] = &cp
	return nil
}

func (r *ResetTokenRepositoryImpl) Find(token string) (*models.PasswordResetToken, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	t, ok := r.store.ResetTokens[token]
	if !ok {
		return nil, ErrTokenNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *ResetTokenRepositoryImpl) Delete(token string) error {
	r.store.Lock()
	defer r.store.Unlock()

	if _, ok := r.store.ResetTokens[token]; !ok {
		return ErrTokenNotFound
	}
	delete(r.store.ResetTokens, token)
	return nil
}

// DeleteExpired удаляет все просроченные токены, возвращает число удаленных
func (r *ResetTokenRepositoryImpl) DeleteExpired(now time.Time) int {
	r.store.Lock()
	defer r.store.Unlock()

	removed := 0
	for key, t := range r.store.ResetTokens {
		if t.Expired(now) {
			delete(r.store.ResetTokens, key)
			removed++
		}
	}
	return removed
}

func (r *ResetTokenRepositoryImpl) Count() int {
	r.store.RLock()
	defer r.store.RUnlock()
	return len(r.store.ResetTokens)
}
