package repositories

import (
	"errors"
	"strings"

	"unijobs_backend/internal/models"
	"unijobs_backend/internal/store"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
)

type AccountRepository interface {
	Create(account *models.Account) error
	FindByID(id string) (*models.Account, error)
	FindByEmail(email string) (*models.Account, error)
	Update(account *models.Account) error
	UpdatePassword(accountID, passwordHash string) error
	Count() int
}

type AccountRepositoryImpl struct {
	store *store.Store
}

func NewAccountRepository(s *store.Store) AccountRepository {
	return &AccountRepositoryImpl{store: s}
}

// Create добавляет аккаунт. Email уникален регистронезависимо.
func (r *AccountRepositoryImpl) Create(account *models.Account) error {
	r.store.Lock()
	defer r.store.Unlock()

	for _, a := range r.store.Accounts {
		if strings.EqualFold(a.Email, account.Email) {
			return ErrAccountAlreadyExists
		}
	}

	cp := *account
	r.store.Accounts = append(r.store.Accounts, &cp)
	return nil
}

func (r *AccountRepositoryImpl) FindByID(id string) (*models.Account, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	for _, a := range r.store.Accounts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (r *AccountRepositoryImpl) FindByEmail(email string) (*models.Account, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	for _, a := range r.store.Accounts {
		if strings.EqualFold(a.Email, email) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (r *AccountRepositoryImpl) Update(account *models.Account) error {
	r.store.Lock()
	defer r.store.Unlock()

	for i, a := range r.store.Accounts {
		if a.ID == account.ID {
			cp := *account
			r.store.Accounts[i] = &cp
			return nil
		}
	}
	return ErrAccountNotFound
}

func (r *AccountRepositoryImpl) UpdatePassword(accountID, passwordHash string) error {
	r.store.Lock()
	defer r.store.Unlock()

	for _, a := range r.store.Accounts {
		if a.ID == accountID {
			a.PasswordHash = passwordHash
			return nil
		}
	}
	return ErrAccountNotFound
}

func (r *AccountRepositoryImpl) Count() int {
	r.store.RLock()
	defer r.store.RUnlock()
	return len(r.store.Accounts)
}
