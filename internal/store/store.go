// Package store держит все mock-коллекции приложения в памяти.
// Store - единственный источник правды: конструируется один раз на процесс
// и внедряется в репозитории (никаких глобальных переменных-массивов,
// тесты получают изолированные фикстуры).
package store

import (
	"sync"

	"unijobs_backend/internal/models"
)

// Store - in-memory хранилище на время жизни процесса.
// Mutex нужен потому, что HTTP-обработчики конкурентны, даже если
// моделируемый клиент однопоточный. Коллекции экспортированы: доступ
// к ним идет только из пакета repositories под блокировкой.
type Store struct {
	sync.RWMutex

	Accounts    []*models.Account
	ResetTokens map[string]*models.PasswordResetToken

	// Профильные данные аккаунта появляются лениво при первой записи
	Profiles map[string]*models.ProfileBundle

	Jobs         []*models.Job
	Applications []*models.Application
	SavedJobs    []*models.SavedJob

	// Статический каталог, задается при конструировании
	Templates []models.ResumeTemplate
}

// New создает пустое хранилище с каталогом шаблонов резюме
func New(templates []models.ResumeTemplate) *Store {
	return &Store{
		ResetTokens: make(map[string]*models.PasswordResetToken),
		Profiles:    make(map[string]*models.ProfileBundle),
		Templates:   templates,
	}
}

// Reset очищает все изменяемые коллекции (для тестов)
func (s *Store) Reset() {
	s.Lock()
	defer s.Unlock()

	s.Accounts = nil
	s.ResetTokens = make(map[string]*models.PasswordResetToken)
	s.Profiles = make(map[string]*models.ProfileBundle)
	s.Jobs = nil
	s.Applications = nil
	s.SavedJobs = nil
}
