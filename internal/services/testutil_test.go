package services_test

import (
	"sync"
	"testing"

	"unijobs_backend/internal/config"
	"unijobs_backend/internal/models"
	"unijobs_backend/internal/repositories"
	"unijobs_backend/internal/services"
	"unijobs_backend/internal/store"
)

var configOnce sync.Once

// setupTestConfig фиксирует тестовую конфигурацию без чтения yaml
func setupTestConfig() {
	configOnce.Do(func() {
		cfg := &config.Config{}
		cfg.Server.Env = "test"
		cfg.JWT.Secret = "test_secret_key_12345"
		cfg.JWT.TTL = 60
		config.AppConfig = cfg
	})
}

// capturingEmailProvider копит письма в памяти
type capturingEmailProvider struct {
	mu    sync.Mutex
	sent  []string // адресаты
	reset []string // токены сброса
}

func (p *capturingEmailProvider) Send(to, subject, body string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, to)
	return nil
}

func (p *capturingEmailProvider) SendPasswordReset(to, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, to)
	p.reset = append(p.reset, token)
	return nil
}

func (p *capturingEmailProvider) SendWelcome(to, firstName string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, to)
	return nil
}

func (p *capturingEmailProvider) Validate() error { return nil }
func (p *capturingEmailProvider) Close() error    { return nil }

func (p *capturingEmailProvider) resetTokens() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.reset...)
}

// fixture - изолированный набор store + сервисы для одного теста
type fixture struct {
	store          *store.Store
	accounts       repositories.AccountRepository
	resetTokens    repositories.ResetTokenRepository
	authService    services.AuthService
	profileService services.ProfileService
	jobService     services.JobService
	emails         *capturingEmailProvider
}

var testTemplates = []models.ResumeTemplate{
	{ID: "modern", Name: "Modern"},
	{ID: "professional", Name: "Professional"},
	{ID: "executive", Name: "Executive"},
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	setupTestConfig()

	dataStore := store.New(testTemplates)
	t.Cleanup(dataStore.Reset)

	accountRepo := repositories.NewAccountRepository(dataStore)
	resetTokenRepo := repositories.NewResetTokenRepository(dataStore)
	emails := &capturingEmailProvider{}

	// Детерминированный picker: всегда первый из пула
	picker := func(poolSize int) int { return 0 }

	return &fixture{
		store:       dataStore,
		accounts:    accountRepo,
		resetTokens: resetTokenRepo,
		authService: services.NewAuthService(
			accountRepo,
			resetTokenRepo,
			emails,
			picker,
			services.NoLatency(),
		),
		profileService: services.NewProfileService(
			repositories.NewProfileRepository(dataStore),
			services.NoLatency(),
		),
		jobService: services.NewJobService(
			repositories.NewJobRepository(dataStore),
			services.NoLatency(),
		),
		emails: emails,
	}
}
