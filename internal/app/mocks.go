package app

import (
	"sync"
)

// MockEmailProvider используется для тестов и локальной разработки.
// Письма не отправляются, а копятся в памяти.
type MockEmailProvider struct {
	mu   sync.Mutex
	sent []SentEmail
}

// SentEmail - запись о "отправленном" письме
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

func (m *MockEmailProvider) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentEmail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *MockEmailProvider) SendPasswordReset(to, token string) error {
	return m.Send(to, "Password Reset Request", "reset token: "+token)
}

func (m *MockEmailProvider) SendWelcome(to, firstName string) error {
	return m.Send(to, "Welcome!", "welcome, "+firstName)
}

func (m *MockEmailProvider) Validate() error { return nil }
func (m *MockEmailProvider) Close() error    { return nil }

// Sent возвращает копию накопленных писем
func (m *MockEmailProvider) Sent() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentEmail(nil), m.sent...)
}
