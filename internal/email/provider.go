package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(to, subject, body string) error

	// SendPasswordReset отправляет письмо со ссылкой сброса пароля
	SendPasswordReset(to, token string) error

	// SendWelcome отправляет приветственное письмо после регистрации
	SendWelcome(to, firstName string) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	// Close закрывает соединение с провайдером
	Close() error
}
