package email

import (
	"errors"

	"gopkg.in/gomail.v2"
)

// Config - настройки SMTP провайдера
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPProvider отправляет письма через gomail
type SMTPProvider struct {
	config Config
	dialer *gomail.Dialer
}

func NewSMTPProvider(config Config) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) SendPasswordReset(to, token string) error {
	body, err := renderPasswordReset(token)
	if err != nil {
		return err
	}
	return p.Send(to, "Reset your password", body)
}

func (p *SMTPProvider) SendWelcome(to, firstName string) error {
	body, err := renderWelcome(firstName)
	if err != nil {
		return err
	}
	return p.Send(to, "Welcome to UniJobs", body)
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return errors.New("smtp host is not configured")
	}
	if p.config.FromEmail == "" {
		return errors.New("from email is not configured")
	}
	return nil
}

func (p *SMTPProvider) Close() error { return nil }
