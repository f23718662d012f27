package email

import (
	"gopkg.in/gomail.v2"
)

// Provider - отправка транзакционных писем
type Provider interface {
	SendActivation(to, token string) error
	SendPasswordReset(to, token string) error
}

// Config - параметры SMTP и база для ссылок в письмах
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	BaseURL      string
}

// SMTPSender отправляет письма через внешний SMTP-релей
type SMTPSender struct {
	cfg Config
}

func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendActivation отправляет письмо со ссылкой активации аккаунта
func (s *SMTPSender) SendActivation(to, token string) error {
	body, err := renderActivation(activationData{
		ActionURL: s.cfg.BaseURL + "/api/v1/auth/activate/" + token,
	})
	if err != nil {
		return err
	}
	return s.send(to, "Подтверждение регистрации", body)
}

// SendPasswordReset отправляет письмо со ссылкой сброса пароля
func (s *SMTPSender) SendPasswordReset(to, token string) error {
	body, err := renderPasswordReset(resetData{
		ActionURL: s.cfg.BaseURL + "/password-reset/" + token,
	})
	if err != nil {
		return err
	}
	return s.send(to, "Сброс пароля", body)
}

func (s *SMTPSender) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromEmail, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		s.cfg.SMTPHost,
		s.cfg.SMTPPort,
		s.cfg.SMTPUsername,
		s.cfg.SMTPPassword,
	)

	return d.DialAndSend(m)
}
