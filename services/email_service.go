package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"copbike-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// SendWelcomeEmail greets a new rider. Failures are not fatal to
// registration; callers log and move on.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Bem-vindo ao CopBike!")
	m.SetBody("text/plain", fmt.Sprintf(
		"Olá %s,\n\nSua conta está pronta. Registre suas pedaladas, acompanhe o CO2 que você evita e participe dos desafios da comunidade.\n\nEquipe CopBike",
		name,
	))

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}
