package service

import (
	"crypto/tls"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"verification-mailer/util"
)

const verificationSubject = "Your Verification Code"

const verificationBodyTemplate = `Hello,

Your verification code is: %s

This code is valid for 10 minutes.

If you did not request this, please ignore this email.

Regards,
Support Team`

// MailDialer is the mail capability the service delivers through.
// *gomail.Dialer satisfies it.
type MailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailService struct {
	dialer MailDialer
	from   string
	logger *zap.Logger
}

// NewEmailService wires an EmailService around an existing dialer
func NewEmailService(dialer MailDialer, from string, logger *zap.Logger) *EmailService {
	return &EmailService{
		dialer: dialer,
		from:   from,
		logger: logger,
	}
}

// NewSMTPDialer builds a gomail dialer from SMTP settings
func NewSMTPDialer(cfg util.SMTPConfig) *gomail.Dialer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	if cfg.InsecureSkipVerify {
		dialer.TLSConfig = &tls.Config{InsecureSkipVerify: true, ServerName: cfg.Host}
	}
	return dialer
}

// FormatSender renders the From header, e.g. "Support Team <support@example.com>"
func FormatSender(name, address string) string {
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}

// VerificationEmailBody renders the fixed plaintext body for code
func VerificationEmailBody(code string) string {
	return fmt.Sprintf(verificationBodyTemplate, code)
}

// SendVerificationEmail mails code to toEmail and echoes the code back.
// The code is opaque here: it is interpolated into the body and nothing else.
func (s *EmailService) SendVerificationEmail(toEmail string, code string) (string, error) {
	m := gomail.NewMessage()
	if s.from != "" {
		m.SetHeader("From", s.from)
	}
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", verificationSubject)
	m.SetBody("text/plain", VerificationEmailBody(code))

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("send verification email: %w", err)
	}

	s.logger.Info("verification email sent", zap.String("to", toEmail))
	return code, nil
}
