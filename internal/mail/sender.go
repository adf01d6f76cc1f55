// File: internal/mail/sender.go
package mail

import (
	"crypto/tls"
	"fmt"

	"bookinesia_backend/internal/config"

	gomail "github.com/go-mail/mail"
	"go.uber.org/zap"
)

// Envelope is the fully composed message handed to the delivery provider.
type Envelope struct {
	FromName    string
	FromAddress string
	To          string
	Subject     string
	HTMLBody    string
}

// Sender submits an envelope to the mail delivery provider. It returns
// provider delivery info on success.
type Sender interface {
	Send(env Envelope) (string, error)
}

// SMTPSender delivers envelopes over SMTP. With the default config this talks
// to SendGrid's SMTP relay using the account's two credentials.
type SMTPSender struct {
	host   string
	port   int
	user   string
	pass   string
	logger *zap.Logger
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender builds the sender from application config.
func NewSMTPSender(cfg *config.Config, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{
		host:   cfg.SMTPHost,
		port:   cfg.SMTPPort,
		user:   cfg.SMTPUsername,
		pass:   cfg.SMTPPassword,
		logger: logger,
	}
}

// Send dials the relay and submits the message. Each call is a fresh dial;
// there is no pooling and no retry, failures surface once to the caller.
func (s *SMTPSender) Send(env Envelope) (string, error) {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", env.FromAddress, env.FromName)
	m.SetHeader("To", env.To)
	m.SetHeader("Subject", env.Subject)
	m.SetBody("text/html", env.HTMLBody)

	d := gomail.NewDialer(s.host, s.port, s.user, s.pass)
	d.TLSConfig = &tls.Config{ServerName: s.host}

	if err := d.DialAndSend(m); err != nil {
		s.logger.Error("SMTP send failed",
			zap.String("host", s.host),
			zap.Int("port", s.port),
			zap.String("to", env.To),
			zap.Error(err),
		)
		return "", fmt.Errorf("smtp send: %w", err)
	}

	s.logger.Info("Email sent",
		zap.String("to", env.To),
		zap.String("subject", env.Subject),
	)
	// SMTP gives no message id back; report the accepted recipient instead.
	return fmt.Sprintf("delivered to %s", env.To), nil
}
