package infra

import (
	"fmt"
	"net/smtp"

	"github.com/verumrexo/tip-harmony/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for sending report emails with
// optional PDF attachments.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// SendReport sends the monthly report text, attaching the PDF when a path
// is given.
func (m *Mailer) SendReport(to, subject, body, attachmentPath string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if attachmentPath != "" {
		if _, err := e.AttachFile(attachmentPath); err != nil {
			return fmt.Errorf("mailer: attach report PDF: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
