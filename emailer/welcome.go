package emailer

import (
	"fmt"
	"html"

	"github.com/ibrahimfakhry/portfolio/model"
)

// WelcomeMailer greets every newly registered user by e-mail
type WelcomeMailer struct {
	mailer  Emailer
	subject string
	body    string
}

// NewWelcomeMailer returns a mailer; body is a format string receiving the username
func NewWelcomeMailer(mailer Emailer, subject, body string) *WelcomeMailer {
	return &WelcomeMailer{mailer: mailer, subject: subject, body: body}
}

func (w *WelcomeMailer) UserRegistered(user model.User) error {
	if user.Email == "" {
		return nil
	}
	content := fmt.Sprintf(w.body, html.EscapeString(user.Username))
	if err := w.mailer.Send(user.Username, user.Email, w.subject, content); err != nil {
		return fmt.Errorf("cannot send welcome mail to %s: %w", user.Email, err)
	}
	return nil
}

// FromConfig picks SMTP when a hostname is configured, SendGrid when an API
// key is, and returns nil when neither is set.
func FromConfig(smtpHostname string, smtpPort int, smtpUsername, smtpPassword string, smtpNoTLSCheck bool,
	smtpAuthType, smtpEncryption, sendgridApiKey, fromName, from string) Emailer {
	switch {
	case smtpHostname != "":
		return NewSmtpMail(smtpHostname, smtpPort, smtpUsername, smtpPassword, smtpNoTLSCheck, smtpAuthType, fromName, from, smtpEncryption)
	case sendgridApiKey != "":
		return NewSendgridApiMail(sendgridApiKey, fromName, from)
	default:
		return nil
	}
}
