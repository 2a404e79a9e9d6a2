// Package mail renders html templates and delivers them over smtp.
package mail

import (
	"bytes"
	"fmt"
	"gopkg.in/gomail.v2"
	"html/template"
	"path/filepath"
	"strings"
)

// senderName shows up as the display name on the From and Reply-To headers.
const senderName = "RAprogramm"

// Config holds the smtp settings used to deliver emails.
type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// User is the recipient of an email.
type User struct {
	Name  string
	Email string
}

// Mailer sends templated emails through an smtp relay.
type Mailer struct {
	config      Config
	templateDir string
}

// New creates a Mailer that loads its templates from dir.
func New(config Config, dir string) *Mailer {
	return &Mailer{
		config:      config,
		templateDir: dir,
	}
}

// SendVerificationCode emails the account verification link to the user.
func (m *Mailer) SendVerificationCode(user User, url string) error {
	return m.send(user, url, "verification_code", "Your account verification code")
}

// SendPasswordResetToken emails the password reset link to the user.
func (m *Mailer) SendPasswordResetToken(user User, url string) error {
	return m.send(user, url, "reset_password", "Your password reset token (valid for only 10 minutes)")
}

func (m *Mailer) send(user User, url, name, subject string) error {
	html, err := m.Render(name, subject, user, url)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.config.From, senderName)
	msg.SetAddressHeader("Reply-To", m.config.From, senderName)
	msg.SetAddressHeader("To", user.Email, user.Name)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	dialer := gomail.NewDialer(m.config.Host, m.config.Port, m.config.User, m.config.Pass)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email %s: %w", name, err)
	}
	return nil
}

// Render builds the html body for the named template.
// The template file must define a "content" block, which gets framed by the base partial.
func (m *Mailer) Render(name, subject string, user User, url string) (string, error) {
	t, err := template.ParseFiles(
		filepath.Join(m.templateDir, name+".html"),
		filepath.Join(m.templateDir, "partials", "base.html"),
		filepath.Join(m.templateDir, "partials", "styles.html"),
	)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}

	data := map[string]interface{}{
		"first_name": firstName(user.Name),
		"subject":    subject,
		"url":        url,
	}

	var body bytes.Buffer
	if err := t.ExecuteTemplate(&body, "base", data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return body.String(), nil
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
