package main

import (
	"fmt"
	"github.com/RAprogramm/notes-api/platform/env"
	"github.com/RAprogramm/notes-api/platform/logger"
	"github.com/RAprogramm/notes-api/platform/mail"
	"github.com/RAprogramm/notes-api/sys"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"os"
)

func main() {
	log, err := logger.New("Notes-Mailer")
	if err != nil {
		fmt.Println("Error constructing logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	_ = godotenv.Load()

	var cfg sys.Config
	cfg.Smtp.Host = env.Must(log, "SMTP_HOST")
	cfg.Smtp.Port = env.IntDefault(log, "SMTP_PORT", "587")
	cfg.Smtp.User = env.Must(log, "SMTP_USER")
	cfg.Smtp.Pass = env.Must(log, "SMTP_PASS")
	cfg.Smtp.From = env.Must(log, "SMTP_FROM")
	cfg.Smtp.To = env.Must(log, "SMTP_TO")

	recipientName := env.OrDefault(log, "SMTP_TO_NAME", "there")
	verificationURL := env.OrDefault(log, "VERIFICATION_URL", "http://localhost:8080/v1/verify")
	resetURL := env.OrDefault(log, "PASSWORD_RESET_URL", "http://localhost:8080/v1/reset")
	templateDir := env.OrDefault(log, "MAIL_TEMPLATE_DIR", "./templates")

	// =========================================================================
	// Send emails

	mailer := mail.New(mail.Config{
		Host: cfg.Smtp.Host,
		Port: cfg.Smtp.Port,
		User: cfg.Smtp.User,
		Pass: cfg.Smtp.Pass,
		From: cfg.Smtp.From,
	}, templateDir)

	user := mail.User{
		Name:  recipientName,
		Email: cfg.Smtp.To,
	}

	log.Infow("sending verification email", "to", user.Email)
	if err := mailer.SendVerificationCode(user, verificationURL); err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}

	log.Infow("sending password reset email", "to", user.Email)
	if err := mailer.SendPasswordResetToken(user, resetURL); err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}

	log.Info("emails sent successfully")

	return nil
}
