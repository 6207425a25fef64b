package email

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"polipay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

var ErrMissingSMTPCredentials = errors.New("missing SMTP_USERNAME / SMTP_PASSWORD")

// SMTPSender delivers transactional email over SMTP.
//
// Supported env vars:
//   - SMTP_HOST (default: smtp.gmail.com)
//   - SMTP_PORT (default: 587)
//   - SMTP_USERNAME, SMTP_PASSWORD (required)
//   - EMAIL_SENDER (default: SMTP_USERNAME)

type SMTPSender struct {
	dialer *gomail.Dialer
	sender string
}

var _ interfaces.IEmailSender = (*SMTPSender)(nil)

func NewSMTPSenderFromEnv() (*SMTPSender, error) {
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	if username == "" || password == "" {
		return nil, ErrMissingSMTPCredentials
	}

	host := getenvDefault("SMTP_HOST", "smtp.gmail.com")
	port, err := strconv.Atoi(getenvDefault("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	log.Printf("[email][smtp] sender initialized host=%s port=%d", host, port)
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		sender: getenvDefault("EMAIL_SENDER", username),
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg interfaces.EmailMessage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	from := msg.Sender
	if from == "" {
		from = s.sender
	}
	messageID := fmt.Sprintf("<%s@polipay>", uuid.NewString())

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.Recipient)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/html", msg.HTMLBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", err
	}
	return messageID, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
