package externalservices

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
)

// EmailService sends mail over SMTP.
type EmailService struct {
	Host        string
	Port        string
	Username    string
	AppPassword string
	From        string
}

// NewEmailService creates the SMTP email service.
func NewEmailService(host, port, username, appPassword, from string) *EmailService {
	return &EmailService{
		Host:        host,
		Port:        port,
		Username:    username,
		AppPassword: appPassword,
		From:        from,
	}
}

var _ contract.IEmailService = (*EmailService)(nil)

// SendEmail delivers one message. When htmlBody is non-empty it is sent
// as a text/html part, otherwise plain text only.
func (es *EmailService) SendEmail(ctx context.Context, to, subject, plainBody, htmlBody string) error {
	headers := fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\n", to, es.From, subject)
	body := plainBody
	if htmlBody != "" {
		headers += "MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n"
		body = htmlBody
	}
	msg := []byte(headers + "\r\n" + body + "\r\n")

	auth := smtp.PlainAuth("", es.Username, es.AppPassword, es.Host)
	addr := fmt.Sprintf("%s:%s", es.Host, es.Port)
	if err := smtp.SendMail(addr, auth, es.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
