package contract

import "context"

// IEmailService delivers transactional mail. HTML body is optional; when
// empty the plain-text body is sent alone.
type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, plainBody, htmlBody string) error
}
