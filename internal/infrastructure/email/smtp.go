package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // base URL for links embedded in email bodies
}

// SMTPEmailService sends transactional email over SMTP. Every send is a
// single attempt; retry policy belongs to the caller, and the callers here
// deliberately have none.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// Send delivers one HTML email wrapped in the storefront layout.
func (s *SMTPEmailService) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			%s
			<hr/>
			<p>You are receiving this because notifications are enabled for your address. Manage preferences at <a href="%s/account/notifications">%s/account/notifications</a>.</p>
		</body>
		</html>
	`, htmlBody, s.config.BaseURL, s.config.BaseURL)

	return s.sendEmail(to, subject, body)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}
