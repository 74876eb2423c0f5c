package email

import (
	"context"
	"sync"

	"lumistream/internal/shared/config"
	"lumistream/internal/shared/logger"
)

// EmailServiceManager gates all email delivery behind the SMTP
// configuration. When no SMTP host is set the manager holds no service and
// callers skip email entirely; nothing queues, nothing errors.
type EmailServiceManager struct {
	logger logger.Interface

	mu      sync.RWMutex
	service *SMTPEmailService
}

func NewEmailServiceManager(cfg *config.EmailConfig, baseURL string, logger logger.Interface) *EmailServiceManager {
	m := &EmailServiceManager{logger: logger}
	m.initialize(cfg, baseURL)
	return m
}

func (m *EmailServiceManager) initialize(cfg *config.EmailConfig, baseURL string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil || cfg.SMTPHost == "" {
		m.service = nil
		m.logger.Debugw("email service not configured, smtp_host is empty")
		return
	}

	m.service = NewSMTPEmailService(SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPass,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		BaseURL:     baseURL,
	})

	m.logger.Infow("email service initialized",
		"host", cfg.SMTPHost,
		"port", cfg.SMTPPort,
		"from", cfg.FromAddress,
	)
}

// Send implements the notification EmailSender port.
func (m *EmailServiceManager) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.mu.RLock()
	svc := m.service
	m.mu.RUnlock()

	if svc == nil {
		return nil
	}

	return svc.Send(ctx, to, subject, htmlBody)
}

// IsConfigured reports whether an SMTP service is available.
func (m *EmailServiceManager) IsConfigured() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.service != nil
}
