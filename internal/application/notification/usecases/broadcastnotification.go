package usecases

import (
	"context"
	"fmt"
	"sync"

	"lumistream/internal/domain/notification"
	vo "lumistream/internal/domain/notification/valueobjects"
	"lumistream/internal/domain/user"
	"lumistream/internal/shared/authorization"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
	"lumistream/internal/shared/markdown"
)

type BroadcastNotificationCommand struct {
	Roles    []authorization.UserRole
	Title    string
	Content  string
	Type     string
	Category string
	Link     string
	// Event selects which recipient configs get an email copy. Known
	// values are "orders", "tickets" and "reviews"; empty selects all.
	Event string
}

type BroadcastNotificationResult struct {
	NotificationsCreated int
	EmailsAttempted      int
}

// BroadcastNotificationUseCase fans a single announcement out to every user
// holding one of the target roles, plus the opted-in email allowlist.
// In-app rows are written first; email delivery is best effort with one
// attempt per address and never affects the outcome.
type BroadcastNotificationUseCase struct {
	userRepo      user.Repository
	notifRepo     notification.Repository
	recipientRepo notification.RecipientConfigRepository
	emailSender   EmailSender
	markdown      markdown.Service
	logger        logger.Interface
}

func NewBroadcastNotificationUseCase(
	userRepo user.Repository,
	notifRepo notification.Repository,
	recipientRepo notification.RecipientConfigRepository,
	emailSender EmailSender,
	markdown markdown.Service,
	logger logger.Interface,
) *BroadcastNotificationUseCase {
	return &BroadcastNotificationUseCase{
		userRepo:      userRepo,
		notifRepo:     notifRepo,
		recipientRepo: recipientRepo,
		emailSender:   emailSender,
		markdown:      markdown,
		logger:        logger,
	}
}

func (uc *BroadcastNotificationUseCase) Execute(ctx context.Context, cmd BroadcastNotificationCommand) (*BroadcastNotificationResult, error) {
	notifType, err := vo.NewNotificationType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	users, err := uc.userRepo.FindByRoles(ctx, cmd.Roles)
	if err != nil {
		uc.logger.Errorw("failed to resolve broadcast audience", "roles", cmd.Roles, "error", err)
		return nil, fmt.Errorf("failed to resolve broadcast audience: %w", err)
	}

	notifications := make([]*notification.Notification, 0, len(users))
	for _, u := range users {
		n, err := notification.NewNotification(u.ID(), cmd.Title, cmd.Content, notifType, category, cmd.Link)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		notifications = append(notifications, n)
	}

	// An empty audience skips the insert but never skips the allowlist
	// emails below: operators without accounts still get alerted.
	if len(notifications) > 0 {
		if err := uc.notifRepo.BulkCreate(ctx, notifications); err != nil {
			uc.logger.Errorw("failed to bulk create notifications", "count", len(notifications), "error", err)
			return nil, fmt.Errorf("failed to create notifications: %w", err)
		}
	}

	emailsAttempted := uc.sendEmails(ctx, cmd, users)

	uc.logger.Infow("broadcast dispatched",
		"notifications", len(notifications),
		"emails", emailsAttempted,
		"event", cmd.Event,
	)

	return &BroadcastNotificationResult{
		NotificationsCreated: len(notifications),
		EmailsAttempted:      emailsAttempted,
	}, nil
}

// sendEmails delivers one email per unique address, in parallel, single
// attempt each. Failures are logged per address and swallowed.
func (uc *BroadcastNotificationUseCase) sendEmails(ctx context.Context, cmd BroadcastNotificationCommand, users []*user.User) int {
	if uc.emailSender == nil || !uc.emailSender.IsConfigured() {
		uc.logger.Debugw("email delivery skipped, SMTP not configured")
		return 0
	}

	seen := make(map[string]bool)
	var addresses []string
	for _, u := range users {
		if u.Email() != "" && !seen[u.Email()] {
			seen[u.Email()] = true
			addresses = append(addresses, u.Email())
		}
	}

	configs, err := uc.recipientRepo.FindOptedIn(ctx, cmd.Event)
	if err != nil {
		uc.logger.Warnw("failed to load recipient configs, emailing users only", "event", cmd.Event, "error", err)
	} else {
		for _, c := range configs {
			if !seen[c.Email()] {
				seen[c.Email()] = true
				addresses = append(addresses, c.Email())
			}
		}
	}

	if len(addresses) == 0 {
		return 0
	}

	htmlBody, err := uc.markdown.ToHTMLSanitized(cmd.Content)
	if err != nil {
		uc.logger.Warnw("failed to render email body, sending plain content", "error", err)
		htmlBody = cmd.Content
	}

	var wg sync.WaitGroup
	for _, addr := range addresses {
		wg.Add(1)
		go func(to string) {
			defer wg.Done()
			if err := uc.emailSender.Send(ctx, to, cmd.Title, htmlBody); err != nil {
				uc.logger.Warnw("email delivery failed", "to", to, "error", err)
			}
		}(addr)
	}
	wg.Wait()

	return len(addresses)
}
