// Package dispatcher turns business activity into notification fan-out.
// All delivery is fire and forget: the originating request never waits on
// notification or email work.
package dispatcher

import (
	"context"
	"fmt"

	notifusecases "lumistream/internal/application/notification/usecases"
	"lumistream/internal/domain/review"
	"lumistream/internal/domain/ticket"
	"lumistream/internal/shared/authorization"
	"lumistream/internal/shared/goroutine"
	"lumistream/internal/shared/logger"
)

type Dispatcher struct {
	send      notifusecases.SendNotificationExecutor
	broadcast notifusecases.BroadcastNotificationExecutor
	logger    logger.Interface
}

func New(
	send notifusecases.SendNotificationExecutor,
	broadcast notifusecases.BroadcastNotificationExecutor,
	logger logger.Interface,
) *Dispatcher {
	return &Dispatcher{
		send:      send,
		broadcast: broadcast,
		logger:    logger,
	}
}

// TicketCreated alerts the back office about a fresh ticket.
func (d *Dispatcher) TicketCreated(ctx context.Context, t *ticket.Ticket) {
	bg := context.WithoutCancel(ctx)
	goroutine.SafeGo(d.logger, "dispatch.ticket_created", func() {
		_, err := d.broadcast.Execute(bg, notifusecases.BroadcastNotificationCommand{
			Roles:    authorization.StaffRoles(),
			Title:    "New support ticket",
			Content:  fmt.Sprintf("Ticket #%d: %s", t.ID(), t.Subject()),
			Type:     "info",
			Category: "ticket",
			Link:     fmt.Sprintf("/admin/tickets/%d", t.ID()),
			Event:    "tickets",
		})
		if err != nil {
			d.logger.Warnw("ticket created broadcast failed", "ticket_id", t.ID(), "error", err)
		}
	})
}

// TicketReplied notifies the counterparty of a new message: staff replies go
// to the ticket owner, customer replies go to the back office.
func (d *Dispatcher) TicketReplied(ctx context.Context, t *ticket.Ticket, msg *ticket.Message) {
	bg := context.WithoutCancel(ctx)
	ticketID := t.ID()
	ownerID := t.OwnerID()
	subject := t.Subject()
	fromStaff := msg.IsFromStaff()

	goroutine.SafeGo(d.logger, "dispatch.ticket_replied", func() {
		if fromStaff {
			_, err := d.send.Execute(bg, notifusecases.SendNotificationCommand{
				UserID:   ownerID,
				Title:    "Support replied to your ticket",
				Content:  fmt.Sprintf("There is a new reply on \"%s\".", subject),
				Type:     "info",
				Category: "ticket",
				Link:     fmt.Sprintf("/tickets/%d", ticketID),
			})
			if err != nil {
				d.logger.Warnw("reply notification failed", "ticket_id", ticketID, "user_id", ownerID, "error", err)
			}
			return
		}

		_, err := d.broadcast.Execute(bg, notifusecases.BroadcastNotificationCommand{
			Roles:    authorization.StaffRoles(),
			Title:    "Customer replied to a ticket",
			Content:  fmt.Sprintf("New customer message on ticket #%d: %s", ticketID, subject),
			Type:     "info",
			Category: "ticket",
			Link:     fmt.Sprintf("/admin/tickets/%d", ticketID),
			Event:    "tickets",
		})
		if err != nil {
			d.logger.Warnw("reply broadcast failed", "ticket_id", ticketID, "error", err)
		}
	})
}

// ReviewSubmitted alerts moderators that a review is awaiting a decision.
func (d *Dispatcher) ReviewSubmitted(ctx context.Context, r *review.Review) {
	bg := context.WithoutCancel(ctx)
	reviewID := r.ID()
	rating := r.Rating()

	goroutine.SafeGo(d.logger, "dispatch.review_submitted", func() {
		_, err := d.broadcast.Execute(bg, notifusecases.BroadcastNotificationCommand{
			Roles:    authorization.StaffRoles(),
			Title:    "New review awaiting moderation",
			Content:  fmt.Sprintf("A %d-star review was submitted and needs moderation.", rating),
			Type:     "info",
			Category: "system",
			Link:     fmt.Sprintf("/admin/reviews/%d", reviewID),
			Event:    "reviews",
		})
		if err != nil {
			d.logger.Warnw("review broadcast failed", "review_id", reviewID, "error", err)
		}
	})
}
