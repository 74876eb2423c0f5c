package dispatcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notifusecases "lumistream/internal/application/notification/usecases"
	"lumistream/internal/domain/ticket"
	vo "lumistream/internal/domain/ticket/valueobjects"
	"lumistream/internal/shared/logger"
)

type mockSendExecutor struct {
	calls chan notifusecases.SendNotificationCommand
}

func (m *mockSendExecutor) Execute(ctx context.Context, cmd notifusecases.SendNotificationCommand) (*notifusecases.SendNotificationResult, error) {
	m.calls <- cmd
	return &notifusecases.SendNotificationResult{NotificationID: 1}, nil
}

type mockBroadcastExecutor struct {
	calls chan notifusecases.BroadcastNotificationCommand
}

func (m *mockBroadcastExecutor) Execute(ctx context.Context, cmd notifusecases.BroadcastNotificationCommand) (*notifusecases.BroadcastNotificationResult, error) {
	m.calls <- cmd
	return &notifusecases.BroadcastNotificationResult{}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (nopLogger) Fatal(msg string, args ...any)                   {}
func (n nopLogger) With(args ...any) logger.Interface             { return n }
func (n nopLogger) Named(name string) logger.Interface            { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func reconstructTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.ReconstructTicket(
		7, 10, "Buffering at night", "Streams buffer after 8pm",
		vo.PriorityHigh, vo.StatusOpen,
		time.Now().Add(-time.Hour), time.Now(),
	)
	require.NoError(t, err)
	return tkt
}

func waitFor[T any](t *testing.T, ch chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for dispatch")
		panic("unreachable")
	}
}

func TestDispatcher_TicketCreated(t *testing.T) {
	broadcast := &mockBroadcastExecutor{calls: make(chan notifusecases.BroadcastNotificationCommand, 1)}
	d := New(&mockSendExecutor{calls: make(chan notifusecases.SendNotificationCommand, 1)}, broadcast, nopLogger{})

	d.TicketCreated(context.Background(), reconstructTicket(t))

	cmd := waitFor(t, broadcast.calls)
	assert.Equal(t, "tickets", cmd.Event)
	assert.Equal(t, "ticket", cmd.Category)
	assert.Contains(t, cmd.Content, "Buffering at night")
	assert.Equal(t, "/admin/tickets/7", cmd.Link)
}

func TestDispatcher_TicketReplied_StaffNotifiesOwner(t *testing.T) {
	send := &mockSendExecutor{calls: make(chan notifusecases.SendNotificationCommand, 1)}
	broadcast := &mockBroadcastExecutor{calls: make(chan notifusecases.BroadcastNotificationCommand, 1)}
	d := New(send, broadcast, nopLogger{})

	tkt := reconstructTicket(t)
	msg, err := ticket.NewMessage(7, 99, vo.AuthorStaff, "We are on it.")
	require.NoError(t, err)

	d.TicketReplied(context.Background(), tkt, msg)

	cmd := waitFor(t, send.calls)
	assert.Equal(t, uint(10), cmd.UserID, "owner gets the notification")
	assert.Equal(t, "/tickets/7", cmd.Link)

	select {
	case <-broadcast.calls:
		t.Fatal("staff reply must not broadcast to staff")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDispatcher_TicketReplied_CustomerNotifiesStaff(t *testing.T) {
	send := &mockSendExecutor{calls: make(chan notifusecases.SendNotificationCommand, 1)}
	broadcast := &mockBroadcastExecutor{calls: make(chan notifusecases.BroadcastNotificationCommand, 1)}
	d := New(send, broadcast, nopLogger{})

	tkt := reconstructTicket(t)
	msg, err := ticket.NewMessage(7, 10, vo.AuthorCustomer, "Still happening.")
	require.NoError(t, err)

	d.TicketReplied(context.Background(), tkt, msg)

	cmd := waitFor(t, broadcast.calls)
	assert.Equal(t, "tickets", cmd.Event)
	assert.Contains(t, cmd.Content, "ticket #7")
}
