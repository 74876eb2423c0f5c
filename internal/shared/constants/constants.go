package constants

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

const (
	TableUsers            = "users"
	TableTickets          = "tickets"
	TableTicketMessages   = "ticket_messages"
	TableNotifications    = "notifications"
	TableRecipientConfigs = "notification_recipients"
	TableReviews          = "reviews"
)
