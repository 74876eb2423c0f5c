package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"lumistream/internal/application/notification/dispatcher"
	notifusecases "lumistream/internal/application/notification/usecases"
	reviewusecases "lumistream/internal/application/review/usecases"
	ticketusecases "lumistream/internal/application/ticket/usecases"
	userusecases "lumistream/internal/application/user/usecases"
	"lumistream/internal/infrastructure/auth"
	"lumistream/internal/infrastructure/config"
	"lumistream/internal/infrastructure/email"
	"lumistream/internal/infrastructure/pubsub"
	"lumistream/internal/infrastructure/ratelimit"
	"lumistream/internal/infrastructure/realtime"
	"lumistream/internal/infrastructure/repository"
	"lumistream/internal/interfaces/http/handlers"
	"lumistream/internal/interfaces/http/middleware"
	"lumistream/internal/interfaces/http/routes"
	shareddb "lumistream/internal/shared/db"
	"lumistream/internal/shared/logger"
	"lumistream/internal/shared/markdown"
)

// Router assembles the HTTP surface: repositories, use cases, handlers and
// route registration.
type Router struct {
	engine *gin.Engine

	ticketHandler          *handlers.TicketHandler
	streamHandler          *handlers.StreamHandler
	notificationHandler    *handlers.NotificationHandler
	recipientConfigHandler *handlers.RecipientConfigHandler
	reviewHandler          *handlers.ReviewHandler
	authHandler            *handlers.AuthHandler

	authMiddleware *middleware.AuthMiddleware
	publicLimiter  gin.HandlerFunc
	loginLimiter   gin.HandlerFunc
}

// NewRouter wires the full dependency graph. The hub and redis client are
// shared with the server command, which also runs the pub/sub bridge feeding
// the hub.
func NewRouter(db *gorm.DB, redisClient *redis.Client, hub *realtime.Hub, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	ticketRepo := repository.NewTicketRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	recipientRepo := repository.NewRecipientConfigRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)

	txMgr := shareddb.NewTransactionManager(db)
	eventBus := pubsub.NewRedisMessageEventBus(redisClient, log)
	emailSvc := email.NewEmailServiceManager(&cfg.Email, cfg.Server.BaseURL, log)
	markdownSvc := markdown.NewService()

	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)

	sendUC := notifusecases.NewSendNotificationUseCase(notifRepo, log)
	broadcastUC := notifusecases.NewBroadcastNotificationUseCase(
		userRepo, notifRepo, recipientRepo, emailSvc, markdownSvc, log)
	notifier := dispatcher.New(sendUC, broadcastUC, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, notifier, log)
	postMessageUC := ticketusecases.NewPostMessageUseCase(ticketRepo, messageRepo, txMgr, eventBus, notifier, log)
	updateStatusUC := ticketusecases.NewUpdateStatusUseCase(ticketRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, messageRepo, txMgr, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, messageRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)

	createReviewUC := reviewusecases.NewCreateReviewUseCase(reviewRepo, notifier, log)
	moderateReviewUC := reviewusecases.NewModerateReviewUseCase(reviewRepo, log)
	replyReviewUC := reviewusecases.NewReplyReviewUseCase(reviewRepo, log)
	listReviewsUC := reviewusecases.NewListReviewsUseCase(reviewRepo, log)

	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtSvc, log)
	currentUserUC := userusecases.NewGetCurrentUserUseCase(userRepo, log)

	listNotifUC := notifusecases.NewListNotificationsUseCase(notifRepo, log)
	unreadUC := notifusecases.NewGetUnreadCountUseCase(notifRepo, log)
	markReadUC := notifusecases.NewMarkNotificationAsReadUseCase(notifRepo, log)
	markAllUC := notifusecases.NewMarkAllAsReadUseCase(notifRepo, log)
	deleteNotifUC := notifusecases.NewDeleteNotificationUseCase(notifRepo, log)

	createRecipientUC := notifusecases.NewCreateRecipientConfigUseCase(recipientRepo, log)
	updateRecipientUC := notifusecases.NewUpdateRecipientConfigUseCase(recipientRepo, log)
	deleteRecipientUC := notifusecases.NewDeleteRecipientConfigUseCase(recipientRepo, log)
	listRecipientsUC := notifusecases.NewListRecipientConfigsUseCase(recipientRepo, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)
	limiter := ratelimit.NewRedisRateLimiter(redisClient)

	return &Router{
		engine: engine,
		ticketHandler: handlers.NewTicketHandler(
			createTicketUC, postMessageUC, updateStatusUC, deleteTicketUC, getTicketUC, listTicketsUC, log),
		streamHandler: handlers.NewStreamHandler(hub, getTicketUC, cfg.Server.AllowedOrigins, log),
		notificationHandler: handlers.NewNotificationHandler(
			listNotifUC, unreadUC, markReadUC, markAllUC, deleteNotifUC, broadcastUC, log),
		recipientConfigHandler: handlers.NewRecipientConfigHandler(
			createRecipientUC, updateRecipientUC, deleteRecipientUC, listRecipientsUC, log),
		reviewHandler: handlers.NewReviewHandler(
			createReviewUC, moderateReviewUC, replyReviewUC, listReviewsUC, log),
		authHandler:    handlers.NewAuthHandler(loginUC, currentUserUC, &cfg.Auth, log),
		authMiddleware: authMiddleware,
		publicLimiter: middleware.RateLimit(limiter, ratelimit.Limit{
			Requests: cfg.Support.PublicTicketLimit,
			Window:   time.Duration(cfg.Support.PublicTicketWindow) * time.Second,
		}, "public_ticket", log),
		loginLimiter: middleware.RateLimit(limiter, ratelimit.Limit{
			Requests: 10,
			Window:   time.Minute,
		}, "login", log),
	}
}

// SetupRoutes registers every route group on the engine.
func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		LoginLimiter:   r.loginLimiter,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		StreamHandler:  r.streamHandler,
		AuthMiddleware: r.authMiddleware,
		PublicLimiter:  r.publicLimiter,
	})

	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler:    r.notificationHandler,
		RecipientConfigHandler: r.recipientConfigHandler,
		AuthMiddleware:         r.authMiddleware,
	})

	routes.SetupReviewRoutes(r.engine, &routes.ReviewRouteConfig{
		ReviewHandler:  r.reviewHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
