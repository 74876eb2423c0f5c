package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	reviewusecases "lumistream/internal/application/review/usecases"
	"lumistream/internal/domain/review"
	"lumistream/internal/interfaces/http/middleware"
	"lumistream/internal/shared/botguard"
	"lumistream/internal/shared/logger"
	"lumistream/internal/shared/utils"
)

type ReviewHandler struct {
	create   reviewusecases.CreateReviewExecutor
	moderate reviewusecases.ModerateReviewExecutor
	reply    reviewusecases.ReplyReviewExecutor
	list     reviewusecases.ListReviewsExecutor
	logger   logger.Interface
}

func NewReviewHandler(
	create reviewusecases.CreateReviewExecutor,
	moderate reviewusecases.ModerateReviewExecutor,
	reply reviewusecases.ReplyReviewExecutor,
	list reviewusecases.ListReviewsExecutor,
	logger logger.Interface,
) *ReviewHandler {
	return &ReviewHandler{
		create:   create,
		moderate: moderate,
		reply:    reply,
		list:     list,
		logger:   logger,
	}
}

type reviewResponse struct {
	ID        uint       `json:"id"`
	ProductID uint       `json:"product_id"`
	UserID    uint       `json:"user_id"`
	Rating    int        `json:"rating"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ImageURL  string     `json:"image_url,omitempty"`
	Status    string     `json:"status"`
	Reply     string     `json:"admin_reply,omitempty"`
	RepliedAt *time.Time `json:"reply_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func toReviewResponse(r *review.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID(),
		ProductID: r.ProductID(),
		UserID:    r.UserID(),
		Rating:    r.Rating(),
		Title:     r.Title(),
		Content:   r.Content(),
		ImageURL:  r.ImageURL(),
		Status:    r.Status().String(),
		Reply:     r.Reply(),
		RepliedAt: r.RepliedAt(),
		CreatedAt: r.CreatedAt(),
	}
}

type createReviewRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Title     string `json:"title" binding:"required,max=200"`
	Content   string `json:"content" binding:"required,max=2000"`
	ImageURL  string `json:"image_url" binding:"omitempty,max=500"`

	// Anti-bot fields from the public review form.
	WebsiteURL    string `json:"website_url"`
	MathChallenge string `json:"math_challenge"`
	MathAnswer    string `json:"math_answer"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create review request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := reviewusecases.CreateReviewCommand{
		ProductID: req.ProductID,
		UserID:    middleware.CurrentUserID(c),
		Rating:    req.Rating,
		Title:     req.Title,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
	}

	// The storefront form always carries the challenge fields.
	if req.MathChallenge != "" || req.MathAnswer != "" || req.WebsiteURL != "" {
		cmd.Guard = &botguard.Fields{
			WebsiteURL:    req.WebsiteURL,
			MathChallenge: req.MathChallenge,
			MathAnswer:    req.MathAnswer,
		}
	}

	result, err := h.create.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Decoy {
		utils.CreatedResponse(c, gin.H{"status": result.Status}, "Review submitted successfully")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"review_id": result.ReviewID,
		"status":    result.Status,
	}, "Review submitted successfully")
}

// ListPublic returns published reviews only; used by the storefront.
func (h *ReviewHandler) ListPublic(c *gin.Context) {
	h.listWith(c, reviewusecases.ListReviewsQuery{PublicOnly: true})
}

// ListAdmin returns reviews in any moderation state.
func (h *ReviewHandler) ListAdmin(c *gin.Context) {
	h.listWith(c, reviewusecases.ListReviewsQuery{Status: c.Query("status")})
}

func (h *ReviewHandler) listWith(c *gin.Context, query reviewusecases.ListReviewsQuery) {
	p := utils.ParsePagination(c)
	query.Page = p.Page
	query.PageSize = p.PageSize

	if raw := c.Query("product_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
			productID := uint(id)
			query.ProductID = &productID
		}
	}

	result, err := h.list.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]reviewResponse, len(result.Reviews))
	for i, r := range result.Reviews {
		items[i] = toReviewResponse(r)
	}

	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}

type moderateReviewRequest struct {
	Status string `json:"status" binding:"required,oneof=published rejected"`
}

func (h *ReviewHandler) Moderate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req moderateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.moderate.Execute(c.Request.Context(), reviewusecases.ModerateReviewCommand{
		ReviewID: id,
		Status:   req.Status,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Review moderated", gin.H{"review_id": id, "status": req.Status})
}

type replyReviewRequest struct {
	Reply string `json:"reply" binding:"required,max=2000"`
}

func (h *ReviewHandler) Reply(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req replyReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.reply.Execute(c.Request.Context(), reviewusecases.ReplyReviewCommand{
		ReviewID: id,
		Reply:    req.Reply,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reply saved", gin.H{"review_id": id})
}
