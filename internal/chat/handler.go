package chat

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/llm"
	"portfolio-backend/internal/shared/server/respond"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.send)
	rg.GET("/chat/history", h.history)
}

type sendRequest struct {
	Message string `json:"message" binding:"required"`
}

type sendResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "message is required", nil)
		return
	}

	reply, timestamp, err := h.Svc.Send(c.Request.Context(), req.Message)
	if err != nil {
		var upstream *llm.UpstreamError
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, "llm_not_configured", err.Error(), nil)
		case errors.As(err, &upstream):
			respond.Error(c, http.StatusInternalServerError, "upstream_error", upstream.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", err.Error(), nil)
		}
		return
	}

	respond.OK(c, sendResponse{Response: reply, Timestamp: timestamp})
}

type exchangeResponse struct {
	ID          string `json:"_id"`
	UserMessage string `json:"user_message"`
	AIResponse  string `json:"ai_response"`
	Timestamp   string `json:"timestamp"`
}

func (h *Handler) history(c *gin.Context) {
	limit := defaultHistoryLimit
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	exchanges, err := h.Svc.History(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", err.Error(), nil)
		return
	}

	chats := make([]exchangeResponse, 0, len(exchanges))
	for _, ex := range exchanges {
		chats = append(chats, exchangeResponse{
			ID:          ex.ID.Hex(),
			UserMessage: ex.UserMessage,
			AIResponse:  ex.AIResponse,
			Timestamp:   ex.Timestamp,
		})
	}

	respond.OK(c, gin.H{"chats": chats})
}
