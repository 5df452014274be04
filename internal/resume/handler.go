package resume

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume", h.get)
	rg.PUT("/resume", h.update)
}

type resumeResponse struct {
	ID string `json:"_id"`
	Resume
}

func (h *Handler) get(c *gin.Context) {
	doc, err := h.Svc.Current(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.OK(c, gin.H{"message": "No resume data found"})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", err.Error(), nil)
		return
	}

	respond.OK(c, resumeResponse{ID: doc.ID.Hex(), Resume: doc})
}

func (h *Handler) update(c *gin.Context) {
	var doc Resume
	if err := c.ShouldBindJSON(&doc); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume body", err.Error())
		return
	}

	modified, err := h.Svc.Replace(c.Request.Context(), doc)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "personal_info.name is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", err.Error(), nil)
		return
	}

	respond.OK(c, gin.H{
		"message":  "Resume updated successfully",
		"modified": modified,
	})
}
