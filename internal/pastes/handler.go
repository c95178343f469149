package pastes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"pastebin-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches paste routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/pastes", h.create)
	rg.GET("/pastes", h.recent)
	rg.GET("/pastes/:id", h.get)
}

type createPasteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) create(c *gin.Context) {
	var req createPasteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Content cannot be empty", nil)
		return
	}

	paste, err := h.Svc.Create(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create paste", nil)
		return
	}

	respond.OK(c, gin.H{"id": paste.ID})
}

func (h *Handler) get(c *gin.Context) {
	paste, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Paste not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch paste", nil)
		return
	}

	respond.OK(c, toResponse(paste))
}

func (h *Handler) recent(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	list, err := h.Svc.Recent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list pastes", nil)
		return
	}

	resp := make([]PasteResponse, 0, len(list))
	for _, paste := range list {
		resp = append(resp, toResponse(paste))
	}
	respond.OK(c, resp)
}
