package files

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pastebin-backend/internal/shared/server/respond"
)

// multipartSlack covers multipart framing overhead so a payload of exactly
// the configured maximum still fits through the request body cap.
const multipartSlack = 1 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches file routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/files/upload", h.upload)
	rg.POST("/files/create-paste-from-file", h.createPasteFromFile)
	rg.GET("/files/:id", h.get)
	rg.GET("/files/:id/download", h.download)
	rg.DELETE("/files/:id", h.delete)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.Svc.MaxUploadBytes+multipartSlack)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file provided", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	file, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, contentType, fileHeader.Size, f)
	if err != nil {
		if errors.Is(err, ErrTooLarge) {
			msg := fmt.Sprintf("File size exceeds maximum allowed size of %dMB", h.Svc.MaxUploadBytes/(1024*1024))
			respond.Error(c, http.StatusBadRequest, "too_large", msg, nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Upload failed", nil)
		return
	}

	respond.OK(c, toResponse(file))
}

func (h *Handler) get(c *gin.Context) {
	file, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "File not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to retrieve file", nil)
		return
	}

	respond.OK(c, toResponse(file))
}

func (h *Handler) download(c *gin.Context) {
	rc, file, err := h.Svc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "File not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Download failed", nil)
		return
	}
	defer rc.Close()

	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", file.OriginalName),
	}
	c.DataFromReader(http.StatusOK, file.Size, file.ContentType, rc, headers)
}

func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Delete failed", nil)
		return
	}
	if !deleted {
		respond.Error(c, http.StatusNotFound, "not_found", "File not found", nil)
		return
	}

	respond.OK(c, gin.H{"message": "File deleted successfully"})
}

type createPasteFromFileRequest struct {
	FileID         string `json:"fileId"`
	Title          string `json:"title"`
	IncludeContent bool   `json:"includeContent"`
}

func (h *Handler) createPasteFromFile(c *gin.Context) {
	var req createPasteFromFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.FileID) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "fileId is required", nil)
		return
	}

	paste, err := h.Svc.CreatePasteFromFile(c.Request.Context(), req.FileID, req.Title, req.IncludeContent)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "File not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create paste", nil)
		return
	}

	respond.OK(c, gin.H{"id": paste.ID})
}
