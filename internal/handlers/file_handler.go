package handlers

import (
	"io"
	"mime"
	"path/filepath"
	"strings"

	"neads_backend/internal/storage"
	"neads_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler streams stored media when the storage backend has no
// public URL of its own (local storage). S3 deployments serve files
// from the bucket directly.
type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     store,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/files/*filePath", h.ServeFile)
}

func (h *FileHandler) ServeFile(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("filePath"), "/")
	if path == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file path"))
		return
	}

	reader, err := h.storage.Get(c.Request.Context(), path)
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNotFound(err))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=31536000")

	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are already out, nothing left to answer with.
		c.Error(err)
	}
}
