package http

import (
	"study-outline-tracker/internal/outline"
	"study-outline-tracker/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the public interface for the outline HTTP delivery layer.
type Handler interface {
	Upload(c *gin.Context)
	Progress(c *gin.Context)
}

// UploadPolicy is the transport-level gate for document uploads.
type UploadPolicy struct {
	MaxSizeBytes      int64
	AllowedExtensions []string
}

type handler struct {
	l      log.Logger
	uc     outline.UseCase
	policy UploadPolicy
}

// New creates a new HTTP handler for the outline domain.
func New(l log.Logger, uc outline.UseCase, policy UploadPolicy) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		policy: policy,
	}
}
