package http

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"study-outline-tracker/internal/outline"
)

// processUploadReq extracts and gates the uploaded outline file.
// The upload gate is filename suffix only; client-supplied MIME types
// are not trusted.
func (h *handler) processUploadReq(c *gin.Context) (uploadReq, error) {
	var req uploadReq

	// Hard cap on the request body before multipart parsing touches it.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.policy.MaxSizeBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return req, outline.ErrFileTooLarge
		}
		return req, err
	}
	defer file.Close()

	if header.Size > h.policy.MaxSizeBytes {
		return req, outline.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !h.extensionAllowed(ext) {
		return req, outline.ErrUnsupportedExtension
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return req, err
	}
	if len(content) == 0 {
		return req, outline.ErrEmptyUpload
	}

	req.filename = header.Filename
	req.content = content
	return req, nil
}

func (h *handler) extensionAllowed(ext string) bool {
	for _, allowed := range h.policy.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// processProgressReq binds the arbitrary progress payload.
func (h *handler) processProgressReq(c *gin.Context) (progressReq, error) {
	var req progressReq
	if err := c.ShouldBindJSON(&req.payload); err != nil {
		return req, err
	}
	return req, nil
}
