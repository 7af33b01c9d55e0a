package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"study-outline-tracker/internal/outline"
	"study-outline-tracker/pkg/response"
)

// uploadErrStatus picks the status code for transport-gate rejections.
func uploadErrStatus(err error) int {
	switch {
	case errors.Is(err, outline.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusBadRequest
	}
}

// mapError translates use-case errors into client responses. A ParseError
// is a client fault (unreadable upload); everything else is internal and
// must not leak its message.
func (h *handler) mapError(c *gin.Context, err error) {
	var parseErr *outline.ParseError
	if errors.As(err, &parseErr) {
		response.Error(c, parseErr)
		return
	}

	response.InternalError(c)
}
