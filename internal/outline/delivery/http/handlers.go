package http

import (
	"github.com/gin-gonic/gin"

	"study-outline-tracker/pkg/response"
)

// Upload godoc
// @Summary     Upload an outline document
// @Description Parses an uploaded outline file (## headers + checkbox task lines) into subjects with completion counts.
// @Tags        Outline
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Outline document (.txt, .md, .markdown)"
// @Success     200 {object} uploadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "File too large"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/outline/upload [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUploadReq(c)
	if err != nil {
		h.l.Warnf(ctx, "outline.Upload rejected: %v", err)
		response.ErrorWithStatus(c, uploadErrStatus(err), err)
		return
	}

	output, err := h.uc.ParseDocument(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseDocument: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newUploadResp(output))
}

// Progress godoc
// @Summary     Record a progress snapshot
// @Description Accepts an arbitrary progress payload and acknowledges receipt. Nothing is persisted.
// @Tags        Progress
// @Accept      json
// @Produce     json
// @Param       body body map[string]interface{} true "Progress payload"
// @Success     200 {object} progressResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/progress [POST]
func (h *handler) Progress(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProgressReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.RecordProgress(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RecordProgress: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newProgressResp(output))
}
