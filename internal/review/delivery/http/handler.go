package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voiceinbox/internal/model"
	"voiceinbox/internal/review"
	pkgResponse "voiceinbox/pkg/response"
)

type startExtractionReq struct {
	Text       string `json:"text" binding:"required"`
	Aggressive *bool  `json:"aggressive"`
}

// StartExtraction handles opening a review session from a transcript.
// @Summary Extract drafts from a transcript
// @Tags Review
// @Accept json
// @Produce json
// @Success 201 {object} response.Resp
// @Router /api/v1/extractions [post]
func (h *handler) StartExtraction(c *gin.Context) {
	ctx := c.Request.Context()

	var req startExtractionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	sc := model.Scope{UserID: c.ClientIP()}

	session, err := h.uc.Start(ctx, sc, review.StartInput{
		Text:       req.Text,
		Aggressive: req.Aggressive,
	})
	if err != nil {
		if errors.Is(err, review.ErrEmptyTranscript) {
			pkgResponse.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "review handler: start failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.Created(c, session)
}

// GetSession handles fetching an open review session.
// @Summary Get a review session
// @Tags Review
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/extractions/{id} [get]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	session, err := h.uc.Get(ctx, c.Param("id"))
	if err != nil {
		pkgResponse.NotFound(c, err)
		return
	}

	pkgResponse.OK(c, session)
}

// UpdateTaskDraft handles editing one task draft in a session.
// @Summary Edit a task draft
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param draftId path string true "Draft ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/extractions/{id}/tasks/{draftId} [patch]
func (h *handler) UpdateTaskDraft(c *gin.Context) {
	ctx := c.Request.Context()

	var patch review.TaskDraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	session, err := h.uc.UpdateTaskDraft(ctx, c.Param("id"), c.Param("draftId"), patch)
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}

	pkgResponse.OK(c, session)
}

// DeleteTaskDraft handles removing one task draft from a session.
// @Summary Delete a task draft
// @Tags Review
// @Param id path string true "Session ID"
// @Param draftId path string true "Draft ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/extractions/{id}/tasks/{draftId} [delete]
func (h *handler) DeleteTaskDraft(c *gin.Context) {
	session, err := h.uc.DeleteTaskDraft(c.Request.Context(), c.Param("id"), c.Param("draftId"))
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}

	pkgResponse.OK(c, session)
}

// UpdateNoteDraft handles editing one note draft in a session.
// @Summary Edit a note draft
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param draftId path string true "Draft ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/extractions/{id}/notes/{draftId} [patch]
func (h *handler) UpdateNoteDraft(c *gin.Context) {
	ctx := c.Request.Context()

	var patch review.NoteDraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	session, err := h.uc.UpdateNoteDraft(ctx, c.Param("id"), c.Param("draftId"), patch)
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}

	pkgResponse.OK(c, session)
}

// DeleteNoteDraft handles removing one note draft from a session.
// @Summary Delete a note draft
// @Tags Review
// @Param id path string true "Session ID"
// @Param draftId path string true "Draft ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/extractions/{id}/notes/{draftId} [delete]
func (h *handler) DeleteNoteDraft(c *gin.Context) {
	session, err := h.uc.DeleteNoteDraft(c.Request.Context(), c.Param("id"), c.Param("draftId"))
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}

	pkgResponse.OK(c, session)
}

// Confirm handles persisting a session's remaining drafts.
// @Summary Confirm a review session
// @Tags Review
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/extractions/{id}/confirm [post]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Confirm(ctx, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, review.ErrSessionNotFound):
			pkgResponse.NotFound(c, err)
		case errors.Is(err, review.ErrNothingToConfirm):
			pkgResponse.Error(c, err, nil)
		default:
			h.l.Errorf(ctx, "review handler: confirm failed: %v", err)
			pkgResponse.InternalError(c, err)
		}
		return
	}

	pkgResponse.OK(c, out)
}

// ListTranscripts handles listing recorded transcripts.
// @Summary List transcripts
// @Tags Review
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/transcripts [get]
func (h *handler) ListTranscripts(c *gin.Context) {
	ctx := c.Request.Context()

	transcripts, err := h.uc.ListTranscripts(ctx)
	if err != nil {
		h.l.Errorf(ctx, "review handler: list transcripts failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, gin.H{"transcripts": transcripts, "count": len(transcripts)})
}

func (h *handler) respondDraftErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, review.ErrSessionNotFound), errors.Is(err, review.ErrDraftNotFound):
		pkgResponse.NotFound(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "review handler: draft operation failed: %v", err)
		pkgResponse.InternalError(c, err)
	}
}
