package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voiceinbox/internal/note"
	pkgResponse "voiceinbox/pkg/response"
)

// ListNotes handles listing all notes.
// @Summary List notes
// @Tags Notes
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/notes [get]
func (h *handler) ListNotes(c *gin.Context) {
	ctx := c.Request.Context()

	notes, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "note handler: list failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, gin.H{"notes": notes, "count": len(notes)})
}

// DeleteNote handles deleting a note.
// @Summary Delete a note
// @Tags Notes
// @Param id path string true "Note ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/notes/{id} [delete]
func (h *handler) DeleteNote(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, note.ErrNoteNotFound) {
			pkgResponse.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "note handler: delete failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, gin.H{"status": "deleted"})
}

// ListFolders handles listing all note folders.
// @Summary List note folders
// @Tags Notes
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/folders [get]
func (h *handler) ListFolders(c *gin.Context) {
	ctx := c.Request.Context()

	folders, err := h.uc.ListFolders(ctx)
	if err != nil {
		h.l.Errorf(ctx, "note handler: list folders failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, gin.H{"folders": folders})
}

type createFolderReq struct {
	Name string `json:"name" binding:"required"`
}

// CreateFolder handles creating a note folder.
// @Summary Create a note folder
// @Tags Notes
// @Accept json
// @Produce json
// @Success 201 {object} response.Resp
// @Router /api/v1/folders [post]
func (h *handler) CreateFolder(c *gin.Context) {
	ctx := c.Request.Context()

	var req createFolderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	folder, err := h.uc.CreateFolder(ctx, req.Name)
	if err != nil {
		if errors.Is(err, note.ErrEmptyFolderName) {
			pkgResponse.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "note handler: create folder failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.Created(c, folder)
}
