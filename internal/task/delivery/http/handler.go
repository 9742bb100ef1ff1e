package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voiceinbox/internal/task"
	pkgResponse "voiceinbox/pkg/response"
)

// ListTasks handles listing all tasks.
// @Summary List tasks
// @Tags Tasks
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/tasks [get]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "task handler: list failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, gin.H{"tasks": tasks, "count": len(tasks)})
}

type updateTaskReq struct {
	Completed *bool `json:"completed" binding:"required"`
}

// UpdateTask handles marking a task done or not done.
// @Summary Update a task's completion state
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/tasks/{id} [patch]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	updated, err := h.uc.SetCompleted(ctx, c.Param("id"), *req.Completed)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			pkgResponse.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "task handler: update failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, updated)
}

// DeleteTask handles deleting a task.
// @Summary Delete a task
// @Tags Tasks
// @Param id path string true "Task ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/tasks/{id} [delete]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			pkgResponse.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "task handler: delete failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, gin.H{"status": "deleted"})
}

// ListLists handles listing all task lists.
// @Summary List task lists
// @Tags Tasks
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/lists [get]
func (h *handler) ListLists(c *gin.Context) {
	ctx := c.Request.Context()

	lists, err := h.uc.ListLists(ctx)
	if err != nil {
		h.l.Errorf(ctx, "task handler: list lists failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, gin.H{"lists": lists})
}

type createListReq struct {
	Name string `json:"name" binding:"required"`
}

// CreateList handles creating a task list.
// @Summary Create a task list
// @Tags Tasks
// @Accept json
// @Produce json
// @Success 201 {object} response.Resp
// @Router /api/v1/lists [post]
func (h *handler) CreateList(c *gin.Context) {
	ctx := c.Request.Context()

	var req createListReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	list, err := h.uc.CreateList(ctx, req.Name)
	if err != nil {
		if errors.Is(err, task.ErrEmptyListName) {
			pkgResponse.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "task handler: create list failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.Created(c, list)
}
