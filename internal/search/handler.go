package search

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	pkgResponse "voiceinbox/pkg/response"
)

// HandleSearch handles combined task/note search.
// @Summary Search tasks and notes
// @Tags Search
// @Produce json
// @Param q query string true "Query text"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Resp
// @Router /api/v1/search [get]
func (h *handler) HandleSearch(c *gin.Context) {
	ctx := c.Request.Context()

	query := c.Query("q")
	if query == "" {
		pkgResponse.Error(c, errors.New("query parameter q is required"), nil)
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	out, err := h.search(ctx, query, limit)
	if err != nil {
		h.l.Errorf(ctx, "search handler: search failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, out)
}
