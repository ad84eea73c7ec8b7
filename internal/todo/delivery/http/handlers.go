package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoboard/pkg/response"
)

// Create godoc
// @Summary     Create a new todo
// @Description Creates a todo with the provided title and memo. The record is written to the remote store with fresh embedded metadata.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Todo data"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request - empty title"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List todos
// @Description Returns the filtered, sorted, searched projection of the todo set. The full record set is re-fetched from the store on every call.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       filter query string false "Filter (all/active/completed, default: all)"
// @Param       sort   query string false "Sort key (created_asc/created_desc/title_asc/title_desc, default: created_asc)"
// @Param       q      query string false "Case-insensitive search over title and memo"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Toggle godoc
// @Summary     Toggle completion state
// @Description Flips the done flag of a todo and refreshes its update timestamp.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} toggleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Toggle(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// Edit godoc
// @Summary     Edit a todo
// @Description Replaces title and memo of an existing todo, preserving completion state.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Todo ID"
// @Param       body body editReq true "New title and memo"
// @Success     200 {object} editResp
// @Failure     400 {object} response.Resp "Bad Request - empty title"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [PUT]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Edit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Edit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEditResp(output))
}

// Delete godoc
// @Summary     Delete a todo
// @Description Permanently removes a todo from the store.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
