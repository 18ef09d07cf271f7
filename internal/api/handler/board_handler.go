package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openboard/board-service/internal/core/ports"
)

type BoardHandler struct {
	service ports.BoardService
}

func NewBoardHandler(service ports.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

type boardRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// Create handles POST /v1/boards.
//
// @Summary      Create a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      boardRequest  true  "Board details"
// @Success      201   {object}  ports.BoardView
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/boards [post]
func (h *BoardHandler) Create(c echo.Context) error {
	var req boardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	raw, err := ctxRawToken(c)
	if err != nil {
		return err
	}

	view, err := h.service.Create(c.Request().Context(), ports.CreateBoardInput{
		Title:    req.Title,
		Content:  req.Content,
		RawToken: raw,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, view)
}

// Get handles GET /v1/boards/:id. Public read.
//
// @Summary      Get a board
// @Tags         boards
// @Produce      json
// @Param        id   path      string  true  "Board id"
// @Success      200  {object}  ports.BoardView
// @Failure      404  {object}  map[string]string
// @Router       /v1/boards/{id} [get]
func (h *BoardHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// List handles GET /v1/boards. Public read.
//
// @Summary      List boards
// @Tags         boards
// @Produce      json
// @Success      200  {array}  ports.BoardView
// @Router       /v1/boards [get]
func (h *BoardHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Update handles PUT /v1/boards/:id.
//
// @Summary      Update a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Board id"
// @Param        body  body      boardRequest  true  "New board content"
// @Success      200   {object}  ports.BoardView
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/boards/{id} [put]
func (h *BoardHandler) Update(c echo.Context) error {
	var req boardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	raw, err := ctxRawToken(c)
	if err != nil {
		return err
	}

	view, err := h.service.Update(c.Request().Context(), ports.UpdateBoardInput{
		BoardID:  c.Param("id"),
		Title:    req.Title,
		Content:  req.Content,
		RawToken: raw,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /v1/boards/:id.
//
// @Summary      Delete a board and its comments
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Board id"
// @Success      200  {object}  statusResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/boards/{id} [delete]
func (h *BoardHandler) Delete(c echo.Context) error {
	raw, err := ctxRawToken(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), raw); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Message: "board deleted", Status: http.StatusOK})
}
