package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openboard/board-service/internal/core/ports"
)

type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type createCommentRequest struct {
	BoardID string `json:"board_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type updateCommentRequest struct {
	BoardID string `json:"board_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Create handles POST /v1/comments.
//
// @Summary      Post a comment to a board
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment details"
// @Success      201   {object}  ports.CommentView
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
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

	view, err := h.service.Create(c.Request().Context(), ports.CreateCommentInput{
		BoardID:  req.BoardID,
		Content:  req.Content,
		RawToken: raw,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, view)
}

// Update handles PUT /v1/comments/:id. The body names the board the caller
// believes the comment belongs to; a mismatch is reported as a missing board.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Comment id"
// @Param        body  body      updateCommentRequest  true  "New comment content"
// @Success      200   {object}  ports.CommentView
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	var req updateCommentRequest
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

	view, err := h.service.Update(c.Request().Context(), ports.UpdateCommentInput{
		CommentID: c.Param("id"),
		BoardID:   req.BoardID,
		Content:   req.Content,
		RawToken:  raw,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /v1/comments/:id.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Comment id"
// @Success      200  {object}  statusResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	raw, err := ctxRawToken(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), raw); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Message: "comment deleted", Status: http.StatusOK})
}

// ListByBoard handles GET /v1/boards/:id/comments. Public read.
//
// @Summary      List a board's comments
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Board id"
// @Success      200  {array}   ports.CommentView
// @Failure      404  {object}  map[string]string
// @Router       /v1/boards/{id}/comments [get]
func (h *CommentHandler) ListByBoard(c echo.Context) error {
	views, err := h.service.ListByBoard(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}
