package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kudosboard/kudos-board/internal/common"
	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/service"
)

type BoardHandler struct {
	service service.BoardService
}

func NewBoardHandler(service service.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

// ListBoards handles GET /api/boards
// @Summary List boards
// @Description Returns every board, newest first
// @Tags boards
// @Produce json
// @Success 200 {array} domain.Board
// @Failure 500 {object} common.ErrorBody
// @Router /api/boards [get]
func (h *BoardHandler) ListBoards(c *gin.Context) {
	boards, err := h.service.ListBoards(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch boards", err)
		return
	}
	common.SuccessResponse(c, boards)
}

// GetBoard handles GET /api/boards/:id
// @Summary Get board with cards
// @Description Returns the board with its cards
// @Tags boards
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} domain.Board
// @Failure 404 {object} common.ErrorBody
// @Failure 500 {object} common.ErrorBody
// @Router /api/boards/{id} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	board, err := h.service.GetBoard(c.Request.Context(), c.Param("id"))
	if errors.Is(err, common.ErrBoardNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Board not found", nil)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch board", err)
		return
	}
	common.SuccessResponse(c, board)
}

// CreateBoard handles POST /api/boards
// @Summary Create board
// @Tags boards
// @Accept json
// @Produce json
// @Param request body domain.BoardRequest true "Board"
// @Success 201 {object} domain.Board
// @Failure 400 {object} common.ValidationBody
// @Failure 500 {object} common.ErrorBody
// @Router /api/boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	req, ok := bindBoard(c)
	if !ok {
		return
	}

	board, err := h.service.CreateBoard(c.Request.Context(), req)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create board", err)
		return
	}
	common.CreatedResponse(c, board)
}

// UpdateBoard handles PUT /api/boards/:id
// @Summary Update board
// @Tags boards
// @Accept json
// @Produce json
// @Param id path string true "Board ID"
// @Param request body domain.BoardRequest true "Board"
// @Success 200 {object} domain.Board
// @Failure 400 {object} common.ValidationBody
// @Failure 404 {object} common.ErrorBody
// @Failure 500 {object} common.ErrorBody
// @Router /api/boards/{id} [put]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	req, ok := bindBoard(c)
	if !ok {
		return
	}

	board, err := h.service.UpdateBoard(c.Request.Context(), c.Param("id"), req)
	if errors.Is(err, common.ErrBoardNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Board not found", nil)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update board", err)
		return
	}
	common.SuccessResponse(c, board)
}

// DeleteBoard handles DELETE /api/boards/:id
// @Summary Delete board with its cards and comments
// @Description Deletes the board together with its cards and their comments
// @Tags boards
// @Param id path string true "Board ID"
// @Success 204
// @Failure 404 {object} common.ErrorBody
// @Failure 500 {object} common.ErrorBody
// @Router /api/boards/{id} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	err := h.service.DeleteBoard(c.Request.Context(), c.Param("id"))
	if errors.Is(err, common.ErrBoardNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Board not found", nil)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete board", err)
		return
	}
	common.NoContentResponse(c)
}

// LikeBoard handles POST /api/boards/:id/like
// @Summary Like board
// @Tags boards
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} domain.Board
// @Failure 404 {object} common.ErrorBody
// @Failure 500 {object} common.ErrorBody
// @Router /api/boards/{id}/like [post]
func (h *BoardHandler) LikeBoard(c *gin.Context) {
	board, err := h.service.LikeBoard(c.Request.Context(), c.Param("id"))
	if errors.Is(err, common.ErrBoardNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Board not found", nil)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to like board", err)
		return
	}
	common.SuccessResponse(c, board)
}

func bindBoard(c *gin.Context) (*domain.BoardRequest, bool) {
	var req domain.BoardRequest
	if err := bindJSON(c, &req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return nil, false
	}
	if !validated(c, domain.ValidateBoard(&req)) {
		return nil, false
	}
	return &req, true
}

// validated writes the 400 for a failed check and reports whether err was nil.
func validated(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		common.ValidationErrorResponse(c, verr.Errors)
		return false
	}
	common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
	return false
}
