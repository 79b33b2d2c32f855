package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kudosboard/kudos-board/internal/common"
	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/service"
)

type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListComments handles GET /api/cards/:id/comments
// @Summary List comments of a card
// @Tags comments
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {array} domain.Comment
// @Router /api/cards/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.service.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch comments", err)
		return
	}
	common.SuccessResponse(c, comments)
}

// CreateComment handles POST /api/cards/:id/comments
// A missing message is reported under both error and errors.
// @Summary Add comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param request body domain.CommentRequest true "Comment"
// @Success 201 {object} domain.Comment
// @Failure 400 {object} common.FieldErrorBody
// @Failure 404 {object} common.ErrorBody
// @Router /api/cards/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req domain.CommentRequest
	if err := bindJSON(c, &req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := domain.ValidateComment(&req); err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		common.FieldErrorResponse(c, verr.Errors)
		return
	}

	comment, err := h.service.CreateComment(c.Request.Context(), c.Param("id"), &req)
	if errors.Is(err, common.ErrCardNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Card not found", nil)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create comment", err)
		return
	}
	common.CreatedResponse(c, comment)
}

// DeleteComment handles DELETE /api/comments/:id
// @Summary Delete comment
// @Tags comments
// @Param id path string true "Comment ID"
// @Success 204
// @Failure 404 {object} common.ErrorBody
// @Router /api/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	err := h.service.DeleteComment(c.Request.Context(), c.Param("id"))
	if errors.Is(err, common.ErrCommentNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Comment not found", nil)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete comment", err)
		return
	}
	common.NoContentResponse(c)
}
