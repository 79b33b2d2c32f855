package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kudosboard/kudos-board/internal/common"
	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/service"
)

type CardHandler struct {
	service service.CardService
}

func NewCardHandler(service service.CardService) *CardHandler {
	return &CardHandler{service: service}
}

// ListCards handles GET /api/boards/:id/cards
// @Summary List cards of a board
// @Tags cards
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {array} domain.Card
// @Router /api/boards/{id}/cards [get]
func (h *CardHandler) ListCards(c *gin.Context) {
	cards, err := h.service.ListCards(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch cards", err)
		return
	}
	common.SuccessResponse(c, cards)
}

// CreateCard handles POST /api/boards/:id/cards
// @Summary Create card
// @Tags cards
// @Accept json
// @Produce json
// @Param id path string true "Board ID"
// @Param request body domain.CardRequest true "Card"
// @Success 201 {object} domain.Card
// @Failure 400 {object} common.ValidationBody
// @Failure 404 {object} common.ErrorBody
// @Router /api/boards/{id}/cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	req, ok := bindCard(c)
	if !ok {
		return
	}

	card, err := h.service.CreateCard(c.Request.Context(), c.Param("id"), req)
	if errors.Is(err, common.ErrBoardNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Board not found", nil)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create card", err)
		return
	}
	common.CreatedResponse(c, card)
}

// UpdateCard handles PUT /api/cards/:id
// @Summary Update card
// @Tags cards
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param request body domain.CardRequest true "Card"
// @Success 200 {object} domain.Card
// @Failure 400 {object} common.ValidationBody
// @Failure 404 {object} common.ErrorBody
// @Router /api/cards/{id} [put]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	req, ok := bindCard(c)
	if !ok {
		return
	}

	card, err := h.service.UpdateCard(c.Request.Context(), c.Param("id"), req)
	if !h.handleErr(c, err, "Failed to update card") {
		return
	}
	common.SuccessResponse(c, card)
}

// DeleteCard handles DELETE /api/cards/:id
// @Summary Delete card with its comments
// @Tags cards
// @Param id path string true "Card ID"
// @Success 204
// @Failure 404 {object} common.ErrorBody
// @Router /api/cards/{id} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	err := h.service.DeleteCard(c.Request.Context(), c.Param("id"))
	if !h.handleErr(c, err, "Failed to delete card") {
		return
	}
	common.NoContentResponse(c)
}

// UpvoteCard handles POST /api/cards/:id/upvote
// @Summary Upvote card
// @Tags cards
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} domain.Card
// @Failure 404 {object} common.ErrorBody
// @Router /api/cards/{id}/upvote [post]
func (h *CardHandler) UpvoteCard(c *gin.Context) {
	card, err := h.service.UpvoteCard(c.Request.Context(), c.Param("id"))
	if !h.handleErr(c, err, "Failed to upvote card") {
		return
	}
	common.SuccessResponse(c, card)
}

// LikeCard handles POST /api/cards/:id/like
// @Summary Like card
// @Tags cards
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} domain.Card
// @Failure 404 {object} common.ErrorBody
// @Router /api/cards/{id}/like [post]
func (h *CardHandler) LikeCard(c *gin.Context) {
	card, err := h.service.LikeCard(c.Request.Context(), c.Param("id"))
	if !h.handleErr(c, err, "Failed to like card") {
		return
	}
	common.SuccessResponse(c, card)
}

// handleErr writes 404 or 500 for err and reports whether err was nil.
func (h *CardHandler) handleErr(c *gin.Context, err error, failure string) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, common.ErrCardNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Card not found", nil)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, failure, err)
	}
	return false
}

func bindCard(c *gin.Context) (*domain.CardRequest, bool) {
	var req domain.CardRequest
	if err := bindJSON(c, &req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return nil, false
	}
	if !validated(c, domain.ValidateCard(&req)) {
		return nil, false
	}
	return &req, true
}
