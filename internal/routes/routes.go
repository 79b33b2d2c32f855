package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kudosboard/kudos-board/internal/handler"
)

// Handlers groups every API handler registered by Setup.
type Handlers struct {
	Board   *handler.BoardHandler
	Card    *handler.CardHandler
	Comment *handler.CommentHandler
	Gif     *handler.GifHandler
}

// Setup configures all API routes
func Setup(router *gin.Engine, h Handlers) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Kudos Board API"})
	})

	api := router.Group("/api")

	// gin needs one wildcard name per segment, so /boards/:id/cards is the
	// :boardId route of the public API.
	boards := api.Group("/boards")
	boards.GET("", h.Board.ListBoards)
	boards.POST("", h.Board.CreateBoard)
	boards.GET("/:id", h.Board.GetBoard)
	boards.PUT("/:id", h.Board.UpdateBoard)
	boards.DELETE("/:id", h.Board.DeleteBoard)
	boards.POST("/:id/like", h.Board.LikeBoard)
	boards.GET("/:id/cards", h.Card.ListCards)
	boards.POST("/:id/cards", h.Card.CreateCard)

	cards := api.Group("/cards")
	cards.PUT("/:id", h.Card.UpdateCard)
	cards.DELETE("/:id", h.Card.DeleteCard)
	cards.POST("/:id/upvote", h.Card.UpvoteCard)
	cards.POST("/:id/like", h.Card.LikeCard)
	cards.GET("/:id/comments", h.Comment.ListComments)
	cards.POST("/:id/comments", h.Comment.CreateComment)

	api.DELETE("/comments/:id", h.Comment.DeleteComment)

	if h.Gif != nil {
		gifs := api.Group("/gifs")
		gifs.GET("/trending", h.Gif.Trending)
		gifs.GET("/search", h.Gif.Search)
	}
}
