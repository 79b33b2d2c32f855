package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/gateway"
	"github.com/kudosboard/kudos-board/internal/giphy"
	"github.com/kudosboard/kudos-board/internal/handler"
	"github.com/kudosboard/kudos-board/internal/migration"
	"github.com/kudosboard/kudos-board/internal/mutation"
	"github.com/kudosboard/kudos-board/internal/placeholder"
	"github.com/kudosboard/kudos-board/internal/repository"
	"github.com/kudosboard/kudos-board/internal/scope"
	"github.com/kudosboard/kudos-board/internal/service"
	"github.com/kudosboard/kudos-board/pkg/cache"
)

// APISuite drives the full HTTP stack against an in-memory sqlite database.
type APISuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(migration.Run(db))
	s.db = db

	cacheSvc := cache.NewService(nil)
	boardRepo := repository.NewBoardRepository(db)
	cardRepo := repository.NewCardRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	gifs := giphy.NewClient(giphy.Config{BaseURL: "http://127.0.0.1:1"}, zerolog.Nop())

	s.router = gin.New()
	Setup(s.router, Handlers{
		Board:   handler.NewBoardHandler(service.NewBoardService(boardRepo, cacheSvc)),
		Card:    handler.NewCardHandler(service.NewCardService(cardRepo, boardRepo, cacheSvc)),
		Comment: handler.NewCommentHandler(service.NewCommentService(commentRepo, cardRepo)),
		Gif:     handler.NewGifHandler(gifs, cacheSvc, 0),
	})
}

func (s *APISuite) TearDownTest() {
	sqlDB, _ := s.db.DB()
	_ = sqlDB.Close()
}

func (s *APISuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APISuite) decode(w *httptest.ResponseRecorder, dest interface{}) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), dest))
}

func (s *APISuite) createBoard(title string) domain.Board {
	w := s.do(http.MethodPost, "/api/boards", domain.BoardRequest{
		Title: title, Category: domain.CategoryCelebration, Image: "https://x/y.gif", Author: "Ann",
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	var b domain.Board
	s.decode(w, &b)
	return b
}

func (s *APISuite) createCard(boardID, title string) domain.Card {
	w := s.do(http.MethodPost, "/api/boards/"+boardID+"/cards", domain.CardRequest{
		Title: title, Image: "https://x/z.gif",
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	var c domain.Card
	s.decode(w, &c)
	return c
}

func (s *APISuite) TestRoot() {
	w := s.do(http.MethodGet, "/", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"message":"Welcome to Kudos Board API"}`, w.Body.String())
}

func (s *APISuite) TestBoardLifecycle() {
	first := s.createBoard("First")
	time.Sleep(5 * time.Millisecond)
	second := s.createBoard("Second")
	s.NotEmpty(first.ID)
	s.Zero(first.Likes)

	var boards []domain.Board
	w := s.do(http.MethodGet, "/api/boards", nil)
	s.Equal(http.StatusOK, w.Code)
	s.decode(w, &boards)
	s.Require().Len(boards, 2)
	s.Equal(second.ID, boards[0].ID, "newest first")

	w = s.do(http.MethodPut, "/api/boards/"+first.ID, domain.BoardRequest{
		Title: "Renamed", Category: domain.CategoryFeedback, Image: "https://x/n.gif",
	})
	s.Equal(http.StatusOK, w.Code)
	var updated domain.Board
	s.decode(w, &updated)
	s.Equal("Renamed", updated.Title)
	s.Equal(domain.CategoryFeedback, updated.Category)

	w = s.do(http.MethodPost, "/api/boards/"+first.ID+"/like", nil)
	s.Equal(http.StatusOK, w.Code)
	var liked domain.Board
	s.decode(w, &liked)
	s.Equal(1, liked.Likes)

	w = s.do(http.MethodDelete, "/api/boards/"+first.ID, nil)
	s.Equal(http.StatusNoContent, w.Code)
	s.Empty(w.Body.String())

	w = s.do(http.MethodGet, "/api/boards/"+first.ID, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.JSONEq(`{"error":"Board not found"}`, w.Body.String())
}

func (s *APISuite) TestCreateBoard_ValidationErrors() {
	w := s.do(http.MethodPost, "/api/boards", map[string]string{"category": "party"})
	s.Equal(http.StatusBadRequest, w.Code)

	var body struct {
		Errors []string `json:"errors"`
	}
	s.decode(w, &body)
	s.Equal([]string{
		"Title is required",
		"Category must be one of: celebration, thank you, inspiration, feedback",
		"Image is required",
	}, body.Errors)
}

func (s *APISuite) TestBoardNotFound() {
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/boards/missing"},
		{http.MethodDelete, "/api/boards/missing"},
		{http.MethodPost, "/api/boards/missing/like"},
	} {
		w := s.do(tc.method, tc.path, nil)
		s.Equal(http.StatusNotFound, w.Code, tc.path)
	}

	w := s.do(http.MethodPost, "/api/boards/missing/cards", domain.CardRequest{Title: "t", Image: "i"})
	s.Equal(http.StatusNotFound, w.Code)
	s.JSONEq(`{"error":"Board not found"}`, w.Body.String())
}

func (s *APISuite) TestCardsAndComments() {
	board := s.createBoard("Team")
	card := s.createCard(board.ID, "Thanks")
	s.Equal(board.ID, card.BoardID)

	w := s.do(http.MethodGet, "/api/boards/"+board.ID, nil)
	s.Equal(http.StatusOK, w.Code)
	var detail domain.Board
	s.decode(w, &detail)
	s.Require().Len(detail.Cards, 1)

	w = s.do(http.MethodPost, "/api/cards/"+card.ID+"/upvote", nil)
	s.Equal(http.StatusOK, w.Code)
	w = s.do(http.MethodPost, "/api/cards/"+card.ID+"/like", nil)
	var bumped domain.Card
	s.decode(w, &bumped)
	s.Equal(1, bumped.Votes)
	s.Equal(1, bumped.Likes)

	w = s.do(http.MethodPut, "/api/cards/"+card.ID, domain.CardRequest{Title: "Edited", Image: "https://x/e.gif"})
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/api/cards/"+card.ID+"/comments", map[string]string{"message": "  "})
	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error":"Message is required","errors":["Message is required"]}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/cards/"+card.ID+"/comments", domain.CommentRequest{Message: "Well deserved"})
	s.Equal(http.StatusCreated, w.Code)
	var comment domain.Comment
	s.decode(w, &comment)

	var comments []domain.Comment
	s.decode(s.do(http.MethodGet, "/api/cards/"+card.ID+"/comments", nil), &comments)
	s.Require().Len(comments, 1)
	s.Equal("Well deserved", comments[0].Message)

	w = s.do(http.MethodDelete, "/api/comments/"+comment.ID, nil)
	s.Equal(http.StatusNoContent, w.Code)
	w = s.do(http.MethodDelete, "/api/comments/"+comment.ID, nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodDelete, "/api/cards/"+card.ID, nil)
	s.Equal(http.StatusNoContent, w.Code)
	w = s.do(http.MethodPost, "/api/cards/"+card.ID+"/upvote", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.JSONEq(`{"error":"Card not found"}`, w.Body.String())
}

func (s *APISuite) TestDeleteBoardCascades() {
	board := s.createBoard("Doomed")
	card := s.createCard(board.ID, "Gone soon")
	s.Equal(http.StatusCreated, s.do(http.MethodPost, "/api/cards/"+card.ID+"/comments", domain.CommentRequest{Message: "bye"}).Code)

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/boards/"+board.ID, nil).Code)

	var cards, comments int64
	s.db.Model(&domain.Card{}).Count(&cards)
	s.db.Model(&domain.Comment{}).Count(&comments)
	s.Zero(cards)
	s.Zero(comments)
}

func (s *APISuite) TestListCards_UnknownBoardIsEmpty() {
	w := s.do(http.MethodGet, "/api/boards/nope/cards", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
}

func (s *APISuite) TestGifs_FallbackWhenGiphyDown() {
	var gifs []giphy.GIF
	w := s.do(http.MethodGet, "/api/gifs/trending?limit=3", nil)
	s.Equal(http.StatusOK, w.Code)
	s.decode(w, &gifs)
	s.True(giphy.IsFallback(gifs))

	w = s.do(http.MethodGet, "/api/gifs/search", nil)
	s.JSONEq(`[]`, w.Body.String())
}

// TestClientCoreAgainstServer runs the gateway, scopes and mutation router
// against the real handlers.
func (s *APISuite) TestClientCoreAgainstServer() {
	srv := httptest.NewServer(s.router)
	defer srv.Close()

	ctx := context.Background()
	api := gateway.New(srv.URL+"/api", 2*time.Second, zerolog.Nop())
	ctrl := scope.NewController(api, placeholder.New(), zerolog.Nop())
	router := mutation.NewRouter(ctrl, zerolog.Nop())

	list := ctrl.BoardList()
	s.Require().NoError(list.Load(ctx))
	s.Equal(scope.Live, list.Status())
	s.Empty(list.Boards())

	board, err := router.CreateBoard(ctx, list, &domain.BoardRequest{
		Title: "Remote", Category: domain.CategoryInspiration, Image: "https://x/r.gif",
	})
	s.Require().NoError(err)
	s.Equal(domain.OriginServer, board.Origin)
	s.Len(list.Boards(), 1)

	detail := ctrl.BoardDetail(board)
	s.Require().NoError(detail.Load(ctx))
	s.Equal(scope.Live, detail.Status())

	card, err := router.CreateCard(ctx, detail, &domain.CardRequest{Title: "Nice", Image: "https://x/c.gif"})
	s.Require().NoError(err)
	upvoted, err := router.UpvoteCard(ctx, detail, card.ID)
	s.Require().NoError(err)
	s.Equal(1, upvoted.Votes)

	thread := ctrl.CardComments(upvoted)
	s.Require().NoError(thread.Load(ctx))
	s.Equal(scope.Live, thread.Status())
	comment, err := router.CreateComment(ctx, thread, &domain.CommentRequest{Message: "+1"})
	s.Require().NoError(err)
	s.Require().NoError(router.DeleteComment(ctx, thread, comment.ID))
	s.Empty(thread.Comments())

	s.Require().NoError(router.DeleteBoard(ctx, list, board.ID))
	s.Empty(list.Boards())

	// the server no longer knows the board
	_, err = api.GetBoard(ctx, board.ID)
	var apiErr *gateway.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusNotFound, apiErr.Status)
	s.Equal("Board not found", apiErr.Message)
	assert.False(s.T(), ctrl.Degraded())
}
