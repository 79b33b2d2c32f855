// Package gateway is the HTTP client for the kudos REST API. Every call
// returns either decoded entities tagged as server-issued or one of
// NetworkError, APIError and PayloadError. Nothing is retried.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kudosboard/kudos-board/internal/domain"
)

// DefaultTimeout bounds a single request when the caller sets none.
const DefaultTimeout = 10 * time.Second

// API is the set of remote operations the client core depends on.
type API interface {
	ListBoards(ctx context.Context) ([]domain.Board, error)
	GetBoard(ctx context.Context, id string) (*domain.Board, error)
	CreateBoard(ctx context.Context, req *domain.BoardRequest) (*domain.Board, error)
	UpdateBoard(ctx context.Context, id string, req *domain.BoardRequest) (*domain.Board, error)
	DeleteBoard(ctx context.Context, id string) error
	LikeBoard(ctx context.Context, id string) (*domain.Board, error)

	ListCards(ctx context.Context, boardID string) ([]domain.Card, error)
	CreateCard(ctx context.Context, boardID string, req *domain.CardRequest) (*domain.Card, error)
	UpdateCard(ctx context.Context, id string, req *domain.CardRequest) (*domain.Card, error)
	DeleteCard(ctx context.Context, id string) error
	UpvoteCard(ctx context.Context, id string) (*domain.Card, error)
	LikeCard(ctx context.Context, id string) (*domain.Card, error)

	ListComments(ctx context.Context, cardID string) ([]domain.Comment, error)
	CreateComment(ctx context.Context, cardID string, req *domain.CommentRequest) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// Client talks to the API rooted at baseURL, e.g. http://localhost:3000/api.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

var _ API = (*Client)(nil)

// New creates a Client. timeout <= 0 selects DefaultTimeout.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "gateway").Logger(),
	}
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ========================================
// boards
// ========================================

func (c *Client) ListBoards(ctx context.Context) ([]domain.Board, error) {
	var boards []domain.Board
	if err := c.do(ctx, "list boards", http.MethodGet, "/boards", nil, &boards); err != nil {
		return nil, err
	}
	if boards == nil {
		boards = []domain.Board{}
	}
	for i := range boards {
		tagBoard(&boards[i])
	}
	return boards, nil
}

// GetBoard returns the board with its cards.
func (c *Client) GetBoard(ctx context.Context, id string) (*domain.Board, error) {
	return c.board(ctx, "get board", http.MethodGet, "/boards/"+url.PathEscape(id), nil)
}

func (c *Client) CreateBoard(ctx context.Context, req *domain.BoardRequest) (*domain.Board, error) {
	return c.board(ctx, "create board", http.MethodPost, "/boards", req)
}

func (c *Client) UpdateBoard(ctx context.Context, id string, req *domain.BoardRequest) (*domain.Board, error) {
	return c.board(ctx, "update board", http.MethodPut, "/boards/"+url.PathEscape(id), req)
}

func (c *Client) DeleteBoard(ctx context.Context, id string) error {
	return c.do(ctx, "delete board", http.MethodDelete, "/boards/"+url.PathEscape(id), nil, nil)
}

func (c *Client) LikeBoard(ctx context.Context, id string) (*domain.Board, error) {
	return c.board(ctx, "like board", http.MethodPost, "/boards/"+url.PathEscape(id)+"/like", nil)
}

func (c *Client) board(ctx context.Context, op, method, path string, body interface{}) (*domain.Board, error) {
	var b domain.Board
	if err := c.do(ctx, op, method, path, body, &b); err != nil {
		return nil, err
	}
	tagBoard(&b)
	return &b, nil
}

// ========================================
// cards
// ========================================

func (c *Client) ListCards(ctx context.Context, boardID string) ([]domain.Card, error) {
	var cards []domain.Card
	if err := c.do(ctx, "list cards", http.MethodGet, "/boards/"+url.PathEscape(boardID)+"/cards", nil, &cards); err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []domain.Card{}
	}
	for i := range cards {
		cards[i].Origin = domain.OriginServer
	}
	return cards, nil
}

func (c *Client) CreateCard(ctx context.Context, boardID string, req *domain.CardRequest) (*domain.Card, error) {
	return c.card(ctx, "create card", http.MethodPost, "/boards/"+url.PathEscape(boardID)+"/cards", req)
}

func (c *Client) UpdateCard(ctx context.Context, id string, req *domain.CardRequest) (*domain.Card, error) {
	return c.card(ctx, "update card", http.MethodPut, "/cards/"+url.PathEscape(id), req)
}

func (c *Client) DeleteCard(ctx context.Context, id string) error {
	return c.do(ctx, "delete card", http.MethodDelete, "/cards/"+url.PathEscape(id), nil, nil)
}

func (c *Client) UpvoteCard(ctx context.Context, id string) (*domain.Card, error) {
	return c.card(ctx, "upvote card", http.MethodPost, "/cards/"+url.PathEscape(id)+"/upvote", nil)
}

func (c *Client) LikeCard(ctx context.Context, id string) (*domain.Card, error) {
	return c.card(ctx, "like card", http.MethodPost, "/cards/"+url.PathEscape(id)+"/like", nil)
}

func (c *Client) card(ctx context.Context, op, method, path string, body interface{}) (*domain.Card, error) {
	var card domain.Card
	if err := c.do(ctx, op, method, path, body, &card); err != nil {
		return nil, err
	}
	card.Origin = domain.OriginServer
	return &card, nil
}

// ========================================
// comments
// ========================================

func (c *Client) ListComments(ctx context.Context, cardID string) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := c.do(ctx, "list comments", http.MethodGet, "/cards/"+url.PathEscape(cardID)+"/comments", nil, &comments); err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	for i := range comments {
		comments[i].Origin = domain.OriginServer
	}
	return comments, nil
}

func (c *Client) CreateComment(ctx context.Context, cardID string, req *domain.CommentRequest) (*domain.Comment, error) {
	var comment domain.Comment
	if err := c.do(ctx, "create comment", http.MethodPost, "/cards/"+url.PathEscape(cardID)+"/comments", req, &comment); err != nil {
		return nil, err
	}
	comment.Origin = domain.OriginServer
	return &comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.do(ctx, "delete comment", http.MethodDelete, "/comments/"+url.PathEscape(id), nil, nil)
}

// ========================================
// transport
// ========================================

func tagBoard(b *domain.Board) {
	b.Origin = domain.OriginServer
	for i := range b.Cards {
		b.Cards[i].Origin = domain.OriginServer
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// do sends one request. out == nil means no body is expected.
func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("op", op).Msg("request failed")
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	c.log.Debug().
		Str("op", op).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
		var eb errorBody
		if json.Unmarshal(respBody, &eb) == nil && eb.Error != "" {
			message = eb.Error
		}
		return &APIError{Op: op, Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return &PayloadError{Op: op, Err: errors.New("empty body")}
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &PayloadError{Op: op, Err: err}
	}
	return nil
}
