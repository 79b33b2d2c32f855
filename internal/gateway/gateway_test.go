package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kudosboard/kudos-board/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", time.Second, zerolog.Nop())
}

func TestListBoards_TagsServerOrigin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/boards", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"b1","title":"One","category":"feedback","image":"i","likes":2},{"id":"b2","title":"Two","category":"celebration","image":"i","likes":0}]`))
	})

	boards, err := c.ListBoards(context.Background())
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, "b1", boards[0].ID)
	assert.Equal(t, 2, boards[0].Likes)
	for _, b := range boards {
		assert.Equal(t, domain.OriginServer, b.Origin)
	}
}

func TestListBoards_Empty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	boards, err := c.ListBoards(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, boards)
	assert.Empty(t, boards)
}

func TestGetBoard_TagsCards(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/boards/b1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"b1","title":"One","category":"feedback","image":"i","cards":[{"id":"c1","title":"t","image":"i","boardId":"b1"}]}`))
	})

	b, err := c.GetBoard(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, b.Cards, 1)
	assert.Equal(t, domain.OriginServer, b.Origin)
	assert.Equal(t, domain.OriginServer, b.Cards[0].Origin)
}

func TestCreateCard_SendsJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/boards/b1/cards", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req domain.CardRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Thanks", req.Title)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"c9","title":"Thanks","image":"i","boardId":"b1","votes":0,"likes":0}`))
	})

	card, err := c.CreateCard(context.Background(), "b1", &domain.CardRequest{Title: "Thanks", Image: "i"})
	require.NoError(t, err)
	assert.Equal(t, "c9", card.ID)
	assert.Equal(t, domain.OriginServer, card.Origin)
}

func TestDelete_NoContent(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := context.Background()
	require.NoError(t, c.DeleteBoard(ctx, "b1"))
	require.NoError(t, c.DeleteCard(ctx, "c1"))
	require.NoError(t, c.DeleteComment(ctx, "m1"))
	assert.Equal(t, []string{"/api/boards/b1", "/api/cards/c1", "/api/comments/m1"}, paths)
}

func TestCounterEndpoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		switch r.URL.Path {
		case "/api/cards/c1/upvote":
			_, _ = w.Write([]byte(`{"id":"c1","votes":5}`))
		case "/api/cards/c1/like":
			_, _ = w.Write([]byte(`{"id":"c1","likes":3}`))
		case "/api/boards/b1/like":
			_, _ = w.Write([]byte(`{"id":"b1","likes":7}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ctx := context.Background()
	card, err := c.UpvoteCard(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 5, card.Votes)

	card, err = c.LikeCard(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 3, card.Likes)

	board, err := c.LikeBoard(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 7, board.Likes)
}

func TestAPIError_Message(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"error field", http.StatusNotFound, `{"error":"Board not found"}`, "Board not found"},
		{"no body", http.StatusInternalServerError, ``, "HTTP error! status: 500"},
		{"validation errors", http.StatusBadRequest, `{"errors":["Title is required"]}`, "HTTP error! status: 400"},
		{"comment validation", http.StatusBadRequest, `{"error":"Message is required","errors":["Message is required"]}`, "Message is required"},
		{"html", http.StatusBadGateway, `<html>bad gateway</html>`, "HTTP error! status: 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.GetBoard(context.Background(), "b1")
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestPayloadError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": `))
	})

	_, err := c.ListBoards(context.Background())
	var payloadErr *PayloadError
	assert.True(t, errors.As(err, &payloadErr))

	_, err = c.LikeBoard(context.Background(), "b1")
	assert.True(t, errors.As(err, &payloadErr))
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(srv.URL+"/api", time.Second, zerolog.Nop())

	_, err := c.ListBoards(context.Background())
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, "list boards", netErr.Op)
}

func TestCanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListComments(ctx, "c1")
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})
	c := New(srv.URL, 50*time.Millisecond, zerolog.Nop())

	_, err := c.ListBoards(context.Background())
	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestBaseURLTrailingSlash(t *testing.T) {
	c := New("http://localhost:3000/api/", 0, zerolog.Nop())
	assert.Equal(t, "http://localhost:3000/api", c.BaseURL())
}
