// Package placeholder generates the stand-in boards, cards and comments
// shown when the API cannot be reached, and synthesizes entities created
// while a scope is degraded.
package placeholder

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/giphy"
)

// Shape of the generated data sets.
const (
	BoardCount   = 6
	CardCount    = 4
	CommentCount = 3

	MaxBoardLikes = 9
	MaxCardVotes  = 4
	MaxCardLikes  = 2

	SystemAuthor = "System"
)

// CommentAuthors is the author cycle for generated comments.
var CommentAuthors = []string{SystemAuthor, "Demo User", "Anonymous"}

// Generator builds placeholder and local entities.
type Generator struct {
	now  func() time.Time
	intn func(n int) int

	mu        sync.Mutex
	lastStamp int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRand replaces the uniform source; intn must return a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(g *Generator) { g.intn = intn }
}

// New creates a Generator backed by the wall clock and an unseeded source.
func New(opts ...Option) *Generator {
	g := &Generator{now: time.Now, intn: rand.IntN}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// upTo returns a uniform value in [0, limit].
func (g *Generator) upTo(limit int) int {
	return g.intn(limit + 1)
}

func image(i int) string {
	return giphy.FallbackURLs[i%len(giphy.FallbackURLs)]
}

func titleCase(c domain.Category) string {
	words := strings.Fields(string(c))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Boards returns the board list stand-in: six boards cycling through the
// categories in display order.
func (g *Generator) Boards() []domain.Board {
	now := g.now()
	boards := make([]domain.Board, BoardCount)
	for i := range boards {
		category := domain.Categories[i%len(domain.Categories)]
		boards[i] = domain.Board{
			ID:          fmt.Sprintf("default-%d", i),
			Title:       fmt.Sprintf("%s Board %d", titleCase(category), i+1),
			Description: fmt.Sprintf("Sample %s board shown while the server is unreachable.", category),
			Category:    category,
			Image:       image(i),
			Author:      SystemAuthor,
			Likes:       g.upTo(MaxBoardLikes),
			CreatedAt:   now.Add(-time.Duration(i) * time.Minute),
			Origin:      domain.OriginSynthetic,
		}
	}
	return boards
}

// Board returns the stand-in for a single board that could not be loaded.
func (g *Generator) Board(requestedID string) domain.Board {
	return domain.Board{
		ID:          "default-" + requestedID,
		Title:       "Demo Board",
		Description: "This board is shown while the server is unreachable.",
		Category:    domain.CategoryCelebration,
		Image:       image(0),
		Author:      SystemAuthor,
		CreatedAt:   g.now(),
		Origin:      domain.OriginSynthetic,
	}
}

// Cards returns four demo cards for boardID.
func (g *Generator) Cards(boardID string) []domain.Card {
	now := g.now()
	cards := make([]domain.Card, CardCount)
	for i := range cards {
		cards[i] = domain.Card{
			ID:        fmt.Sprintf("default-card-%d", i),
			Title:     fmt.Sprintf("Demo Card %d", i+1),
			Message:   "This is a sample kudos card.",
			Image:     image(i),
			Author:    SystemAuthor,
			Votes:     g.upTo(MaxCardVotes),
			Likes:     g.upTo(MaxCardLikes),
			BoardID:   boardID,
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
			Origin:    domain.OriginSynthetic,
		}
	}
	return cards
}

// Comments returns three demo comments for cardID. Comment i is i hours old.
func (g *Generator) Comments(cardID string) []domain.Comment {
	now := g.now()
	comments := make([]domain.Comment, CommentCount)
	for i := range comments {
		comments[i] = domain.Comment{
			ID:        fmt.Sprintf("default-comment-%d", i),
			Message:   fmt.Sprintf("Sample comment %d", i+1),
			Author:    CommentAuthors[i%len(CommentAuthors)],
			CardID:    cardID,
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
			Origin:    domain.OriginSynthetic,
		}
	}
	return comments
}

// stamp returns the current unix millisecond, bumped past the previous
// value so two entities created in the same millisecond get distinct ids.
func (g *Generator) stamp() (int64, time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	ts := now.UnixMilli()
	if ts <= g.lastStamp {
		ts = g.lastStamp + 1
	}
	g.lastStamp = ts
	return ts, now
}

// LocalBoard synthesizes a board created while offline.
func (g *Generator) LocalBoard(req *domain.BoardRequest) domain.Board {
	ts, now := g.stamp()
	b := domain.Board{
		ID:        fmt.Sprintf("local-%d", ts),
		CreatedAt: now,
		UpdatedAt: now,
		Origin:    domain.OriginLocal,
	}
	req.Apply(&b)
	return b
}

// LocalCard synthesizes a card created while offline.
func (g *Generator) LocalCard(boardID string, req *domain.CardRequest) domain.Card {
	ts, now := g.stamp()
	c := domain.Card{
		ID:        fmt.Sprintf("local-card-%d", ts),
		BoardID:   boardID,
		CreatedAt: now,
		UpdatedAt: now,
		Origin:    domain.OriginLocal,
	}
	req.Apply(&c)
	return c
}

// LocalComment synthesizes a comment created while offline.
func (g *Generator) LocalComment(cardID string, req *domain.CommentRequest) domain.Comment {
	ts, now := g.stamp()
	return domain.Comment{
		ID:        fmt.Sprintf("local-comment-%d", ts),
		Message:   req.Message,
		Author:    req.Author,
		CardID:    cardID,
		CreatedAt: now,
		Origin:    domain.OriginLocal,
	}
}
