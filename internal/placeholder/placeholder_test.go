package placeholder

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/giphy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t0 }
}

func TestBoards(t *testing.T) {
	boards := New().Boards()
	require.Len(t, boards, BoardCount)

	wantCategories := []domain.Category{
		domain.CategoryCelebration,
		domain.CategoryThankYou,
		domain.CategoryInspiration,
		domain.CategoryFeedback,
		domain.CategoryCelebration,
		domain.CategoryThankYou,
	}
	for i, b := range boards {
		assert.Equal(t, fmt.Sprintf("default-%d", i), b.ID)
		assert.Equal(t, wantCategories[i], b.Category)
		assert.Equal(t, giphy.FallbackURLs[i], b.Image)
		assert.Equal(t, SystemAuthor, b.Author)
		assert.Equal(t, domain.OriginSynthetic, b.Origin)
		assert.GreaterOrEqual(t, b.Likes, 0)
		assert.LessOrEqual(t, b.Likes, MaxBoardLikes)
	}
}

func TestBoards_RandomBounds(t *testing.T) {
	var seen []int
	g := New(WithRand(func(n int) int {
		seen = append(seen, n)
		return n - 1
	}))

	for _, b := range g.Boards() {
		assert.Equal(t, MaxBoardLikes, b.Likes)
	}
	for _, n := range seen {
		assert.Equal(t, MaxBoardLikes+1, n)
	}
}

func TestBoard(t *testing.T) {
	b := New().Board("abc-123")
	assert.Equal(t, "default-abc-123", b.ID)
	assert.Equal(t, domain.CategoryCelebration, b.Category)
	assert.Equal(t, domain.OriginSynthetic, b.Origin)
}

func TestCards(t *testing.T) {
	cards := New().Cards("default-b1")
	require.Len(t, cards, CardCount)
	for i, c := range cards {
		assert.Equal(t, fmt.Sprintf("default-card-%d", i), c.ID)
		assert.Equal(t, "default-b1", c.BoardID)
		assert.Equal(t, domain.OriginSynthetic, c.Origin)
		assert.True(t, c.Votes >= 0 && c.Votes <= MaxCardVotes)
		assert.True(t, c.Likes >= 0 && c.Likes <= MaxCardLikes)
	}
}

func TestComments(t *testing.T) {
	comments := New(WithClock(fixedClock())).Comments("card-1")
	require.Len(t, comments, CommentCount)

	wantAuthors := []string{"System", "Demo User", "Anonymous"}
	for i, c := range comments {
		assert.Equal(t, fmt.Sprintf("default-comment-%d", i), c.ID)
		assert.Equal(t, wantAuthors[i], c.Author)
		assert.Equal(t, "card-1", c.CardID)
		assert.NotEmpty(t, c.Message)
		if i > 0 {
			assert.True(t, c.CreatedAt.Before(comments[i-1].CreatedAt))
			assert.Equal(t, time.Hour, comments[i-1].CreatedAt.Sub(c.CreatedAt))
		}
	}
}

func TestLocalIDsNeverRepeat(t *testing.T) {
	g := New(WithClock(fixedClock()))
	seen := map[string]bool{}

	for i := 0; i < 5; i++ {
		b := g.LocalBoard(&domain.BoardRequest{Title: "t", Category: domain.CategoryFeedback, Image: "i"})
		c := g.LocalCard("b", &domain.CardRequest{Title: "t", Image: "i"})
		m := g.LocalComment("c", &domain.CommentRequest{Message: "m"})

		assert.True(t, strings.HasPrefix(b.ID, "local-"))
		assert.True(t, strings.HasPrefix(c.ID, "local-card-"))
		assert.True(t, strings.HasPrefix(m.ID, "local-comment-"))
		for _, id := range []string{b.ID, c.ID, m.ID} {
			assert.False(t, seen[id], id)
			seen[id] = true
		}
	}
}

func TestLocalEntities(t *testing.T) {
	clock := fixedClock()
	g := New(WithClock(clock))

	b := g.LocalBoard(&domain.BoardRequest{Title: "Team", Category: domain.CategoryThankYou, Image: "img", Author: "Ann"})
	assert.Equal(t, fmt.Sprintf("local-%d", clock().UnixMilli()), b.ID)
	assert.Equal(t, "Team", b.Title)
	assert.Equal(t, 0, b.Likes)
	assert.Equal(t, domain.OriginLocal, b.Origin)

	c := g.LocalCard("board-9", &domain.CardRequest{Title: "Nice", Image: "img"})
	assert.Equal(t, "board-9", c.BoardID)
	assert.Zero(t, c.Votes)
	assert.Equal(t, domain.OriginLocal, c.Origin)

	m := g.LocalComment("card-9", &domain.CommentRequest{Message: "hi", Author: "Bo"})
	assert.Equal(t, "card-9", m.CardID)
	assert.Equal(t, "Bo", m.Author)
	assert.Equal(t, domain.OriginLocal, m.Origin)
}
