package scope

import (
	"context"
	"sort"
	"strings"

	"github.com/kudosboard/kudos-board/internal/domain"
)

// Dashboard filters besides the four categories.
const (
	FilterAll    = "all"
	FilterRecent = "recent"

	RecentLimit = 6
)

// BoardList is the dashboard scope.
type BoardList struct {
	ctrl   *Controller
	status Status
	boards []domain.Board
}

func (l *BoardList) Status() Status { return l.status }

// Boards returns the boards in display order.
func (l *BoardList) Boards() []domain.Board {
	return l.boards
}

// Load fetches the list. Any API failure degrades the scope to the six
// placeholder boards. The only error returned is the context's, in which
// case the scope keeps its previous state.
func (l *BoardList) Load(ctx context.Context) error {
	prev := l.status
	l.status = Loading

	boards, err := l.ctrl.api.ListBoards(ctx)
	if canceled(ctx) {
		l.status = prev
		return ctx.Err()
	}
	if err != nil {
		l.ctrl.log.Warn().Err(err).Str("scope", "boards").Msg("board list unavailable, showing placeholder boards")
		l.boards = l.ctrl.gen.Boards()
		l.status = Degraded
	} else {
		l.boards = boards
		l.status = Live
	}
	l.ctrl.record("boards", l.status)
	return nil
}

// Find returns the board with id.
func (l *BoardList) Find(id string) (domain.Board, bool) {
	for _, b := range l.boards {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Board{}, false
}

// Prepend puts a newly created board first.
func (l *BoardList) Prepend(b domain.Board) {
	l.boards = append([]domain.Board{b}, l.boards...)
}

// Replace swaps in b for the board with the same id.
func (l *BoardList) Replace(b domain.Board) bool {
	for i := range l.boards {
		if l.boards[i].ID == b.ID {
			l.boards[i] = b
			return true
		}
	}
	return false
}

// Remove drops the board with id.
func (l *BoardList) Remove(id string) bool {
	for i := range l.boards {
		if l.boards[i].ID == id {
			l.boards = append(l.boards[:i:i], l.boards[i+1:]...)
			return true
		}
	}
	return false
}

// Displayed applies the dashboard filter. "recent" shows the six newest
// boards and ignores query; "all" or a category filters by category and
// by a case-insensitive title match on query.
func (l *BoardList) Displayed(filter, query string) []domain.Board {
	if filter == FilterRecent {
		recent := make([]domain.Board, len(l.boards))
		copy(recent, l.boards)
		sort.SliceStable(recent, func(i, j int) bool {
			return recent[i].CreatedAt.After(recent[j].CreatedAt)
		})
		if len(recent) > RecentLimit {
			recent = recent[:RecentLimit]
		}
		return recent
	}

	q := strings.ToLower(query)
	out := []domain.Board{}
	for _, b := range l.boards {
		if filter != "" && filter != FilterAll && string(b.Category) != filter {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(b.Title), q) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// EmptyMessage is shown when Displayed returns nothing.
func (l *BoardList) EmptyMessage(query string) string {
	if query != "" {
		return "No boards found matching your search"
	}
	return "No boards found in this category"
}
