package scope

import (
	"context"

	"github.com/kudosboard/kudos-board/internal/domain"
)

// BoardDetail is one board plus its cards.
type BoardDetail struct {
	ctrl   *Controller
	target domain.Board
	status Status
	board  domain.Board
	cards  []domain.Card
}

func (d *BoardDetail) Status() Status { return d.status }

// Board returns the loaded board, or the target before the first load.
func (d *BoardDetail) Board() domain.Board {
	if d.status.Ready() {
		return d.board
	}
	return d.target
}

// Cards returns the cards, newest first.
func (d *BoardDetail) Cards() []domain.Card {
	return d.cards
}

func (d *BoardDetail) key() string {
	return "board:" + d.target.ID
}

// Load fetches the board and then its cards. If either call fails the
// whole scope degrades to one placeholder board with four placeholder
// cards. Boards that are not server-issued are never fetched.
func (d *BoardDetail) Load(ctx context.Context) error {
	prev := d.status
	d.status = Loading

	if !d.target.Origin.Persisted() {
		d.loadOffline()
		d.ctrl.record(d.key(), d.status)
		return nil
	}

	board, err := d.ctrl.api.GetBoard(ctx, d.target.ID)
	var cards []domain.Card
	if err == nil {
		cards, err = d.ctrl.api.ListCards(ctx, d.target.ID)
	}
	if canceled(ctx) {
		d.status = prev
		return ctx.Err()
	}

	if err != nil {
		d.ctrl.log.Warn().Err(err).Str("scope", "board").Str("board_id", d.target.ID).Msg("board unavailable, showing placeholder board")
		d.board = d.ctrl.gen.Board(d.target.ID)
		d.cards = d.ctrl.gen.Cards(d.board.ID)
		d.status = Degraded
	} else {
		board.Cards = nil
		d.board = *board
		d.cards = cards
		d.status = Live
	}
	d.ctrl.record(d.key(), d.status)
	return nil
}

// loadOffline opens a synthetic or local board. Synthetic boards get demo
// cards; a board created offline starts empty.
func (d *BoardDetail) loadOffline() {
	board := d.target
	if board.Title == "" {
		board = d.ctrl.gen.Board(d.target.ID)
		board.ID = d.target.ID
		board.Origin = d.target.Origin
	}
	d.board = board
	if d.target.Origin == domain.OriginSynthetic {
		d.cards = d.ctrl.gen.Cards(board.ID)
	} else {
		d.cards = []domain.Card{}
	}
	d.status = Degraded
}

// SetBoard replaces the board, e.g. after a like.
func (d *BoardDetail) SetBoard(b domain.Board) {
	b.Cards = nil
	d.board = b
}

// FindCard returns the card with id.
func (d *BoardDetail) FindCard(id string) (domain.Card, bool) {
	for _, c := range d.cards {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Card{}, false
}

// PrependCard puts a newly created card first.
func (d *BoardDetail) PrependCard(c domain.Card) {
	d.cards = append([]domain.Card{c}, d.cards...)
}

// ReplaceCard swaps in c for the card with the same id.
func (d *BoardDetail) ReplaceCard(c domain.Card) bool {
	for i := range d.cards {
		if d.cards[i].ID == c.ID {
			d.cards[i] = c
			return true
		}
	}
	return false
}

// RemoveCard drops the card with id.
func (d *BoardDetail) RemoveCard(id string) bool {
	for i := range d.cards {
		if d.cards[i].ID == id {
			d.cards = append(d.cards[:i:i], d.cards[i+1:]...)
			return true
		}
	}
	return false
}
