package scope

import (
	"context"

	"github.com/kudosboard/kudos-board/internal/domain"
)

// CardComments is the comment thread of one card.
type CardComments struct {
	ctrl     *Controller
	target   domain.Card
	status   Status
	notice   string
	comments []domain.Comment
}

func (s *CardComments) Status() Status { return s.status }

// Notice is the informational note set by a degraded load, or "".
func (s *CardComments) Notice() string { return s.notice }

// Card returns the card the thread belongs to.
func (s *CardComments) Card() domain.Card { return s.target }

// Comments returns the thread, newest first.
func (s *CardComments) Comments() []domain.Comment {
	return s.comments
}

func (s *CardComments) key() string {
	return "comments:" + s.target.ID
}

// Load fetches the comments. A card that is not server-issued is never
// fetched: demo cards get simulated comments and cards created offline
// start with none.
func (s *CardComments) Load(ctx context.Context) error {
	prev, prevNotice := s.status, s.notice
	s.status = Loading
	s.notice = ""

	if !s.target.Origin.Persisted() {
		if s.target.Origin == domain.OriginSynthetic {
			s.comments = s.ctrl.gen.Comments(s.target.ID)
		} else {
			s.comments = []domain.Comment{}
		}
		s.notice = NoticeDemoCard
		s.status = Degraded
		s.ctrl.record(s.key(), s.status)
		return nil
	}

	comments, err := s.ctrl.api.ListComments(ctx, s.target.ID)
	if canceled(ctx) {
		s.status, s.notice = prev, prevNotice
		return ctx.Err()
	}
	if err != nil {
		s.ctrl.log.Warn().Err(err).Str("scope", "comments").Str("card_id", s.target.ID).Msg("comments unavailable, showing simulated comments")
		s.comments = s.ctrl.gen.Comments(s.target.ID)
		s.notice = NoticeServerUnreachable
		s.status = Degraded
	} else {
		s.comments = comments
		s.status = Live
	}
	s.ctrl.record(s.key(), s.status)
	return nil
}

// FindComment returns the comment with id.
func (s *CardComments) FindComment(id string) (domain.Comment, bool) {
	for _, c := range s.comments {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Comment{}, false
}

// PrependComment puts a new comment first.
func (s *CardComments) PrependComment(c domain.Comment) {
	s.comments = append([]domain.Comment{c}, s.comments...)
}

// RemoveComment drops the comment with id.
func (s *CardComments) RemoveComment(id string) bool {
	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments = append(s.comments[:i:i], s.comments[i+1:]...)
			return true
		}
	}
	return false
}
