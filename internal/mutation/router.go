package mutation

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/scope"
)

// Router applies actions to scopes created by one Controller.
type Router struct {
	ctrl *scope.Controller
	log  zerolog.Logger
}

// NewRouter creates a Router for the scopes of ctrl.
func NewRouter(ctrl *scope.Controller, log zerolog.Logger) *Router {
	return &Router{
		ctrl: ctrl,
		log:  log.With().Str("component", "mutation").Logger(),
	}
}

// decide routes action and turns a rejection into its error.
func (r *Router) decide(status scope.Status, origin domain.Origin, action Action) (Decision, error) {
	d := Route(status, origin, action)
	if d != Rejected {
		return d, nil
	}
	if !status.Ready() {
		return d, ErrScopeNotReady
	}
	return d, rejection(action)
}

// remoteFailed maps a gateway error. A failed create falls back to local
// synthesis when some scope is already degraded; the returned bool reports
// that the caller should take the local path.
func (r *Router) remoteFailed(ctx context.Context, action Action, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if action.IsCreate() && r.ctrl.Degraded() {
		r.log.Info().Err(err).Str("action", action.String()).Msg("server unavailable, creating locally")
		return true, nil
	}
	r.log.Warn().Err(err).Str("action", action.String()).Msg("mutation failed")
	return false, newError(action, err)
}

// ========================================
// boards
// ========================================

// CreateBoard validates req and adds the new board to the front of list.
func (r *Router) CreateBoard(ctx context.Context, list *scope.BoardList, req *domain.BoardRequest) (domain.Board, error) {
	if err := domain.ValidateBoard(req); err != nil {
		return domain.Board{}, err
	}
	d, err := r.decide(list.Status(), domain.OriginServer, CreateBoard)
	if err != nil {
		return domain.Board{}, err
	}

	if d == Remote {
		created, err := r.ctrl.API().CreateBoard(ctx, req)
		if err == nil {
			list.Prepend(*created)
			return *created, nil
		}
		fallback, err := r.remoteFailed(ctx, CreateBoard, err)
		if !fallback {
			return domain.Board{}, err
		}
	}

	b := r.ctrl.Generator().LocalBoard(req)
	list.Prepend(b)
	return b, nil
}

// DeleteBoard removes the board with id from list.
func (r *Router) DeleteBoard(ctx context.Context, list *scope.BoardList, id string) error {
	target, ok := list.Find(id)
	if !ok {
		return ErrNotFound
	}
	d, err := r.decide(list.Status(), target.Origin, DeleteBoard)
	if err != nil {
		return err
	}

	if d == Remote {
		if err := r.ctrl.API().DeleteBoard(ctx, id); err != nil {
			_, err = r.remoteFailed(ctx, DeleteBoard, err)
			return err
		}
	}
	list.Remove(id)
	return nil
}

// LikeBoard adds one like to the board with id.
func (r *Router) LikeBoard(ctx context.Context, list *scope.BoardList, id string) (domain.Board, error) {
	target, ok := list.Find(id)
	if !ok {
		return domain.Board{}, ErrNotFound
	}
	d, err := r.decide(list.Status(), target.Origin, LikeBoard)
	if err != nil {
		return domain.Board{}, err
	}

	if d == Remote {
		updated, err := r.ctrl.API().LikeBoard(ctx, id)
		if err != nil {
			_, err = r.remoteFailed(ctx, LikeBoard, err)
			return domain.Board{}, err
		}
		list.Replace(*updated)
		return *updated, nil
	}

	target.Likes++
	list.Replace(target)
	return target, nil
}

// ========================================
// cards
// ========================================

// CreateCard validates req and adds the new card to the front of detail.
func (r *Router) CreateCard(ctx context.Context, detail *scope.BoardDetail, req *domain.CardRequest) (domain.Card, error) {
	if err := domain.ValidateCard(req); err != nil {
		return domain.Card{}, err
	}
	board := detail.Board()
	d, err := r.decide(detail.Status(), board.Origin, CreateCard)
	if err != nil {
		return domain.Card{}, err
	}

	if d == Remote {
		created, err := r.ctrl.API().CreateCard(ctx, board.ID, req)
		if err == nil {
			detail.PrependCard(*created)
			return *created, nil
		}
		fallback, err := r.remoteFailed(ctx, CreateCard, err)
		if !fallback {
			return domain.Card{}, err
		}
	}

	c := r.ctrl.Generator().LocalCard(board.ID, req)
	detail.PrependCard(c)
	return c, nil
}

// DeleteCard removes the card with id. Demo cards cannot be deleted.
func (r *Router) DeleteCard(ctx context.Context, detail *scope.BoardDetail, id string) error {
	target, ok := detail.FindCard(id)
	if !ok {
		return ErrNotFound
	}
	d, err := r.decide(detail.Status(), target.Origin, DeleteCard)
	if err != nil {
		return err
	}

	if d == Remote {
		if err := r.ctrl.API().DeleteCard(ctx, id); err != nil {
			_, err = r.remoteFailed(ctx, DeleteCard, err)
			return err
		}
	}
	detail.RemoveCard(id)
	return nil
}

// UpvoteCard adds one vote to the card with id. Demo cards cannot be upvoted.
func (r *Router) UpvoteCard(ctx context.Context, detail *scope.BoardDetail, id string) (domain.Card, error) {
	return r.bumpCard(ctx, detail, id, UpvoteCard)
}

// LikeCard adds one like to the card with id.
func (r *Router) LikeCard(ctx context.Context, detail *scope.BoardDetail, id string) (domain.Card, error) {
	return r.bumpCard(ctx, detail, id, LikeCard)
}

func (r *Router) bumpCard(ctx context.Context, detail *scope.BoardDetail, id string, action Action) (domain.Card, error) {
	target, ok := detail.FindCard(id)
	if !ok {
		return domain.Card{}, ErrNotFound
	}
	d, err := r.decide(detail.Status(), target.Origin, action)
	if err != nil {
		return domain.Card{}, err
	}

	if d == Remote {
		var updated *domain.Card
		if action == UpvoteCard {
			updated, err = r.ctrl.API().UpvoteCard(ctx, id)
		} else {
			updated, err = r.ctrl.API().LikeCard(ctx, id)
		}
		if err != nil {
			_, err = r.remoteFailed(ctx, action, err)
			return domain.Card{}, err
		}
		detail.ReplaceCard(*updated)
		return *updated, nil
	}

	if action == UpvoteCard {
		target.Votes++
	} else {
		target.Likes++
	}
	detail.ReplaceCard(target)
	return target, nil
}

// ========================================
// comments
// ========================================

// CreateComment validates req and adds the comment to the front of thread.
func (r *Router) CreateComment(ctx context.Context, thread *scope.CardComments, req *domain.CommentRequest) (domain.Comment, error) {
	if err := domain.ValidateComment(req); err != nil {
		return domain.Comment{}, err
	}
	card := thread.Card()
	d, err := r.decide(thread.Status(), card.Origin, CreateComment)
	if err != nil {
		return domain.Comment{}, err
	}

	if d == Remote {
		created, err := r.ctrl.API().CreateComment(ctx, card.ID, req)
		if err == nil {
			thread.PrependComment(*created)
			return *created, nil
		}
		fallback, err := r.remoteFailed(ctx, CreateComment, err)
		if !fallback {
			return domain.Comment{}, err
		}
	}

	c := r.ctrl.Generator().LocalComment(card.ID, req)
	thread.PrependComment(c)
	return c, nil
}

// DeleteComment removes the comment with id. Demo comments are read-only.
func (r *Router) DeleteComment(ctx context.Context, thread *scope.CardComments, id string) error {
	target, ok := thread.FindComment(id)
	if !ok {
		return ErrNotFound
	}
	d, err := r.decide(thread.Status(), target.Origin, DeleteComment)
	if err != nil {
		return err
	}

	if d == Remote {
		if err := r.ctrl.API().DeleteComment(ctx, id); err != nil {
			_, err = r.remoteFailed(ctx, DeleteComment, err)
			return err
		}
	}
	thread.RemoveComment(id)
	return nil
}
