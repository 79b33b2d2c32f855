package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kudosboard/kudos-board/internal/common"
	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/repository"
	"github.com/kudosboard/kudos-board/pkg/cache"
	"github.com/kudosboard/kudos-board/pkg/logger"
	"gorm.io/gorm"
)

// CardService card business logic
type CardService interface {
	ListCards(ctx context.Context, boardID string) ([]*domain.Card, error)
	CreateCard(ctx context.Context, boardID string, req *domain.CardRequest) (*domain.Card, error)
	UpdateCard(ctx context.Context, id string, req *domain.CardRequest) (*domain.Card, error)
	DeleteCard(ctx context.Context, id string) error
	UpvoteCard(ctx context.Context, id string) (*domain.Card, error)
	LikeCard(ctx context.Context, id string) (*domain.Card, error)
}

type cardService struct {
	repo      repository.CardRepository
	boardRepo repository.BoardRepository
	cache     cache.Service
}

// NewCardService creates a CardService. cacheSvc may be nil.
func NewCardService(repo repository.CardRepository, boardRepo repository.BoardRepository, cacheSvc cache.Service) CardService {
	if cacheSvc == nil {
		cacheSvc = cache.NewService(nil)
	}
	return &cardService{repo: repo, boardRepo: boardRepo, cache: cacheSvc}
}

// ListCards returns the cards of a board, newest first. An unknown board yields an empty list.
func (s *cardService) ListCards(ctx context.Context, boardID string) ([]*domain.Card, error) {
	cards, err := s.repo.FindByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

func (s *cardService) CreateCard(ctx context.Context, boardID string, req *domain.CardRequest) (*domain.Card, error) {
	exists, err := s.boardRepo.Exists(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("check board: %w", err)
	}
	if !exists {
		return nil, common.ErrBoardNotFound
	}

	card := &domain.Card{BoardID: boardID}
	req.Apply(card)
	if err := s.repo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	s.invalidate(ctx, boardID)
	return card, nil
}

func (s *cardService) UpdateCard(ctx context.Context, id string, req *domain.CardRequest) (*domain.Card, error) {
	card := &domain.Card{ID: id}
	req.Apply(card)
	if err := s.repo.Update(ctx, card); err != nil {
		return nil, cardErr(err)
	}
	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, cardErr(err)
	}
	s.invalidate(ctx, updated.BoardID)
	return updated, nil
}

func (s *cardService) DeleteCard(ctx context.Context, id string) error {
	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return cardErr(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return cardErr(err)
	}
	s.invalidate(ctx, card.BoardID)
	return nil
}

func (s *cardService) UpvoteCard(ctx context.Context, id string) (*domain.Card, error) {
	card, err := s.repo.IncrementVotes(ctx, id)
	if err != nil {
		return nil, cardErr(err)
	}
	s.invalidate(ctx, card.BoardID)
	return card, nil
}

func (s *cardService) LikeCard(ctx context.Context, id string) (*domain.Card, error) {
	card, err := s.repo.IncrementLikes(ctx, id)
	if err != nil {
		return nil, cardErr(err)
	}
	s.invalidate(ctx, card.BoardID)
	return card, nil
}

// the board detail payload embeds cards
func (s *cardService) invalidate(ctx context.Context, boardID string) {
	if err := s.cache.InvalidateBoard(ctx, boardID); err != nil {
		logger.GetLogger().Warn().Err(err).Str("board_id", boardID).Msg("board cache invalidation failed")
	}
}

func cardErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrCardNotFound
	}
	return err
}
