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

// BoardService board business logic
type BoardService interface {
	ListBoards(ctx context.Context) ([]*domain.Board, error)
	GetBoard(ctx context.Context, id string) (*domain.Board, error)
	CreateBoard(ctx context.Context, req *domain.BoardRequest) (*domain.Board, error)
	UpdateBoard(ctx context.Context, id string, req *domain.BoardRequest) (*domain.Board, error)
	DeleteBoard(ctx context.Context, id string) error
	LikeBoard(ctx context.Context, id string) (*domain.Board, error)
}

type boardService struct {
	repo  repository.BoardRepository
	cache cache.Service
}

// NewBoardService creates a BoardService. cacheSvc may be nil.
func NewBoardService(repo repository.BoardRepository, cacheSvc cache.Service) BoardService {
	if cacheSvc == nil {
		cacheSvc = cache.NewService(nil)
	}
	return &boardService{repo: repo, cache: cacheSvc}
}

// ListBoards returns every board, newest first
func (s *boardService) ListBoards(ctx context.Context) ([]*domain.Board, error) {
	var cached []*domain.Board
	if err := s.cache.GetBoardList(ctx, &cached); err == nil {
		return cached, nil
	}

	boards, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	s.store(func() error { return s.cache.SetBoardList(ctx, boards) })
	return boards, nil
}

// GetBoard returns a board with its cards
func (s *boardService) GetBoard(ctx context.Context, id string) (*domain.Board, error) {
	var cached domain.Board
	if err := s.cache.GetBoard(ctx, id, &cached); err == nil {
		return &cached, nil
	}

	board, err := s.repo.FindByIDWithCards(ctx, id)
	if err != nil {
		return nil, boardErr(err)
	}
	s.store(func() error { return s.cache.SetBoard(ctx, id, board) })
	return board, nil
}

func (s *boardService) CreateBoard(ctx context.Context, req *domain.BoardRequest) (*domain.Board, error) {
	board := &domain.Board{}
	req.Apply(board)
	if err := s.repo.Create(ctx, board); err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}
	s.invalidate(ctx, "")
	return board, nil
}

func (s *boardService) UpdateBoard(ctx context.Context, id string, req *domain.BoardRequest) (*domain.Board, error) {
	board := &domain.Board{ID: id}
	req.Apply(board)
	if err := s.repo.Update(ctx, board); err != nil {
		return nil, boardErr(err)
	}
	s.invalidate(ctx, id)

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, boardErr(err)
	}
	return updated, nil
}

// DeleteBoard removes the board and everything under it
func (s *boardService) DeleteBoard(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return boardErr(err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *boardService) LikeBoard(ctx context.Context, id string) (*domain.Board, error) {
	board, err := s.repo.IncrementLikes(ctx, id)
	if err != nil {
		return nil, boardErr(err)
	}
	s.invalidate(ctx, id)
	return board, nil
}

func (s *boardService) invalidate(ctx context.Context, boardID string) {
	if err := s.cache.InvalidateBoard(ctx, boardID); err != nil {
		logger.GetLogger().Warn().Err(err).Str("board_id", boardID).Msg("board cache invalidation failed")
	}
}

func (s *boardService) store(set func() error) {
	if !s.cache.IsAvailable() {
		return
	}
	if err := set(); err != nil {
		logger.GetLogger().Warn().Err(err).Msg("board cache write failed")
	}
}

func boardErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrBoardNotFound
	}
	return err
}
