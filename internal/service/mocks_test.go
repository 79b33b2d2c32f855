package service

import (
	"context"

	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock BoardRepository ---

type mockBoardRepo struct {
	mock.Mock
}

func (m *mockBoardRepo) FindAll(ctx context.Context) ([]*domain.Board, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Board), args.Error(1)
}

func (m *mockBoardRepo) FindByID(ctx context.Context, id string) (*domain.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *mockBoardRepo) FindByIDWithCards(ctx context.Context, id string) (*domain.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *mockBoardRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockBoardRepo) Create(ctx context.Context, board *domain.Board) error {
	return m.Called(ctx, board).Error(0)
}

func (m *mockBoardRepo) Update(ctx context.Context, board *domain.Board) error {
	return m.Called(ctx, board).Error(0)
}

func (m *mockBoardRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBoardRepo) IncrementLikes(ctx context.Context, id string) (*domain.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

// --- Mock CardRepository ---

type mockCardRepo struct {
	mock.Mock
}

func (m *mockCardRepo) FindByBoard(ctx context.Context, boardID string) ([]*domain.Card, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Card), args.Error(1)
}

func (m *mockCardRepo) FindByID(ctx context.Context, id string) (*domain.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *mockCardRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCardRepo) Create(ctx context.Context, card *domain.Card) error {
	return m.Called(ctx, card).Error(0)
}

func (m *mockCardRepo) Update(ctx context.Context, card *domain.Card) error {
	return m.Called(ctx, card).Error(0)
}

func (m *mockCardRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCardRepo) IncrementVotes(ctx context.Context, id string) (*domain.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *mockCardRepo) IncrementLikes(ctx context.Context, id string) (*domain.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

// --- Mock CommentRepository ---

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) FindByCard(ctx context.Context, cardID string) ([]*domain.Comment, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
