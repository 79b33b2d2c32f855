// Package gatewaytest provides a testify mock of gateway.API.
package gatewaytest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/gateway"
)

// MockAPI records every call; len(Calls) is the number of requests that
// would have gone over the network.
type MockAPI struct {
	mock.Mock
}

var _ gateway.API = (*MockAPI)(nil)

func (m *MockAPI) ListBoards(ctx context.Context) ([]domain.Board, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Board), args.Error(1)
}

func (m *MockAPI) GetBoard(ctx context.Context, id string) (*domain.Board, error) {
	args := m.Called(ctx, id)
	return board(args)
}

func (m *MockAPI) CreateBoard(ctx context.Context, req *domain.BoardRequest) (*domain.Board, error) {
	args := m.Called(ctx, req)
	return board(args)
}

func (m *MockAPI) UpdateBoard(ctx context.Context, id string, req *domain.BoardRequest) (*domain.Board, error) {
	args := m.Called(ctx, id, req)
	return board(args)
}

func (m *MockAPI) DeleteBoard(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAPI) LikeBoard(ctx context.Context, id string) (*domain.Board, error) {
	args := m.Called(ctx, id)
	return board(args)
}

func (m *MockAPI) ListCards(ctx context.Context, boardID string) ([]domain.Card, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockAPI) CreateCard(ctx context.Context, boardID string, req *domain.CardRequest) (*domain.Card, error) {
	args := m.Called(ctx, boardID, req)
	return card(args)
}

func (m *MockAPI) UpdateCard(ctx context.Context, id string, req *domain.CardRequest) (*domain.Card, error) {
	args := m.Called(ctx, id, req)
	return card(args)
}

func (m *MockAPI) DeleteCard(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAPI) UpvoteCard(ctx context.Context, id string) (*domain.Card, error) {
	args := m.Called(ctx, id)
	return card(args)
}

func (m *MockAPI) LikeCard(ctx context.Context, id string) (*domain.Card, error) {
	args := m.Called(ctx, id)
	return card(args)
}

func (m *MockAPI) ListComments(ctx context.Context, cardID string) ([]domain.Comment, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockAPI) CreateComment(ctx context.Context, cardID string, req *domain.CommentRequest) (*domain.Comment, error) {
	args := m.Called(ctx, cardID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockAPI) DeleteComment(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func board(args mock.Arguments) (*domain.Board, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func card(args mock.Arguments) (*domain.Card, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}
