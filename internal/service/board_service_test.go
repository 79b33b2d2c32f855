package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kudosboard/kudos-board/internal/common"
	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListBoards_Success(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo, nil)

	boards := []*domain.Board{{ID: "b2", Title: "new"}, {ID: "b1", Title: "old"}}
	repo.On("FindAll", mock.Anything).Return(boards, nil)

	got, err := svc.ListBoards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, boards, got)
	repo.AssertExpectations(t)
}

func TestListBoards_RepoError(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo, nil)

	dbErr := errors.New("db error")
	repo.On("FindAll", mock.Anything).Return(nil, dbErr)

	got, err := svc.ListBoards(context.Background())
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, got)
}

func TestGetBoard_NotFound(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo, nil)

	repo.On("FindByIDWithCards", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetBoard(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrBoardNotFound)
}

func TestCreateBoard_AppliesRequest(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo, nil)

	req := &domain.BoardRequest{Title: "Team", Category: domain.CategoryThankYou, Image: "https://x/y.gif", Author: "Ann"}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Board) bool {
		return b.Title == "Team" && b.Category == domain.CategoryThankYou && b.Likes == 0
	})).Return(nil)

	board, err := svc.CreateBoard(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Ann", board.Author)
	repo.AssertExpectations(t)
}

func TestUpdateBoard_NotFound(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo, nil)

	repo.On("Update", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

	_, err := svc.UpdateBoard(context.Background(), "missing", &domain.BoardRequest{Title: "x"})
	assert.ErrorIs(t, err, common.ErrBoardNotFound)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestDeleteBoard(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo, nil)

	repo.On("Delete", mock.Anything, "b1").Return(nil)
	repo.On("Delete", mock.Anything, "missing").Return(gorm.ErrRecordNotFound)

	assert.NoError(t, svc.DeleteBoard(context.Background(), "b1"))
	assert.ErrorIs(t, svc.DeleteBoard(context.Background(), "missing"), common.ErrBoardNotFound)
}

func TestLikeBoard(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo, nil)

	repo.On("IncrementLikes", mock.Anything, "b1").Return(&domain.Board{ID: "b1", Likes: 4}, nil)
	repo.On("IncrementLikes", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	board, err := svc.LikeBoard(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, 4, board.Likes)

	_, err = svc.LikeBoard(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrBoardNotFound)
}
