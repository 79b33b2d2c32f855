package service

import (
	"context"
	"testing"

	"github.com/kudosboard/kudos-board/internal/common"
	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateComment(t *testing.T) {
	comments := new(mockCommentRepo)
	cards := new(mockCardRepo)
	svc := NewCommentService(comments, cards)

	cards.On("Exists", mock.Anything, "c1").Return(true, nil)
	cards.On("Exists", mock.Anything, "missing").Return(false, nil)
	comments.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.CardID == "c1" && c.Message == "well done"
	})).Return(nil)

	comment, err := svc.CreateComment(context.Background(), "c1", &domain.CommentRequest{Message: "well done"})
	require.NoError(t, err)
	assert.Equal(t, "c1", comment.CardID)

	_, err = svc.CreateComment(context.Background(), "missing", &domain.CommentRequest{Message: "x"})
	assert.ErrorIs(t, err, common.ErrCardNotFound)
	comments.AssertNumberOfCalls(t, "Create", 1)
}

func TestDeleteComment_NotFound(t *testing.T) {
	comments := new(mockCommentRepo)
	svc := NewCommentService(comments, new(mockCardRepo))

	comments.On("Delete", mock.Anything, "missing").Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.DeleteComment(context.Background(), "missing"), common.ErrCommentNotFound)
}

func TestListComments(t *testing.T) {
	comments := new(mockCommentRepo)
	svc := NewCommentService(comments, new(mockCardRepo))

	comments.On("FindByCard", mock.Anything, "c1").Return([]*domain.Comment{{ID: "x", CardID: "c1"}}, nil)

	list, err := svc.ListComments(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
