package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kudosboard/kudos-board/internal/common"
	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/repository"
	"gorm.io/gorm"
)

type CommentService interface {
	ListComments(ctx context.Context, cardID string) ([]*domain.Comment, error)
	CreateComment(ctx context.Context, cardID string, req *domain.CommentRequest) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

type commentService struct {
	repo     repository.CommentRepository
	cardRepo repository.CardRepository
}

func NewCommentService(repo repository.CommentRepository, cardRepo repository.CardRepository) CommentService {
	return &commentService{repo: repo, cardRepo: cardRepo}
}

// ListComments returns all comments for a card, newest first
func (s *commentService) ListComments(ctx context.Context, cardID string) ([]*domain.Comment, error) {
	comments, err := s.repo.FindByCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// CreateComment attaches a comment to an existing card
func (s *commentService) CreateComment(ctx context.Context, cardID string, req *domain.CommentRequest) (*domain.Comment, error) {
	exists, err := s.cardRepo.Exists(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("check card: %w", err)
	}
	if !exists {
		return nil, common.ErrCardNotFound
	}

	comment := &domain.Comment{
		Message: req.Message,
		Author:  req.Author,
		CardID:  cardID,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrCommentNotFound
		}
		return err
	}
	return nil
}
