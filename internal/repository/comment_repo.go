package repository

import (
	"context"

	"github.com/kudosboard/kudos-board/internal/domain"
	"gorm.io/gorm"
)

// CommentRepository comment data access
type CommentRepository interface {
	FindByCard(ctx context.Context, cardID string) ([]*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) FindByCard(ctx context.Context, cardID string) ([]*domain.Comment, error) {
	comments := []*domain.Comment{}
	err := r.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
