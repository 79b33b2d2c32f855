package repository

import (
	"context"

	"github.com/kudosboard/kudos-board/internal/domain"
	"gorm.io/gorm"
)

// CardRepository card data access
type CardRepository interface {
	FindByBoard(ctx context.Context, boardID string) ([]*domain.Card, error)
	FindByID(ctx context.Context, id string) (*domain.Card, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, card *domain.Card) error
	Update(ctx context.Context, card *domain.Card) error
	Delete(ctx context.Context, id string) error
	IncrementVotes(ctx context.Context, id string) (*domain.Card, error)
	IncrementLikes(ctx context.Context, id string) (*domain.Card, error)
}

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) FindByBoard(ctx context.Context, boardID string) ([]*domain.Card, error) {
	cards := []*domain.Card{}
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at DESC").
		Find(&cards).Error
	return cards, err
}

func (r *cardRepository) FindByID(ctx context.Context, id string) (*domain.Card, error) {
	var card domain.Card
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Card{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *cardRepository) Create(ctx context.Context, card *domain.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// Update never touches board_id
func (r *cardRepository) Update(ctx context.Context, card *domain.Card) error {
	result := r.db.WithContext(ctx).Model(&domain.Card{}).
		Where("id = ?", card.ID).
		Select("title", "message", "image", "author", "updated_at").
		Updates(card)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cardRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&domain.Card{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *cardRepository) IncrementVotes(ctx context.Context, id string) (*domain.Card, error) {
	return incrementAndReload[domain.Card](r.db.WithContext(ctx), id, "votes")
}

func (r *cardRepository) IncrementLikes(ctx context.Context, id string) (*domain.Card, error) {
	return incrementAndReload[domain.Card](r.db.WithContext(ctx), id, "likes")
}
