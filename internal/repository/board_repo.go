package repository

import (
	"context"

	"github.com/kudosboard/kudos-board/internal/domain"
	"gorm.io/gorm"
)

// BoardRepository board data access
type BoardRepository interface {
	FindAll(ctx context.Context) ([]*domain.Board, error)
	FindByID(ctx context.Context, id string) (*domain.Board, error)
	FindByIDWithCards(ctx context.Context, id string) (*domain.Board, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, board *domain.Board) error
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id string) error
	IncrementLikes(ctx context.Context, id string) (*domain.Board, error)
}

type boardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) FindAll(ctx context.Context) ([]*domain.Board, error) {
	boards := []*domain.Board{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&boards).Error
	return boards, err
}

func (r *boardRepository) FindByID(ctx context.Context, id string) (*domain.Board, error) {
	var board domain.Board
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByIDWithCards loads the board and its cards, newest card first
func (r *boardRepository) FindByIDWithCards(ctx context.Context, id string) (*domain.Board, error) {
	var board domain.Board
	err := r.db.WithContext(ctx).
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", id).
		First(&board).Error
	if err != nil {
		return nil, err
	}
	if board.Cards == nil {
		board.Cards = []domain.Card{}
	}
	return &board, nil
}

func (r *boardRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Board{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *boardRepository) Create(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

// Update saves the editable fields; returns gorm.ErrRecordNotFound when no row matched
func (r *boardRepository) Update(ctx context.Context, board *domain.Board) error {
	result := r.db.WithContext(ctx).Model(&domain.Board{}).
		Where("id = ?", board.ID).
		Select("title", "description", "category", "image", "author", "updated_at").
		Updates(board)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the board together with its cards and their comments
func (r *boardRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cardIDs := tx.Model(&domain.Card{}).Select("id").Where("board_id = ?", id)
		if err := tx.Where("card_id IN (?)", cardIDs).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.Card{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&domain.Board{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// IncrementLikes atomically adds one like and returns the updated board
func (r *boardRepository) IncrementLikes(ctx context.Context, id string) (*domain.Board, error) {
	return incrementAndReload[domain.Board](r.db.WithContext(ctx), id, "likes")
}
