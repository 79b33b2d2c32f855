package migration

import (
	"fmt"

	"github.com/kudosboard/kudos-board/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for the boards, cards and comments tables.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Board{}, &domain.Card{}, &domain.Comment{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
