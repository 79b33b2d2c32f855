package repository

import (
	"gorm.io/gorm"
)

// incrementAndReload bumps a counter column by one inside a transaction and
// returns the fresh row. gorm.ErrRecordNotFound is returned when id is unknown.
func incrementAndReload[T any](db *gorm.DB, id, column string) (*T, error) {
	var out T
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&out).
			Where("id = ?", id).
			UpdateColumn(column, gorm.Expr(column+" + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
