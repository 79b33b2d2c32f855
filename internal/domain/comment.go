package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a reply on a card.
type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Author    string    `gorm:"type:varchar(255)" json:"author,omitempty"`
	CardID    string    `gorm:"type:varchar(36);not null;index" json:"cardId"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	Origin Origin `gorm:"-" json:"origin,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}

// BeforeCreate assigns a UUID when the caller did not provide one.
func (c *Comment) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CommentRequest is the body of POST /api/cards/:id/comments.
type CommentRequest struct {
	Message string `json:"message" validate:"required,notblank"`
	Author  string `json:"author"`
}
