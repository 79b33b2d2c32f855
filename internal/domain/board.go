package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is the board theme.
type Category string

const (
	CategoryCelebration Category = "celebration"
	CategoryThankYou    Category = "thank you"
	CategoryInspiration Category = "inspiration"
	CategoryFeedback    Category = "feedback"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryCelebration,
	CategoryThankYou,
	CategoryInspiration,
	CategoryFeedback,
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Board is a themed collection of kudos cards.
type Board struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Category    Category  `gorm:"type:varchar(32);not null;index" json:"category"`
	Image       string    `gorm:"type:varchar(1024);not null" json:"image"`
	Author      string    `gorm:"type:varchar(255)" json:"author,omitempty"`
	Likes       int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Cards []Card `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"cards,omitempty"`

	Origin Origin `gorm:"-" json:"origin,omitempty"`
}

func (Board) TableName() string {
	return "boards"
}

// BeforeCreate assigns a UUID when the caller did not provide one.
func (b *Board) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BoardRequest is the body of POST /api/boards and PUT /api/boards/:id.
type BoardRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Category    Category `json:"category" validate:"required,kudos_category"`
	Image       string   `json:"image" validate:"required"`
	Author      string   `json:"author"`
}

// Apply copies the editable fields onto b.
func (r *BoardRequest) Apply(b *Board) {
	b.Title = r.Title
	b.Description = r.Description
	b.Category = r.Category
	b.Image = r.Image
	b.Author = r.Author
}
