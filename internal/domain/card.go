package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card is a single kudos item within a board.
type Card struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Message   string    `gorm:"type:text" json:"message,omitempty"`
	Image     string    `gorm:"type:varchar(1024);not null" json:"image"`
	Author    string    `gorm:"type:varchar(255)" json:"author,omitempty"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	BoardID   string    `gorm:"type:varchar(36);not null;index" json:"boardId"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Comments []Comment `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`

	Origin Origin `gorm:"-" json:"origin,omitempty"`
}

func (Card) TableName() string {
	return "cards"
}

// BeforeCreate assigns a UUID when the caller did not provide one.
func (c *Card) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CardRequest is the body of POST /api/boards/:boardId/cards and PUT /api/cards/:id.
type CardRequest struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message"`
	Image   string `json:"image" validate:"required"`
	Author  string `json:"author"`
}

// Apply copies the editable fields onto c. BoardID is never touched.
func (r *CardRequest) Apply(c *Card) {
	c.Title = r.Title
	c.Message = r.Message
	c.Image = r.Image
	c.Author = r.Author
}
