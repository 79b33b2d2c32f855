package migration

import (
	"fmt"

	"github.com/kudosboard/kudos-board/internal/domain"
	"gorm.io/gorm"
)

var sampleGifs = []string{
	"https://media.giphy.com/media/3o6Zt6KHxJTbX20WTS/giphy.gif",
	"https://media.giphy.com/media/l0MYt5jPR6QX5pnqM/giphy.gif",
	"https://media.giphy.com/media/ZfK4cXKJTTay1Ava29/giphy.gif",
	"https://media.giphy.com/media/xTiN0L7EW5trfOvEk0/giphy.gif",
	"https://media.giphy.com/media/3oEjI6SIIHBdRxXI40/giphy.gif",
	"https://media.giphy.com/media/l46CyJmS9KUbokzsI/giphy.gif",
}

// SampleBoards returns the demo data written by Seed.
func SampleBoards() []domain.Board {
	return []domain.Board{
		{
			Title:       "Team Appreciation",
			Description: "Share your appreciation with the team members who've gone above and beyond!",
			Category:    domain.CategoryCelebration,
			Image:       sampleGifs[0],
			Author:      "Team Lead",
			Cards: []domain.Card{
				{
					Title:   "Great work on the launch!",
					Message: "Your dedication and hard work made our product launch a huge success. Thank you for all the late nights and attention to detail.",
					Image:   sampleGifs[1],
					Author:  "Sarah",
					Votes:   5,
				},
				{
					Title:   "Thanks for the mentorship",
					Message: "I've learned so much from working with you. Your guidance has been invaluable to my professional growth.",
					Image:   sampleGifs[2],
					Author:  "Michael",
					Votes:   3,
				},
			},
		},
		{
			Title:       "Project Milestone",
			Description: "We've reached 1000 users! Let's celebrate this amazing achievement together.",
			Category:    domain.CategoryCelebration,
			Image:       sampleGifs[3],
			Author:      "Product Manager",
			Cards: []domain.Card{
				{
					Title:   "Excellent customer service",
					Message: "You went above and beyond for our clients! Your dedication to customer satisfaction is truly inspiring.",
					Image:   sampleGifs[4],
					Author:  "Client Success Manager",
					Votes:   7,
				},
			},
		},
		{
			Title:       "Customer Support be like",
			Description: "Recognize our support team for their hard work and dedication to our customers.",
			Category:    domain.CategoryThankYou,
			Image:       sampleGifs[5],
			Author:      "Support Manager",
		},
		{
			Title:       "Stating the Obvious",
			Description: "Share your innovative ideas and inspirations for our next big project!",
			Category:    domain.CategoryInspiration,
			Image:       sampleGifs[2],
			Author:      "Innovation Team",
			Cards: []domain.Card{
				{
					Title:   "AI-powered customer insights",
					Message: "What if we used machine learning to analyze customer feedback and automatically identify trends and pain points?",
					Image:   sampleGifs[0],
					Author:  "Data Scientist",
					Votes:   10,
				},
			},
		},
		{
			Title:       "Feedback",
			Description: "A safe space to share constructive feedback and help us all grow together.",
			Category:    domain.CategoryFeedback,
			Image:       sampleGifs[4],
			Author:      "HR Director",
		},
	}
}

// SeedResult reports what Seed wrote.
type SeedResult struct {
	Boards int
	Cards  int
}

// Seed clears every table and inserts SampleBoards with their cards.
func Seed(db *gorm.DB) (SeedResult, error) {
	var res SeedResult
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&domain.Comment{}, &domain.Card{}, &domain.Board{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}

		boards := SampleBoards()
		for i := range boards {
			if err := tx.Create(&boards[i]).Error; err != nil {
				return fmt.Errorf("create board %q: %w", boards[i].Title, err)
			}
			res.Boards++
			res.Cards += len(boards[i].Cards)
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return res, nil
}
