package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBoard(t *testing.T) {
	tests := []struct {
		name string
		req  BoardRequest
		want []string
	}{
		{
			name: "valid",
			req:  BoardRequest{Title: "Team", Category: CategoryThankYou, Image: "https://x/y.gif"},
		},
		{
			name: "all required missing",
			req:  BoardRequest{},
			want: []string{"Title is required", "Category is required", "Image is required"},
		},
		{
			name: "unknown category",
			req:  BoardRequest{Title: "Team", Category: "party", Image: "https://x/y.gif"},
			want: []string{"Category must be one of: celebration, thank you, inspiration, feedback"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBoard(&tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.want, verr.Errors)
		})
	}
}

func TestValidateCard(t *testing.T) {
	assert.NoError(t, ValidateCard(&CardRequest{Title: "Nice", Image: "https://x/y.gif"}))

	var verr *ValidationError
	require.True(t, errors.As(ValidateCard(&CardRequest{Message: "only a message"}), &verr))
	assert.Equal(t, []string{"Title is required", "Image is required"}, verr.Errors)
}

func TestValidateComment(t *testing.T) {
	assert.NoError(t, ValidateComment(&CommentRequest{Message: "great"}))

	var verr *ValidationError
	require.True(t, errors.As(ValidateComment(&CommentRequest{Message: "   "}), &verr))
	assert.Equal(t, []string{"Message is required"}, verr.Errors)
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("Celebration").Valid())
	assert.False(t, Category("").Valid())
}

func TestOrigin(t *testing.T) {
	assert.True(t, OriginServer.Persisted())
	assert.False(t, OriginSynthetic.Persisted())
	assert.False(t, OriginLocal.Persisted())
	assert.Equal(t, "unknown", Origin("").String())
}
