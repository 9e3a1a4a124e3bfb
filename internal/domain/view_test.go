package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackParent(t *testing.T) {
	tests := []struct {
		name     string
		view     ViewState
		expected ViewState
	}{
		{
			name:     "book list returns to genre browse",
			view:     ViewBookList,
			expected: ViewGenreBrowse,
		},
		{
			name:     "shelf detail returns to shelves overview, never home",
			view:     ViewShelfDetail,
			expected: ViewShelvesOverview,
		},
		{
			name:     "search results return to home",
			view:     ViewSearchResults,
			expected: ViewHome,
		},
		{
			name:     "genre browse returns to home",
			view:     ViewGenreBrowse,
			expected: ViewHome,
		},
		{
			name:     "shelves overview returns to home",
			view:     ViewShelvesOverview,
			expected: ViewHome,
		},
		{
			name:     "review authoring returns to home",
			view:     ViewReviewAuthoring,
			expected: ViewHome,
		},
		{
			name:     "home stays home",
			view:     ViewHome,
			expected: ViewHome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BackParent(tt.view))
		})
	}
}

func TestNewStateData(t *testing.T) {
	s := NewStateData()

	assert.Equal(t, ViewHome, s.View)
	assert.Equal(t, InputNone, s.Input)
	assert.Equal(t, -1, s.Selected)
	assert.Nil(t, s.Draft)
	assert.Nil(t, s.Signup)
}
