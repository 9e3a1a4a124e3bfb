package service

import (
	"testing"

	"shelfmark/internal/domain"
	"shelfmark/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestShelfService_Membership(t *testing.T) {
	tests := []struct {
		name          string
		title         string
		repoShelves   []domain.Shelf
		expectedError bool
	}{
		{
			name:        "title on shelves",
			title:       "Dune",
			repoShelves: []domain.Shelf{domain.ShelfFavorites},
		},
		{
			name:        "title on no shelf",
			title:       "Hyperion",
			repoShelves: nil,
		},
		{
			name:          "empty title",
			title:         "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockShelfRepository)
			svc := NewShelfService(mockRepo)

			if !tt.expectedError {
				mockRepo.On("Membership", int64(123), tt.title).Return(tt.repoShelves, nil)
			}

			shelves, err := svc.Membership(123, tt.title)

			if tt.expectedError {
				assert.True(t, domain.IsValidation(err))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.repoShelves, shelves)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestShelfService_IsOnAnyShelf(t *testing.T) {
	tests := []struct {
		name        string
		repoShelves []domain.Shelf
		expected    bool
	}{
		{
			name:        "on one shelf",
			repoShelves: []domain.Shelf{domain.ShelfReadAgain},
			expected:    true,
		},
		{
			name:        "on several shelves",
			repoShelves: []domain.Shelf{domain.ShelfFavorites, domain.ShelfWantToRead},
			expected:    true,
		},
		{
			name:        "on no shelf",
			repoShelves: nil,
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockShelfRepository)
			svc := NewShelfService(mockRepo)

			mockRepo.On("Membership", int64(123), "Dune").Return(tt.repoShelves, nil)

			onShelf, err := svc.IsOnAnyShelf(123, "Dune")

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, onShelf)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestShelfService_Toggle(t *testing.T) {
	mockRepo := new(testutil.MockShelfRepository)
	svc := NewShelfService(mockRepo)

	mockRepo.On("Toggle", int64(123), "Dune", domain.ShelfFavorites).Return(nil)

	err := svc.Toggle(123, "Dune", domain.ShelfFavorites)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestShelfService_Toggle_EmptyTitle(t *testing.T) {
	mockRepo := new(testutil.MockShelfRepository)
	svc := NewShelfService(mockRepo)

	err := svc.Toggle(123, "", domain.ShelfFavorites)

	assert.True(t, domain.IsValidation(err))
	mockRepo.AssertNotCalled(t, "Toggle")
}

func TestShelfService_Counts(t *testing.T) {
	mockRepo := new(testutil.MockShelfRepository)
	svc := NewShelfService(mockRepo)

	expected := map[domain.Shelf]int{domain.ShelfFavorites: 2}
	mockRepo.On("Counts", int64(123)).Return(expected, nil)

	counts, err := svc.Counts(123)

	assert.NoError(t, err)
	assert.Equal(t, expected, counts)
	mockRepo.AssertExpectations(t)
}
