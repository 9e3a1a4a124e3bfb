package service

import (
	"shelfmark/internal/domain"
	"shelfmark/internal/repository"
)

// ShelfService handles shelf membership. All views read through the one
// membership table; none keeps a private copy.
type ShelfService struct {
	shelves repository.ShelfRepository
}

// NewShelfService creates a new shelf service
func NewShelfService(shelves repository.ShelfRepository) *ShelfService {
	return &ShelfService{shelves: shelves}
}

// Membership returns the shelves currently containing the title
func (s *ShelfService) Membership(userID int64, bookTitle string) ([]domain.Shelf, error) {
	if bookTitle == "" {
		return nil, domain.NewValidationError("title", "is required")
	}
	return s.shelves.Membership(userID, bookTitle)
}

// Toggle flips membership of (bookTitle, shelf). Toggling twice restores
// the original state.
func (s *ShelfService) Toggle(userID int64, bookTitle string, shelf domain.Shelf) error {
	if bookTitle == "" {
		return domain.NewValidationError("title", "is required")
	}
	return s.shelves.Toggle(userID, bookTitle, shelf)
}

// IsOnAnyShelf reports whether the title sits on at least one shelf;
// list views use it to pick the bookmark icon.
func (s *ShelfService) IsOnAnyShelf(userID int64, bookTitle string) (bool, error) {
	shelves, err := s.Membership(userID, bookTitle)
	if err != nil {
		return false, err
	}
	return len(shelves) > 0, nil
}

// Books returns the titles on a shelf
func (s *ShelfService) Books(userID int64, shelf domain.Shelf) ([]domain.BookRef, error) {
	return s.shelves.Books(userID, shelf)
}

// Counts returns per-shelf book counts for the shelves overview
func (s *ShelfService) Counts(userID int64) (map[domain.Shelf]int, error) {
	return s.shelves.Counts(userID)
}
