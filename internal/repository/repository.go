package repository

import (
	"shelfmark/internal/domain"
)

// AccountRepository defines account data operations
type AccountRepository interface {
	UpsertAccount(userID int64, username, email string) error
	GetAccount(userID int64) (*domain.User, error)
	SaveGenres(userID int64, genres []string) error
	SaveFavorites(userID int64, favorites []domain.FavoriteBook) error
}

// ShelfRepository defines shelf membership operations. There is exactly
// one membership table; every view reads through it.
type ShelfRepository interface {
	Membership(userID int64, bookTitle string) ([]domain.Shelf, error)
	Toggle(userID int64, bookTitle string, shelf domain.Shelf) error
	Books(userID int64, shelf domain.Shelf) ([]domain.BookRef, error)
	Counts(userID int64) (map[domain.Shelf]int, error)
}

// ReviewRepository defines review persistence
type ReviewRepository interface {
	SaveReview(review *domain.Review) error
}

// BookRepository defines catalog lookups
type BookRepository interface {
	Genres() ([]string, error)
	BooksByGenre(genre string) ([]domain.BookRef, error)
}
