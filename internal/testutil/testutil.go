package testutil

import (
	"time"

	"shelfmark/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, username string) *domain.User {
	return &domain.User{
		UserID:    userID,
		Username:  username,
		CreatedAt: time.Now(),
	}
}

// NewTestSignup creates valid signup data that tests tweak as needed
func NewTestSignup(username string) domain.SignupData {
	return domain.SignupData{
		Username:        username,
		Password:        "hunter2",
		ConfirmPassword: "hunter2",
		Genres:          []string{"Science Fiction"},
		Favorites: []domain.FavoriteBook{
			{Title: "Dune", Rating: 5},
		},
	}
}

// NewTestBooks creates a short book list
func NewTestBooks(titles ...string) []domain.BookRef {
	books := make([]domain.BookRef, 0, len(titles))
	for _, t := range titles {
		books = append(books, domain.BookRef{Title: t})
	}
	return books
}
