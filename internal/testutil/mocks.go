package testutil

import (
	"context"

	"shelfmark/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock for AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) UpsertAccount(userID int64, username, email string) error {
	args := m.Called(userID, username, email)
	return args.Error(0)
}

func (m *MockAccountRepository) GetAccount(userID int64) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAccountRepository) SaveGenres(userID int64, genres []string) error {
	args := m.Called(userID, genres)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveFavorites(userID int64, favorites []domain.FavoriteBook) error {
	args := m.Called(userID, favorites)
	return args.Error(0)
}

// MockShelfRepository is a mock for ShelfRepository
type MockShelfRepository struct {
	mock.Mock
}

func (m *MockShelfRepository) Membership(userID int64, bookTitle string) ([]domain.Shelf, error) {
	args := m.Called(userID, bookTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shelf), args.Error(1)
}

func (m *MockShelfRepository) Toggle(userID int64, bookTitle string, shelf domain.Shelf) error {
	args := m.Called(userID, bookTitle, shelf)
	return args.Error(0)
}

func (m *MockShelfRepository) Books(userID int64, shelf domain.Shelf) ([]domain.BookRef, error) {
	args := m.Called(userID, shelf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookRef), args.Error(1)
}

func (m *MockShelfRepository) Counts(userID int64) (map[domain.Shelf]int, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.Shelf]int), args.Error(1)
}

// MockReviewRepository is a mock for ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) SaveReview(review *domain.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

// MockBookRepository is a mock for BookRepository
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Genres() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookRepository) BooksByGenre(genre string) ([]domain.BookRef, error) {
	args := m.Called(genre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookRef), args.Error(1)
}

// MockSearcher is a mock for the recommendation gateway
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, query string) ([]domain.BookRef, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookRef), args.Error(1)
}
