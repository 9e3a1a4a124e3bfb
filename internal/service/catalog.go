package service

import (
	"shelfmark/internal/domain"
	"shelfmark/internal/repository"
)

// CatalogService serves the seeded browse catalog
type CatalogService struct {
	books repository.BookRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(books repository.BookRepository) *CatalogService {
	return &CatalogService{books: books}
}

// Genres returns the browsable genres
func (s *CatalogService) Genres() ([]string, error) {
	return s.books.Genres()
}

// BooksByGenre returns the catalog entries for a genre
func (s *CatalogService) BooksByGenre(genre string) ([]domain.BookRef, error) {
	if genre == "" {
		return nil, domain.NewValidationError("genre", "is required")
	}
	return s.books.BooksByGenre(genre)
}
