package postgres

import (
	"database/sql"

	"shelfmark/internal/domain"
)

// BookRepo implements repository.BookRepository over the seeded catalog
type BookRepo struct {
	db *sql.DB
}

// NewBookRepo creates a new book repository
func NewBookRepo(db *sql.DB) *BookRepo {
	return &BookRepo{db: db}
}

// Genres returns every genre present in the catalog
func (r *BookRepo) Genres() ([]string, error) {
	query := `SELECT DISTINCT genre FROM books ORDER BY genre`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}

	return genres, rows.Err()
}

// BooksByGenre returns the catalog entries for a genre
func (r *BookRepo) BooksByGenre(genre string) ([]domain.BookRef, error) {
	query := `SELECT title, author, COALESCE(isbn, '') FROM books WHERE genre = $1 ORDER BY title`
	rows, err := r.db.Query(query, genre)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.BookRef
	for rows.Next() {
		var b domain.BookRef
		if err := rows.Scan(&b.Title, &b.Author, &b.ISBN); err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	return books, rows.Err()
}
