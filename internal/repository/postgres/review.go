package postgres

import (
	"database/sql"

	"shelfmark/internal/domain"

	"github.com/lib/pq"
)

// ReviewRepo implements repository.ReviewRepository
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo creates a new review repository
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// SaveReview persists a finished review
func (r *ReviewRepo) SaveReview(review *domain.Review) error {
	shelves := make([]string, 0, len(review.Shelves))
	for _, s := range review.Shelves {
		shelves = append(shelves, string(s))
	}

	query := `
		INSERT INTO reviews (id, user_id, book_title, rating, body, shelves, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(query,
		review.ID, review.UserID, review.BookTitle, review.Rating,
		review.Text, pq.Array(shelves), review.CreatedAt,
	)
	return err
}
