package postgres

import (
	"testing"
	"time"

	"shelfmark/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReviewRepo_SaveReview(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewReviewRepo(db)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	review := &domain.Review{
		ID:        "2c8b7f3a-0000-0000-0000-000000000000",
		UserID:    123,
		BookTitle: "Dune",
		Rating:    5,
		Text:      "A classic.",
		Shelves:   []domain.Shelf{domain.ShelfFavorites, domain.ShelfReadAgain},
		CreatedAt: created,
	}

	mock.ExpectExec("INSERT INTO reviews").
		WithArgs(review.ID, int64(123), "Dune", 5, "A classic.",
			sqlmock.AnyArg(), created).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SaveReview(review)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
