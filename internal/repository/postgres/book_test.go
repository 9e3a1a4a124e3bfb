package postgres

import (
	"testing"

	"shelfmark/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestBookRepo_Genres(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewBookRepo(db)

	rows := sqlmock.NewRows([]string{"genre"}).
		AddRow("Fantasy").
		AddRow("Poetry").
		AddRow("Science Fiction")
	mock.ExpectQuery("SELECT DISTINCT genre FROM books").WillReturnRows(rows)

	genres, err := repo.Genres()

	assert.NoError(t, err)
	assert.Equal(t, []string{"Fantasy", "Poetry", "Science Fiction"}, genres)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepo_BooksByGenre(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewBookRepo(db)

	rows := sqlmock.NewRows([]string{"title", "author", "isbn"}).
		AddRow("Dune", "Frank Herbert", "9780441013593").
		AddRow("Hyperion", "Dan Simmons", "")
	mock.ExpectQuery("SELECT title, author").
		WithArgs("Science Fiction").
		WillReturnRows(rows)

	books, err := repo.BooksByGenre("Science Fiction")

	assert.NoError(t, err)
	assert.Equal(t, []domain.BookRef{
		{Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593"},
		{Title: "Hyperion", Author: "Dan Simmons"},
	}, books)
	assert.NoError(t, mock.ExpectationsWereMet())
}
