package postgres

import (
	"database/sql"
	"testing"
	"time"

	"shelfmark/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAccountRepo_UpsertAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAccountRepo(db)

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(int64(123), "frank", "frank@example.com").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.UpsertAccount(123, "frank", "frank@example.com")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAccountRepo(db)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	accountRows := sqlmock.NewRows([]string{"user_id", "username", "email", "genres", "created_at"}).
		AddRow(int64(123), "frank", "frank@example.com", `{Fantasy,Poetry}`, created)
	mock.ExpectQuery("SELECT user_id, username, email, genres, created_at FROM accounts").
		WithArgs(int64(123)).
		WillReturnRows(accountRows)

	favoriteRows := sqlmock.NewRows([]string{"title", "rating"}).
		AddRow("Dune", 5)
	mock.ExpectQuery("SELECT title, rating FROM favorite_books").
		WithArgs(int64(123)).
		WillReturnRows(favoriteRows)

	user, err := repo.GetAccount(123)

	assert.NoError(t, err)
	assert.Equal(t, "frank", user.Username)
	assert.Equal(t, "frank@example.com", user.Email)
	assert.Equal(t, []string{"Fantasy", "Poetry"}, user.Genres)
	assert.Equal(t, []domain.FavoriteBook{{Title: "Dune", Rating: 5}}, user.Favorites)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetAccount_NotExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAccountRepo(db)

	mock.ExpectQuery("SELECT user_id, username, email, genres, created_at FROM accounts").
		WithArgs(int64(789)).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetAccount(789)

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_SaveFavorites(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAccountRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM favorite_books").
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO favorite_books").
		WithArgs(int64(123), "Dune", 5).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO favorite_books").
		WithArgs(int64(123), "Hyperion", 4).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err = repo.SaveFavorites(123, []domain.FavoriteBook{
		{Title: "Dune", Rating: 5},
		{Title: "Hyperion", Rating: 4},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
