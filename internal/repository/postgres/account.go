package postgres

import (
	"database/sql"

	"shelfmark/internal/domain"

	"github.com/lib/pq"
)

// AccountRepo implements repository.AccountRepository
type AccountRepo struct {
	db *sql.DB
}

// NewAccountRepo creates a new account repository
func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// UpsertAccount creates the account row or refreshes its identity fields
func (r *AccountRepo) UpsertAccount(userID int64, username, email string) error {
	query := `
		INSERT INTO accounts (user_id, username, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET username = EXCLUDED.username,
			email = CASE WHEN EXCLUDED.email <> '' THEN EXCLUDED.email ELSE accounts.email END
	`
	_, err := r.db.Exec(query, userID, username, email)
	return err
}

// GetAccount loads an account with its stored preferences
func (r *AccountRepo) GetAccount(userID int64) (*domain.User, error) {
	var u domain.User
	var email sql.NullString
	query := `SELECT user_id, username, email, genres, created_at FROM accounts WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(
		&u.UserID, &u.Username, &email, pq.Array(&u.Genres), &u.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if email.Valid {
		u.Email = email.String
	}

	favorites, err := r.getFavorites(userID)
	if err != nil {
		return nil, err
	}
	u.Favorites = favorites

	return &u, nil
}

// SaveGenres replaces the account's preferred genres
func (r *AccountRepo) SaveGenres(userID int64, genres []string) error {
	query := `UPDATE accounts SET genres = $2 WHERE user_id = $1`
	_, err := r.db.Exec(query, userID, pq.Array(genres))
	return err
}

// SaveFavorites replaces the account's favorite books
func (r *AccountRepo) SaveFavorites(userID int64, favorites []domain.FavoriteBook) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM favorite_books WHERE user_id = $1`, userID); err != nil {
		return err
	}

	for _, f := range favorites {
		_, err := tx.Exec(
			`INSERT INTO favorite_books (user_id, title, rating) VALUES ($1, $2, $3)`,
			userID, f.Title, f.Rating,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *AccountRepo) getFavorites(userID int64) ([]domain.FavoriteBook, error) {
	query := `SELECT title, rating FROM favorite_books WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []domain.FavoriteBook
	for rows.Next() {
		var f domain.FavoriteBook
		if err := rows.Scan(&f.Title, &f.Rating); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}
