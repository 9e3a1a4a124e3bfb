package postgres

import (
	"database/sql"

	"shelfmark/internal/domain"
)

// ShelfRepo implements repository.ShelfRepository
type ShelfRepo struct {
	db *sql.DB
}

// NewShelfRepo creates a new shelf repository
func NewShelfRepo(db *sql.DB) *ShelfRepo {
	return &ShelfRepo{db: db}
}

// Membership returns the shelves currently containing the title
func (r *ShelfRepo) Membership(userID int64, bookTitle string) ([]domain.Shelf, error) {
	query := `SELECT shelf FROM shelf_memberships WHERE user_id = $1 AND book_title = $2`
	rows, err := r.db.Query(query, userID, bookTitle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shelves []domain.Shelf
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		if s, ok := domain.ParseShelf(id); ok {
			shelves = append(shelves, s)
		}
	}

	return shelves, rows.Err()
}

// Toggle flips membership of (bookTitle, shelf): removes the entry when
// present, inserts it otherwise
func (r *ShelfRepo) Toggle(userID int64, bookTitle string, shelf domain.Shelf) error {
	del := `DELETE FROM shelf_memberships WHERE user_id = $1 AND book_title = $2 AND shelf = $3`
	res, err := r.db.Exec(del, userID, bookTitle, string(shelf))
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	ins := `
		INSERT INTO shelf_memberships (user_id, book_title, shelf)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, book_title, shelf) DO NOTHING
	`
	_, err = r.db.Exec(ins, userID, bookTitle, string(shelf))
	return err
}

// Books returns the titles on a shelf, most recently added first
func (r *ShelfRepo) Books(userID int64, shelf domain.Shelf) ([]domain.BookRef, error) {
	query := `
		SELECT book_title FROM shelf_memberships
		WHERE user_id = $1 AND shelf = $2
		ORDER BY added_at DESC
	`
	rows, err := r.db.Query(query, userID, string(shelf))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.BookRef
	for rows.Next() {
		var b domain.BookRef
		if err := rows.Scan(&b.Title); err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

// Counts returns the number of books on each shelf
func (r *ShelfRepo) Counts(userID int64) (map[domain.Shelf]int, error) {
	query := `SELECT shelf, COUNT(*) FROM shelf_memberships WHERE user_id = $1 GROUP BY shelf`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Shelf]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		if s, ok := domain.ParseShelf(id); ok {
			counts[s] = n
		}
	}

	return counts, rows.Err()
}
