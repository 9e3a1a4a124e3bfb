package domain

// Shelf is one of the fixed personal collections a book can belong to
type Shelf string

const (
	ShelfFavorites        Shelf = "favorites"
	ShelfCurrentlyReading Shelf = "currently_reading"
	ShelfWantToRead       Shelf = "want_to_read"
	ShelfReadAgain        Shelf = "read_again"
)

// AllShelves lists every shelf in display order
var AllShelves = []Shelf{
	ShelfFavorites,
	ShelfCurrentlyReading,
	ShelfWantToRead,
	ShelfReadAgain,
}

// Label returns the user-facing shelf name
func (s Shelf) Label() string {
	switch s {
	case ShelfFavorites:
		return "Favorites"
	case ShelfCurrentlyReading:
		return "Currently Reading"
	case ShelfWantToRead:
		return "Want to Read"
	case ShelfReadAgain:
		return "Read Again"
	}
	return string(s)
}

// ParseShelf maps a stored shelf id back to a Shelf
func ParseShelf(id string) (Shelf, bool) {
	for _, s := range AllShelves {
		if string(s) == id {
			return s, true
		}
	}
	return "", false
}
