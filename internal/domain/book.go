package domain

// BookRef identifies a book by title. Titles act as the identity key
// across shelves, reviews and recommendations; author and ISBN are
// informational only.
type BookRef struct {
	Title  string
	Author string
	ISBN   string
}
