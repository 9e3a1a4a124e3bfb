package domain

import "time"

// Review is a finished review submission
type Review struct {
	ID        string
	UserID    int64
	BookTitle string
	Rating    int
	Text      string
	Shelves   []Shelf
	CreatedAt time.Time
}

// ReviewDraft accumulates a review while the user is still editing it.
// Shelf toggles are scoped to the draft until Build; only then does the
// caller forward them to the shelf store.
type ReviewDraft struct {
	BookTitle string
	Rating    int
	Text      string
	shelves   map[Shelf]bool
}

// NewReviewDraft creates an empty draft
func NewReviewDraft() *ReviewDraft {
	return &ReviewDraft{shelves: make(map[Shelf]bool)}
}

// SetTitle sets the reviewed book's title
func (d *ReviewDraft) SetTitle(title string) {
	d.BookTitle = title
}

// SetRating sets the star rating; a second click overwrites the first
func (d *ReviewDraft) SetRating(rating int) {
	d.Rating = rating
}

// SetText sets the free-text body
func (d *ReviewDraft) SetText(text string) {
	d.Text = text
}

// ToggleShelf flips a target shelf on the draft
func (d *ReviewDraft) ToggleShelf(s Shelf) {
	d.shelves[s] = !d.shelves[s]
}

// HasShelf reports whether a shelf is currently selected on the draft
func (d *ReviewDraft) HasShelf(s Shelf) bool {
	return d.shelves[s]
}

// Shelves returns the selected shelves in display order
func (d *ReviewDraft) Shelves() []Shelf {
	var out []Shelf
	for _, s := range AllShelves {
		if d.shelves[s] {
			out = append(out, s)
		}
	}
	return out
}

// Build validates the draft and assembles the final Review. The review is
// rejected when the title is empty or the rating was never set.
func (d *ReviewDraft) Build(userID int64) (*Review, error) {
	if d.BookTitle == "" {
		return nil, NewValidationError("title", "is required")
	}
	if d.Rating < 1 || d.Rating > 5 {
		return nil, NewValidationError("rating", "must be between 1 and 5")
	}

	return &Review{
		UserID:    userID,
		BookTitle: d.BookTitle,
		Rating:    d.Rating,
		Text:      d.Text,
		Shelves:   d.Shelves(),
		CreatedAt: time.Now(),
	}, nil
}
