package handler

import (
	"fmt"
	"strconv"
	"strings"

	"shelfmark/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// showHome renders the home screen
func (h *Handler) showHome(c tele.Context) error {
	userID := c.Sender().ID

	greeting := "🏠 Home"
	if user := h.sessions.Current(userID); user != nil {
		greeting = fmt.Sprintf("🏠 Home — hi, %s!", user.Username)
	}

	return h.display(c, greeting+"\n\nWhat would you like to do?", homeMarkup())
}

// handleGenreBrowse shows the genre tiles
func (h *Handler) handleGenreBrowse(c tele.Context) error {
	userID := c.Sender().ID

	genres, err := h.catalog.Genres()
	if err != nil {
		h.logger.Error("Failed to load genres", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load genres"})
	}

	state := h.GetState(userID)
	state.View = domain.ViewGenreBrowse
	state.Input = domain.InputNone
	state.Books = nil
	state.Selected = -1
	h.SetState(userID, state)

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for i := 0; i < len(genres); i += 2 {
		row := tele.Row{}
		for _, g := range genres[i:min(i+2, len(genres))] {
			row = append(row, markup.Data(g, "genre", g))
		}
		rows = append(rows, row)
	}
	rows = append(rows, markup.Row(btnBack))
	markup.Inline(rows...)

	return h.display(c, "📚 Browse by genre:", markup)
}

// handleGenreSelection shows the book list for a genre
func (h *Handler) handleGenreSelection(c tele.Context, genre string) error {
	userID := c.Sender().ID

	books, err := h.catalog.BooksByGenre(genre)
	if err != nil {
		h.logger.Error("Failed to load genre books",
			zap.Error(err),
			zap.String("genre", genre),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load books"})
	}

	state := h.GetState(userID)
	state.View = domain.ViewBookList
	state.Input = domain.InputNone
	state.Genre = genre
	state.Books = books
	state.Selected = -1
	h.SetState(userID, state)

	return h.showListView(c, state)
}

// handleShelvesOverview shows the four shelf tiles with book counts
func (h *Handler) handleShelvesOverview(c tele.Context) error {
	userID := c.Sender().ID

	counts, err := h.shelves.Counts(userID)
	if err != nil {
		h.logger.Error("Failed to load shelf counts", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load shelves"})
	}

	state := h.GetState(userID)
	state.View = domain.ViewShelvesOverview
	state.Input = domain.InputNone
	state.Books = nil
	state.Selected = -1
	h.SetState(userID, state)

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, s := range domain.AllShelves {
		label := fmt.Sprintf("%s %s (%d)", shelfEmoji(s), s.Label(), counts[s])
		rows = append(rows, markup.Row(markup.Data(label, "shelf", string(s))))
	}
	rows = append(rows, markup.Row(btnBack))
	markup.Inline(rows...)

	return h.display(c, "🗂 Your shelves:", markup)
}

// handleShelfSelection shows the contents of one shelf
func (h *Handler) handleShelfSelection(c tele.Context, shelfID string) error {
	userID := c.Sender().ID

	shelf, ok := domain.ParseShelf(shelfID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown shelf"})
	}

	books, err := h.shelves.Books(userID, shelf)
	if err != nil {
		h.logger.Error("Failed to load shelf books",
			zap.Error(err),
			zap.String("shelf", shelfID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load shelf"})
	}

	state := h.GetState(userID)
	state.View = domain.ViewShelfDetail
	state.Input = domain.InputNone
	state.Shelf = shelf
	state.Books = books
	state.Selected = -1
	h.SetState(userID, state)

	return h.showListView(c, state)
}

// handleBookSelection marks a book in the current list as selected so its
// shelf toggles appear
func (h *Handler) handleBookSelection(c tele.Context, raw string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	idx, ok := parseIndex(raw, len(state.Books))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "That list has expired"})
	}

	state.Selected = idx
	h.SetState(userID, state)

	return h.showListView(c, state)
}

// handleShelfToggle flips shelf membership for the selected book. The data
// payload is "<shelf id>|<book index>".
func (h *Handler) handleShelfToggle(c tele.Context, raw string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	shelfID, rawIdx, found := strings.Cut(raw, "|")
	if !found {
		return c.Respond(&tele.CallbackResponse{Text: "Bad shelf button"})
	}

	shelf, ok := domain.ParseShelf(shelfID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown shelf"})
	}
	idx, ok := parseIndex(rawIdx, len(state.Books))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "That list has expired"})
	}

	title := state.Books[idx].Title
	if err := h.shelves.Toggle(userID, title, shelf); err != nil {
		h.logger.Error("Failed to toggle shelf",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("book_title", title),
			zap.String("shelf", string(shelf)),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Failed to update shelf"})
	}

	h.logger.Info("Shelf toggled",
		zap.Int64("user_id", userID),
		zap.String("book_title", title),
		zap.String("shelf", string(shelf)),
	)

	state.Selected = idx
	h.SetState(userID, state)

	return h.showListView(c, state)
}

// handleBack returns to the current view's fixed parent
func (h *Handler) handleBack(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	switch domain.BackParent(state.View) {
	case domain.ViewGenreBrowse:
		return h.handleGenreBrowse(c)
	case domain.ViewShelvesOverview:
		return h.handleShelvesOverview(c)
	default:
		h.ResetState(userID)
		return h.showHome(c)
	}
}

// showListView renders the book list of the active view into the chat
func (h *Handler) showListView(c tele.Context, state *domain.StateData) error {
	if state.View != domain.ViewBookList &&
		state.View != domain.ViewShelfDetail &&
		state.View != domain.ViewSearchResults {
		return h.showHome(c)
	}

	text, markup := h.renderListView(c.Sender().ID, state)
	return h.display(c, text, markup)
}

// renderListView builds the book list of the active view: numbered titles
// with a bookmark marker, selection buttons, and shelf toggles for the
// selected book. Membership is re-read from the shelf store on every
// render; the list never caches it.
func (h *Handler) renderListView(userID int64, state *domain.StateData) (string, *tele.ReplyMarkup) {
	var header, empty string
	switch state.View {
	case domain.ViewBookList:
		header = fmt.Sprintf("📚 %s:", state.Genre)
		empty = "No books in this genre yet."
	case domain.ViewShelfDetail:
		header = fmt.Sprintf("%s %s:", shelfEmoji(state.Shelf), state.Shelf.Label())
		empty = "This shelf is empty."
	case domain.ViewSearchResults:
		header = fmt.Sprintf("🔍 Recommendations for %q:", state.Query)
		empty = "No results found."
	}

	if len(state.Books) == 0 {
		return header + "\n\n" + empty, backMarkup()
	}

	text := header + "\n\n"
	for i, book := range state.Books {
		marker := ""
		onShelf, err := h.shelves.IsOnAnyShelf(userID, book.Title)
		if err != nil {
			h.logger.Error("Failed to read shelf membership",
				zap.Error(err),
				zap.String("book_title", book.Title),
			)
		} else if onShelf {
			marker = " 🔖"
		}

		line := fmt.Sprintf("%d. %s", i+1, book.Title)
		if book.Author != "" {
			line += " — " + book.Author
		}
		text += line + marker + "\n"
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	// Selection buttons, up to five per row
	row := tele.Row{}
	for i := range state.Books {
		row = append(row, markup.Data(strconv.Itoa(i+1), "book", strconv.Itoa(i)))
		if len(row) == 5 {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	// Shelf toggles for the selected book
	if state.Selected >= 0 && state.Selected < len(state.Books) {
		title := state.Books[state.Selected].Title
		text += fmt.Sprintf("\nShelves for %q:", title)

		membership, err := h.shelves.Membership(userID, title)
		if err != nil {
			h.logger.Error("Failed to read shelf membership",
				zap.Error(err),
				zap.String("book_title", title),
			)
		}
		current := make(map[domain.Shelf]bool, len(membership))
		for _, s := range membership {
			current[s] = true
		}

		for i := 0; i < len(domain.AllShelves); i += 2 {
			toggleRow := tele.Row{}
			for _, s := range domain.AllShelves[i:min(i+2, len(domain.AllShelves))] {
				label := fmt.Sprintf("%s %s", shelfEmoji(s), s.Label())
				if current[s] {
					label += " ✓"
				}
				toggleRow = append(toggleRow, markup.Data(label, "tg", string(s), strconv.Itoa(state.Selected)))
			}
			rows = append(rows, toggleRow)
		}
	}

	rows = append(rows, markup.Row(btnBack))
	markup.Inline(rows...)

	return text, markup
}

// shelfEmoji returns the tile emoji for a shelf
func shelfEmoji(s domain.Shelf) string {
	switch s {
	case domain.ShelfFavorites:
		return "⭐"
	case domain.ShelfCurrentlyReading:
		return "📖"
	case domain.ShelfWantToRead:
		return "🔖"
	case domain.ShelfReadAgain:
		return "🔁"
	}
	return "📚"
}
