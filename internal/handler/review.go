package handler

import (
	"fmt"
	"strconv"
	"strings"

	"shelfmark/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleReviewStart opens the review screen with a fresh draft
func (h *Handler) handleReviewStart(c tele.Context) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	state.View = domain.ViewReviewAuthoring
	state.Input = domain.InputReviewTitle
	state.Draft = domain.NewReviewDraft()
	state.Books = nil
	state.Selected = -1
	h.SetState(userID, state)

	return h.showReview(c, state)
}

// handleReviewTitle stores the reviewed book's title from a text message
func (h *Handler) handleReviewTitle(c tele.Context, state *domain.StateData, text string) error {
	userID := c.Sender().ID

	if text == "" {
		return c.Send("The title cannot be blank. Send the book title:")
	}

	state.Draft.SetTitle(text)
	state.Input = domain.InputReviewText
	h.SetState(userID, state)

	return h.showReview(c, state)
}

// handleReviewText stores the free-text body; sending again replaces it
func (h *Handler) handleReviewText(c tele.Context, state *domain.StateData, text string) error {
	state.Draft.SetText(text)
	h.SetState(c.Sender().ID, state)

	return h.showReview(c, state)
}

// handleRatingSelection sets the star rating; another tap overwrites it
func (h *Handler) handleRatingSelection(c tele.Context, raw string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.Draft == nil {
		return c.Respond(&tele.CallbackResponse{Text: "Start a review first"})
	}

	rating, err := strconv.Atoi(raw)
	if err != nil || rating < 1 || rating > 5 {
		return c.Respond(&tele.CallbackResponse{Text: "Bad rating"})
	}

	state.Draft.SetRating(rating)
	h.SetState(userID, state)

	return h.showReview(c, state)
}

// handleDraftShelfToggle flips a target shelf on the draft; nothing is
// written to the shelf store until submit
func (h *Handler) handleDraftShelfToggle(c tele.Context, shelfID string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.Draft == nil {
		return c.Respond(&tele.CallbackResponse{Text: "Start a review first"})
	}

	shelf, ok := domain.ParseShelf(shelfID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown shelf"})
	}

	state.Draft.ToggleShelf(shelf)
	h.SetState(userID, state)

	return h.showReview(c, state)
}

// handleReviewSubmit finalizes the draft: the review is persisted, its
// shelves are forwarded to the shelf store, and the user returns home
func (h *Handler) handleReviewSubmit(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.Draft == nil {
		return c.Respond(&tele.CallbackResponse{Text: "Start a review first"})
	}

	review, err := h.reviews.Submit(userID, state.Draft)
	if err != nil {
		if domain.IsValidation(err) {
			return c.Respond(&tele.CallbackResponse{
				Text:      fmt.Sprintf("⚠️ %s", err),
				ShowAlert: true,
			})
		}
		h.logger.Error("Failed to submit review", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to submit review"})
	}

	for _, shelf := range review.Shelves {
		if err := h.shelves.Toggle(userID, review.BookTitle, shelf); err != nil {
			h.logger.Error("Failed to toggle shelf after review",
				zap.Error(err),
				zap.String("book_title", review.BookTitle),
				zap.String("shelf", string(shelf)),
			)
		}
	}

	h.ResetState(userID)
	return h.display(c,
		fmt.Sprintf("✅ Review for %q (%d★) submitted!\n\n🏠 Home\n\nWhat would you like to do?",
			review.BookTitle, review.Rating),
		homeMarkup(),
	)
}

// showReview renders the review screen with the current draft
func (h *Handler) showReview(c tele.Context, state *domain.StateData) error {
	draft := state.Draft

	title := "—"
	if draft.BookTitle != "" {
		title = draft.BookTitle
	}
	rating := "not set"
	if draft.Rating > 0 {
		rating = strings.Repeat("★", draft.Rating) + strings.Repeat("☆", 5-draft.Rating)
	}
	shelves := "—"
	if selected := draft.Shelves(); len(selected) > 0 {
		labels := make([]string, 0, len(selected))
		for _, s := range selected {
			labels = append(labels, s.Label())
		}
		shelves = strings.Join(labels, ", ")
	}
	body := "—"
	if draft.Text != "" {
		body = draft.Text
	}

	text := fmt.Sprintf("✍️ New review\n\nBook: %s\nRating: %s\nShelves: %s\nText: %s\n\n",
		title, rating, shelves, body)
	if draft.BookTitle == "" {
		text += "Send the book title to get started."
	} else {
		text += "Send a message to set the review text, pick a rating and shelves, then submit."
	}

	return h.display(c, text, reviewMarkup(draft))
}

// reviewMarkup builds the review screen keyboard from the draft
func reviewMarkup(draft *domain.ReviewDraft) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	ratingRow := tele.Row{}
	for r := 1; r <= 5; r++ {
		label := fmt.Sprintf("%d★", r)
		if draft.Rating == r {
			label += " ✓"
		}
		ratingRow = append(ratingRow, markup.Data(label, "rate", strconv.Itoa(r)))
	}
	rows = append(rows, ratingRow)

	for i := 0; i < len(domain.AllShelves); i += 2 {
		row := tele.Row{}
		for _, s := range domain.AllShelves[i:min(i+2, len(domain.AllShelves))] {
			label := fmt.Sprintf("%s %s", shelfEmoji(s), s.Label())
			if draft.HasShelf(s) {
				label += " ✓"
			}
			row = append(row, markup.Data(label, "rshelf", string(s)))
		}
		rows = append(rows, row)
	}

	rows = append(rows, markup.Row(btnSubmitReview))
	rows = append(rows, markup.Row(btnBack))

	markup.Inline(rows...)
	return markup
}
