package handler

import (
	"strings"

	"shelfmark/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// handleText routes text messages by the user's pending input state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)

	switch state.Input {
	case domain.InputLoginUsername, domain.InputLoginPassword,
		domain.InputSignupUsername, domain.InputSignupEmail,
		domain.InputSignupPassword, domain.InputSignupConfirm,
		domain.InputSignupGenres, domain.InputSignupFavorites:
		return h.handleAuthText(c, state, text)

	case domain.InputSearchQuery:
		return h.handleSearchQuery(c, text)

	case domain.InputReviewTitle:
		return h.handleReviewTitle(c, state, text)

	case domain.InputReviewText:
		return h.handleReviewText(c, state, text)
	}

	if !h.sessions.IsAuthenticated(userID) {
		return c.Send(authMenuText, authMenuMarkup())
	}

	// No input pending: the message means nothing here
	return c.Send("Use the buttons to get around, or /start for the main menu.")
}
