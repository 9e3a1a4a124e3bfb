package handler

import (
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified,
// just acknowledge callback. Otherwise, acknowledge callback and return error
// so caller can send a new message.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// display edits the tapped message when handling a callback and sends a
// fresh message otherwise
func (h *Handler) display(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if markup == nil {
		markup = &tele.ReplyMarkup{}
	}

	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	userID := c.Sender().ID
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleCallback handles dynamic callback buttons addressed by data prefix
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Buttons with a Unique that did not reach their dedicated handler
	switch callback.Unique {
	case "login":
		return h.handleLoginStart(c)
	case "signup":
		return h.handleSignupStart(c)
	case "nav_search":
		return h.handleSearchPrompt(c)
	case "nav_genres":
		return h.handleGenreBrowse(c)
	case "nav_shelves":
		return h.handleShelvesOverview(c)
	case "nav_review":
		return h.handleReviewStart(c)
	case "back":
		return h.handleBack(c)
	case "genres_done":
		return h.handleSignupGenresDone(c)
	case "favorites_done":
		return h.handleSignupFavoritesDone(c)
	case "review_submit":
		return h.handleReviewSubmit(c)
	}

	// Dynamic buttons: fixed Unique, payload in Data
	if handler, ok := h.dynamicHandler(callback.Unique); ok {
		return handler(c, data)
	}

	// If Unique is empty the raw data still carries "<unique>|<payload>"
	if callback.Unique == "" {
		if kind, payload, found := strings.Cut(data, "|"); found {
			if handler, ok := h.dynamicHandler(kind); ok {
				return handler(c, payload)
			}
		}
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// dynamicHandler maps a dynamic button kind to its handler
func (h *Handler) dynamicHandler(kind string) (func(tele.Context, string) error, bool) {
	switch kind {
	case "genre":
		return h.handleGenreSelection, true
	case "sgenre":
		return h.handleSignupGenreToggle, true
	case "shelf":
		return h.handleShelfSelection, true
	case "book":
		return h.handleBookSelection, true
	case "tg":
		return h.handleShelfToggle, true
	case "rate":
		return h.handleRatingSelection, true
	case "rshelf":
		return h.handleDraftShelfToggle, true
	}
	return nil, false
}

// parseIndex parses a list index from callback data and bounds-checks it
// against the books rendered by the current view
func parseIndex(raw string, max int) (int, bool) {
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 || idx >= max {
		return 0, false
	}
	return idx, true
}
