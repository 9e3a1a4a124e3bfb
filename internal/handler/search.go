package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shelfmark/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const searchTimeout = 20 * time.Second

// handleSearchPrompt asks for a title to search recommendations for
func (h *Handler) handleSearchPrompt(c tele.Context) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	state.Input = domain.InputSearchQuery
	h.SetState(userID, state)

	return h.display(c, "🔍 Send a book title and I'll look up similar reads:", backMarkup())
}

// handleSearchQuery issues a recommendation query for the given text. The
// call runs in the background; its result is applied only if it is still
// the user's latest query and they have not navigated away, so a slow
// response can never overwrite a newer screen.
func (h *Handler) handleSearchQuery(c tele.Context, query string) error {
	userID := c.Sender().ID

	// An empty query issues no external call and changes nothing
	if query == "" {
		return c.Send("🔍 Send a book title and I'll look up similar reads:", backMarkup())
	}

	seq := h.nextSearchSeq(userID, query)
	sender := c.Sender()

	h.logger.Info("Search issued",
		zap.Int64("user_id", userID),
		zap.String("query", query),
		zap.Uint64("seq", seq),
	)

	go h.runSearch(sender, userID, seq, query)

	return c.Send(fmt.Sprintf("🔍 Searching recommendations for %q…", query))
}

// runSearch performs the recommendation call and reports the outcome,
// unless the result has gone stale in the meantime
func (h *Handler) runSearch(sender *tele.User, userID int64, seq uint64, query string) {
	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	books, err := h.searcher.Search(ctx, query)

	if !h.applySearchResult(userID, seq, query, books) {
		h.logger.Debug("Dropped stale search result",
			zap.Int64("user_id", userID),
			zap.String("query", query),
			zap.Uint64("seq", seq),
		)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoResults):
			h.send(sender, fmt.Sprintf("🔍 Recommendations for %q:\n\nNo results found.", query), backMarkup())
		default:
			h.logger.Error("Search failed",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.String("query", query),
			)
			h.send(sender, "⚠️ The recommendation service is unavailable right now. Send the title again to retry.", backMarkup())
		}
		return
	}

	text, markup := h.renderListView(userID, h.GetState(userID))
	h.send(sender, text, markup)
}
