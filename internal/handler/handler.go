package handler

import (
	"context"
	"sync"

	"shelfmark/internal/domain"
	"shelfmark/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Searcher issues recommendation queries
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.BookRef, error)
}

// Handler manages all bot interactions. It is the navigation layer: one
// view is active per user, transitions happen here, and reads/writes go
// through the injected stores.
type Handler struct {
	bot      *tele.Bot
	sessions *service.SessionService
	shelves  *service.ShelfService
	catalog  *service.CatalogService
	reviews  *service.ReviewService
	searcher Searcher
	logger   *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	sessions *service.SessionService,
	shelves *service.ShelfService,
	catalog *service.CatalogService,
	reviews *service.ReviewService,
	searcher Searcher,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		sessions: sessions,
		shelves:  shelves,
		catalog:  catalog,
		reviews:  reviews,
		searcher: searcher,
		logger:   logger,
		states:   make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/logout", h.handleLogout)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnLogin, h.handleLoginStart)
	h.bot.Handle(&btnSignup, h.handleSignupStart)
	h.bot.Handle(&btnSearch, h.handleSearchPrompt)
	h.bot.Handle(&btnGenres, h.handleGenreBrowse)
	h.bot.Handle(&btnShelves, h.handleShelvesOverview)
	h.bot.Handle(&btnReview, h.handleReviewStart)
	h.bot.Handle(&btnBack, h.handleBack)
	h.bot.Handle(&btnGenresDone, h.handleSignupGenresDone)
	h.bot.Handle(&btnFavoritesDone, h.handleSignupFavoritesDone)
	h.bot.Handle(&btnSubmitReview, h.handleReviewSubmit)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns a snapshot of the user's current state. The stored
// struct is shared with the background search goroutine, so callers get a
// copy to work on and publish changes through SetState.
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return domain.NewStateData()
	}
	snapshot := *state
	return &snapshot
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()

	stored := *state
	h.states[userID] = &stored
}

// ResetState resets user to the home view
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, domain.NewStateData())
}

// InAuthFlow reports whether the user is in the middle of the login or
// signup conversation; the session gate lets those messages through.
func (h *Handler) InAuthFlow(userID int64) bool {
	switch h.GetState(userID).Input {
	case domain.InputLoginUsername, domain.InputLoginPassword,
		domain.InputSignupUsername, domain.InputSignupEmail,
		domain.InputSignupPassword, domain.InputSignupConfirm,
		domain.InputSignupGenres, domain.InputSignupFavorites:
		return true
	}
	return false
}

// nextSearchSeq bumps the user's search sequence and returns the number
// assigned to the query being issued
func (h *Handler) nextSearchSeq(userID int64, query string) uint64 {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()

	state, exists := h.states[userID]
	if !exists {
		state = domain.NewStateData()
		h.states[userID] = state
	}
	state.SearchSeq++
	state.View = domain.ViewSearchResults
	state.Query = query
	state.Books = nil
	state.Selected = -1
	return state.SearchSeq
}

// applySearchResult stores completed search results, unless the response
// is stale: the user has issued a newer query or left the search view in
// the meantime. Returns false when the result was dropped.
func (h *Handler) applySearchResult(userID int64, seq uint64, query string, books []domain.BookRef) bool {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()

	state, exists := h.states[userID]
	if !exists {
		return false
	}
	if state.SearchSeq != seq || state.View != domain.ViewSearchResults || state.Query != query {
		return false
	}

	state.Books = books
	state.Selected = -1
	return true
}

// send delivers a message outside a handler context, used when a
// background search completes
func (h *Handler) send(to tele.Recipient, text string, markup *tele.ReplyMarkup) {
	var err error
	if markup != nil {
		_, err = h.bot.Send(to, text, markup)
	} else {
		_, err = h.bot.Send(to, text)
	}
	if err != nil {
		h.logger.Warn("Failed to send message", zap.Error(err))
	}
}

// Inline keyboard buttons
var (
	btnLogin = tele.Btn{
		Unique: "login",
		Text:   "🔑 Log In",
	}
	btnSignup = tele.Btn{
		Unique: "signup",
		Text:   "📝 Sign Up",
	}
	btnSearch = tele.Btn{
		Unique: "nav_search",
		Text:   "🔍 Search Recommendations",
	}
	btnGenres = tele.Btn{
		Unique: "nav_genres",
		Text:   "📚 Browse Genres",
	}
	btnShelves = tele.Btn{
		Unique: "nav_shelves",
		Text:   "🗂 View Shelves",
	}
	btnReview = tele.Btn{
		Unique: "nav_review",
		Text:   "✍️ Add New Review",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "◀️ Back",
	}
	btnGenresDone = tele.Btn{
		Unique: "genres_done",
		Text:   "✅ Done",
	}
	btnFavoritesDone = tele.Btn{
		Unique: "favorites_done",
		Text:   "✅ Done",
	}
	btnSubmitReview = tele.Btn{
		Unique: "review_submit",
		Text:   "📤 Submit Review",
	}
)

// authMenuMarkup returns the login/signup keyboard shown to
// unauthenticated users
func authMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnLogin),
		menu.Row(btnSignup),
	)
	return menu
}

// homeMarkup returns the home screen keyboard
func homeMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnSearch),
		menu.Row(btnGenres),
		menu.Row(btnShelves),
		menu.Row(btnReview),
	)
	return menu
}

// backMarkup returns a keyboard with only the back button
func backMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnBack))
	return menu
}
