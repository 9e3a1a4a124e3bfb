package handler

import (
	"fmt"
	"strconv"
	"strings"

	"shelfmark/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const authMenuText = "📖 Welcome to Shelfmark!\n\nYour reading companion: browse genres, get recommendations, keep shelves and write reviews.\n\nLog in or sign up to continue:"

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if !h.sessions.IsAuthenticated(userID) {
		h.SetState(userID, &domain.StateData{View: domain.ViewHome, Input: domain.InputNone, Selected: -1})
		return h.display(c, authMenuText, authMenuMarkup())
	}

	h.ResetState(userID)
	return h.showHome(c)
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send("Commands:\n/start — open the main menu\n/logout — end your session\n/help — this message\n\nEverything else works through the buttons.")
}

// handleLogout clears the session and returns the user to the login gate
func (h *Handler) handleLogout(c tele.Context) error {
	userID := c.Sender().ID

	h.sessions.Logout(userID)
	h.SetState(userID, &domain.StateData{View: domain.ViewHome, Input: domain.InputNone, Selected: -1})

	h.logger.Info("User logged out", zap.Int64("user_id", userID))
	return c.Send("👋 You are logged out.\n\n"+authMenuText, authMenuMarkup())
}

// handleLoginStart begins the login conversation
func (h *Handler) handleLoginStart(c tele.Context) error {
	userID := c.Sender().ID

	h.SetState(userID, &domain.StateData{
		View:     domain.ViewHome,
		Input:    domain.InputLoginUsername,
		Signup:   &domain.SignupData{},
		Selected: -1,
	})

	return h.display(c, "🔑 Enter your username:", nil)
}

// handleSignupStart begins the signup conversation
func (h *Handler) handleSignupStart(c tele.Context) error {
	userID := c.Sender().ID

	h.SetState(userID, &domain.StateData{
		View:     domain.ViewHome,
		Input:    domain.InputSignupUsername,
		Signup:   &domain.SignupData{},
		Selected: -1,
	})

	return h.display(c, "📝 Choose a username:", nil)
}

// handleAuthText advances the login/signup conversation one step per
// incoming message
func (h *Handler) handleAuthText(c tele.Context, state *domain.StateData, text string) error {
	userID := c.Sender().ID

	if state.Signup == nil {
		state.Signup = &domain.SignupData{}
	}

	switch state.Input {
	case domain.InputLoginUsername:
		if text == "" {
			return c.Send("Username cannot be blank. Enter your username:")
		}
		state.Signup.Username = text
		state.Input = domain.InputLoginPassword
		h.SetState(userID, state)
		return c.Send("Enter your password:")

	case domain.InputLoginPassword:
		user, err := h.sessions.Login(userID, state.Signup.Username, text)
		if err != nil {
			if domain.IsValidation(err) {
				return c.Send(fmt.Sprintf("⚠️ %s. Enter your password:", err))
			}
			h.logger.Error("Login failed", zap.Error(err), zap.Int64("user_id", userID))
			return c.Send("Something went wrong. Please try again.")
		}

		h.logger.Info("User logged in",
			zap.Int64("user_id", userID),
			zap.String("username", user.Username),
		)
		h.ResetState(userID)
		return c.Send(fmt.Sprintf("✅ Logged in as %s.", user.Username), homeMarkup())

	case domain.InputSignupUsername:
		if text == "" {
			return c.Send("Username cannot be blank. Choose a username:")
		}
		state.Signup.Username = text
		state.Input = domain.InputSignupEmail
		h.SetState(userID, state)
		return c.Send("Your email (send \"-\" to skip):")

	case domain.InputSignupEmail:
		if text != "-" {
			state.Signup.Email = text
		}
		state.Input = domain.InputSignupPassword
		h.SetState(userID, state)
		return c.Send("Choose a password:")

	case domain.InputSignupPassword:
		if text == "" {
			return c.Send("Password cannot be blank. Choose a password:")
		}
		state.Signup.Password = text
		state.Input = domain.InputSignupConfirm
		h.SetState(userID, state)
		return c.Send("Repeat the password:")

	case domain.InputSignupConfirm:
		if text != state.Signup.Password {
			state.Signup.Password = ""
			state.Input = domain.InputSignupPassword
			h.SetState(userID, state)
			return c.Send("⚠️ Passwords do not match. Choose a password:")
		}
		state.Signup.ConfirmPassword = text
		state.Input = domain.InputSignupGenres
		h.SetState(userID, state)
		return h.showSignupGenres(c, state)

	case domain.InputSignupGenres:
		return c.Send("Tap the genre buttons above, then Done.")

	case domain.InputSignupFavorites:
		favorite, err := parseFavoriteLine(text)
		if err != nil {
			return c.Send(fmt.Sprintf("⚠️ %s\n\nSend a book as: Title | rating (1-5), or tap Done.", err), favoritesDoneMarkup())
		}
		state.Signup.Favorites = append(state.Signup.Favorites, favorite)
		h.SetState(userID, state)
		return c.Send(
			fmt.Sprintf("Added %s (%d★). Send another or tap Done.", favorite.Title, favorite.Rating),
			favoritesDoneMarkup(),
		)
	}

	return c.Send(authMenuText, authMenuMarkup())
}

// showSignupGenres shows the genre picker step of the signup flow
func (h *Handler) showSignupGenres(c tele.Context, state *domain.StateData) error {
	genres, err := h.catalog.Genres()
	if err != nil {
		h.logger.Error("Failed to load genres", zap.Error(err))
		return c.Send("Something went wrong. Please try again.")
	}

	return h.display(c,
		"📚 Pick your favorite genres, then tap Done:",
		signupGenresMarkup(genres, state.Signup.Genres),
	)
}

// handleSignupGenreToggle flips a genre on the signup draft
func (h *Handler) handleSignupGenreToggle(c tele.Context, genre string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.Signup == nil {
		return c.Respond(&tele.CallbackResponse{Text: "Start signup first"})
	}

	found := false
	for i, g := range state.Signup.Genres {
		if g == genre {
			state.Signup.Genres = append(state.Signup.Genres[:i], state.Signup.Genres[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		state.Signup.Genres = append(state.Signup.Genres, genre)
	}
	h.SetState(userID, state)

	return h.showSignupGenres(c, state)
}

// handleSignupGenresDone moves the signup flow to the favorite-books step
func (h *Handler) handleSignupGenresDone(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.Signup == nil {
		return c.Respond(&tele.CallbackResponse{Text: "Start signup first"})
	}

	state.Input = domain.InputSignupFavorites
	h.SetState(userID, state)

	return h.display(c,
		"⭐ Now your favorite books.\n\nSend each as: Title | rating (1-5).\nTap Done when finished (or right away to skip).",
		favoritesDoneMarkup(),
	)
}

// handleSignupFavoritesDone completes the signup
func (h *Handler) handleSignupFavoritesDone(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.Signup == nil {
		return c.Respond(&tele.CallbackResponse{Text: "Start signup first"})
	}

	user, err := h.sessions.Signup(userID, *state.Signup)
	if err != nil {
		if domain.IsValidation(err) {
			return h.display(c, fmt.Sprintf("⚠️ %s.\n\n%s", err, authMenuText), authMenuMarkup())
		}
		h.logger.Error("Signup failed", zap.Error(err), zap.Int64("user_id", userID))
		return h.display(c, "Something went wrong. Please try again.", authMenuMarkup())
	}

	h.logger.Info("User signed up",
		zap.Int64("user_id", userID),
		zap.String("username", user.Username),
	)
	h.ResetState(userID)
	return h.display(c, fmt.Sprintf("🎉 Welcome, %s! Your account is ready.", user.Username), homeMarkup())
}

// parseFavoriteLine parses a "Title | rating" favorite-book entry
func parseFavoriteLine(line string) (domain.FavoriteBook, error) {
	parts := strings.SplitN(line, "|", 2)
	if len(parts) != 2 {
		return domain.FavoriteBook{}, domain.NewValidationError("favorite", "must look like: Title | rating")
	}

	title := strings.TrimSpace(parts[0])
	if title == "" {
		return domain.FavoriteBook{}, domain.NewValidationError("title", "is required")
	}

	rating, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || rating < 1 || rating > 5 {
		return domain.FavoriteBook{}, domain.NewValidationError("rating", "must be between 1 and 5")
	}

	return domain.FavoriteBook{Title: title, Rating: rating}, nil
}

// signupGenresMarkup builds the signup genre picker keyboard
func signupGenresMarkup(genres, selected []string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	chosen := make(map[string]bool, len(selected))
	for _, g := range selected {
		chosen[g] = true
	}

	for i := 0; i < len(genres); i += 2 {
		row := tele.Row{}
		for _, g := range genres[i:min(i+2, len(genres))] {
			label := g
			if chosen[g] {
				label = "✅ " + g
			}
			row = append(row, markup.Data(label, "sgenre", g))
		}
		rows = append(rows, row)
	}
	rows = append(rows, markup.Row(btnGenresDone))

	markup.Inline(rows...)
	return markup
}

// favoritesDoneMarkup returns the keyboard for the favorite-books step
func favoritesDoneMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnFavoritesDone))
	return markup
}
