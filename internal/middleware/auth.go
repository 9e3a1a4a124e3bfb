package middleware

import (
	"strings"

	"shelfmark/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthStates exposes whether a user is mid login/signup, so the gate can
// let those messages through
type AuthStates interface {
	InAuthFlow(userID int64) bool
}

// SessionGate creates the authentication middleware. Without an active
// session only /start, /help and the login/signup conversation are
// reachable; every screen behind the gate requires a session.
func SessionGate(sessions *service.SessionService, states AuthStates, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if sessions.IsAuthenticated(userID) {
				return next(c)
			}

			if cb := c.Callback(); cb != nil {
				switch cb.Unique {
				case "login", "signup", "genres_done", "favorites_done":
					return next(c)
				}
				if states.InAuthFlow(userID) {
					return next(c)
				}
				logger.Debug("Blocked callback from unauthenticated user",
					zap.Int64("user_id", userID),
					zap.String("unique", cb.Unique),
				)
				return c.Respond(&tele.CallbackResponse{Text: "Please log in first"})
			}

			if isPublicCommand(c.Text()) {
				return next(c)
			}

			if states.InAuthFlow(userID) {
				return next(c)
			}

			return c.Send("Please log in first — use /start.")
		}
	}
}

// isPublicCommand reports whether the message is a command reachable
// without a session. Telegram appends "@BotName" to commands sent from
// groups or the command menu.
func isPublicCommand(text string) bool {
	cmd, _, _ := strings.Cut(text, "@")
	switch cmd {
	case "/start", "/help":
		return true
	}
	return false
}
