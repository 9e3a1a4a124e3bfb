package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"shelfmark/internal/domain"
	"shelfmark/internal/repository"

	"github.com/go-playground/validator/v10"
)

// validate is a shared validator instance for user input
var validate = validator.New()

// SessionService owns the authenticated-user state. A session exists per
// Telegram user and gates the whole navigation layer: no session, no
// screens beyond the login/signup flow.
type SessionService struct {
	accounts repository.AccountRepository

	mu       sync.RWMutex
	sessions map[int64]*domain.User
}

// NewSessionService creates a new session service
func NewSessionService(accounts repository.AccountRepository) *SessionService {
	return &SessionService{
		accounts: accounts,
		sessions: make(map[int64]*domain.User),
	}
}

// Login starts a session for the user. Credential verification belongs to
// the backend auth service; here a non-blank pair always succeeds. Stored
// preferences are loaded when the account already exists.
func (s *SessionService) Login(userID int64, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.NewValidationError("username", "is required")
	}
	if strings.TrimSpace(password) == "" {
		return nil, domain.NewValidationError("password", "is required")
	}

	if err := s.accounts.UpsertAccount(userID, username, ""); err != nil {
		return nil, err
	}

	user, err := s.accounts.GetAccount(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &domain.User{UserID: userID, Username: username, CreatedAt: time.Now()}
	}

	s.mu.Lock()
	s.sessions[userID] = user
	s.mu.Unlock()

	return user, nil
}

// Signup registers a new reader from full registration data and starts
// the session
func (s *SessionService) Signup(userID int64, data domain.SignupData) (*domain.User, error) {
	data.Username = strings.TrimSpace(data.Username)

	if err := validate.Struct(data); err != nil {
		return nil, asValidationError(err)
	}

	if err := s.accounts.UpsertAccount(userID, data.Username, data.Email); err != nil {
		return nil, err
	}
	if err := s.accounts.SaveGenres(userID, data.Genres); err != nil {
		return nil, err
	}
	if err := s.accounts.SaveFavorites(userID, data.Favorites); err != nil {
		return nil, err
	}

	user := &domain.User{
		UserID:    userID,
		Username:  data.Username,
		Email:     data.Email,
		Genres:    data.Genres,
		Favorites: data.Favorites,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[userID] = user
	s.mu.Unlock()

	return user, nil
}

// Logout clears the session; calling it without one is a no-op
func (s *SessionService) Logout(userID int64) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}

// Current returns the session's user, or nil when unauthenticated
func (s *SessionService) Current(userID int64) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID]
}

// IsAuthenticated reports whether the user has an active session
func (s *SessionService) IsAuthenticated(userID int64) bool {
	return s.Current(userID) != nil
}

// asValidationError converts validator errors into a single user-facing
// domain.ValidationError
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	e := verrs[0]
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return domain.NewValidationError(field, "is required")
	case "email":
		return domain.NewValidationError(field, "must be a valid email address")
	case "eqfield":
		return domain.NewValidationError("password confirmation", "does not match")
	case "min", "max":
		return domain.NewValidationError(field, "must be between 1 and 5")
	}
	return domain.NewValidationError(field, "is invalid")
}
