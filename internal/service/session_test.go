package service

import (
	"testing"

	"shelfmark/internal/domain"
	"shelfmark/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestSessionService_Login(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		expectedError string
	}{
		{
			name:     "valid credentials",
			username: "frank",
			password: "hunter2",
		},
		{
			name:          "blank username",
			username:      "   ",
			password:      "hunter2",
			expectedError: "username is required",
		},
		{
			name:          "empty password",
			username:      "frank",
			password:      "",
			expectedError: "password is required",
		},
		{
			name:          "blank password",
			username:      "frank",
			password:      "   ",
			expectedError: "password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockAccountRepository)
			svc := NewSessionService(mockRepo)

			if tt.expectedError == "" {
				mockRepo.On("UpsertAccount", int64(123), "frank", "").Return(nil)
				mockRepo.On("GetAccount", int64(123)).
					Return(testutil.NewTestUser(123, "frank"), nil)
			}

			user, err := svc.Login(123, tt.username, tt.password)

			if tt.expectedError != "" {
				assert.Nil(t, user)
				assert.True(t, domain.IsValidation(err))
				assert.EqualError(t, err, tt.expectedError)
				// A failed login leaves the session unauthenticated
				assert.False(t, svc.IsAuthenticated(123))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "frank", user.Username)
			assert.True(t, svc.IsAuthenticated(123))
			assert.Equal(t, user, svc.Current(123))
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSessionService_Login_LoadsStoredPreferences(t *testing.T) {
	mockRepo := new(testutil.MockAccountRepository)
	svc := NewSessionService(mockRepo)

	stored := testutil.NewTestUser(123, "frank")
	stored.Genres = []string{"Poetry"}
	stored.Favorites = []domain.FavoriteBook{{Title: "Dune", Rating: 5}}

	mockRepo.On("UpsertAccount", int64(123), "frank", "").Return(nil)
	mockRepo.On("GetAccount", int64(123)).Return(stored, nil)

	user, err := svc.Login(123, "frank", "hunter2")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Poetry"}, user.Genres)
	assert.Equal(t, stored.Favorites, user.Favorites)
	mockRepo.AssertExpectations(t)
}

func TestSessionService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*domain.SignupData)
		expectedError string
	}{
		{
			name:   "valid registration",
			mutate: func(d *domain.SignupData) {},
		},
		{
			name: "missing username",
			mutate: func(d *domain.SignupData) {
				d.Username = ""
			},
			expectedError: "username is required",
		},
		{
			name: "missing password",
			mutate: func(d *domain.SignupData) {
				d.Password = ""
				d.ConfirmPassword = ""
			},
			expectedError: "password is required",
		},
		{
			name: "password confirmation mismatch",
			mutate: func(d *domain.SignupData) {
				d.ConfirmPassword = "hunter3"
			},
			expectedError: "password confirmation does not match",
		},
		{
			name: "malformed email",
			mutate: func(d *domain.SignupData) {
				d.Email = "not-an-email"
			},
			expectedError: "email must be a valid email address",
		},
		{
			name: "favorite rating out of range",
			mutate: func(d *domain.SignupData) {
				d.Favorites[0].Rating = 6
			},
			expectedError: "rating must be between 1 and 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockAccountRepository)
			svc := NewSessionService(mockRepo)

			data := testutil.NewTestSignup("frank")
			tt.mutate(&data)

			if tt.expectedError == "" {
				mockRepo.On("UpsertAccount", int64(123), data.Username, data.Email).Return(nil)
				mockRepo.On("SaveGenres", int64(123), data.Genres).Return(nil)
				mockRepo.On("SaveFavorites", int64(123), data.Favorites).Return(nil)
			}

			user, err := svc.Signup(123, data)

			if tt.expectedError != "" {
				assert.Nil(t, user)
				assert.True(t, domain.IsValidation(err))
				assert.EqualError(t, err, tt.expectedError)
				assert.False(t, svc.IsAuthenticated(123))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "frank", user.Username)
			assert.Equal(t, data.Genres, user.Genres)
			assert.True(t, svc.IsAuthenticated(123))
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSessionService_Logout(t *testing.T) {
	mockRepo := new(testutil.MockAccountRepository)
	svc := NewSessionService(mockRepo)

	mockRepo.On("UpsertAccount", int64(123), "frank", "").Return(nil)
	mockRepo.On("GetAccount", int64(123)).Return(testutil.NewTestUser(123, "frank"), nil)

	_, err := svc.Login(123, "frank", "hunter2")
	assert.NoError(t, err)
	assert.True(t, svc.IsAuthenticated(123))

	svc.Logout(123)
	assert.False(t, svc.IsAuthenticated(123))
	assert.Nil(t, svc.Current(123))

	// Idempotent: logging out again is safe
	svc.Logout(123)
	assert.False(t, svc.IsAuthenticated(123))
}
