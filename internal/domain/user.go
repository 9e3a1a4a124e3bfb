package domain

import "time"

// User represents an authenticated reader
type User struct {
	UserID    int64
	Username  string
	Email     string
	Genres    []string
	Favorites []FavoriteBook
	CreatedAt time.Time
}

// FavoriteBook is a book the reader named during signup
type FavoriteBook struct {
	Title  string `validate:"required"`
	Rating int    `validate:"min=1,max=5"`
}

// SignupData carries everything collected during the signup flow
type SignupData struct {
	Username        string `validate:"required"`
	Email           string `validate:"omitempty,email"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Genres          []string
	Favorites       []FavoriteBook `validate:"dive"`
}
