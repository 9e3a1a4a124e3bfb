package domain

// ViewState is the screen a user currently sees. Exactly one view is
// active per user at any time.
type ViewState string

const (
	ViewHome            ViewState = "home"
	ViewSearchResults   ViewState = "search_results"
	ViewGenreBrowse     ViewState = "genre_browse"
	ViewBookList        ViewState = "book_list"
	ViewShelvesOverview ViewState = "shelves_overview"
	ViewShelfDetail     ViewState = "shelf_detail"
	ViewReviewAuthoring ViewState = "review_authoring"
)

// InputState marks what the next text message from the user means
type InputState string

const (
	InputNone            InputState = "none"
	InputLoginUsername   InputState = "login_username"
	InputLoginPassword   InputState = "login_password"
	InputSignupUsername  InputState = "signup_username"
	InputSignupEmail     InputState = "signup_email"
	InputSignupPassword  InputState = "signup_password"
	InputSignupConfirm   InputState = "signup_confirm"
	InputSignupGenres    InputState = "signup_genres"
	InputSignupFavorites InputState = "signup_favorites"
	InputSearchQuery     InputState = "search_query"
	InputReviewTitle     InputState = "review_title"
	InputReviewText      InputState = "review_text"
)

// StateData holds a user's full interaction state: the active view, its
// carried parameter, any pending text input, and in-flight drafts.
type StateData struct {
	View  ViewState
	Input InputState

	// View parameters
	Genre string
	Shelf Shelf
	Query string

	// Books rendered by the current list view; callback buttons address
	// them by index because Telegram callback data is size-limited
	Books    []BookRef
	Selected int // index into Books, -1 when nothing selected

	Draft  *ReviewDraft
	Signup *SignupData

	// Monotonic sequence of issued searches; a completed search is applied
	// only when its number still matches, so a stale response can never
	// clobber a newer screen
	SearchSeq uint64
}

// NewStateData returns the state a user starts in after authentication
func NewStateData() *StateData {
	return &StateData{View: ViewHome, Input: InputNone, Selected: -1}
}

// BackParent returns the fixed parent view reached by the back button.
// Back navigation is not a history stack: each view has exactly one parent.
func BackParent(v ViewState) ViewState {
	switch v {
	case ViewBookList:
		return ViewGenreBrowse
	case ViewShelfDetail:
		return ViewShelvesOverview
	}
	return ViewHome
}
