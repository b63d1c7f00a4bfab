package models

// UserView is the public projection of a user account. It never carries
// credential material and is safe to return in API responses.
type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// AuthResponse is returned by the register and login endpoints: the public
// view of the account plus a freshly signed bearer token.
type AuthResponse struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

// MovieList is the paginated envelope returned by the movie listing
// endpoint.
type MovieList struct {
	// Movies is the current page of results, ordered by most recently
	// updated first.
	Movies []Movie `json:"movies"`

	// Total is the number of movies owned by the caller across all pages.
	Total int64 `json:"total"`

	// Page is the 1-indexed number of the returned page.
	Page int `json:"page"`

	// TotalPages is ceil(Total / limit) for the requested page size.
	TotalPages int `json:"totalPages"`
}

// DeleteResponse confirms a successful deletion.
type DeleteResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
