package models

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateMovieRequest is the payload of POST /api/movies. The poster URL is
// filled in by the handler when a file is attached to the request; clients
// may also pass a URL directly in a JSON body.
type CreateMovieRequest struct {
	Title          string  `json:"title"`
	PublishingYear int     `json:"publishingYear"`
	Poster         *string `json:"poster,omitempty"`
}
