package models

import "time"

// Movie is a single movie record owned by a user. Every movie belongs to
// exactly one owner; ownership is assigned at creation and never changes.
type Movie struct {
	// ID is the unique identifier of the movie, generated at creation.
	ID string `json:"id"`

	// Title is the movie title. Required, non-empty.
	Title string `json:"title"`

	// PublishingYear is the year the movie was published.
	// Valid range is [MinPublishingYear, MaxPublishingYear].
	PublishingYear int `json:"publishingYear"`

	// Poster is the public URL of the uploaded poster image.
	// Nil means the movie has no poster.
	Poster *string `json:"poster,omitempty"`

	// UserID references the owning user. All queries are scoped by it.
	UserID string `json:"userId"`

	// CreatedAt and UpdatedAt are managed by the store.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Bounds for Movie.PublishingYear.
const (
	MinPublishingYear = 1900
	MaxPublishingYear = 2035
)

// TableName returns the name of the database table
// associated with the Movie model.
func (m Movie) TableName() string {
	return "movies"
}

// MovieUpdate describes a partial update of a movie record. Nil fields are
// left untouched by the store; only non-nil fields are written.
type MovieUpdate struct {
	// ID and UserID identify the record to update. Both are required:
	// the store applies the update only to a row matching both, so a caller
	// can never touch another user's movie.
	ID     string `json:"-"`
	UserID string `json:"-"`

	Title          *string `json:"title,omitempty"`
	PublishingYear *int    `json:"publishingYear,omitempty"`
	Poster         *string `json:"poster,omitempty"`
}

// Empty reports whether the update carries no fields to change.
func (u MovieUpdate) Empty() bool {
	return u.Title == nil && u.PublishingYear == nil && u.Poster == nil
}
