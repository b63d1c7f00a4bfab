package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, email, password_hash, name)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, password_hash, name, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, name, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password_hash, name, created_at
    FROM users
    WHERE id = $1;`
)

// movieColumns is the canonical column list scanned into models.Movie.
var movieColumns = []string{"id", "title", "publishing_year", "poster", "user_id", "created_at", "updated_at"}

// psql is the shared squirrel builder configured for PostgreSQL
// dollar-numbered placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildCreateMovieQuery builds the INSERT for a new movie record.
// Timestamps are assigned by the database defaults and returned to the caller.
func buildCreateMovieQuery(id, title string, publishingYear int, poster *string, userID string) (string, []any, error) {
	return psql.Insert("movies").
		Columns("id", "title", "publishing_year", "poster", "user_id").
		Values(id, title, publishingYear, poster, userID).
		Suffix("RETURNING " + columnList()).
		ToSql()
}

// buildGetMovieQuery builds the owner-scoped single-record lookup.
func buildGetMovieQuery(movieID, userID string) (string, []any, error) {
	return psql.Select(movieColumns...).
		From("movies").
		Where(sq.Eq{"id": movieID, "user_id": userID}).
		ToSql()
}

// buildListMoviesQuery builds the owner-scoped page query ordered by most
// recently updated first.
func buildListMoviesQuery(userID string, limit, offset uint64) (string, []any, error) {
	return psql.Select(movieColumns...).
		From("movies").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

// buildCountMoviesQuery builds the owner-scoped total count query.
func buildCountMoviesQuery(userID string) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From("movies").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateMovieQuery builds a partial UPDATE: only non-nil fields of the
// update are written, updated_at is always refreshed, and the WHERE clause
// is scoped by both id and user_id.
func buildUpdateMovieQuery(id, userID string, title *string, publishingYear *int, poster *string) (string, []any, error) {
	builder := psql.Update("movies").
		Set("updated_at", sq.Expr("NOW()"))

	if title != nil {
		builder = builder.Set("title", *title)
	}
	if publishingYear != nil {
		builder = builder.Set("publishing_year", *publishingYear)
	}
	if poster != nil {
		builder = builder.Set("poster", *poster)
	}

	return builder.
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + columnList()).
		ToSql()
}

// buildDeleteMovieQuery builds the owner-scoped DELETE.
func buildDeleteMovieQuery(movieID, userID string) (string, []any, error) {
	return psql.Delete("movies").
		Where(sq.Eq{"id": movieID, "user_id": userID}).
		ToSql()
}

func columnList() string {
	list := ""
	for i, col := range movieColumns {
		if i > 0 {
			list += ", "
		}
		list += col
	}
	return list
}
