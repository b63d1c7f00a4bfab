// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildCreateMovieQuery(t *testing.T) {
	poster := "/uploads/posters/abc.jpg"

	query, args, err := buildCreateMovieQuery("movie-1", "Heat", 1995, &poster, "user-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into movies")
	require.Contains(t, q, "returning")
	for _, col := range movieColumns {
		require.Contains(t, q, col)
	}

	// placeholder format should be $n (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$5")

	require.Len(t, args, 5)
	assert.Equal(t, "movie-1", args[0])
	assert.Equal(t, "Heat", args[1])
	assert.Equal(t, 1995, args[2])
	assert.Equal(t, &poster, args[3])
	assert.Equal(t, "user-1", args[4])
}

func Test_buildGetMovieQuery_ScopedByOwner(t *testing.T) {
	query, args, err := buildGetMovieQuery("movie-1", "user-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from movies")
	require.Contains(t, q, "where")
	require.Contains(t, q, "id")
	require.Contains(t, q, "user_id")

	// both the id and the owner must be bound
	require.Len(t, args, 2)
	assert.ElementsMatch(t, []any{"movie-1", "user-1"}, args)
}

func Test_buildListMoviesQuery(t *testing.T) {
	query, args, err := buildListMoviesQuery("user-1", 8, 16)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from movies")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by updated_at desc")
	require.Contains(t, q, "limit 8")
	require.Contains(t, q, "offset 16")

	require.Len(t, args, 1)
	assert.Equal(t, "user-1", args[0])
}

func Test_buildCountMoviesQuery(t *testing.T) {
	query, args, err := buildCountMoviesQuery("user-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "select count(*)")
	require.Contains(t, q, "from movies")
	require.Contains(t, q, "user_id")

	require.Len(t, args, 1)
	assert.Equal(t, "user-1", args[0])
}

func Test_buildUpdateMovieQuery(t *testing.T) {
	title := "Ran"
	year := 1985
	poster := "/uploads/posters/ran.png"

	tests := []struct {
		name         string
		title        *string
		year         *int
		poster       *string
		wantContains []string
		wantMissing  []string
		wantArgsLen  int
	}{
		{
			name:         "all fields",
			title:        &title,
			year:         &year,
			poster:       &poster,
			wantContains: []string{"title", "publishing_year", "poster"},
			wantArgsLen:  5, // 3 set values + id + user_id
		},
		{
			name:         "title only",
			title:        &title,
			wantContains: []string{"title"},
			wantMissing:  []string{"publishing_year", "poster"},
			wantArgsLen:  3,
		},
		{
			name:         "poster only",
			poster:       &poster,
			wantContains: []string{"poster"},
			wantMissing:  []string{"title", "publishing_year"},
			wantArgsLen:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateMovieQuery("movie-1", "user-1", tt.title, tt.year, tt.poster)
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.Contains(t, q, "update movies")
			require.Contains(t, q, "updated_at = now()")
			require.Contains(t, q, "returning")
			require.Contains(t, q, "user_id")

			setClause := q[:strings.Index(q, "where")]
			for _, part := range tt.wantContains {
				assert.Contains(t, setClause, part+" = ")
			}
			for _, part := range tt.wantMissing {
				assert.NotContains(t, setClause, part+" = ")
			}

			assert.Len(t, args, tt.wantArgsLen)
		})
	}
}

func Test_buildDeleteMovieQuery_ScopedByOwner(t *testing.T) {
	query, args, err := buildDeleteMovieQuery("movie-1", "user-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from movies")
	require.Contains(t, q, "id")
	require.Contains(t, q, "user_id")

	require.Len(t, args, 2)
	assert.ElementsMatch(t, []any{"movie-1", "user-1"}, args)
}
