package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/movie-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIdentityFromContext(t *testing.T) {
	t.Run("identity present", func(t *testing.T) {
		want := models.Identity{UserID: "user-1", Email: "bob@example.com"}
		ctx := context.WithValue(context.Background(), IdentityCtxKey, want)

		got, ok := GetIdentityFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("identity missing", func(t *testing.T) {
		_, ok := GetIdentityFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("wrong value type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), IdentityCtxKey, "user-1")

		_, ok := GetIdentityFromContext(ctx)
		assert.False(t, ok)
	})
}
