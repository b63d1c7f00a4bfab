package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/movie-keeper/internal/config"
	"github.com/MKhiriev/movie-keeper/internal/logger"
	"github.com/MKhiriev/movie-keeper/migrations"
)

// Storages aggregates every persistence backend used by the application.
type Storages struct {
	UserRepository    UserRepository
	MovieRepository   MovieRepository
	PosterFileStorage PosterFileStorage
}

// NewStorages connects to PostgreSQL, applies pending migrations, prepares
// the poster file store, and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	posters, err := NewPosterFileStorage(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating poster file storage: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		MovieRepository:   NewMovieRepository(db, logger),
		PosterFileStorage: posters,
	}, nil
}

// Migrate applies all pending embedded migrations to the connected database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
