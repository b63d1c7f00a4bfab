package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/movie-keeper/internal/config"
	"github.com/MKhiriev/movie-keeper/internal/logger"
	"github.com/MKhiriev/movie-keeper/internal/utils"
)

// PosterURLPrefix is the public URL prefix under which stored posters are
// served. Files saved by the store resolve to PosterURLPrefix + "/<name>".
const PosterURLPrefix = "/uploads/posters"

// posterFileStorage is the local-disk implementation of
// [PosterFileStorage]. Uploaded images are written to a flat directory with
// freshly generated UUID names so that client-supplied filenames never reach
// the filesystem.
type posterFileStorage struct {
	dir    string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewPosterFileStorage constructs a [PosterFileStorage] rooted at
// cfg.PostersDir, creating the directory if it does not exist.
func NewPosterFileStorage(cfg config.Files, logger *logger.Logger) (PosterFileStorage, error) {
	if err := os.MkdirAll(cfg.PostersDir, 0o755); err != nil {
		logger.Err(err).Str("dir", cfg.PostersDir).Msg("error creating posters directory")
		return nil, fmt.Errorf("error creating posters directory: %w", err)
	}

	return &posterFileStorage{
		dir:    cfg.PostersDir,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

// Save writes data to a new file named "<uuid><extension>" inside the store
// directory and returns the public URL the file is served under.
func (p *posterFileStorage) Save(ctx context.Context, extension string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	filename := p.ids.Generate() + extension
	fullPath := filepath.Join(p.dir, filename)

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		log.Err(err).
			Str("func", "*posterFileStorage.Save").
			Str("file", fullPath).
			Msg("failed to write poster file")
		return "", fmt.Errorf("failed to write poster file: %w", err)
	}

	return PosterURLPrefix + "/" + filename, nil
}

// Delete removes a stored poster by filename. Deletion is best effort: a
// file that does not exist is silently ignored. Filenames containing path
// separators are rejected so callers cannot escape the store directory.
func (p *posterFileStorage) Delete(ctx context.Context, filename string) error {
	log := logger.FromContext(ctx)

	if filename == "" || strings.ContainsAny(filename, `/\`) {
		return errors.New("invalid poster filename")
	}

	err := os.Remove(filepath.Join(p.dir, filename))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Err(err).
			Str("func", "*posterFileStorage.Delete").
			Str("file", filename).
			Msg("failed to remove poster file")
		return fmt.Errorf("failed to remove poster file: %w", err)
	}

	return nil
}

// FilenameFromURL extracts the stored filename from a public poster URL.
// URLs that do not reference this store yield an empty string.
func (p *posterFileStorage) FilenameFromURL(url string) string {
	if !strings.HasPrefix(url, PosterURLPrefix+"/") {
		return ""
	}
	return path.Base(url)
}
