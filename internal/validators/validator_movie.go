package validators

import (
	"context"

	"github.com/MKhiriev/movie-keeper/models"
)

const (
	FieldTitle          = "title"
	FieldPublishingYear = "publishing_year"
)

// MovieValidator checks movie create and update payloads against the domain
// rules: a non-empty title and a publishing year within
// [models.MinPublishingYear, models.MaxPublishingYear].
type MovieValidator struct {
}

func NewMovieValidator() Validator {
	return &MovieValidator{}
}

func (v *MovieValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateMovieRequest:
		return v.validateCreate(ctx, value, fields...)
	case *models.CreateMovieRequest:
		return v.validateCreate(ctx, *value, fields...)

	case models.MovieUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.MovieUpdate:
		return v.validateUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MovieValidator) validateCreate(_ context.Context, req models.CreateMovieRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPublishingYear}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if req.Title == "" {
				return ErrEmptyTitle
			}
		case FieldPublishingYear:
			if !yearInRange(req.PublishingYear) {
				return ErrPublishingYearOutOfRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MovieValidator) validateUpdate(_ context.Context, update models.MovieUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPublishingYear}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if update.Title != nil && *update.Title == "" {
				return ErrEmptyTitle
			}
		case FieldPublishingYear:
			if update.PublishingYear != nil && !yearInRange(*update.PublishingYear) {
				return ErrPublishingYearOutOfRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func yearInRange(year int) bool {
	return year >= models.MinPublishingYear && year <= models.MaxPublishingYear
}
