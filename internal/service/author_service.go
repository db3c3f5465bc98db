package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/scholarly/paper-catalog/internal/domain"
	"github.com/scholarly/paper-catalog/internal/observability"
	"github.com/scholarly/paper-catalog/internal/repository"
)

// AuthorService implements the author workflows: create with duplicate-email
// rejection, single fetch, and tolerant listing.
type AuthorService struct {
	repo      repository.AuthorRepository
	validator *Validator
	metrics   *observability.Metrics
	logger    zerolog.Logger
}

// NewAuthorService creates an AuthorService. All collaborators are required.
func NewAuthorService(
	repo repository.AuthorRepository,
	validator *Validator,
	metrics *observability.Metrics,
	logger zerolog.Logger,
) *AuthorService {
	return &AuthorService{
		repo:      repo,
		validator: validator,
		metrics:   metrics,
		logger:    logger.With().Str("component", "author_service").Logger(),
	}
}

// CreateAuthor validates the input, rejects duplicate emails, and persists a
// new author. The unique constraint on email is the backstop for a concurrent
// create between the lookup and the insert; it surfaces as the same conflict.
func (s *AuthorService) CreateAuthor(ctx context.Context, input CreateAuthorInput) (*AuthorRecord, error) {
	if err := s.validator.ValidateCreateAuthor(&input); err != nil {
		s.metrics.ValidationFailures.WithLabelValues("author").Inc()
		return nil, err
	}

	_, err := s.repo.GetByEmail(ctx, input.Email)
	if err == nil {
		s.metrics.AuthorsRejected.Inc()
		return nil, domain.NewAlreadyExistsError("author", "author with this email already exists")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check author email: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.Author{
		Name:  input.Name,
		Bio:   input.Bio,
		Email: input.Email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			s.metrics.AuthorsRejected.Inc()
		}
		return nil, err
	}

	s.metrics.AuthorsCreated.Inc()
	log := observability.WithAuthorContext(s.logger, created.ID, created.Email)
	log.Info().Msg("author created")

	return authorToRecord(created), nil
}

// GetAuthor retrieves a single author by ID.
func (s *AuthorService) GetAuthor(ctx context.Context, id int64) (*AuthorRecord, error) {
	author, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return authorToRecord(author), nil
}

// ListAuthors returns a page of authors. Rows that fail output-shape
// validation are skipped and logged rather than aborting the listing, so one
// bad row cannot take down the whole page.
func (s *AuthorService) ListAuthors(ctx context.Context, limit, offset int) ([]*AuthorRecord, int64, error) {
	authors, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	records := make([]*AuthorRecord, 0, len(authors))
	for _, a := range authors {
		rec := authorToRecord(a)
		if err := s.validator.ValidateAuthorRecord(rec); err != nil {
			s.metrics.ListRowsSkipped.WithLabelValues("author").Inc()
			log := observability.WithAuthorContext(s.logger, a.ID, a.Email)
			log.Warn().Err(err).Msg("skipping author row failing output validation")
			continue
		}
		records = append(records, rec)
	}

	return records, total, nil
}
