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

// AuthorLookup is the slice of author capability the paper workflows need.
// The full author repository satisfies it.
type AuthorLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Author, error)
}

// PaperService implements the paper workflows. Paper creation is idempotent
// on DOI: resubmitting an existing DOI returns the stored paper instead of
// failing.
type PaperService struct {
	repo      repository.PaperRepository
	authors   AuthorLookup
	validator *Validator
	metrics   *observability.Metrics
	logger    zerolog.Logger
}

// NewPaperService creates a PaperService. All collaborators are required.
func NewPaperService(
	repo repository.PaperRepository,
	authors AuthorLookup,
	validator *Validator,
	metrics *observability.Metrics,
	logger zerolog.Logger,
) *PaperService {
	return &PaperService{
		repo:      repo,
		authors:   authors,
		validator: validator,
		metrics:   metrics,
		logger:    logger.With().Str("component", "paper_service").Logger(),
	}
}

// CreatePaper validates the input and runs the creation workflow:
//
//  1. The referenced author must exist; a missing author is reported as
//     "author not found".
//  2. If a paper with the same DOI already exists, the stored paper is
//     returned with Created=false and no insert happens.
//  3. Otherwise the paper is inserted. A unique violation on the insert means
//     a concurrent request won the race; the winner's row is fetched and
//     returned with Created=false. A foreign key violation means the author
//     vanished between the check and the insert and maps to "author not
//     found".
func (s *PaperService) CreatePaper(ctx context.Context, input CreatePaperInput) (*CreatePaperResult, error) {
	if err := s.validator.ValidateCreatePaper(&input); err != nil {
		s.metrics.ValidationFailures.WithLabelValues("paper").Inc()
		return nil, err
	}

	if _, err := s.authors.GetByID(ctx, input.AuthorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError("author", "author not found")
		}
		return nil, fmt.Errorf("failed to check author: %w", err)
	}

	existing, err := s.repo.GetByDOI(ctx, input.DOI)
	if err == nil {
		s.metrics.PapersDeduplicated.Inc()
		log := observability.WithPaperContext(s.logger, existing.ID, existing.DOI)
		log.Info().Msg("duplicate DOI, returning existing paper")
		return &CreatePaperResult{Paper: paperToRecord(existing), Created: false}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check DOI: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.Paper{
		Title:    input.Title,
		Abstract: input.Abstract,
		DOI:      input.DOI,
		AuthorID: input.AuthorID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Lost the insert race to a concurrent request with the same DOI.
			winner, fetchErr := s.repo.GetByDOI(ctx, input.DOI)
			if fetchErr != nil {
				return nil, fmt.Errorf("failed to fetch paper after duplicate insert: %w", fetchErr)
			}
			s.metrics.PapersDeduplicated.Inc()
			log := observability.WithPaperContext(s.logger, winner.ID, winner.DOI)
			log.Info().Msg("lost insert race, returning existing paper")
			return &CreatePaperResult{Paper: paperToRecord(winner), Created: false}, nil
		}
		return nil, err
	}

	s.metrics.PapersCreated.Inc()
	log := observability.WithPaperContext(s.logger, created.ID, created.DOI)
	log.Info().Msg("paper created")

	return &CreatePaperResult{Paper: paperToRecord(created), Created: true}, nil
}

// GetPaper retrieves a single paper by ID.
func (s *PaperService) GetPaper(ctx context.Context, id int64) (*PaperRecord, error) {
	paper, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return paperToRecord(paper), nil
}

// ListPapers returns a page of papers. Unlike author listing, a row failing
// output-shape validation aborts the whole call.
func (s *PaperService) ListPapers(ctx context.Context, limit, offset int) ([]*PaperRecord, int64, error) {
	papers, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	records := make([]*PaperRecord, 0, len(papers))
	for _, p := range papers {
		rec := paperToRecord(p)
		if err := s.validator.ValidatePaperRecord(rec); err != nil {
			// A stored row failing output validation is data corruption,
			// not a client fault; it must not surface as a 400.
			log := observability.WithPaperContext(s.logger, p.ID, p.DOI)
			log.Error().Err(err).Msg("stored paper failed output validation")
			return nil, 0, fmt.Errorf("stored paper %d failed validation: %w", p.ID, domain.ErrInternalError)
		}
		records = append(records, rec)
	}

	return records, total, nil
}
