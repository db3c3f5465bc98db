package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/scholarly/paper-catalog/internal/domain"
)

// Compile-time interface verification.
var _ PaperRepository = (*PgPaperRepository)(nil)

// PgPaperRepository is a PostgreSQL implementation of PaperRepository.
type PgPaperRepository struct {
	db DBTX
}

// NewPgPaperRepository creates a new PostgreSQL paper repository.
func NewPgPaperRepository(db DBTX) *PgPaperRepository {
	return &PgPaperRepository{db: db}
}

// Create inserts a new paper. The papers_doi_key unique constraint and the
// author_id foreign key are the backstop for races between service-level
// existence checks and the insert; both surface as domain errors here.
func (r *PgPaperRepository) Create(ctx context.Context, paper *domain.Paper) (*domain.Paper, error) {
	if paper == nil {
		return nil, fmt.Errorf("paper cannot be nil: %w", domain.ErrInvalidInput)
	}

	query := `
		INSERT INTO papers (title, abstract, doi, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, created_at, updated_at`

	now := time.Now().UTC()
	err := r.db.QueryRow(ctx, query,
		paper.Title,
		paper.Abstract,
		paper.DOI,
		paper.AuthorID,
		now,
	).Scan(&paper.ID, &paper.CreatedAt, &paper.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrUniqueViolation:
				return nil, domain.NewAlreadyExistsError("paper", "paper with this DOI already exists")
			case pgErrForeignKeyViolation:
				return nil, domain.NewNotFoundError("author", "author not found")
			}
		}
		return nil, fmt.Errorf("failed to insert paper: %w", err)
	}

	return paper, nil
}

// GetByID retrieves a paper by its numeric ID.
func (r *PgPaperRepository) GetByID(ctx context.Context, id int64) (*domain.Paper, error) {
	query := `
		SELECT id, title, abstract, doi, author_id, created_at, updated_at
		FROM papers
		WHERE id = $1`

	paper, err := scanPaper(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("paper", "paper not found")
		}
		return nil, fmt.Errorf("failed to get paper by ID: %w", err)
	}

	return paper, nil
}

// GetByDOI retrieves a paper by its DOI.
func (r *PgPaperRepository) GetByDOI(ctx context.Context, doi string) (*domain.Paper, error) {
	if doi == "" {
		return nil, fmt.Errorf("doi is required: %w", domain.ErrInvalidInput)
	}

	query := `
		SELECT id, title, abstract, doi, author_id, created_at, updated_at
		FROM papers
		WHERE doi = $1`

	paper, err := scanPaper(r.db.QueryRow(ctx, query, doi))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("paper", "paper not found")
		}
		return nil, fmt.Errorf("failed to get paper by DOI: %w", err)
	}

	return paper, nil
}

// List retrieves a page of papers ordered by ID.
func (r *PgPaperRepository) List(ctx context.Context, limit, offset int) ([]*domain.Paper, int64, error) {
	applyPaginationDefaults(&limit, &offset)

	var totalCount int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM papers").Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count papers: %w", err)
	}

	query := `
		SELECT id, title, abstract, doi, author_id, created_at, updated_at
		FROM papers
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list papers: %w", err)
	}
	defer rows.Close()

	papers := make([]*domain.Paper, 0, limit)
	for rows.Next() {
		var p domain.Paper
		if err := rows.Scan(&p.ID, &p.Title, &p.Abstract, &p.DOI, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan paper: %w", err)
		}
		papers = append(papers, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating papers: %w", err)
	}

	return papers, totalCount, nil
}

// Update persists changes to an existing paper.
func (r *PgPaperRepository) Update(ctx context.Context, paper *domain.Paper) (*domain.Paper, error) {
	if paper == nil {
		return nil, fmt.Errorf("paper cannot be nil: %w", domain.ErrInvalidInput)
	}

	query := `
		UPDATE papers
		SET title = $1, abstract = $2, doi = $3, author_id = $4, updated_at = $5
		WHERE id = $6
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		paper.Title,
		paper.Abstract,
		paper.DOI,
		paper.AuthorID,
		time.Now().UTC(),
		paper.ID,
	).Scan(&paper.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("paper", "paper not found")
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrUniqueViolation:
				return nil, domain.NewAlreadyExistsError("paper", "paper with this DOI already exists")
			case pgErrForeignKeyViolation:
				return nil, domain.NewNotFoundError("author", "author not found")
			}
		}
		return nil, fmt.Errorf("failed to update paper: %w", err)
	}

	return paper, nil
}

// Delete removes a paper.
func (r *PgPaperRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM papers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete paper: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFoundError("paper", "paper not found")
	}

	return nil
}

// scanPaper scans a single row into a Paper.
func scanPaper(row pgx.Row) (*domain.Paper, error) {
	var p domain.Paper
	if err := row.Scan(&p.ID, &p.Title, &p.Abstract, &p.DOI, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
