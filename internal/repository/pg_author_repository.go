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
var _ AuthorRepository = (*PgAuthorRepository)(nil)

// PgAuthorRepository is a PostgreSQL implementation of AuthorRepository.
type PgAuthorRepository struct {
	db DBTX
}

// NewPgAuthorRepository creates a new PostgreSQL author repository.
func NewPgAuthorRepository(db DBTX) *PgAuthorRepository {
	return &PgAuthorRepository{db: db}
}

// Create inserts a new author.
func (r *PgAuthorRepository) Create(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	if author == nil {
		return nil, fmt.Errorf("author cannot be nil: %w", domain.ErrInvalidInput)
	}

	query := `
		INSERT INTO authors (name, bio, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, created_at, updated_at`

	now := time.Now().UTC()
	err := r.db.QueryRow(ctx, query,
		author.Name,
		author.Bio,
		author.Email,
		now,
	).Scan(&author.ID, &author.CreatedAt, &author.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return nil, domain.NewAlreadyExistsError("author", "author with this email already exists")
		}
		return nil, fmt.Errorf("failed to insert author: %w", err)
	}

	return author, nil
}

// GetByID retrieves an author by its numeric ID.
func (r *PgAuthorRepository) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	query := `
		SELECT id, name, bio, email, created_at, updated_at
		FROM authors
		WHERE id = $1`

	author, err := scanAuthor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("author", "author not found")
		}
		return nil, fmt.Errorf("failed to get author by ID: %w", err)
	}

	return author, nil
}

// GetByEmail retrieves an author by email address.
func (r *PgAuthorRepository) GetByEmail(ctx context.Context, email string) (*domain.Author, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required: %w", domain.ErrInvalidInput)
	}

	query := `
		SELECT id, name, bio, email, created_at, updated_at
		FROM authors
		WHERE email = $1`

	author, err := scanAuthor(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("author", "author not found")
		}
		return nil, fmt.Errorf("failed to get author by email: %w", err)
	}

	return author, nil
}

// List retrieves a page of authors ordered by ID.
func (r *PgAuthorRepository) List(ctx context.Context, limit, offset int) ([]*domain.Author, int64, error) {
	applyPaginationDefaults(&limit, &offset)

	var totalCount int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM authors").Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	query := `
		SELECT id, name, bio, email, created_at, updated_at
		FROM authors
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]*domain.Author, 0, limit)
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Bio, &a.Email, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, totalCount, nil
}

// Update persists changes to an existing author.
func (r *PgAuthorRepository) Update(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	if author == nil {
		return nil, fmt.Errorf("author cannot be nil: %w", domain.ErrInvalidInput)
	}

	query := `
		UPDATE authors
		SET name = $1, bio = $2, email = $3, updated_at = $4
		WHERE id = $5
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		author.Name,
		author.Bio,
		author.Email,
		time.Now().UTC(),
		author.ID,
	).Scan(&author.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("author", "author not found")
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return nil, domain.NewAlreadyExistsError("author", "author with this email already exists")
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return author, nil
}

// Delete removes an author. Papers owned by the author are removed by the
// storage-level ON DELETE CASCADE.
func (r *PgAuthorRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM authors WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFoundError("author", "author not found")
	}

	return nil
}

// scanAuthor scans a single row into an Author.
func scanAuthor(row pgx.Row) (*domain.Author, error) {
	var a domain.Author
	if err := row.Scan(&a.ID, &a.Name, &a.Bio, &a.Email, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
