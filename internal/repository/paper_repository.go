package repository

import (
	"context"

	"github.com/scholarly/paper-catalog/internal/domain"
)

// PaperRepository handles paper persistence.
// Update and Delete are carried by the repository for future use; the current
// HTTP surface only creates and reads papers.
type PaperRepository interface {
	// Create inserts a new paper and returns it with its assigned ID.
	// Returns domain.ErrAlreadyExists if a paper with the same DOI exists,
	// and domain.ErrNotFound if the referenced author does not exist. Both
	// come from storage constraints and act as the backstop for races
	// between the service-level existence checks and the insert.
	Create(ctx context.Context, paper *domain.Paper) (*domain.Paper, error)

	// GetByID retrieves a paper by its numeric ID.
	// Returns domain.ErrNotFound if no matching paper exists.
	GetByID(ctx context.Context, id int64) (*domain.Paper, error)

	// GetByDOI retrieves a paper by its DOI.
	// Returns domain.ErrNotFound if no matching paper exists.
	GetByDOI(ctx context.Context, doi string) (*domain.Paper, error)

	// List retrieves a page of papers in storage-defined order.
	// Returns the matching papers and total count for pagination.
	List(ctx context.Context, limit, offset int) ([]*domain.Paper, int64, error)

	// Update persists changes to an existing paper.
	// Returns domain.ErrNotFound if the paper does not exist.
	Update(ctx context.Context, paper *domain.Paper) (*domain.Paper, error)

	// Delete removes a paper.
	// Returns domain.ErrNotFound if the paper does not exist.
	Delete(ctx context.Context, id int64) error
}
