package repository

import (
	"context"

	"github.com/scholarly/paper-catalog/internal/domain"
)

// AuthorRepository handles author persistence.
// Update and Delete are carried by the repository for future use; the current
// HTTP surface never exposes them, and authors are only removed via direct
// administrative deletes, which cascade to their papers at the storage level.
type AuthorRepository interface {
	// Create inserts a new author and returns it with its assigned ID.
	// Returns domain.ErrAlreadyExists if the email is already taken.
	Create(ctx context.Context, author *domain.Author) (*domain.Author, error)

	// GetByID retrieves an author by its numeric ID.
	// Returns domain.ErrNotFound if no matching author exists.
	GetByID(ctx context.Context, id int64) (*domain.Author, error)

	// GetByEmail retrieves an author by email address.
	// Returns domain.ErrNotFound if no matching author exists.
	GetByEmail(ctx context.Context, email string) (*domain.Author, error)

	// List retrieves a page of authors in storage-defined order.
	// Returns the matching authors and total count for pagination.
	List(ctx context.Context, limit, offset int) ([]*domain.Author, int64, error)

	// Update persists changes to an existing author.
	// Returns domain.ErrNotFound if the author does not exist.
	Update(ctx context.Context, author *domain.Author) (*domain.Author, error)

	// Delete removes an author. The storage-level foreign key cascades the
	// delete to the author's papers.
	// Returns domain.ErrNotFound if the author does not exist.
	Delete(ctx context.Context, id int64) error
}
