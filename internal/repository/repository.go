// Package repository provides data access interfaces and implementations
// for the Paper Catalog Service.
//
// # Overview
//
// This package defines repository interfaces and their PostgreSQL implementations
// following the repository pattern to abstract data persistence from business logic.
//
// # Repository Interfaces
//
//   - AuthorRepository: Manages author persistence and email lookups
//   - PaperRepository: Manages paper persistence and DOI lookups
//
// # Thread Safety
//
// All repository implementations are safe for concurrent use by multiple goroutines.
// The underlying pgxpool handles connection pooling and synchronization.
//
// # Error Handling
//
// All methods return domain-specific errors from the domain package.
// Wrap database errors with context using fmt.Errorf with %w verb.
// Common errors include:
//
//   - domain.ErrNotFound: Resource does not exist
//   - domain.ErrAlreadyExists: Unique constraint violation
//
// # Usage Pattern
//
// Repositories are typically created at application startup and passed to services:
//
//	db, _ := database.New(ctx, cfg, logger)
//	authorRepo := repository.NewPgAuthorRepository(db)
//	paperRepo := repository.NewPgPaperRepository(db)
package repository

import (
	"github.com/scholarly/paper-catalog/internal/database"
)

// DBTX is the database interface supporting both pool and transaction contexts.
// This allows repositories to work with both direct pool connections and transactions.
type DBTX = database.DBTX

// PostgreSQL error codes the repositories translate into domain errors.
const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
)

// Pagination defaults and limits for list queries.
const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// applyPaginationDefaults normalizes limit and offset values for list queries.
// It clamps limit to [1, maxListLimit] and ensures offset >= 0.
func applyPaginationDefaults(limit, offset *int) {
	if *limit <= 0 {
		*limit = defaultListLimit
	}
	if *limit > maxListLimit {
		*limit = maxListLimit
	}
	if *offset < 0 {
		*offset = 0
	}
}
