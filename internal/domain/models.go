// Package domain provides domain models and error taxonomy for the Paper Catalog Service.
package domain

import "time"

// Author represents an author row in the authors table.
// IDs are assigned by the database on insert (bigserial).
type Author struct {
	ID        int64
	Name      string
	Bio       string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Paper represents a paper row in the papers table.
// Every paper belongs to exactly one author. The authors row owns its
// papers rows; deleting an author cascades at the storage level.
type Paper struct {
	ID        int64
	Title     string
	Abstract  string
	DOI       string
	AuthorID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
